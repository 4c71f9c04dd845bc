// Package models defines the animal record types and the in-memory
// collections that hold them for the lifetime of a session.
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Record is implemented by every animal variant. R is the concrete pointer
// type so Copy stays type-safe.
type Record[R any] interface {
	// RecordID returns the identity assigned at construction.
	RecordID() string
	// RecordName returns the name used for lookups.
	RecordName() string
	// Display renders the record on a single line.
	Display() string
	// Copy overwrites every field except the identity with the values in from.
	Copy(from R)
}

// Animal holds the fields shared by all variants.
type Animal struct {
	ID   string
	Name string
	Age  int
}

func newAnimal(name string, age int) Animal {
	return Animal{ID: uuid.NewString(), Name: name, Age: age}
}

// RecordID returns the animal's identity.
func (a *Animal) RecordID() string { return a.ID }

// RecordName returns the animal's name.
func (a *Animal) RecordName() string { return a.Name }

// Base returns the shared fields of the embedding variant.
func (a *Animal) Base() *Animal { return a }

func (a *Animal) copyFrom(from *Animal) {
	a.Name = from.Name
	a.Age = from.Age
}

// ---------------------------------------------------------------------------
// Variants
// ---------------------------------------------------------------------------

// Dog is a mammal record.
type Dog struct {
	Animal
	Breed        string
	BarkLoudness int
	EarShape     string
}

// NewDog returns a dog with a fresh identity.
func NewDog(name string, age int, breed string, barkLoudness int, earShape string) *Dog {
	return &Dog{
		Animal:       newAnimal(name, age),
		Breed:        breed,
		BarkLoudness: barkLoudness,
		EarShape:     earShape,
	}
}

// Display renders the dog.
func (d *Dog) Display() string {
	return fmt.Sprintf("My name is: %s, my age is: %d, my breed is: %s, my bark loudness is: %d, my ear shape is: %s",
		d.Name, d.Age, d.Breed, d.BarkLoudness, d.EarShape)
}

// Copy copies every field but the ID from other.
func (d *Dog) Copy(other *Dog) {
	d.copyFrom(&other.Animal)
	d.Breed = other.Breed
	d.BarkLoudness = other.BarkLoudness
	d.EarShape = other.EarShape
}

// Wolf is a mammal record.
type Wolf struct {
	Animal
	FurColor  string
	Kilograms int
	Habitat   string
}

// NewWolf returns a wolf with a fresh identity.
func NewWolf(name string, age int, furColor string, kilograms int, habitat string) *Wolf {
	return &Wolf{
		Animal:    newAnimal(name, age),
		FurColor:  furColor,
		Kilograms: kilograms,
		Habitat:   habitat,
	}
}

// Display renders the wolf.
func (w *Wolf) Display() string {
	return fmt.Sprintf("My name is: %s, my age is: %d, my fur color is: %s, my weight is: %d kg, my habitat is: %s",
		w.Name, w.Age, w.FurColor, w.Kilograms, w.Habitat)
}

// Copy copies every field but the ID from other.
func (w *Wolf) Copy(other *Wolf) {
	w.copyFrom(&other.Animal)
	w.FurColor = other.FurColor
	w.Kilograms = other.Kilograms
	w.Habitat = other.Habitat
}

// Swan is a record listed under the mammals menu.
type Swan struct {
	Animal
	Color    string
	Wingspan int
	Habitat  string
}

// NewSwan returns a swan with a fresh identity.
func NewSwan(name string, age int, color string, wingspan int, habitat string) *Swan {
	return &Swan{
		Animal:   newAnimal(name, age),
		Color:    color,
		Wingspan: wingspan,
		Habitat:  habitat,
	}
}

// Display renders the swan.
func (s *Swan) Display() string {
	return fmt.Sprintf("My name is: %s, my age is: %d, my color is: %s, my wingspan is: %d, my habitat is: %s",
		s.Name, s.Age, s.Color, s.Wingspan, s.Habitat)
}

// Copy copies every field but the ID from other.
func (s *Swan) Copy(other *Swan) {
	s.copyFrom(&other.Animal)
	s.Color = other.Color
	s.Wingspan = other.Wingspan
	s.Habitat = other.Habitat
}

// Camel is a mammal record.
type Camel struct {
	Animal
	Color string
	Speed int
	Diet  string
}

// NewCamel returns a camel with a fresh identity.
func NewCamel(name string, age int, color string, speed int, diet string) *Camel {
	return &Camel{
		Animal: newAnimal(name, age),
		Color:  color,
		Speed:  speed,
		Diet:   diet,
	}
}

// Display renders the camel.
func (c *Camel) Display() string {
	return fmt.Sprintf("My name is: %s, my age is: %d, my color is: %s, my speed is: %d, my diet is: %s",
		c.Name, c.Age, c.Color, c.Speed, c.Diet)
}

// Copy copies every field but the ID from other.
func (c *Camel) Copy(other *Camel) {
	c.copyFrom(&other.Animal)
	c.Color = other.Color
	c.Speed = other.Speed
	c.Diet = other.Diet
}
