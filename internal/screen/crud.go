package screen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ports/zoo/internal/models"
	"github.com/go-ports/zoo/internal/palette"
)

// ErrNoCollection is returned when the aggregate has no collection for a species.
var ErrNoCollection = errors.New("collection not available")

// CRUD menu choices.
const (
	choiceList = iota + 1
	choiceCreate
	choiceDelete
	choiceModify
)

// Field is one prompt of a species schema, applied to a record of type R.
type Field[R any] struct {
	Prompt string
	assign func(r R, raw string) error
}

// Text builds a field that accepts any line, including an empty one.
func Text[R any](prompt string, set func(r R, v string)) Field[R] {
	return Field[R]{
		Prompt: prompt,
		assign: func(r R, raw string) error {
			set(r, raw)
			return nil
		},
	}
}

// Int builds a field whose line must parse as an integer.
func Int[R any](prompt string, set func(r R, v int)) Field[R] {
	return Field[R]{
		Prompt: prompt,
		assign: func(r R, raw string) error {
			n, err := parseInt(raw)
			if err != nil {
				return err
			}
			set(r, n)
			return nil
		},
	}
}

// Species describes how a CRUD screen prompts for, stores and names one
// record variant.
type Species[R models.Record[R]] struct {
	Screen     palette.ScreenID
	Singular   string     // "camel"
	Plural     string     // "camels"
	Fields     []Field[R] // prompted in order
	New        func() R
	Collection func(a *models.Animals) *models.Collection[R]
}

// Title returns the capitalised singular noun.
func (sp Species[R]) Title() string {
	if sp.Singular == "" {
		return ""
	}
	return strings.ToUpper(sp.Singular[:1]) + sp.Singular[1:]
}

// CRUD lists, creates, deletes and modifies the records of one species.
type CRUD[R models.Record[R]] struct {
	species  Species[R]
	data     DataService
	settings SettingsService
	io       IO
	match    models.MatchFunc
}

// NewCRUD builds the screen. A nil match selects models.ExactMatch.
func NewCRUD[R models.Record[R]](sp Species[R], io IO, data DataService, settings SettingsService, match models.MatchFunc) *CRUD[R] {
	if match == nil {
		match = models.ExactMatch
	}
	return &CRUD[R]{species: sp, data: data, settings: settings, io: io, match: match}
}

// Show runs the List/Create/Delete/Modify menu.
func (s *CRUD[R]) Show() {
	sp := s.species
	run(s.io, s.settings, menu{
		id: sp.Screen,
		items: []string{
			"List all " + sp.Plural,
			"Create a new " + sp.Singular,
			"Delete existing " + sp.Singular,
			"Modify existing " + sp.Singular,
		},
		exit: msgBack,
		dispatch: func(choice int) {
			switch choice {
			case choiceList:
				s.List()
			case choiceCreate:
				s.Create()
			case choiceDelete:
				s.Delete()
			case choiceModify:
				s.Modify()
			}
		},
	})
}

func (s *CRUD[R]) collection() *models.Collection[R] {
	animals := s.data.Animals()
	if animals == nil {
		return nil
	}
	return s.species.Collection(animals)
}

// List prints every record, 1-indexed, in insertion order.
func (s *CRUD[R]) List() {
	sp := s.species
	col := s.collection()
	s.io.Println()
	if col.Len() == 0 {
		s.io.Printf("The list of %s is empty.\n", sp.Plural)
		return
	}
	s.io.Printf("Here's a list of %s:\n", sp.Plural)
	for i, r := range col.All() {
		s.io.Printf("%s number %d, %s\n", sp.Title(), i+1, r.Display())
	}
}

// Create prompts for a new record and appends it.
func (s *CRUD[R]) Create() {
	r, err := s.create()
	if err != nil {
		s.io.Println(msgInvalidInput)
		return
	}
	s.io.Printf("%s with name: %s has been added to a list of %s\n", s.species.Title(), r.RecordName(), s.species.Plural)
}

func (s *CRUD[R]) create() (R, error) {
	var zero R
	r, err := s.readRecord()
	if err != nil {
		return zero, err
	}
	col := s.collection()
	if col == nil {
		return zero, ErrNoCollection
	}
	col.Add(r)
	return r, nil
}

// Delete removes the first record with the requested name.
func (s *CRUD[R]) Delete() {
	sp := s.species
	r, found, err := s.lookup("delete")
	switch {
	case err != nil:
		s.io.Println(msgInvalidInput)
	case !found:
		s.io.Printf("%s not found.\n", sp.Title())
	default:
		s.collection().Remove(r)
		s.io.Printf("%s with name: %s has been deleted from a list of %s\n", sp.Title(), r.RecordName(), sp.Plural)
	}
}

// Modify prompts for replacement values and copies them onto the first
// record with the requested name. The record keeps its identity and position.
func (s *CRUD[R]) Modify() {
	sp := s.species
	r, found, err := s.lookup("edit")
	if err == nil && found {
		var edited R
		if edited, err = s.readRecord(); err == nil {
			r.Copy(edited)
		}
	}
	switch {
	case err != nil:
		s.io.Println(msgInvalidInput + " Try again.")
	case !found:
		s.io.Printf("%s not found.\n", sp.Title())
	default:
		s.io.Printf("%s after edit: %s\n", sp.Title(), r.Display())
	}
}

// lookup asks for a name and returns the first matching record.
func (s *CRUD[R]) lookup(verb string) (R, bool, error) {
	var zero R
	name, err := s.io.Prompt(fmt.Sprintf("What is the name of the %s you want to %s? ", s.species.Singular, verb))
	if err != nil {
		return zero, false, err
	}
	r, ok := s.collection().Find(name, s.match)
	return r, ok, nil
}

// readRecord prompts for every field before parsing any of them, so a bad
// value never leaves unread answers behind on the input stream.
func (s *CRUD[R]) readRecord() (R, error) {
	var zero R
	fields := s.species.Fields
	answers := make([]string, len(fields))
	for i, f := range fields {
		line, err := s.io.Prompt(f.Prompt)
		if err != nil {
			return zero, err
		}
		answers[i] = line
	}
	r := s.species.New()
	for i, f := range fields {
		if err := f.assign(r, answers[i]); err != nil {
			return zero, err
		}
	}
	return r, nil
}
