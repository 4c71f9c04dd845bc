package screen

import (
	"fmt"

	"github.com/go-ports/zoo/internal/models"
	"github.com/go-ports/zoo/internal/palette"
)

// based is satisfied by every variant through the embedded models.Animal.
type based interface {
	Base() *models.Animal
}

func nameField[R based](noun string) Field[R] {
	return Text(fmt.Sprintf("What name of the %s? ", noun), func(r R, v string) { r.Base().Name = v })
}

func ageField[R based](noun string) Field[R] {
	return Int(fmt.Sprintf("What is the %s's age? ", noun), func(r R, v int) { r.Base().Age = v })
}

// DogSpecies prompts for name, age, breed, bark loudness and ear shape.
var DogSpecies = Species[*models.Dog]{
	Screen:   palette.DogsScreen,
	Singular: "dog",
	Plural:   "dogs",
	Fields: []Field[*models.Dog]{
		nameField[*models.Dog]("dog"),
		ageField[*models.Dog]("dog"),
		Text("What is the dog's breed? ", func(d *models.Dog, v string) { d.Breed = v }),
		Int("What is the dog's bark loudness? ", func(d *models.Dog, v int) { d.BarkLoudness = v }),
		Text("What is the dog's ear shape? ", func(d *models.Dog, v string) { d.EarShape = v }),
	},
	New: func() *models.Dog { return models.NewDog("", 0, "", 0, "") },
	Collection: func(a *models.Animals) *models.Collection[*models.Dog] {
		if a.Mammals == nil {
			return nil
		}
		return a.Mammals.Dogs
	},
}

// WolfSpecies prompts for name, age, fur colour, weight and habitat.
var WolfSpecies = Species[*models.Wolf]{
	Screen:   palette.WolvesScreen,
	Singular: "wolf",
	Plural:   "wolfs",
	Fields: []Field[*models.Wolf]{
		nameField[*models.Wolf]("wolf"),
		ageField[*models.Wolf]("wolf"),
		Text("What is the wolf's fur color? ", func(w *models.Wolf, v string) { w.FurColor = v }),
		Int("What is the wolf's weight in kilograms? ", func(w *models.Wolf, v int) { w.Kilograms = v }),
		Text("What is the wolf's habitat? ", func(w *models.Wolf, v string) { w.Habitat = v }),
	},
	New: func() *models.Wolf { return models.NewWolf("", 0, "", 0, "") },
	Collection: func(a *models.Animals) *models.Collection[*models.Wolf] {
		if a.Mammals == nil {
			return nil
		}
		return a.Mammals.Wolves
	},
}

// SwanSpecies prompts for name, age, colour, wingspan and habitat.
var SwanSpecies = Species[*models.Swan]{
	Screen:   palette.SwansScreen,
	Singular: "swan",
	Plural:   "swans",
	Fields: []Field[*models.Swan]{
		nameField[*models.Swan]("swan"),
		ageField[*models.Swan]("swan"),
		Text("What is the swan's color? ", func(s *models.Swan, v string) { s.Color = v }),
		Int("What is the swan's wingspan? ", func(s *models.Swan, v int) { s.Wingspan = v }),
		Text("What is the swan's habitat? ", func(s *models.Swan, v string) { s.Habitat = v }),
	},
	New: func() *models.Swan { return models.NewSwan("", 0, "", 0, "") },
	Collection: func(a *models.Animals) *models.Collection[*models.Swan] {
		if a.Mammals == nil {
			return nil
		}
		return a.Mammals.Swans
	},
}

// CamelSpecies prompts for name, age, colour, speed and diet.
var CamelSpecies = Species[*models.Camel]{
	Screen:   palette.CamelsScreen,
	Singular: "camel",
	Plural:   "camels",
	Fields: []Field[*models.Camel]{
		nameField[*models.Camel]("camel"),
		ageField[*models.Camel]("camel"),
		Text("What is the camel's color? ", func(c *models.Camel, v string) { c.Color = v }),
		Int("What is the camel's speed? ", func(c *models.Camel, v int) { c.Speed = v }),
		Text("What is the camel's diet? ", func(c *models.Camel, v string) { c.Diet = v }),
	},
	New: func() *models.Camel { return models.NewCamel("", 0, "", 0, "") },
	Collection: func(a *models.Animals) *models.Collection[*models.Camel] {
		if a.Mammals == nil {
			return nil
		}
		return a.Mammals.Camels
	},
}
