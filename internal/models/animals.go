package models

// Mammals groups the per-species collections shown under the mammals menu.
type Mammals struct {
	Dogs   *Collection[*Dog]
	Wolves *Collection[*Wolf]
	Swans  *Collection[*Swan]
	Camels *Collection[*Camel]
}

// Animals is the root of the session's data. It is created once at start-up
// and shared by reference with every screen.
type Animals struct {
	Mammals *Mammals
}

// NewAnimals returns an aggregate with every collection present and empty.
func NewAnimals() *Animals {
	return &Animals{
		Mammals: &Mammals{
			Dogs:   NewCollection[*Dog](),
			Wolves: NewCollection[*Wolf](),
			Swans:  NewCollection[*Swan](),
			Camels: NewCollection[*Camel](),
		},
	}
}

// Seed appends one sample record per species.
func Seed(a *Animals) {
	m := a.Mammals
	m.Dogs.Add(NewDog("Rex", 3, "Labrador", 7, "floppy"))
	m.Wolves.Add(NewWolf("Grey", 6, "grey", 45, "forest"))
	m.Swans.Add(NewSwan("Odette", 4, "white", 230, "lake"))
	m.Camels.Add(NewCamel("Humphrey", 9, "sand", 40, "herbivore"))
}
