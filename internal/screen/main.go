package screen

import (
	"github.com/go-ports/zoo/internal/models"
	"github.com/go-ports/zoo/internal/palette"
)

// NewMain wires the full menu tree:
//
//	Main ─┬─ Animals ── Mammals ─┬─ Dogs
//	      │                      ├─ Wolfs
//	      │                      ├─ Swans
//	      │                      └─ Camels
//	      └─ Settings
//
// match selects how name lookups compare; nil means exact.
func NewMain(io IO, data DataService, settings ColorSettings, match models.MatchFunc) Screen {
	mammals := NewNav(palette.MammalsScreen, io, settings, msgBack,
		Entry{Label: "Dogs", Screen: NewCRUD(DogSpecies, io, data, settings, match)},
		Entry{Label: "Wolfs", Screen: NewCRUD(WolfSpecies, io, data, settings, match)},
		Entry{Label: "Swans", Screen: NewCRUD(SwanSpecies, io, data, settings, match)},
		Entry{Label: "Camels", Screen: NewCRUD(CamelSpecies, io, data, settings, match)},
	)
	animals := NewNav(palette.AnimalsScreen, io, settings, msgBack,
		Entry{Label: "Mammals", Screen: mammals},
	)
	return NewNav(palette.MainScreen, io, settings, msgGoodbye,
		Entry{Label: "Animals", Screen: animals},
		Entry{Label: "Create a new settings", Screen: NewSettingsScreen(io, settings)},
	)
}
