package screen

import (
	"github.com/go-ports/zoo/internal/palette"
)

// Entry is one child of a navigation screen.
type Entry struct {
	Label  string
	Screen Screen
}

// Nav numbers its entries from 1 and shows the chosen child, re-rendering
// its own menu once the child returns.
type Nav struct {
	id       palette.ScreenID
	io       IO
	settings SettingsService
	exit     string
	entries  []Entry
}

// NewNav builds a navigation screen. exit is printed when the user picks 0.
func NewNav(id palette.ScreenID, io IO, settings SettingsService, exit string, entries ...Entry) *Nav {
	return &Nav{id: id, io: io, settings: settings, exit: exit, entries: entries}
}

// Show runs the menu until the user exits.
func (n *Nav) Show() {
	labels := make([]string, len(n.entries))
	for i, e := range n.entries {
		labels[i] = e.Label
	}
	run(n.io, n.settings, menu{
		id:    n.id,
		items: labels,
		exit:  n.exit,
		dispatch: func(choice int) {
			n.entries[choice-1].Screen.Show()
		},
	})
}
