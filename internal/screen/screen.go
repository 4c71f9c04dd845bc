// Package screen implements the interactive console menus: a generic CRUD
// screen per species, navigation screens that dispatch to child screens, and
// the settings screen.
//
// Every screen runs the same loop: apply its colour, print the numbered
// menu, read one line, map it to a choice and dispatch. Choice 0 returns to
// the caller, so the Go call stack mirrors the navigation stack.
package screen

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-ports/zoo/internal/models"
	"github.com/go-ports/zoo/internal/palette"
)

// Screen is one navigation level. Show blocks until the user picks Exit.
type Screen interface {
	Show()
}

// DataService exposes the shared animal aggregate.
type DataService interface {
	Animals() *models.Animals
}

// SettingsService applies a screen's colour to subsequent output.
type SettingsService interface {
	UpdateColor(id palette.ScreenID)
}

// IO is the console capability the screens write to and read from.
type IO interface {
	Print(a ...any)
	Println(a ...any)
	Printf(format string, a ...any)
	ReadLine() (string, error)
	Prompt(question string) (string, error)
}

var (
	ErrInvalidChoice = errors.New("invalid choice")
	ErrNotANumber    = errors.New("not a number")
)

// Messages shared by every screen.
const (
	msgInvalidChoice = "Invalid choice. Try again."
	msgInvalidInput  = "Invalid input."
	msgBack          = "Going back to parent menu."
	msgGoodbye       = "Goodbye."
)

// parseInt converts s, ignoring surrounding blanks.
func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return n, nil
}

// parseChoice maps s to a menu choice in [0, count].
func parseChoice(s string, count int) (int, error) {
	n, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > count {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChoice, n)
	}
	return n, nil
}

// menu is the shape of one screen loop.
type menu struct {
	id       palette.ScreenID
	items    []string // labels for choices 1..len(items)
	exit     string   // printed when the user picks 0
	dispatch func(choice int)
}

// run drives m until the user exits. Unparsable or unmapped input is
// reported and the menu is shown again. A failed read (normally
// console.ErrNoInput once the stream is exhausted) is reported the same way
// but unwinds the screen: no later read can succeed.
func run(io IO, settings SettingsService, m menu) {
	for {
		settings.UpdateColor(m.id)
		io.Println()
		io.Println("Your available choices are:")
		io.Println("0. Exit")
		for i, label := range m.items {
			io.Printf("%d. %s\n", i+1, label)
		}
		io.Print("Please enter your choice: ")

		line, err := io.ReadLine()
		if err != nil {
			slog.Debug("menu read failed", "screen", m.id, "err", err)
			io.Println(msgInvalidChoice)
			return
		}
		choice, err := parseChoice(line, len(m.items))
		if err != nil {
			slog.Debug("menu choice rejected", "screen", m.id, "err", err)
			io.Println(msgInvalidChoice)
			continue
		}
		if choice == 0 {
			io.Println(m.exit)
			return
		}
		slog.Debug("menu choice", "screen", m.id, "choice", choice)
		m.dispatch(choice)
	}
}
