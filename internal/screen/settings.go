package screen

import (
	"github.com/go-ports/zoo/internal/palette"
)

// ColorSettings is the settings capability the settings screen edits.
type ColorSettings interface {
	SettingsService
	Color(id palette.ScreenID) palette.Color
	SetColor(id palette.ScreenID, col palette.Color)
	Save() error
	Path() string
}

// Settings menu choices.
const (
	choiceListColors = iota + 1
	choiceChangeColor
	choiceSaveSettings
)

// SettingsScreen lets the user inspect and recolour screens and save the result.
type SettingsScreen struct {
	io       IO
	settings ColorSettings
}

// NewSettingsScreen builds the settings screen.
func NewSettingsScreen(io IO, settings ColorSettings) *SettingsScreen {
	return &SettingsScreen{io: io, settings: settings}
}

// Show runs the settings menu.
func (s *SettingsScreen) Show() {
	run(s.io, s.settings, menu{
		id: palette.SettingsScreen,
		items: []string{
			"List screen colors",
			"Change a screen color",
			"Save settings",
		},
		exit: msgBack,
		dispatch: func(choice int) {
			switch choice {
			case choiceListColors:
				s.listColors()
			case choiceChangeColor:
				s.changeColor()
			case choiceSaveSettings:
				s.save()
			}
		},
	})
}

func (s *SettingsScreen) listColors() {
	s.io.Println()
	s.io.Println("Screen colors:")
	for _, id := range palette.Screens {
		s.io.Printf("%s: %s\n", id, s.settings.Color(id))
	}
}

func (s *SettingsScreen) changeColor() {
	id, col, err := s.readScreenColor()
	if err != nil {
		s.io.Println(msgInvalidInput)
		return
	}
	s.settings.SetColor(id, col)
	s.io.Printf("Screen %s will now use %s.\n", id, col)
}

func (s *SettingsScreen) readScreenColor() (palette.ScreenID, palette.Color, error) {
	screenName, err := s.io.Prompt("Which screen do you want to recolor? ")
	if err != nil {
		return "", "", err
	}
	colorName, err := s.io.Prompt("What color should it use? ")
	if err != nil {
		return "", "", err
	}
	id, err := palette.ParseScreen(screenName)
	if err != nil {
		return "", "", err
	}
	col, err := palette.ParseColor(colorName)
	if err != nil {
		return "", "", err
	}
	return id, col, nil
}

func (s *SettingsScreen) save() {
	if err := s.settings.Save(); err != nil {
		s.io.Printf("Settings could not be saved: %v\n", err)
		return
	}
	s.io.Printf("Settings saved to %s\n", s.settings.Path())
}
