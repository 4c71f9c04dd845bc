// Package palette names the screens of the console menu and the colours that
// can be assigned to them.
package palette

import (
	"errors"
	"regexp"
	"strings"

	"github.com/muesli/termenv"
)

// ScreenID identifies one menu screen.
type ScreenID string

// Screen identifiers, in menu order.
const (
	MainScreen     ScreenID = "main"
	AnimalsScreen  ScreenID = "animals"
	MammalsScreen  ScreenID = "mammals"
	DogsScreen     ScreenID = "dogs"
	WolvesScreen   ScreenID = "wolves"
	SwansScreen    ScreenID = "swans"
	CamelsScreen   ScreenID = "camels"
	SettingsScreen ScreenID = "settings"
)

// Screens lists every ScreenID.
var Screens = []ScreenID{
	MainScreen,
	AnimalsScreen,
	MammalsScreen,
	DogsScreen,
	WolvesScreen,
	SwansScreen,
	CamelsScreen,
	SettingsScreen,
}

// Color is one of the classic console colour names or a "#RRGGBB" value.
type Color string

// DefaultColor is used for screens without an assigned colour.
const DefaultColor Color = "Gray"

var (
	ErrUnknownScreen = errors.New("unknown screen")
	ErrUnknownColor  = errors.New("unknown color")
)

// ansiColors maps console colour names to their 4-bit ANSI index.
var ansiColors = map[Color]termenv.ANSIColor{
	"Black":       termenv.ANSIBlack,
	"DarkRed":     termenv.ANSIRed,
	"DarkGreen":   termenv.ANSIGreen,
	"DarkYellow":  termenv.ANSIYellow,
	"DarkBlue":    termenv.ANSIBlue,
	"DarkMagenta": termenv.ANSIMagenta,
	"DarkCyan":    termenv.ANSICyan,
	"Gray":        termenv.ANSIWhite,
	"DarkGray":    termenv.ANSIBrightBlack,
	"Red":         termenv.ANSIBrightRed,
	"Green":       termenv.ANSIBrightGreen,
	"Yellow":      termenv.ANSIBrightYellow,
	"Blue":        termenv.ANSIBrightBlue,
	"Magenta":     termenv.ANSIBrightMagenta,
	"Cyan":        termenv.ANSIBrightCyan,
	"White":       termenv.ANSIBrightWhite,
}

// ColorNames lists the accepted colour names in console order.
var ColorNames = []Color{
	"Black", "DarkBlue", "DarkGreen", "DarkCyan",
	"DarkRed", "DarkMagenta", "DarkYellow", "Gray",
	"DarkGray", "Blue", "Green", "Cyan",
	"Red", "Magenta", "Yellow", "White",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultColors returns the colour assigned to each screen out of the box.
func DefaultColors() map[ScreenID]Color {
	return map[ScreenID]Color{
		MainScreen:     "White",
		AnimalsScreen:  "Cyan",
		MammalsScreen:  "Green",
		DogsScreen:     "Yellow",
		WolvesScreen:   "DarkGray",
		SwansScreen:    "Blue",
		CamelsScreen:   "DarkYellow",
		SettingsScreen: "Magenta",
	}
}

// ParseScreen resolves s, ignoring case and surrounding blanks.
func ParseScreen(s string) (ScreenID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, id := range Screens {
		if string(id) == s {
			return id, nil
		}
	}
	return "", ErrUnknownScreen
}

// ParseColor resolves s to its canonical colour name, ignoring case, or
// accepts a "#RRGGBB" value as given.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if hexColor.MatchString(s) {
		return Color(strings.ToUpper(s)), nil
	}
	for _, name := range ColorNames {
		if strings.EqualFold(string(name), s) {
			return name, nil
		}
	}
	return "", ErrUnknownColor
}

// Termenv converts c for the given terminal profile. Unknown colours map to
// the profile's rendering of DefaultColor.
func (c Color) Termenv(p termenv.Profile) termenv.Color {
	if hexColor.MatchString(string(c)) {
		return p.Color(string(c))
	}
	ansi, ok := ansiColors[c]
	if !ok {
		ansi = ansiColors[DefaultColor]
	}
	return p.Convert(ansi)
}
