// Package service implements the data and settings services shared by every
// screen of a session.
package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-ports/zoo/internal/config"
	"github.com/go-ports/zoo/internal/models"
	"github.com/go-ports/zoo/internal/palette"
)

// ---------------------------------------------------------------------------
// Data
// ---------------------------------------------------------------------------

// Data hands out the session's animal aggregate.
type Data struct {
	animals *models.Animals
}

// NewData wraps animals. A nil aggregate is replaced by an empty one.
func NewData(animals *models.Animals) *Data {
	if animals == nil {
		animals = models.NewAnimals()
	}
	return &Data{animals: animals}
}

// Animals returns the aggregate. Callers mutate it through its collections.
func (d *Data) Animals() *models.Animals { return d.animals }

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

// ErrNoSettingsPath is returned by Save when the service was built without a file.
var ErrNoSettingsPath = errors.New("settings file path not set")

// Painter applies a foreground colour to subsequent console output.
type Painter interface {
	SetColor(col palette.Color)
}

// ScreenColor pairs a screen with its current colour.
type ScreenColor struct {
	Screen palette.ScreenID
	Color  palette.Color
}

// Settings owns the screen colour map and the name-matching choice.
type Settings struct {
	cfg     *config.Settings
	path    string
	painter Painter
}

// NewSettings builds the service from loaded settings. path is where Save
// writes; it may be empty when saving is not wanted.
func NewSettings(cfg *config.Settings, path string, painter Painter) *Settings {
	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.ScreenColors == nil {
		cfg.ScreenColors = make(map[palette.ScreenID]palette.Color)
	}
	return &Settings{cfg: cfg, path: path, painter: painter}
}

// UpdateColor applies the colour assigned to id, or palette.DefaultColor when
// none is assigned.
func (s *Settings) UpdateColor(id palette.ScreenID) {
	col := s.Color(id)
	slog.Debug("apply screen color", "screen", id, "color", col)
	if s.painter != nil {
		s.painter.SetColor(col)
	}
}

// Color returns the colour for id.
func (s *Settings) Color(id palette.ScreenID) palette.Color {
	if col, ok := s.cfg.ScreenColors[id]; ok && col != "" {
		return col
	}
	return palette.DefaultColor
}

// SetColor assigns col to id for the rest of the session.
func (s *Settings) SetColor(id palette.ScreenID, col palette.Color) {
	s.cfg.ScreenColors[id] = col
}

// Colors lists every screen with its colour in menu order.
func (s *Settings) Colors() []ScreenColor {
	out := make([]ScreenColor, 0, len(palette.Screens))
	for _, id := range palette.Screens {
		out = append(out, ScreenColor{Screen: id, Color: s.Color(id)})
	}
	return out
}

// Match returns the name comparison selected by the settings.
func (s *Settings) Match() models.MatchFunc {
	return models.Matcher(s.cfg.IgnoreCase)
}

// Path returns the file Save writes to.
func (s *Settings) Path() string { return s.path }

// Save persists the current settings.
func (s *Settings) Save() error {
	if s.path == "" {
		return ErrNoSettingsPath
	}
	if err := config.Save(s.path, s.cfg); err != nil {
		return fmt.Errorf("service: save settings: %w", err)
	}
	return nil
}
