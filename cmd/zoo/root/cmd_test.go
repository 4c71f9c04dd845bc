// End-to-end tests that run the zoo root command in-process with scripted
// stdin and a temporary settings directory. Output is captured via cobra's
// SetOut so tests never touch os.Stdout.
package rootcmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	rootcmd "github.com/go-ports/zoo/cmd/zoo/root"
	"github.com/go-ports/zoo/internal/palette"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// runCmd executes the root command with input on stdin and returns the
// captured stdout along with any execution error.
func runCmd(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	root := rootcmd.New()
	root.SetIn(strings.NewReader(input))
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	execErr := root.ExecuteContext(context.Background())

	return buf.String(), execErr
}

func lines(l ...string) string { return strings.Join(l, "\n") + "\n" }

// ---------------------------------------------------------------------------
// Help / version
// ---------------------------------------------------------------------------

func TestHelp_HappyPath(t *testing.T) {
	c := qt.New(t)

	out, err := runCmd(t, "", "--help")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "zoo")
	c.Assert(out, qt.Contains, "config")
	c.Assert(out, qt.Contains, "--ignore-case")
}

func TestVersion_HappyPath(t *testing.T) {
	c := qt.New(t)

	out, err := runCmd(t, "", "--version")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "zoo version dev")
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

func TestSession_HappyPath(t *testing.T) {
	c := qt.New(t)

	input := lines("1", "1", "4", "1", "0", "0", "0", "0")

	c.Run("root command starts the menu", func(c *qt.C) {
		out, err := runCmd(t, input, "--home", t.TempDir(), "--no-color", "--seed")
		c.Assert(err, qt.IsNil)
		c.Assert(out, qt.Contains, "Camel number 1, My name is: Humphrey")
		c.Assert(strings.HasSuffix(out, "Goodbye.\n"), qt.IsTrue)
	})

	c.Run("run subcommand starts the menu", func(c *qt.C) {
		out, err := runCmd(t, input, "run", "--home", t.TempDir(), "--no-color")
		c.Assert(err, qt.IsNil)
		c.Assert(out, qt.Contains, "The list of camels is empty.")
		c.Assert(out, qt.Contains, "Goodbye.")
	})
}

func TestSession_IgnoreCaseFlag(t *testing.T) {
	c := qt.New(t)

	input := lines("1", "1", "1", "3", "REX", "1", "0", "0", "0", "0")

	out, err := runCmd(t, input, "--home", t.TempDir(), "--no-color", "--seed")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Dog not found.")

	out, err = runCmd(t, input, "--home", t.TempDir(), "--no-color", "--seed", "--ignore-case")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Dog with name: Rex has been deleted from a list of dogs")
	c.Assert(out, qt.Contains, "The list of dogs is empty.")
}

func TestSession_SettingsFile(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	err := os.WriteFile(filepath.Join(home, "settings.yaml"), []byte("seed: true\nignore_case: true\n"), 0o600)
	c.Assert(err, qt.IsNil)

	out, err := runCmd(t, lines("1", "1", "3", "3", "odette", "0", "0", "0", "0"), "--home", home, "--no-color")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Swan with name: Odette has been deleted from a list of swans")
}

func TestSession_UnreadableSettingsFallBackToDefaults(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	err := os.WriteFile(filepath.Join(home, "settings.yaml"), []byte("screen_colors: [\n"), 0o600)
	c.Assert(err, qt.IsNil)

	out, err := runCmd(t, lines("0"), "--home", home, "--no-color")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Goodbye.")
}

func TestSession_SaveFromSettingsScreen(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	_, err := runCmd(t, lines("2", "2", "swans", "#102030", "3", "0", "0"), "--home", home, "--no-color")
	c.Assert(err, qt.IsNil)

	out, err := runCmd(t, "", "--home", home, "config")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Matches, `(?s).*swans: ["']#102030["'].*`)
}

// ---------------------------------------------------------------------------
// Config
// ---------------------------------------------------------------------------

func TestConfig_Show(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	out, err := runCmd(t, "", "--home", home, "config")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "home: "+home)
	c.Assert(out, qt.Contains, "home_source: flag")
	c.Assert(out, qt.Contains, "camels: DarkYellow")
	c.Assert(out, qt.Contains, "ignore_case: false")
}

func TestConfig_Init(t *testing.T) {
	c := qt.New(t)

	home := filepath.Join(t.TempDir(), "zoo")
	out, err := runCmd(t, "", "--home", home, "config", "init")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Created "+filepath.Join(home, "settings.yaml"))

	out, err = runCmd(t, "", "--home", home, "config", "init")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Settings already exist")

	out, err = runCmd(t, "", "--home", home, "config", "init", "--force")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Created ")

	out, err = runCmd(t, "", "--home", home, "config")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "main: White")
}

func TestConfig_SetColor(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	out, err := runCmd(t, "", "--home", home, "config", "set-color", "Camels", "red")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Screen camels now uses Red")

	out, err = runCmd(t, "", "--home", home, "config")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "camels: Red")
}

func TestConfig_SetColor_FailurePath(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()

	c.Run("unknown screen", func(c *qt.C) {
		_, err := runCmd(t, "", "--home", home, "config", "set-color", "birds", "red")
		c.Assert(err, qt.ErrorIs, palette.ErrUnknownScreen)
	})

	c.Run("unknown color", func(c *qt.C) {
		_, err := runCmd(t, "", "--home", home, "config", "set-color", "camels", "purple")
		c.Assert(err, qt.ErrorIs, palette.ErrUnknownColor)
	})

	c.Run("missing arguments", func(c *qt.C) {
		_, err := runCmd(t, "", "--home", home, "config", "set-color", "camels")
		c.Assert(err, qt.IsNotNil)
	})
}

func TestConfig_Colors(t *testing.T) {
	c := qt.New(t)

	out, err := runCmd(t, "", "config", "colors")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "  camels\n")
	c.Assert(out, qt.Contains, "  DarkYellow\n")
	c.Assert(out, qt.Contains, "#RRGGBB")
}
