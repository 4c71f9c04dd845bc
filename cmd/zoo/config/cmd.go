// Package configcmd implements the `zoo config` command group.
package configcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/zoo/cmd/zoo/shared"
	"github.com/go-ports/zoo/internal/config"
	"github.com/go-ports/zoo/internal/palette"
)

const configTemplate = `# Zoo settings

# Colour of each menu screen. Accepts the classic console colour names
# (Black, DarkBlue, ..., Yellow, White) or "#RRGGBB".
screen_colors:
  main: White
  animals: Cyan
  mammals: Green
  dogs: Yellow
  wolves: DarkGray
  swans: Blue
  camels: DarkYellow
  settings: Magenta

# Compare names case-insensitively when deleting or modifying.
ignore_case: false

# Start every session with one sample record per species.
seed: false
`

// Command implements `zoo config`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the config command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "config",
		Short: "Show or manage settings",
		Args:  cobra.NoArgs,
		RunE:  c.runShow,
	}
	c.cmd.AddCommand(
		newConfigInit(ctx),
		newSetColor(ctx),
		newColors(),
	)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) runShow(cmd *cobra.Command, _ []string) error {
	home, source := c.ctx.ResolveHome()
	cfg, err := config.Load(config.SettingsPath(home))
	if err != nil {
		return err
	}
	colors := make(map[string]string, len(cfg.ScreenColors))
	for id, col := range cfg.ScreenColors {
		colors[string(id)] = string(col)
	}
	data := map[string]any{
		"screen_colors": colors,
		"ignore_case":   cfg.IgnoreCase,
		"seed":          cfg.Seed,
		"home":          home,
		"home_source":   source,
	}
	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

// ---------------------------------------------------------------------------
// config init
// ---------------------------------------------------------------------------

func newConfigInit(ctx *shared.Context) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a starter settings.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, _ := ctx.ResolveHome()
			cfgPath := config.SettingsPath(home)
			out := cmd.OutOrStdout()
			if _, err := os.Stat(cfgPath); err == nil && !force {
				fmt.Fprintf(out, "Settings already exist at %s\n", cfgPath)
				fmt.Fprintln(out, "Use --force to overwrite.")
				return nil
			}
			if err := os.MkdirAll(home, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(cfgPath, []byte(configTemplate), 0o600); err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %s\n", cfgPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing settings")
	return cmd
}

// ---------------------------------------------------------------------------
// config set-color
// ---------------------------------------------------------------------------

func newSetColor(ctx *shared.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "set-color <screen> <color>",
		Short: "Persist the color of one screen",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := palette.ParseScreen(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}
			col, err := palette.ParseColor(args[1])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[1])
			}
			home, _ := ctx.ResolveHome()
			cfgPath := config.SettingsPath(home)
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg.ScreenColors[id] = col
			if err := config.Save(cfgPath, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Screen %s now uses %s\n", id, col)
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// config colors
// ---------------------------------------------------------------------------

func newColors() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List screen names and accepted colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Screens:")
			for _, id := range palette.Screens {
				fmt.Fprintf(out, "  %s\n", id)
			}
			fmt.Fprintln(out, "Colors:")
			for _, col := range palette.ColorNames {
				fmt.Fprintf(out, "  %s\n", col)
			}
			fmt.Fprintln(out, `  #RRGGBB`)
			return nil
		},
	}
}
