// Package runcmd implements the `zoo run` command, the interactive session.
package runcmd

import (
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/go-ports/zoo/cmd/zoo/shared"
	"github.com/go-ports/zoo/internal/config"
	"github.com/go-ports/zoo/internal/console"
	"github.com/go-ports/zoo/internal/models"
	"github.com/go-ports/zoo/internal/screen"
	"github.com/go-ports/zoo/internal/service"
)

// Command implements `zoo run`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the run command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "run",
		Short: "Start the interactive menu (default when no command is given)",
		Args:  cobra.NoArgs,
		RunE:  c.Run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

// Run starts a session on the command's stdin/stdout and returns when the
// user leaves the main menu or input runs out.
func (c *Command) Run(cmd *cobra.Command, _ []string) error {
	home, _ := c.ctx.ResolveHome()
	path := config.SettingsPath(home)
	cfg, err := config.Load(path)
	if err != nil {
		slog.Warn("using default settings", "path", path, "err", err)
		cfg = config.Default()
	}

	var opts []termenv.OutputOption
	if c.ctx.NoColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts...)

	animals := models.NewAnimals()
	if c.ctx.Seed || cfg.Seed {
		models.Seed(animals)
	}

	settings := service.NewSettings(cfg, path, con)
	match := settings.Match()
	if c.ctx.IgnoreCase {
		match = models.FoldMatch
	}
	slog.Debug("session start", "settings", path, "seed", c.ctx.Seed || cfg.Seed)

	screen.NewMain(con, service.NewData(animals), settings, match).Show()
	return nil
}
