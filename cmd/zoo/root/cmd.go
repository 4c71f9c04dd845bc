// Package rootcmd wires the root cobra.Command for the zoo CLI binary.
package rootcmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	configcmd "github.com/go-ports/zoo/cmd/zoo/config"
	runcmd "github.com/go-ports/zoo/cmd/zoo/run"
	"github.com/go-ports/zoo/cmd/zoo/shared"
	"github.com/go-ports/zoo/internal/buildinfo"
)

// New creates and returns the root cobra.Command for the zoo CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}
	session := runcmd.New(ctx)

	root := &cobra.Command{
		Use:           "zoo",
		Short:         "Zoo: a console menu for dog, wolf, swan and camel records",
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if ctx.Verbose {
				h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				slog.SetDefault(slog.New(h))
			}
		},
		RunE: session.Run,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&ctx.Home, "home", "",
		"Override settings directory (default: $ZOO_HOME env → ~/.zoo)")
	pf.BoolVarP(&ctx.Verbose, "verbose", "v", false, "Log debug output to stderr")
	pf.BoolVar(&ctx.Seed, "seed", false, "Start the session with sample records")
	pf.BoolVar(&ctx.IgnoreCase, "ignore-case", false, "Match names case-insensitively")
	pf.BoolVar(&ctx.NoColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		session.Cmd(),
		configcmd.New(ctx).Cmd(),
	)

	return root
}
