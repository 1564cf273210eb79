package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/dm/balena-go/internal/fleet"
	"github.com/dm/balena-go/internal/logger"
	"github.com/dm/balena-go/internal/model"
	"github.com/dm/balena-go/internal/visuals"
)

// RenamedMsg is printed by the deprecated apps alias.
const RenamedMsg = `The 'apps' command was renamed to 'fleets', and 'apps' is now an alias.
THE ALIAS WILL BE REMOVED in the next major version of the balena CLI
(so that a different 'apps' command can be implemented in the future).
Find out more at: <link to blog or wiki or docs website>`

type fleetsOptions struct {
	// verbose is accepted for backwards compatibility and ignored.
	verbose bool
}

func addFleetsFlags(fs *pflag.FlagSet, o *fleetsOptions) {
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "No-op since release v12.0.0")
}

// NewFleetsCmd returns the "fleets" command.
func NewFleetsCmd(env *Env) *cobra.Command {
	var opts fleetsOptions
	cmd := &cobra.Command{
		Use:   "fleets",
		Short: "List all fleets",
		Long: `List all fleets.

List all your balena fleets.

For detailed information on a particular fleet, use
` + "`balena fleet <fleet>`",
		Example: "  $ balena fleets",
		GroupID: groupPrimary,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listFleets(cmd.Context(), env)
		},
	}
	addFleetsFlags(cmd.Flags(), &opts)
	return cmd
}

// NewAppsCmd returns the deprecated "apps" alias. It behaves exactly like
// fleets, after warning on an interactive stderr.
func NewAppsCmd(env *Env) *cobra.Command {
	var opts fleetsOptions
	cmd := &cobra.Command{
		Use:   "apps",
		Short: "DEPRECATED alias for the 'fleets' command",
		Long: "DEPRECATED alias for the 'fleets' command\n\n" +
			RenamedMsg +
			"\n\nFor command usage, see 'balena help fleets'",
		GroupID: groupPrimary,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if env.StderrIsTerminal() {
				if err := visuals.Warn(env.Stderr, RenamedMsg); err != nil {
					return err
				}
			}
			return listFleets(cmd.Context(), env)
		},
	}
	addFleetsFlags(cmd.Flags(), &opts)
	return cmd
}

// listFleets fetches, shapes and prints the fleets table. Nothing reaches
// stdout unless every step succeeds.
func listFleets(ctx context.Context, env *Env) error {
	if ctx == nil {
		ctx = context.Background()
	}

	api, err := env.Connect(ctx)
	if err != nil {
		return err
	}

	raw, err := fleet.Fetch(ctx, api)
	if err != nil {
		return err
	}
	logger.Logger.Debug("fleets fetched", zap.Int("count", len(raw)))

	rows, err := fleet.ComputeDisplayFleets(raw)
	if err != nil {
		return err
	}

	out, err := visuals.Horizontal(lipgloss.NewRenderer(env.Stdout), rows, model.FleetColumns)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Stdout, out)
	return err
}
