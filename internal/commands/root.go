package commands

import "github.com/spf13/cobra"

const groupPrimary = "primary"

// NewRootCmd builds the balena command tree bound to env.
func NewRootCmd(env *Env) *cobra.Command {
	root := &cobra.Command{
		Use:           "balena",
		Short:         "balena command line interface",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddGroup(&cobra.Group{ID: groupPrimary, Title: "Primary commands:"})
	root.AddCommand(
		NewFleetsCmd(env),
		NewAppsCmd(env),
	)
	return root
}
