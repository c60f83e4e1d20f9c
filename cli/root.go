package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/oraclekit/ergoscan/logging"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the ergoscan CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ergoscan",
		Short: "Manage UTXO-set scans on an Ergo node",
		Long: `ergoscan registers the oracle pool tracking rules on an Ergo node,
persists the resulting scan ids, and retrieves the boxes they match.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.Verbose {
				logging.SetLogLevel(zerolog.DebugLevel)
			} else {
				logging.SetLogLevel(zerolog.InfoLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewBoxesCommand(opts))

	return cmd
}
