package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oraclekit/ergoscan/config"
	"github.com/oraclekit/ergoscan/nodeclient"
	"github.com/oraclekit/ergoscan/scan"
	"github.com/oraclekit/ergoscan/utils"
)

// BoxesOptions holds flags for the boxes command.
type BoxesOptions struct {
	*RootOptions
	Serialized bool
}

// NewBoxesCommand creates the boxes command.
func NewBoxesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BoxesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "boxes <scan-name>",
		Short: "List the boxes currently matched by a registered scan",
		Long: `List the boxes matched by one of the scans previously registered and
saved to scanIDs.json, looked up by scan name.

Example:
  ergoscan boxes "Pool Box Scan"
  ergoscan boxes "Pool Deposits Scan" --serialized`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoxes(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.Serialized, "serialized", false,
		"print base16 serialized boxes usable as rawInputs")

	return cmd
}

func runBoxes(cmd *cobra.Command, opts *BoxesOptions, scanName string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ids, err := scan.LoadScanIDs(cfg.DataDir)
	if err != nil {
		return err
	}

	id, ok := ids[scanName]
	if !ok {
		return fmt.Errorf("no saved scan named %q", scanName)
	}

	node := nodeclient.NewClientNode(cfg.NodeURL, cfg.APIKey)
	s := scan.New(node, scanName, id)

	if opts.Serialized {
		serialized, err := s.GetSerializedBoxes()
		if err != nil {
			return err
		}
		for _, raw := range serialized {
			fmt.Fprintln(cmd.OutOrStdout(), raw)
		}
		return nil
	}

	boxes, err := s.GetBoxes()
	if err != nil {
		return err
	}
	for _, box := range boxes {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s ERG\n",
			box.BoxID, utils.FormatNanoErg(box.Value))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d box(es)\n", len(boxes))

	return nil
}
