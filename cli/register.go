package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oraclekit/ergoscan/config"
	"github.com/oraclekit/ergoscan/logging"
	"github.com/oraclekit/ergoscan/nodeclient"
	"github.com/oraclekit/ergoscan/scan"
)

// RegisterOptions holds flags for the register command.
type RegisterOptions struct {
	*RootOptions
	RefreshScanName string
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RegisterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register the full scan catalog and persist scan ids",
		Long: `Register all oracle pool scans on the configured node and write the
resulting name to id mapping to scanIDs.json. The sequence aborts on the
first failure; nothing is persisted unless every scan registered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(opts)
		},
	}

	cmd.Flags().StringVar(&opts.RefreshScanName, "refresh-scan-name",
		"Refresh Box Scan", "scan name used for the refresh box scan")

	return cmd
}

func runRegister(opts *RegisterOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateCatalogParams(); err != nil {
		return err
	}

	node := nodeclient.NewClientNode(cfg.NodeURL, cfg.APIKey)

	// pool and refresh contract trees are resolved up front; the builders
	// take already encoded bytes
	poolTreeBytes, err := node.AddressToBytes(cfg.PoolAddress)
	if err != nil {
		return fmt.Errorf("resolving pool address: %w", err)
	}
	refreshTreeBytes, err := node.AddressToBytes(cfg.RefreshAddress)
	if err != nil {
		return fmt.Errorf("resolving refresh address: %w", err)
	}

	var scans []*scan.Scan

	poolScan, err := scan.RegisterPoolBoxScan(node, cfg.PoolNFT, poolTreeBytes)
	if err != nil {
		return err
	}
	scans = append(scans, poolScan)

	refreshScan, err := scan.RegisterRefreshBoxScan(
		node, opts.RefreshScanName, cfg.RefreshNFT, refreshTreeBytes)
	if err != nil {
		return err
	}
	scans = append(scans, refreshScan)

	epochPrepScan, err := scan.RegisterEpochPreparationScan(
		node, cfg.PoolNFT, cfg.EpochPrepAddress)
	if err != nil {
		return err
	}
	scans = append(scans, epochPrepScan)

	localDatapointScan, err := scan.RegisterLocalOracleDatapointScan(
		node, cfg.ParticipantToken, cfg.DatapointAddress, cfg.OracleAddress)
	if err != nil {
		return err
	}
	scans = append(scans, localDatapointScan)

	datapointScan, err := scan.RegisterDatapointScan(
		node, cfg.ParticipantToken, cfg.DatapointAddress)
	if err != nil {
		return err
	}
	scans = append(scans, datapointScan)

	depositScan, err := scan.RegisterPoolDepositScan(node, cfg.DepositAddress)
	if err != nil {
		return err
	}
	scans = append(scans, depositScan)

	if err := scan.SaveScanIDs(cfg.DataDir, scans); err != nil {
		return err
	}

	logging.L.Info().
		Int("scans", len(scans)).
		Str("dir", cfg.DataDir).
		Msg("scan catalog registered and saved")

	return nil
}
