package scan

import "github.com/oraclekit/ergoscan/nodeclient"

// Fixed scan names used as keys in scanIDs.json. The refresh box scan
// name comes from the caller instead.
const (
	PoolBoxScanName              = "Pool Box Scan"
	EpochPreparationScanName     = "Epoch Preparation Scan"
	LocalOracleDatapointScanName = "Local Oracle Datapoint Scan"
	DatapointScanName            = "All Datapoints Scan"
	PoolDepositScanName          = "Pool Deposits Scan"
)

// RegisterPoolBoxScan registers scanning for the pool box: holds the pool
// NFT and sits at the pool contract.
func RegisterPoolBoxScan(node nodeclient.Connector, poolNFT, poolTreeBytes string) (*Scan, error) {
	pred := And(
		ContainsAsset(poolNFT),
		EqualsValue(poolTreeBytes),
	)
	return Register(node, PoolBoxScanName, pred)
}

// RegisterRefreshBoxScan registers scanning for the refresh box under a
// caller-chosen scan name.
func RegisterRefreshBoxScan(node nodeclient.Connector, scanName, refreshNFT, refreshTreeBytes string) (*Scan, error) {
	pred := And(
		ContainsAsset(refreshNFT),
		EqualsValue(refreshTreeBytes),
	)
	return Register(node, scanName, pred)
}

// RegisterEpochPreparationScan registers scanning for the epoch
// preparation stage box.
func RegisterEpochPreparationScan(node nodeclient.Connector, poolNFT, epochPrepAddress string) (*Scan, error) {
	epochPrepBytes, err := node.AddressToBytes(epochPrepAddress)
	if err != nil {
		return nil, &NodeError{Op: "address to bytes", Err: err}
	}

	pred := And(
		ContainsAsset(poolNFT),
		EqualsValue(epochPrepBytes),
	)
	return Register(node, EpochPreparationScanName, pred)
}

// RegisterLocalOracleDatapointScan registers scanning for this oracle's
// own datapoint box: participant token, datapoint contract, and the
// oracle's address in R4.
func RegisterLocalOracleDatapointScan(node nodeclient.Connector, participantToken, datapointAddress, oracleAddress string) (*Scan, error) {
	datapointBytes, err := node.AddressToBytes(datapointAddress)
	if err != nil {
		return nil, &NodeError{Op: "address to bytes", Err: err}
	}

	// raw EC point bytes plus type tag, the encoding R4 holds
	oracleRawBytes, err := node.AddressToRawForRegister(oracleAddress)
	if err != nil {
		return nil, &NodeError{Op: "address to raw", Err: err}
	}

	pred := And(
		ContainsAsset(participantToken),
		EqualsValue(datapointBytes),
		EqualsRegister("R4", oracleRawBytes),
	)
	return Register(node, LocalOracleDatapointScanName, pred)
}

// RegisterDatapointScan registers scanning for every oracle's datapoint
// box, used for datapoint collection.
func RegisterDatapointScan(node nodeclient.Connector, participantToken, datapointAddress string) (*Scan, error) {
	datapointBytes, err := node.AddressToBytes(datapointAddress)
	if err != nil {
		return nil, &NodeError{Op: "address to bytes", Err: err}
	}

	pred := And(
		ContainsAsset(participantToken),
		EqualsValue(datapointBytes),
	)
	return Register(node, DatapointScanName, pred)
}

// RegisterPoolDepositScan registers scanning for any box at the pool
// deposit address. No asset condition: deposits are matched on address
// alone, whatever they hold.
func RegisterPoolDepositScan(node nodeclient.Connector, depositAddress string) (*Scan, error) {
	depositBytes, err := node.AddressToBytes(depositAddress)
	if err != nil {
		return nil, &NodeError{Op: "address to bytes", Err: err}
	}

	pred := EqualsValue(depositBytes)
	return Register(node, PoolDepositScanName, pred)
}
