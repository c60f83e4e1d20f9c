package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/oraclekit/ergoscan/address"
)

type Config struct {
	NodeURL string
	APIKey  string
	DataDir string

	PoolNFT          string
	RefreshNFT       string
	ParticipantToken string

	PoolAddress      string
	RefreshAddress   string
	EpochPrepAddress string
	DatapointAddress string
	OracleAddress    string
	DepositAddress   string
}

var (
	NodeURL = "NODE_URL"
	APIKey  = "API_KEY"
	DataDir = "DATA_DIR"

	PoolNFT          = "POOL_NFT"
	RefreshNFT       = "REFRESH_NFT"
	ParticipantToken = "PARTICIPANT_TOKEN"

	PoolAddress      = "POOL_ADDRESS"
	RefreshAddress   = "REFRESH_ADDRESS"
	EpochPrepAddress = "EPOCH_PREP_ADDRESS"
	DatapointAddress = "DATAPOINT_ADDRESS"
	OracleAddress    = "ORACLE_ADDRESS"
	DepositAddress   = "DEPOSIT_ADDRESS"

	defaultNodeURL = "http://127.0.0.1:9053"
	defaultDataDir = "."
)

// LoadConfig reads configuration from the environment (ERGOSCAN_ prefix)
// and optionally from a config file pointed at by ERGOSCAN_CONFIG.
func LoadConfig() (*Config, error) {
	viper.SetEnvPrefix("ERGOSCAN")
	viper.AutomaticEnv()

	viper.SetDefault(NodeURL, defaultNodeURL)
	viper.SetDefault(DataDir, defaultDataDir)

	if cfgFile := os.Getenv("ERGOSCAN_CONFIG"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error while reading config file: %s", err)
		}
	}

	cfg := &Config{
		NodeURL:          viper.GetString(NodeURL),
		APIKey:           viper.GetString(APIKey),
		DataDir:          viper.GetString(DataDir),
		PoolNFT:          viper.GetString(PoolNFT),
		RefreshNFT:       viper.GetString(RefreshNFT),
		ParticipantToken: viper.GetString(ParticipantToken),
		PoolAddress:      viper.GetString(PoolAddress),
		RefreshAddress:   viper.GetString(RefreshAddress),
		EpochPrepAddress: viper.GetString(EpochPrepAddress),
		DatapointAddress: viper.GetString(DatapointAddress),
		OracleAddress:    viper.GetString(OracleAddress),
		DepositAddress:   viper.GetString(DepositAddress),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.NodeURL) <= 0 {
		return fmt.Errorf("missing node url")
	}
	if len(c.DataDir) <= 0 {
		return fmt.Errorf("missing data dir")
	}
	return nil
}

// ValidateCatalogParams checks every parameter the scan catalog needs,
// failing fast on malformed inputs before anything reaches the node.
func (c *Config) ValidateCatalogParams() error {
	tokens := map[string]string{
		"pool nft":          c.PoolNFT,
		"refresh nft":       c.RefreshNFT,
		"participant token": c.ParticipantToken,
	}
	for name, id := range tokens {
		if id == "" {
			return fmt.Errorf("missing %s", name)
		}
		if err := address.CheckTokenID(id); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	addrs := map[string]string{
		"pool address":       c.PoolAddress,
		"refresh address":    c.RefreshAddress,
		"epoch prep address": c.EpochPrepAddress,
		"datapoint address":  c.DatapointAddress,
		"oracle address":     c.OracleAddress,
		"deposit address":    c.DepositAddress,
	}
	for name, addr := range addrs {
		if addr == "" {
			return fmt.Errorf("missing %s", name)
		}
		if err := address.Check(addr); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	return nil
}
