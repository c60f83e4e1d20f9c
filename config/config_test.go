package config_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/oraclekit/ergoscan/address"
	"github.com/oraclekit/ergoscan/config"
)

func testAddress() string {
	body := append([]byte{address.MainnetPrefix | address.TypeP2PK}, make([]byte, 33)...)
	digest := blake2b.Sum256(body)
	return base58.Encode(append(body, digest[:4]...))
}

const testTokenID = "8c27dd9d8a35aac1e3167d58858c0a8b4059b277da790552e37eba22df9b9035"

func setCatalogEnv(t *testing.T) {
	addr := testAddress()
	t.Setenv("ERGOSCAN_POOL_NFT", testTokenID)
	t.Setenv("ERGOSCAN_REFRESH_NFT", testTokenID)
	t.Setenv("ERGOSCAN_PARTICIPANT_TOKEN", testTokenID)
	t.Setenv("ERGOSCAN_POOL_ADDRESS", addr)
	t.Setenv("ERGOSCAN_REFRESH_ADDRESS", addr)
	t.Setenv("ERGOSCAN_EPOCH_PREP_ADDRESS", addr)
	t.Setenv("ERGOSCAN_DATAPOINT_ADDRESS", addr)
	t.Setenv("ERGOSCAN_ORACLE_ADDRESS", addr)
	t.Setenv("ERGOSCAN_DEPOSIT_ADDRESS", addr)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "http://127.0.0.1:9053", cfg.NodeURL)
		require.Equal(t, ".", cfg.DataDir)
	})

	t.Run("from_env", func(t *testing.T) {
		t.Setenv("ERGOSCAN_NODE_URL", "http://node:9053")
		t.Setenv("ERGOSCAN_API_KEY", "hunter2")
		t.Setenv("ERGOSCAN_DATA_DIR", "/tmp/ergoscan")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "http://node:9053", cfg.NodeURL)
		require.Equal(t, "hunter2", cfg.APIKey)
		require.Equal(t, "/tmp/ergoscan", cfg.DataDir)
	})
}

func TestValidateCatalogParams(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		setCatalogEnv(t)
		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		require.NoError(t, cfg.ValidateCatalogParams())
	})

	t.Run("missing_token", func(t *testing.T) {
		setCatalogEnv(t)
		t.Setenv("ERGOSCAN_POOL_NFT", "")
		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		require.ErrorContains(t, cfg.ValidateCatalogParams(), "pool nft")
	})

	t.Run("malformed_token", func(t *testing.T) {
		setCatalogEnv(t)
		t.Setenv("ERGOSCAN_REFRESH_NFT", "nothex")
		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		require.ErrorContains(t, cfg.ValidateCatalogParams(), "refresh nft")
	})

	t.Run("malformed_address", func(t *testing.T) {
		setCatalogEnv(t)
		t.Setenv("ERGOSCAN_ORACLE_ADDRESS", "not an address")
		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		require.ErrorContains(t, cfg.ValidateCatalogParams(), "oracle address")
	})
}
