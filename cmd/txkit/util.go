package txkit

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/smartcontractkit/txkit/sdk"
	"github.com/smartcontractkit/txkit/types"
)

func newLogger(verbose bool) (sdk.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	lggr, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return lggr.Sugar(), nil
}

// loadEnv reads the .env file into the process environment. A missing file is not an error so
// values may also come from the shell.
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func loadPrivateKey() (*ecdsa.PrivateKey, error) {
	pk := os.Getenv("PRIVATE_KEY")
	if pk == "" {
		return nil, errors.New("PRIVATE_KEY not found in .env file")
	}

	return crypto.HexToECDSA(strings.TrimPrefix(pk, "0x"))
}

func loadRPC(chainSelector types.ChainSelector) (*ethclient.Client, error) {
	rpcKey := fmt.Sprintf("RPC_URL_%d", chainSelector)
	rpcURL := os.Getenv(rpcKey)
	if rpcURL == "" {
		return nil, errors.New(rpcKey + " not found in .env file")
	}

	return ethclient.Dial(rpcURL)
}

// loadWallet connects to the EIP-5792 wallet endpoint in WALLET_RPC_URL, if one is configured.
func loadWallet() (*rpc.Client, bool, error) {
	walletURL := os.Getenv("WALLET_RPC_URL")
	if walletURL == "" {
		return nil, false, nil
	}

	client, err := rpc.Dial(walletURL)
	if err != nil {
		return nil, false, err
	}

	return client, true, nil
}

// loadDuration reads a duration such as "90s" from the environment, falling back to def.
func loadDuration(key string, def time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}

	d, err := cast.ToDurationE(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return d, nil
}

func loadExplorerOverrides(envPath string, chain types.ChainSelector) map[types.ChainSelector]string {
	if err := loadEnv(envPath); err != nil {
		return nil
	}

	url := os.Getenv(fmt.Sprintf("EXPLORER_URL_%d", chain))
	if url == "" {
		return nil
	}

	return map[types.ChainSelector]string{chain: url}
}

// parseCall reads a call given as to[:data[:value]], with data in hex and value in wei.
func parseCall(s string) (types.Call, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 || !common.IsHexAddress(parts[0]) {
		return types.Call{}, fmt.Errorf("invalid call %q: want to[:data[:value]]", s)
	}

	var data []byte
	if len(parts) > 1 && parts[1] != "" && parts[1] != "0x" {
		var err error
		if data, err = hexutil.Decode(parts[1]); err != nil {
			return types.Call{}, fmt.Errorf("invalid call data %q: %w", parts[1], err)
		}
	}

	var value *big.Int
	if len(parts) > 2 && parts[2] != "" {
		v, ok := new(big.Int).SetString(parts[2], 0)
		if !ok || v.Sign() < 0 {
			return types.Call{}, fmt.Errorf("invalid call value %q", parts[2])
		}
		value = v
	}

	return types.NewCall(common.HexToAddress(parts[0]), data, value), nil
}
