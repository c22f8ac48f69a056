package scaffold

import "github.com/ethereum/go-ethereum/common"

// ChainConfig describes a supported target network.
type ChainConfig struct {
	ID       string
	Name     string
	ChainID  uint64
	RPCURL   string
	ScanPath string
}

// Contracts is the pair of registry addresses an agent registers against.
type Contracts struct {
	IdentityRegistry   common.Address
	ReputationRegistry common.Address
}

const (
	// ChainMonadMainnet is the only mainnet-tier chain identifier.
	ChainMonadMainnet = "monad-mainnet"
	// ChainMonadTestnet is also the deterministic fallback for
	// unrecognized chain identifiers.
	ChainMonadTestnet = "monad-testnet"
)

var chainConfigs = map[string]ChainConfig{
	ChainMonadMainnet: {
		ID:       ChainMonadMainnet,
		Name:     "Monad Mainnet",
		ChainID:  143,
		RPCURL:   "https://rpc.monad.xyz",
		ScanPath: "https://monadscan.com",
	},
	ChainMonadTestnet: {
		ID:       ChainMonadTestnet,
		Name:     "Monad Testnet",
		ChainID:  10143,
		RPCURL:   "https://testnet-rpc.monad.xyz",
		ScanPath: "https://testnet.monadscan.com",
	},
}

var (
	mainnetContracts = Contracts{
		IdentityRegistry:   common.HexToAddress("0x8004a6090Cd10A7288092483047B097295Fb8847"),
		ReputationRegistry: common.HexToAddress("0x8004B663056A597Dffe9eCcC1A86AF8D71CcbC16"),
	}
	testnetContracts = Contracts{
		IdentityRegistry:   common.HexToAddress("0x8004C1f8CF48B8dF9C0B1aA02757dF8e5108Fd37"),
		ReputationRegistry: common.HexToAddress("0x8004D40FAF11dec2a6c29A25b25dE52A94a288Bf"),
	}
)

// ChainByID resolves a chain identifier to its configuration. Unrecognized
// identifiers fall back to Monad Testnet so generation stays deterministic
// for any input.
func ChainByID(id string) ChainConfig {
	if cfg, ok := chainConfigs[id]; ok {
		return cfg
	}
	return chainConfigs[ChainMonadTestnet]
}

// SupportedChains returns the chain configurations in a stable order,
// mainnet first.
func SupportedChains() []ChainConfig {
	return []ChainConfig{
		chainConfigs[ChainMonadMainnet],
		chainConfigs[ChainMonadTestnet],
	}
}

// IsSupportedChain reports whether id names a known chain.
func IsSupportedChain(id string) bool {
	_, ok := chainConfigs[id]
	return ok
}

// SelectContracts classifies the chain into a network tier by exact match
// against the mainnet identifier; every other identifier, including
// unrecognized ones, maps to the testnet pair.
func SelectContracts(chain string) Contracts {
	if chain == ChainMonadMainnet {
		return mainnetContracts
	}
	return testnetContracts
}
