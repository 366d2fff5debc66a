package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "poolsync"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Store key prefixes
var (
	// ConfigKey holds the module Config singleton
	ConfigKey = []byte{0x01}

	// PoolKeyPrefix prefixes registered pools, keyed by big-endian pool ID
	PoolKeyPrefix = []byte{0x02}
)

// GetPoolKey returns the store key for a pool
func GetPoolKey(poolID uint64) []byte {
	key := make([]byte, 0, len(PoolKeyPrefix)+8)
	key = append(key, PoolKeyPrefix...)
	return append(key, sdk.Uint64ToBigEndian(poolID)...)
}

// ModuleAddress is the account poolsync signs AMM scaling factor updates
// with. Pools must name it as their scaling factor controller.
func ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}
