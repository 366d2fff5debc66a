// Package keeper provides shared keeper interfaces for cross-module communication.
// Versioned interfaces keep the contract between ratesync, poolsync and the
// host AMM module stable while the concrete keepers evolve.
package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// =============================================================================
// Rate Oracle Keeper Interfaces (Versioned)
// =============================================================================

// RateOracleKeeperV1 is the read-only view of the redemption-rate registry
// consumed by other modules. Modules should depend on this interface rather
// than the concrete ratesync keeper.
type RateOracleKeeperV1 interface {
	// GetLatestRedemptionRate returns the most recent observation stored under
	// the given (IBC-hashed) denom. It fails if the denom has no history.
	GetLatestRedemptionRate(ctx context.Context, denom string) (RedemptionRateInfo, error)
}

// RedemptionRateInfo holds rate data returned by the registry.
type RedemptionRateInfo struct {
	Denom           string
	Value           sdkmath.LegacyDec
	UpdateTime      uint64
	AnomalyDetected bool
}

// =============================================================================
// Stableswap Keeper Interfaces (Versioned)
// =============================================================================

// StableswapKeeperV1 is the subset of the host AMM module used to keep pool
// scaling factors in line with the redemption rate.
type StableswapKeeperV1 interface {
	// GetStableswapPool returns the live pool by ID and whether it exists.
	GetStableswapPool(ctx context.Context, poolID uint64) (StableswapPoolInfo, bool)

	// AdjustScalingFactors replaces the pool scaling factors. The sender must
	// be the pool's scaling factor controller.
	AdjustScalingFactors(ctx context.Context, sender sdk.AccAddress, poolID uint64, scalingFactors []uint64) error
}

// StableswapPoolInfo holds pool data returned by AMM queries. Denoms and
// ScalingFactors are positional and share the pool's asset order.
type StableswapPoolInfo struct {
	PoolID                  uint64
	Denoms                  []string
	ScalingFactors          []uint64
	ScalingFactorController string
}

// DenomAt returns the denom at the given asset position.
func (p StableswapPoolInfo) DenomAt(i int) (string, bool) {
	if i < 0 || i >= len(p.Denoms) {
		return "", false
	}
	return p.Denoms[i], true
}

// =============================================================================
// Version Constants
// =============================================================================

const (
	// RateOracleKeeperVersion is the current rate oracle keeper interface version.
	RateOracleKeeperVersion = "v1.0.0"

	// StableswapKeeperVersion is the current stableswap keeper interface version.
	StableswapKeeperVersion = "v1.0.0"
)
