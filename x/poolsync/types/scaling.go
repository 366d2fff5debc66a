package types

import (
	"math"

	sdkmath "cosmossdk.io/math"

	sharedkeeper "github.com/ratesync-network/ratesync/x/shared/keeper"
)

// ScalingFactorMultiplier is the scaling factor of the native asset. The
// stkToken factor is the redemption rate in units of 1/ScalingFactorMultiplier.
const ScalingFactorMultiplier int64 = 100_000

// ConvertRedemptionRateToScalingFactors returns the pool scaling factors for
// a redemption rate, truncating precision below 1/ScalingFactorMultiplier.
// Negative rates clamp to zero and rates too large for a uint64 factor clamp
// to math.MaxUint64.
func ConvertRedemptionRateToScalingFactors(rate sdkmath.LegacyDec, ordering AssetOrdering) [2]uint64 {
	multiplier := uint64(ScalingFactorMultiplier)

	var factor uint64
	scaled := rate.MulInt64(ScalingFactorMultiplier).TruncateInt()
	switch {
	case scaled.IsNegative():
		factor = 0
	case !scaled.IsUint64():
		factor = math.MaxUint64
	default:
		factor = scaled.Uint64()
	}

	if ordering == StkTokenFirst {
		return [2]uint64{multiplier, factor}
	}
	return [2]uint64{factor, multiplier}
}

// ValidatePoolConfiguration checks the live AMM pool against a registration
// request: the IDs match, there are exactly 2 assets, and stkDenom sits at
// the position ordering implies.
func ValidatePoolConfiguration(pool sharedkeeper.StableswapPoolInfo, poolID uint64, stkDenom string, ordering AssetOrdering) error {
	if pool.PoolID != poolID {
		return ErrPoolNotFoundOnAMM.Wrapf("pool %d", poolID)
	}
	if len(pool.Denoms) != 2 {
		return ErrInvalidNumberOfPoolAssets.Wrapf("pool %d has %d assets", poolID, len(pool.Denoms))
	}

	denom, _ := pool.DenomAt(ordering.StkTokenIndex())
	if denom != stkDenom {
		return ErrInvalidPoolAssetOrdering.Wrapf("expected %s at index %d, found %s", stkDenom, ordering.StkTokenIndex(), denom)
	}
	return nil
}

// ValidateScalingFactors checks a manual override carries two non-zero factors.
func ValidateScalingFactors(factors []uint64) error {
	if len(factors) != 2 {
		return ErrInvalidScalingFactors.Wrapf("expected 2 scaling factors, got %d", len(factors))
	}
	for i, f := range factors {
		if f == 0 {
			return ErrInvalidScalingFactors.Wrapf("scaling factor %d is zero", i)
		}
	}
	return nil
}
