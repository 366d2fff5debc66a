package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ratesync-network/ratesync/x/poolsync/types"
)

// GetPool returns a registered pool.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, error) {
	bz := k.getStore(ctx).Get(types.GetPoolKey(poolID))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	return pool, nil
}

// HasPool reports whether the pool is registered.
func (k Keeper) HasPool(ctx context.Context, poolID uint64) bool {
	return k.getStore(ctx).Has(types.GetPoolKey(poolID))
}

// SetPool stores a pool.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	bz, err := json.Marshal(&pool)
	if err != nil {
		return errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}

	k.getStore(ctx).Set(types.GetPoolKey(pool.PoolID), bz)
	return nil
}

// IteratePools walks registered pools in ascending pool ID order.
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

func (k Keeper) countPools(ctx context.Context) int {
	n := 0
	_ = k.IteratePools(ctx, func(types.Pool) bool {
		n++
		return false
	})
	return n
}

// AddPool registers a stableswap pool after checking it against the live AMM
// pool: same ID, two assets, the stkToken hash at the position the ordering
// names, and this module as scaling factor controller.
func (k Keeper) AddPool(ctx context.Context, sender string, poolID uint64, stkDenom, portID, channelID string, ordering types.AssetOrdering) (types.Pool, error) {
	if _, err := k.getOwnedConfig(ctx, sender); err != nil {
		return types.Pool{}, err
	}
	if k.HasPool(ctx, poolID) {
		return types.Pool{}, types.ErrPoolAlreadyExists.Wrapf("pool %d", poolID)
	}

	pool, err := types.NewPool(poolID, stkDenom, portID, channelID, ordering)
	if err != nil {
		return types.Pool{}, err
	}

	live, found := k.ammKeeper.GetStableswapPool(ctx, poolID)
	if !found {
		return types.Pool{}, types.ErrPoolNotFoundOnAMM.Wrapf("pool %d", poolID)
	}
	if err := types.ValidatePoolConfiguration(live, poolID, pool.IBCHashStkDenom, ordering); err != nil {
		return types.Pool{}, err
	}
	if live.ScalingFactorController != k.moduleAddress.String() {
		return types.Pool{}, types.ErrInvalidScalingFactorController.Wrapf(
			"pool %d is controlled by %s, expected %s", poolID, live.ScalingFactorController, k.moduleAddress,
		)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return types.Pool{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddPool,
			sdk.NewAttribute(types.AttributeKeyAction, "add_pool"),
			sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute(types.AttributeKeyStkTokenDenom, stkDenom),
			sdk.NewAttribute(types.AttributeKeyIBCHash, pool.IBCHashStkDenom),
			sdk.NewAttribute(types.AttributeKeyAssetOrdering, string(ordering)),
		),
	)
	k.metrics.PoolsRegistered.Set(float64(k.countPools(ctx)))
	k.Logger(ctx).Info("pool registered", "pool_id", poolID, "denom", pool.IBCHashStkDenom, "ordering", ordering)
	return pool, nil
}

// RemovePool deregisters a pool.
func (k Keeper) RemovePool(ctx context.Context, sender string, poolID uint64) error {
	if _, err := k.getOwnedConfig(ctx, sender); err != nil {
		return err
	}
	if !k.HasPool(ctx, poolID) {
		return types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	k.getStore(ctx).Delete(types.GetPoolKey(poolID))

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemovePool,
			sdk.NewAttribute(types.AttributeKeyAction, "remove_pool"),
			sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(poolID, 10)),
		),
	)
	k.metrics.PoolsRegistered.Set(float64(k.countPools(ctx)))
	return nil
}

// UpdateScalingFactor sets the pool's scaling factors from the latest
// redemption rate of its stkToken and records the block time.
func (k Keeper) UpdateScalingFactor(ctx context.Context, poolID uint64) ([2]uint64, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return [2]uint64{}, err
	}

	rate, err := k.rateKeeper.GetLatestRedemptionRate(ctx, pool.IBCHashStkDenom)
	if err != nil {
		k.metrics.ScalingFactorFailures.WithLabelValues("rate_query").Inc()
		emitScalingFailureTelemetry(poolID, "rate_query")
		return [2]uint64{}, types.ErrUnableToQueryRedemptionRate.Wrapf("%s: %s", pool.IBCHashStkDenom, err)
	}

	factors := types.ConvertRedemptionRateToScalingFactors(rate.Value, pool.AssetOrdering)
	if err := k.ammKeeper.AdjustScalingFactors(ctx, k.moduleAddress, poolID, factors[:]); err != nil {
		k.metrics.ScalingFactorFailures.WithLabelValues("amm").Inc()
		emitScalingFailureTelemetry(poolID, "amm")
		return [2]uint64{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool.LastUpdated = uint64(sdkCtx.BlockTime().Unix())
	if err := k.SetPool(ctx, pool); err != nil {
		return [2]uint64{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateScalingFactor,
			sdk.NewAttribute(types.AttributeKeyAction, "update_scaling_factor"),
			sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute(types.AttributeKeyRedemptionRate, rate.Value.String()),
			sdk.NewAttribute(types.AttributeKeyScalingFactors, formatFactors(factors[:])),
			sdk.NewAttribute(types.AttributeKeyAnomalyDetected, strconv.FormatBool(rate.AnomalyDetected)),
		),
	)
	poolLabel := strconv.FormatUint(poolID, 10)
	k.metrics.ScalingFactorUpdates.WithLabelValues(poolLabel, "redemption_rate").Inc()
	k.metrics.RateScalingFactor.WithLabelValues(poolLabel).Set(float64(factors[pool.AssetOrdering.RateFactorIndex()]))
	return factors, nil
}

// SudoAdjustScalingFactors sets a pool's scaling factors directly. Only the
// owner may call it.
func (k Keeper) SudoAdjustScalingFactors(ctx context.Context, sender string, poolID uint64, factors []uint64) error {
	if _, err := k.getOwnedConfig(ctx, sender); err != nil {
		return err
	}
	if err := types.ValidateScalingFactors(factors); err != nil {
		return err
	}
	if err := k.ammKeeper.AdjustScalingFactors(ctx, k.moduleAddress, poolID, factors); err != nil {
		k.metrics.ScalingFactorFailures.WithLabelValues("amm").Inc()
		emitScalingFailureTelemetry(poolID, "amm")
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSudoAdjustScaling,
			sdk.NewAttribute(types.AttributeKeyAction, "sudo_adjust_scaling_factors"),
			sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute(types.AttributeKeyScalingFactors, formatFactors(factors)),
		),
	)
	k.metrics.ScalingFactorUpdates.WithLabelValues(strconv.FormatUint(poolID, 10), "sudo").Inc()
	return nil
}

func formatFactors(factors []uint64) string {
	return fmt.Sprintf("[%d,%d]", factors[0], factors[1])
}
