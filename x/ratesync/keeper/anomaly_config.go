package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

// GetAnomalyConfig returns the anomaly config stored under the hashed denom.
func (k Keeper) GetAnomalyConfig(ctx context.Context, denom string) (types.AnomalyConfig, bool, error) {
	bz := k.getStore(ctx).Get(types.GetAnomalyConfigKey(denom))
	if bz == nil {
		return types.AnomalyConfig{}, false, nil
	}

	var ac types.AnomalyConfig
	if err := json.Unmarshal(bz, &ac); err != nil {
		return types.AnomalyConfig{}, false, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	return ac, true, nil
}

// SetAnomalyConfig stores the anomaly config for the hashed denom.
func (k Keeper) SetAnomalyConfig(ctx context.Context, denom string, ac types.AnomalyConfig) error {
	if err := ac.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(&ac)
	if err != nil {
		return errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}

	k.getStore(ctx).Set(types.GetAnomalyConfigKey(denom), bz)
	return nil
}

// getOrCreateAnomalyConfig loads the denom's anomaly config, materializing
// the registry default on first use.
func (k Keeper) getOrCreateAnomalyConfig(ctx context.Context, cfg types.Config, denom string) (types.AnomalyConfig, error) {
	ac, found, err := k.GetAnomalyConfig(ctx, denom)
	if err != nil {
		return types.AnomalyConfig{}, err
	}
	if !found {
		ac = cfg.DefaultAnomalyConfig
	}
	if err := k.SetAnomalyConfig(ctx, denom, ac); err != nil {
		return types.AnomalyConfig{}, err
	}
	return ac, nil
}

// UpdateAnomalyConfig sets the anomaly config of an stkToken on behalf of the
// owner and returns the hashed denom it was stored under.
func (k Keeper) UpdateAnomalyConfig(ctx context.Context, sender, stkDenom string, ac types.AnomalyConfig) (string, error) {
	cfg, err := k.getOwnedConfig(ctx, sender)
	if err != nil {
		return "", err
	}
	if err := types.ValidateNativeDenom(stkDenom); err != nil {
		return "", err
	}

	denom, err := cfg.HashDenom(stkDenom)
	if err != nil {
		return "", err
	}
	if err := k.SetAnomalyConfig(ctx, denom, ac); err != nil {
		return "", err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetAnomalyConfig,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionSetAnomalyConfig),
			sdk.NewAttribute(types.AttributeKeyStkDenom, stkDenom),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyCountLimit, fmtUint(ac.CountLimit)),
			sdk.NewAttribute(types.AttributeKeyThreshold, ac.Threshold.String()),
		),
	)
	k.metrics.ConfigUpdates.WithLabelValues(types.ActionSetAnomalyConfig).Inc()
	return denom, nil
}

// IterateAnomalyConfigs walks every stored anomaly config in key order.
func (k Keeper) IterateAnomalyConfigs(ctx context.Context, cb func(denom string, ac types.AnomalyConfig) (stop bool)) error {
	iterator := prefixIterator(k.getStore(ctx), types.AnomalyConfigKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var ac types.AnomalyConfig
		if err := json.Unmarshal(iterator.Value(), &ac); err != nil {
			return errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
		}
		denom := string(iterator.Key()[len(types.AnomalyConfigKeyPrefix):])
		if cb(denom, ac) {
			break
		}
	}
	return nil
}
