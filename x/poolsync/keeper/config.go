package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ratesync-network/ratesync/x/poolsync/types"
	sharedkeeper "github.com/ratesync-network/ratesync/x/shared/keeper"
)

// HasConfig reports whether the module has been instantiated.
func (k Keeper) HasConfig(ctx context.Context) bool {
	return k.getStore(ctx).Has(types.ConfigKey)
}

// GetConfig returns the module config, or ErrNotInstantiated.
func (k Keeper) GetConfig(ctx context.Context) (types.Config, error) {
	bz := k.getStore(ctx).Get(types.ConfigKey)
	if bz == nil {
		return types.Config{}, types.ErrNotInstantiated
	}

	var cfg types.Config
	if err := json.Unmarshal(bz, &cfg); err != nil {
		return types.Config{}, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	return cfg, nil
}

// SetConfig validates and stores the module config.
func (k Keeper) SetConfig(ctx context.Context, cfg types.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(&cfg)
	if err != nil {
		return errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
	}

	k.getStore(ctx).Set(types.ConfigKey, bz)
	return nil
}

// Instantiate stores the initial config. It can only run once.
func (k Keeper) Instantiate(ctx context.Context, cfg types.Config) error {
	if k.HasConfig(ctx) {
		return types.ErrAlreadyInstantiated
	}
	if err := k.SetConfig(ctx, cfg); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInstantiate,
			sdk.NewAttribute(types.AttributeKeyAction, "instantiate"),
			sdk.NewAttribute(types.AttributeKeyOwner, cfg.Owner),
		),
	)
	return nil
}

// UpdateConfig replaces the owner. Only the current owner may call it.
func (k Keeper) UpdateConfig(ctx context.Context, sender, newOwner string) error {
	cfg, err := k.getOwnedConfig(ctx, sender)
	if err != nil {
		return err
	}

	cfg.Owner = newOwner
	if err := k.SetConfig(ctx, cfg); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateConfig,
			sdk.NewAttribute(types.AttributeKeyAction, "update_config"),
			sdk.NewAttribute(types.AttributeKeyOwner, newOwner),
		),
	)
	return nil
}

func (k Keeper) getOwnedConfig(ctx context.Context, sender string) (types.Config, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.Config{}, err
	}
	if err := sharedkeeper.ValidateOwner(cfg.Owner, sender); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}
