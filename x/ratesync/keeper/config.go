package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/ratesync-network/ratesync/x/ratesync/types"
	sharedkeeper "github.com/ratesync-network/ratesync/x/shared/keeper"
)

// HasConfig reports whether the registry has been instantiated.
func (k Keeper) HasConfig(ctx context.Context) bool {
	return k.getStore(ctx).Has(types.ConfigKey)
}

// GetConfig returns the registry config, or ErrNotInstantiated.
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

// SetConfig validates and stores the registry config.
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

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeInstantiate,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionInstantiate),
			sdk.NewAttribute(types.AttributeKeyOwner, cfg.Owner),
			sdk.NewAttribute(types.AttributeKeyTransferChannelID, cfg.TransferChannelID),
			sdk.NewAttribute(types.AttributeKeyTransferPortID, cfg.TransferPortID),
		),
	)
	k.metrics.ConfigUpdates.WithLabelValues(types.ActionInstantiate).Inc()
	k.Logger(ctx).Info("ratesync instantiated", "owner", cfg.Owner, "channel", cfg.TransferChannelID, "port", cfg.TransferPortID)
	return nil
}

// UpdateConfig changes the transfer path and proposes a new owner. Empty
// arguments leave the corresponding field unchanged. Proposing the current
// owner clears any pending transfer.
func (k Keeper) UpdateConfig(ctx context.Context, sender, channelID, portID, newOwner string) (types.Config, error) {
	cfg, err := k.getOwnedConfig(ctx, sender)
	if err != nil {
		return types.Config{}, err
	}

	if channelID != "" {
		cfg.TransferChannelID = channelID
	}
	if portID != "" {
		cfg.TransferPortID = portID
	}
	switch {
	case newOwner == "":
	case newOwner == cfg.Owner:
		cfg.PendingOwner = ""
	default:
		cfg.PendingOwner = newOwner
	}

	if err := k.SetConfig(ctx, cfg); err != nil {
		return types.Config{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateConfig,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionUpdateConfig),
			sdk.NewAttribute(types.AttributeKeyTransferChannelID, cfg.TransferChannelID),
			sdk.NewAttribute(types.AttributeKeyTransferPortID, cfg.TransferPortID),
		),
	)
	if cfg.PendingOwner != "" && newOwner != "" {
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeOwnershipProposed,
				sdk.NewAttribute(types.AttributeKeyOwner, cfg.Owner),
				sdk.NewAttribute(types.AttributeKeyPendingOwner, cfg.PendingOwner),
			),
		)
	}
	k.metrics.ConfigUpdates.WithLabelValues(types.ActionUpdateConfig).Inc()
	return cfg, nil
}

// AcceptOwnership promotes the pending owner. Only the pending owner may call it.
func (k Keeper) AcceptOwnership(ctx context.Context, sender string) (types.Config, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.Config{}, err
	}
	if cfg.PendingOwner == "" {
		return types.Config{}, types.ErrNoPendingOwner
	}
	if err := sharedkeeper.ValidateOwner(cfg.PendingOwner, sender); err != nil {
		return types.Config{}, err
	}

	previous := cfg.Owner
	cfg.Owner = cfg.PendingOwner
	cfg.PendingOwner = ""
	if err := k.SetConfig(ctx, cfg); err != nil {
		return types.Config{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOwnershipAccepted,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionAcceptOwnership),
			sdk.NewAttribute(types.AttributeKeyOwner, cfg.Owner),
		),
	)
	k.metrics.ConfigUpdates.WithLabelValues(types.ActionAcceptOwnership).Inc()
	k.Logger(ctx).Info("ownership transferred", "from", previous, "to", cfg.Owner)
	return cfg, nil
}

// CancelOwnership drops a pending transfer. The owner or the pending owner may call it.
func (k Keeper) CancelOwnership(ctx context.Context, sender string) (types.Config, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.Config{}, err
	}
	if cfg.PendingOwner == "" {
		return types.Config{}, types.ErrNoPendingOwner
	}
	if sender != cfg.PendingOwner {
		if err := sharedkeeper.ValidateOwner(cfg.Owner, sender); err != nil {
			return types.Config{}, err
		}
	}

	cfg.PendingOwner = ""
	if err := k.SetConfig(ctx, cfg); err != nil {
		return types.Config{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOwnershipCancelled,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionCancelOwnership),
			sdk.NewAttribute(types.AttributeKeyOwner, cfg.Owner),
		),
	)
	k.metrics.ConfigUpdates.WithLabelValues(types.ActionCancelOwnership).Inc()
	return cfg, nil
}

// getOwnedConfig loads the config and fails with ErrUnauthorized unless
// sender is the owner.
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
