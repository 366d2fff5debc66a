package keeper

import (
	"context"

	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the ratesync MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Instantiate creates the registry config
func (ms msgServer) Instantiate(goCtx context.Context, msg *types.MsgInstantiate) (*types.MsgInstantiateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cfg, err := msg.ToConfig()
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.Instantiate(goCtx, cfg); err != nil {
		return nil, err
	}

	return &types.MsgInstantiateResponse{}, nil
}

// SubmitRedemptionRate records a new c-value observation
func (ms msgServer) SubmitRedemptionRate(goCtx context.Context, msg *types.MsgSubmitRedemptionRate) (*types.MsgSubmitRedemptionRateResponse, error) {
	if _, err := ms.getOwnedConfig(goCtx, msg.Sender); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	rr, err := ms.Keeper.SubmitRedemptionRate(goCtx, msg.Sender, msg.DefaultBondDenom, msg.StkDenom, msg.CValue, msg.ControllerChainTime)
	if err != nil {
		return nil, err
	}

	return &types.MsgSubmitRedemptionRateResponse{
		Denom:           rr.Denom,
		AnomalyDetected: rr.AnomalyDetected,
	}, nil
}

// UpdateConfig changes the transfer path or proposes a new owner
func (ms msgServer) UpdateConfig(goCtx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if _, err := ms.getOwnedConfig(goCtx, msg.Sender); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if _, err := ms.Keeper.UpdateConfig(goCtx, msg.Sender, msg.TransferChannelID, msg.TransferPortID, msg.Owner); err != nil {
		return nil, err
	}

	return &types.MsgUpdateConfigResponse{}, nil
}

// SetAnomalyConfig overrides anomaly detection for one stkToken
func (ms msgServer) SetAnomalyConfig(goCtx context.Context, msg *types.MsgSetAnomalyConfig) (*types.MsgSetAnomalyConfigResponse, error) {
	if _, err := ms.getOwnedConfig(goCtx, msg.Sender); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	denom, err := ms.Keeper.UpdateAnomalyConfig(goCtx, msg.Sender, msg.StkDenom, msg.AnomalyConfig())
	if err != nil {
		return nil, err
	}

	return &types.MsgSetAnomalyConfigResponse{Denom: denom}, nil
}

// AcceptOwnership completes a pending ownership transfer
func (ms msgServer) AcceptOwnership(goCtx context.Context, msg *types.MsgAcceptOwnership) (*types.MsgAcceptOwnershipResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if _, err := ms.Keeper.AcceptOwnership(goCtx, msg.Sender); err != nil {
		return nil, err
	}

	return &types.MsgAcceptOwnershipResponse{}, nil
}

// CancelOwnership drops a pending ownership transfer
func (ms msgServer) CancelOwnership(goCtx context.Context, msg *types.MsgCancelOwnership) (*types.MsgCancelOwnershipResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if _, err := ms.Keeper.CancelOwnership(goCtx, msg.Sender); err != nil {
		return nil, err
	}

	return &types.MsgCancelOwnershipResponse{}, nil
}
