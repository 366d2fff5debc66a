package keeper

import (
	"context"

	"github.com/ratesync-network/ratesync/x/poolsync/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the poolsync MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) Instantiate(goCtx context.Context, msg *types.MsgInstantiate) (*types.MsgInstantiateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.Instantiate(goCtx, msg.ToConfig()); err != nil {
		return nil, err
	}
	return &types.MsgInstantiateResponse{}, nil
}

func (ms msgServer) UpdateConfig(goCtx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if _, err := ms.getOwnedConfig(goCtx, msg.Sender); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.UpdateConfig(goCtx, msg.Sender, msg.Owner); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}

func (ms msgServer) AddPool(goCtx context.Context, msg *types.MsgAddPool) (*types.MsgAddPoolResponse, error) {
	if _, err := ms.getOwnedConfig(goCtx, msg.Sender); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	pool, err := ms.Keeper.AddPool(goCtx, msg.Sender, msg.PoolID, msg.StkTokenDenom, msg.TransferPortID, msg.TransferChannelID, msg.AssetOrdering)
	if err != nil {
		return nil, err
	}
	return &types.MsgAddPoolResponse{IBCHashStkDenom: pool.IBCHashStkDenom}, nil
}

func (ms msgServer) RemovePool(goCtx context.Context, msg *types.MsgRemovePool) (*types.MsgRemovePoolResponse, error) {
	if _, err := ms.getOwnedConfig(goCtx, msg.Sender); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.RemovePool(goCtx, msg.Sender, msg.PoolID); err != nil {
		return nil, err
	}
	return &types.MsgRemovePoolResponse{}, nil
}

func (ms msgServer) UpdateScalingFactor(goCtx context.Context, msg *types.MsgUpdateScalingFactor) (*types.MsgUpdateScalingFactorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	factors, err := ms.Keeper.UpdateScalingFactor(goCtx, msg.PoolID)
	if err != nil {
		return nil, err
	}
	return &types.MsgUpdateScalingFactorResponse{ScalingFactors: factors[:]}, nil
}

func (ms msgServer) SudoAdjustScalingFactors(goCtx context.Context, msg *types.MsgSudoAdjustScalingFactors) (*types.MsgSudoAdjustScalingFactorsResponse, error) {
	if _, err := ms.getOwnedConfig(goCtx, msg.Sender); err != nil {
		return nil, err
	}
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := ms.Keeper.SudoAdjustScalingFactors(goCtx, msg.Sender, msg.PoolID, msg.ScalingFactors); err != nil {
		return nil, err
	}
	return &types.MsgSudoAdjustScalingFactorsResponse{}, nil
}
