package types

import "context"

// MsgServer is the poolsync message service.
type MsgServer interface {
	Instantiate(context.Context, *MsgInstantiate) (*MsgInstantiateResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	AddPool(context.Context, *MsgAddPool) (*MsgAddPoolResponse, error)
	RemovePool(context.Context, *MsgRemovePool) (*MsgRemovePoolResponse, error)
	UpdateScalingFactor(context.Context, *MsgUpdateScalingFactor) (*MsgUpdateScalingFactorResponse, error)
	SudoAdjustScalingFactors(context.Context, *MsgSudoAdjustScalingFactors) (*MsgSudoAdjustScalingFactorsResponse, error)
}

// QueryServer is the poolsync query service.
type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	AllPools(context.Context, *QueryAllPoolsRequest) (*QueryAllPoolsResponse, error)
}
