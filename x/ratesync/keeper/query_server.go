package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ratesync-network/ratesync/x/ratesync/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the ratesync QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Config returns the owner and transfer path
func (qs queryServer) Config(goCtx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	cfg, err := qs.Keeper.GetConfig(goCtx)
	if err != nil {
		return nil, err
	}

	return &types.QueryConfigResponse{
		Owner:             cfg.Owner,
		PendingOwner:      cfg.PendingOwner,
		TransferChannelID: cfg.TransferChannelID,
		TransferPortID:    cfg.TransferPortID,
		AnomalyPolicy:     string(cfg.AnomalyPolicy),
	}, nil
}

// AnomalyConfig returns the anomaly config of a hashed denom. Denoms that
// have never been submitted report the registry default.
func (qs queryServer) AnomalyConfig(goCtx context.Context, req *types.QueryAnomalyConfigRequest) (*types.QueryAnomalyConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.Denom == "" {
		return nil, status.Error(codes.InvalidArgument, "denom cannot be empty")
	}

	ac, found, err := qs.Keeper.GetAnomalyConfig(goCtx, req.Denom)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		cfg, err := qs.Keeper.GetConfig(goCtx)
		if err != nil {
			return nil, err
		}
		ac = cfg.DefaultAnomalyConfig
	}

	return &types.QueryAnomalyConfigResponse{
		DeviationCountLimit: ac.CountLimit,
		DeviationThreshold:  ac.Threshold,
	}, nil
}

// RedemptionRate returns the latest rate of a hashed denom
func (qs queryServer) RedemptionRate(goCtx context.Context, req *types.QueryRedemptionRateRequest) (*types.QueryRedemptionRateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if len(req.Params) > 0 {
		return nil, types.ErrInvalidQueryRequest.Wrap("params must be empty")
	}

	info, err := qs.Keeper.GetLatestRedemptionRate(goCtx, req.Denom)
	if err != nil {
		return nil, err
	}

	return &types.QueryRedemptionRateResponse{
		RedemptionRate: info.Value,
		UpdateTime:     info.UpdateTime,
	}, nil
}

// HistoricalRedemptionRates returns stored rates of a hashed denom, newest first
func (qs queryServer) HistoricalRedemptionRates(goCtx context.Context, req *types.QueryHistoricalRedemptionRatesRequest) (*types.QueryHistoricalRedemptionRatesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if len(req.Params) > 0 {
		return nil, types.ErrInvalidQueryRequest.Wrap("params must be empty")
	}

	rates, err := qs.Keeper.GetHistoricalRedemptionRates(goCtx, req.Denom, req.Limit)
	if err != nil {
		return nil, err
	}

	return &types.QueryHistoricalRedemptionRatesResponse{RedemptionRates: rates}, nil
}

// DenomHash derives the storage key of an stkToken under the configured path
func (qs queryServer) DenomHash(goCtx context.Context, req *types.QueryDenomHashRequest) (*types.QueryDenomHashResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	cfg, err := qs.Keeper.GetConfig(goCtx)
	if err != nil {
		return nil, err
	}
	denom, err := cfg.HashDenom(req.StkDenom)
	if err != nil {
		return nil, err
	}

	return &types.QueryDenomHashResponse{Denom: denom}, nil
}
