package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ratesync-network/ratesync/x/poolsync/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the poolsync QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Config returns the module config
func (qs queryServer) Config(goCtx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	cfg, err := qs.Keeper.GetConfig(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QueryConfigResponse{Config: cfg}, nil
}

// Pool returns a registered pool
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	pool, err := qs.Keeper.GetPool(goCtx, req.PoolID)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Pool: pool}, nil
}

// AllPools returns registered pools in pool ID order with pagination
func (qs queryServer) AllPools(goCtx context.Context, req *types.QueryAllPoolsRequest) (*types.QueryAllPoolsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	pageReq := sanitizePagination(req.Pagination)
	ctx.GasMeter().ConsumeGas(pageReq.Limit*100, "paginated pools query")

	pools := make([]types.Pool, 0, int(pageReq.Limit))
	poolStore := prefix.NewStore(qs.Keeper.getStore(goCtx), types.PoolKeyPrefix)

	pageRes, err := query.Paginate(poolStore, pageReq, func(key []byte, value []byte) error {
		var pool types.Pool
		if err := json.Unmarshal(value, &pool); err != nil {
			return fmt.Errorf("unmarshal pool: %w", err)
		}
		pools = append(pools, pool)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("AllPools: paginate: %w", err)
	}

	return &types.QueryAllPoolsResponse{
		Pools:      pools,
		Pagination: pageRes,
	}, nil
}

// sanitizePagination returns a copy of pageReq with the default limit applied
// and oversized limits capped. The caller's request is left untouched.
func sanitizePagination(pageReq *query.PageRequest) *query.PageRequest {
	if pageReq == nil {
		return &query.PageRequest{Limit: defaultPaginationLimit}
	}
	sanitized := *pageReq
	if sanitized.Limit == 0 {
		sanitized.Limit = defaultPaginationLimit
	}
	if sanitized.Limit > maxPaginationLimit {
		sanitized.Limit = maxPaginationLimit
	}
	return &sanitized
}
