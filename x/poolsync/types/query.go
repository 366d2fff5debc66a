package types

import (
	"github.com/cosmos/cosmos-sdk/types/query"
)

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config `json:"config"`
}

type QueryPoolRequest struct {
	PoolID uint64 `json:"pool_id"`
}

type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

type QueryAllPoolsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryAllPoolsResponse struct {
	Pools      []Pool              `json:"pools"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}
