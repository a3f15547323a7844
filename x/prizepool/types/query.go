package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
	Tickets(context.Context, *QueryTicketsRequest) (*QueryTicketsResponse, error)
	Depositors(context.Context, *QueryDepositorsRequest) (*QueryDepositorsResponse, error)
	LastDraw(context.Context, *QueryLastDrawRequest) (*QueryLastDrawResponse, error)
}

// QueryParamsRequest requests the module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest requests a single pool by ID
type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryPoolResponse returns a single pool record
type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

// QueryPoolsRequest requests all pools
type QueryPoolsRequest struct{}

// QueryPoolsResponse returns all pool records
type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

// QueryBalanceRequest requests a depositor's principal in a pool
type QueryBalanceRequest struct {
	PoolId  uint64 `json:"pool_id"`
	Address string `json:"address"`
}

// QueryBalanceResponse returns a depositor's principal
type QueryBalanceResponse struct {
	Balance math.Int `json:"balance"`
}

// QueryTicketsRequest requests a depositor's tickets in a pool
type QueryTicketsRequest struct {
	PoolId  uint64 `json:"pool_id"`
	Address string `json:"address"`
}

// QueryTicketsResponse returns a depositor's tickets
type QueryTicketsResponse struct {
	Tickets math.Int `json:"tickets"`
}

// QueryDepositorsRequest requests a pool's depositor enumeration
type QueryDepositorsRequest struct {
	PoolId uint64 `json:"pool_id"`
	Limit  uint64 `json:"limit,omitempty"`
}

// QueryDepositorsResponse returns the depositor enumeration in draw order
type QueryDepositorsResponse struct {
	Depositors []DepositorBalance `json:"depositors"`
	Total      uint64             `json:"total"`
}

// QueryLastDrawRequest requests a pool's last draw record
type QueryLastDrawRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryLastDrawResponse returns the last draw record, if any
type QueryLastDrawResponse struct {
	LastDraw *LastDraw `json:"last_draw,omitempty"`
}
