package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

type queryServer struct {
	Keeper
}

const (
	defaultDepositorsLimit = 100
	maxDepositorsLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the prizepool QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	params, err := qs.Keeper.GetParams(goCtx)
	if err != nil {
		return nil, fmt.Errorf("Params: get params: %w", err)
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

// Pool returns a single pool record
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pool, err := qs.Keeper.GetPool(goCtx, req.PoolId)
	if err != nil {
		return nil, fmt.Errorf("Pool: get pool %d: %w", req.PoolId, err)
	}

	return &types.QueryPoolResponse{Pool: *pool}, nil
}

// Pools returns all pool records
func (qs queryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pools, err := qs.Keeper.GetAllPools(goCtx)
	if err != nil {
		return nil, fmt.Errorf("Pools: %w", err)
	}

	return &types.QueryPoolsResponse{Pools: pools}, nil
}

// Balance returns a depositor's principal in a pool
func (qs queryServer) Balance(goCtx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid address: %v", err)
	}
	if _, err := qs.Keeper.GetPool(goCtx, req.PoolId); err != nil {
		return nil, err
	}

	return &types.QueryBalanceResponse{Balance: qs.Keeper.GetBalance(goCtx, req.PoolId, addr)}, nil
}

// Tickets returns a depositor's ticket weight in a pool
func (qs queryServer) Tickets(goCtx context.Context, req *types.QueryTicketsRequest) (*types.QueryTicketsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid address: %v", err)
	}
	if _, err := qs.Keeper.GetPool(goCtx, req.PoolId); err != nil {
		return nil, err
	}

	return &types.QueryTicketsResponse{Tickets: qs.Keeper.GetTickets(goCtx, req.PoolId, addr)}, nil
}

// Depositors returns a pool's depositor enumeration in draw-walk order,
// capped to protect against unbounded queries.
func (qs queryServer) Depositors(goCtx context.Context, req *types.QueryDepositorsRequest) (*types.QueryDepositorsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pool, err := qs.Keeper.GetPool(goCtx, req.PoolId)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultDepositorsLimit
	}
	if limit > maxDepositorsLimit {
		limit = maxDepositorsLimit
	}

	depositors := make([]types.DepositorBalance, 0, limit)
	qs.Keeper.IterateDepositors(goCtx, pool, func(_ uint64, addr sdk.AccAddress) bool {
		depositors = append(depositors, types.DepositorBalance{
			PoolId:  pool.Id,
			Address: addr.String(),
			Balance: qs.Keeper.GetBalance(goCtx, pool.Id, addr),
			Tickets: qs.Keeper.GetTickets(goCtx, pool.Id, addr),
		})
		return uint64(len(depositors)) >= limit
	})

	return &types.QueryDepositorsResponse{
		Depositors: depositors,
		Total:      pool.DepositorCount,
	}, nil
}

// LastDraw returns a pool's last draw record, if any
func (qs queryServer) LastDraw(goCtx context.Context, req *types.QueryLastDrawRequest) (*types.QueryLastDrawResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	if _, err := qs.Keeper.GetPool(goCtx, req.PoolId); err != nil {
		return nil, err
	}

	draw, err := qs.Keeper.GetLastDraw(goCtx, req.PoolId)
	if err != nil {
		return nil, fmt.Errorf("LastDraw: %w", err)
	}

	return &types.QueryLastDrawResponse{LastDraw: draw}, nil
}
