package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the prizepool MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool handles pool initialization
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: invalid admin address: %w", err)
	}

	pool, err := ms.Keeper.CreatePool(goCtx, admin, msg.Denom, msg.PeriodDays)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: %w", err)
	}

	return &types.MsgCreatePoolResponse{PoolId: pool.Id}, nil
}

// Deposit handles locking principal into a pool
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Deposit: validate: %w", err)
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, fmt.Errorf("Deposit: invalid depositor address: %w", err)
	}

	tickets, err := ms.Keeper.Deposit(goCtx, depositor, msg.PoolId, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("Deposit: %w", err)
	}

	return &types.MsgDepositResponse{Tickets: tickets}, nil
}

// Withdraw handles returning principal to a depositor
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Withdraw: validate: %w", err)
	}

	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: invalid depositor address: %w", err)
	}

	if err := ms.Keeper.Withdraw(goCtx, depositor, msg.PoolId, msg.Amount); err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}

	return &types.MsgWithdrawResponse{}, nil
}

// SetLenderPool handles lender configuration
func (ms msgServer) SetLenderPool(goCtx context.Context, msg *types.MsgSetLenderPool) (*types.MsgSetLenderPoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetLenderPool: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("SetLenderPool: invalid admin address: %w", err)
	}
	lender, err := sdk.AccAddressFromBech32(msg.LenderPool)
	if err != nil {
		return nil, fmt.Errorf("SetLenderPool: invalid lender address: %w", err)
	}

	if err := ms.Keeper.SetLenderPool(goCtx, admin, msg.PoolId, lender); err != nil {
		return nil, fmt.Errorf("SetLenderPool: %w", err)
	}

	return &types.MsgSetLenderPoolResponse{}, nil
}

// SupplyToLender handles relending principal into the lender
func (ms msgServer) SupplyToLender(goCtx context.Context, msg *types.MsgSupplyToLender) (*types.MsgSupplyToLenderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SupplyToLender: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("SupplyToLender: invalid admin address: %w", err)
	}

	if err := ms.Keeper.SupplyToLender(goCtx, admin, msg.PoolId, msg.Amount); err != nil {
		return nil, fmt.Errorf("SupplyToLender: %w", err)
	}

	return &types.MsgSupplyToLenderResponse{}, nil
}

// WithdrawFromLender handles recalling principal from the lender
func (ms msgServer) WithdrawFromLender(goCtx context.Context, msg *types.MsgWithdrawFromLender) (*types.MsgWithdrawFromLenderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawFromLender: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFromLender: invalid admin address: %w", err)
	}

	actual, err := ms.Keeper.WithdrawFromLender(goCtx, admin, msg.PoolId, msg.Amount, msg.MinReturn)
	if err != nil {
		return nil, fmt.Errorf("WithdrawFromLender: %w", err)
	}

	return &types.MsgWithdrawFromLenderResponse{Actual: actual}, nil
}

// HarvestYield handles realizing lender yield into the prize fund
func (ms msgServer) HarvestYield(goCtx context.Context, msg *types.MsgHarvestYield) (*types.MsgHarvestYieldResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("HarvestYield: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("HarvestYield: invalid admin address: %w", err)
	}

	actual, err := ms.Keeper.HarvestYield(goCtx, admin, msg.PoolId, msg.Amount, msg.MinReturn)
	if err != nil {
		return nil, fmt.Errorf("HarvestYield: %w", err)
	}

	return &types.MsgHarvestYieldResponse{Actual: actual}, nil
}

// ExecuteDraw handles winner selection and prize payout
func (ms msgServer) ExecuteDraw(goCtx context.Context, msg *types.MsgExecuteDraw) (*types.MsgExecuteDrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ExecuteDraw: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("ExecuteDraw: invalid admin address: %w", err)
	}

	winner, prize, err := ms.Keeper.ExecuteDraw(goCtx, admin, msg.PoolId)
	if err != nil {
		return nil, fmt.Errorf("ExecuteDraw: %w", err)
	}

	return &types.MsgExecuteDrawResponse{Winner: winner.String(), Prize: prize}, nil
}

// UpdateParams handles governance parameter updates
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateParams: validate: %w", err)
	}

	if msg.Authority != ms.Keeper.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", ms.Keeper.GetAuthority(), msg.Authority)
	}

	if err := ms.Keeper.SetParams(goCtx, msg.Params); err != nil {
		return nil, fmt.Errorf("UpdateParams: %w", err)
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
