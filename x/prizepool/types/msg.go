package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	SetLenderPool(context.Context, *MsgSetLenderPool) (*MsgSetLenderPoolResponse, error)
	SupplyToLender(context.Context, *MsgSupplyToLender) (*MsgSupplyToLenderResponse, error)
	WithdrawFromLender(context.Context, *MsgWithdrawFromLender) (*MsgWithdrawFromLenderResponse, error)
	HarvestYield(context.Context, *MsgHarvestYield) (*MsgHarvestYieldResponse, error)
	ExecuteDraw(context.Context, *MsgExecuteDraw) (*MsgExecuteDrawResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// Response types

// MsgCreatePoolResponse defines the response for CreatePool
type MsgCreatePoolResponse struct {
	PoolId uint64 `json:"pool_id"`
}

// MsgDepositResponse defines the response for Deposit
type MsgDepositResponse struct {
	Tickets math.Int `json:"tickets"`
}

// MsgWithdrawResponse defines the response for Withdraw
type MsgWithdrawResponse struct{}

// MsgSetLenderPoolResponse defines the response for SetLenderPool
type MsgSetLenderPoolResponse struct{}

// MsgSupplyToLenderResponse defines the response for SupplyToLender
type MsgSupplyToLenderResponse struct{}

// MsgWithdrawFromLenderResponse reports the realized return
type MsgWithdrawFromLenderResponse struct {
	Actual math.Int `json:"actual"`
}

// MsgHarvestYieldResponse reports the realized yield added to the prize fund
type MsgHarvestYieldResponse struct {
	Actual math.Int `json:"actual"`
}

// MsgExecuteDrawResponse reports the selected winner
type MsgExecuteDrawResponse struct {
	Winner string   `json:"winner"`
	Prize  math.Int `json:"prize"`
}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
