package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// Deposit locks principal into a pool. The funds are pulled from the
// depositor first; the ledger credit only happens once custody is
// established, so an aborted pull leaves no phantom balance.
func (k Keeper) Deposit(ctx context.Context, depositor sdk.AccAddress, poolID uint64, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("deposit amount must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.Int{}, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	if amount.LT(params.MinDeposit) {
		return math.Int{}, types.ErrZeroAmount.Wrapf("deposit %s below minimum %s", amount, params.MinDeposit)
	}

	if err := k.pullFunds(ctx, depositor, pool.Denom, amount); err != nil {
		return math.Int{}, err
	}

	tickets, err := k.creditDeposit(ctx, pool, depositor, amount)
	if err != nil {
		return math.Int{}, err
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDeposited,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyTickets, tickets.String()),
		),
	)

	depositCount.WithLabelValues(fmt.Sprintf("%d", poolID)).Inc()

	return tickets, nil
}

// Withdraw returns principal to the depositor. The ledger debit precedes the
// outgoing transfer; a failed transfer aborts the message so the debit rolls
// back with it (all-or-nothing).
func (k Keeper) Withdraw(ctx context.Context, depositor sdk.AccAddress, poolID uint64, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("withdraw amount must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return err
	}

	if err := k.debitWithdrawal(ctx, pool, depositor, amount); err != nil {
		return err
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	if err := k.pushFunds(ctx, depositor, pool.Denom, amount); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrew,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	withdrawCount.WithLabelValues(fmt.Sprintf("%d", poolID)).Inc()

	return nil
}
