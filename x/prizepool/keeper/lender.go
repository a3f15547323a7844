package keeper

import (
	"context"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// The lender adapter relends pooled principal into an external lending pool.
// SuppliedToLender is an accounting lower bound on what is redeemable; the
// lender's true balance (principal plus accrued yield) lives with the lender
// and is reconciled off-chain. Accounting only mutates after a lender call
// returns success, so failed calls leave it intact.

// SetLenderPool configures the lender a pool relends into. The lender can
// only change while no principal is supplied.
func (k Keeper) SetLenderPool(ctx context.Context, admin sdk.AccAddress, poolID uint64, lender sdk.AccAddress) error {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	if err := requireAdmin(pool, admin); err != nil {
		return err
	}

	if !pool.SuppliedToLender.IsZero() {
		return types.ErrLenderPoolLocked.Wrapf("pool %d has %s supplied", poolID, pool.SuppliedToLender)
	}

	pool.LenderPool = lender.String()
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLenderSet,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyLenderPool, lender.String()),
		),
	)

	return nil
}

// SupplyToLender moves undeployed principal from module custody into the
// lender.
func (k Keeper) SupplyToLender(ctx context.Context, admin sdk.AccAddress, poolID uint64, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("supply amount must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	if err := requireAdmin(pool, admin); err != nil {
		return err
	}
	if !pool.HasLender() {
		return types.ErrLenderNotSet.Wrapf("pool %d has no lender configured", poolID)
	}

	undeployed := pool.TotalDeposits.Sub(pool.SuppliedToLender)
	if amount.GT(undeployed) {
		return types.ErrInsufficientBalance.Wrapf("supply %s exceeds undeployed principal %s", amount, undeployed)
	}
	if amount.GT(k.moduleBalance(ctx, pool.Denom)) {
		return types.ErrInsufficientBalance.Wrapf("supply %s exceeds module balance", amount)
	}

	lender := sdk.MustAccAddressFromBech32(pool.LenderPool)
	if err := k.lenderKeeper.Supply(ctx, lender, k.GetModuleAddress(), sdk.NewCoin(pool.Denom, amount)); err != nil {
		return types.ErrLenderRejected.Wrapf("supply: %v", err)
	}

	pool.SuppliedToLender = pool.SuppliedToLender.Add(amount)
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSupplied,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	suppliedGauge.WithLabelValues(fmt.Sprintf("%d", poolID)).Set(intToFloat(pool.SuppliedToLender))

	return nil
}

// WithdrawFromLender asks the lender to return principal. The realized delta
// credited to the module account must meet minReturn or the whole message
// aborts with SlippageExceeded.
func (k Keeper) WithdrawFromLender(ctx context.Context, admin sdk.AccAddress, poolID uint64, amount, minReturn math.Int) (math.Int, error) {
	pool, actual, err := k.recallFromLender(ctx, admin, poolID, amount, minReturn)
	if err != nil {
		return math.Int{}, err
	}

	recovered := math.MinInt(amount, pool.SuppliedToLender)
	pool.SuppliedToLender = pool.SuppliedToLender.Sub(recovered)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLenderWithdrawn,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyActual, actual.String()),
		),
	)

	suppliedGauge.WithLabelValues(fmt.Sprintf("%d", poolID)).Set(intToFloat(pool.SuppliedToLender))

	return actual, nil
}

// HarvestYield realizes accrued lender yield into the prize fund. Same
// guarded recall as WithdrawFromLender, but the realized delta is yield, not
// principal, so SuppliedToLender is untouched.
func (k Keeper) HarvestYield(ctx context.Context, admin sdk.AccAddress, poolID uint64, amount, minReturn math.Int) (math.Int, error) {
	pool, actual, err := k.recallFromLender(ctx, admin, poolID, amount, minReturn)
	if err != nil {
		return math.Int{}, err
	}

	pool.PrizeFund = pool.PrizeFund.Add(actual)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeHarvested,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyActual, actual.String()),
		),
	)

	harvestedTotal.WithLabelValues(fmt.Sprintf("%d", poolID)).Add(intToFloat(actual))

	return actual, nil
}

// recallFromLender performs the shared guarded withdraw: auth, lender call,
// and slippage measurement against the module account's realized balance
// delta. The lender's own reporting is never trusted.
func (k Keeper) recallFromLender(ctx context.Context, admin sdk.AccAddress, poolID uint64, amount, minReturn math.Int) (*types.Pool, math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return nil, math.Int{}, types.ErrZeroAmount.Wrap("amount must be positive")
	}
	if minReturn.IsNil() || minReturn.IsNegative() {
		return nil, math.Int{}, types.ErrZeroAmount.Wrap("min_return cannot be negative")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, math.Int{}, err
	}
	if err := requireAdmin(pool, admin); err != nil {
		return nil, math.Int{}, err
	}
	if !pool.HasLender() {
		return nil, math.Int{}, types.ErrLenderNotSet.Wrapf("pool %d has no lender configured", poolID)
	}

	before := k.moduleBalance(ctx, pool.Denom)

	lender := sdk.MustAccAddressFromBech32(pool.LenderPool)
	if err := k.lenderKeeper.Withdraw(ctx, lender, k.GetModuleAddress(), sdk.NewCoin(pool.Denom, amount)); err != nil {
		return nil, math.Int{}, types.ErrLenderRejected.Wrapf("withdraw: %v", err)
	}

	actual := k.moduleBalance(ctx, pool.Denom).Sub(before)
	if actual.LT(minReturn) {
		return nil, math.Int{}, types.ErrSlippageExceeded.Wrapf("realized %s below min_return %s", actual, minReturn)
	}

	return pool, actual, nil
}

func intToFloat(i math.Int) float64 {
	f, _ := new(big.Float).SetInt(i.BigInt()).Float64()
	return f
}
