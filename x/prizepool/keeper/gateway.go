package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// The token gateway is the only path value takes in and out of module
// custody. Any bank failure surfaces as ErrTokenTransferFailed so every
// entry point aborts with the documented code.

// pullFunds moves amount base units of denom from a depositor into the
// module account.
func (k Keeper) pullFunds(ctx context.Context, from sdk.AccAddress, denom string, amount math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoins(ctx, from, k.GetModuleAddress(), coins); err != nil {
		return types.ErrTokenTransferFailed.Wrapf("pull %s%s from %s: %v", amount, denom, from, err)
	}
	return nil
}

// pushFunds moves amount base units of denom from the module account to a
// recipient.
func (k Keeper) pushFunds(ctx context.Context, to sdk.AccAddress, denom string, amount math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), to, coins); err != nil {
		return types.ErrTokenTransferFailed.Wrapf("push %s%s to %s: %v", amount, denom, to, err)
	}
	return nil
}

// moduleBalance returns the module account's on-hand balance of denom.
func (k Keeper) moduleBalance(ctx context.Context, denom string) math.Int {
	return k.bankKeeper.GetBalance(ctx, k.GetModuleAddress(), denom).Amount
}
