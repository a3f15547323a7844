package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// SelectWinner exposes the cumulative-range walk for white-box tests.
func (k Keeper) SelectWinner(ctx context.Context, pool *types.Pool, winningIndex math.Int) (sdk.AccAddress, error) {
	return k.selectWinner(ctx, pool, winningIndex)
}

// DepositorSlot exposes the slot index lookup for white-box tests.
func (k Keeper) DepositorSlot(ctx context.Context, poolID uint64, depositor sdk.AccAddress) (uint64, bool) {
	return k.depositorSlot(ctx, poolID, depositor)
}
