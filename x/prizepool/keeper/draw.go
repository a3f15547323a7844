package keeper

import (
	"context"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// ExecuteDraw selects one winner with probability proportional to tickets and
// pays the prize fund to them. The winner's principal and tickets are not
// altered; they stay in for the next period unless they withdraw.
func (k Keeper) ExecuteDraw(ctx context.Context, admin sdk.AccAddress, poolID uint64) (sdk.AccAddress, math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return nil, math.Int{}, err
	}
	if err := requireAdmin(pool, admin); err != nil {
		return nil, math.Int{}, err
	}

	// Preconditions, each with its own abort code.
	if !pool.TotalDeposits.IsPositive() {
		return nil, math.Int{}, types.ErrNoParticipants.Wrapf("pool %d has no deposits", poolID)
	}
	if !pool.TotalTickets.IsPositive() {
		return nil, math.Int{}, types.ErrNoTickets.Wrapf("pool %d has no tickets", poolID)
	}
	if !pool.PrizeFund.IsPositive() {
		return nil, math.Int{}, types.ErrNoPrize.Wrapf("pool %d prize fund is empty", poolID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	r := k.randSource.Draw(sdkCtx, poolID, pool.DrawNonce)
	winningIndex := new(big.Int).Mod(new(big.Int).SetUint64(r), pool.TotalTickets.BigInt())

	winner, err := k.selectWinner(ctx, pool, math.NewIntFromBigInt(winningIndex))
	if err != nil {
		return nil, math.Int{}, err
	}

	prize := pool.PrizeFund
	if err := k.pushFunds(ctx, winner, pool.Denom, prize); err != nil {
		return nil, math.Int{}, err
	}

	// The prize fund resets only after the payout so it always corresponds
	// to custodied funds; an aborted transfer leaves fund and nonce intact.
	pool.PrizeFund = math.ZeroInt()
	pool.DrawNonce++
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, math.Int{}, err
	}

	draw := types.LastDraw{
		Timestamp: sdkCtx.BlockTime(),
		Winner:    winner.String(),
		Prize:     prize,
		Nonce:     pool.DrawNonce,
	}
	if err := k.SetLastDraw(ctx, poolID, draw); err != nil {
		return nil, math.Int{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDrawExecuted,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyWinner, winner.String()),
			sdk.NewAttribute(types.AttributeKeyPrize, prize.String()),
			sdk.NewAttribute(types.AttributeKeyDrawNonce, fmt.Sprintf("%d", pool.DrawNonce)),
		),
	)

	poolLabel := fmt.Sprintf("%d", poolID)
	drawCount.WithLabelValues(poolLabel).Inc()
	prizePaidTotal.WithLabelValues(poolLabel).Add(intToFloat(prize))

	sdkCtx.Logger().Info("prize draw executed",
		"module", types.ModuleName,
		"pool_id", poolID,
		"winner", winner.String(),
		"prize", prize.String(),
		"nonce", pool.DrawNonce,
	)

	return winner, prize, nil
}

// selectWinner walks the depositor list in stored slot order, accumulating
// ticket weights. Each depositor owns the half-open cumulative band
// [cum, cum+tickets); the band containing winningIndex selects the winner,
// so ties are impossible by construction.
func (k Keeper) selectWinner(ctx context.Context, pool *types.Pool, winningIndex math.Int) (sdk.AccAddress, error) {
	var winner sdk.AccAddress
	cum := math.ZeroInt()

	k.IterateDepositors(ctx, pool, func(_ uint64, addr sdk.AccAddress) bool {
		cum = cum.Add(k.GetTickets(ctx, pool.Id, addr))
		if winningIndex.LT(cum) {
			winner = addr
			return true
		}
		return false
	})

	if winner == nil {
		// Unreachable while the ledger invariants hold: the cumulative walk
		// covers [0, TotalTickets) and winningIndex lies inside it.
		return nil, fmt.Errorf("selectWinner: pool %d walk exhausted at cum %s for index %s", pool.Id, cum, winningIndex)
	}
	return winner, nil
}
