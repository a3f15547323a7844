package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// GetBalance returns a depositor's principal in a pool. Missing entries read
// as zero.
func (k Keeper) GetBalance(ctx context.Context, poolID uint64, depositor sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.GetBalanceKey(poolID, depositor))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupt balance entry for pool %d: %w", poolID, err))
	}
	return amount
}

// GetTickets returns a depositor's ticket weight in a pool.
func (k Keeper) GetTickets(ctx context.Context, poolID uint64, depositor sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.GetTicketsKey(poolID, depositor))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupt tickets entry for pool %d: %w", poolID, err))
	}
	return amount
}

func (k Keeper) setBalance(ctx context.Context, poolID uint64, depositor sdk.AccAddress, amount math.Int) {
	store := k.getStore(ctx)
	key := types.GetBalanceKey(poolID, depositor)
	if amount.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Errorf("marshal balance: %w", err))
	}
	store.Set(key, bz)
}

func (k Keeper) setTickets(ctx context.Context, poolID uint64, depositor sdk.AccAddress, amount math.Int) {
	store := k.getStore(ctx)
	key := types.GetTicketsKey(poolID, depositor)
	if amount.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Errorf("marshal tickets: %w", err))
	}
	store.Set(key, bz)
}

// DepositorAt returns the depositor address stored at a draw-walk slot.
func (k Keeper) DepositorAt(ctx context.Context, poolID, slot uint64) (sdk.AccAddress, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetDepositorAtKey(poolID, slot))
	if bz == nil {
		return nil, false
	}
	return sdk.AccAddress(bz), true
}

// depositorSlot returns the slot a depositor occupies in the draw walk.
func (k Keeper) depositorSlot(ctx context.Context, poolID uint64, depositor sdk.AccAddress) (uint64, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetDepositorIndexKey(poolID, depositor))
	if bz == nil {
		return 0, false
	}
	return binary.BigEndian.Uint64(bz), true
}

func (k Keeper) setDepositorSlot(ctx context.Context, poolID uint64, depositor sdk.AccAddress, slot uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, slot)
	store.Set(types.GetDepositorIndexKey(poolID, depositor), bz)
	store.Set(types.GetDepositorAtKey(poolID, slot), depositor.Bytes())
}

// appendDepositor adds a depositor to the end of the pool's draw list.
func (k Keeper) appendDepositor(ctx context.Context, pool *types.Pool, depositor sdk.AccAddress) {
	k.setDepositorSlot(ctx, pool.Id, depositor, pool.DepositorCount)
	pool.DepositorCount++
}

// removeDepositor deletes a depositor from the draw list with swap-pop: the
// last slot's occupant moves into the vacated slot so the walk stays dense.
func (k Keeper) removeDepositor(ctx context.Context, pool *types.Pool, depositor sdk.AccAddress) error {
	slot, ok := k.depositorSlot(ctx, pool.Id, depositor)
	if !ok {
		return fmt.Errorf("removeDepositor: %s not in pool %d list", depositor, pool.Id)
	}

	store := k.getStore(ctx)
	lastSlot := pool.DepositorCount - 1

	if slot != lastSlot {
		last, ok := k.DepositorAt(ctx, pool.Id, lastSlot)
		if !ok {
			return fmt.Errorf("removeDepositor: pool %d slot %d empty", pool.Id, lastSlot)
		}
		k.setDepositorSlot(ctx, pool.Id, last, slot)
	}

	store.Delete(types.GetDepositorAtKey(pool.Id, lastSlot))
	store.Delete(types.GetDepositorIndexKey(pool.Id, depositor))
	pool.DepositorCount--
	return nil
}

// creditDeposit credits principal to a depositor and issues tickets
// amount x period_days atomically. The caller persists the pool afterwards.
func (k Keeper) creditDeposit(ctx context.Context, pool *types.Pool, depositor sdk.AccAddress, amount math.Int) (math.Int, error) {
	balance := k.GetBalance(ctx, pool.Id, depositor)
	issued := types.TicketsFor(amount, pool.PeriodDays)

	if balance.IsZero() {
		params, err := k.GetParams(ctx)
		if err != nil {
			return math.Int{}, err
		}
		if pool.DepositorCount >= params.MaxDepositorsPerPool {
			return math.Int{}, types.ErrTooManyDepositors.Wrapf("pool %d is full (%d depositors)", pool.Id, pool.DepositorCount)
		}
		k.appendDepositor(ctx, pool, depositor)
	}

	k.setBalance(ctx, pool.Id, depositor, balance.Add(amount))
	k.setTickets(ctx, pool.Id, depositor, k.GetTickets(ctx, pool.Id, depositor).Add(issued))

	pool.TotalDeposits = pool.TotalDeposits.Add(amount)
	pool.TotalTickets = pool.TotalTickets.Add(issued)

	return issued, nil
}

// debitWithdrawal debits principal from a depositor, burning tickets
// proportionally. A zero remaining balance removes the depositor from the
// draw list. The caller persists the pool afterwards.
func (k Keeper) debitWithdrawal(ctx context.Context, pool *types.Pool, depositor sdk.AccAddress, amount math.Int) error {
	balance := k.GetBalance(ctx, pool.Id, depositor)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("balance %s < withdrawal %s", balance, amount)
	}

	burned := types.TicketsFor(amount, pool.PeriodDays)
	remaining := balance.Sub(amount)

	k.setBalance(ctx, pool.Id, depositor, remaining)
	k.setTickets(ctx, pool.Id, depositor, k.GetTickets(ctx, pool.Id, depositor).Sub(burned))

	pool.TotalDeposits = pool.TotalDeposits.Sub(amount)
	pool.TotalTickets = pool.TotalTickets.Sub(burned)

	if remaining.IsZero() {
		if err := k.removeDepositor(ctx, pool, depositor); err != nil {
			return err
		}
	}
	return nil
}

// IterateDepositors walks a pool's depositor list in stored slot order.
func (k Keeper) IterateDepositors(ctx context.Context, pool *types.Pool, cb func(slot uint64, addr sdk.AccAddress) (stop bool)) {
	for slot := uint64(0); slot < pool.DepositorCount; slot++ {
		addr, ok := k.DepositorAt(ctx, pool.Id, slot)
		if !ok {
			panic(fmt.Errorf("pool %d: depositor list has hole at slot %d", pool.Id, slot))
		}
		if cb(slot, addr) {
			return
		}
	}
}
