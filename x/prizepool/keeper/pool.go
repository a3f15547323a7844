package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"cosmossdk.io/math"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)

	var poolID uint64
	if bz == nil {
		poolID = 1
	} else {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(PoolCountKey, nextBz)

	return poolID
}

// SetNextPoolID sets the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(PoolCountKey, bz)
}

// CreatePool initializes a new prize-savings pool. A pool for the same
// (denom, period_days) market may only be initialized once.
func (k Keeper) CreatePool(ctx context.Context, admin sdk.AccAddress, denom string, periodDays uint32) (*types.Pool, error) {
	if err := sdk.ValidateDenom(denom); err != nil {
		return nil, types.ErrInvalidDenom.Wrapf("invalid pool denom: %v", err)
	}
	if periodDays < types.MinPeriodDays || periodDays > types.MaxPeriodDays {
		return nil, types.ErrBadPeriod.Wrapf("period_days %d outside [%d, %d]",
			periodDays, types.MinPeriodDays, types.MaxPeriodDays)
	}

	store := k.getStore(ctx)
	marketKey := types.GetPoolByMarketKey(denom, periodDays)
	if store.Has(marketKey) {
		return nil, types.ErrAlreadyInitialized.Wrapf("pool for %s/%dd already exists", denom, periodDays)
	}

	poolID := k.GetNextPoolID(ctx)

	pool := &types.Pool{
		Id:               poolID,
		Admin:            admin.String(),
		Denom:            denom,
		PeriodDays:       periodDays,
		TotalDeposits:    math.ZeroInt(),
		TotalTickets:     math.ZeroInt(),
		PrizeFund:        math.ZeroInt(),
		SuppliedToLender: math.ZeroInt(),
		DrawNonce:        0,
		DepositorCount:   0,
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return nil, err
	}

	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, poolID)
	store.Set(marketKey, idBz)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyAdmin, pool.Admin),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyPeriodDays, fmt.Sprintf("%d", periodDays)),
		),
	)

	poolsCreated.Inc()

	return pool, nil
}

// GetPool retrieves a pool by ID
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetPoolKey(poolID))
	if bz == nil {
		return nil, types.ErrNotInitialized.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := k.cdc.Unmarshal(bz, &pool); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(types.GetPoolKey(pool.Id), bz)
	return nil
}

// GetPoolByMarket retrieves a pool by its denom and period
func (k Keeper) GetPoolByMarket(ctx context.Context, denom string, periodDays uint32) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetPoolByMarketKey(denom, periodDays))
	if bz == nil {
		return nil, types.ErrNotInitialized.Wrapf("no pool for %s/%dd", denom, periodDays)
	}
	return k.GetPool(ctx, binary.BigEndian.Uint64(bz))
}

// IteratePools iterates over all pools
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns all pools
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}

// GetLastDraw returns the last draw record of a pool, or nil if no draw has
// completed yet.
func (k Keeper) GetLastDraw(ctx context.Context, poolID uint64) (*types.LastDraw, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetLastDrawKey(poolID))
	if bz == nil {
		return nil, nil
	}

	var draw types.LastDraw
	if err := k.cdc.Unmarshal(bz, &draw); err != nil {
		return nil, fmt.Errorf("GetLastDraw: unmarshal pool %d: %w", poolID, err)
	}
	return &draw, nil
}

// SetLastDraw saves a pool's last draw record
func (k Keeper) SetLastDraw(ctx context.Context, poolID uint64, draw types.LastDraw) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&draw)
	if err != nil {
		return fmt.Errorf("SetLastDraw: marshal pool %d: %w", poolID, err)
	}
	store.Set(types.GetLastDrawKey(poolID), bz)
	return nil
}

// requireAdmin checks that the given address is the pool admin.
func requireAdmin(pool *types.Pool, addr sdk.AccAddress) error {
	if pool.Admin != addr.String() {
		return types.ErrUnauthorized.Wrapf("%s is not the admin of pool %d", addr, pool.Id)
	}
	return nil
}
