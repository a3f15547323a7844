package keeper

import (
	"context"
	"crypto/sha256"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/prizesavings/x/prizepool/keeper"
	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// MockBankKeeper is an in-memory bank for testing. Unlike a pass-through
// stub it debits senders, so custody and no-loss tests observe real
// conservation.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
}

// NewMockBankKeeper creates an empty in-memory bank
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount mints coins to an account (test setup only)
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	key := addr.String()
	m.balances[key] = m.balances[key].Add(amt...)
}

func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	fromKey := fromAddr.String()
	have := m.balances[fromKey]
	remaining, hasNeg := have.SafeSub(amt...)
	if hasNeg {
		return fmt.Errorf("insufficient funds: %s has %s, wants to send %s", fromKey, have, amt)
	}
	m.balances[fromKey] = remaining
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) GetAllBalances(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// MockLenderKeeper simulates the external lending pool. Supplied funds sit in
// the lender's account in the mock bank; Withdraw pushes them back, shorted
// by ShortFall to exercise the slippage guard, or fails outright when Reject
// is set. Yield is simulated by funding the lender account directly.
type MockLenderKeeper struct {
	bank *MockBankKeeper

	Reject    bool
	ShortFall math.Int
}

// NewMockLenderKeeper creates a lender backed by the given mock bank
func NewMockLenderKeeper(bank *MockBankKeeper) *MockLenderKeeper {
	return &MockLenderKeeper{bank: bank, ShortFall: math.ZeroInt()}
}

func (m *MockLenderKeeper) Supply(ctx context.Context, lender sdk.AccAddress, from sdk.AccAddress, amount sdk.Coin) error {
	if m.Reject {
		return fmt.Errorf("lender unavailable")
	}
	return m.bank.SendCoins(ctx, from, lender, sdk.NewCoins(amount))
}

func (m *MockLenderKeeper) Withdraw(ctx context.Context, lender sdk.AccAddress, to sdk.AccAddress, amount sdk.Coin) error {
	if m.Reject {
		return fmt.Errorf("lender unavailable")
	}
	realized := amount.Amount.Sub(m.ShortFall)
	if realized.IsNegative() {
		realized = math.ZeroInt()
	}
	return m.bank.SendCoins(ctx, lender, to, sdk.NewCoins(sdk.NewCoin(amount.Denom, realized)))
}

// SeededRandSource is a deterministic draw source for tests. Each call hashes
// the seed with the call counter so repeated draws are independent but
// reproducible.
type SeededRandSource struct {
	Seed  uint64
	calls uint64
}

func (s *SeededRandSource) Draw(_ sdk.Context, poolID uint64, nonce uint64) uint64 {
	s.calls++
	var buf [32]byte
	binary := func(off int, v uint64) {
		for i := 0; i < 8; i++ {
			buf[off+i] = byte(v >> (56 - 8*i))
		}
	}
	binary(0, s.Seed)
	binary(8, s.calls)
	binary(16, poolID)
	binary(24, nonce)
	sum := sha256.Sum256(buf[:])
	var out uint64
	for i := 0; i < 8; i++ {
		out = out<<8 | uint64(sum[i])
	}
	return out
}

// FixedRandSource always draws the same value, pinning the selected winner.
type FixedRandSource struct {
	Value uint64
}

func (f FixedRandSource) Draw(_ sdk.Context, _ uint64, _ uint64) uint64 {
	return f.Value
}

// PrizepoolKeeper creates a test keeper for the prizepool module with mock
// bank and lender dependencies.
func PrizepoolKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *MockBankKeeper, *MockLenderKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	lender := NewMockLenderKeeper(bank)

	k := keeper.NewKeeper(
		types.ModuleCdc,
		storeKey,
		bank,
		lender,
		types.DefaultAuthority(),
	)

	header := cmtproto.Header{Height: 1, Time: time.Unix(1700000000, 0).UTC()}
	headerHash := sha256.Sum256([]byte("prizepool-test-header"))
	ctx := sdk.NewContext(stateStore, header, false, log.NewNopLogger()).
		WithHeaderHash(headerHash[:])

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx, bank, lender
}

// CreateTestPool initializes a pool and returns its ID
func CreateTestPool(t testing.TB, k *keeper.Keeper, ctx sdk.Context, admin sdk.AccAddress, denom string, periodDays uint32) uint64 {
	pool, err := k.CreatePool(ctx, admin, denom, periodDays)
	require.NoError(t, err)
	require.NotNil(t, pool)
	return pool.Id
}

// FundAndDeposit mints base units to a depositor and deposits them into a pool
func FundAndDeposit(t testing.TB, k *keeper.Keeper, ctx sdk.Context, bank *MockBankKeeper, depositor sdk.AccAddress, poolID uint64, denom string, amount math.Int) {
	bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin(denom, amount)))
	_, err := k.Deposit(ctx, depositor, poolID, amount)
	require.NoError(t, err)
}
