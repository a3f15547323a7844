package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/prizesavings/testutil/keeper"
	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// whole converts whole tokens to base units for a 7-decimal token.
func whole(n int64) math.Int {
	return math.NewInt(n).MulRaw(10_000_000)
}

func (suite *KeeperTestSuite) TestDeposit() {
	poolID := keepertest.CreateTestPool(suite.T(), suite.keeper, suite.ctx, admin, testDenom, 7)
	suite.bank.FundAccount(alice, sdk.NewCoins(sdk.NewCoin(testDenom, whole(1000))))

	tickets, err := suite.keeper.Deposit(suite.ctx, alice, poolID, whole(100))
	suite.Require().NoError(err)
	suite.Require().Equal(whole(100).MulRaw(7), tickets)

	suite.Require().Equal(whole(100), suite.keeper.GetBalance(suite.ctx, poolID, alice))
	suite.Require().Equal(whole(100).MulRaw(7), suite.keeper.GetTickets(suite.ctx, poolID, alice))

	pool, err := suite.keeper.GetPool(suite.ctx, poolID)
	suite.Require().NoError(err)
	suite.Require().Equal(whole(100), pool.TotalDeposits)
	suite.Require().Equal(whole(100).MulRaw(7), pool.TotalTickets)
	suite.Require().Equal(uint64(1), pool.DepositorCount)

	// Custody moved into the module account.
	suite.Require().Equal(whole(100), suite.bank.GetBalance(suite.ctx, suite.keeper.GetModuleAddress(), testDenom).Amount)
	suite.Require().Equal(whole(900), suite.bank.GetBalance(suite.ctx, alice, testDenom).Amount)
}

func (suite *KeeperTestSuite) TestDepositErrors() {
	poolID := keepertest.CreateTestPool(suite.T(), suite.keeper, suite.ctx, admin, testDenom, 7)

	tests := []struct {
		name    string
		poolID  uint64
		amount  math.Int
		fund    math.Int
		wantErr error
	}{
		{name: "zero amount", poolID: poolID, amount: math.ZeroInt(), fund: whole(10), wantErr: types.ErrZeroAmount},
		{name: "negative amount", poolID: poolID, amount: math.NewInt(-1), fund: whole(10), wantErr: types.ErrZeroAmount},
		{name: "unknown pool", poolID: 99, amount: whole(1), fund: whole(10), wantErr: types.ErrNotInitialized},
		{name: "insufficient funds", poolID: poolID, amount: whole(100), fund: whole(1), wantErr: types.ErrTokenTransferFailed},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			depositor := sdk.AccAddress([]byte("depositor_err_______"))
			suite.bank.FundAccount(depositor, sdk.NewCoins(sdk.NewCoin(testDenom, tt.fund)))

			_, err := suite.keeper.Deposit(suite.ctx, depositor, tt.poolID, tt.amount)
			suite.Require().ErrorIs(err, tt.wantErr)
		})
	}
}

func (suite *KeeperTestSuite) TestRepeatDepositAccumulates() {
	poolID := keepertest.CreateTestPool(suite.T(), suite.keeper, suite.ctx, admin, testDenom, 15)
	suite.bank.FundAccount(alice, sdk.NewCoins(sdk.NewCoin(testDenom, whole(100))))

	_, err := suite.keeper.Deposit(suite.ctx, alice, poolID, whole(40))
	suite.Require().NoError(err)
	_, err = suite.keeper.Deposit(suite.ctx, alice, poolID, whole(60))
	suite.Require().NoError(err)

	suite.Require().Equal(whole(100), suite.keeper.GetBalance(suite.ctx, poolID, alice))
	suite.Require().Equal(whole(100).MulRaw(15), suite.keeper.GetTickets(suite.ctx, poolID, alice))

	// Still one list entry.
	pool, err := suite.keeper.GetPool(suite.ctx, poolID)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), pool.DepositorCount)
}

// Partial withdraw keeps the depositor in the draw list with linearly reduced
// tickets.
func (suite *KeeperTestSuite) TestPartialWithdraw() {
	poolID := keepertest.CreateTestPool(suite.T(), suite.keeper, suite.ctx, admin, testDenom, 7)
	keepertest.FundAndDeposit(suite.T(), suite.keeper, suite.ctx, suite.bank, alice, poolID, testDenom, whole(100))

	err := suite.keeper.Withdraw(suite.ctx, alice, poolID, whole(40))
	suite.Require().NoError(err)

	suite.Require().Equal(whole(60), suite.keeper.GetBalance(suite.ctx, poolID, alice))
	suite.Require().Equal(whole(60).MulRaw(7), suite.keeper.GetTickets(suite.ctx, poolID, alice))
	suite.Require().Equal(whole(40), suite.bank.GetBalance(suite.ctx, alice, testDenom).Amount)

	pool, err := suite.keeper.GetPool(suite.ctx, poolID)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), pool.DepositorCount)
	suite.Require().Equal(whole(60), pool.TotalDeposits)
	suite.Require().Equal(whole(60).MulRaw(7), pool.TotalTickets)
}

// Full withdraw removes the depositor from the draw list.
func (suite *KeeperTestSuite) TestFullWithdrawRemovesFromList() {
	poolID := keepertest.CreateTestPool(suite.T(), suite.keeper, suite.ctx, admin, testDenom, 7)
	keepertest.FundAndDeposit(suite.T(), suite.keeper, suite.ctx, suite.bank, alice, poolID, testDenom, whole(50))

	err := suite.keeper.Withdraw(suite.ctx, alice, poolID, whole(50))
	suite.Require().NoError(err)

	suite.Require().True(suite.keeper.GetBalance(suite.ctx, poolID, alice).IsZero())
	suite.Require().True(suite.keeper.GetTickets(suite.ctx, poolID, alice).IsZero())

	pool, err := suite.keeper.GetPool(suite.ctx, poolID)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(0), pool.DepositorCount)

	_, listed := suite.keeper.DepositorSlot(suite.ctx, poolID, alice)
	suite.Require().False(listed)

	// Alice got exactly her principal back.
	suite.Require().Equal(whole(50), suite.bank.GetBalance(suite.ctx, alice, testDenom).Amount)
}

func (suite *KeeperTestSuite) TestWithdrawErrors() {
	poolID := keepertest.CreateTestPool(suite.T(), suite.keeper, suite.ctx, admin, testDenom, 7)
	keepertest.FundAndDeposit(suite.T(), suite.keeper, suite.ctx, suite.bank, alice, poolID, testDenom, whole(10))

	tests := []struct {
		name      string
		depositor sdk.AccAddress
		poolID    uint64
		amount    math.Int
		wantErr   error
	}{
		{name: "zero amount", depositor: alice, poolID: poolID, amount: math.ZeroInt(), wantErr: types.ErrZeroAmount},
		{name: "unknown pool", depositor: alice, poolID: 99, amount: whole(1), wantErr: types.ErrNotInitialized},
		{name: "more than balance", depositor: alice, poolID: poolID, amount: whole(11), wantErr: types.ErrInsufficientBalance},
		{name: "never deposited", depositor: bob, poolID: poolID, amount: whole(1), wantErr: types.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := suite.keeper.Withdraw(suite.ctx, tt.depositor, tt.poolID, tt.amount)
			suite.Require().ErrorIs(err, tt.wantErr)
		})
	}
}

// Swap-pop removal keeps the list dense and every surviving slot resolvable.
func (suite *KeeperTestSuite) TestSwapPopKeepsListDense() {
	poolID := keepertest.CreateTestPool(suite.T(), suite.keeper, suite.ctx, admin, testDenom, 7)
	keepertest.FundAndDeposit(suite.T(), suite.keeper, suite.ctx, suite.bank, alice, poolID, testDenom, whole(10))
	keepertest.FundAndDeposit(suite.T(), suite.keeper, suite.ctx, suite.bank, bob, poolID, testDenom, whole(20))
	keepertest.FundAndDeposit(suite.T(), suite.keeper, suite.ctx, suite.bank, carol, poolID, testDenom, whole(30))

	// Remove the middle entry; carol should move into bob's slot.
	err := suite.keeper.Withdraw(suite.ctx, bob, poolID, whole(20))
	suite.Require().NoError(err)

	pool, err := suite.keeper.GetPool(suite.ctx, poolID)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), pool.DepositorCount)

	var walked []string
	suite.keeper.IterateDepositors(suite.ctx, pool, func(slot uint64, addr sdk.AccAddress) bool {
		walked = append(walked, addr.String())

		idx, ok := suite.keeper.DepositorSlot(suite.ctx, poolID, addr)
		suite.Require().True(ok)
		suite.Require().Equal(slot, idx)
		return false
	})

	suite.Require().ElementsMatch([]string{alice.String(), carol.String()}, walked)
}

// No-loss: every depositor can always reclaim exactly their principal while
// the module holds undeployed balance.
func TestNoLossRoundTrip(t *testing.T) {
	k, ctx, bank, _ := keepertest.PrizepoolKeeper(t)
	poolID := keepertest.CreateTestPool(t, k, ctx, admin, testDenom, 30)

	depositors := []sdk.AccAddress{alice, bob, carol}
	amounts := []math.Int{whole(17), whole(250), whole(3)}

	for i, d := range depositors {
		keepertest.FundAndDeposit(t, k, ctx, bank, d, poolID, testDenom, amounts[i])
	}

	for i, d := range depositors {
		require.NoError(t, k.Withdraw(ctx, d, poolID, amounts[i]))
		require.Equal(t, amounts[i], bank.GetBalance(ctx, d, testDenom).Amount)
	}

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.True(t, pool.TotalDeposits.IsZero())
	require.True(t, pool.TotalTickets.IsZero())
	require.Equal(t, uint64(0), pool.DepositorCount)
	require.True(t, bank.GetBalance(ctx, k.GetModuleAddress(), testDenom).Amount.IsZero())
}
