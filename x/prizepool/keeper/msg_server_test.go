package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/prizesavings/testutil/keeper"
	"github.com/paw-chain/prizesavings/x/prizepool/keeper"
	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

func TestMsgServerFullFlow(t *testing.T) {
	k, ctx, bank, _ := keepertest.PrizepoolKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	// Initialize.
	createRes, err := ms.CreatePool(ctx, types.NewMsgCreatePool(admin.String(), testDenom, 7))
	require.NoError(t, err)
	poolID := createRes.PoolId
	require.NotZero(t, poolID)

	// A second pool on the same market aborts AlreadyInitialized.
	_, err = ms.CreatePool(ctx, types.NewMsgCreatePool(admin.String(), testDenom, 7))
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)

	// Configure the lender.
	_, err = ms.SetLenderPool(ctx, types.NewMsgSetLenderPool(admin.String(), poolID, lenderAddr.String()))
	require.NoError(t, err)

	// Deposit.
	bank.FundAccount(alice, sdk.NewCoins(sdk.NewCoin(testDenom, whole(100))))
	depositRes, err := ms.Deposit(ctx, types.NewMsgDeposit(alice.String(), poolID, whole(100)))
	require.NoError(t, err)
	require.Equal(t, whole(100).MulRaw(7), depositRes.Tickets)

	// Relend, then recall part of it with a slippage guard.
	_, err = ms.SupplyToLender(ctx, types.NewMsgSupplyToLender(admin.String(), poolID, whole(100)))
	require.NoError(t, err)

	withdrawLenderRes, err := ms.WithdrawFromLender(ctx, types.NewMsgWithdrawFromLender(admin.String(), poolID, whole(95), whole(95)))
	require.NoError(t, err)
	require.Equal(t, whole(95), withdrawLenderRes.Actual)

	// Harvest simulated yield into the prize fund.
	bank.FundAccount(lenderAddr, sdk.NewCoins(sdk.NewCoin(testDenom, whole(5))))
	harvestRes, err := ms.HarvestYield(ctx, types.NewMsgHarvestYield(admin.String(), poolID, whole(5), whole(5)))
	require.NoError(t, err)
	require.Equal(t, whole(5), harvestRes.Actual)

	// Draw pays the sole depositor.
	drawRes, err := ms.ExecuteDraw(ctx, types.NewMsgExecuteDraw(admin.String(), poolID))
	require.NoError(t, err)
	require.Equal(t, alice.String(), drawRes.Winner)
	require.Equal(t, whole(5), drawRes.Prize)

	// Recall the rest of the principal, then withdraw it.
	_, err = ms.WithdrawFromLender(ctx, types.NewMsgWithdrawFromLender(admin.String(), poolID, whole(5), whole(5)))
	require.NoError(t, err)

	_, err = ms.Withdraw(ctx, types.NewMsgWithdraw(alice.String(), poolID, whole(100)))
	require.NoError(t, err)

	// 100 principal + 5 prize.
	require.Equal(t, whole(105), bank.GetBalance(ctx, alice, testDenom).Amount)
}

func TestMsgServerValidation(t *testing.T) {
	k, ctx, _, _ := keepertest.PrizepoolKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	_, err := ms.CreatePool(ctx, &types.MsgCreatePool{Admin: "not-bech32", Denom: testDenom, PeriodDays: 7})
	require.Error(t, err)

	_, err = ms.CreatePool(ctx, &types.MsgCreatePool{Admin: admin.String(), Denom: testDenom, PeriodDays: 0})
	require.ErrorIs(t, err, types.ErrBadPeriod)

	_, err = ms.Deposit(ctx, &types.MsgDeposit{Depositor: admin.String(), PoolId: 1, Amount: math.ZeroInt()})
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = ms.Withdraw(ctx, &types.MsgWithdraw{Depositor: admin.String(), PoolId: 0, Amount: whole(1)})
	require.ErrorIs(t, err, types.ErrNotInitialized)

	_, err = ms.ExecuteDraw(ctx, &types.MsgExecuteDraw{Admin: admin.String(), PoolId: 0})
	require.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestMsgServerUpdateParams(t *testing.T) {
	k, ctx, _, _ := keepertest.PrizepoolKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	params := types.DefaultParams()
	params.MaxDepositorsPerPool = 500

	// Only the module authority may update params.
	_, err := ms.UpdateParams(ctx, types.NewMsgUpdateParams(admin.String(), params))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = ms.UpdateParams(ctx, types.NewMsgUpdateParams(k.GetAuthority(), params))
	require.NoError(t, err)

	got, err := k.GetParams(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(500), got.MaxDepositorsPerPool)
}
