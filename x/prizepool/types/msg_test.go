package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

var (
	testAdmin  = sdk.AccAddress([]byte("admin_______________")).String()
	testLender = sdk.AccAddress([]byte("lender______________")).String()
)

func TestMsgCreatePoolValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgCreatePool
		wantErr error
	}{
		{
			name: "valid",
			msg:  types.NewMsgCreatePool(testAdmin, "upaw", 7),
		},
		{
			name:    "bad admin",
			msg:     types.NewMsgCreatePool("nope", "upaw", 7),
			wantErr: types.ErrInvalidAddress,
		},
		{
			name:    "empty denom",
			msg:     types.NewMsgCreatePool(testAdmin, "", 7),
			wantErr: types.ErrInvalidDenom,
		},
		{
			name:    "zero period",
			msg:     types.NewMsgCreatePool(testAdmin, "upaw", 0),
			wantErr: types.ErrBadPeriod,
		},
		{
			name:    "period too long",
			msg:     types.NewMsgCreatePool(testAdmin, "upaw", 366),
			wantErr: types.ErrBadPeriod,
		},
		{
			name: "maximum period",
			msg:  types.NewMsgCreatePool(testAdmin, "upaw", 365),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgDepositValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *types.MsgDeposit
		wantErr error
	}{
		{name: "valid", msg: types.NewMsgDeposit(testAdmin, 1, math.NewInt(100))},
		{name: "bad address", msg: types.NewMsgDeposit("x", 1, math.NewInt(100)), wantErr: types.ErrInvalidAddress},
		{name: "zero pool", msg: types.NewMsgDeposit(testAdmin, 0, math.NewInt(100)), wantErr: types.ErrNotInitialized},
		{name: "zero amount", msg: types.NewMsgDeposit(testAdmin, 1, math.ZeroInt()), wantErr: types.ErrZeroAmount},
		{name: "negative amount", msg: types.NewMsgDeposit(testAdmin, 1, math.NewInt(-5)), wantErr: types.ErrZeroAmount},
		{name: "nil amount", msg: &types.MsgDeposit{Depositor: testAdmin, PoolId: 1}, wantErr: types.ErrZeroAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgWithdrawValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgWithdraw(testAdmin, 1, math.NewInt(1)).ValidateBasic())
	require.ErrorIs(t, types.NewMsgWithdraw(testAdmin, 1, math.ZeroInt()).ValidateBasic(), types.ErrZeroAmount)
	require.ErrorIs(t, types.NewMsgWithdraw("x", 1, math.NewInt(1)).ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsgLenderValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgSetLenderPool(testAdmin, 1, testLender).ValidateBasic())
	require.ErrorIs(t, types.NewMsgSetLenderPool(testAdmin, 1, "bad").ValidateBasic(), types.ErrInvalidAddress)
	require.ErrorIs(t, types.NewMsgSetLenderPool(testAdmin, 0, testLender).ValidateBasic(), types.ErrNotInitialized)

	require.NoError(t, types.NewMsgSupplyToLender(testAdmin, 1, math.NewInt(10)).ValidateBasic())
	require.ErrorIs(t, types.NewMsgSupplyToLender(testAdmin, 1, math.ZeroInt()).ValidateBasic(), types.ErrZeroAmount)

	require.NoError(t, types.NewMsgWithdrawFromLender(testAdmin, 1, math.NewInt(10), math.ZeroInt()).ValidateBasic())
	require.ErrorIs(t,
		types.NewMsgWithdrawFromLender(testAdmin, 1, math.NewInt(10), math.NewInt(-1)).ValidateBasic(),
		types.ErrZeroAmount)

	require.NoError(t, types.NewMsgHarvestYield(testAdmin, 1, math.NewInt(10), math.NewInt(10)).ValidateBasic())
	require.ErrorIs(t, types.NewMsgHarvestYield("bad", 1, math.NewInt(10), math.NewInt(10)).ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsgExecuteDrawValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgExecuteDraw(testAdmin, 1).ValidateBasic())
	require.ErrorIs(t, types.NewMsgExecuteDraw("bad", 1).ValidateBasic(), types.ErrInvalidAddress)
	require.ErrorIs(t, types.NewMsgExecuteDraw(testAdmin, 0).ValidateBasic(), types.ErrNotInitialized)
}

func TestMsgUpdateParamsValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgUpdateParams(testAdmin, types.DefaultParams()).ValidateBasic())

	bad := types.DefaultParams()
	bad.MaxDepositorsPerPool = 0
	require.ErrorIs(t, types.NewMsgUpdateParams(testAdmin, bad).ValidateBasic(), types.ErrInvalidParams)
}

func TestMsgSigners(t *testing.T) {
	addr := sdk.AccAddress([]byte("signer______________"))

	require.Equal(t, []sdk.AccAddress{addr}, types.NewMsgDeposit(addr.String(), 1, math.NewInt(1)).GetSigners())
	require.Equal(t, []sdk.AccAddress{addr}, types.NewMsgExecuteDraw(addr.String(), 1).GetSigners())
	require.Equal(t, []sdk.AccAddress{addr}, types.NewMsgSupplyToLender(addr.String(), 1, math.NewInt(1)).GetSigners())
}
