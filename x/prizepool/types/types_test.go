package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

func TestTicketsFor(t *testing.T) {
	tests := []struct {
		name   string
		amount math.Int
		period uint32
		want   math.Int
	}{
		{name: "one whole token over a week", amount: math.NewInt(10_000_000), period: 7, want: math.NewInt(70_000_000)},
		{name: "zero amount", amount: math.ZeroInt(), period: 30, want: math.ZeroInt()},
		{name: "single base unit", amount: math.NewInt(1), period: 365, want: math.NewInt(365)},
		{
			name:   "beyond the 64-bit range",
			amount: math.NewIntFromUint64(1 << 62).MulRaw(4), // 2^64
			period: 365,
			want:   math.NewIntFromUint64(1 << 62).MulRaw(4).MulRaw(365),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, types.TicketsFor(tt.amount, tt.period))
		})
	}
}

func TestPoolValidate(t *testing.T) {
	pool := validPool(1)
	require.NoError(t, pool.Validate())

	broken := validPool(1)
	broken.TotalTickets = math.NewInt(1)
	require.ErrorIs(t, broken.Validate(), types.ErrInvalidGenesis)

	badPeriod := validPool(1)
	badPeriod.PeriodDays = 0
	badPeriod.TotalTickets = math.ZeroInt()
	badPeriod.TotalDeposits = math.ZeroInt()
	require.ErrorIs(t, badPeriod.Validate(), types.ErrBadPeriod)

	badAdmin := validPool(1)
	badAdmin.Admin = "nope"
	require.ErrorIs(t, badAdmin.Validate(), types.ErrInvalidAddress)
}

func TestPoolHasLender(t *testing.T) {
	pool := validPool(1)
	require.False(t, pool.HasLender())

	pool.LenderPool = testLender
	require.True(t, pool.HasLender())
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.DefaultParams()
	p.MinDeposit = math.ZeroInt()
	require.ErrorIs(t, p.Validate(), types.ErrInvalidParams)

	p = types.DefaultParams()
	p.MaxDepositorsPerPool = 0
	require.ErrorIs(t, p.Validate(), types.ErrInvalidParams)
}

func TestParamsString(t *testing.T) {
	out := types.DefaultParams().String()
	require.Contains(t, out, "mindeposit")
}
