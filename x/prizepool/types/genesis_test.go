package types_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

func validPool(id uint64) types.Pool {
	return types.Pool{
		Id:               id,
		Admin:            testAdmin,
		Denom:            "upaw",
		PeriodDays:       7,
		TotalDeposits:    math.NewInt(1000),
		TotalTickets:     math.NewInt(7000),
		PrizeFund:        math.ZeroInt(),
		SuppliedToLender: math.ZeroInt(),
		DepositorCount:   1,
	}
}

func validBalances(poolID uint64) []types.DepositorBalance {
	return []types.DepositorBalance{{
		PoolId:  poolID,
		Address: sdk.AccAddress([]byte("alice_______________")).String(),
		Balance: math.NewInt(1000),
		Tickets: math.NewInt(7000),
	}}
}

func TestGenesisValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(gs *types.GenesisState)
		wantErr bool
	}{
		{
			name:   "default genesis",
			mutate: func(gs *types.GenesisState) {},
		},
		{
			name: "valid populated genesis",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 2
				gs.Pools = []types.Pool{validPool(1)}
				gs.Balances = validBalances(1)
			},
		},
		{
			name: "duplicate pool id",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 3
				p2 := validPool(1)
				p2.PeriodDays = 15
				p2.TotalTickets = math.NewInt(15000)
				gs.Pools = []types.Pool{validPool(1), p2}
				gs.Balances = validBalances(1)
			},
			wantErr: true,
		},
		{
			name: "duplicate market",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 3
				gs.Pools = []types.Pool{validPool(1), validPool(2)}
			},
			wantErr: true,
		},
		{
			name: "pool id above counter",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 1
				gs.Pools = []types.Pool{validPool(5)}
				gs.Balances = validBalances(5)
			},
			wantErr: true,
		},
		{
			name: "totals do not match balances",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 2
				pool := validPool(1)
				pool.TotalDeposits = math.NewInt(2000)
				pool.TotalTickets = math.NewInt(14000)
				gs.Pools = []types.Pool{pool}
				gs.Balances = validBalances(1)
			},
			wantErr: true,
		},
		{
			name: "balance entry breaks linearity",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 2
				gs.Pools = []types.Pool{validPool(1)}
				balances := validBalances(1)
				balances[0].Tickets = math.NewInt(6999)
				gs.Balances = balances
			},
			wantErr: true,
		},
		{
			name: "balance references unknown pool",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 2
				gs.Pools = []types.Pool{validPool(1)}
				gs.Balances = append(validBalances(1), validBalances(9)...)
			},
			wantErr: true,
		},
		{
			name: "duplicate balance entry",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 2
				pool := validPool(1)
				pool.TotalDeposits = math.NewInt(2000)
				pool.TotalTickets = math.NewInt(14000)
				pool.DepositorCount = 2
				gs.Pools = []types.Pool{pool}
				gs.Balances = append(validBalances(1), validBalances(1)...)
			},
			wantErr: true,
		},
		{
			name: "depositor count mismatch",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 2
				pool := validPool(1)
				pool.DepositorCount = 3
				gs.Pools = []types.Pool{pool}
				gs.Balances = validBalances(1)
			},
			wantErr: true,
		},
		{
			name: "negative prize fund",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 2
				pool := validPool(1)
				pool.PrizeFund = math.NewInt(-1)
				gs.Pools = []types.Pool{pool}
				gs.Balances = validBalances(1)
			},
			wantErr: true,
		},
		{
			name: "last draw for unknown pool",
			mutate: func(gs *types.GenesisState) {
				gs.LastDraws = []types.PoolLastDraw{{
					PoolId: 9,
					Draw: types.LastDraw{
						Timestamp: time.Unix(1700000000, 0),
						Winner:    testAdmin,
						Prize:     math.NewInt(5),
						Nonce:     1,
					},
				}}
			},
			wantErr: true,
		},
		{
			name: "valid last draw",
			mutate: func(gs *types.GenesisState) {
				gs.NextPoolId = 2
				gs.Pools = []types.Pool{validPool(1)}
				gs.Balances = validBalances(1)
				gs.LastDraws = []types.PoolLastDraw{{
					PoolId: 1,
					Draw: types.LastDraw{
						Timestamp: time.Unix(1700000000, 0),
						Winner:    testAdmin,
						Prize:     math.NewInt(5),
						Nonce:     1,
					},
				}}
			},
		},
		{
			name: "invalid params",
			mutate: func(gs *types.GenesisState) {
				gs.Params.MaxDepositorsPerPool = 0
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := types.DefaultGenesis()
			tt.mutate(gs)

			err := gs.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
