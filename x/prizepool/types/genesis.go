package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PoolLastDraw pairs a pool ID with its last draw record for genesis export.
type PoolLastDraw struct {
	PoolId uint64   `json:"pool_id"`
	Draw   LastDraw `json:"draw"`
}

// GenesisState holds the prizepool module's genesis state
type GenesisState struct {
	Params     Params             `json:"params"`
	NextPoolId uint64             `json:"next_pool_id"`
	Pools      []Pool             `json:"pools"`
	Balances   []DepositorBalance `json:"balances"`
	LastDraws  []PoolLastDraw     `json:"last_draws,omitempty"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		NextPoolId: 1,
		Pools:      []Pool{},
		Balances:   []DepositorBalance{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure. Conservation and ticket linearity are re-derived from the balance
// entries so a corrupt export cannot be re-imported.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenPoolIDs := make(map[uint64]bool)
	seenMarkets := make(map[string]bool)
	pools := make(map[uint64]Pool)

	for i, pool := range gs.Pools {
		if seenPoolIDs[pool.Id] {
			return ErrInvalidGenesis.Wrapf("duplicate pool ID %d at index %d", pool.Id, i)
		}
		seenPoolIDs[pool.Id] = true

		if err := pool.Validate(); err != nil {
			return err
		}

		if gs.NextPoolId > 0 && pool.Id >= gs.NextPoolId {
			return ErrInvalidGenesis.Wrapf("pool ID %d not below next_pool_id %d", pool.Id, gs.NextPoolId)
		}

		market := fmt.Sprintf("%s/%d", pool.Denom, pool.PeriodDays)
		if seenMarkets[market] {
			return ErrInvalidGenesis.Wrapf("duplicate pool for market %s", market)
		}
		seenMarkets[market] = true
		pools[pool.Id] = pool
	}

	sumBalances := make(map[uint64]math.Int)
	sumTickets := make(map[uint64]math.Int)
	countByPool := make(map[uint64]uint64)
	seenEntries := make(map[string]bool)

	for _, entry := range gs.Balances {
		if err := entry.Validate(); err != nil {
			return err
		}
		pool, ok := pools[entry.PoolId]
		if !ok {
			return ErrInvalidGenesis.Wrapf("balance entry references unknown pool %d", entry.PoolId)
		}

		entryKey := fmt.Sprintf("%d/%s", entry.PoolId, entry.Address)
		if seenEntries[entryKey] {
			return ErrInvalidGenesis.Wrapf("duplicate balance entry for %s in pool %d", entry.Address, entry.PoolId)
		}
		seenEntries[entryKey] = true

		if !entry.Tickets.Equal(entry.Balance.MulRaw(int64(pool.PeriodDays))) {
			return ErrInvalidGenesis.Wrapf("pool %d depositor %s: tickets %s != balance %s x %d",
				entry.PoolId, entry.Address, entry.Tickets, entry.Balance, pool.PeriodDays)
		}

		if _, ok := sumBalances[entry.PoolId]; !ok {
			sumBalances[entry.PoolId] = math.ZeroInt()
			sumTickets[entry.PoolId] = math.ZeroInt()
		}
		sumBalances[entry.PoolId] = sumBalances[entry.PoolId].Add(entry.Balance)
		sumTickets[entry.PoolId] = sumTickets[entry.PoolId].Add(entry.Tickets)
		countByPool[entry.PoolId]++
	}

	for id, pool := range pools {
		sum, ok := sumBalances[id]
		if !ok {
			sum = math.ZeroInt()
		}
		if !pool.TotalDeposits.Equal(sum) {
			return ErrInvalidGenesis.Wrapf("pool %d: total_deposits %s != sum of balances %s", id, pool.TotalDeposits, sum)
		}
		tickets, ok := sumTickets[id]
		if !ok {
			tickets = math.ZeroInt()
		}
		if !pool.TotalTickets.Equal(tickets) {
			return ErrInvalidGenesis.Wrapf("pool %d: total_tickets %s != sum of tickets %s", id, pool.TotalTickets, tickets)
		}
		if pool.DepositorCount != countByPool[id] {
			return ErrInvalidGenesis.Wrapf("pool %d: depositor_count %d != balance entries %d", id, pool.DepositorCount, countByPool[id])
		}
	}

	seenDraws := make(map[uint64]bool)
	for _, ld := range gs.LastDraws {
		if _, ok := pools[ld.PoolId]; !ok {
			return ErrInvalidGenesis.Wrapf("last draw references unknown pool %d", ld.PoolId)
		}
		if seenDraws[ld.PoolId] {
			return ErrInvalidGenesis.Wrapf("duplicate last draw for pool %d", ld.PoolId)
		}
		seenDraws[ld.PoolId] = true
		if ld.Draw.Prize.IsNil() || ld.Draw.Prize.IsNegative() {
			return ErrInvalidGenesis.Wrapf("pool %d: last draw prize is nil or negative", ld.PoolId)
		}
		if _, err := sdk.AccAddressFromBech32(ld.Draw.Winner); err != nil {
			return ErrInvalidGenesis.Wrapf("pool %d: invalid last draw winner: %v", ld.PoolId, err)
		}
	}

	return nil
}
