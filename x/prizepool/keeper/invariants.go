package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// RegisterInvariants registers all prizepool invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "conservation", ConservationInvariant(k))
	ir.RegisterRoute(types.ModuleName, "ticket-linearity", TicketLinearityInvariant(k))
	ir.RegisterRoute(types.ModuleName, "depositor-list", DepositorListInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-account-balance", ModuleAccountBalanceInvariant(k))
}

// AllInvariants runs all invariants of the prizepool module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ConservationInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = TicketLinearityInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = DepositorListInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ModuleAccountBalanceInvariant(k)(ctx)
	}
}

// ConservationInvariant checks that per-pool balance sums match the recorded
// totals: sum of balances = TotalDeposits and sum of tickets = TotalTickets.
func ConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "conservation", err.Error()), true
		}

		for i := range pools {
			pool := pools[i]
			sumBalances := math.ZeroInt()
			sumTickets := math.ZeroInt()

			k.IterateDepositors(ctx, &pool, func(_ uint64, addr sdk.AccAddress) bool {
				sumBalances = sumBalances.Add(k.GetBalance(ctx, pool.Id, addr))
				sumTickets = sumTickets.Add(k.GetTickets(ctx, pool.Id, addr))
				return false
			})

			if !sumBalances.Equal(pool.TotalDeposits) {
				count++
				msg += fmt.Sprintf("pool %d: sum of balances %s != total_deposits %s\n",
					pool.Id, sumBalances, pool.TotalDeposits)
			}
			if !sumTickets.Equal(pool.TotalTickets) {
				count++
				msg += fmt.Sprintf("pool %d: sum of tickets %s != total_tickets %s\n",
					pool.Id, sumTickets, pool.TotalTickets)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "conservation",
			fmt.Sprintf("found %d conservation violations\n%s", count, msg),
		), broken
	}
}

// TicketLinearityInvariant checks tickets = balance x period_days for every
// depositor and for the pool totals.
func TicketLinearityInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "ticket-linearity", err.Error()), true
		}

		for i := range pools {
			pool := pools[i]

			if !pool.TotalTickets.Equal(types.TicketsFor(pool.TotalDeposits, pool.PeriodDays)) {
				count++
				msg += fmt.Sprintf("pool %d: total_tickets %s != total_deposits %s x %d\n",
					pool.Id, pool.TotalTickets, pool.TotalDeposits, pool.PeriodDays)
			}

			k.IterateDepositors(ctx, &pool, func(_ uint64, addr sdk.AccAddress) bool {
				balance := k.GetBalance(ctx, pool.Id, addr)
				tickets := k.GetTickets(ctx, pool.Id, addr)
				if !tickets.Equal(types.TicketsFor(balance, pool.PeriodDays)) {
					count++
					msg += fmt.Sprintf("pool %d depositor %s: tickets %s != balance %s x %d\n",
						pool.Id, addr, tickets, balance, pool.PeriodDays)
				}
				return false
			})
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "ticket-linearity",
			fmt.Sprintf("found %d linearity violations\n%s", count, msg),
		), broken
	}
}

// DepositorListInvariant checks that the draw list contains exactly the
// addresses with positive balances, with consistent slot indexes.
func DepositorListInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "depositor-list", err.Error()), true
		}

		for i := range pools {
			pool := pools[i]
			seen := make(map[string]bool)

			k.IterateDepositors(ctx, &pool, func(slot uint64, addr sdk.AccAddress) bool {
				if seen[addr.String()] {
					count++
					msg += fmt.Sprintf("pool %d: duplicate list entry %s\n", pool.Id, addr)
				}
				seen[addr.String()] = true

				if !k.GetBalance(ctx, pool.Id, addr).IsPositive() {
					count++
					msg += fmt.Sprintf("pool %d: listed depositor %s has zero balance\n", pool.Id, addr)
				}

				idx, ok := k.depositorSlot(ctx, pool.Id, addr)
				if !ok || idx != slot {
					count++
					msg += fmt.Sprintf("pool %d: slot index mismatch for %s (slot %d)\n", pool.Id, addr, slot)
				}
				return false
			})

			// Every stored balance entry must belong to a listed depositor.
			balancePrefix := types.GetBalancePoolPrefix(pool.Id)
			iter := storetypes.KVStorePrefixIterator(k.getStore(ctx), balancePrefix)
			for ; iter.Valid(); iter.Next() {
				addr := sdk.AccAddress(iter.Key()[len(balancePrefix):])
				if !seen[addr.String()] {
					count++
					msg += fmt.Sprintf("pool %d: depositor %s has a balance but is not listed\n", pool.Id, addr)
				}
			}
			iter.Close()
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "depositor-list",
			fmt.Sprintf("found %d depositor list violations\n%s", count, msg),
		), broken
	}
}

// ModuleAccountBalanceInvariant checks that the module account holds at least
// the undeployed principal plus prize fund of every pool, per denom.
func ModuleAccountBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-account-balance", err.Error()), true
		}

		required := make(map[string]math.Int)
		for _, pool := range pools {
			owed := pool.TotalDeposits.Sub(pool.SuppliedToLender).Add(pool.PrizeFund)
			if cur, ok := required[pool.Denom]; ok {
				required[pool.Denom] = cur.Add(owed)
			} else {
				required[pool.Denom] = owed
			}
		}

		for denom, owed := range required {
			held := k.moduleBalance(ctx, denom)
			if held.LT(owed) {
				count++
				msg += fmt.Sprintf("module balance for %s (%s) < required custody (%s)\n", denom, held, owed)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "module-account-balance",
			fmt.Sprintf("found %d custody shortfalls\n%s", count, msg),
		), broken
	}
}
