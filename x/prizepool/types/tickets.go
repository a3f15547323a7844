package types

import (
	"cosmossdk.io/math"
)

// TicketsFor returns the ticket weight issued for locking amount base units
// over a period: amount x period_days. Both operands are integers so the
// result is always an exact integer; no fractional tickets exist anywhere.
// math.Int carries the product without overflow for the full 128-bit
// base-unit domain.
func TicketsFor(amount math.Int, periodDays uint32) math.Int {
	return amount.MulRaw(int64(periodDays))
}
