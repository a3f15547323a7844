package types

import (
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "prizepool"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

const (
	// MinPeriodDays is the smallest allowed lock period
	MinPeriodDays = uint32(1)

	// MaxPeriodDays is the largest allowed lock period
	MaxPeriodDays = uint32(365)
)

// CanonicalPeriods are the pool periods the protocol deploys by default.
var CanonicalPeriods = []uint32{7, 15, 30}

// Pool is the persistent record of one prize-savings pool instance. A pool
// locks a single denom for a fixed period; tickets weigh the draw by
// amount x period_days.
type Pool struct {
	Id               uint64   `json:"id"`
	Admin            string   `json:"admin"`
	Denom            string   `json:"denom"`
	PeriodDays       uint32   `json:"period_days"`
	TotalDeposits    math.Int `json:"total_deposits"`
	TotalTickets     math.Int `json:"total_tickets"`
	PrizeFund        math.Int `json:"prize_fund"`
	LenderPool       string   `json:"lender_pool,omitempty"`
	SuppliedToLender math.Int `json:"supplied_to_lender"`
	DrawNonce        uint64   `json:"draw_nonce"`
	DepositorCount   uint64   `json:"depositor_count"`
}

// Validate checks the internal consistency of a pool record.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidGenesis.Wrap("pool id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(p.Admin); err != nil {
		return ErrInvalidAddress.Wrapf("invalid pool admin: %v", err)
	}
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return ErrInvalidDenom.Wrapf("invalid pool denom: %v", err)
	}
	if p.PeriodDays < MinPeriodDays || p.PeriodDays > MaxPeriodDays {
		return ErrBadPeriod.Wrapf("period_days %d outside [%d, %d]", p.PeriodDays, MinPeriodDays, MaxPeriodDays)
	}
	if p.LenderPool != "" {
		if _, err := sdk.AccAddressFromBech32(p.LenderPool); err != nil {
			return ErrInvalidAddress.Wrapf("invalid lender pool: %v", err)
		}
	}
	for name, amt := range map[string]math.Int{
		"total_deposits":     p.TotalDeposits,
		"total_tickets":      p.TotalTickets,
		"prize_fund":         p.PrizeFund,
		"supplied_to_lender": p.SuppliedToLender,
	} {
		if amt.IsNil() || amt.IsNegative() {
			return ErrInvalidGenesis.Wrapf("pool %d: %s is nil or negative", p.Id, name)
		}
	}
	if !p.TotalTickets.Equal(p.TotalDeposits.MulRaw(int64(p.PeriodDays))) {
		return ErrInvalidGenesis.Wrapf("pool %d: total_tickets %s != total_deposits %s x %d",
			p.Id, p.TotalTickets, p.TotalDeposits, p.PeriodDays)
	}
	return nil
}

// HasLender reports whether a lender pool has been configured.
func (p Pool) HasLender() bool {
	return p.LenderPool != ""
}

// LastDraw records the outcome of the most recent successful draw of a pool.
type LastDraw struct {
	Timestamp time.Time `json:"timestamp"`
	Winner    string    `json:"winner"`
	Prize     math.Int  `json:"prize"`
	Nonce     uint64    `json:"nonce"`
}

// DepositorBalance pairs a depositor address with its principal and tickets.
// Used by genesis state and the Depositors query.
type DepositorBalance struct {
	PoolId  uint64   `json:"pool_id"`
	Address string   `json:"address"`
	Balance math.Int `json:"balance"`
	Tickets math.Int `json:"tickets"`
}

// Validate checks a single depositor balance entry.
func (d DepositorBalance) Validate() error {
	if d.PoolId == 0 {
		return ErrInvalidGenesis.Wrap("balance entry: pool id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(d.Address); err != nil {
		return ErrInvalidAddress.Wrapf("invalid depositor address: %v", err)
	}
	if d.Balance.IsNil() || !d.Balance.IsPositive() {
		return ErrInvalidGenesis.Wrapf("balance entry for %s: balance must be positive", d.Address)
	}
	if d.Tickets.IsNil() || !d.Tickets.IsPositive() {
		return ErrInvalidGenesis.Wrapf("balance entry for %s: tickets must be positive", d.Address)
	}
	return nil
}
