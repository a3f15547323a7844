package types

// Event types for the prizepool module
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypePoolCreated     = "prizepool_created"
	EventTypeDeposited       = "prizepool_deposited"
	EventTypeWithdrew        = "prizepool_withdrew"
	EventTypeLenderSet       = "prizepool_lender_set"
	EventTypeSupplied        = "prizepool_supplied"
	EventTypeLenderWithdrawn = "prizepool_lender_withdrawn"
	EventTypeHarvested       = "prizepool_harvested"
	EventTypeDrawExecuted    = "prizepool_draw_executed"
)

// Event attribute keys for the prizepool module
const (
	AttributeKeyPoolID     = "pool_id"
	AttributeKeyAdmin      = "admin"
	AttributeKeyDenom      = "denom"
	AttributeKeyPeriodDays = "period_days"
	AttributeKeyDepositor  = "depositor"
	AttributeKeyAmount     = "amount"
	AttributeKeyTickets    = "tickets"
	AttributeKeyLenderPool = "lender_pool"
	AttributeKeyActual     = "actual"
	AttributeKeyMinReturn  = "min_return"
	AttributeKeyWinner     = "winner"
	AttributeKeyPrize      = "prize"
	AttributeKeyDrawNonce  = "draw_nonce"
)
