package types

import (
	"cosmossdk.io/errors"
)

// Prizepool module sentinel errors
var (
	ErrAlreadyInitialized  = errors.Register(ModuleName, 1, "pool already initialized")
	ErrNotInitialized      = errors.Register(ModuleName, 2, "pool not initialized")
	ErrBadPeriod           = errors.Register(ModuleName, 3, "invalid lock period")
	ErrZeroAmount          = errors.Register(ModuleName, 4, "amount must be positive")
	ErrInsufficientBalance = errors.Register(ModuleName, 5, "insufficient deposited balance")
	ErrNoParticipants      = errors.Register(ModuleName, 6, "pool has no participants")
	ErrNoTickets           = errors.Register(ModuleName, 7, "pool has no tickets")
	ErrNoPrize             = errors.Register(ModuleName, 8, "prize fund is empty")
	ErrLenderPoolLocked    = errors.Register(ModuleName, 9, "lender pool cannot change while principal is supplied")
	ErrLenderNotSet        = errors.Register(ModuleName, 10, "lender pool not set")
	ErrTokenTransferFailed = errors.Register(ModuleName, 11, "token transfer failed")
	ErrLenderRejected      = errors.Register(ModuleName, 12, "lender rejected the request")
	ErrSlippageExceeded    = errors.Register(ModuleName, 13, "realized return below minimum")
	ErrInvalidAddress      = errors.Register(ModuleName, 14, "invalid address")
	ErrInvalidDenom        = errors.Register(ModuleName, 15, "invalid token denomination")
	ErrUnauthorized        = errors.Register(ModuleName, 16, "unauthorized")
	ErrInvalidParams       = errors.Register(ModuleName, 17, "invalid parameters")
	ErrInvalidGenesis      = errors.Register(ModuleName, 18, "invalid genesis state")
	ErrTooManyDepositors   = errors.Register(ModuleName, 19, "depositor limit reached")
)
