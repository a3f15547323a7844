package types

import (
	"cosmossdk.io/math"
	yaml "gopkg.in/yaml.v2"
)

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		MinDeposit:           math.NewInt(1),
		MaxDepositorsPerPool: 10_000,
	}
}

// Params defines the prizepool module parameters. MaxDepositorsPerPool bounds
// the draw walk so execute_draw stays within a predictable gas envelope.
type Params struct {
	MinDeposit           math.Int `json:"min_deposit"`
	MaxDepositorsPerPool uint64   `json:"max_depositors_per_pool"`
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.MinDeposit.IsNil() || !p.MinDeposit.IsPositive() {
		return ErrInvalidParams.Wrap("min_deposit must be positive")
	}
	if p.MaxDepositorsPerPool == 0 {
		return ErrInvalidParams.Wrap("max_depositors_per_pool cannot be zero")
	}
	return nil
}

// String implements the Stringer interface
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
