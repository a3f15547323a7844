package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the expected interface for the bank keeper
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// LenderKeeper defines the expected interface of the external lending pool.
// Supply moves principal from the module account into the lender; Withdraw
// asks the lender to push funds back to the module account. The adapter never
// trusts the lender's bookkeeping: realized returns are measured as the
// module account's balance delta.
type LenderKeeper interface {
	Supply(ctx context.Context, lender sdk.AccAddress, from sdk.AccAddress, amount sdk.Coin) error
	Withdraw(ctx context.Context, lender sdk.AccAddress, to sdk.AccAddress, amount sdk.Coin) error
}
