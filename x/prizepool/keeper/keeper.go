package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// Keeper of the prizepool store
type Keeper struct {
	storeKey     storetypes.StoreKey
	cdc          *codec.LegacyAmino
	bankKeeper   types.BankKeeper
	lenderKeeper types.LenderKeeper
	authority    string
	randSource   types.RandSource

	moduleAddressCache sdk.AccAddress // Cached module address to avoid repeated allocations
}

// kvStoreProvider is an interface for types that can provide a KVStore.
// This allows getStore() to work with both sdk.Context and direct store providers.
type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new prizepool Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	lenderKeeper types.LenderKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:           key,
		cdc:                cdc,
		bankKeeper:         bankKeeper,
		lenderKeeper:       lenderKeeper,
		authority:          authority,
		randSource:         blockRandSource{},
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// getStore returns the KVStore for the prizepool module.
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}

// GetStoreKey returns the store key for testing purposes
func (k Keeper) GetStoreKey() storetypes.StoreKey {
	return k.storeKey
}

// GetAuthority returns the module authority
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the module account address holding custody of all
// pool funds.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// BankKeeper returns the underlying bank keeper so tests can inspect balances.
func (k Keeper) BankKeeper() types.BankKeeper {
	return k.bankKeeper
}

// SetRandSource overrides the draw randomness source for testing.
func (k *Keeper) SetRandSource(src types.RandSource) {
	k.randSource = src
}
