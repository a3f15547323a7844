package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

// DefaultAuthority returns the default module authority (governance module address string)
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

var (
	// ModuleNamespace is the namespace byte for the prizepool module (0x07)
	ModuleNamespace = byte(0x07)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x07, 0x01}

	// PoolKeyPrefix is the prefix for pool store keys
	PoolKeyPrefix = []byte{0x07, 0x02}

	// PoolCountKey is the key for the next pool ID counter
	PoolCountKey = []byte{0x07, 0x03}

	// PoolByMarketKeyPrefix indexes pools by (denom, period_days)
	PoolByMarketKeyPrefix = []byte{0x07, 0x04}

	// BalanceKeyPrefix is the prefix for per-depositor principal
	BalanceKeyPrefix = []byte{0x07, 0x05}

	// TicketsKeyPrefix is the prefix for per-depositor ticket weight
	TicketsKeyPrefix = []byte{0x07, 0x06}

	// DepositorAtKeyPrefix maps (pool, slot) -> depositor address
	DepositorAtKeyPrefix = []byte{0x07, 0x07}

	// DepositorIndexKeyPrefix maps (pool, depositor) -> slot
	DepositorIndexKeyPrefix = []byte{0x07, 0x08}

	// LastDrawKeyPrefix is the prefix for per-pool last draw records
	LastDrawKeyPrefix = []byte{0x07, 0x09}
)

func uint64Bytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

// GetPoolKey returns the store key for a pool record
func GetPoolKey(poolID uint64) []byte {
	return append(PoolKeyPrefix, uint64Bytes(poolID)...)
}

// GetPoolByMarketKey returns the store key indexing a pool by its denom and period
func GetPoolByMarketKey(denom string, periodDays uint32) []byte {
	periodBz := make([]byte, 4)
	binary.BigEndian.PutUint32(periodBz, periodDays)
	key := append(PoolByMarketKeyPrefix, periodBz...)
	return append(key, []byte(denom)...)
}

// GetBalanceKey returns the store key for a depositor's principal in a pool
func GetBalanceKey(poolID uint64, depositor sdk.AccAddress) []byte {
	key := append(BalanceKeyPrefix, uint64Bytes(poolID)...)
	return append(key, depositor.Bytes()...)
}

// GetBalancePoolPrefix returns the prefix covering all balances of one pool
func GetBalancePoolPrefix(poolID uint64) []byte {
	return append(BalanceKeyPrefix, uint64Bytes(poolID)...)
}

// GetTicketsKey returns the store key for a depositor's tickets in a pool
func GetTicketsKey(poolID uint64, depositor sdk.AccAddress) []byte {
	key := append(TicketsKeyPrefix, uint64Bytes(poolID)...)
	return append(key, depositor.Bytes()...)
}

// GetTicketsPoolPrefix returns the prefix covering all tickets of one pool
func GetTicketsPoolPrefix(poolID uint64) []byte {
	return append(TicketsKeyPrefix, uint64Bytes(poolID)...)
}

// GetDepositorAtKey returns the store key for the depositor stored at a slot
func GetDepositorAtKey(poolID, slot uint64) []byte {
	key := append(DepositorAtKeyPrefix, uint64Bytes(poolID)...)
	return append(key, uint64Bytes(slot)...)
}

// GetDepositorAtPoolPrefix returns the prefix covering a pool's depositor slots
func GetDepositorAtPoolPrefix(poolID uint64) []byte {
	return append(DepositorAtKeyPrefix, uint64Bytes(poolID)...)
}

// GetDepositorIndexKey returns the store key for a depositor's slot index
func GetDepositorIndexKey(poolID uint64, depositor sdk.AccAddress) []byte {
	key := append(DepositorIndexKeyPrefix, uint64Bytes(poolID)...)
	return append(key, depositor.Bytes()...)
}

// GetLastDrawKey returns the store key for a pool's last draw record
func GetLastDrawKey(poolID uint64) []byte {
	return append(LastDrawKeyPrefix, uint64Bytes(poolID)...)
}
