package keeper

import (
	"encoding/binary"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

// Store key aliases so keeper code reads without the types qualifier.
var (
	ParamsKey               = types.ParamsKey
	PoolKeyPrefix           = types.PoolKeyPrefix
	PoolCountKey            = types.PoolCountKey
	PoolByMarketKeyPrefix   = types.PoolByMarketKeyPrefix
	BalanceKeyPrefix        = types.BalanceKeyPrefix
	TicketsKeyPrefix        = types.TicketsKeyPrefix
	DepositorAtKeyPrefix    = types.DepositorAtKeyPrefix
	DepositorIndexKeyPrefix = types.DepositorIndexKeyPrefix
	LastDrawKeyPrefix       = types.LastDrawKeyPrefix
)

func uint64BE(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

func beUint64(bz []byte) uint64 {
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}
