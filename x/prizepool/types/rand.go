package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RandSource draws a 64-bit value for winner selection. The production source
// binds the draw to the executing block's entropy (header hash, height, time)
// mixed with the pool's draw nonce so successive draws sample independently.
// Tests substitute a seeded deterministic source.
type RandSource interface {
	Draw(ctx sdk.Context, poolID uint64, nonce uint64) uint64
}
