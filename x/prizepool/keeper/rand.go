package keeper

import (
	"crypto/sha256"
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// blockRandSource derives draw randomness from the executing block's entropy
// mixed with the pool's draw nonce. The header hash is committed by consensus
// before the draw transaction is ordered, so the admin triggering the draw
// cannot steer the outcome; the nonce makes successive draws in one block
// sample independently.
type blockRandSource struct{}

func (blockRandSource) Draw(ctx sdk.Context, poolID uint64, nonce uint64) uint64 {
	hasher := sha256.New()
	hasher.Write(ctx.HeaderHash())

	heightBz := make([]byte, 8)
	binary.BigEndian.PutUint64(heightBz, uint64(ctx.BlockHeight()))
	hasher.Write(heightBz)

	timeBz := make([]byte, 8)
	binary.BigEndian.PutUint64(timeBz, uint64(ctx.BlockTime().UnixNano()))
	hasher.Write(timeBz)

	poolBz := make([]byte, 8)
	binary.BigEndian.PutUint64(poolBz, poolID)
	hasher.Write(poolBz)

	nonceBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nonceBz, nonce)
	hasher.Write(nonceBz)

	sum := hasher.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}
