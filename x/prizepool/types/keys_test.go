package types_test

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/prizesavings/x/prizepool/types"
)

func TestKeyPrefixesAreDistinct(t *testing.T) {
	prefixes := [][]byte{
		types.ParamsKey,
		types.PoolKeyPrefix,
		types.PoolCountKey,
		types.PoolByMarketKeyPrefix,
		types.BalanceKeyPrefix,
		types.TicketsKeyPrefix,
		types.DepositorAtKeyPrefix,
		types.DepositorIndexKeyPrefix,
		types.LastDrawKeyPrefix,
	}

	for i := range prefixes {
		require.Equal(t, types.ModuleNamespace, prefixes[i][0], "prefix %d outside module namespace", i)
		for j := i + 1; j < len(prefixes); j++ {
			require.False(t, bytes.Equal(prefixes[i], prefixes[j]), "prefix %d == prefix %d", i, j)
		}
	}
}

func TestKeysEncodePoolAndAddress(t *testing.T) {
	addrA := sdk.AccAddress([]byte("address_a___________"))
	addrB := sdk.AccAddress([]byte("address_b___________"))

	require.NotEqual(t, types.GetBalanceKey(1, addrA), types.GetBalanceKey(1, addrB))
	require.NotEqual(t, types.GetBalanceKey(1, addrA), types.GetBalanceKey(2, addrA))
	require.NotEqual(t, types.GetBalanceKey(1, addrA), types.GetTicketsKey(1, addrA))

	require.True(t, bytes.HasPrefix(types.GetBalanceKey(7, addrA), types.GetBalancePoolPrefix(7)))
	require.True(t, bytes.HasPrefix(types.GetTicketsKey(7, addrA), types.GetTicketsPoolPrefix(7)))
	require.True(t, bytes.HasPrefix(types.GetDepositorAtKey(7, 3), types.GetDepositorAtPoolPrefix(7)))

	require.NotEqual(t, types.GetDepositorAtKey(1, 0), types.GetDepositorAtKey(1, 1))
	require.NotEqual(t, types.GetPoolKey(1), types.GetPoolKey(2))
	require.NotEqual(t, types.GetLastDrawKey(1), types.GetLastDrawKey(2))
}

func TestPoolByMarketKeySeparatesMarkets(t *testing.T) {
	require.NotEqual(t, types.GetPoolByMarketKey("upaw", 7), types.GetPoolByMarketKey("upaw", 15))
	require.NotEqual(t, types.GetPoolByMarketKey("upaw", 7), types.GetPoolByMarketKey("uusdt", 7))
}
