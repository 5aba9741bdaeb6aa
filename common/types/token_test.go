package types_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/cellmeshos/go-cellmesh/common/types"
)

func TestTokenAmount(t *testing.T) {
	amount, ok := types.TokenAmount(types.TokenData(uint256.NewInt(12345)))
	require.True(t, ok)
	require.True(t, amount.Eq(uint256.NewInt(12345)))

	_, ok = types.TokenAmount(nil)
	require.False(t, ok)
	_, ok = types.TokenAmount([]byte{1, 2, 3})
	require.False(t, ok)
	_, ok = types.TokenAmount(make([]byte, types.TokenDataSize+1))
	require.False(t, ok)
}

func TestTokenAmountFull128Bits(t *testing.T) {
	data := make([]byte, types.TokenDataSize)
	for i := range data {
		data[i] = 0xff
	}
	amount, ok := types.TokenAmount(data)
	require.True(t, ok)
	require.Equal(t, 128, amount.BitLen())
	require.Equal(t, data, types.TokenData(amount))
}

func TestTokenDataOverflow(t *testing.T) {
	over := &uint256.Int{0, 0, 1, 0}
	require.Panics(t, func() { types.TokenData(over) })
}
