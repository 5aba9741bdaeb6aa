package tokensale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cellmeshos/go-cellmesh/cellvm/core"
	"github.com/cellmeshos/go-cellmesh/common/types"
)

func TestArgsRoundTrip(t *testing.T) {
	args := Args{
		Owner:    types.CalcHash32([]byte("owner lock")),
		UnitCost: 5_000,
		SaleID:   77,
	}
	raw := args.Encode()
	require.Len(t, raw, ArgsSize)

	decoded, err := ParseArgs(raw)
	require.NoError(t, err)
	require.Equal(t, &args, decoded)
}

func TestParseArgsTrailingBytesIgnored(t *testing.T) {
	args := Args{Owner: types.CalcHash32([]byte("owner")), UnitCost: 1, SaleID: 2}
	raw := append(args.Encode(), 0xde, 0xad, 0xbe, 0xef)
	decoded, err := ParseArgs(raw)
	require.NoError(t, err)
	require.Equal(t, &args, decoded)
}

func TestParseArgsTooShort(t *testing.T) {
	for _, size := range []int{0, 31, 32, 40, ArgsSize - 1} {
		_, err := ParseArgs(make([]byte, size))
		require.ErrorIs(t, err, core.ErrArgsLen, "size %d", size)
	}
}

func TestParseArgsZeroCost(t *testing.T) {
	args := Args{Owner: types.CalcHash32([]byte("owner")), UnitCost: 0, SaleID: 3}
	_, err := ParseArgs(args.Encode())
	require.ErrorIs(t, err, core.ErrInvalidCost)
}

func FuzzParseArgs(f *testing.F) {
	f.Add((&Args{Owner: types.Hash32{1}, UnitCost: 100, SaleID: 1}).Encode())
	f.Add(make([]byte, ArgsSize))
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, raw []byte) {
		args, err := ParseArgs(raw)
		if err != nil {
			return
		}
		decoded, err := ParseArgs(args.Encode())
		require.NoError(t, err)
		require.Equal(t, args, decoded)
	})
}
