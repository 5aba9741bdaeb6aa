package types

import (
	"testing"

	"github.com/spacemeshos/go-scale/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcHash32(t *testing.T) {
	msg1 := []byte("cell one")
	msg2 := []byte("cell two")

	assert.NotEqual(t, CalcHash32(msg1), CalcHash32(msg2))
	assert.Equal(t, CalcHash32(msg1), CalcHash32(msg1))
	assert.NotEqual(t, EmptyHash32, CalcHash32(nil))
}

func TestHash32Hex(t *testing.T) {
	h := CalcHash32([]byte("roundtrip"))
	require.Equal(t, h, HexToHash32(h.Hex()))
	require.Equal(t, h.Hex(), h.String())
	require.Len(t, h.ShortString(), 10)
}

func TestHash32SetBytes(t *testing.T) {
	short := []byte{1, 2, 3}
	h := BytesToHash(short)
	require.Equal(t, byte(1), h[Hash32Length-3])
	require.Equal(t, byte(3), h[Hash32Length-1])

	long := make([]byte, Hash32Length+4)
	for i := range long {
		long[i] = byte(i)
	}
	h = BytesToHash(long)
	require.Equal(t, long[4:], h.Bytes())
}

func TestHash32Text(t *testing.T) {
	h := CalcHash32([]byte("text"))
	data, err := h.MarshalText()
	require.NoError(t, err)

	var decoded Hash32
	require.NoError(t, decoded.UnmarshalText(data))
	require.Equal(t, h, decoded)

	require.Error(t, decoded.UnmarshalText([]byte("0xzz")))
	require.Error(t, decoded.UnmarshalText([]byte("0xabcd")))
}

func FuzzHash32Consistency(f *testing.F) {
	tester.FuzzConsistency[Hash32](f)
}

func FuzzHash32Safety(f *testing.F) {
	tester.FuzzSafety[Hash32](f)
}
