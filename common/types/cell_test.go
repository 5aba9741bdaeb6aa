package types_test

import (
	"testing"

	"github.com/spacemeshos/go-scale/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellmeshos/go-cellmesh/codec"
	"github.com/cellmeshos/go-cellmesh/common/types"
)

func TestScriptHash(t *testing.T) {
	base := types.Script{CodeHash: types.CalcHash32([]byte("guard")), Args: []byte{1, 2, 3}}
	require.Equal(t, types.CalcHash32(base.Bytes()), base.Hash())

	otherArgs := types.Script{CodeHash: base.CodeHash, Args: []byte{1, 2, 4}}
	assert.NotEqual(t, base.Hash(), otherArgs.Hash())

	otherCode := types.Script{CodeHash: types.CalcHash32([]byte("other")), Args: []byte{1, 2, 3}}
	assert.NotEqual(t, base.Hash(), otherCode.Hash())
}

func TestScriptEqual(t *testing.T) {
	base := types.Script{CodeHash: types.CalcHash32([]byte("guard")), Args: []byte{1, 2, 3}}
	same := types.Script{CodeHash: base.CodeHash, Args: []byte{1, 2, 3}}
	require.True(t, base.Equal(&same))
	require.False(t, base.Equal(nil))

	noArgs := types.Script{CodeHash: base.CodeHash}
	emptyArgs := types.Script{CodeHash: base.CodeHash, Args: []byte{}}
	require.True(t, noArgs.Equal(&emptyArgs))
	require.False(t, base.Equal(&noArgs))
}

func TestScriptArgsLimit(t *testing.T) {
	oversized := types.Script{Args: make([]byte, types.MaxScriptArgs+1)}
	_, err := codec.Encode(&oversized)
	require.Error(t, err)
}

func TestCellOutputCodec(t *testing.T) {
	withType := types.CellOutput{
		Capacity: 1_000,
		Lock:     types.Script{CodeHash: types.CalcHash32([]byte("lock")), Args: []byte{7}},
		Type:     &types.Script{CodeHash: types.CalcHash32([]byte("type")), Args: []byte{8, 9}},
	}
	data, err := codec.Encode(&withType)
	require.NoError(t, err)
	var decoded types.CellOutput
	require.NoError(t, codec.Decode(data, &decoded))
	require.Equal(t, withType, decoded)

	withoutType := types.CellOutput{Capacity: 42, Lock: withType.Lock}
	data, err = codec.Encode(&withoutType)
	require.NoError(t, err)
	decoded = types.CellOutput{}
	require.NoError(t, codec.Decode(data, &decoded))
	require.Nil(t, decoded.Type)
	require.Equal(t, withoutType, decoded)
}

func TestCellOutputBadPresenceByte(t *testing.T) {
	output := types.CellOutput{
		Capacity: 42,
		Lock:     types.Script{CodeHash: types.CalcHash32([]byte("lock")), Args: []byte{7}},
	}
	data, err := codec.Encode(&output)
	require.NoError(t, err)

	// the presence flag of the absent type script is the last byte
	data[len(data)-1] = 2
	var decoded types.CellOutput
	require.ErrorContains(t, codec.Decode(data, &decoded), "presence byte")
}

func TestCellCodec(t *testing.T) {
	cell := types.Cell{
		Output: types.CellOutput{
			Capacity: 500,
			Lock:     types.Script{CodeHash: types.CalcHash32([]byte("lock")), Args: []byte{1}},
			Type:     &types.Script{CodeHash: types.CalcHash32([]byte("type")), Args: []byte{2}},
		},
		Data: []byte{100, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	data, err := codec.Encode(&cell)
	require.NoError(t, err)
	var decoded types.Cell
	require.NoError(t, codec.Decode(data, &decoded))
	require.Equal(t, cell, decoded)
}

func FuzzScriptConsistency(f *testing.F) {
	tester.FuzzConsistency[types.Script](f)
}

func FuzzScriptSafety(f *testing.F) {
	tester.FuzzSafety[types.Script](f)
}

func FuzzCellOutputConsistency(f *testing.F) {
	tester.FuzzConsistency[types.CellOutput](f)
}

func FuzzCellOutputSafety(f *testing.F) {
	tester.FuzzSafety[types.CellOutput](f)
}

func FuzzCellConsistency(f *testing.F) {
	tester.FuzzConsistency[types.Cell](f)
}

func FuzzCellSafety(f *testing.F) {
	tester.FuzzSafety[types.Cell](f)
}
