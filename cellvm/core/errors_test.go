package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// The numeric values are the external contract. They never change.
func TestCodeValues(t *testing.T) {
	require.EqualValues(t, 1, CodeIndexOutOfBound)
	require.EqualValues(t, 2, CodeItemMissing)
	require.EqualValues(t, 3, CodeLengthNotEnough)
	require.EqualValues(t, 4, CodeEncoding)
	require.EqualValues(t, 100, CodeArgsLen)
	require.EqualValues(t, 101, CodeAmountCkbytes)
	require.EqualValues(t, 102, CodeAmountSudt)
	require.EqualValues(t, 103, CodeExchangeRate)
	require.EqualValues(t, 104, CodeInvalidCost)
	require.EqualValues(t, 105, CodeInvalidStructure)
	require.EqualValues(t, 106, CodeInvalidSignature)
}

func TestErrorIsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("lock group deadbeef: %w", ErrAmountSudt)
	require.ErrorIs(t, wrapped, ErrAmountSudt)
	require.NotErrorIs(t, wrapped, ErrAmountCkbytes)

	detailed := &Error{Code: CodeAmountSudt, Msg: "5 tokens created from 4"}
	require.ErrorIs(t, detailed, ErrAmountSudt)
}

func TestExitCode(t *testing.T) {
	code, ok := ExitCode(fmt.Errorf("lock group: %w", ErrExchangeRate))
	require.True(t, ok)
	require.Equal(t, CodeExchangeRate, code)

	_, ok = ExitCode(nil)
	require.False(t, ok)
	_, ok = ExitCode(ErrCyclesExceeded)
	require.False(t, ok)
	_, ok = ExitCode(fmt.Errorf("%w: guard defect", ErrInternal))
	require.False(t, ok)
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "invalid structure", CodeInvalidStructure.String())
	require.Equal(t, "index out of bound", CodeIndexOutOfBound.String())
	require.Equal(t, "code 42", Code(42).String())
}
