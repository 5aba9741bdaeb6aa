package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cellmeshos/go-cellmesh/cellvm/core"
	"github.com/cellmeshos/go-cellmesh/cellvm/sdk"
	"github.com/cellmeshos/go-cellmesh/codec"
	"github.com/cellmeshos/go-cellmesh/common/types"
)

func writeTx(tb testing.TB, fs afero.Fs, path string, tx *types.Transaction) {
	tb.Helper()
	require.NoError(tb, afero.WriteFile(fs, path, codec.MustEncode(tx), 0o644))
}

// buyTx purchases one token from a sale at unit cost 100.
func buyTx(tb testing.TB) *types.Transaction {
	tb.Helper()
	owner := sdk.AlwaysSuccessScript(1)
	buyer := sdk.AlwaysSuccessScript(2)
	token := sdk.TokenScript(types.Hash32{})
	sale := sdk.SaleScript(owner.Hash(), 100, 1)
	return sdk.NewTx().
		AddInput(sdk.CapacityCell(1_000, buyer)).
		AddInput(sdk.SaleCell(1_000, sale, token, 100)).
		AddOutput(sdk.CapacityCell(800, buyer)).
		AddOutput(sdk.SaleCell(1_100, sale, token, 99)).
		AddOutput(sdk.TokenCell(100, buyer, token, 1)).
		Build()
}

func TestRunVerifyAccepted(t *testing.T) {
	fs := afero.NewMemMapFs()
	tx := buyTx(t)
	writeTx(t, fs, "tx.bin", tx)

	var out bytes.Buffer
	err := runVerify(fs, &out, zaptest.NewLogger(t), "tx.bin", core.DefaultMaxCycles)
	require.NoError(t, err)
	require.Contains(t, out.String(), fmt.Sprintf("accepted tx=%s cycles=", tx.ID()))
}

func TestRunVerifyRejected(t *testing.T) {
	fs := afero.NewMemMapFs()
	owner := sdk.AlwaysSuccessScript(1)
	token := sdk.TokenScript(types.Hash32{})
	sale := sdk.SaleScript(owner.Hash(), 100, 1)
	tx := sdk.NewTx().
		AddInput(sdk.SaleCell(1_000, sale, token, 1_000)).
		AddOutput(sdk.SaleCell(1_000, sale, token, 1_000)).
		Build()
	writeTx(t, fs, "tx.bin", tx)

	var out bytes.Buffer
	err := runVerify(fs, &out, zaptest.NewLogger(t), "tx.bin", core.DefaultMaxCycles)
	require.ErrorIs(t, err, core.ErrAmountCkbytes)
	require.Contains(t, out.String(), fmt.Sprintf("rejected tx=%s code=101 (capacity amount) cycles=", tx.ID()))
}

func TestRunVerifyCycleLimit(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeTx(t, fs, "tx.bin", buyTx(t))

	var out bytes.Buffer
	err := runVerify(fs, &out, zaptest.NewLogger(t), "tx.bin", 1)
	require.ErrorIs(t, err, core.ErrCyclesExceeded)
	require.Empty(t, out.String(), "engine faults have no status code to report")
}

func TestRunVerifyLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer

	err := runVerify(fs, &out, zaptest.NewLogger(t), "missing.bin", core.DefaultMaxCycles)
	require.ErrorContains(t, err, "read missing.bin")

	require.NoError(t, afero.WriteFile(fs, "garbage.bin", []byte{0xff, 0xff, 0xff}, 0o644))
	err = runVerify(fs, &out, zaptest.NewLogger(t), "garbage.bin", core.DefaultMaxCycles)
	require.ErrorContains(t, err, "decode garbage.bin")
	require.Empty(t, out.String())
}

func TestRunInspect(t *testing.T) {
	fs := afero.NewMemMapFs()
	tx := buyTx(t)
	writeTx(t, fs, "tx.bin", tx)

	var out bytes.Buffer
	require.NoError(t, runInspect(fs, &out, zaptest.NewLogger(t), "tx.bin"))
	require.Contains(t, out.String(), fmt.Sprintf("tx=%s inputs=2 outputs=3 groups=3\n", tx.ID()))
	require.Contains(t, out.String(), "group 0: kind=lock")
	require.Contains(t, out.String(), "group 2: kind=type")
}
