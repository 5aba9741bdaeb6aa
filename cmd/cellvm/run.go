package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/cellmeshos/go-cellmesh/cellvm"
	"github.com/cellmeshos/go-cellmesh/cellvm/core"
	"github.com/cellmeshos/go-cellmesh/codec"
	"github.com/cellmeshos/go-cellmesh/common/types"
)

// loadTx reads and decodes a scale encoded transaction file.
func loadTx(fs afero.Fs, path string) (*types.Transaction, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var tx types.Transaction
	if err := codec.Decode(raw, &tx); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &tx, nil
}

func runVerify(fs afero.Fs, w io.Writer, logger *zap.Logger, path string, ceiling uint64) error {
	tx, err := loadTx(fs, path)
	if err != nil {
		return err
	}
	vm := cellvm.New(cellvm.WithLogger(logger), cellvm.WithMaxCycles(ceiling))
	cycles, err := vm.Verify(tx)
	if err != nil {
		if code, ok := core.ExitCode(err); ok {
			fmt.Fprintf(w, "rejected tx=%s code=%d (%s) cycles=%d\n", tx.ID(), code, code, cycles)
		}
		return err
	}
	fmt.Fprintf(w, "accepted tx=%s cycles=%d\n", tx.ID(), cycles)
	return nil
}

func runInspect(fs afero.Fs, w io.Writer, logger *zap.Logger, path string) error {
	tx, err := loadTx(fs, path)
	if err != nil {
		return err
	}
	vm := cellvm.New(cellvm.WithLogger(logger))
	groups, err := vm.Inspect(tx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "tx=%s inputs=%d outputs=%d groups=%d\n",
		tx.ID(), len(tx.Inputs), len(tx.Outputs), len(groups))
	for i, group := range groups {
		fmt.Fprintf(w, "group %d: kind=%s code=%s script=%s inputs=%v outputs=%v\n",
			i, group.Kind, group.CodeHash.ShortString(), group.ScriptHash.ShortString(),
			group.Inputs, group.Outputs)
	}
	return nil
}
