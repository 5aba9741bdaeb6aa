package core

import (
	"fmt"

	"github.com/cellmeshos/go-cellmesh/common/types"
	"github.com/cellmeshos/go-cellmesh/hash"
)

// SideView holds the canonical script bytes and lock digests of one side of
// a transaction, indexed like its cells. Type entries are nil for cells
// without a type script.
type SideView struct {
	Locks      [][]byte
	Types      [][]byte
	LockHashes []Hash32
}

// TxView is the frozen, preserialized view of one transaction. It is built
// once and shared by the contexts of all script groups, so scripts are
// serialized and hashed exactly once per transaction.
type TxView struct {
	Tx      *types.Transaction
	Hash    Hash32
	Inputs  SideView
	Outputs SideView
}

// NewTxView preserializes tx. hashFn computes script digests from canonical
// script bytes and may memoize; nil hashes directly.
func NewTxView(tx *types.Transaction, hashFn func([]byte) Hash32) *TxView {
	if hashFn == nil {
		hashFn = func(raw []byte) Hash32 { return hash.Sum(raw) }
	}
	view := &TxView{
		Tx:      tx,
		Hash:    tx.ID().Hash32(),
		Inputs:  newSideView(tx.Inputs, hashFn),
		Outputs: newSideView(tx.Outputs, hashFn),
	}
	return view
}

func newSideView(cells []types.Cell, hashFn func([]byte) Hash32) SideView {
	side := SideView{
		Locks:      make([][]byte, len(cells)),
		Types:      make([][]byte, len(cells)),
		LockHashes: make([]Hash32, len(cells)),
	}
	for i := range cells {
		output := &cells[i].Output
		raw := output.Lock.Bytes()
		side.Locks[i] = raw
		side.LockHashes[i] = hashFn(raw)
		if output.Type != nil {
			side.Types[i] = output.Type.Bytes()
		}
	}
	return side
}

// Context implements Host for one script group over a frozen TxView.
type Context struct {
	view *TxView
	args []byte
	// absolute cell indices of the group, ascending
	groupInputs  []int
	groupOutputs []int
	meter        *Meter
}

// NewContext creates the execution context of one script group. groupInputs
// and groupOutputs are absolute cell indices in ascending order; lock groups
// pass nil groupOutputs.
func NewContext(view *TxView, args []byte, groupInputs, groupOutputs []int, meter *Meter) *Context {
	return &Context{
		view:         view,
		args:         args,
		groupInputs:  groupInputs,
		groupOutputs: groupOutputs,
		meter:        meter,
	}
}

// Args implements Host.
func (c *Context) Args() []byte {
	return c.args
}

// resolve maps (index, src) to an absolute cell index and the side it lives
// on. Anything past the end of the addressed sequence is ErrIndexOutOfBound.
func (c *Context) resolve(index int, src Source) (abs int, input bool, err error) {
	if index < 0 {
		return 0, false, ErrIndexOutOfBound
	}
	switch src {
	case SourceInput:
		if index >= len(c.view.Tx.Inputs) {
			return 0, false, ErrIndexOutOfBound
		}
		return index, true, nil
	case SourceOutput:
		if index >= len(c.view.Tx.Outputs) {
			return 0, false, ErrIndexOutOfBound
		}
		return index, false, nil
	case SourceGroupInput:
		if index >= len(c.groupInputs) {
			return 0, false, ErrIndexOutOfBound
		}
		return c.groupInputs[index], true, nil
	case SourceGroupOutput:
		if index >= len(c.groupOutputs) {
			return 0, false, ErrIndexOutOfBound
		}
		return c.groupOutputs[index], false, nil
	default:
		return 0, false, fmt.Errorf("%w: unknown source %d", ErrInternal, src)
	}
}

func (c *Context) side(input bool) (*SideView, []types.Cell) {
	if input {
		return &c.view.Inputs, c.view.Tx.Inputs
	}
	return &c.view.Outputs, c.view.Tx.Outputs
}

// CellAt implements Host.
func (c *Context) CellAt(index int, src Source) (*CellInfo, error) {
	abs, input, err := c.resolve(index, src)
	if err != nil {
		return nil, err
	}
	side, cells := c.side(input)
	info := &CellInfo{
		Capacity: cells[abs].Output.Capacity,
		Lock:     side.Locks[abs],
		Type:     side.Types[abs],
	}
	if err := c.meter.Consume(BaseCost + uint64(len(info.Lock)+len(info.Type))*ByteCost); err != nil {
		return nil, err
	}
	return info, nil
}

// DataAt implements Host.
func (c *Context) DataAt(index int, src Source) ([]byte, error) {
	abs, input, err := c.resolve(index, src)
	if err != nil {
		return nil, err
	}
	_, cells := c.side(input)
	data := cells[abs].Data
	if err := c.meter.Consume(BaseCost + uint64(len(data))*ByteCost); err != nil {
		return nil, err
	}
	return data, nil
}

// LockHashAt implements Host.
func (c *Context) LockHashAt(index int, src Source) (Hash32, error) {
	abs, input, err := c.resolve(index, src)
	if err != nil {
		return Hash32{}, err
	}
	side, _ := c.side(input)
	if err := c.meter.Consume(BaseCost + types.Hash32Length*ByteCost); err != nil {
		return Hash32{}, err
	}
	return side.LockHashes[abs], nil
}

// WitnessAt implements Host.
func (c *Context) WitnessAt(index int, src Source) ([]byte, error) {
	abs, _, err := c.resolve(index, src)
	if err != nil {
		return nil, err
	}
	if abs >= len(c.view.Tx.Witnesses) {
		return nil, ErrIndexOutOfBound
	}
	witness := c.view.Tx.Witnesses[abs]
	if err := c.meter.Consume(BaseCost + uint64(len(witness))*ByteCost); err != nil {
		return nil, err
	}
	return witness, nil
}

// TxHash implements Host.
func (c *Context) TxHash() Hash32 {
	return c.view.Hash
}
