package core

import (
	"github.com/cellmeshos/go-cellmesh/common/types"
)

type (
	// Hash32 is an alias to types.Hash32.
	Hash32 = types.Hash32
	// TransactionID is an alias to types.TransactionID.
	TransactionID = types.TransactionID
)

// Source selects which part of the transaction an indexed host call reads.
type Source uint8

const (
	// SourceInput addresses all consumed cells of the transaction.
	SourceInput Source = iota + 1
	// SourceOutput addresses all created cells of the transaction.
	SourceOutput
	// SourceGroupInput addresses the consumed cells of the executing script's
	// group, in transaction order.
	SourceGroupInput
	// SourceGroupOutput addresses the created cells of the executing script's
	// group, in transaction order. Lock script groups have no output side.
	SourceGroupOutput
)

// String implements the stringer interface.
func (s Source) String() string {
	switch s {
	case SourceInput:
		return "input"
	case SourceOutput:
		return "output"
	case SourceGroupInput:
		return "group-input"
	case SourceGroupOutput:
		return "group-output"
	default:
		return "unknown"
	}
}

// CellInfo is the guard-visible view of a single cell: the stored capacity
// and the canonical serializations of its scripts. Script identity is byte
// equality of those serializations, so guards compare them directly and
// never reserialize. The slices are shared with the host and must not be
// mutated.
type CellInfo struct {
	Capacity uint64
	Lock     []byte
	Type     []byte
}

// HasType reports whether the cell carries a type script.
func (c *CellInfo) HasType() bool {
	return len(c.Type) > 0
}
