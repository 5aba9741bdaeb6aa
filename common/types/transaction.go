package types

import (
	"bytes"
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/cellmeshos/go-cellmesh/codec"
	"github.com/cellmeshos/go-cellmesh/hash"
)

const (
	// MaxTxCells bounds the number of inputs and the number of outputs.
	MaxTxCells = 1024
	// MaxWitnessSize bounds a single witness blob.
	MaxWitnessSize = 32768
)

// TransactionID is a 32-byte blake3 digest of the witness-free serialization
// of a transaction.
type TransactionID Hash32

// EmptyTransactionID is a canonical empty TransactionID.
var EmptyTransactionID = TransactionID{}

// Hash32 returns the TransactionID as a Hash32.
func (id TransactionID) Hash32() Hash32 {
	return Hash32(id)
}

// Bytes returns the TransactionID as a byte slice.
func (id TransactionID) Bytes() []byte {
	return id[:]
}

// String implements the stringer interface.
func (id TransactionID) String() string {
	return id.Hash32().ShortString()
}

// Compare returns true if other (the given TransactionID) is less than this
// TransactionID, by lexicographic comparison.
func (id TransactionID) Compare(other TransactionID) bool {
	return bytes.Compare(id.Bytes(), other.Bytes()) < 0
}

// EncodeScale implements scale codec interface.
func (id *TransactionID) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, id[:])
}

// DecodeScale implements scale codec interface.
func (id *TransactionID) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, id[:])
}

// Transaction consumes a set of live cells and creates a new set in their
// place. It arrives fully resolved: inputs carry the complete cells as they
// existed when spent, so verification needs no state lookups. Witnesses are
// positional and belong to inputs with the same index.
type Transaction struct {
	Inputs    []Cell
	Outputs   []Cell
	Witnesses [][]byte
}

// ID computes the canonical transaction ID, the blake3 digest of the
// serialization with witnesses stripped. Filling in witnesses does not
// change the ID, which is what signature witnesses sign.
func (t *Transaction) ID() TransactionID {
	unsigned := Transaction{Inputs: t.Inputs, Outputs: t.Outputs}
	return TransactionID(hash.Sum(codec.MustEncode(&unsigned)))
}

// Validate checks the structural wire limits without running any guard.
func (t *Transaction) Validate() error {
	if len(t.Inputs) == 0 {
		return fmt.Errorf("transaction has no inputs")
	}
	if len(t.Inputs) > MaxTxCells {
		return fmt.Errorf("too many inputs: %d > %d", len(t.Inputs), MaxTxCells)
	}
	if len(t.Outputs) > MaxTxCells {
		return fmt.Errorf("too many outputs: %d > %d", len(t.Outputs), MaxTxCells)
	}
	if len(t.Witnesses) > len(t.Inputs) {
		return fmt.Errorf("more witnesses than inputs: %d > %d", len(t.Witnesses), len(t.Inputs))
	}
	for i := range t.Inputs {
		if err := validateCell(&t.Inputs[i]); err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
	}
	for i := range t.Outputs {
		if err := validateCell(&t.Outputs[i]); err != nil {
			return fmt.Errorf("output %d: %w", i, err)
		}
	}
	for i, witness := range t.Witnesses {
		if len(witness) > MaxWitnessSize {
			return fmt.Errorf("witness %d: %d bytes > %d", i, len(witness), MaxWitnessSize)
		}
	}
	return nil
}

func validateCell(cell *Cell) error {
	if len(cell.Output.Lock.Args) > MaxScriptArgs {
		return fmt.Errorf("lock args %d bytes > %d", len(cell.Output.Lock.Args), MaxScriptArgs)
	}
	if cell.Output.Type != nil && len(cell.Output.Type.Args) > MaxScriptArgs {
		return fmt.Errorf("type args %d bytes > %d", len(cell.Output.Type.Args), MaxScriptArgs)
	}
	if len(cell.Data) > MaxCellData {
		return fmt.Errorf("data %d bytes > %d", len(cell.Data), MaxCellData)
	}
	return nil
}

// EncodeScale implements scale codec interface.
func (t *Transaction) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeStructSlice(enc, t.Inputs)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeStructSlice(enc, t.Outputs)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeCompact32(enc, uint32(len(t.Witnesses)))
		if err != nil {
			return total, err
		}
		total += n
	}
	for _, witness := range t.Witnesses {
		n, err := scale.EncodeByteSliceWithLimit(enc, witness, MaxWitnessSize)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (t *Transaction) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeStructSlice[Cell, *Cell](dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Inputs = field
	}
	{
		field, n, err := scale.DecodeStructSlice[Cell, *Cell](dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Outputs = field
	}
	{
		count, n, err := scale.DecodeCompact32(dec)
		if err != nil {
			return total, err
		}
		total += n
		if count > MaxTxCells {
			return total, fmt.Errorf("too many witnesses: %d > %d", count, MaxTxCells)
		}
		if count > 0 {
			t.Witnesses = make([][]byte, count)
			for i := range t.Witnesses {
				field, n, err := scale.DecodeByteSliceWithLimit(dec, MaxWitnessSize)
				if err != nil {
					return total, err
				}
				total += n
				t.Witnesses[i] = field
			}
		}
	}
	return total, nil
}
