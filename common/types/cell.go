package types

import (
	"bytes"
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/cellmeshos/go-cellmesh/codec"
	"github.com/cellmeshos/go-cellmesh/hash"
)

const (
	// MaxScriptArgs bounds the serialized argument slot of a script.
	MaxScriptArgs = 1024
	// MaxCellData bounds the data payload of a single cell.
	MaxCellData = 4096
)

// Script identifies the guard program attached to a cell together with its
// immutable arguments. CodeHash selects the program, Args parametrize it.
type Script struct {
	CodeHash Hash32
	Args     []byte
}

// Bytes returns the canonical serialization of the script. It panics if the
// script violates the wire limits, which decoded scripts never do.
func (s *Script) Bytes() []byte {
	return codec.MustEncode(s)
}

// Hash returns the blake3 digest of the canonical serialization of the script.
// Cells are owned and grouped by this digest.
func (s *Script) Hash() Hash32 {
	h := hash.GetHasher()
	defer func() {
		h.Reset()
		hash.PutHasher(h)
	}()
	codec.MustEncodeTo(h, s)
	var rst Hash32
	h.Sum(rst[:0])
	return rst
}

// Equal reports whether two scripts serialize to the same bytes.
func (s *Script) Equal(other *Script) bool {
	if other == nil {
		return s == nil
	}
	return s.CodeHash == other.CodeHash && bytes.Equal(s.Args, other.Args)
}

// EncodeScale implements scale codec interface.
func (s *Script) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeByteArray(enc, s.CodeHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, s.Args, MaxScriptArgs)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (s *Script) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := scale.DecodeByteArray(dec, s.CodeHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, MaxScriptArgs)
		if err != nil {
			return total, err
		}
		total += n
		s.Args = field
	}
	return total, nil
}

// CellOutput is the created side of a cell: the stored capacity, the lock
// script guarding consumption and an optional type script constraining how
// the cell may be produced and transformed.
type CellOutput struct {
	Capacity uint64
	Lock     Script
	Type     *Script
}

// EncodeScale implements scale codec interface.
func (o *CellOutput) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeCompact64(enc, o.Capacity)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := o.Lock.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	if o.Type == nil {
		n, err := scale.EncodeByte(enc, 0)
		if err != nil {
			return total, err
		}
		total += n
	} else {
		n, err := scale.EncodeByte(enc, 1)
		if err != nil {
			return total, err
		}
		total += n
		n, err = o.Type.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (o *CellOutput) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeCompact64(dec)
		if err != nil {
			return total, err
		}
		total += n
		o.Capacity = field
	}
	{
		n, err := o.Lock.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		present, n, err := scale.DecodeByte(dec)
		if err != nil {
			return total, err
		}
		total += n
		switch present {
		case 0:
			o.Type = nil
		case 1:
			o.Type = &Script{}
			n, err := o.Type.DecodeScale(dec)
			if err != nil {
				return total, err
			}
			total += n
		default:
			return total, fmt.Errorf("invalid presence byte %d for type script", present)
		}
	}
	return total, nil
}

// Cell is a fully resolved cell: its output fields together with the data
// payload stored alongside them.
type Cell struct {
	Output CellOutput
	Data   []byte
}

// EncodeScale implements scale codec interface.
func (c *Cell) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := c.Output.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, c.Data, MaxCellData)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (c *Cell) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := c.Output.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, MaxCellData)
		if err != nil {
			return total, err
		}
		total += n
		c.Data = field
	}
	return total, nil
}
