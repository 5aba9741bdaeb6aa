package tokensale

import (
	"encoding/binary"
	"fmt"

	"github.com/cellmeshos/go-cellmesh/cellvm/core"
)

// Argument slot layout of the sale lock: owner lock hash, then little endian
// unit cost, then little endian sale id.
const (
	ownerOffset = 0
	costOffset  = 32
	saleOffset  = 40
	// ArgsSize is the minimum length of the argument slot. Trailing bytes
	// are ignored.
	ArgsSize = 44
)

// Args is the decoded argument slot of the sale lock.
type Args struct {
	// Owner is the lock script digest whose presence among the inputs
	// authorizes restructuring the sale.
	Owner core.Hash32
	// UnitCost is the capacity price of one token. Zero is invalid.
	UnitCost uint64
	// SaleID distinguishes otherwise identical sales. It is never checked,
	// it only keeps their script groups apart.
	SaleID uint32
}

// ParseArgs decodes and validates the argument slot.
func ParseArgs(raw []byte) (*Args, error) {
	if len(raw) < ArgsSize {
		return nil, fmt.Errorf("%w: %d bytes, want at least %d", core.ErrArgsLen, len(raw), ArgsSize)
	}
	args := &Args{
		UnitCost: binary.LittleEndian.Uint64(raw[costOffset:saleOffset]),
		SaleID:   binary.LittleEndian.Uint32(raw[saleOffset:ArgsSize]),
	}
	copy(args.Owner[:], raw[ownerOffset:costOffset])
	if args.UnitCost == 0 {
		return nil, core.ErrInvalidCost
	}
	return args, nil
}

// Encode packs args into the canonical argument slot layout.
func (a *Args) Encode() []byte {
	raw := make([]byte, ArgsSize)
	copy(raw[ownerOffset:costOffset], a.Owner[:])
	binary.LittleEndian.PutUint64(raw[costOffset:saleOffset], a.UnitCost)
	binary.LittleEndian.PutUint32(raw[saleOffset:ArgsSize], a.SaleID)
	return raw
}
