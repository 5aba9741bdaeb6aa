// Package tokensale implements the vending lock for token sales. A sale
// cell stores capacity next to a token balance and sells tokens at a fixed
// unit cost: anyone may take tokens out of it as long as they add exactly
// unit cost capacity per token taken, rebuilding the cell in place. The
// configured owner bypasses the exchange rules and may restructure the sale
// freely.
package tokensale

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/cellmeshos/go-cellmesh/cellvm/core"
	"github.com/cellmeshos/go-cellmesh/cellvm/registry"
	"github.com/cellmeshos/go-cellmesh/common/types"
)

var (
	_ core.Guard = (*guard)(nil)
	// CodeHash is the well known code hash of the sale lock.
	CodeHash core.Hash32
)

func init() {
	CodeHash[len(CodeHash)-1] = 4
}

// Register the guard.
func Register(reg *registry.Registry) {
	reg.Register(CodeHash, &guard{})
}

type guard struct{}

// Verify implements core.Guard.
func (guard) Verify(host core.Host) error {
	args, err := ParseArgs(host.Args())
	if err != nil {
		return err
	}
	authorized, err := ownerAuthorized(host, args.Owner)
	if err != nil {
		return err
	}
	if authorized {
		return nil
	}
	sale, err := saleKey(host)
	if err != nil {
		return err
	}
	if err := countCreated(host, sale); err != nil {
		return err
	}
	consumed, err := aggregate(host, core.SourceGroupInput, sale)
	if err != nil {
		return err
	}
	created, err := aggregate(host, core.SourceOutput, sale)
	if err != nil {
		return err
	}
	return checkExchange(args, consumed, created)
}

// ownerAuthorized scans the lock digests of every consumed cell of the
// transaction, not just the group, so any co-signed input unlocks owner
// mode for all sales it appears next to.
func ownerAuthorized(host core.Host, owner core.Hash32) (bool, error) {
	authorized := false
	hashes := core.LockHashes(host, core.SourceInput)
	for _, lockHash := range hashes.Seq {
		if lockHash == owner {
			authorized = true
			break
		}
	}
	if err := hashes.Error(); err != nil {
		return false, err
	}
	return authorized, nil
}

// saleKey loads the consumed sale cell and derives the match key from its
// canonical script bytes. The group must consume exactly one sale cell and
// that cell must carry the token type.
func saleKey(host core.Host) (*core.CellInfo, error) {
	sale, err := host.CellAt(0, core.SourceGroupInput)
	if errors.Is(err, core.ErrIndexOutOfBound) {
		return nil, fmt.Errorf("%w: no sale cell consumed", core.ErrInvalidStructure)
	}
	if err != nil {
		return nil, err
	}
	if !sale.HasType() {
		return nil, fmt.Errorf("%w: sale cell carries no token type", core.ErrInvalidStructure)
	}
	switch _, err := host.CellAt(1, core.SourceGroupInput); {
	case err == nil:
		return nil, fmt.Errorf("%w: more than one sale cell consumed", core.ErrInvalidStructure)
	case !errors.Is(err, core.ErrIndexOutOfBound):
		return nil, err
	}
	return sale, nil
}

// countCreated requires exactly one created cell with the sale's match key,
// the rebuilt sale cell.
func countCreated(host core.Host, sale *core.CellInfo) error {
	count := 0
	cells := core.Cells(host, core.SourceOutput)
	for _, cell := range cells.Seq {
		if matchesKey(cell, sale) {
			count++
		}
	}
	if err := cells.Error(); err != nil {
		return err
	}
	if count != 1 {
		return fmt.Errorf("%w: %d sale cells created, want 1", core.ErrInvalidStructure, count)
	}
	return nil
}

func matchesKey(cell, sale *core.CellInfo) bool {
	return bytes.Equal(cell.Lock, sale.Lock) && bytes.Equal(cell.Type, sale.Type)
}

// totals accumulates the capacity and token balance of the sale cells seen
// in one aggregation pass. Both run wide: the sums stay far below 256 bits
// for any transaction within the wire limits.
type totals struct {
	capacity uint256.Int
	tokens   uint256.Int
}

func aggregate(host core.Host, src core.Source, sale *core.CellInfo) (*totals, error) {
	sum := &totals{}
	for index := 0; ; index++ {
		cell, err := host.CellAt(index, src)
		if errors.Is(err, core.ErrIndexOutOfBound) {
			return sum, nil
		}
		if err != nil {
			return nil, err
		}
		if !matchesKey(cell, sale) {
			continue
		}
		data, err := host.DataAt(index, src)
		if err != nil {
			return nil, err
		}
		amount, ok := types.TokenAmount(data)
		if !ok {
			return nil, fmt.Errorf("%w: %s cell %d carries %d bytes, want %d",
				core.ErrEncoding, src, index, len(data), types.TokenDataSize)
		}
		sum.capacity.Add(&sum.capacity, uint256.NewInt(cell.Capacity))
		sum.tokens.Add(&sum.tokens, amount)
	}
}

// checkExchange enforces the sale invariant: capacity strictly flows in,
// tokens strictly flow out, and the two deltas agree exactly at the unit
// cost.
func checkExchange(args *Args, consumed, created *totals) error {
	if !created.capacity.Gt(&consumed.capacity) {
		return fmt.Errorf("%w: %v ckbytes consumed, %v created",
			core.ErrAmountCkbytes, consumed.capacity.ToBig(), created.capacity.ToBig())
	}
	if !created.tokens.Lt(&consumed.tokens) {
		return fmt.Errorf("%w: %v tokens consumed, %v created",
			core.ErrAmountSudt, consumed.tokens.ToBig(), created.tokens.ToBig())
	}
	var capDelta, tokDelta, expected uint256.Int
	capDelta.Sub(&created.capacity, &consumed.capacity)
	tokDelta.Sub(&consumed.tokens, &created.tokens)
	expected.Mul(&tokDelta, uint256.NewInt(args.UnitCost))
	if !capDelta.Eq(&expected) {
		return fmt.Errorf("%w: %v ckbytes added for %v tokens at unit cost %d",
			core.ErrExchangeRate, capDelta.ToBig(), tokDelta.ToBig(), args.UnitCost)
	}
	return nil
}
