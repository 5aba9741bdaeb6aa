// Package sudt implements the token type script. A token kind is identified
// by the owner lock hash carried in the argument slot. Transfers may never
// create more tokens than they consume; transactions authorized by the owner
// lock are exempt and may issue or burn freely.
package sudt

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/cellmeshos/go-cellmesh/cellvm/core"
	"github.com/cellmeshos/go-cellmesh/cellvm/registry"
	"github.com/cellmeshos/go-cellmesh/common/types"
)

var (
	_ core.Guard = (*guard)(nil)
	// CodeHash is the well known code hash of the token type script.
	CodeHash core.Hash32
)

func init() {
	CodeHash[len(CodeHash)-1] = 3
}

// Register the guard.
func Register(reg *registry.Registry) {
	reg.Register(CodeHash, &guard{})
}

type guard struct{}

// Verify implements core.Guard.
func (guard) Verify(host core.Host) error {
	args := host.Args()
	if len(args) < types.Hash32Length {
		return core.ErrArgsLen
	}
	owner := types.BytesToHash(args[:types.Hash32Length])
	authorized := false
	hashes := core.LockHashes(host, core.SourceInput)
	for _, lockHash := range hashes.Seq {
		if lockHash == owner {
			authorized = true
			break
		}
	}
	if err := hashes.Error(); err != nil {
		return err
	}
	if authorized {
		return nil
	}
	consumed, err := sumTokens(host, core.SourceGroupInput)
	if err != nil {
		return err
	}
	created, err := sumTokens(host, core.SourceGroupOutput)
	if err != nil {
		return err
	}
	if created.Gt(consumed) {
		return fmt.Errorf("%w: %v tokens created from %v", core.ErrAmountSudt, created.ToBig(), consumed.ToBig())
	}
	return nil
}

// sumTokens adds up the token amounts of every cell in src. Every cell of a
// token group must carry exactly one amount payload.
func sumTokens(host core.Host, src core.Source) (*uint256.Int, error) {
	total := new(uint256.Int)
	for index := 0; ; index++ {
		data, err := host.DataAt(index, src)
		if errors.Is(err, core.ErrIndexOutOfBound) {
			return total, nil
		}
		if err != nil {
			return nil, err
		}
		amount, ok := types.TokenAmount(data)
		if !ok {
			return nil, fmt.Errorf("%w: %s cell %d carries %d bytes, want %d",
				core.ErrEncoding, src, index, len(data), types.TokenDataSize)
		}
		total.Add(total, amount)
	}
}
