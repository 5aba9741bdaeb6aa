// Package p2pk implements the single key lock. The argument slot carries an
// ed25519 public key and the witness of the group's first input must sign
// the witness-free transaction digest with it.
package p2pk

import (
	"errors"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/cellmeshos/go-cellmesh/cellvm/core"
	"github.com/cellmeshos/go-cellmesh/cellvm/registry"
)

const (
	// KeySize is the expected length of the public key in the argument slot.
	KeySize = ed25519.PublicKeySize
	// SignatureSize is the expected length of the witness.
	SignatureSize = ed25519.SignatureSize
)

var (
	_ core.Guard = (*guard)(nil)
	// CodeHash is the well known code hash of the single key lock.
	CodeHash core.Hash32
)

func init() {
	CodeHash[len(CodeHash)-1] = 2
}

// Register the guard.
func Register(reg *registry.Registry) {
	reg.Register(CodeHash, &guard{})
}

type guard struct{}

// Verify implements core.Guard.
func (guard) Verify(host core.Host) error {
	args := host.Args()
	if len(args) < KeySize {
		return core.ErrArgsLen
	}
	witness, err := host.WitnessAt(0, core.SourceGroupInput)
	if errors.Is(err, core.ErrIndexOutOfBound) {
		return core.ErrItemMissing
	}
	if err != nil {
		return err
	}
	if len(witness) == 0 {
		return core.ErrItemMissing
	}
	if len(witness) != SignatureSize {
		return core.ErrEncoding
	}
	txHash := host.TxHash()
	if !ed25519.Verify(ed25519.PublicKey(args[:KeySize]), txHash[:], witness) {
		return core.ErrInvalidSignature
	}
	return nil
}
