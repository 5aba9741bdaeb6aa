// Package alwayssuccess implements the unconditional lock. It accepts every
// transaction and exists to hold plain capacity in tests and fixtures.
package alwayssuccess

import (
	"github.com/cellmeshos/go-cellmesh/cellvm/core"
	"github.com/cellmeshos/go-cellmesh/cellvm/registry"
)

var (
	_ core.Guard = (*guard)(nil)
	// CodeHash is the well known code hash of the unconditional lock.
	CodeHash core.Hash32
)

func init() {
	CodeHash[len(CodeHash)-1] = 1
}

// Register the guard.
func Register(reg *registry.Registry) {
	reg.Register(CodeHash, &guard{})
}

type guard struct{}

// Verify implements core.Guard.
func (guard) Verify(core.Host) error {
	return nil
}
