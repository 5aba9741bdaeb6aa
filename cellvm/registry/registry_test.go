package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cellmeshos/go-cellmesh/cellvm/core"
)

type nopGuard struct{}

func (nopGuard) Verify(core.Host) error { return nil }

func TestRegistry(t *testing.T) {
	reg := New()
	codeHash := core.Hash32{1}
	require.Nil(t, reg.Get(codeHash))

	guard := nopGuard{}
	reg.Register(codeHash, guard)
	require.Equal(t, guard, reg.Get(codeHash))
	require.Nil(t, reg.Get(core.Hash32{2}))
}

func TestRegistryDuplicatePanics(t *testing.T) {
	reg := New()
	codeHash := core.Hash32{1}
	reg.Register(codeHash, nopGuard{})
	require.Panics(t, func() {
		reg.Register(codeHash, nopGuard{})
	})
}
