package alwayssuccess

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cellmeshos/go-cellmesh/cellvm/registry"
)

func TestVerify(t *testing.T) {
	reg := registry.New()
	Register(reg)
	guard := reg.Get(CodeHash)
	require.NotNil(t, guard)
	require.NoError(t, guard.Verify(nil))
}
