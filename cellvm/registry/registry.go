package registry

import (
	"fmt"

	"github.com/cellmeshos/go-cellmesh/cellvm/core"
)

// New creates Registry instance.
func New() *Registry {
	return &Registry{guards: map[core.Hash32]core.Guard{}}
}

// Registry stores mapping from script code hash to the native guard program
// implementing it.
type Registry struct {
	guards map[core.Hash32]core.Guard
}

// Get guard for the code hash if it exists.
func (r *Registry) Get(codeHash core.Hash32) core.Guard {
	return r.guards[codeHash]
}

// Register guard for the code hash. Panics if the code hash is already taken.
func (r *Registry) Register(codeHash core.Hash32, guard core.Guard) {
	if _, exist := r.guards[codeHash]; exist {
		panic(fmt.Sprintf("%x already register", codeHash))
	}
	r.guards[codeHash] = guard
}
