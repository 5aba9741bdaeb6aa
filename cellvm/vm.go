// Package cellvm implements the deterministic verification engine for cell
// transactions. A transaction arrives fully resolved; the engine partitions
// its cells into script groups, dispatches each group's code hash to a
// registered native guard and runs the guards against a metered, read only
// view of the transaction. Verification is a pure function of the
// transaction bytes: same input, same outcome, on every machine.
package cellvm

import (
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/cellmeshos/go-cellmesh/cellvm/core"
	"github.com/cellmeshos/go-cellmesh/cellvm/registry"
	"github.com/cellmeshos/go-cellmesh/cellvm/templates/alwayssuccess"
	"github.com/cellmeshos/go-cellmesh/cellvm/templates/p2pk"
	"github.com/cellmeshos/go-cellmesh/cellvm/templates/sudt"
	"github.com/cellmeshos/go-cellmesh/cellvm/templates/tokensale"
	"github.com/cellmeshos/go-cellmesh/common/types"
	"github.com/cellmeshos/go-cellmesh/hash"
)

// ErrUnknownScript is returned when no guard is registered for a script's
// code hash.
var ErrUnknownScript = errors.New("unknown script code hash")

const scriptHashCacheSize = 1024

// Opt is for changing VM during initialization.
type Opt func(*VM)

// WithLogger sets logger for VM.
func WithLogger(logger *zap.Logger) Opt {
	return func(vm *VM) {
		vm.logger = logger
	}
}

// WithMaxCycles overrides the cycle ceiling charged to one transaction.
func WithMaxCycles(limit uint64) Opt {
	return func(vm *VM) {
		vm.maxCycles = limit
	}
}

// WithRegistry replaces the builtin guard registry.
func WithRegistry(reg *registry.Registry) Opt {
	return func(vm *VM) {
		vm.registry = reg
	}
}

// New returns VM instance. Unless overridden with WithRegistry it serves the
// builtin guards.
func New(opts ...Opt) *VM {
	vm := &VM{
		logger:    zap.NewNop(),
		maxCycles: core.DefaultMaxCycles,
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.registry == nil {
		reg := registry.New()
		alwayssuccess.Register(reg)
		p2pk.Register(reg)
		sudt.Register(reg)
		tokensale.Register(reg)
		vm.registry = reg
	}
	cache, err := lru.New[string, types.Hash32](scriptHashCacheSize)
	if err != nil {
		panic(err)
	}
	vm.hashCache = cache
	return vm
}

// VM verifies transactions against the registered guards.
type VM struct {
	logger    *zap.Logger
	registry  *registry.Registry
	maxCycles uint64
	hashCache *lru.Cache[string, types.Hash32]
}

// Verify runs every script group of tx and returns the cycles consumed.
// nil accepts the transaction. A rejection matches one of the core status
// sentinels and carries the code of the first failing group; any other
// error reports a failed run, not a transaction outcome.
func (vm *VM) Verify(tx *types.Transaction) (uint64, error) {
	if err := tx.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrMalformed, err)
	}
	var (
		start  = time.Now()
		view   = core.NewTxView(tx, vm.hashScript)
		groups = buildGroups(view)
		meter  = core.NewMeter(vm.maxCycles)
	)
	for _, group := range groups {
		guard := vm.registry.Get(group.script.CodeHash)
		if guard == nil {
			return meter.Used(), fmt.Errorf("%w: %s", ErrUnknownScript, group.script.CodeHash.ShortString())
		}
		ctx := core.NewContext(view, group.script.Args, group.inputs, group.outputs, meter)
		if err := guard.Verify(ctx); err != nil {
			return meter.Used(), vm.failGroup(view, group, err)
		}
	}
	vm.logger.Debug("transaction verified",
		zap.Stringer("tx", tx.ID()),
		zap.Int("groups", len(groups)),
		zap.Uint64("cycles", meter.Used()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return meter.Used(), nil
}

// failGroup attaches the failing group to err. Errors outside the status
// taxonomy and the cycle ceiling are defects and get wrapped as internal, so
// they can never be mistaken for an outcome.
func (vm *VM) failGroup(view *core.TxView, group *scriptGroup, err error) error {
	if _, ok := core.ExitCode(err); !ok && !errors.Is(err, core.ErrCyclesExceeded) {
		err = fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	vm.logger.Debug("group failed",
		zap.Stringer("tx", view.Tx.ID()),
		zap.Stringer("kind", group.kind),
		zap.String("code", group.script.CodeHash.ShortString()),
		zap.Error(err),
	)
	return fmt.Errorf("%s group %s: %w", group.kind, group.script.CodeHash.ShortString(), err)
}

// hashScript memoizes script digests across transactions, keyed by the
// canonical script bytes.
func (vm *VM) hashScript(raw []byte) types.Hash32 {
	if digest, ok := vm.hashCache.Get(string(raw)); ok {
		return digest
	}
	digest := types.Hash32(hash.Sum(raw))
	vm.hashCache.Add(string(raw), digest)
	return digest
}
