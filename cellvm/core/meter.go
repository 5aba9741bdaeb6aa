package core

import "fmt"

// Host call pricing, in cycles.
const (
	// BaseCost is charged for every host call before any data is copied.
	BaseCost = 100
	// ByteCost is charged per byte returned from a host call.
	ByteCost = 1
)

// DefaultMaxCycles bounds one transaction's verification when no explicit
// ceiling is configured.
const DefaultMaxCycles = 10_000_000

// Meter counts cycles consumed by host calls against a fixed ceiling. One
// meter is shared by every script group of a transaction, so a group cannot
// reclaim what an earlier group spent.
type Meter struct {
	limit uint64
	used  uint64
}

// NewMeter creates a meter with the given ceiling.
func NewMeter(limit uint64) *Meter {
	return &Meter{limit: limit}
}

// Consume charges n cycles. Once the ceiling is crossed every later charge
// keeps failing, so an aborted guard cannot resume.
func (m *Meter) Consume(n uint64) error {
	m.used += n
	if m.used > m.limit {
		return fmt.Errorf("%w: %d of %d", ErrCyclesExceeded, m.used, m.limit)
	}
	return nil
}

// Used reports the cycles consumed so far.
func (m *Meter) Used() uint64 {
	return m.used
}
