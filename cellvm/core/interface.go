package core

//go:generate mockgen -typed -package=core -destination=./mocks.go -source=./interface.go

// Host exposes one frozen transaction to an executing guard. All accessors
// are indexed reads; an index past the end of a source fails with
// ErrIndexOutOfBound, which doubles as the end-of-iteration signal.
type Host interface {
	// Args returns the argument slot of the executing script.
	Args() []byte
	// CellAt reads the capacity and canonical script bytes of the cell at
	// index in src.
	CellAt(index int, src Source) (*CellInfo, error)
	// DataAt reads the data payload of the cell at index in src.
	DataAt(index int, src Source) ([]byte, error)
	// LockHashAt reads the lock script digest of the cell at index in src.
	LockHashAt(index int, src Source) (Hash32, error)
	// WitnessAt reads the witness at index. Witnesses are positional with
	// inputs; group sources address the witnesses of the group's cells.
	WitnessAt(index int, src Source) ([]byte, error)
	// TxHash returns the witness-free digest of the transaction.
	TxHash() Hash32
}

// Guard is a native guard program bound to a script code hash.
type Guard interface {
	// Verify checks the transaction visible through host on behalf of one
	// script group. nil accepts. A *Error rejects with its status code. Any
	// other error is a defect in the host or the guard and aborts the whole
	// verification unmapped.
	Verify(host Host) error
}
