package core

import (
	"errors"
	"iter"
)

// CellSeq is a single use sequence of cells from one source. Error must be
// checked after the loop completes; it is nil when the loop stopped at the
// natural end of the source or the consumer broke out early.
type CellSeq struct {
	Seq   iter.Seq2[int, *CellInfo]
	Error func() error
}

// Cells iterates the cells of src starting at index 0, folding the
// end-of-sequence signal into normal termination.
func Cells(host Host, src Source) CellSeq {
	var ierr error
	return CellSeq{
		Seq: func(yield func(int, *CellInfo) bool) {
			for index := 0; ; index++ {
				cell, err := host.CellAt(index, src)
				if errors.Is(err, ErrIndexOutOfBound) {
					return
				}
				if err != nil {
					ierr = err
					return
				}
				if !yield(index, cell) {
					return
				}
			}
		},
		Error: func() error { return ierr },
	}
}

// HashSeq is a single use sequence of script digests from one source. Error
// must be checked after the loop completes.
type HashSeq struct {
	Seq   iter.Seq2[int, Hash32]
	Error func() error
}

// LockHashes iterates the lock script digests of src starting at index 0,
// folding the end-of-sequence signal into normal termination.
func LockHashes(host Host, src Source) HashSeq {
	var ierr error
	return HashSeq{
		Seq: func(yield func(int, Hash32) bool) {
			for index := 0; ; index++ {
				lockHash, err := host.LockHashAt(index, src)
				if errors.Is(err, ErrIndexOutOfBound) {
					return
				}
				if err != nil {
					ierr = err
					return
				}
				if !yield(index, lockHash) {
					return
				}
			}
		},
		Error: func() error { return ierr },
	}
}
