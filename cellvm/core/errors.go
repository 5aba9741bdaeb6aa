package core

import (
	"errors"
	"fmt"
)

// Code is a verification status code. The numbering is part of the external
// contract: callers branch on the exact values, so they never change.
type Code int8

// Host fault codes.
const (
	// CodeIndexOutOfBound signals an indexed read past the end of its source.
	CodeIndexOutOfBound Code = 1
	// CodeItemMissing signals a read of an item that does not exist.
	CodeItemMissing Code = 2
	// CodeLengthNotEnough signals a partial read into a short buffer.
	CodeLengthNotEnough Code = 3
	// CodeEncoding signals a malformed payload.
	CodeEncoding Code = 4
)

// Guard rejection codes.
const (
	// CodeArgsLen rejects a script whose argument slot is shorter than the
	// guard's layout requires.
	CodeArgsLen Code = 100
	// CodeAmountCkbytes rejects an exchange that does not add capacity.
	CodeAmountCkbytes Code = 101
	// CodeAmountSudt rejects an exchange that does not remove tokens.
	CodeAmountSudt Code = 102
	// CodeExchangeRate rejects an exchange whose capacity delta does not
	// equal the token delta at the configured unit cost.
	CodeExchangeRate Code = 103
	// CodeInvalidCost rejects a zero unit cost.
	CodeInvalidCost Code = 104
	// CodeInvalidStructure rejects a transaction that does not have exactly
	// one sale cell on each side.
	CodeInvalidStructure Code = 105
	// CodeInvalidSignature rejects a witness that does not sign the
	// transaction.
	CodeInvalidSignature Code = 106
)

// String implements the stringer interface.
func (c Code) String() string {
	switch c {
	case CodeIndexOutOfBound:
		return "index out of bound"
	case CodeItemMissing:
		return "item missing"
	case CodeLengthNotEnough:
		return "length not enough"
	case CodeEncoding:
		return "encoding"
	case CodeArgsLen:
		return "args length"
	case CodeAmountCkbytes:
		return "capacity amount"
	case CodeAmountSudt:
		return "token amount"
	case CodeExchangeRate:
		return "exchange rate"
	case CodeInvalidCost:
		return "invalid cost"
	case CodeInvalidStructure:
		return "invalid structure"
	case CodeInvalidSignature:
		return "invalid signature"
	default:
		return fmt.Sprintf("code %d", int8(c))
	}
}

// Error is a verification failure carrying one of the closed status codes.
type Error struct {
	Code Code
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d)", e.Msg, e.Code)
}

// Is matches any error carrying the same code, so wrapped rejections compare
// equal to the shared sentinels under errors.Is.
func (e *Error) Is(target error) bool {
	terr, ok := target.(*Error)
	return ok && terr.Code == e.Code
}

var (
	// ErrIndexOutOfBound fails an indexed read past the end of its source.
	// Iteration uses it as the end-of-sequence signal; it is never the
	// outcome of a whole verification.
	ErrIndexOutOfBound = &Error{Code: CodeIndexOutOfBound, Msg: "index out of bound"}
	// ErrItemMissing fails a read of an item that does not exist.
	ErrItemMissing = &Error{Code: CodeItemMissing, Msg: "item missing"}
	// ErrLengthNotEnough fails a partial read into a short buffer.
	ErrLengthNotEnough = &Error{Code: CodeLengthNotEnough, Msg: "length not enough"}
	// ErrEncoding rejects a cell whose data payload is not a well formed
	// token amount.
	ErrEncoding = &Error{Code: CodeEncoding, Msg: "malformed data payload"}

	// ErrArgsLen rejects a script argument slot shorter than the guard's
	// layout.
	ErrArgsLen = &Error{Code: CodeArgsLen, Msg: "script args too short"}
	// ErrAmountCkbytes rejects an exchange that does not add capacity to the
	// sale cell.
	ErrAmountCkbytes = &Error{Code: CodeAmountCkbytes, Msg: "sale capacity did not increase"}
	// ErrAmountSudt rejects an exchange that does not take tokens out of the
	// sale cell, or a token transfer that inflates supply.
	ErrAmountSudt = &Error{Code: CodeAmountSudt, Msg: "token balance did not decrease"}
	// ErrExchangeRate rejects an exchange where capacity added and tokens
	// removed disagree with the unit cost.
	ErrExchangeRate = &Error{Code: CodeExchangeRate, Msg: "capacity does not match tokens at unit cost"}
	// ErrInvalidCost rejects a sale configured with a zero unit cost.
	ErrInvalidCost = &Error{Code: CodeInvalidCost, Msg: "unit cost must be positive"}
	// ErrInvalidStructure rejects a transaction without exactly one sale
	// cell on each side, or a sale cell without a token type script.
	ErrInvalidStructure = &Error{Code: CodeInvalidStructure, Msg: "unexpected sale cell structure"}
	// ErrInvalidSignature rejects a witness that does not sign the
	// transaction for the declared public key.
	ErrInvalidSignature = &Error{Code: CodeInvalidSignature, Msg: "witness signature mismatch"}
)

// Engine level failures. These are not status codes: they describe the run,
// not the transaction, and are never mapped to the taxonomy.
var (
	// ErrCyclesExceeded is returned when verification runs past the cycle
	// ceiling.
	ErrCyclesExceeded = errors.New("cycle limit exceeded")
	// ErrMalformed is returned when the transaction fails structural checks
	// before any guard runs.
	ErrMalformed = errors.New("malformed transaction")
	// ErrInternal wraps defects in the host or a guard. Verification aborts
	// and the defect surfaces unmapped.
	ErrInternal = errors.New("internal error")
)

// ExitCode converts err into the status code surfaced as the transaction
// outcome. ok is false for nil and for any error outside the closed
// taxonomy, such as engine failures or guard defects.
func ExitCode(err error) (Code, bool) {
	var rejection *Error
	if errors.As(err, &rejection) {
		return rejection.Code, true
	}
	return 0, false
}
