package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spacemeshos/go-scale"

	"github.com/cellmeshos/go-cellmesh/hash"
)

const (
	// Hash32Length is 32, the expected length of the hash.
	Hash32Length = 32
)

// Hash32 represents the 32-byte blake3 hash of arbitrary data.
type Hash32 [Hash32Length]byte

// EmptyHash32 is a hash of all zeroes.
var EmptyHash32 = Hash32{}

// CalcHash32 returns the 32-byte blake3 digest of the given data.
func CalcHash32(data []byte) Hash32 {
	return hash.Sum(data)
}

// Bytes gets the byte representation of the underlying hash.
func (h Hash32) Bytes() []byte { return h[:] }

// Hex converts a hash to a hex string.
func (h Hash32) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// String implements the stringer interface and is used also by the logger when
// doing full logging into a file.
func (h Hash32) String() string { return h.Hex() }

// ShortString returns a the first 10 hex characters of the hash, for logging purposes.
func (h Hash32) ShortString() string {
	return hex.EncodeToString(h[:5])
}

// Format implements fmt.Formatter, forcing the byte slice to be formatted as is,
// without going through the stringer interface used for logging.
func (h Hash32) Format(s fmt.State, c rune) {
	_, _ = fmt.Fprintf(s, "%"+string(c), h[:])
}

// SetBytes sets the hash to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash32) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-Hash32Length:]
	}
	copy(h[Hash32Length-len(b):], b)
}

// BytesToHash sets b to hash.
// If b is larger than len(h), b will be cropped from the left.
func BytesToHash(b []byte) Hash32 {
	var h Hash32
	h.SetBytes(b)
	return h
}

// HexToHash32 sets byte representation of s to hash.
// If the decoded slice is larger than len(h), it will be cropped from the left.
func HexToHash32(s string) Hash32 {
	b, _ := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	return BytesToHash(b)
}

// MarshalText returns the hex representation of h.
func (h Hash32) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash32) UnmarshalText(input []byte) error {
	decoded, err := hex.DecodeString(strings.TrimPrefix(string(input), "0x"))
	if err != nil {
		return fmt.Errorf("decode hash hex: %w", err)
	}
	if len(decoded) != Hash32Length {
		return fmt.Errorf("decode hash: expected %d bytes, got %d", Hash32Length, len(decoded))
	}
	copy(h[:], decoded)
	return nil
}

// EncodeScale implements scale codec interface.
func (h *Hash32) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, h[:])
}

// DecodeScale implements scale codec interface.
func (h *Hash32) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, h[:])
}
