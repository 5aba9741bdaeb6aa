package types

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// TokenDataSize is the exact length of a token cell's data payload, a little
// endian unsigned 128 bit amount.
const TokenDataSize = 16

// TokenAmount decodes the little endian 128 bit amount carried in a token
// cell's data payload. ok is false unless data is exactly TokenDataSize bytes.
func TokenAmount(data []byte) (*uint256.Int, bool) {
	if len(data) != TokenDataSize {
		return nil, false
	}
	lo := binary.LittleEndian.Uint64(data[0:8])
	hi := binary.LittleEndian.Uint64(data[8:16])
	return &uint256.Int{lo, hi}, true
}

// TokenData encodes amount as a token cell data payload. It panics if amount
// does not fit in 128 bits.
func TokenData(amount *uint256.Int) []byte {
	if amount.BitLen() > 128 {
		panic("token amount overflows 128 bits")
	}
	data := make([]byte, TokenDataSize)
	binary.LittleEndian.PutUint64(data[0:8], amount[0])
	binary.LittleEndian.PutUint64(data[8:16], amount[1])
	return data
}
