// Package hash provides the canonical digest used for scripts, cells and
// transactions, backed by pooled blake3 hashers.
package hash

const (
	// Size is the size in bytes of the canonical digest.
	Size = 32
)

// Sum computes a blake3 digest of the concatenation of chunks.
func Sum(chunks ...[]byte) (rst [Size]byte) {
	hasher := GetHasher()
	defer func() {
		hasher.Reset()
		PutHasher(hasher)
	}()
	for _, chunk := range chunks {
		hasher.Write(chunk)
	}
	hasher.Sum(rst[:0])
	return rst
}
