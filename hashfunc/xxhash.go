package hashfunc

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Hash algorithm based on xxHash64, a better spread than the polynomial default for keys
// that are not lowercase words.
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// HashFunc1 - Given key it generates a 64-bit xxHash value
func (X *XXHashAlgorithm) HashFunc1(key string) uint64 {
	return xxhash.Sum64String(key)
}
