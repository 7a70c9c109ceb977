package hashfunc

import "github.com/gostonefire/strhashmap/internal/conf"

// PolynomialHashAlgorithm - The default hash algorithm. It is a polynomial rolling hash where every byte b
// contributes (b - 'a' + 1) * P^i modulo M, with P = 97 and M = 1 000 000 009.
//
// The formula is designed around lowercase letter keys. Other bytes give deterministic contributions computed
// with wrapping unsigned 64-bit arithmetic (a byte below 'a'-1 wraps around before being reduced). Bytes are unsigned,
// so a byte from 0x80 up enters the formula as 128 to 255, never as a negative value.
type PolynomialHashAlgorithm struct{}

// NewPolynomialHashAlgorithm - Returns a pointer to a new PolynomialHashAlgorithm instance
func NewPolynomialHashAlgorithm() *PolynomialHashAlgorithm {
	return &PolynomialHashAlgorithm{}
}

// HashFunc1 - Given key it generates the polynomial hash value
func (P *PolynomialHashAlgorithm) HashFunc1(key string) uint64 {
	var hash uint64
	pop := uint64(1)

	for i := 0; i < len(key); i++ {
		hash = (hash + (uint64(key[i])-'a'+1)*pop) % conf.PolynomialHashM
		pop = (pop * conf.PolynomialHashP) % conf.PolynomialHashM
	}

	return hash
}
