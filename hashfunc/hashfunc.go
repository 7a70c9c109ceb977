package hashfunc

// HashAlgorithm - Interface that permits a table to use a custom hash function suited for its particular
// distribution of keys. The table reduces the returned value modulo its current number of buckets and applies
// quadratic probing on top of it, so an implementation only has to produce a deterministic value per key.
type HashAlgorithm interface {
	// HashFunc1 - Given key it generates a hash value. The same key must always give the same value for the
	// lifetime of a table, since resizing re-probes every key with it.
	HashFunc1(key string) uint64
}
