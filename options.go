package strhashmap

import "github.com/gostonefire/strhashmap/hashfunc"

type options struct {
	hashAlgorithm hashfunc.HashAlgorithm
	memoryLimit   int64
	sizeIndex     int
	logger        *Logger
}

// Option configures NewTable and NewTyped.
type Option func(*options)

// WithHashAlgorithm replaces the polynomial string hash with a custom one.
//
// If nil is passed, the polynomial hash is used.
func WithHashAlgorithm(hashAlgorithm hashfunc.HashAlgorithm) Option {
	return func(o *options) {
		o.hashAlgorithm = hashAlgorithm
	}
}

// WithMemoryLimit caps the bytes used for value storage. Operations that would need more fail with
// AllocationFailed and leave the table unchanged. 0 (the default) means no limit.
func WithMemoryLimit(limit int64) Option {
	return func(o *options) {
		o.memoryLimit = limit
	}
}

// WithInitialSizeIndex starts the table at a bigger size than the smallest prime.
func WithInitialSizeIndex(sizeIndex int) Option {
	return func(o *options) {
		o.sizeIndex = sizeIndex
	}
}

// WithLogger sets the logger used to report resizes and allocation failures.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
