package strhashmap

import "github.com/gostonefire/strhashmap/crt"

// NoRecordFound - Returned when a key is not present in the table
type NoRecordFound = crt.NoRecordFound

// AllocationFailed - Returned when growing the table would exceed its memory limit, the table is then unchanged
type AllocationFailed = crt.AllocationFailed

// SizeTooSmall - Returned by Resize when the requested size can not hold the current records
type SizeTooSmall = crt.SizeTooSmall

// InvalidSizeIndex - Returned when a size index is outside the prime size table
type InvalidSizeIndex = crt.InvalidSizeIndex

// ProbingAlgorithm - Returned when the probe sequence did not reach a free bucket. Growth in Set keeps the table
// at most half full so it does not occur there, but an explicit Resize to a size more than half full can hit it
type ProbingAlgorithm = crt.ProbingAlgorithm
