package utils

import "github.com/gostonefire/strhashmap/internal/conf"

// MinSizeIndex - Returns the smallest index into conf.PrimeSizes whose size can hold count records while staying
// at most half full. If no size is big enough conf.PrimeSizeCount is returned, which is not a valid index.
func MinSizeIndex(count int64) (sizeIndex int) {
	for sizeIndex < conf.PrimeSizeCount {
		if conf.PrimeSizes[sizeIndex] >= count*conf.TargetLoadDivisor {
			return
		}
		sizeIndex++
	}

	return
}

// ProbeIndex - Returns the bucket to visit in iteration step of a quadratic probe, (hash + step*step) mod size.
// Both terms are reduced before adding so that a full 64-bit hash value can not wrap around.
func ProbeIndex(hash uint64, step, size int64) int64 {
	s := uint64(size)
	sq := uint64(step) % s
	sq = (sq * sq) % s

	return int64((hash%s + sq) % s)
}
