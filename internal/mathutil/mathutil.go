package mathutil

// IsPowerOfTwo reports whether n is a power of two.
func IsPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// ShardIndex reduces a 64-bit digest to an index in [0, shards).
// Power-of-two shard counts take a mask (same result as modulo, cheaper);
// arbitrary counts use the modulo directly.
func ShardIndex(digest uint64, shards uint32) uint32 {
	if shards <= 1 {
		return 0
	}
	if IsPowerOfTwo(uint64(shards)) {
		return uint32(digest & uint64(shards-1))
	}
	return uint32(digest % uint64(shards))
}
