package fastshard

import "github.com/zeebo/xxh3"

// digest computes the 64-bit digest of key under the selected algorithm.
// Every branch is deterministic for a given key, so shard placement is
// stable as long as the engine configuration is.
func digest(algo Algorithm, key []byte) uint64 {
	switch algo {
	case Avx512:
		return digestAvx512(key)
	case Avx2:
		return digestAvx2(key)
	case AesNi:
		return digestAesNi(key)
	case Fnv1a:
		return fnvDigest64(key)
	default:
		return xxh3.Hash(key)
	}
}

// The hardware-selected branches have no dedicated kernels yet. They
// substitute the XXH3 digest so a missing fast path degrades performance,
// never correctness — same policy as an absent capability.

func digestAvx512(key []byte) uint64 {
	// TODO: dedicated AVX-512 kernel
	return xxh3.Hash(key)
}

func digestAvx2(key []byte) uint64 {
	// TODO: dedicated AVX2 kernel
	return xxh3.Hash(key)
}

func digestAesNi(key []byte) uint64 {
	// TODO: dedicated AES-NI kernel
	return xxh3.Hash(key)
}
