package fastshard

// FNV-1a 64-bit parameters.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// fnvDigest64 computes standard 64-bit FNV-1a over key:
// start from the offset basis, then for each byte XOR into the hash and
// multiply by the FNV prime. XOR-before-multiply is what makes this FNV-1a
// rather than FNV-1. The digest is left unfolded so it stays bit-compatible
// with hash/fnv and with FNV-1a implementations on other shard clients.
func fnvDigest64(key []byte) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime64
	}
	return h
}
