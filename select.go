package fastshard

import "github.com/unkn0wn-root/fastshard/internal/cpufeat"

// CapabilityProbe reports whether an algorithm can run on the current
// platform. Probes must be pure reads: the engine may call them on every
// Shard invocation from any number of goroutines.
type CapabilityProbe func(Algorithm) bool

// platformCapabilities answers from process-wide CPU feature flags.
// The flags are read once at process init, so a probe is a plain bool load.
// Fnv1a and Xxh3 need no hardware support and are always available.
func platformCapabilities(a Algorithm) bool {
	switch a {
	case Avx512:
		return cpufeat.HasAVX512()
	case Avx2:
		return cpufeat.HasAVX2()
	case AesNi:
		return cpufeat.HasAES()
	case Fnv1a, Xxh3:
		return true
	default:
		return false
	}
}

// selectAlgorithm returns the first preference entry whose capability probe
// answers true. ok is false when the list is exhausted without a hit (every
// entry hardware-gated and unsupported); the caller then gets the fixed
// final fallback Xxh3, which is valid on any platform.
func selectAlgorithm(prefs []Algorithm, probe CapabilityProbe) (algo Algorithm, ok bool) {
	for _, a := range prefs {
		if probe(a) {
			return a, true
		}
	}
	return Xxh3, false
}
