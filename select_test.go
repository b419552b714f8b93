package fastshard

import "testing"

// probeFor builds a capability probe that answers true only for the given
// algorithms. Fnv1a and Xxh3 stay unconditionally available, matching the
// platform probe's contract.
func probeFor(available ...Algorithm) CapabilityProbe {
	set := make(map[Algorithm]bool, len(available))
	for _, a := range available {
		set[a] = true
	}
	return func(a Algorithm) bool {
		if a == Fnv1a || a == Xxh3 {
			return true
		}
		return set[a]
	}
}

func TestSelectAlgorithmFirstAvailableWins(t *testing.T) {
	tests := []struct {
		name  string
		prefs []Algorithm
		probe CapabilityProbe
		want  Algorithm
	}{
		{
			name:  "most preferred available",
			prefs: []Algorithm{Avx512, Avx2, AesNi, Fnv1a, Xxh3},
			probe: probeFor(Avx512, Avx2, AesNi),
			want:  Avx512,
		},
		{
			name:  "gated entries skipped in order",
			prefs: []Algorithm{Avx512, Avx2, AesNi, Fnv1a, Xxh3},
			probe: probeFor(AesNi),
			want:  AesNi,
		},
		{
			name:  "non-cryptographic entry acts as natural fallback",
			prefs: []Algorithm{Avx512, Avx2, AesNi, Fnv1a, Xxh3},
			probe: probeFor(),
			want:  Fnv1a,
		},
		{
			name:  "preference order decides among always-available",
			prefs: []Algorithm{Xxh3, Fnv1a},
			probe: probeFor(Avx512, Avx2, AesNi),
			want:  Xxh3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := selectAlgorithm(tt.prefs, tt.probe)
			if !ok {
				t.Fatalf("selectAlgorithm reported exhaustion, want %v", tt.want)
			}
			if got != tt.want {
				t.Errorf("selectAlgorithm = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectAlgorithmExhaustedFallsBackToXxh3(t *testing.T) {
	// All entries hardware-gated and none supported: fixed final fallback.
	got, ok := selectAlgorithm([]Algorithm{Avx512, Avx2, AesNi}, func(Algorithm) bool { return false })
	if ok {
		t.Error("selectAlgorithm reported success on an exhausted list")
	}
	if got != Xxh3 {
		t.Errorf("exhausted fallback = %v, want Xxh3", got)
	}

	// Empty list degenerates the same way (construction rejects it, but
	// selection must not misbehave if handed one).
	got, ok = selectAlgorithm(nil, platformCapabilities)
	if ok || got != Xxh3 {
		t.Errorf("selectAlgorithm(nil) = (%v, %v), want (Xxh3, false)", got, ok)
	}
}

func TestPlatformCapabilitiesSoftwareAlwaysAvailable(t *testing.T) {
	if !platformCapabilities(Fnv1a) {
		t.Error("Fnv1a must always probe available")
	}
	if !platformCapabilities(Xxh3) {
		t.Error("Xxh3 must always probe available")
	}
	if platformCapabilities(Algorithm(42)) {
		t.Error("unknown algorithm must never probe available")
	}
}
