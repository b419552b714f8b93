package fastshard

// contains reports whether size falls within the tier's inclusive range.
func (t Tier) contains(size int) bool {
	return size >= t.MinSize && size <= t.MaxSize
}

// algorithmsFor resolves a key length to its algorithm preference list.
// Tiers are scanned in configured order and the first containing tier wins;
// overlapping ranges are resolved by position, not by narrowness. Lengths no
// tier covers fall through to DefaultAlgorithms, so resolution is total.
func (c Config) algorithmsFor(size int) []Algorithm {
	for _, t := range c.Tiers {
		if t.contains(size) {
			return t.Algorithms
		}
	}
	return c.DefaultAlgorithms
}

// clone deep-copies the config so the engine's tiers cannot be mutated
// through slices the caller still holds.
func (c Config) clone() Config {
	out := Config{
		Tiers:             make([]Tier, len(c.Tiers)),
		DefaultAlgorithms: append([]Algorithm(nil), c.DefaultAlgorithms...),
	}
	for i, t := range c.Tiers {
		out.Tiers[i] = Tier{
			MinSize:    t.MinSize,
			MaxSize:    t.MaxSize,
			Algorithms: append([]Algorithm(nil), t.Algorithms...),
		}
	}
	return out
}
