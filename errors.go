package fastshard

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroShardCount — shard count must be positive; zero would make the
	// modulo reduction undefined.
	ErrZeroShardCount = errors.New("shard count must be positive")
	// ErrNoAlgorithms — a tier or default preference list is empty.
	ErrNoAlgorithms = errors.New("empty algorithm list")
	// ErrInvalidTier — a tier's size range is malformed.
	ErrInvalidTier = errors.New("invalid tier size range")
	// ErrUnknownAlgorithm — an algorithm tag or name outside the declared set.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrBadConfigPayload — an encoded config failed checksum or decoding.
	ErrBadConfigPayload = errors.New("malformed config payload")
)

// validate rejects configs that would leave Shard without a defined
// selection outcome. Called at construction and on wire decode.
func (c Config) validate() error {
	if len(c.DefaultAlgorithms) == 0 {
		return fmt.Errorf("default algorithms: %w", ErrNoAlgorithms)
	}
	for _, a := range c.DefaultAlgorithms {
		if !a.known() {
			return fmt.Errorf("default algorithms: %d: %w", a, ErrUnknownAlgorithm)
		}
	}
	for i, t := range c.Tiers {
		if t.MinSize < 0 || t.MinSize > t.MaxSize {
			return fmt.Errorf("tier %d: range [%d, %d]: %w", i, t.MinSize, t.MaxSize, ErrInvalidTier)
		}
		if len(t.Algorithms) == 0 {
			return fmt.Errorf("tier %d: %w", i, ErrNoAlgorithms)
		}
		for _, a := range t.Algorithms {
			if !a.known() {
				return fmt.Errorf("tier %d: %d: %w", i, a, ErrUnknownAlgorithm)
			}
		}
	}
	return nil
}
