// Package fastshard maps byte-string keys to shard indices. Keys are routed
// through size tiers: each tier pairs an inclusive key-length range with an
// ordered algorithm preference list, and the engine picks the first entry
// whose hardware capability is actually present on this machine.
package fastshard

import (
	"math"
	"strings"

	"github.com/unkn0wn-root/fastshard/internal/mathutil"
)

const (
	// SizeUnbounded marks a tier with no upper key-length limit.
	// Key lengths are ints, so an inclusive bound of math.MaxInt cannot
	// exclude any representable key.
	SizeUnbounded = math.MaxInt

	// Boundary between the small-key and large-key default tiers.
	smallKeyMax = 16
)

// Algorithm identifies a hashing strategy used for shard selection.
type Algorithm uint8

const (
	// Avx512 uses 512-bit SIMD lanes; gated on AVX-512F.
	Avx512 Algorithm = iota
	// Avx2 uses 256-bit SIMD lanes; gated on AVX2.
	Avx2
	// AesNi uses AES round instructions as a mixing primitive; gated on AES-NI.
	AesNi
	// Fnv1a is plain 64-bit FNV-1a; runs anywhere.
	Fnv1a
	// Xxh3 is 64-bit XXH3; runs anywhere.
	Xxh3
)

// String returns the stable lowercase name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Avx512:
		return "avx512"
	case Avx2:
		return "avx2"
	case AesNi:
		return "aesni"
	case Fnv1a:
		return "fnv1a"
	case Xxh3:
		return "xxh3"
	default:
		return "unknown"
	}
}

// ParseAlgorithm parses a name produced by Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avx512":
		return Avx512, true
	case "avx2":
		return Avx2, true
	case "aesni":
		return AesNi, true
	case "fnv1a":
		return Fnv1a, true
	case "xxh3":
		return Xxh3, true
	default:
		return Xxh3, false
	}
}

// known reports whether a is one of the declared variants.
func (a Algorithm) known() bool { return a <= Xxh3 }

// Tier binds an inclusive key-length range to an ordered algorithm
// preference list (first entry = most preferred).
type Tier struct {
	MinSize    int
	MaxSize    int // inclusive; SizeUnbounded for an open upper bound
	Algorithms []Algorithm
}

// Config holds the routing tiers and the preference list used when no tier
// matches a key's length. Tiers are matched in slice order: the first tier
// containing the length wins, even when ranges overlap.
type Config struct {
	Tiers             []Tier
	DefaultAlgorithms []Algorithm
}

// DefaultConfig returns the built-in tiering: keys up to 16 bytes try the
// hardware paths then FNV-1a before XXH3 (FNV's per-byte loop beats XXH3
// setup on tiny keys), longer keys swap that order, and anything unmatched
// goes straight to XXH3.
func DefaultConfig() Config {
	return Config{
		Tiers: []Tier{
			{
				MinSize:    0,
				MaxSize:    smallKeyMax,
				Algorithms: []Algorithm{Avx512, Avx2, AesNi, Fnv1a, Xxh3},
			},
			{
				MinSize:    smallKeyMax + 1,
				MaxSize:    SizeUnbounded,
				Algorithms: []Algorithm{Avx512, Avx2, AesNi, Xxh3, Fnv1a},
			},
		},
		DefaultAlgorithms: []Algorithm{Xxh3},
	}
}

// Engine routes keys to shards. It is immutable after construction and holds
// no internal mutable state, so one instance may be shared by any number of
// goroutines without synchronization.
type Engine struct {
	shardCount uint32
	config     Config
	probe      CapabilityProbe
	metrics    Metrics
}

// Option adjusts optional engine collaborators at construction.
type Option func(*Engine)

// WithCapabilities replaces the hardware capability probe. Mainly for tests
// that simulate platforms with a different feature set.
func WithCapabilities(probe CapabilityProbe) Option {
	return func(e *Engine) {
		if probe != nil {
			e.probe = probe
		}
	}
}

// WithMetrics attaches an observability sink for algorithm selection.
func WithMetrics(m Metrics) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// New builds an engine over DefaultConfig.
// shardCount must be positive.
func New(shardCount uint32, opts ...Option) (*Engine, error) {
	return NewWithConfig(shardCount, DefaultConfig(), opts...)
}

// NewWithConfig builds an engine with caller-supplied tiers. The shard count
// and every algorithm list are validated here so that Shard itself is total.
// The config is copied: the engine owns its tiers for its whole lifetime.
func NewWithConfig(shardCount uint32, config Config, opts ...Option) (*Engine, error) {
	if shardCount == 0 {
		return nil, ErrZeroShardCount
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		shardCount: shardCount,
		config:     config.clone(),
		probe:      platformCapabilities,
		metrics:    NoopMetrics{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ShardCount returns the number of shards keys are routed across.
func (e *Engine) ShardCount() uint32 { return e.shardCount }

// Shard returns the shard index for key, in [0, ShardCount()).
// Identical key and identical engine configuration always produce the same
// index; distribution across shards is not guaranteed to be uniform.
func (e *Engine) Shard(key []byte) uint32 {
	prefs := e.config.algorithmsFor(len(key))
	algo, ok := selectAlgorithm(prefs, e.probe)
	if !ok {
		e.metrics.Exhausted()
	}
	e.metrics.Selected(algo)
	return mathutil.ShardIndex(digest(algo, key), e.shardCount)
}
