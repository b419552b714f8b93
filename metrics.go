package fastshard

// Metrics exposes selection-level observability hooks. Implementations must
// be safe for concurrent use; Shard calls them without synchronization.
type Metrics interface {
	// Selected reports the algorithm a key was routed with.
	Selected(a Algorithm)
	// Exhausted reports that a preference list had no available entry and
	// the fixed final fallback was used instead.
	Exhausted()
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is the default when no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Selected(Algorithm) {}
func (NoopMetrics) Exhausted()         {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
