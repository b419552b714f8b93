// Package cpufeat exposes the CPU features the hardware-gated shard
// algorithms depend on.
//
// Flags are set once by a platform-specific init and never written again,
// so the accessors are race-free to call from any goroutine. On
// architectures without a platform init the flags stay false and the
// hardware-gated algorithms simply never probe available.
package cpufeat

var (
	hasAVX512F bool
	hasAVX2    bool
	hasAES     bool
)

// HasAVX512 reports AVX-512 Foundation support.
func HasAVX512() bool { return hasAVX512F }

// HasAVX2 reports AVX2 support.
func HasAVX2() bool { return hasAVX2 }

// HasAES reports AES-NI support.
func HasAES() bool { return hasAES }
