package fastshard

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
)

// Wire form of a Config: a CBOR body followed by an 8-byte big-endian
// xxhash64 checksum of the body. Shard placement is only stable across
// processes that run the exact same config, so fleets ship one encoded
// config around instead of rebuilding it per node; the checksum catches
// truncation or corruption in transit. Algorithms travel by name so
// payloads survive reordering of the Algorithm tags between versions.

const checksumSize = 8

type wireTier struct {
	Min   uint64   `cbor:"lo"`
	Max   uint64   `cbor:"hi"`
	Algos []string `cbor:"a"`
}

type wireConfig struct {
	Tiers    []wireTier `cbor:"t"`
	Defaults []string   `cbor:"d"`
}

// MarshalBinary encodes the config for transport between processes.
func (c Config) MarshalBinary() ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	w := wireConfig{
		Tiers:    make([]wireTier, len(c.Tiers)),
		Defaults: algorithmNames(c.DefaultAlgorithms),
	}
	for i, t := range c.Tiers {
		w.Tiers[i] = wireTier{
			Min:   uint64(t.MinSize),
			Max:   uint64(t.MaxSize),
			Algos: algorithmNames(t.Algorithms),
		}
	}

	body, err := cbor.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	out := make([]byte, len(body)+checksumSize)
	copy(out, body)
	binary.BigEndian.PutUint64(out[len(body):], xxhash.Sum64(body))
	return out, nil
}

// UnmarshalBinary decodes and validates a payload produced by MarshalBinary.
// The decoded config passes the same validation as construction, so a
// successfully decoded config is always usable with NewWithConfig.
func (c *Config) UnmarshalBinary(data []byte) error {
	if len(data) < checksumSize {
		return fmt.Errorf("payload too short (%d bytes): %w", len(data), ErrBadConfigPayload)
	}

	body := data[:len(data)-checksumSize]
	want := binary.BigEndian.Uint64(data[len(data)-checksumSize:])
	if got := xxhash.Sum64(body); got != want {
		return fmt.Errorf("checksum mismatch: %w", ErrBadConfigPayload)
	}

	var w wireConfig
	if err := cbor.Unmarshal(body, &w); err != nil {
		return fmt.Errorf("decode config: %w: %v", ErrBadConfigPayload, err)
	}

	decoded := Config{Tiers: make([]Tier, len(w.Tiers))}
	for i, wt := range w.Tiers {
		algos, err := parseAlgorithmNames(wt.Algos)
		if err != nil {
			return fmt.Errorf("tier %d: %w", i, err)
		}
		decoded.Tiers[i] = Tier{
			MinSize:    sizeFromWire(wt.Min),
			MaxSize:    sizeFromWire(wt.Max),
			Algorithms: algos,
		}
	}
	defaults, err := parseAlgorithmNames(w.Defaults)
	if err != nil {
		return fmt.Errorf("default algorithms: %w", err)
	}
	decoded.DefaultAlgorithms = defaults

	if err := decoded.validate(); err != nil {
		return err
	}
	*c = decoded
	return nil
}

// sizeFromWire converts a wire bound back to a key length. A bound beyond
// this platform's int range can only mean "unbounded" (lengths are ints),
// so it clamps to SizeUnbounded instead of overflowing.
func sizeFromWire(v uint64) int {
	if v >= uint64(SizeUnbounded) {
		return SizeUnbounded
	}
	return int(v)
}

func algorithmNames(algos []Algorithm) []string {
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.String()
	}
	return names
}

func parseAlgorithmNames(names []string) ([]Algorithm, error) {
	algos := make([]Algorithm, len(names))
	for i, n := range names {
		a, ok := ParseAlgorithm(n)
		if !ok {
			return nil, fmt.Errorf("%q: %w", n, ErrUnknownAlgorithm)
		}
		algos[i] = a
	}
	return algos, nil
}
