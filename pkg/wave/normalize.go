// Package wave converts variable-length audio sample buffers into
// fixed-length summary arrays for visualization.
//
// The input is a buffer of time-domain amplitude samples in [-1, 1], as
// produced by capture or playback collaborators. Normalize reduces or expands
// it to exactly m values: downsampling aggregates per bucket (peak or mean of
// absolute values), upsampling interpolates linearly between samples.
//
// Usage:
//
//	summary, err := wave.Normalize(samples, 10, wave.ModePeak, true)
package wave

import (
	"fmt"
	"math"
)

// Mode selects how the samples of one bucket are aggregated when downsampling.
type Mode int

const (
	// ModePeak keeps the maximum absolute value per bucket.
	ModePeak Mode = iota
	// ModeAverage keeps the mean absolute value per bucket.
	ModeAverage
)

func (m Mode) String() string {
	switch m {
	case ModePeak:
		return "peak"
	case ModeAverage:
		return "average"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// defaultNormalizer backs the package-level Normalize convenience function.
var defaultNormalizer = NewNormalizer(DefaultCacheSize)

// Normalize resamples buffer to exactly m values using the package default
// Normalizer. See Normalizer.Normalize.
func Normalize(buffer []float32, m int, mode Mode, memoize bool) ([]float32, error) {
	return defaultNormalizer.Normalize(buffer, m, mode, memoize)
}

// Normalizer resamples sample buffers and owns the cache that memoizes its
// results. The zero value is not usable; construct with NewNormalizer.
type Normalizer struct {
	cache *SummaryCache
}

// NewNormalizer creates a Normalizer whose cache holds at most cacheSize
// entries. A non-positive cacheSize falls back to DefaultCacheSize.
func NewNormalizer(cacheSize int) *Normalizer {
	return &Normalizer{cache: NewSummaryCache(cacheSize)}
}

// Cache exposes the normalizer's summary cache for explicit eviction.
func (nr *Normalizer) Cache() *SummaryCache {
	return nr.cache
}

// Normalize resamples buffer to exactly m values.
//
// For m <= len(buffer) the samples are partitioned into m buckets by
// bucket(i) = i*m/len(buffer) and aggregated per mode; buckets that receive
// no samples stay 0. For m > len(buffer) the output is a linear interpolation
// over fractional source positions, clamped to the last sample at the
// boundary.
//
// With memoize set, a repeated call with the same buffer instance and the
// same (m, mode) returns the previously computed slice without recomputation.
// Returns ErrInvalidArgument when m <= 0 or the buffer is empty.
func (nr *Normalizer) Normalize(buffer []float32, m int, mode Mode, memoize bool) ([]float32, error) {
	if m <= 0 {
		return nil, fmt.Errorf("target length %d: %w", m, ErrInvalidArgument)
	}
	if len(buffer) == 0 {
		return nil, fmt.Errorf("empty sample buffer: %w", ErrInvalidArgument)
	}

	if memoize {
		if out, ok := nr.cache.Get(buffer, m, mode); ok {
			return out, nil
		}
	}

	var out []float32
	if m <= len(buffer) {
		out = downsample(buffer, m, mode)
	} else {
		out = upsample(buffer, m)
	}

	if memoize {
		nr.cache.Put(buffer, m, mode, out)
	}
	return out, nil
}

// downsample aggregates the n input samples into m buckets.
func downsample(buffer []float32, m int, mode Mode) []float32 {
	n := len(buffer)
	out := make([]float32, m)
	counts := make([]int, m)

	for i, s := range buffer {
		b := i * m / n
		a := abs32(s)
		switch mode {
		case ModeAverage:
			out[b] += a
		default:
			if a > out[b] {
				out[b] = a
			}
		}
		counts[b]++
	}

	if mode == ModeAverage {
		for b := range out {
			// A bucket can stay empty when m does not divide n; keep it 0.
			if counts[b] > 0 {
				out[b] /= float32(counts[b])
			}
		}
	}
	return out
}

// upsample expands the input to m values by linear interpolation.
func upsample(buffer []float32, m int) []float32 {
	n := len(buffer)
	out := make([]float32, m)
	if m == 1 {
		out[0] = buffer[0]
		return out
	}

	for i := range out {
		pos := float64(i) * float64(n-1) / float64(m-1)
		low := int(math.Floor(pos))
		high := int(math.Ceil(pos))
		if high >= n {
			out[i] = buffer[n-1]
			continue
		}
		t := pos - float64(low)
		out[i] = float32(float64(buffer[low])*(1-t) + float64(buffer[high])*t)
	}
	return out
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
