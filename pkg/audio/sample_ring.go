// Package audio provides the sample plumbing between audio capture/playback
// and the visualization core.
//
// SampleRing implements a fixed-size circular buffer of amplitude samples.
// Capture and playback callbacks write into it from the audio thread; the
// animation tick reads the most recent window out of it.
//
// Main features:
//   - Fixed capacity in samples, oldest data overwritten when full
//   - Thread-safe read/write operations
//   - Latest(n) answers the "give me the latest n samples" query per tick
//
// Usage:
//
//	ring := audio.NewSampleRing(16000) // 1s at 16kHz
//	ring.Write(samples)
//	window := ring.Samples(256)
package audio

import (
	"sync"
)

// DefaultRingCapacity holds one second of 16kHz mono audio.
const DefaultRingCapacity = 16000

// SampleRing is a fixed-size circular buffer of float32 amplitude samples.
type SampleRing struct {
	data     []float32
	capacity int // total capacity in samples
	writePos int // next write position
	size     int // current sample count (may be less than capacity initially)
	mu       sync.Mutex
}

// NewSampleRing creates a ring holding at most capacity samples. A
// non-positive capacity falls back to DefaultRingCapacity.
func NewSampleRing(capacity int) *SampleRing {
	if capacity <= 0 {
		capacity = DefaultRingCapacity
	}
	return &SampleRing{
		data:     make([]float32, capacity),
		capacity: capacity,
	}
}

// Write appends samples to the ring. If the ring is full, oldest samples are
// overwritten.
func (sr *SampleRing) Write(samples []float32) {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	n := len(samples)
	if n == 0 {
		return
	}

	// If the incoming chunk exceeds capacity, only the tail survives anyway.
	if n >= sr.capacity {
		copy(sr.data, samples[n-sr.capacity:])
		sr.writePos = 0
		sr.size = sr.capacity
		return
	}

	spaceToEnd := sr.capacity - sr.writePos
	if n <= spaceToEnd {
		copy(sr.data[sr.writePos:], samples)
		sr.writePos += n
		if sr.writePos == sr.capacity {
			sr.writePos = 0
		}
	} else {
		copy(sr.data[sr.writePos:], samples[:spaceToEnd])
		copy(sr.data[0:], samples[spaceToEnd:])
		sr.writePos = n - spaceToEnd
	}

	sr.size += n
	if sr.size > sr.capacity {
		sr.size = sr.capacity
	}
}

// Samples returns up to n of the most recent samples in chronological order.
// The result is a fresh slice; it returns fewer than n samples when the ring
// holds fewer, and nil when it is empty.
func (sr *SampleRing) Samples(n int) []float32 {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if sr.size == 0 || n <= 0 {
		return nil
	}
	if n > sr.size {
		n = sr.size
	}

	out := make([]float32, n)
	// The most recent sample sits just before writePos.
	start := sr.writePos - n
	if start >= 0 {
		copy(out, sr.data[start:sr.writePos])
	} else {
		start += sr.capacity
		firstPart := sr.capacity - start
		copy(out[:firstPart], sr.data[start:])
		copy(out[firstPart:], sr.data[:sr.writePos])
	}
	return out
}

// Len returns the current number of buffered samples.
func (sr *SampleRing) Len() int {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return sr.size
}

// Capacity returns the total capacity in samples.
func (sr *SampleRing) Capacity() int {
	return sr.capacity
}

// Clear resets the ring to the empty state.
func (sr *SampleRing) Clear() {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	sr.writePos = 0
	sr.size = 0
}
