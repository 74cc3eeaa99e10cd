package common

import (
	"fmt"
	"sync"
)

// RingBuffer is a fixed-capacity rolling store of the most recent audio
// samples. Once full, each push evicts exactly the oldest sample. Push and
// the snapshot copy are mutually exclusive so the capture layer can write
// from an audio callback while a reader materializes snapshots.
type RingBuffer struct {
	mu    sync.Mutex
	data  []float64
	start int
	count int
}

// NewRingBuffer creates a ring buffer with the given capacity.
// A non-positive capacity is a configuration error.
func NewRingBuffer(capacity int) (*RingBuffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ring buffer capacity must be positive: %d", capacity)
	}
	return &RingBuffer{
		data: make([]float64, capacity),
	}, nil
}

// Push appends one sample, evicting the oldest if at capacity. O(1), no
// reallocation.
func (rb *RingBuffer) Push(sample float64) {
	rb.mu.Lock()
	rb.push(sample)
	rb.mu.Unlock()
}

// PushBatch appends samples in order, evicting as needed.
func (rb *RingBuffer) PushBatch(samples []float64) {
	rb.mu.Lock()
	for _, s := range samples {
		rb.push(s)
	}
	rb.mu.Unlock()
}

func (rb *RingBuffer) push(sample float64) {
	capacity := len(rb.data)
	if rb.count < capacity {
		rb.data[(rb.start+rb.count)%capacity] = sample
		rb.count++
		return
	}
	// Full: overwrite the oldest slot and advance the logical start
	rb.data[rb.start] = sample
	rb.start = (rb.start + 1) % capacity
}

// Samples returns a newly materialized copy of all held samples in
// chronological insertion order, oldest first. O(count).
func (rb *RingBuffer) Samples() []float64 {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	out := make([]float64, rb.count)
	capacity := len(rb.data)
	for i := 0; i < rb.count; i++ {
		out[i] = rb.data[(rb.start+i)%capacity]
	}
	return out
}

// Len returns the number of samples currently held.
func (rb *RingBuffer) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

// Capacity returns the fixed capacity of the backing store.
func (rb *RingBuffer) Capacity() int {
	return len(rb.data)
}

// Clear resets the count to zero without reallocating the backing store,
// readying the buffer for a new recording session.
func (rb *RingBuffer) Clear() {
	rb.mu.Lock()
	rb.start = 0
	rb.count = 0
	rb.mu.Unlock()
}
