// SPDX-License-Identifier: EPL-2.0

package voxpad

// SampleBuffer is the single recording arena of the pipeline: a fixed-length
// sequence of unsigned samples allocated once and reused for the life of the
// process. Each capture overwrites it wholesale; each playback reads it
// wholesale. It is never resized.
//
// The buffer has no lock. The Looper's state machine is the only authority
// granting access, and its states make a concurrent reader and writer
// impossible: capture runs only in Recording, playback only in Playing, and
// the two states exclude each other.
type SampleBuffer struct {
	data []uint16
}

// NewSampleBuffer allocates a buffer of n samples, all zero.
func NewSampleBuffer(n int) *SampleBuffer {
	return &SampleBuffer{data: make([]uint16, n)}
}

// Len returns the fixed capacity of the buffer.
func (b *SampleBuffer) Len() int {
	return len(b.data)
}

// Snapshot returns a copy of the stored samples. Taking a snapshot while a
// capture is in progress yields a mix of old and new samples; call it
// between phases for a coherent view.
func (b *SampleBuffer) Snapshot() []uint16 {
	out := make([]uint16, len(b.data))
	copy(out, b.data)
	return out
}
