// Package storage manages the aligned byte regions backing a
// TimelineBuffer. It is adapted from the teacher's circular
// pipeline.RingBuffer: instead of a wrapping float64 stream between
// pipeline stages, it owns one growable byte slice whose usable
// window always starts at the requested alignment boundary, matching
// the "allocate once, reallocate on resize, free" lifecycle of a
// timeline buffer rather than a streaming producer/consumer buffer.
package storage

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrAllocFailed is returned when an aligned region cannot be sized
// or an invalid alignment/size is requested.
var ErrAllocFailed = errors.New("storage: aligned allocation failed")

// AlignedBuffer owns one aligned byte region.
type AlignedBuffer struct {
	raw       []byte
	data      []byte
	alignment int
}

// New allocates size bytes such that Bytes() starts at an address
// divisible by alignment. alignment must be a power of two; 0 or 1
// disables alignment padding.
func New(size int, alignment int) (*AlignedBuffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocFailed, size)
	}
	if alignment < 1 {
		alignment = 1
	}
	if alignment&(alignment-1) != 0 {
		return nil, fmt.Errorf("%w: alignment %d is not a power of two", ErrAllocFailed, alignment)
	}

	b := &AlignedBuffer{alignment: alignment}
	b.grow(size)
	return b, nil
}

// grow reallocates the backing slice so at least size aligned bytes
// are available, preserving no data (its callers, New and Realloc,
// both start from an empty region).
func (b *AlignedBuffer) grow(size int) {
	if size == 0 {
		b.raw = nil
		b.data = nil
		return
	}
	b.raw = make([]byte, size+b.alignment-1)
	offset := alignmentPadding(b.raw, b.alignment)
	b.data = b.raw[offset : offset+size]
}

// alignmentPadding returns how many leading bytes of raw must be
// skipped so the remaining slice starts at an alignment-byte boundary.
func alignmentPadding(raw []byte, alignment int) int {
	if len(raw) == 0 || alignment <= 1 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&raw[0]))
	mod := int(addr % uintptr(alignment))
	if mod == 0 {
		return 0
	}
	return alignment - mod
}

// Bytes returns the aligned, usable byte region.
func (b *AlignedBuffer) Bytes() []byte {
	return b.data
}

// Len returns the size of the aligned region in bytes.
func (b *AlignedBuffer) Len() int {
	return len(b.data)
}

// Alignment returns the alignment this buffer was constructed with.
func (b *AlignedBuffer) Alignment() int {
	return b.alignment
}

// IsAligned reports whether the current region's base address
// satisfies the configured alignment. Kept for debug assertions per
// spec §5's "implementers should assert in debug builds" guidance.
func (b *AlignedBuffer) IsAligned() bool {
	if len(b.data) == 0 {
		return true
	}
	addr := uintptr(unsafe.Pointer(&b.data[0]))
	return addr%uintptr(b.alignment) == 0
}

// Realloc frees the current region and allocates a new one of size
// bytes at the same alignment, matching the "freed then re-allocated"
// buffer lifecycle.
func (b *AlignedBuffer) Realloc(size int) {
	b.grow(size)
}

// Free releases the region.
func (b *AlignedBuffer) Free() {
	b.raw = nil
	b.data = nil
}
