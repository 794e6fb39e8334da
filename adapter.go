package timelinedb

import "encoding/binary"

// LayoutAdapter converts between a scalar 8-bit interleaved buffer
// and the SIMD-aligned 8x16-bit layout. It is a reduced utility:
// narrowing discards the upper byte and does not clip, leaving
// saturation to the caller.
type LayoutAdapter struct{}

// PrepareSimdI16x8FromI8 allocates dst as Simd_I16x8 with 8 channels,
// the same sample count as src, stride 16, 16-byte aligned. It does
// not populate any channel; callers use WidenChannel per source
// channel afterward.
func (LayoutAdapter) PrepareSimdI16x8FromI8(src, dst *TimelineBuffer) error {
	return dst.Allocate(src.SampleCount, 8, 16, simdAlignment, SimdI16x8)
}

// WidenChannel copies src's srcChannel (i8, sign-extended) into lane
// dstChannel of dst (i16), for every sample.
func (LayoutAdapter) WidenChannel(src, dst *TimelineBuffer, srcChannel, dstChannel int) error {
	for i := 0; i < src.SampleCount; i++ {
		v, err := src.ReadI8(i, srcChannel)
		if err != nil {
			return err
		}
		off, err := dst.SampleByteOffset(i, dstChannel)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint16(dst.Storage()[off:off+2], uint16(int16(v)))
	}
	return nil
}

// NarrowToI8 truncates lane 0 of src (i16) into dst (i8) for every
// sample. dst must already be allocated as AnalogI8 with the same
// sample count as src.
func (LayoutAdapter) NarrowToI8(src, dst *TimelineBuffer) error {
	for i := 0; i < src.SampleCount; i++ {
		v, err := src.ReadI16Simd(i, 0)
		if err != nil {
			return err
		}
		off, err := dst.SampleByteOffset(i, 0)
		if err != nil {
			return err
		}
		dst.Storage()[off] = byte(int8(v))
	}
	return nil
}
