package timelinedb

import "github.com/bfarago/timelinedb/internal/layout"

// Layout is the closed sum type identifying how a TimelineBuffer's
// storage encodes its samples.
type Layout = layout.Kind

// The complete set of sample layouts. Digital1/4/8 pack sub-byte or
// byte-wide digital channels; AnalogI8/F32/F64 are plain scalar
// numeric layouts; SimdI16x8 is the fixed 8-lane, 16-byte-stride
// layout used by the SIMD kernels, and SimdI24x8 holds 8 lanes in
// 32-bit slots (32-byte stride).
const (
	LayoutUndefined = layout.Undefined
	Digital1        = layout.Digital1
	Digital4        = layout.Digital4
	Digital8        = layout.Digital8
	AnalogI8        = layout.AnalogI8
	AnalogF32       = layout.AnalogF32
	AnalogF64       = layout.AnalogF64
	SimdI16x8       = layout.SimdI16x8
	SimdI24x8       = layout.SimdI24x8
)
