// Package simdops wraps github.com/tphakala/simd's float32/float64
// primitives behind one generic entry point, adapted from the
// teacher's internal/simdops package. Only the primitives this
// repository's supplemental AnalogF32/AnalogF64 sample-rate-conversion
// path actually calls are kept: Scale, for the two-tap weighted blend.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-backed operations for type F.
type Ops[F Float] struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s.
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{Scale: f32.Scale}
	ops64 = Ops[float64]{Scale: f64.Scale}
)

// For returns the Ops instance for type F. The type switch happens at
// call time, not per-element, so it stays out of hot loops.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}
