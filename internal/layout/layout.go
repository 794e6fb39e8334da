// Package layout implements the closed sum type behind a timeline
// buffer's sample encoding: which bit width, channel count and stride
// rule a given tag implies.
package layout

import "fmt"

// Kind tags one of the sample encodings a TimelineBuffer can hold.
type Kind int

const (
	// Undefined marks a buffer that has been initialized but not
	// yet allocated.
	Undefined Kind = iota

	// Digital1 packs 1-bit logic channels.
	Digital1
	// Digital4 packs 4-bit nibble channels.
	Digital4
	// Digital8 packs 8-bit digital channels.
	Digital8
	// AnalogI8 stores signed 8-bit analog samples.
	AnalogI8
	// AnalogF32 stores IEEE-754 single precision analog samples.
	AnalogF32
	// AnalogF64 stores IEEE-754 double precision analog samples.
	AnalogF64
	// SimdI16x8 stores exactly 8 signed 16-bit channels per sample,
	// stride fixed at 16 bytes regardless of active channel count.
	SimdI16x8
	// SimdI24x8 stores exactly 8 signed 24-bit-in-32-bit channels
	// per sample.
	SimdI24x8
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Digital1:
		return "digital1"
	case Digital4:
		return "digital4"
	case Digital8:
		return "digital8"
	case AnalogI8:
		return "analog_i8"
	case AnalogF32:
		return "analog_f32"
	case AnalogF64:
		return "analog_f64"
	case SimdI16x8:
		return "simd_i16x8"
	case SimdI24x8:
		return "simd_i24x8"
	default:
		return fmt.Sprintf("layout.Kind(%d)", int(k))
	}
}

// FixedChannels reports the channel count a SIMD layout mandates
// regardless of the caller's requested channel count, and whether the
// layout fixes one at all.
func (k Kind) FixedChannels() (channels int, fixed bool) {
	switch k {
	case SimdI16x8, SimdI24x8:
		return 8, true
	default:
		return 0, false
	}
}

// BitWidth returns the natural per-channel bit width implied by the
// layout kind. Digital and Simd kinds always carry a fixed bit width;
// Analog kinds also carry a fixed bit width so bitWidth is entirely
// derived from the layout tag once one is chosen.
func (k Kind) BitWidth() (bits int, ok bool) {
	switch k {
	case Digital1:
		return 1, true
	case Digital4:
		return 4, true
	case Digital8, AnalogI8:
		return 8, true
	case AnalogF32:
		return 32, true
	case AnalogF64, SimdI24x8:
		// SimdI24x8 lanes are carried in 32-bit slots (24 significant
		// bits, sign-extended); this matches the accessor contract
		// read_i24_simd returning an int32.
		if k == AnalogF64 {
			return 64, true
		}
		return 32, true
	case SimdI16x8:
		return 16, true
	default:
		return 0, false
	}
}

// BytesPerSample computes the interleaved sample stride for the given
// layout, channel count and bit width, per spec: ceil(channels*bits/8),
// except SimdI16x8 which is always fixed at 16 bytes regardless of the
// active channel count.
func BytesPerSample(k Kind, channels, bitWidth int) (int, error) {
	if k == SimdI16x8 {
		return 16, nil
	}
	if channels <= 0 || channels > 255 {
		return 0, fmt.Errorf("layout: channel count %d out of range [1,255]", channels)
	}
	if bitWidth <= 0 {
		return 0, fmt.Errorf("layout: bit width %d must be positive", bitWidth)
	}
	return (channels*bitWidth + 7) / 8, nil
}

// IsSimd reports whether the layout requires ≥16-byte aligned storage
// (invariant I1).
func (k Kind) IsSimd() bool {
	return k == SimdI16x8 || k == SimdI24x8
}
