// Package srcplan builds the precomputed interpolation plan consumed
// by the plan-driven sample-rate-conversion kernels. Keeping the plan
// type in its own leaf package lets both the root API and the engine
// kernel packages share one definition without an import cycle.
package srcplan

import "math"

// Entry is one output sample's interpolation instruction: blend input
// sample Idx0 and Idx1 using Q16 fixed-point weights.
//
// FracQ16 and InvFracQ16 satisfy FracQ16+InvFracQ16 == 0 (mod 0x10000):
// InvFracQ16 is computed as uint16(0x10000-FracQ16), so it wraps to 0
// exactly when FracQ16 is 0. Kernels must treat FracQ16 == 0 as "copy
// Idx0 verbatim" rather than run the wrapped weight through the blend
// formula, or the identity-resampling property (frac 0 must reproduce
// the source sample exactly) breaks. See DESIGN.md for why the field
// keeps this wraparound shape instead of widening to hold 0x10000.
type Entry struct {
	Idx0       uint32
	Idx1       uint32
	FracQ16    uint16
	InvFracQ16 uint16
}

// Build computes one Entry per output sample for resampling
// inputCount samples to outputCount samples. It implements spec §4.4
// point 6 together with the tie-break rules in the "Tie-breaks and
// edge cases" section: identity resampling always yields FracQ16 == 0
// with Idx0 == i (the last entry included), frac saturates to 0xFFFF
// rather than rounding up to the unrepresentable 0x10000, and
// otherwise idx0/idx1 clamp to (inputCount-2, inputCount-1) only when
// an entry's own computed position overflows the input range.
func Build(inputCount, outputCount int) []Entry {
	if outputCount <= 0 {
		return nil
	}
	entries := make([]Entry, outputCount)
	if inputCount < 2 {
		for i := range entries {
			entries[i] = Entry{Idx0: 0, Idx1: 0}
		}
		return entries
	}

	maxIdx0 := uint32(inputCount - 2)
	lastIdx := uint32(inputCount - 1)
	scale := float64(outputCount) / float64(inputCount)

	for i := range entries {
		pos := float64(i) / scale

		idx0 := uint32(math.Floor(pos))
		if idx0 > maxIdx0 {
			idx0 = maxIdx0
		}
		idx1 := idx0 + 1
		if idx1 > lastIdx {
			idx1 = lastIdx
		}

		frac := pos - float64(idx0)
		fracRounded := math.Round(frac * 65536.0)

		var fq uint16
		switch {
		case fracRounded <= 0:
			fq = 0
		case fracRounded >= 65536:
			fq = 0xFFFF
		default:
			fq = uint16(fracRounded)
		}

		entries[i] = Entry{
			Idx0:       idx0,
			Idx1:       idx1,
			FracQ16:    fq,
			InvFracQ16: uint16(0x10000 - uint32(fq)),
		}
	}

	// Identity resampling: every entry must be frac==0 pointing at its
	// own index, sample-for-sample.
	if outputCount == inputCount {
		for i := range entries {
			idx0 := uint32(i)
			idx1 := idx0 + 1
			if idx1 > lastIdx {
				idx1 = lastIdx
			}
			entries[i] = Entry{Idx0: idx0, Idx1: idx1, FracQ16: 0, InvFracQ16: 0}
		}
	}

	return entries
}
