// Package timelinedb implements an in-memory time-series buffer
// library for multi-channel, fixed-rate, uniformly-sampled numeric
// signals such as audio, oscilloscope traces, and instrumentation
// streams.
//
// # Architecture
//
// A [TimelineBuffer] owns an aligned byte region plus the metadata
// (channel count, bit width, sample layout, time base) needed to
// interpret it. [SampleRateConverter] resamples one TimelineBuffer
// into another via a Bresenham-style fixed-point accumulator and a
// precomputed interpolation plan, with pluggable scalar and SIMD
// backends selected through the process-wide [BackendRegistry].
// [MinMaxAggregator] downsamples a window of input samples into a
// fixed number of output bins for visualization. [LayoutAdapter]
// converts between a scalar 8-bit interleaved buffer and the
// SIMD-aligned 8x16-bit layout.
//
// # Quick start
//
//	src := timelinedb.New()
//	if err := src.Allocate(1000, 1, 16, 16, timelinedb.SimdI16x8); err != nil {
//	    log.Fatal(err)
//	}
//	// populate src.Storage()...
//
//	dst := timelinedb.New()
//	conv := timelinedb.NewSampleRateConverter(nil) // nil = default backend
//	if err := conv.Prepare(src, 2_000_000, dst); err != nil {
//	    log.Fatal(err)
//	}
//	if err := conv.Convert(src, dst); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// A single TimelineBuffer is not safe for concurrent conversion and
// mutation. Independent buffers on independent goroutines are safe
// provided the BackendRegistry is not mutated concurrently with an
// in-flight conversion; SetBackend serializes against readers via an
// internal mutex, but does not wait for calls already in progress to
// observe the previous backend to finish.
package timelinedb
