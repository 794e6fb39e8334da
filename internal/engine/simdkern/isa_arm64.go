//go:build arm64

package simdkern

// Name is the backend name reported for this build target, matching
// gTimelineBackendFunctionsSIMD's NEON build in
// original_source/src/timelinedb_simd.c.
const Name = "Neon SIMD Backend"
