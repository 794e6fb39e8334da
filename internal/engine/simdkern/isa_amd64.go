//go:build amd64

package simdkern

// Name is the backend name reported for this build target, matching
// gTimelineBackendFunctionsSIMD's platform-specific name string in
// original_source/src/timelinedb_simd.c.
const Name = "Intel AVX2 SIMD Backend"
