//go:build !amd64 && !arm64

package simdkern

// Name is the backend name reported on platforms without a dedicated
// vector kernel, matching gTimelineBackendFunctionsC's fallback name.
const Name = "Fallback C Backend"
