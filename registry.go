package timelinedb

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bfarago/timelinedb/internal/engine/scalarkern"
	"github.com/bfarago/timelinedb/internal/engine/simdkern"
	"github.com/bfarago/timelinedb/internal/srcplan"
)

// Backend is the per-layout kernel function table a Converter or
// Aggregator dispatches through. It is the trait-style substitute for
// the process-wide function-table pointer: callers may thread an
// explicit Backend through Converter/Aggregator calls, or pass nil to
// use the process-wide default installed by SetBackend.
type Backend interface {
	// Name reports this backend's display name, matching BackendName's
	// per-ISA strings.
	Name() string

	// ConvertI16x8Plan runs the plan-driven Q16 interpolation kernel
	// for the Simd_I16x8 layout.
	ConvertI16x8Plan(in, out []byte, plan []srcplan.Entry) error

	// AggregateMinMaxI8 computes per-channel extremes for one bin of
	// an AnalogI8 buffer.
	AggregateMinMaxI8(in, outMin, outMax []byte, channels, binIndex, start, end int) error

	// AggregateMinMaxI16x8 computes per-channel extremes for one bin
	// of a Simd_I16x8 buffer.
	AggregateMinMaxI16x8(in, outMin, outMax []byte, binIndex, start, end int) error
}

// scalarBackend is the portable reference implementation ("C
// Backend"), grounded on internal/engine/scalarkern.
type scalarBackend struct{}

func (scalarBackend) Name() string { return scalarkern.Name }

func (scalarBackend) ConvertI16x8Plan(in, out []byte, plan []srcplan.Entry) error {
	return scalarkern.ConvertI16x8Plan(in, out, plan)
}

func (scalarBackend) AggregateMinMaxI8(in, outMin, outMax []byte, channels, binIndex, start, end int) error {
	return scalarkern.AggregateMinMaxI8(in, outMin, outMax, channels, binIndex, start, end)
}

func (scalarBackend) AggregateMinMaxI16x8(in, outMin, outMax []byte, binIndex, start, end int) error {
	return scalarkern.AggregateMinMaxI16x8(in, outMin, outMax, binIndex, start, end)
}

// vectorBackend is the vector-shaped implementation ("SIMD Backend"),
// grounded on internal/engine/simdkern; its reported name follows the
// build-tag-selected ISA constant.
type vectorBackend struct{}

func (vectorBackend) Name() string { return simdkern.Name }

func (vectorBackend) ConvertI16x8Plan(in, out []byte, plan []srcplan.Entry) error {
	return simdkern.ConvertI16x8Plan(in, out, plan)
}

func (vectorBackend) AggregateMinMaxI8(in, outMin, outMax []byte, channels, binIndex, start, end int) error {
	return simdkern.AggregateMinMaxI8(in, outMin, outMax, channels, binIndex, start, end)
}

func (vectorBackend) AggregateMinMaxI16x8(in, outMin, outMax []byte, binIndex, start, end int) error {
	return simdkern.AggregateMinMaxI16x8(in, outMin, outMax, binIndex, start, end)
}

var backends = [...]Backend{
	0: scalarBackend{},
	1: vectorBackend{},
}

// BackendRegistry holds the process-wide default Backend selection.
// Converter and Aggregator operations accept an explicit Backend
// override; passing nil falls back to whatever BackendRegistry
// currently holds. Mutations are serialized with a mutex; readers see
// either the old or the new backend for the duration of a call, never
// a torn value.
type BackendRegistry struct {
	mu      sync.RWMutex
	current int
	logger  *zap.Logger
}

var defaultRegistry = &BackendRegistry{current: 0, logger: zap.NewNop()}

// SetLogger installs the *zap.Logger the registry uses to record
// backend transitions. A nil logger installs zap.NewNop().
func (r *BackendRegistry) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.mu.Lock()
	r.logger = logger
	r.mu.Unlock()
}

// BackendCount returns the number of installable backends (currently
// 2: scalar reference and SIMD accelerated).
func (r *BackendRegistry) BackendCount() int {
	return len(backends)
}

// BackendName returns the display name of the backend at index, or of
// the currently active backend when index == -1.
func (r *BackendRegistry) BackendName(index int) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index == -1 {
		return backends[r.current].Name(), nil
	}
	if index < 0 || index >= len(backends) {
		return "", fmt.Errorf("%w: index %d", ErrInvalidBackend, index)
	}
	return backends[index].Name(), nil
}

// SetBackend installs the backend at index as the process-wide
// default, logging the transition.
func (r *BackendRegistry) SetBackend(index int) error {
	if index < 0 || index >= len(backends) {
		return fmt.Errorf("%w: index %d", ErrInvalidBackend, index)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	prev := backends[r.current].Name()
	r.current = index
	r.logger.Info("backend switched",
		zap.String("from", prev),
		zap.String("to", backends[index].Name()),
		zap.Int("index", index),
	)
	return nil
}

// Active returns the currently installed default Backend.
func (r *BackendRegistry) Active() Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return backends[r.current]
}

// resolveBackend returns explicit if non-nil, otherwise the process
// default from defaultRegistry.
func resolveBackend(explicit Backend) Backend {
	if explicit != nil {
		return explicit
	}
	return defaultRegistry.Active()
}

// BackendCount returns the number of installable backends via the
// process-wide default registry, matching backend_count() in §4.3.
func BackendCount() int { return defaultRegistry.BackendCount() }

// BackendName returns the display name of the backend at index (or
// the active one when index == -1) via the process-wide default
// registry.
func BackendName(index int) (string, error) { return defaultRegistry.BackendName(index) }

// SetBackend installs the backend at index as the process-wide
// default via the default registry.
func SetBackend(index int) error { return defaultRegistry.SetBackend(index) }
