// File: service.go
// Role: optional instrumentation wrapper around the pure CopyAndExtract
// function. The algorithm in extract.go takes no dependency on logging,
// metrics or correlation IDs; Service is what a caller wires those
// concerns through, keeping the two concerns separable for testing.

package extractor

import (
	"time"

	"github.com/google/uuid"

	"github.com/Steinbeck-Lab/MORTAR/diagnostics"
	"github.com/Steinbeck-Lab/MORTAR/metrics"
	"github.com/Steinbeck-Lab/MORTAR/molgraph"
	"github.com/Steinbeck-Lab/MORTAR/sugars"
)

// Service wraps CopyAndExtract with structured logging, metrics, and a
// per-call correlation ID, per the ambient-stack wiring described in
// SPEC_FULL.md.
type Service struct {
	Logger    diagnostics.Logger
	Collector metrics.Collector
}

// NewService returns a Service; either field may be left as the zero
// value (diagnostics.Noop{} / metrics.Noop{} equivalents are used when
// nil).
func NewService(logger diagnostics.Logger, collector metrics.Collector) *Service {
	if logger == nil {
		logger = diagnostics.Noop{}
	}
	if collector == nil {
		collector = metrics.Noop{}
	}
	return &Service{Logger: logger, Collector: collector}
}

// Extract runs CopyAndExtract, tagging every log line emitted for this
// call with a fresh correlation ID and recording its outcome/duration
// through s.Collector.
func (s *Service) Extract(mol *molgraph.Molecule, detector sugars.Detector, opts Options) (*molgraph.Molecule, []*molgraph.Molecule, *Maps, []Warning, error) {
	requestID := uuid.New().String()
	start := time.Now()

	aglycone, fragments, maps, warnings, err := CopyAndExtract(mol, detector, opts)

	duration := time.Since(start)
	s.Collector.ObserveExtract(duration, len(warnings), err)

	if err != nil {
		s.Logger.Error("extraction failed", "request_id", requestID, "error", err)
		return aglycone, fragments, maps, warnings, err
	}

	for _, w := range warnings {
		s.Logger.Error("extraction warning", "request_id", requestID, "code", string(w.Code), "message", w.Message)
	}
	s.Logger.Info("extraction complete",
		"request_id", requestID,
		"sugar_fragments", len(fragments),
		"warnings", len(warnings),
		"duration_ms", duration.Milliseconds(),
	)

	return aglycone, fragments, maps, warnings, nil
}
