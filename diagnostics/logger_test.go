package diagnostics_test

import (
	"testing"

	"github.com/Steinbeck-Lab/MORTAR/diagnostics"
)

func TestNoopSatisfiesLoggerAndDiscardsCalls(t *testing.T) {
	var l diagnostics.Logger = diagnostics.Noop{}

	// Neither call should panic regardless of field shape.
	l.Info("extraction finished", "atoms", 12, "warnings", 0)
	l.Error("saturation failed", "handle", 7)
}
