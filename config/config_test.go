package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Steinbeck-Lab/MORTAR/config"
)

func TestResolveAppliesDefaultsWhenNoOptionsGiven(t *testing.T) {
	r := config.Resolve()

	assert.True(t, r.Settings.RemoveOnlyTerminalSugars)
	assert.Equal(t, 5, r.Settings.PreservationModeThreshold)
	assert.True(t, r.Options.RemoveCircularSugars)
	assert.True(t, r.Options.ApplyPostProcessingSplits)
	assert.True(t, r.Options.MarkAttachPointsByR)
	assert.True(t, r.Options.LimitPostProcessingBySize)
}

func TestResolveOptionsApplyInOrderLastWins(t *testing.T) {
	r := config.Resolve(
		config.WithPreservationModeThreshold(3),
		config.WithPreservationModeThreshold(8),
		config.WithRemoveOnlyTerminalSugars(false),
		config.WithPostProcessingSplits(false),
	)

	assert.Equal(t, 8, r.Settings.PreservationModeThreshold)
	assert.False(t, r.Settings.RemoveOnlyTerminalSugars)
	assert.False(t, r.Options.ApplyPostProcessingSplits)
}

func TestWithLinearSugarCandidateMinSizeAndSpiroOption(t *testing.T) {
	r := config.Resolve(
		config.WithLinearSugarCandidateMinSize(6),
		config.WithSpiroRingsAsCircularSugars(false),
	)

	assert.Equal(t, 6, r.Settings.LinearSugarCandidateMinSize)
	assert.False(t, r.Settings.DetectSpiroRingsAsCircularSugars)
}

func TestWithMarkAttachPointsByRAndLimitPostProcessingBySize(t *testing.T) {
	r := config.Resolve(
		config.WithMarkAttachPointsByR(false),
		config.WithLimitPostProcessingBySize(false),
	)

	assert.False(t, r.Options.MarkAttachPointsByR)
	assert.False(t, r.Options.LimitPostProcessingBySize)
}
