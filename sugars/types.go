// Package sugars implements the Sugar Pattern Detector: classification of
// circular (ring) and linear (chain) sugar-like fragments within a
// molgraph.Molecule, exposed as a capability interface rather than a base
// class to extend, so the extractor can depend on the interface and swap
// in a different detector without touching its own code.
package sugars

import (
	"errors"

	"github.com/Steinbeck-Lab/MORTAR/molgraph"
)

// Sentinel errors for detector operations.
var (
	// ErrNilMolecule indicates a nil *molgraph.Molecule was passed to a
	// Detector method.
	ErrNilMolecule = errors.New("sugars: molecule is nil")

	// ErrDetectorFailure indicates the detector could not complete
	// classification due to malformed input (e.g. an atom referencing a
	// handle absent from its own molecule); this aborts the caller per
	// the error handling design.
	ErrDetectorFailure = errors.New("sugars: detector failed to classify molecule")
)

// Settings configures a Detector's classification thresholds. A zero
// Settings is invalid; use DefaultSettings or config.Resolve to obtain a
// sensible baseline.
type Settings struct {
	// RemoveOnlyTerminalSugars restricts removal to sugar fragments
	// attached to the rest of the molecule by at most one bond (a
	// fragment with no bond to the rest also qualifies).
	RemoveOnlyTerminalSugars bool

	// PreservationModeThreshold is the minimum heavy-atom count a
	// candidate fragment must have to be eligible for removal; smaller
	// fragments are preserved as part of the aglycone.
	PreservationModeThreshold int

	// DetectSpiroRingsAsCircularSugars controls whether a ring sharing
	// exactly one atom (a spiro center) with another ring is eligible
	// for circular-sugar classification.
	DetectSpiroRingsAsCircularSugars bool

	// LinearSugarCandidateMinSize is the minimum chain length (in heavy
	// atoms) considered as a linear sugar candidate.
	LinearSugarCandidateMinSize int
}

// DefaultSettings returns the baseline Settings used when no explicit
// configuration is supplied.
func DefaultSettings() Settings {
	return Settings{
		RemoveOnlyTerminalSugars:         true,
		PreservationModeThreshold:        5,
		DetectSpiroRingsAsCircularSugars: true,
		LinearSugarCandidateMinSize:      4,
	}
}

// Detector classifies and removes sugar-like fragments from a Molecule.
// Implementations must not retain references into the Molecule across
// calls; each call receives the molecule to mutate explicitly.
type Detector interface {
	// RemoveCircularSugars strips ring-shaped sugar fragments from mol in
	// place, returning the handles of atoms that were removed.
	RemoveCircularSugars(mol *molgraph.Molecule) ([]molgraph.AtomHandle, error)

	// RemoveLinearSugars strips chain-shaped sugar fragments from mol in
	// place, returning the handles of atoms that were removed.
	RemoveLinearSugars(mol *molgraph.Molecule) ([]molgraph.AtomHandle, error)

	// RemoveCircularAndLinearSugars applies circular removal followed by
	// linear removal, matching the fixed order the extractor relies on.
	RemoveCircularAndLinearSugars(mol *molgraph.Molecule) ([]molgraph.AtomHandle, error)

	// IsTooSmallToPreserve reports whether a candidate fragment (named by
	// its atom handles within its own molecule) is too small to be kept
	// as an independent fragment and should instead be folded back into
	// the aglycone.
	IsTooSmallToPreserve(fragment []molgraph.AtomHandle) bool

	// LinearSugarCandidateMinSize reports the minimum chain length this
	// Detector considers for linear sugar classification.
	LinearSugarCandidateMinSize() int

	// Settings returns the Settings this Detector was constructed with.
	Settings() Settings
}
