// Package extractor implements the aglycone/sugar separation algorithm:
// given a whole molecule and a sugars.Detector, it produces an aglycone
// fragment and zero or more independent sugar fragments, reconstructing
// chemically sensible boundaries wherever a bond had to be broken.
package extractor

import (
	"errors"

	"github.com/Steinbeck-Lab/MORTAR/molgraph"
)

// Sentinel errors for extractor operations.
var (
	// ErrNilMolecule indicates a nil *molgraph.Molecule was passed to
	// CopyAndExtract.
	ErrNilMolecule = errors.New("extractor: molecule is nil")

	// ErrNilDetector indicates a nil sugars.Detector was passed to
	// CopyAndExtract.
	ErrNilDetector = errors.New("extractor: detector is nil")
)

// Options configures CopyAndExtract's behavior.
type Options struct {
	// RemoveCircularSugars enables ring-shaped sugar removal.
	RemoveCircularSugars bool

	// RemoveLinearSugars enables chain-shaped sugar removal.
	RemoveLinearSugars bool

	// ApplyPostProcessingSplits runs the splitter package's five
	// SMARTS-pattern-driven splits over the sugars copy before it is
	// partitioned into its final independent fragments: the linear
	// family (ester, cross-linking ether, ether, peroxide) in that fixed
	// order, followed by the circular O-glycosidic split, matching the
	// original's linear-splitter-before-circular-splitter ordering. A
	// split that disconnects a former sugar moiety into several pieces
	// surfaces each piece as its own fragment in CopyAndExtract's result.
	ApplyPostProcessingSplits bool

	// DiscardTooSmallSugarFragments drops sugar fragments smaller than
	// the detector's preservation threshold from the result, recording a
	// WarningOrphanedSugarFragment for each one dropped; their atoms are
	// not added back to the aglycone.
	DiscardTooSmallSugarFragments bool

	// PreserveStereochemistry keeps each input stereo element whose focus
	// and carriers all survive in the aglycone copy or in a sugar
	// fragment; stereo elements are not moved onto duplicated boundary
	// atoms. When false, stereo elements are dropped entirely.
	PreserveStereochemistry bool

	// MarkAttachPointsByR controls how a severed valence that admits
	// either representation is capped: true attaches a pseudo "R" marker
	// atom, false saturates the retained atom's implicit-hydrogen count
	// directly (or, for the splitter's duplicate-producing patterns,
	// saturates a real duplicated atom instead of an R marker). Applies
	// to CopyAndExtract's carbon-carbon boundary dispatch and its spiro
	// saturation step, and is forwarded to the splitter package when
	// ApplyPostProcessingSplits is set.
	MarkAttachPointsByR bool

	// LimitPostProcessingBySize is forwarded to the splitter package when
	// ApplyPostProcessingSplits is set: it gates every post-processing
	// split on the size of the fragments it would produce, per
	// sugars.Detector.IsTooSmallToPreserve / LinearSugarCandidateMinSize.
	LimitPostProcessingBySize bool
}

// DefaultOptions returns the baseline Options used when the caller
// supplies none.
func DefaultOptions() Options {
	return Options{
		RemoveCircularSugars:          true,
		RemoveLinearSugars:            true,
		ApplyPostProcessingSplits:     true,
		DiscardTooSmallSugarFragments: true,
		PreserveStereochemistry:       true,
		MarkAttachPointsByR:           true,
		LimitPostProcessingBySize:     true,
	}
}

// Maps records the four original<->copy correspondences produced by a
// CopyAndExtract call, keyed by the original molecule's handles.
type Maps struct {
	OriginalToAglyconeAtom map[molgraph.AtomHandle]molgraph.AtomHandle
	OriginalToSugarAtom    map[molgraph.AtomHandle]molgraph.AtomHandle
	OriginalToAglyconeBond map[molgraph.BondHandle]molgraph.BondHandle
	OriginalToSugarBond    map[molgraph.BondHandle]molgraph.BondHandle
}

func newMaps() *Maps {
	return &Maps{
		OriginalToAglyconeAtom: make(map[molgraph.AtomHandle]molgraph.AtomHandle),
		OriginalToSugarAtom:    make(map[molgraph.AtomHandle]molgraph.AtomHandle),
		OriginalToAglyconeBond: make(map[molgraph.BondHandle]molgraph.BondHandle),
		OriginalToSugarBond:    make(map[molgraph.BondHandle]molgraph.BondHandle),
	}
}

// WarningCode enumerates the kinds of non-fatal inconsistency
// CopyAndExtract may encounter while reconstructing a boundary.
type WarningCode string

const (
	// WarningUnbalancedBoundaryBond marks a boundary bond whose endpoint
	// atoms could not be classified into the carbon/heteroatom dispatch
	// the boundary-reconstruction step expects.
	WarningUnbalancedBoundaryBond WarningCode = "unbalanced-boundary-bond"

	// WarningOrphanedSugarFragment marks a sugar fragment discarded for
	// being smaller than the detector's preservation threshold.
	WarningOrphanedSugarFragment WarningCode = "orphaned-sugar-fragment"

	// WarningSplitterPatternFailure marks a post-processing split that
	// could not complete for one matched bond; the aggregate continues
	// with the next pattern.
	WarningSplitterPatternFailure WarningCode = "splitter-pattern-failure"
)

// Warning is a non-fatal inconsistency recorded during extraction or
// post-processing splitting. The procedure continues past every Warning;
// only a returned error aborts the call.
type Warning struct {
	Code    WarningCode
	Message string
	Atom    molgraph.AtomHandle
	Bond    molgraph.BondHandle
}
