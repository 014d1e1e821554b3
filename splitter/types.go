// Package splitter implements the five post-processing bond-splitting
// routines applied to the sugars copy after extraction: O-glycosidic,
// ester, cross-linking ether, ether, and peroxide bridges, each
// identified by a hand-written neighborhood query standing in for the
// SMARTS pattern it mirrors (per SPEC_FULL.md §4.4 / §9 design note 5 —
// no general-purpose SMARTS engine is implemented).
package splitter

import (
	"errors"

	"github.com/Steinbeck-Lab/MORTAR/molgraph"
)

// Sentinel errors for splitter operations.
var (
	// ErrNilMolecule indicates a nil *molgraph.Molecule was passed to a
	// Split* routine.
	ErrNilMolecule = errors.New("splitter: molecule is nil")

	// ErrNilDetector indicates a nil sugars.Detector was passed while
	// Options.LimitPostProcessingBySize requires one to gate splits.
	ErrNilDetector = errors.New("splitter: detector is nil")

	// ErrPatternMatchFailure names the case of one matched bridge that
	// cannot be safely split. No Split* routine returns it: such a match
	// (e.g. one whose flanking atoms stay connected by another path) is
	// skipped and counted in Result.Skipped, and the routine continues.
	ErrPatternMatchFailure = errors.New("splitter: pattern match could not be split")
)

const oxygenSymbol = "O"
const carbonSymbol = "C"

// Match names one bond a Split* routine will sever: the bond between Cut
// and Bridge. With Duplicate true, the Bridge atom is removed and Cut and
// Kept each receive a fresh duplicate of Bridge's element, saturated for
// the valence it lost (with MarkAttachPointsByR, Cut receives a pseudo R
// marker instead). With Duplicate false, only the Cut–Bridge bond is
// removed and Cut and Bridge are both saturated in place — the two rows
// of SPEC_FULL.md's post-processing table.
//
// FlankCut and FlankKept name the two atoms the cut-edge and size-gate
// checks compare. For every single-bridge-atom pattern they equal Cut
// and Kept; for the two-atom peroxide bridge, Cut and Bridge name the
// two bridging oxygens themselves (the severed bond is the O-O bond), so
// FlankCut/FlankKept are each oxygen's carbon neighbor instead.
type Match struct {
	Cut, Bridge, Kept molgraph.AtomHandle
	Order             molgraph.BondOrder
	Duplicate         bool

	FlankCut, FlankKept molgraph.AtomHandle

	// Circular marks this match as belonging to the "circular" size-gate
	// family (sugars.Detector.IsTooSmallToPreserve) rather than the
	// "linear" family (sugars.Detector.LinearSugarCandidateMinSize).
	// Only the O-glycosidic pattern is circular; the other four are
	// linear, per the original's pairing of split_o_glycosidic_bonds
	// with the circular gate and the ether/ester/peroxide postprocessing
	// with the linear one.
	Circular bool
}

// Options configures the five Split* routines and their aggregate.
type Options struct {
	// MarkAttachPointsByR: when true, a Duplicate-true match's new
	// attachment point on the cut flank is a plain pseudo "R" atom
	// rather than a duplicate of the bridge atom's own element with
	// implicit-hydrogen saturation.
	MarkAttachPointsByR bool

	// LimitPostProcessingBySize gates every split on the size of the
	// fragments it would produce; requires a non-nil detector.
	LimitPostProcessingBySize bool
}

// DefaultOptions returns the baseline Options used when the caller
// supplies none.
func DefaultOptions() Options {
	return Options{MarkAttachPointsByR: true, LimitPostProcessingBySize: true}
}

// Result summarizes one Split* call.
type Result struct {
	Matched int
	Split   int
	Skipped int
}

// AggregateResult reports the outcome of each stage of
// SplitEtherEsterAndPeroxidePostprocessing, in application order.
type AggregateResult struct {
	Ester              Result
	EthersCrosslinking Result
	Ethers             Result
	Peroxides          Result
}
