// File: split.go
// Role: the public Split* entry points and the fixed-order aggregate,
// mirroring splitOGlycosidicBonds / splitEsters / splitEthersCrosslinking
// / splitEthers / splitPeroxides /
// splitEtherEsterAndPeroxideBondsPostProcessing in
// original_source/SugarDetectionUtility.java.

package splitter

import (
	"github.com/Steinbeck-Lab/MORTAR/molgraph"
	"github.com/Steinbeck-Lab/MORTAR/sugars"
)

func checkInputs(mol *molgraph.Molecule, detector sugars.Detector, opts Options) error {
	if mol == nil {
		return ErrNilMolecule
	}
	if opts.LimitPostProcessingBySize && detector == nil {
		return ErrNilDetector
	}
	return nil
}

// SplitOGlycosidicBonds breaks every matched O-glycosidic bridge in mol
// in place and returns the outcome.
//
// Complexity: O(V + E).
func SplitOGlycosidicBonds(mol *molgraph.Molecule, detector sugars.Detector, opts Options) (Result, error) {
	if err := checkInputs(mol, detector, opts); err != nil {
		return Result{}, err
	}
	return applyMatches(mol, detector, opts, MatchOGlycosidic(mol)), nil
}

// SplitEsters breaks every matched ester bridge in mol in place.
//
// Complexity: O(V + E).
func SplitEsters(mol *molgraph.Molecule, detector sugars.Detector, opts Options) (Result, error) {
	if err := checkInputs(mol, detector, opts); err != nil {
		return Result{}, err
	}
	return applyMatches(mol, detector, opts, MatchEster(mol)), nil
}

// SplitEthersCrosslinking breaks every matched cross-linking ether bridge
// in mol in place.
//
// Complexity: O(V + E).
func SplitEthersCrosslinking(mol *molgraph.Molecule, detector sugars.Detector, opts Options) (Result, error) {
	if err := checkInputs(mol, detector, opts); err != nil {
		return Result{}, err
	}
	return applyMatches(mol, detector, opts, MatchEthersCrosslinking(mol)), nil
}

// SplitEthers breaks every matched generic ether bridge in mol in place.
//
// Complexity: O(V + E).
func SplitEthers(mol *molgraph.Molecule, detector sugars.Detector, opts Options) (Result, error) {
	if err := checkInputs(mol, detector, opts); err != nil {
		return Result{}, err
	}
	return applyMatches(mol, detector, opts, MatchEthers(mol)), nil
}

// SplitPeroxides breaks every matched peroxide bridge in mol in place.
//
// Complexity: O(V + E).
func SplitPeroxides(mol *molgraph.Molecule, detector sugars.Detector, opts Options) (Result, error) {
	if err := checkInputs(mol, detector, opts); err != nil {
		return Result{}, err
	}
	return applyMatches(mol, detector, opts, MatchPeroxides(mol)), nil
}

// SplitEtherEsterAndPeroxidePostprocessing applies the ester,
// cross-linking-ether, ether, and peroxide splits to mol in place, in
// that fixed order: each stage only sees bridges the earlier stages left
// untouched, since a bridge consumed by an earlier, more specific pattern
// (ester, cross-linking ether) is excluded from the more generic ones by
// construction (see MatchEthersCrosslinking/MatchEthers).
//
// Complexity: O(V + E).
func SplitEtherEsterAndPeroxidePostprocessing(mol *molgraph.Molecule, detector sugars.Detector, opts Options) (AggregateResult, error) {
	if err := checkInputs(mol, detector, opts); err != nil {
		return AggregateResult{}, err
	}

	var agg AggregateResult
	var err error

	agg.Ester, err = SplitEsters(mol, detector, opts)
	if err != nil {
		return agg, err
	}
	agg.EthersCrosslinking, err = SplitEthersCrosslinking(mol, detector, opts)
	if err != nil {
		return agg, err
	}
	agg.Ethers, err = SplitEthers(mol, detector, opts)
	if err != nil {
		return agg, err
	}
	agg.Peroxides, err = SplitPeroxides(mol, detector, opts)
	if err != nil {
		return agg, err
	}

	return agg, nil
}
