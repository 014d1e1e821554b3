// File: skeleton.go
// Role: the shared split skeleton every Split* routine runs per matched
// bridge: size-gate via a scratch copy + partition check, then either
// remove-and-duplicate onto both flanks or saturate-in-place without
// touching the bridge atom, depending on match.Duplicate. Factored into
// one helper parameterized by the match list rather than a five-case
// interface hierarchy, since the five patterns differ only in which
// bridges they match and whether that pattern duplicates, not in the
// mechanics of applying either outcome.

package splitter

import (
	"github.com/Steinbeck-Lab/MORTAR/molgraph"
	"github.com/Steinbeck-Lab/MORTAR/sugars"
)

// applyMatches runs the size-gate-then-split skeleton over every match in
// matches, mutating mol in place for each one that passes the gate.
func applyMatches(mol *molgraph.Molecule, detector sugars.Detector, opts Options, matches []Match) Result {
	var res Result
	res.Matched = len(matches)

	for _, match := range matches {
		if !safeToSplit(mol, detector, opts, match) {
			res.Skipped++
			continue
		}
		splitBridge(mol, opts, match)
		res.Split++
	}

	return res
}

// safeToSplit reports whether removing the (Cut, Bridge) bond from a
// scratch copy of mol actually separates FlankCut from FlankKept, and
// whether the resulting components pass the configured size gate.
//
// If some other path still connects the flanks (the matched bond wasn't a
// true cut edge — e.g. it sits on a ring this package's approximate
// IsInRing bookkeeping missed), splitting would fragment a molecule that
// is not actually two pieces, so the match is skipped regardless of the
// size gate.
func safeToSplit(mol *molgraph.Molecule, detector sugars.Detector, opts Options, match Match) bool {
	scratch := mol.DeeperCopy()
	bond, err := scratch.BondBetween(match.Cut, match.Bridge)
	if err != nil {
		return false
	}
	if err := scratch.RemoveBond(bond.Handle); err != nil {
		return false
	}

	components := scratch.PartitionIntoMolecules()
	var cutComponent, keptComponent = -1, -1
	var cutAtoms, keptAtoms []molgraph.AtomHandle
	for i, comp := range components {
		atoms := comp.Atoms()
		for _, h := range atoms {
			if h == match.FlankCut {
				cutComponent = i
				cutAtoms = atoms
			}
			if h == match.FlankKept {
				keptComponent = i
				keptAtoms = atoms
			}
		}
	}

	if cutComponent == -1 || cutComponent == keptComponent {
		return false
	}

	if !opts.LimitPostProcessingBySize || detector == nil {
		return true
	}

	if match.Circular {
		return !detector.IsTooSmallToPreserve(cutAtoms) && !detector.IsTooSmallToPreserve(keptAtoms)
	}
	minSize := detector.LinearSugarCandidateMinSize()
	return len(cutAtoms) >= minSize && len(keptAtoms) >= minSize
}

// splitBridge commits one matched bridge's split to mol.
//
// When match.Duplicate is true (O-glycosidic, Ester, Ether), the bridge
// atom is fully removed and both Cut and Kept receive a freshly
// duplicated atom of the bridge's own element, each saturated to absorb
// the valence the bridge atom used to spend on the side it no longer
// connects to:
// ImplicitHCount = bondOrderSum(original bridge atom) - keptBondOrder.
// When opts.MarkAttachPointsByR is set, the Cut-side duplicate is a plain
// pseudo "R" marker atom instead, per
// extractor.Options.MarkAttachPointsByR's documented scope. This mirrors
// the extractor's boundary-duplication formula inverted (there, one side
// of the original heteroatom survives untouched; here, the bridge atom is
// fully removed and both of its former bonds become independent caps).
//
// When match.Duplicate is false (Cross-linking ether, Peroxide), the
// bridge atom is never removed or duplicated: only the (Cut, Bridge) bond
// is severed, and both Cut and Bridge are saturated in place by the
// weight of the bond they just lost.
func splitBridge(mol *molgraph.Molecule, opts Options, match Match) {
	bond, err := mol.BondBetween(match.Cut, match.Bridge)
	if err != nil {
		return
	}

	if !match.Duplicate {
		_ = mol.RemoveBond(bond.Handle)
		saturateInPlace(mol, match.Cut, bond.Order.OrderWeight())
		saturateInPlace(mol, match.Bridge, bond.Order.OrderWeight())
		return
	}

	bridgeAtom, err := mol.Atom(match.Bridge)
	if err != nil {
		return
	}
	symbol, atomicNumber, aromatic := bridgeAtom.Symbol, bridgeAtom.AtomicNumber, bridgeAtom.IsAromatic
	bridgeSum := mol.BondOrderSum(match.Bridge)

	var keptOrder molgraph.BondOrder
	if match.Kept != molgraph.NoAtom {
		if keptBond, err := mol.BondBetween(match.Bridge, match.Kept); err == nil {
			keptOrder = keptBond.Order
		}
	}

	_ = mol.RemoveAtom(match.Bridge)

	if opts.MarkAttachPointsByR {
		attachPseudoMarker(mol, match.Cut, match.Order)
	} else {
		dup := mol.AddAtom(symbol, atomicNumber)
		dup.IsAromatic = aromatic
		dup.ImplicitHCount = saturationCount(bridgeSum, match.Order.OrderWeight())
		_, _ = mol.AddBond(match.Cut, dup.Handle, match.Order)
	}

	if match.Kept != molgraph.NoAtom {
		dup := mol.AddAtom(symbol, atomicNumber)
		dup.IsAromatic = aromatic
		dup.ImplicitHCount = saturationCount(bridgeSum, keptOrder.OrderWeight())
		_, _ = mol.AddBond(match.Kept, dup.Handle, keptOrder)
	}
}

// saturationCount computes a duplicate cap's implicit hydrogen count from
// the original bridge atom's total bond-order sum minus the one bond it
// keeps.
func saturationCount(bondOrderSum, keptWeight float64) int {
	implicitH := int(bondOrderSum - keptWeight)
	if implicitH < 0 {
		implicitH = 0
	}
	return implicitH
}

// saturateInPlace increments h's implicit hydrogen count by weight,
// absorbing a bond it just lost without creating or removing any atom.
func saturateInPlace(mol *molgraph.Molecule, h molgraph.AtomHandle, weight float64) {
	atom, err := mol.Atom(h)
	if err != nil {
		return
	}
	if atom.ImplicitHCount == molgraph.UnsetImplicitH {
		atom.ImplicitHCount = 0
	}
	atom.ImplicitHCount += int(weight)
}

// attachPseudoMarker adds a pseudo "R" atom bonded to h with the given
// bond order, representing a severed valence left unspecified rather than
// capped with a real duplicated element.
func attachPseudoMarker(mol *molgraph.Molecule, h molgraph.AtomHandle, order molgraph.BondOrder) {
	marker := mol.AddPseudoAtom()
	_, _ = mol.AddBond(h, marker.Handle, order)
}
