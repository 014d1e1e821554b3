// File: extract.go
// Role: CopyAndExtract, the core aglycone/sugar separation algorithm.
// Grounded line-for-line on copyAndExtractAglyconeAndSugars in
// original_source/SugarDetectionUtility.java: early exit on empty input,
// double clone, aglycone mutation via the Detector, sugars-copy
// derivation by complement, the two special-case boundary corrections
// (dangling-exocyclic-carbon repair and carboxy transfer), spiro-atom
// duplication across both copies, general carbon/heteroatom boundary
// reconstruction with R/H saturation, optional post-processing splitting,
// map clean-up, and connected-component partitioning of the sugars copy.
//
// This function never mutates its mol argument: both the aglycone and
// the sugars working copies are independent molgraph.DeeperCopy results.

package extractor

import (
	"fmt"

	"github.com/Steinbeck-Lab/MORTAR/molgraph"
	"github.com/Steinbeck-Lab/MORTAR/splitter"
	"github.com/Steinbeck-Lab/MORTAR/sugars"
)

const carbonSymbol = "C"

// CopyAndExtract partitions mol into an aglycone fragment and zero or
// more sugar fragments using detector to classify atoms, per opts.
//
// Returns the aglycone, the sugar fragments (partitioned into connected
// components), the original<->copy Maps, any non-fatal Warnings
// encountered, and an error only for malformed input (nil mol/detector).
//
// Complexity: O(V + E).
func CopyAndExtract(mol *molgraph.Molecule, detector sugars.Detector, opts Options) (*molgraph.Molecule, []*molgraph.Molecule, *Maps, []Warning, error) {
	if mol == nil {
		return nil, nil, nil, nil, ErrNilMolecule
	}
	if detector == nil {
		return nil, nil, nil, nil, ErrNilDetector
	}

	maps := newMaps()
	if mol.AtomCount() == 0 {
		return molgraph.New(), nil, maps, nil, nil
	}

	aglyconeCopy := mol.DeeperCopy()
	sugarScratch := mol.DeeperCopy()

	var removed []molgraph.AtomHandle
	var err error
	switch {
	case opts.RemoveCircularSugars && opts.RemoveLinearSugars:
		removed, err = detector.RemoveCircularAndLinearSugars(aglyconeCopy)
	case opts.RemoveCircularSugars:
		removed, err = detector.RemoveCircularSugars(aglyconeCopy)
	case opts.RemoveLinearSugars:
		removed, err = detector.RemoveLinearSugars(aglyconeCopy)
	}
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("extractor: detector failed: %w", err)
	}

	sugarAtomSet := make(map[molgraph.AtomHandle]bool, len(removed))
	for _, h := range removed {
		sugarAtomSet[h] = true
	}

	// Spiro atoms: a ring atom shared with another ring still standing
	// was left in place by removeFragment (see sugars/heuristic.go) even
	// though it was reported as removed, precisely so it can be kept on
	// both sides of the boundary instead of duplicated across it.
	spiroSet := collectSpiroAtoms(aglyconeCopy, sugarAtomSet, detector.Settings().DetectSpiroRingsAsCircularSugars)
	for h := range spiroSet {
		if sugarScratch.HasAtom(h) {
			if a, err := sugarScratch.Atom(h); err == nil {
				a.Properties[molgraph.SpiroMarkerKey] = true
			}
		}
	}

	// Special case 1: dangling-exocyclic-carbon repair. An aglycone atom
	// whose only bonds are (a) a single boundary bond into the sugar set
	// and (b) bonds to atoms themselves in the sugar set was very likely
	// misclassified by the Detector (e.g. a ring's exocyclic C6
	// hydroxymethyl carbon) and belongs with the sugar fragment.
	repairDanglingExocyclicAtoms(mol, aglyconeCopy, sugarAtomSet)

	// Special case 2: carboxy transfer. An aglycone carbon that is
	// itself a carboxylic acid/ester carbon (double-bonded to one
	// oxygen, singly bonded to another) whose only other substituent is
	// in the sugar set moves to the sugar side together with its
	// double-bonded oxygen; the single-bonded oxygen stays with the
	// aglycone and its bond to the carbon becomes an ordinary boundary.
	transferCarboxyCarbons(mol, aglyconeCopy, sugarAtomSet)

	for h := range sugarAtomSet {
		if spiroSet[h] {
			continue // stays in both copies; never deleted from aglyconeCopy
		}
		if aglyconeCopy.HasAtom(h) {
			_ = aglyconeCopy.RemoveAtom(h)
		}
	}
	for _, h := range mol.Atoms() {
		if !sugarAtomSet[h] {
			if sugarScratch.HasAtom(h) {
				_ = sugarScratch.RemoveAtom(h)
			}
		}
	}

	for _, h := range aglyconeCopy.Atoms() {
		maps.OriginalToAglyconeAtom[h] = h
	}
	for _, h := range sugarScratch.Atoms() {
		maps.OriginalToSugarAtom[h] = h
	}
	for _, bh := range aglyconeCopy.Bonds() {
		maps.OriginalToAglyconeBond[bh] = bh
	}
	for _, bh := range sugarScratch.Bonds() {
		maps.OriginalToSugarBond[bh] = bh
	}

	var warnings []Warning
	boundaryWarnings, sawBrokenBond := reconstructBoundaries(mol, aglyconeCopy, sugarScratch, sugarAtomSet, spiroSet, opts.MarkAttachPointsByR)
	warnings = append(warnings, boundaryWarnings...)

	for h := range spiroSet {
		addSpiroStubs(aglyconeCopy, h, opts.MarkAttachPointsByR)
		addSpiroStubs(sugarScratch, h, opts.MarkAttachPointsByR)
	}

	if len(sugarAtomSet) > 0 && aglyconeCopy.AtomCount() > 0 && !sawBrokenBond && len(spiroSet) == 0 && mol.IsConnected() {
		warnings = append(warnings, Warning{
			Code:    WarningUnbalancedBoundaryBond,
			Message: "sugar atoms were removed but no boundary bond was reconstructed",
		})
	}

	if !opts.PreserveStereochemistry {
		aglyconeCopy.DropStereoElements()
		sugarScratch.DropStereoElements()
	}

	// Post-processing splits run on the whole sugars copy, still a single
	// IAtomContainer-equivalent at this point, before it is partitioned
	// into its final independent fragments: a split bond may disconnect
	// what was one sugar moiety into several, and those newly-disconnected
	// pieces must come out as separate fragments below, not be silently
	// reunited by having already been partitioned first.
	if opts.ApplyPostProcessingSplits {
		splitOpts := splitter.Options{
			MarkAttachPointsByR:       opts.MarkAttachPointsByR,
			LimitPostProcessingBySize: opts.LimitPostProcessingBySize,
		}
		// Linear patterns (ester, cross-linking ether, ether, peroxide)
		// run before the circular O-glycosidic pattern, matching the
		// original's linear-splitter-before-circular-splitter ordering.
		if _, err := splitter.SplitEtherEsterAndPeroxidePostprocessing(sugarScratch, detector, splitOpts); err != nil {
			warnings = append(warnings, Warning{
				Code:    WarningSplitterPatternFailure,
				Message: fmt.Sprintf("ether/ester/peroxide post-processing failed: %v", err),
			})
		}
		if _, err := splitter.SplitOGlycosidicBonds(sugarScratch, detector, splitOpts); err != nil {
			warnings = append(warnings, Warning{
				Code:    WarningSplitterPatternFailure,
				Message: fmt.Sprintf("o-glycosidic splitting failed: %v", err),
			})
		}
	}

	// Map clean-up: post-processing may have removed atoms and bonds from
	// the sugars copy, so drop map entries that no longer resolve there.
	for orig, h := range maps.OriginalToSugarAtom {
		if !sugarScratch.HasAtom(h) {
			delete(maps.OriginalToSugarAtom, orig)
		}
	}
	for orig, bh := range maps.OriginalToSugarBond {
		if _, err := sugarScratch.Bond(bh); err != nil {
			delete(maps.OriginalToSugarBond, orig)
		}
	}

	sugarFragments := sugarScratch.PartitionIntoMolecules()

	if opts.DiscardTooSmallSugarFragments {
		var kept []*molgraph.Molecule
		for _, frag := range sugarFragments {
			if detector.IsTooSmallToPreserve(frag.Atoms()) {
				warnings = append(warnings, Warning{
					Code:    WarningOrphanedSugarFragment,
					Message: "sugar fragment below preservation threshold was dropped",
				})
				continue
			}
			kept = append(kept, frag)
		}
		sugarFragments = kept
	}

	return aglyconeCopy, sugarFragments, maps, warnings, nil
}

// collectSpiroAtoms returns the subset of sugarAtomSet whose aglyconeCopy
// image is still present (removeFragment having left it in place) and
// spiro-marked, gated by allowSpiro (Settings.DetectSpiroRingsAsCircularSugars).
func collectSpiroAtoms(aglyconeCopy *molgraph.Molecule, sugarAtomSet map[molgraph.AtomHandle]bool, allowSpiro bool) map[molgraph.AtomHandle]bool {
	spiroSet := make(map[molgraph.AtomHandle]bool)
	if !allowSpiro {
		return spiroSet
	}
	for h := range sugarAtomSet {
		a, err := aglyconeCopy.Atom(h)
		if err != nil {
			continue
		}
		if isSpiroMarked(a) {
			spiroSet[h] = true
		}
	}
	return spiroSet
}

func isSpiroMarked(a *molgraph.Atom) bool {
	v, ok := a.Properties[molgraph.SpiroMarkerKey]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// addSpiroStubs caps a spiro atom's two ring bonds that were severed by
// its other ring no longer being present in container: two single-bond
// attachment stubs, either pseudo "R" markers or a flat two-unit
// implicit-hydrogen saturation, depending on markByR.
func addSpiroStubs(container *molgraph.Molecule, h molgraph.AtomHandle, markByR bool) {
	if !container.HasAtom(h) {
		return
	}
	if markByR {
		attachPseudoMarker(container, h, molgraph.BondOrderSingle)
		attachPseudoMarker(container, h, molgraph.BondOrderSingle)
		return
	}
	saturateInPlace(container, h, 2)
}

// reconstructBoundaries walks every bond of the original molecule whose
// endpoints now live on opposite sides of the partition and repairs each
// side per the carbon/heteroatom dispatch described in DESIGN.md's Open
// Question 1 and 3 decisions. A bond with either endpoint in spiroSet is
// skipped: that atom's severed ring bonds are handled by addSpiroStubs
// instead, since the atom is kept (not duplicated) on both sides.
//
// Returns the Warnings raised and whether at least one boundary bond was
// actually reconstructed (used for the unbalanced-boundary diagnostic).
func reconstructBoundaries(original, aglycone, sugar *molgraph.Molecule, sugarAtomSet, spiroSet map[molgraph.AtomHandle]bool, markAttachPointsByR bool) ([]Warning, bool) {
	var warnings []Warning
	sawBrokenBond := false

	for _, bh := range original.Bonds() {
		b, err := original.Bond(bh)
		if err != nil {
			continue
		}
		aInSugar, bInSugar := sugarAtomSet[b.A], sugarAtomSet[b.B]
		if aInSugar == bInSugar {
			continue // not a boundary bond
		}
		if spiroSet[b.A] || spiroSet[b.B] {
			continue // handled by addSpiroStubs
		}

		aglyconeAtomHandle, sugarAtomHandle := b.A, b.B
		if aInSugar {
			aglyconeAtomHandle, sugarAtomHandle = b.B, b.A
		}

		aglyconeAtom, aErr := original.Atom(aglyconeAtomHandle)
		sugarAtom, sErr := original.Atom(sugarAtomHandle)
		if aErr != nil || sErr != nil {
			warnings = append(warnings, Warning{
				Code:    WarningUnbalancedBoundaryBond,
				Message: "boundary bond endpoint missing from original molecule",
				Bond:    bh,
			})
			continue
		}

		sawBrokenBond = true
		order := b.Order
		weight := order.OrderWeight()
		aglyconeIsCarbon := aglyconeAtom.Symbol == carbonSymbol
		sugarIsCarbon := sugarAtom.Symbol == carbonSymbol

		switch {
		case aglyconeIsCarbon && !sugarIsCarbon:
			// Carbon stays on the aglycone; heteroatom is duplicated
			// onto the aglycone and saturated on the sugar side.
			duplicateHeteroatomAcrossBoundary(original, sugarAtomHandle, aglycone, aglyconeAtomHandle, sugar, weight)
		case !aglyconeIsCarbon && sugarIsCarbon:
			duplicateHeteroatomAcrossBoundary(original, aglyconeAtomHandle, sugar, sugarAtomHandle, aglycone, weight)
		case !aglyconeIsCarbon && !sugarIsCarbon:
			// Hetero-hetero bridge: saturate both retained atoms in
			// place, no duplication (Open Question 1).
			saturateInPlace(aglycone, aglyconeAtomHandle, weight)
			saturateInPlace(sugar, sugarAtomHandle, weight)
		default:
			// Carbon-carbon boundary: mark the severed valence either
			// with a pseudo attachment atom or a direct implicit-hydrogen
			// saturation, per Options.MarkAttachPointsByR.
			if markAttachPointsByR {
				attachPseudoMarker(aglycone, aglyconeAtomHandle, order)
				attachPseudoMarker(sugar, sugarAtomHandle, order)
			} else {
				saturateInPlace(aglycone, aglyconeAtomHandle, weight)
				saturateInPlace(sugar, sugarAtomHandle, weight)
			}
		}
	}

	return warnings, sawBrokenBond
}

// duplicateHeteroatomAcrossBoundary implements the R-marked heteroatom
// saturation formula from DESIGN.md's Open Question 3: the heteroatom
// named by heteroHandle (read from original) is duplicated into
// duplicateInto, bonded to carbonHandle with the broken bond's order, and
// its implicit hydrogen count is set to make up the valence the original
// heteroatom spent on its far side. The heteroatom's own retained copy in
// homeContainer is saturated by the flat broken bond order.
//
// This fixed duplicate-with-formula behavior applies regardless of
// Options.MarkAttachPointsByR: a missing oxygen (or other heteroatom)
// substituent cannot be represented by a bare "R" marker without losing
// the chemical identity of what was severed, unlike a carbon-carbon
// boundary where either representation is equally uninformative. See
// DESIGN.md's Open Question decisions.
func duplicateHeteroatomAcrossBoundary(original *molgraph.Molecule, heteroHandle molgraph.AtomHandle, duplicateInto *molgraph.Molecule, carbonHandle molgraph.AtomHandle, homeContainer *molgraph.Molecule, order float64) {
	heteroOrig, err := original.Atom(heteroHandle)
	if err != nil {
		return
	}

	dup := duplicateInto.AddAtom(heteroOrig.Symbol, heteroOrig.AtomicNumber)
	dup.IsAromatic = heteroOrig.IsAromatic
	bondOrderSum := original.BondOrderSum(heteroHandle)
	implicitH := int(bondOrderSum - (1 + order))
	if implicitH < 0 {
		implicitH = 0
	}
	dup.ImplicitHCount = implicitH

	bondOrder := molgraph.BondOrderSingle
	switch order {
	case 2:
		bondOrder = molgraph.BondOrderDouble
	case 3:
		bondOrder = molgraph.BondOrderTriple
	case 1.5:
		bondOrder = molgraph.BondOrderAromatic
	}
	_, _ = duplicateInto.AddBond(carbonHandle, dup.Handle, bondOrder)

	saturateInPlace(homeContainer, heteroHandle, order)
}

// saturateInPlace adds the broken bond's order to h's implicit hydrogen
// count within container, treating UnsetImplicitH as a zero baseline.
func saturateInPlace(container *molgraph.Molecule, h molgraph.AtomHandle, order float64) {
	a, err := container.Atom(h)
	if err != nil {
		return
	}
	base := a.ImplicitHCount
	if base == molgraph.UnsetImplicitH {
		base = 0
	}
	a.ImplicitHCount = base + int(order)
}

// attachPseudoMarker adds a pseudo "R" attachment atom bonded to h with
// the broken bond's order, marking where the other fragment used to
// attach without performing any saturation arithmetic (the R atom
// symbolically stands in for the missing substituent).
func attachPseudoMarker(container *molgraph.Molecule, h molgraph.AtomHandle, order molgraph.BondOrder) {
	if !container.HasAtom(h) {
		return
	}
	r := container.AddPseudoAtom()
	_, _ = container.AddBond(h, r.Handle, order)
}
