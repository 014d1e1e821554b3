// File: special_cases.go
// Role: the two boundary pre-corrections applied before general boundary
// reconstruction, grounded on the "C6-like repair" and "carboxy group
// transfer" special cases inside copyAndExtractAglyconeAndSugars in
// original_source/SugarDetectionUtility.java. Both operate by moving an
// atom handle from the aglycone side of sugarAtomSet into the sugar side
// in place, before any copy/duplication work happens.

package extractor

import "github.com/Steinbeck-Lab/MORTAR/molgraph"

// repairDanglingExocyclicAtoms reclassifies an aglycone-side atom as a
// sugar atom when every one of its bonds, except exactly one boundary
// bond, already leads into the sugar set. This recovers exocyclic
// substituents (most commonly a ring's C6 hydroxymethyl carbon) that the
// Detector left classified with the aglycone purely because the
// substituent itself sits just outside the ring it decorates.
func repairDanglingExocyclicAtoms(original *molgraph.Molecule, aglycone *molgraph.Molecule, sugarAtomSet map[molgraph.AtomHandle]bool) {
	for _, h := range aglycone.Atoms() {
		if sugarAtomSet[h] {
			continue
		}
		nbrs := original.Neighbors(h)
		if len(nbrs) == 0 {
			continue
		}
		boundaryBonds := 0
		allOthersInSugar := true
		for _, nb := range nbrs {
			if sugarAtomSet[nb] {
				boundaryBonds++
			} else {
				allOthersInSugar = false
			}
		}
		if boundaryBonds == len(nbrs) && allOthersInSugar {
			sugarAtomSet[h] = true
		}
	}
}

// transferCarboxyCarbons reclassifies an aglycone carboxylic acid/ester
// carbon (double-bonded to one oxygen, singly bonded to a second oxygen)
// and its double-bonded oxygen as sugar atoms when that carbon's only
// non-oxygen substituent already belongs to the sugar set. The
// single-bonded oxygen stays with the aglycone, so its bond to the carbon
// is reconstructed like any other carbon-heteroatom boundary.
func transferCarboxyCarbons(original *molgraph.Molecule, aglycone *molgraph.Molecule, sugarAtomSet map[molgraph.AtomHandle]bool) {
	for _, h := range aglycone.Atoms() {
		if sugarAtomSet[h] {
			continue
		}
		atom, err := original.Atom(h)
		if err != nil || atom.Symbol != carbonSymbol {
			continue
		}

		var carbonylOxygen, hydroxylOxygen bool
		var otherSubstituent, carbonylHandle molgraph.AtomHandle
		hasOther := false

		for _, bond := range original.IncidentBonds(h) {
			other := bond.A
			if other == h {
				other = bond.B
			}
			oa, err := original.Atom(other)
			if err != nil {
				continue
			}
			if oa.Symbol == "O" {
				if bond.Order == molgraph.BondOrderDouble {
					carbonylOxygen = true
					carbonylHandle = other
				} else {
					hydroxylOxygen = true
				}
				continue
			}
			if hasOther {
				hasOther = false // more than one non-oxygen neighbor: not a simple carboxy carbon
				break
			}
			otherSubstituent = other
			hasOther = true
		}

		if carbonylOxygen && hydroxylOxygen && hasOther && sugarAtomSet[otherSubstituent] {
			sugarAtomSet[h] = true
			sugarAtomSet[carbonylHandle] = true
		}
	}
}
