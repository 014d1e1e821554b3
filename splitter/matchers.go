// File: matchers.go
// Role: the five hand-written neighborhood queries standing in for the
// Java original's SMARTS patterns, grounded on the pattern constants
// and method bodies in original_source/SugarDetectionUtility.java.
//
// The SMARTS strings quoted below name the Java patterns; the queries
// check element symbols, the bridging oxygens' ring membership and
// degree, and the carbonyl, hydroxyl and ring-carbon sub-constraints
// described on each function. They do not check formal charges (+0), and
// apart from the carbonyl carbon of MatchEster and the ring carbon of
// MatchOGlycosidic the flanking carbons are not checked for ring
// membership (!R).

package splitter

import "github.com/Steinbeck-Lab/MORTAR/molgraph"

// oxygenBridge names an acyclic, two-coordinate oxygen flanked by two
// carbons, the common shape shared by all of the single-atom-bridge
// patterns below.
type oxygenBridge struct {
	O, C1, C2 molgraph.AtomHandle
}

func bridgingOxygens(mol *molgraph.Molecule) []oxygenBridge {
	var out []oxygenBridge
	for _, h := range mol.Atoms() {
		a, err := mol.Atom(h)
		if err != nil || a.Symbol != oxygenSymbol || a.IsInRing {
			continue
		}
		nbrs := mol.Neighbors(h)
		if len(nbrs) != 2 {
			continue
		}
		c1, c2 := nbrs[0], nbrs[1]
		a1, err1 := mol.Atom(c1)
		a2, err2 := mol.Atom(c2)
		if err1 != nil || err2 != nil || a1.Symbol != carbonSymbol || a2.Symbol != carbonSymbol {
			continue
		}
		out = append(out, oxygenBridge{O: h, C1: c1, C2: c2})
	}
	return out
}

func bondOrderBetween(mol *molgraph.Molecule, a, b molgraph.AtomHandle) molgraph.BondOrder {
	bond, err := mol.BondBetween(a, b)
	if err != nil {
		return molgraph.BondOrderSingle
	}
	return bond.Order
}

// newSingleBridgeMatch builds a Match for a single-bridging-atom pattern:
// cut loses its bond to bridge, kept keeps its bond to bridge untouched.
func newSingleBridgeMatch(mol *molgraph.Molecule, cut, bridge, kept molgraph.AtomHandle, duplicate, circular bool) Match {
	return Match{
		Cut:       cut,
		Bridge:    bridge,
		Kept:      kept,
		Order:     bondOrderBetween(mol, cut, bridge),
		Duplicate: duplicate,
		FlankCut:  cut,
		FlankKept: kept,
		Circular:  circular,
	}
}

// isCarbonylCarbon reports whether h is an acyclic carbon with a double
// bond to an acyclic oxygen (the carbonyl of a carboxylic
// acid or ester), matching the Ester pattern's
// $(C=!@[O;!R;+0]) sub-constraint.
func isCarbonylCarbon(mol *molgraph.Molecule, h molgraph.AtomHandle) bool {
	a, err := mol.Atom(h)
	if err != nil || a.Symbol != carbonSymbol || a.IsInRing {
		return false
	}
	for _, bond := range mol.IncidentBonds(h) {
		if bond.Order != molgraph.BondOrderDouble {
			continue
		}
		other := bond.A
		if other == h {
			other = bond.B
		}
		oa, err := mol.Atom(other)
		if err == nil && oa.Symbol == oxygenSymbol && !oa.IsInRing {
			return true
		}
	}
	return false
}

// hasHydroxylSubstituent reports whether h (a carbon) carries a
// single-bonded, acyclic, one-coordinate oxygen substituent — a free
// hydroxyl group, matching the Cross-linking Ether pattern's
// $(C-!@[OH1;!R;+0]) sub-constraint.
func hasHydroxylSubstituent(mol *molgraph.Molecule, h molgraph.AtomHandle) bool {
	for _, bond := range mol.IncidentBonds(h) {
		if bond.Order != molgraph.BondOrderSingle {
			continue
		}
		other := bond.A
		if other == h {
			other = bond.B
		}
		oa, err := mol.Atom(other)
		if err == nil && oa.Symbol == oxygenSymbol && !oa.IsInRing && mol.Degree(other) == 1 {
			return true
		}
	}
	return false
}

// isRingCarbonDegree3Or4 reports whether h is a ring carbon with 3 or 4
// bonds, matching the O-glycosidic pattern's [C;R;D3,D4;+0:1] atom.
func isRingCarbonDegree3Or4(mol *molgraph.Molecule, h molgraph.AtomHandle) bool {
	a, err := mol.Atom(h)
	if err != nil || a.Symbol != carbonSymbol || !a.IsInRing {
		return false
	}
	d := mol.Degree(h)
	return d == 3 || d == 4
}

// MatchOGlycosidic finds [C;R;D3,D4;+0:1]-!@[O;!R;D2;+0:2]-!@[C;+0:3]
// bridges: an acyclic bridging oxygen with one ring-carbon flank of
// degree 3 or 4. The ring carbon is the cut flank: it keeps its ring and
// loses the exocyclic oxygen, gaining a fresh duplicate (or R marker).
func MatchOGlycosidic(mol *molgraph.Molecule) []Match {
	var out []Match
	for _, ob := range bridgingOxygens(mol) {
		switch {
		case isRingCarbonDegree3Or4(mol, ob.C1):
			out = append(out, newSingleBridgeMatch(mol, ob.C1, ob.O, ob.C2, true, true))
		case isRingCarbonDegree3Or4(mol, ob.C2):
			out = append(out, newSingleBridgeMatch(mol, ob.C2, ob.O, ob.C1, true, true))
		}
	}
	return out
}

// MatchEster finds
// [C;!R;+0;$(C=!@[O;!R;+0]):1]-!@[O;!R;D2;+0:2]-!@[C;!R;+0:3] bridges: an
// acyclic bridging oxygen with one carbonyl-carbon flank. The carbonyl
// carbon is the cut flank.
func MatchEster(mol *molgraph.Molecule) []Match {
	var out []Match
	for _, ob := range bridgingOxygens(mol) {
		switch {
		case isCarbonylCarbon(mol, ob.C1):
			out = append(out, newSingleBridgeMatch(mol, ob.C1, ob.O, ob.C2, true, false))
		case isCarbonylCarbon(mol, ob.C2):
			out = append(out, newSingleBridgeMatch(mol, ob.C2, ob.O, ob.C1, true, false))
		}
	}
	return out
}

// MatchEthersCrosslinking finds
// [C;!R;+0:1]-!@[O;!R;D2;+0:2]-!@[C;!R;+0;$(C-!@[OH1;!R;+0]):3] bridges:
// an acyclic bridging oxygen with one flank bearing a free hydroxyl
// substituent, excluding bridges already claimed by the ester pattern.
// Per the no-duplication row of the post-processing table, the bridge
// oxygen is never recreated: only the bond to the hydroxylated flank (the
// cut flank) is broken, and both atoms are saturated in place.
func MatchEthersCrosslinking(mol *molgraph.Molecule) []Match {
	var out []Match
	for _, ob := range bridgingOxygens(mol) {
		if isCarbonylCarbon(mol, ob.C1) || isCarbonylCarbon(mol, ob.C2) {
			continue
		}
		switch {
		case hasHydroxylSubstituent(mol, ob.C1):
			out = append(out, newSingleBridgeMatch(mol, ob.C1, ob.O, ob.C2, false, false))
		case hasHydroxylSubstituent(mol, ob.C2):
			out = append(out, newSingleBridgeMatch(mol, ob.C2, ob.O, ob.C1, false, false))
		}
	}
	return out
}

// MatchEthers finds [C;!R;+0:1]-!@[O;!R;D2;+0:2]-!@[C;!R;+0:3] bridges:
// the generic fallback, excluding bridges already claimed by the ester or
// cross-linking-ether patterns. The first-listed carbon is the cut flank
// by convention; the pattern itself has no distinguishing feature
// between the two.
func MatchEthers(mol *molgraph.Molecule) []Match {
	var out []Match
	for _, ob := range bridgingOxygens(mol) {
		if isCarbonylCarbon(mol, ob.C1) || isCarbonylCarbon(mol, ob.C2) {
			continue
		}
		if hasHydroxylSubstituent(mol, ob.C1) || hasHydroxylSubstituent(mol, ob.C2) {
			continue
		}
		out = append(out, newSingleBridgeMatch(mol, ob.C1, ob.O, ob.C2, true, false))
	}
	return out
}

// MatchPeroxides finds
// [C;!R;+0:1]-!@[O;!R;D2;+0:2]-!@[O;!R;D2;+0:3]-!@[C;!R;+0:4] bridges: a
// two-atom acyclic O-O bridge with both flanks acyclic carbons. Per the
// no-duplication row of the post-processing table, only the O-O bond is
// severed; both original oxygens survive, each saturated in place.
func MatchPeroxides(mol *molgraph.Molecule) []Match {
	var out []Match
	for _, h := range mol.Atoms() {
		a, err := mol.Atom(h)
		if err != nil || a.Symbol != oxygenSymbol || a.IsInRing {
			continue
		}
		nbrs := mol.Neighbors(h)
		if len(nbrs) != 2 {
			continue
		}

		for _, other := range nbrs {
			oa, err := mol.Atom(other)
			if err != nil || oa.Symbol != oxygenSymbol || oa.IsInRing {
				continue
			}
			if other <= h {
				continue // visit each O-O pair once, in handle order
			}
			otherNbrs := mol.Neighbors(other)
			if len(otherNbrs) != 2 {
				continue
			}

			var flankCut molgraph.AtomHandle
			for _, n := range nbrs {
				if n != other {
					flankCut = n
				}
			}
			var flankKept molgraph.AtomHandle
			for _, n := range otherNbrs {
				if n != h {
					flankKept = n
				}
			}

			fa, errA := mol.Atom(flankCut)
			fb, errB := mol.Atom(flankKept)
			if errA != nil || errB != nil || fa.Symbol != carbonSymbol || fb.Symbol != carbonSymbol {
				continue
			}

			out = append(out, Match{
				Cut:       h,
				Bridge:    other,
				Kept:      molgraph.NoAtom,
				Order:     bondOrderBetween(mol, h, other),
				Duplicate: false,
				FlankCut:  flankCut,
				FlankKept: flankKept,
				Circular:  false,
			})
		}
	}
	return out
}
