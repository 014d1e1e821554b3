// File: heuristic.go
// Role: HeuristicDetector, the default Detector implementation. Ring
// perception and acyclic-chain discovery are grounded on dfs/dfs.go's
// OnVisit/OnExit/Parent walker idiom; the accept/reject thresholds follow
// the heuristics surrounding SugarRemovalUtility in the Java original this
// module was ported from.

package sugars

import (
	"sort"

	"github.com/Steinbeck-Lab/MORTAR/molgraph"
)

// oxygenSymbol and carbonSymbol name the two element symbols the
// heuristic cares about directly; every other heteroatom counts toward
// "exocyclic substituent" density without being singled out.
const (
	oxygenSymbol = "O"
	carbonSymbol = "C"
)

// HeuristicDetector is a self-contained ring/chain classification
// heuristic: no external cheminformatics toolkit is consulted, per the
// detector's documented scope (classification internals may be treated as
// a given library capability; this module supplies a testable
// approximation instead of vendoring one).
type HeuristicDetector struct {
	settings Settings
}

// NewHeuristicDetector returns a Detector configured with settings.
func NewHeuristicDetector(settings Settings) *HeuristicDetector {
	return &HeuristicDetector{settings: settings}
}

// Settings implements Detector.
func (d *HeuristicDetector) Settings() Settings { return d.settings }

// LinearSugarCandidateMinSize implements Detector.
func (d *HeuristicDetector) LinearSugarCandidateMinSize() int {
	return d.settings.LinearSugarCandidateMinSize
}

// IsTooSmallToPreserve implements Detector.
func (d *HeuristicDetector) IsTooSmallToPreserve(fragment []molgraph.AtomHandle) bool {
	return len(fragment) < d.settings.PreservationModeThreshold
}

// RemoveCircularSugars implements Detector.
func (d *HeuristicDetector) RemoveCircularSugars(mol *molgraph.Molecule) ([]molgraph.AtomHandle, error) {
	if mol == nil {
		return nil, ErrNilMolecule
	}

	rings, err := perceiveRings(mol)
	if err != nil {
		return nil, err
	}
	markSpiroAtoms(mol, rings)

	var removed []molgraph.AtomHandle
	for _, ring := range rings {
		if !d.isCircularSugarCandidate(mol, ring) {
			continue
		}
		if d.settings.RemoveOnlyTerminalSugars && !isTerminalFragment(mol, ring) {
			continue
		}
		if d.IsTooSmallToPreserve(ring) {
			continue
		}
		removed = append(removed, removeFragment(mol, ring)...)
	}

	sortAtomHandles(removed)
	return removed, nil
}

// RemoveLinearSugars implements Detector.
func (d *HeuristicDetector) RemoveLinearSugars(mol *molgraph.Molecule) ([]molgraph.AtomHandle, error) {
	if mol == nil {
		return nil, ErrNilMolecule
	}

	chains := perceiveAcyclicChains(mol, d.settings.LinearSugarCandidateMinSize)

	var removed []molgraph.AtomHandle
	for _, chain := range chains {
		if !d.isLinearSugarCandidate(mol, chain) {
			continue
		}
		if d.settings.RemoveOnlyTerminalSugars && !isTerminalFragment(mol, chain) {
			continue
		}
		if d.IsTooSmallToPreserve(chain) {
			continue
		}
		removed = append(removed, removeFragment(mol, chain)...)
	}

	sortAtomHandles(removed)
	return removed, nil
}

// RemoveCircularAndLinearSugars implements Detector.
func (d *HeuristicDetector) RemoveCircularAndLinearSugars(mol *molgraph.Molecule) ([]molgraph.AtomHandle, error) {
	circ, err := d.RemoveCircularSugars(mol)
	if err != nil {
		return nil, err
	}
	lin, err := d.RemoveLinearSugars(mol)
	if err != nil {
		return nil, err
	}
	return append(circ, lin...), nil
}

// isCircularSugarCandidate applies the ring-shaped heuristic: ring size
// 5-7, a majority of carbons, at least one ring oxygen or a sufficient
// density of exocyclic oxygen substituents, and (unless spiro rings are
// excluded by Settings) tolerance for a spiro-marked atom in the ring.
func (d *HeuristicDetector) isCircularSugarCandidate(mol *molgraph.Molecule, ring []molgraph.AtomHandle) bool {
	if len(ring) < 5 || len(ring) > 7 {
		return false
	}

	ringSet := make(map[molgraph.AtomHandle]bool, len(ring))
	for _, h := range ring {
		ringSet[h] = true
	}

	var carbons, ringOxygens, exocyclicOxygens int
	for _, h := range ring {
		a, err := mol.Atom(h)
		if err != nil {
			continue
		}
		if !d.settings.DetectSpiroRingsAsCircularSugars && isSpiroMarked(a) {
			return false
		}
		switch a.Symbol {
		case carbonSymbol:
			carbons++
		case oxygenSymbol:
			ringOxygens++
		}
		for _, nb := range mol.Neighbors(h) {
			if ringSet[nb] {
				continue
			}
			na, err := mol.Atom(nb)
			if err == nil && na.Symbol == oxygenSymbol {
				exocyclicOxygens++
			}
		}
	}

	if carbons < len(ring)-2 {
		return false
	}
	return ringOxygens >= 1 || exocyclicOxygens >= 2
}

// isLinearSugarCandidate applies the chain-shaped heuristic: a minimum
// length and a sufficient oxygen-to-carbon ratio among chain atoms and
// their immediate exocyclic substituents.
func (d *HeuristicDetector) isLinearSugarCandidate(mol *molgraph.Molecule, chain []molgraph.AtomHandle) bool {
	if len(chain) < d.settings.LinearSugarCandidateMinSize {
		return false
	}

	chainSet := make(map[molgraph.AtomHandle]bool, len(chain))
	for _, h := range chain {
		chainSet[h] = true
	}

	var carbons, oxygens int
	for _, h := range chain {
		a, err := mol.Atom(h)
		if err != nil {
			continue
		}
		if a.Symbol == carbonSymbol {
			carbons++
		}
		for _, nb := range mol.Neighbors(h) {
			if chainSet[nb] {
				continue
			}
			na, err := mol.Atom(nb)
			if err == nil && na.Symbol == oxygenSymbol {
				oxygens++
			}
		}
	}

	if carbons == 0 {
		return false
	}
	return oxygens*2 >= carbons
}

func isSpiroMarked(a *molgraph.Atom) bool {
	v, ok := a.Properties[molgraph.SpiroMarkerKey]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// isTerminalFragment reports whether fragment connects to the rest of the
// molecule through at most one bond.
func isTerminalFragment(mol *molgraph.Molecule, fragment []molgraph.AtomHandle) bool {
	inFrag := make(map[molgraph.AtomHandle]bool, len(fragment))
	for _, h := range fragment {
		inFrag[h] = true
	}

	crossing := 0
	for _, h := range fragment {
		for _, nb := range mol.Neighbors(h) {
			if !inFrag[nb] {
				crossing++
			}
		}
	}
	return crossing <= 1
}

// removeFragment deletes every atom in fragment from mol and returns the
// handles logically consumed by the sugar classification. A spiro-marked
// atom (shared with another ring still standing) is reported as removed
// but left in place: extract.go relies on it surviving in the aglycone
// copy so it can be stamped into the sugar copy too and saturated with
// spiro stubs, per the spiro ring handling in DESIGN.md.
func removeFragment(mol *molgraph.Molecule, fragment []molgraph.AtomHandle) []molgraph.AtomHandle {
	removed := make([]molgraph.AtomHandle, 0, len(fragment))
	for _, h := range fragment {
		a, err := mol.Atom(h)
		if err != nil {
			continue
		}
		if isSpiroMarked(a) {
			removed = append(removed, h)
			continue
		}
		_ = mol.RemoveAtom(h)
		removed = append(removed, h)
	}
	return removed
}

func sortAtomHandles(hs []molgraph.AtomHandle) {
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
}
