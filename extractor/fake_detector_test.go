package extractor_test

import (
	"github.com/Steinbeck-Lab/MORTAR/molgraph"
	"github.com/Steinbeck-Lab/MORTAR/sugars"
)

// fakeDetector marks a fixed, explicit set of atom handles as sugar atoms
// on every call, bypassing HeuristicDetector's ring/chain heuristics so
// extractor tests can pin exact boundary shapes without depending on
// classification thresholds. Like HeuristicDetector, it reports a
// spiro-marked atom as removed but leaves it in place.
type fakeDetector struct {
	SugarAtoms []molgraph.AtomHandle
	Threshold  int
	MinSize    int
}

func (f *fakeDetector) RemoveCircularSugars(mol *molgraph.Molecule) ([]molgraph.AtomHandle, error) {
	var removed []molgraph.AtomHandle
	for _, h := range f.SugarAtoms {
		if mol.HasAtom(h) {
			if a, err := mol.Atom(h); err == nil && a.Properties[molgraph.SpiroMarkerKey] == true {
				removed = append(removed, h)
				continue
			}
			_ = mol.RemoveAtom(h)
			removed = append(removed, h)
		}
	}
	return removed, nil
}

func (f *fakeDetector) RemoveLinearSugars(mol *molgraph.Molecule) ([]molgraph.AtomHandle, error) {
	return nil, nil
}

func (f *fakeDetector) RemoveCircularAndLinearSugars(mol *molgraph.Molecule) ([]molgraph.AtomHandle, error) {
	return f.RemoveCircularSugars(mol)
}

func (f *fakeDetector) IsTooSmallToPreserve(fragment []molgraph.AtomHandle) bool {
	return len(fragment) < f.Threshold
}

func (f *fakeDetector) LinearSugarCandidateMinSize() int { return f.MinSize }

func (f *fakeDetector) Settings() sugars.Settings { return sugars.DefaultSettings() }

var _ sugars.Detector = (*fakeDetector)(nil)
