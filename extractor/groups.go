// File: groups.go
// Role: index/map retrieval helpers mirroring getAtomIndicesOfGroup,
// getBondIndicesOfGroup and getGroupIndicesForAllAtoms in
// original_source/SugarDetectionUtility.java.

package extractor

import (
	"sort"

	"github.com/Steinbeck-Lab/MORTAR/molgraph"
)

// GroupKind distinguishes the aglycone group from a sugar-fragment group
// when indexing fragments produced by CopyAndExtract.
type GroupKind int

const (
	GroupAglycone GroupKind = iota
	GroupSugar
)

// Group names one fragment produced by a CopyAndExtract call: either the
// aglycone (Index is ignored) or the sugar fragment at position Index
// within the returned sugar-fragment slice.
type Group struct {
	Kind  GroupKind
	Index int
}

// AtomIndicesOfGroup returns the handles of every atom belonging to group
// that also corresponds to an atom of the original molecule mol, per
// maps. Atoms introduced after maps was populated — boundary duplicates,
// pseudo "R" markers, spiro saturation stubs — were never entered into
// maps (it is built from aglyconeCopy/sugarScratch's atoms before
// reconstructBoundaries runs) and so are excluded, matching
// getAtomIndicesOfGroup's original-atom-only contract.
//
// Complexity: O(V) in the named fragment.
func AtomIndicesOfGroup(group Group, mol *molgraph.Molecule, maps *Maps, aglycone *molgraph.Molecule, sugarFragments []*molgraph.Molecule) ([]molgraph.AtomHandle, error) {
	if mol == nil || maps == nil {
		return nil, ErrNilMolecule
	}
	frag, err := resolveGroup(group, aglycone, sugarFragments)
	if err != nil {
		return nil, err
	}

	inGroup := originalAtomSet(group, maps)
	var out []molgraph.AtomHandle
	for _, h := range frag.Atoms() {
		if inGroup[h] {
			out = append(out, h)
		}
	}
	return out, nil
}

// BondIndicesOfGroup returns the handles of every bond belonging to group
// whose own endpoints both correspond to atoms of the original molecule
// mol, per maps, excluding bonds introduced by boundary reconstruction
// (e.g. a fresh bond to a pseudo marker or a duplicated heteroatom).
//
// Complexity: O(E) in the named fragment.
func BondIndicesOfGroup(group Group, mol *molgraph.Molecule, maps *Maps, aglycone *molgraph.Molecule, sugarFragments []*molgraph.Molecule) ([]molgraph.BondHandle, error) {
	if mol == nil || maps == nil {
		return nil, ErrNilMolecule
	}
	frag, err := resolveGroup(group, aglycone, sugarFragments)
	if err != nil {
		return nil, err
	}

	inGroup := originalAtomSet(group, maps)
	var out []molgraph.BondHandle
	for _, bh := range frag.Bonds() {
		b, err := frag.Bond(bh)
		if err != nil || !inGroup[b.A] || !inGroup[b.B] {
			continue
		}
		out = append(out, bh)
	}
	return out, nil
}

// originalAtomSet returns the set of copy-side atom handles that
// correspond to an original-molecule atom for group's side of maps
// (aglycone-side or sugar-side).
func originalAtomSet(group Group, maps *Maps) map[molgraph.AtomHandle]bool {
	copyMap := maps.OriginalToAglyconeAtom
	if group.Kind == GroupSugar {
		copyMap = maps.OriginalToSugarAtom
	}
	out := make(map[molgraph.AtomHandle]bool, len(copyMap))
	for _, copyHandle := range copyMap {
		out[copyHandle] = true
	}
	return out
}

// GroupIndicesForAllAtoms returns, for every atom handle across aglycone
// and every sugar fragment, which Group it belongs to. Sugar membership
// is assigned first and aglycone membership last, so an atom kept in
// both copies (a spiro center preserved on both sides of the boundary,
// per Finding 1's spiro handling) resolves to the aglycone group — the
// original's tie-break, aglycone over sugars. An original-molecule atom
// handle that was consumed by boundary reconstruction and no longer
// appears in any fragment is simply absent from the result.
//
// Complexity: O(V) total across all fragments.
func GroupIndicesForAllAtoms(aglycone *molgraph.Molecule, sugarFragments []*molgraph.Molecule) map[molgraph.AtomHandle]Group {
	out := make(map[molgraph.AtomHandle]Group)
	for i, frag := range sugarFragments {
		for _, h := range frag.Atoms() {
			out[h] = Group{Kind: GroupSugar, Index: i}
		}
	}
	for _, h := range aglycone.Atoms() {
		out[h] = Group{Kind: GroupAglycone}
	}
	return out
}

// SortedGroups returns every Group present across aglycone and
// sugarFragments, aglycone first, then sugar fragments in index order.
func SortedGroups(sugarFragments []*molgraph.Molecule) []Group {
	out := make([]Group, 0, len(sugarFragments)+1)
	out = append(out, Group{Kind: GroupAglycone})
	indices := make([]int, len(sugarFragments))
	for i := range sugarFragments {
		indices[i] = i
	}
	sort.Ints(indices)
	for _, i := range indices {
		out = append(out, Group{Kind: GroupSugar, Index: i})
	}
	return out
}

func resolveGroup(group Group, aglycone *molgraph.Molecule, sugarFragments []*molgraph.Molecule) (*molgraph.Molecule, error) {
	if group.Kind == GroupAglycone {
		if aglycone == nil {
			return nil, ErrNilMolecule
		}
		return aglycone, nil
	}
	if group.Index < 0 || group.Index >= len(sugarFragments) {
		return nil, ErrNilMolecule
	}
	return sugarFragments[group.Index], nil
}
