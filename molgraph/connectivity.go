// File: connectivity.go
// Role: connected-component analysis over a Molecule, used by the
// extractor to partition a sugars-only copy into individual sugar
// fragment molecules once aglycone atoms have been stripped out.
//
// Grounded on dfs/dfs.go's full-traversal-as-forest walker idiom,
// collapsed into a single pass that buckets atoms by component instead of
// recording visit order/depth/parent (none of which the partition step
// needs).

package molgraph

// IsConnected reports whether every atom in m is reachable from every
// other atom. An empty molecule is considered connected.
//
// Complexity: O(V + E).
func (m *Molecule) IsConnected() bool {
	atoms := m.Atoms()
	if len(atoms) <= 1 {
		return true
	}

	visited := m.reachableFrom(atoms[0])
	return len(visited) == len(atoms)
}

// PartitionIntoMolecules splits m into one independent Molecule per
// connected component, preserving atom/bond handles and properties via
// DeeperCopy semantics. The returned slice is ordered by each component's
// smallest atom handle, for determinism.
//
// Complexity: O(V + E).
func (m *Molecule) PartitionIntoMolecules() []*Molecule {
	atoms := m.Atoms()
	seen := make(map[AtomHandle]bool, len(atoms))
	var components [][]AtomHandle

	for _, root := range atoms {
		if seen[root] {
			continue
		}
		comp := m.reachableFrom(root)
		ordered := make([]AtomHandle, 0, len(comp))
		for h := range comp {
			seen[h] = true
			ordered = append(ordered, h)
		}
		sortHandles(ordered)
		components = append(components, ordered)
	}

	out := make([]*Molecule, 0, len(components))
	for _, comp := range components {
		out = append(out, m.inducedSubmolecule(comp))
	}
	return out
}

// reachableFrom returns the set of atom handles reachable from root,
// including root itself, via an iterative DFS over adjacency.
func (m *Molecule) reachableFrom(root AtomHandle) map[AtomHandle]struct{} {
	visited := map[AtomHandle]struct{}{root: {}}
	stack := []AtomHandle{root}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range m.Neighbors(cur) {
			if _, ok := visited[nb]; !ok {
				visited[nb] = struct{}{}
				stack = append(stack, nb)
			}
		}
	}

	return visited
}

// inducedSubmolecule returns a fresh Molecule containing only the given
// atoms and the bonds whose both endpoints are kept, preserving handles
// and properties. Mirrors core/view.go's InducedSubgraph, generalized to
// handle-addressed molecules.
func (m *Molecule) inducedSubmolecule(keep []AtomHandle) *Molecule {
	keepSet := make(map[AtomHandle]bool, len(keep))
	for _, h := range keep {
		keepSet[h] = true
	}

	out := New()
	m.muAtom.RLock()
	for _, h := range keep {
		out.atoms[h] = deeperCopyAtomLocked(m.atoms[h])
		out.adjacency[h] = make(map[AtomHandle]BondHandle)
	}
	m.muAtom.RUnlock()

	m.muBondAdj.RLock()
	for h, b := range m.bonds {
		if keepSet[b.A] && keepSet[b.B] {
			nb := deeperCopyBondLocked(b)
			out.bonds[h] = nb
			out.adjacency[nb.A][nb.B] = h
			out.adjacency[nb.B][nb.A] = h
		}
	}
	m.muBondAdj.RUnlock()

	for _, se := range m.StereoElements() {
		if stereoWithinSet(se, keepSet) {
			cse := &StereoElement{
				Kind:          se.Kind,
				FocusAtom:     se.FocusAtom,
				FocusBond:     se.FocusBond,
				Configuration: se.Configuration,
				Carriers:      se.Map(),
			}
			out.stereo = append(out.stereo, cse)
		}
	}

	for _, h := range m.LonePairs() {
		if keepSet[h] {
			out.lonePairs = append(out.lonePairs, h)
		}
	}
	for _, h := range m.SingleElectrons() {
		if keepSet[h] {
			out.singleElectrons = append(out.singleElectrons, h)
		}
	}

	out.nextAtom = m.nextAtom
	out.nextBond = m.nextBond

	return out
}

func stereoWithinSet(se *StereoElement, keep map[AtomHandle]bool) bool {
	if se.Kind == StereoKindAtom && !keep[se.FocusAtom] {
		return false
	}
	for _, c := range se.Carriers {
		if !keep[c] {
			return false
		}
	}
	return true
}
