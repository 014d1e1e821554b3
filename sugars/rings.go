// File: rings.go
// Role: ring perception, acyclic-chain discovery, and spiro-atom marking
// for HeuristicDetector. Grounded on dfs/dfs.go's walker (Parent map used
// to recover a cycle from a discovered back-edge; OnVisit-equivalent
// bookkeeping folded into one explicit stack-based walk since no external
// hook is needed here).

package sugars

import (
	"sort"

	"github.com/Steinbeck-Lab/MORTAR/molgraph"
)

// perceiveRings returns a cycle basis of mol: one ring per independent
// back-edge discovered during a DFS forest walk. This is not guaranteed
// to be the SSSR (smallest set of smallest rings) in the general case,
// but is sufficient for the size/composition heuristics this package
// applies, and is deterministic for a fixed molecule.
func perceiveRings(mol *molgraph.Molecule) ([][]molgraph.AtomHandle, error) {
	if mol == nil {
		return nil, ErrNilMolecule
	}

	atoms := mol.Atoms()
	parent := make(map[molgraph.AtomHandle]molgraph.AtomHandle, len(atoms))
	depth := make(map[molgraph.AtomHandle]int, len(atoms))
	visited := make(map[molgraph.AtomHandle]bool, len(atoms))
	var rings [][]molgraph.AtomHandle
	seenRing := make(map[string]bool)

	for _, root := range atoms {
		if visited[root] {
			continue
		}
		depth[root] = 0
		stack := []molgraph.AtomHandle{root}

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			// An atom is visited when popped, not when pushed, so its
			// parent is the atom that pushed it last and every non-tree
			// edge leads back to an ancestor, as in a recursive DFS.
			if visited[cur] {
				continue
			}
			visited[cur] = true

			for _, nb := range mol.Neighbors(cur) {
				if nb == parent[cur] {
					continue
				}
				if !visited[nb] {
					parent[nb] = cur
					depth[nb] = depth[cur] + 1
					stack = append(stack, nb)
					continue
				}
				// Back edge: nb is an ancestor (or another tree atom
				// already visited); only report it once per direction
				// and only when it closes a cycle back toward the root.
				if depth[nb] < depth[cur] {
					ring := ringFromBackEdge(parent, cur, nb)
					if len(ring) >= 3 {
						key := ringKey(ring)
						if !seenRing[key] {
							seenRing[key] = true
							rings = append(rings, ring)
						}
					}
				}
			}
		}
	}

	return rings, nil
}

// ringFromBackEdge reconstructs the cycle closed by the back edge
// (from, to) by walking parent pointers from "from" up to "to".
func ringFromBackEdge(parent map[molgraph.AtomHandle]molgraph.AtomHandle, from, to molgraph.AtomHandle) []molgraph.AtomHandle {
	var ring []molgraph.AtomHandle
	cur := from
	for {
		ring = append(ring, cur)
		if cur == to {
			break
		}
		p, ok := parent[cur]
		if !ok {
			// to is not an ancestor of from; not a simple back-edge ring.
			return nil
		}
		cur = p
	}
	return ring
}

// ringKey produces a canonical, order-independent key for a ring so the
// same cycle discovered from either endpoint is only reported once.
func ringKey(ring []molgraph.AtomHandle) string {
	sorted := make([]molgraph.AtomHandle, len(ring))
	copy(sorted, ring)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	key := make([]byte, 0, len(sorted)*8)
	for _, h := range sorted {
		key = append(key, byte(h), byte(h>>8), byte(h>>16), byte(h>>24),
			byte(h>>32), byte(h>>40), byte(h>>48), byte(h>>56))
	}
	return string(key)
}

// markSpiroAtoms stamps molgraph.SpiroMarkerKey = true on every atom that
// belongs to exactly two of the discovered rings and whose intersection
// with each is a single atom (the classic spiro-center definition).
func markSpiroAtoms(mol *molgraph.Molecule, rings [][]molgraph.AtomHandle) {
	membership := make(map[molgraph.AtomHandle][]int)
	for i, ring := range rings {
		for _, h := range ring {
			membership[h] = append(membership[h], i)
		}
	}
	for h, idx := range membership {
		if len(idx) != 2 {
			continue
		}
		shared := 0
		for _, x := range rings[idx[0]] {
			for _, y := range rings[idx[1]] {
				if x == y {
					shared++
				}
			}
		}
		if shared != 1 {
			continue
		}
		a, err := mol.Atom(h)
		if err != nil {
			continue
		}
		a.Properties[molgraph.SpiroMarkerKey] = true
	}
}

// perceiveAcyclicChains returns connected components of non-ring atoms
// with degree <= 2, each of size at least minSize, as candidate linear
// sugar fragments.
func perceiveAcyclicChains(mol *molgraph.Molecule, minSize int) [][]molgraph.AtomHandle {
	rings, err := perceiveRings(mol)
	if err != nil {
		return nil
	}
	ringAtoms := make(map[molgraph.AtomHandle]bool)
	for _, ring := range rings {
		for _, h := range ring {
			ringAtoms[h] = true
		}
	}

	eligible := make(map[molgraph.AtomHandle]bool)
	for _, h := range mol.Atoms() {
		if ringAtoms[h] {
			continue
		}
		if mol.Degree(h) <= 2 {
			eligible[h] = true
		}
	}

	visited := make(map[molgraph.AtomHandle]bool)
	var chains [][]molgraph.AtomHandle
	for h := range eligible {
		if visited[h] {
			continue
		}
		var comp []molgraph.AtomHandle
		stack := []molgraph.AtomHandle{h}
		visited[h] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, cur)
			for _, nb := range mol.Neighbors(cur) {
				if eligible[nb] && !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
		if len(comp) >= minSize {
			sortAtomHandles(comp)
			chains = append(chains, comp)
		}
	}

	sort.Slice(chains, func(i, j int) bool { return chains[i][0] < chains[j][0] })
	return chains
}
