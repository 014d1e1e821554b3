// File: clone.go
// Role: deep-copy primitives used by the extractor and splitter packages
// to build scratch molecules without ever mutating caller-owned state.
// Determinism:
//   - DeeperCopy preserves handle values: a copy's AtomHandle/BondHandle
//     are identical to the source's, so original<->copy maps built by the
//     caller (map[AtomHandle]AtomHandle) stay trivially self-consistent
//     when both sides are addressed into the same copy.
// AI-HINT (file):
//   - DeeperCopy is whole-molecule; DeeperCopyAtom/DeeperCopyBond copy a
//     single element's data without touching the rest of the molecule.

package molgraph

// DeeperCopy returns an independent deep copy of m: every atom and bond is
// a fresh value (same handle, disjoint Properties map), and the returned
// Molecule's internal counters are seeded so that future AddAtom/AddBond
// calls on the copy never collide with a handle that exists in m.
// Atom.AtomTypeName is the one field deliberately left behind: atom types
// are a perception result, and a copy must re-perceive rather than inherit
// a stale type name.
//
// Complexity: O(V + E).
func (m *Molecule) DeeperCopy() *Molecule {
	m.muAtom.RLock()
	defer m.muAtom.RUnlock()
	m.muBondAdj.RLock()
	defer m.muBondAdj.RUnlock()

	out := New()
	out.nextAtom = m.nextAtom
	out.nextBond = m.nextBond

	for h, a := range m.atoms {
		out.atoms[h] = deeperCopyAtomLocked(a)
		out.adjacency[h] = make(map[AtomHandle]BondHandle)
	}
	for h, b := range m.bonds {
		nb := deeperCopyBondLocked(b)
		out.bonds[h] = nb
		out.adjacency[nb.A][nb.B] = h
		out.adjacency[nb.B][nb.A] = h
	}
	for k, v := range m.Properties {
		out.Properties[k] = v
	}
	out.lonePairs = append([]AtomHandle(nil), m.lonePairs...)
	out.singleElectrons = append([]AtomHandle(nil), m.singleElectrons...)
	for _, se := range m.stereo {
		cse := &StereoElement{
			Kind:          se.Kind,
			FocusAtom:     se.FocusAtom,
			FocusBond:     se.FocusBond,
			Configuration: se.Configuration,
			Carriers:      se.Map(),
		}
		out.stereo = append(out.stereo, cse)
	}

	return out
}

// DeeperCopyAtom returns a standalone deep copy of a, suitable for
// inserting into another Molecule's atom map under the same handle. The
// returned Atom shares no mutable state with a.
//
// Complexity: O(P) where P is the number of entries in a.Properties.
func DeeperCopyAtom(a *Atom) *Atom {
	return deeperCopyAtomLocked(a)
}

// DeeperCopyBond returns a standalone deep copy of b.
//
// Complexity: O(P) where P is the number of entries in b.Properties.
func DeeperCopyBond(b *Bond) *Bond {
	return deeperCopyBondLocked(b)
}

func deeperCopyAtomLocked(a *Atom) *Atom {
	na := &Atom{
		Handle:              a.Handle,
		Symbol:              a.Symbol,
		AtomicNumber:        a.AtomicNumber,
		FormalCharge:        a.FormalCharge,
		ImplicitHCount:      a.ImplicitHCount,
		IsAromatic:          a.IsAromatic,
		IsInRing:            a.IsInRing,
		IsPseudo:            a.IsPseudo,
		Valency:             a.Valency,
		Flags:               a.Flags,
		SingleElectronCount: a.SingleElectronCount,
		// AtomTypeName is deliberately NOT copied: atom types are
		// perception results that must be recomputed for the copy.
		Properties: copyPrimitiveProperties(a.Properties),
	}
	if a.Point2D != nil {
		p := *a.Point2D
		na.Point2D = &p
	}
	if a.Point3D != nil {
		p := *a.Point3D
		na.Point3D = &p
	}
	return na
}

func deeperCopyBondLocked(b *Bond) *Bond {
	return &Bond{
		Handle:        b.Handle,
		A:             b.A,
		B:             b.B,
		Order:         b.Order,
		IsAromatic:    b.IsAromatic,
		IsInRing:      b.IsInRing,
		Stereo:        b.Stereo,
		Display:       b.Display,
		ElectronCount: b.ElectronCount,
		Properties:    copyPrimitiveProperties(b.Properties),
	}
}

// copyPrimitiveProperties copies only primitive scalar values (bool,
// string, and numeric kinds), matching the Data Model's restriction that
// non-scalar algorithm state must not leak across a deep copy boundary.
func copyPrimitiveProperties(src map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch v.(type) {
		case bool, string,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			out[k] = v
		}
	}
	return out
}
