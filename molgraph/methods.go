// File: methods.go
// Role: thread-safe atom/bond management on the Molecule type defined in
// types.go. Adjacency is stored as a nested map
// adjacency[a][b] = bondHandle, giving O(1) amortized lookup, insertion
// and deletion of bonds.

package molgraph

import (
	"sort"
	"sync/atomic"
)

// AddAtom inserts a new atom into the Molecule and returns its handle.
// The returned Atom's Handle field is already populated; callers should
// treat the returned pointer as live molecule state, not a detached copy.
//
// Complexity: O(1) amortized.
func (m *Molecule) AddAtom(symbol string, atomicNumber int) *Atom {
	m.muAtom.Lock()
	defer m.muAtom.Unlock()

	h := AtomHandle(atomic.AddUint64(&m.nextAtom, 1))
	a := &Atom{
		Handle:         h,
		Symbol:         symbol,
		AtomicNumber:   atomicNumber,
		ImplicitHCount: UnsetImplicitH,
		Valency:        UnsetValency,
		Properties:     make(map[string]interface{}),
	}
	m.atoms[h] = a

	m.muBondAdj.Lock()
	m.adjacency[h] = make(map[AtomHandle]BondHandle)
	m.muBondAdj.Unlock()

	return a
}

// AddPseudoAtom inserts an "R" attachment-point placeholder atom and
// returns its handle. Pseudo atoms carry no atomic number and are never
// candidates for sugar/aglycone classification themselves.
//
// Complexity: O(1) amortized.
func (m *Molecule) AddPseudoAtom() *Atom {
	a := m.AddAtom("R", 0)
	a.IsPseudo = true
	return a
}

// Atom returns the atom named by h, or (nil, ErrAtomNotFound) if absent.
//
// Complexity: O(1).
func (m *Molecule) Atom(h AtomHandle) (*Atom, error) {
	m.muAtom.RLock()
	defer m.muAtom.RUnlock()
	a, ok := m.atoms[h]
	if !ok {
		return nil, ErrAtomNotFound
	}
	return a, nil
}

// HasAtom reports whether h names an atom currently present in m.
//
// Complexity: O(1).
func (m *Molecule) HasAtom(h AtomHandle) bool {
	m.muAtom.RLock()
	defer m.muAtom.RUnlock()
	_, ok := m.atoms[h]
	return ok
}

// RemoveAtom deletes the atom h, every bond incident to it, and every
// stereo element whose focus or carriers refer to h or to one of those
// bonds.
//
// Complexity: O(deg(h) + number of stereo elements).
func (m *Molecule) RemoveAtom(h AtomHandle) error {
	m.muAtom.Lock()
	defer m.muAtom.Unlock()
	m.muBondAdj.Lock()
	defer m.muBondAdj.Unlock()

	if _, ok := m.atoms[h]; !ok {
		return ErrAtomNotFound
	}

	gone := make(map[BondHandle]bool, len(m.adjacency[h]))
	for nb, bh := range m.adjacency[h] {
		delete(m.bonds, bh)
		delete(m.adjacency[nb], h)
		gone[bh] = true
	}
	delete(m.adjacency, h)
	delete(m.atoms, h)

	var stereo []*StereoElement
	for _, se := range m.stereo {
		refers := (se.Kind == StereoKindAtom && se.FocusAtom == h) || (se.Kind == StereoKindBond && gone[se.FocusBond])
		for _, c := range se.Carriers {
			refers = refers || c == h
		}
		if !refers {
			stereo = append(stereo, se)
		}
	}
	m.stereo = stereo

	m.lonePairs = removeHandle(m.lonePairs, h)
	m.singleElectrons = removeHandle(m.singleElectrons, h)

	return nil
}

func removeHandle(hs []AtomHandle, h AtomHandle) []AtomHandle {
	out := hs[:0]
	for _, x := range hs {
		if x != h {
			out = append(out, x)
		}
	}
	return out
}

// AddBond connects atoms a and b with the given order and returns the new
// bond's handle. Returns ErrSameAtom if a == b, ErrAtomNotFound if either
// endpoint is absent, and ErrDuplicateBond if a bond already connects them
// (the molecular graph model does not support multi-bonds between the
// same pair of atoms; a higher BondOrder should be used instead).
//
// Complexity: O(1).
func (m *Molecule) AddBond(a, b AtomHandle, order BondOrder) (*Bond, error) {
	if a == b {
		return nil, ErrSameAtom
	}

	m.muAtom.RLock()
	_, aok := m.atoms[a]
	_, bok := m.atoms[b]
	m.muAtom.RUnlock()
	if !aok || !bok {
		return nil, ErrAtomNotFound
	}

	m.muBondAdj.Lock()
	defer m.muBondAdj.Unlock()

	if _, ok := m.adjacency[a][b]; ok {
		return nil, ErrDuplicateBond
	}

	h := BondHandle(atomic.AddUint64(&m.nextBond, 1))
	bond := &Bond{Handle: h, A: a, B: b, Order: order, Properties: make(map[string]interface{})}
	m.bonds[h] = bond
	m.adjacency[a][b] = h
	m.adjacency[b][a] = h

	return bond, nil
}

// Bond returns the bond named by h, or (nil, ErrBondNotFound) if absent.
//
// Complexity: O(1).
func (m *Molecule) Bond(h BondHandle) (*Bond, error) {
	m.muBondAdj.RLock()
	defer m.muBondAdj.RUnlock()
	b, ok := m.bonds[h]
	if !ok {
		return nil, ErrBondNotFound
	}
	return b, nil
}

// BondBetween returns the bond connecting a and b, or
// (nil, ErrBondNotFound) if they are not directly bonded.
//
// Complexity: O(1).
func (m *Molecule) BondBetween(a, b AtomHandle) (*Bond, error) {
	m.muBondAdj.RLock()
	defer m.muBondAdj.RUnlock()
	h, ok := m.adjacency[a][b]
	if !ok {
		return nil, ErrBondNotFound
	}
	return m.bonds[h], nil
}

// RemoveBond deletes the bond h from the molecule.
//
// Complexity: O(1).
func (m *Molecule) RemoveBond(h BondHandle) error {
	m.muBondAdj.Lock()
	defer m.muBondAdj.Unlock()

	b, ok := m.bonds[h]
	if !ok {
		return ErrBondNotFound
	}
	delete(m.bonds, h)
	delete(m.adjacency[b.A], b.B)
	delete(m.adjacency[b.B], b.A)

	return nil
}

// Neighbors returns the handles of every atom directly bonded to h, in no
// particular order.
//
// Complexity: O(deg(h)).
func (m *Molecule) Neighbors(h AtomHandle) []AtomHandle {
	m.muBondAdj.RLock()
	defer m.muBondAdj.RUnlock()
	nbrs := m.adjacency[h]
	out := make([]AtomHandle, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	return out
}

// IncidentBonds returns every bond incident to atom h.
//
// Complexity: O(deg(h)).
func (m *Molecule) IncidentBonds(h AtomHandle) []*Bond {
	m.muBondAdj.RLock()
	defer m.muBondAdj.RUnlock()
	nbrs := m.adjacency[h]
	out := make([]*Bond, 0, len(nbrs))
	for _, bh := range nbrs {
		out = append(out, m.bonds[bh])
	}
	return out
}

// Degree returns the number of bonds incident to h.
//
// Complexity: O(1).
func (m *Molecule) Degree(h AtomHandle) int {
	m.muBondAdj.RLock()
	defer m.muBondAdj.RUnlock()
	return len(m.adjacency[h])
}

// BondOrderSum returns the sum of OrderWeight() over every bond incident
// to h, the quantity the saturation arithmetic in the extractor and
// splitter packages needs when recomputing implicit hydrogen counts.
//
// Complexity: O(deg(h)).
func (m *Molecule) BondOrderSum(h AtomHandle) float64 {
	var sum float64
	for _, b := range m.IncidentBonds(h) {
		sum += b.Order.OrderWeight()
	}
	return sum
}

// Atoms returns every atom handle currently present, in ascending handle
// order for deterministic iteration.
//
// Complexity: O(V log V).
func (m *Molecule) Atoms() []AtomHandle {
	m.muAtom.RLock()
	defer m.muAtom.RUnlock()
	out := make([]AtomHandle, 0, len(m.atoms))
	for h := range m.atoms {
		out = append(out, h)
	}
	sortHandles(out)
	return out
}

// Bonds returns every bond handle currently present, in ascending handle
// order for deterministic iteration.
//
// Complexity: O(E log E).
func (m *Molecule) Bonds() []BondHandle {
	m.muBondAdj.RLock()
	defer m.muBondAdj.RUnlock()
	out := make([]BondHandle, 0, len(m.bonds))
	for h := range m.bonds {
		out = append(out, h)
	}
	sortBondHandles(out)
	return out
}

// AtomCount returns the number of atoms currently present.
//
// Complexity: O(1).
func (m *Molecule) AtomCount() int {
	m.muAtom.RLock()
	defer m.muAtom.RUnlock()
	return len(m.atoms)
}

// BondCount returns the number of bonds currently present.
//
// Complexity: O(1).
func (m *Molecule) BondCount() int {
	m.muBondAdj.RLock()
	defer m.muBondAdj.RUnlock()
	return len(m.bonds)
}

// AddStereoElement appends a stereo descriptor to the molecule.
//
// Complexity: O(1) amortized.
func (m *Molecule) AddStereoElement(se *StereoElement) {
	m.muAtom.Lock()
	defer m.muAtom.Unlock()
	m.stereo = append(m.stereo, se)
}

// StereoElements returns the molecule's stereo descriptors. The returned
// slice shares storage with the molecule; callers must not mutate it
// directly other than through the StereoElement.UpdateCarriers method.
//
// Complexity: O(1).
func (m *Molecule) StereoElements() []*StereoElement {
	m.muAtom.RLock()
	defer m.muAtom.RUnlock()
	return m.stereo
}

// AddLonePair records a non-bonding electron pair on atom h.
//
// Complexity: O(1) amortized.
func (m *Molecule) AddLonePair(h AtomHandle) error {
	m.muAtom.Lock()
	defer m.muAtom.Unlock()
	if _, ok := m.atoms[h]; !ok {
		return ErrAtomNotFound
	}
	m.lonePairs = append(m.lonePairs, h)
	return nil
}

// LonePairs returns the sequence of atom handles carrying a recorded lone
// pair, in the order they were added.
//
// Complexity: O(1).
func (m *Molecule) LonePairs() []AtomHandle {
	m.muAtom.RLock()
	defer m.muAtom.RUnlock()
	out := make([]AtomHandle, len(m.lonePairs))
	copy(out, m.lonePairs)
	return out
}

// AddSingleElectron records a radical electron on atom h and increments its
// cached Atom.SingleElectronCount.
//
// Complexity: O(1) amortized.
func (m *Molecule) AddSingleElectron(h AtomHandle) error {
	m.muAtom.Lock()
	defer m.muAtom.Unlock()
	a, ok := m.atoms[h]
	if !ok {
		return ErrAtomNotFound
	}
	m.singleElectrons = append(m.singleElectrons, h)
	a.SingleElectronCount++
	return nil
}

// SingleElectrons returns the sequence of atom handles carrying a recorded
// single electron, in the order they were added.
//
// Complexity: O(1).
func (m *Molecule) SingleElectrons() []AtomHandle {
	m.muAtom.RLock()
	defer m.muAtom.RUnlock()
	out := make([]AtomHandle, len(m.singleElectrons))
	copy(out, m.singleElectrons)
	return out
}

func sortHandles(hs []AtomHandle) {
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
}

func sortBondHandles(hs []BondHandle) {
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
}
