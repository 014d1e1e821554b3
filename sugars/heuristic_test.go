package sugars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steinbeck-Lab/MORTAR/molgraph"
	"github.com/Steinbeck-Lab/MORTAR/sugars"
)

// buildPyranoseAttachedToCore builds a six-membered
// carbocyclic core bonded to a six-membered pyranose-like ring bearing
// two hydroxyls, joined directly by a single carbon-carbon bond (a
// C-glycoside, so the core stays connected without any bridging atom).
func buildPyranoseAttachedToCore(t *testing.T) (*molgraph.Molecule, []molgraph.AtomHandle) {
	t.Helper()
	mol := molgraph.New()

	core := make([]*molgraph.Atom, 6)
	for i := range core {
		core[i] = mol.AddAtom("C", 6)
	}
	for i := 0; i < 6; i++ {
		_, err := mol.AddBond(core[i].Handle, core[(i+1)%6].Handle, molgraph.BondOrderSingle)
		require.NoError(t, err)
	}

	ring := make([]*molgraph.Atom, 6)
	ring[0] = mol.AddAtom("O", 8)
	for i := 1; i < 6; i++ {
		ring[i] = mol.AddAtom("C", 6)
	}
	for i := 0; i < 6; i++ {
		_, err := mol.AddBond(ring[i].Handle, ring[(i+1)%6].Handle, molgraph.BondOrderSingle)
		require.NoError(t, err)
	}
	for _, idx := range []int{2, 3} {
		oh := mol.AddAtom("O", 8)
		oh.ImplicitHCount = 1
		_, err := mol.AddBond(ring[idx].Handle, oh.Handle, molgraph.BondOrderSingle)
		require.NoError(t, err)
	}

	_, err := mol.AddBond(core[0].Handle, ring[1].Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)

	ringHandles := make([]molgraph.AtomHandle, len(ring))
	for i, a := range ring {
		ringHandles[i] = a.Handle
	}
	return mol, ringHandles
}

func TestRemoveCircularSugarsRemovesPyranoseRing(t *testing.T) {
	mol, ringHandles := buildPyranoseAttachedToCore(t)

	// The ring also carries two exocyclic hydroxyls, so it crosses more
	// than one bond to the rest of the molecule; disable the
	// terminal-only restriction to exercise plain ring classification.
	settings := sugars.DefaultSettings()
	settings.RemoveOnlyTerminalSugars = false
	detector := sugars.NewHeuristicDetector(settings)

	removed, err := detector.RemoveCircularSugars(mol)
	require.NoError(t, err)

	assert.ElementsMatch(t, ringHandles, removed)
	// The six carbocyclic core atoms plus the two now-orphaned hydroxyl
	// oxygens remain; only the ring atoms themselves were removed.
	assert.Equal(t, 8, mol.AtomCount())
}

// buildEtherLinkedChainWithFlankingOxygens builds a five-atom C-O-C-O-C
// backbone (every backbone atom at degree 2, so all five are eligible as
// one acyclic-chain component) capped at each end by an oxygen bonded to
// two extra carbon stubs, which pushes that capping oxygen's degree to
// three so it stays outside the chain component while still counting as
// an exocyclic oxygen substituent for the linear-sugar heuristic.
func buildEtherLinkedChainWithFlankingOxygens(t *testing.T) (*molgraph.Molecule, []molgraph.AtomHandle) {
	t.Helper()
	mol := molgraph.New()

	c0 := mol.AddAtom("C", 6)
	o1 := mol.AddAtom("O", 8)
	c1 := mol.AddAtom("C", 6)
	o2 := mol.AddAtom("O", 8)
	c2 := mol.AddAtom("C", 6)
	backbone := []*molgraph.Atom{c0, o1, c1, o2, c2}
	for i := 0; i < len(backbone)-1; i++ {
		_, err := mol.AddBond(backbone[i].Handle, backbone[i+1].Handle, molgraph.BondOrderSingle)
		require.NoError(t, err)
	}

	capOxygen := func(anchor *molgraph.Atom) {
		o := mol.AddAtom("O", 8)
		_, err := mol.AddBond(anchor.Handle, o.Handle, molgraph.BondOrderSingle)
		require.NoError(t, err)
		for i := 0; i < 2; i++ {
			stub := mol.AddAtom("C", 6)
			_, err := mol.AddBond(o.Handle, stub.Handle, molgraph.BondOrderSingle)
			require.NoError(t, err)
		}
	}
	capOxygen(c0)
	capOxygen(c2)

	chain := make([]molgraph.AtomHandle, len(backbone))
	for i, a := range backbone {
		chain[i] = a.Handle
	}
	return mol, chain
}

func TestRemoveLinearSugarsRemovesEtherLinkedChain(t *testing.T) {
	mol, chain := buildEtherLinkedChainWithFlankingOxygens(t)

	settings := sugars.DefaultSettings()
	settings.RemoveOnlyTerminalSugars = false
	detector := sugars.NewHeuristicDetector(settings)

	removed, err := detector.RemoveLinearSugars(mol)
	require.NoError(t, err)
	assert.ElementsMatch(t, chain, removed)
	// Only the five backbone atoms are removed; the two flanking oxygens
	// and their four carbon stubs remain, now disconnected from anything.
	assert.Equal(t, 6, mol.AtomCount())
}

func TestIsTooSmallToPreserve(t *testing.T) {
	settings := sugars.DefaultSettings()
	settings.PreservationModeThreshold = 5
	detector := sugars.NewHeuristicDetector(settings)

	assert.True(t, detector.IsTooSmallToPreserve(make([]molgraph.AtomHandle, 3)))
	assert.False(t, detector.IsTooSmallToPreserve(make([]molgraph.AtomHandle, 5)))
}
