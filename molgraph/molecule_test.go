package molgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steinbeck-Lab/MORTAR/molgraph"
)

func buildEthanol(t *testing.T) *molgraph.Molecule {
	t.Helper()
	mol := molgraph.New()
	c1 := mol.AddAtom("C", 6)
	c2 := mol.AddAtom("C", 6)
	o := mol.AddAtom("O", 8)
	_, err := mol.AddBond(c1.Handle, c2.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(c2.Handle, o.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	return mol
}

func TestAddAtomAssignsStableHandles(t *testing.T) {
	mol := molgraph.New()
	a := mol.AddAtom("C", 6)
	b := mol.AddAtom("O", 8)

	assert.NotEqual(t, a.Handle, b.Handle)
	assert.NotEqual(t, molgraph.NoAtom, a.Handle)
	assert.Equal(t, 2, mol.AtomCount())
}

func TestAddBondRejectsSelfLoop(t *testing.T) {
	mol := molgraph.New()
	a := mol.AddAtom("C", 6)

	_, err := mol.AddBond(a.Handle, a.Handle, molgraph.BondOrderSingle)
	assert.ErrorIs(t, err, molgraph.ErrSameAtom)
}

func TestAddBondRejectsDuplicate(t *testing.T) {
	mol := buildEthanol(t)
	atoms := mol.Atoms()

	_, err := mol.AddBond(atoms[0], atoms[1], molgraph.BondOrderSingle)
	assert.ErrorIs(t, err, molgraph.ErrDuplicateBond)
}

func TestRemoveAtomRemovesIncidentBonds(t *testing.T) {
	mol := buildEthanol(t)
	atoms := mol.Atoms()
	before := mol.BondCount()
	require.NoError(t, mol.RemoveAtom(atoms[1]))

	assert.Equal(t, before-2, mol.BondCount())
	assert.Equal(t, 2, mol.AtomCount())
}

func TestDeeperCopyIsIndependent(t *testing.T) {
	mol := buildEthanol(t)
	clone := mol.DeeperCopy()

	atoms := mol.Atoms()
	require.NoError(t, clone.RemoveAtom(atoms[0]))

	assert.Equal(t, 3, mol.AtomCount(), "removing from the clone must not affect the source")
	assert.Equal(t, 2, clone.AtomCount())
}

func TestDeeperCopyPreservesHandles(t *testing.T) {
	mol := buildEthanol(t)
	clone := mol.DeeperCopy()

	assert.ElementsMatch(t, mol.Atoms(), clone.Atoms())
	assert.ElementsMatch(t, mol.Bonds(), clone.Bonds())
}

func TestIsConnected(t *testing.T) {
	mol := buildEthanol(t)
	assert.True(t, mol.IsConnected())

	atoms := mol.Atoms()
	require.NoError(t, mol.RemoveBond(mustBondBetween(t, mol, atoms[0], atoms[1])))
	assert.False(t, mol.IsConnected())
}

func TestPartitionIntoMoleculesSplitsComponents(t *testing.T) {
	mol := buildEthanol(t)
	atoms := mol.Atoms()
	require.NoError(t, mol.RemoveBond(mustBondBetween(t, mol, atoms[0], atoms[1])))

	parts := mol.PartitionIntoMolecules()
	require.Len(t, parts, 2)

	sizes := []int{parts[0].AtomCount(), parts[1].AtomCount()}
	assert.ElementsMatch(t, []int{1, 2}, sizes)
}

func TestBondOrderSum(t *testing.T) {
	mol := molgraph.New()
	c := mol.AddAtom("C", 6)
	o := mol.AddAtom("O", 8)
	n := mol.AddAtom("N", 7)
	_, err := mol.AddBond(c.Handle, o.Handle, molgraph.BondOrderDouble)
	require.NoError(t, err)
	_, err = mol.AddBond(c.Handle, n.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)

	assert.Equal(t, 3.0, mol.BondOrderSum(c.Handle))
}

func TestAddAtomDefaultsValencyToUnset(t *testing.T) {
	mol := molgraph.New()
	a := mol.AddAtom("C", 6)
	assert.Equal(t, molgraph.UnsetValency, a.Valency)
}

func TestBondOrderQuadrupleWeight(t *testing.T) {
	assert.Equal(t, 4.0, molgraph.BondOrderQuadruple.OrderWeight())
}

func TestAddSingleElectronUpdatesSequenceAndCount(t *testing.T) {
	mol := molgraph.New()
	a := mol.AddAtom("N", 7)

	require.NoError(t, mol.AddSingleElectron(a.Handle))
	require.NoError(t, mol.AddSingleElectron(a.Handle))

	assert.Equal(t, []molgraph.AtomHandle{a.Handle, a.Handle}, mol.SingleElectrons())
	assert.Equal(t, 2, a.SingleElectronCount)
}

func TestAddLonePairRejectsUnknownAtom(t *testing.T) {
	mol := molgraph.New()
	err := mol.AddLonePair(molgraph.AtomHandle(999))
	assert.ErrorIs(t, err, molgraph.ErrAtomNotFound)
}

func TestRemoveAtomPurgesLonePairsAndSingleElectrons(t *testing.T) {
	mol := molgraph.New()
	a := mol.AddAtom("O", 8)
	b := mol.AddAtom("O", 8)
	require.NoError(t, mol.AddLonePair(a.Handle))
	require.NoError(t, mol.AddLonePair(b.Handle))
	require.NoError(t, mol.AddSingleElectron(a.Handle))

	require.NoError(t, mol.RemoveAtom(a.Handle))

	assert.Equal(t, []molgraph.AtomHandle{b.Handle}, mol.LonePairs())
	assert.Empty(t, mol.SingleElectrons())
}

func TestDeeperCopyAtomExcludesAtomTypeName(t *testing.T) {
	mol := molgraph.New()
	a := mol.AddAtom("C", 6)
	a.AtomTypeName = "C.sp3"
	a.Valency = 4
	a.Flags = molgraph.AtomFlagReactiveCenter

	clone := molgraph.DeeperCopyAtom(a)

	assert.Empty(t, clone.AtomTypeName)
	assert.Equal(t, 4, clone.Valency)
	assert.Equal(t, molgraph.AtomFlagReactiveCenter, clone.Flags)
}

func TestDeeperCopyPreservesLonePairsAndSingleElectrons(t *testing.T) {
	mol := molgraph.New()
	a := mol.AddAtom("O", 8)
	require.NoError(t, mol.AddLonePair(a.Handle))
	require.NoError(t, mol.AddSingleElectron(a.Handle))

	clone := mol.DeeperCopy()

	assert.Equal(t, mol.LonePairs(), clone.LonePairs())
	assert.Equal(t, mol.SingleElectrons(), clone.SingleElectrons())
}

func mustBondBetween(t *testing.T, mol *molgraph.Molecule, a, b molgraph.AtomHandle) molgraph.BondHandle {
	t.Helper()
	bond, err := mol.BondBetween(a, b)
	require.NoError(t, err)
	return bond.Handle
}
