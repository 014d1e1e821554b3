package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steinbeck-Lab/MORTAR/extractor"
	"github.com/Steinbeck-Lab/MORTAR/molgraph"
)

func TestCopyAndExtractRejectsNilInputs(t *testing.T) {
	_, _, _, _, err := extractor.CopyAndExtract(nil, &fakeDetector{}, extractor.DefaultOptions())
	assert.ErrorIs(t, err, extractor.ErrNilMolecule)

	_, _, _, _, err = extractor.CopyAndExtract(molgraph.New(), nil, extractor.DefaultOptions())
	assert.ErrorIs(t, err, extractor.ErrNilDetector)
}

func TestCopyAndExtractEmptyMoleculeEarlyExit(t *testing.T) {
	aglycone, fragments, maps, warnings, err := extractor.CopyAndExtract(molgraph.New(), &fakeDetector{}, extractor.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, aglycone.AtomCount())
	assert.Nil(t, fragments)
	assert.Nil(t, warnings)
	require.NotNil(t, maps)
	assert.Empty(t, maps.OriginalToAglyconeAtom)
}

// buildCarbonOxygenBoundary builds an aglycone carbon glycosidically
// bonded through a single oxygen to a sugar-side carbon, the classic
// O-glycosidic boundary shape the carbon/heteroatom dispatch handles. The
// aglycone carbon also carries a second, purely aglycone-side neighbor so
// it is not itself entirely surrounded by sugar atoms (which would trip
// the dangling-exocyclic-atom repair special case instead).
func buildCarbonOxygenBoundary(t *testing.T) (mol *molgraph.Molecule, aglyconeCarbon, bridgeOxygen, sugarCarbon *molgraph.Atom) {
	t.Helper()
	mol = molgraph.New()
	aglyconeAnchor := mol.AddAtom("C", 6)
	aglyconeCarbon = mol.AddAtom("C", 6)
	bridgeOxygen = mol.AddAtom("O", 8)
	sugarCarbon = mol.AddAtom("C", 6)

	_, err := mol.AddBond(aglyconeAnchor.Handle, aglyconeCarbon.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(aglyconeCarbon.Handle, bridgeOxygen.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(bridgeOxygen.Handle, sugarCarbon.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	return mol, aglyconeCarbon, bridgeOxygen, sugarCarbon
}

func TestCopyAndExtractCarbonHeteroatomBoundaryDuplicatesAndSaturates(t *testing.T) {
	mol, aglyconeCarbon, bridgeOxygen, sugarCarbon := buildCarbonOxygenBoundary(t)

	detector := &fakeDetector{SugarAtoms: []molgraph.AtomHandle{bridgeOxygen.Handle, sugarCarbon.Handle}}
	opts := extractor.Options{RemoveCircularSugars: true, PreserveStereochemistry: true}

	aglycone, fragments, _, warnings, err := extractor.CopyAndExtract(mol, detector, opts)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	// The aglycone anchor and carbon are retained, plus a duplicated
	// oxygen bonded to the carbon that stands in for the severed
	// glycosidic oxygen.
	require.Equal(t, 3, aglycone.AtomCount())
	var duplicatedOxygen *molgraph.Atom
	for _, h := range aglycone.Atoms() {
		a, err := aglycone.Atom(h)
		require.NoError(t, err)
		if a.Symbol == "O" {
			duplicatedOxygen = a
		}
	}
	require.NotNil(t, duplicatedOxygen, "aglycone should carry a duplicated oxygen across the boundary")
	assert.Equal(t, 0, duplicatedOxygen.ImplicitHCount)
	bond, err := aglycone.BondBetween(aglyconeCarbon.Handle, duplicatedOxygen.Handle)
	require.NoError(t, err)
	assert.Equal(t, molgraph.BondOrderSingle, bond.Order)

	require.Len(t, fragments, 1)
	sugar := fragments[0]
	require.Equal(t, 2, sugar.AtomCount())
	retainedOxygen, err := sugar.Atom(bridgeOxygen.Handle)
	require.NoError(t, err)
	assert.Equal(t, 1, retainedOxygen.ImplicitHCount)
}

// buildCarbonCarbonBoundary builds two carbons directly bonded across
// what the detector will classify as the aglycone/sugar partition, the
// carbon-carbon boundary shape that gets a pseudo "R" marker on each side
// instead of an atom duplication. Each side also carries one extra,
// same-side-only neighbor so neither boundary carbon is entirely
// surrounded by atoms of the other side (which would trip the
// dangling-exocyclic-atom repair special case instead).
func buildCarbonCarbonBoundary(t *testing.T) (mol *molgraph.Molecule, aglyconeCarbon, sugarCarbon *molgraph.Atom) {
	t.Helper()
	mol = molgraph.New()
	aglyconeAnchor := mol.AddAtom("C", 6)
	aglyconeCarbon = mol.AddAtom("C", 6)
	sugarCarbon = mol.AddAtom("C", 6)
	sugarNeighbor := mol.AddAtom("O", 8)

	_, err := mol.AddBond(aglyconeAnchor.Handle, aglyconeCarbon.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(aglyconeCarbon.Handle, sugarCarbon.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(sugarCarbon.Handle, sugarNeighbor.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	return mol, aglyconeCarbon, sugarCarbon
}

func TestCopyAndExtractCarbonCarbonBoundaryAttachesPseudoMarkers(t *testing.T) {
	mol, aglyconeCarbon, sugarCarbon := buildCarbonCarbonBoundary(t)

	var sugarNeighborHandle molgraph.AtomHandle
	for _, nb := range mol.Neighbors(sugarCarbon.Handle) {
		if nb != aglyconeCarbon.Handle {
			sugarNeighborHandle = nb
		}
	}
	detector := &fakeDetector{SugarAtoms: []molgraph.AtomHandle{sugarCarbon.Handle, sugarNeighborHandle}}
	opts := extractor.Options{RemoveCircularSugars: true, PreserveStereochemistry: true, MarkAttachPointsByR: true}

	aglycone, fragments, _, _, err := extractor.CopyAndExtract(mol, detector, opts)
	require.NoError(t, err)

	require.Equal(t, 3, aglycone.AtomCount(), "aglycone anchor, aglycone carbon, plus its pseudo marker")
	var foundPseudo bool
	for _, h := range aglycone.Atoms() {
		a, err := aglycone.Atom(h)
		require.NoError(t, err)
		if a.IsPseudo {
			foundPseudo = true
		}
	}
	assert.True(t, foundPseudo)

	require.Len(t, fragments, 1)
	var sugarHasPseudo bool
	for _, h := range fragments[0].Atoms() {
		a, err := fragments[0].Atom(h)
		require.NoError(t, err)
		if a.IsPseudo {
			sugarHasPseudo = true
		}
	}
	assert.True(t, sugarHasPseudo)
}

// TestCopyAndExtractCarbonCarbonBoundarySaturatesWhenNotMarkingByR exercises
// the MarkAttachPointsByR=false carbon-carbon boundary pathway: both sides
// of the severed bond are saturated in place instead of gaining a pseudo
// "R" marker atom.
func TestCopyAndExtractCarbonCarbonBoundarySaturatesWhenNotMarkingByR(t *testing.T) {
	mol, aglyconeCarbon, sugarCarbon := buildCarbonCarbonBoundary(t)

	var sugarNeighborHandle molgraph.AtomHandle
	for _, nb := range mol.Neighbors(sugarCarbon.Handle) {
		if nb != aglyconeCarbon.Handle {
			sugarNeighborHandle = nb
		}
	}
	detector := &fakeDetector{SugarAtoms: []molgraph.AtomHandle{sugarCarbon.Handle, sugarNeighborHandle}}
	opts := extractor.Options{RemoveCircularSugars: true, PreserveStereochemistry: true, MarkAttachPointsByR: false}

	aglycone, fragments, _, _, err := extractor.CopyAndExtract(mol, detector, opts)
	require.NoError(t, err)

	require.Equal(t, 2, aglycone.AtomCount(), "no pseudo marker atom should have been added")
	for _, h := range aglycone.Atoms() {
		a, err := aglycone.Atom(h)
		require.NoError(t, err)
		assert.False(t, a.IsPseudo)
	}
	aCarbon, err := aglycone.Atom(aglyconeCarbon.Handle)
	require.NoError(t, err)
	assert.Equal(t, 1, aCarbon.ImplicitHCount)

	require.Len(t, fragments, 1)
	for _, h := range fragments[0].Atoms() {
		a, err := fragments[0].Atom(h)
		require.NoError(t, err)
		assert.False(t, a.IsPseudo)
	}
	sCarbon, err := fragments[0].Atom(sugarCarbon.Handle)
	require.NoError(t, err)
	assert.Equal(t, 1, sCarbon.ImplicitHCount)
}

// TestCopyAndExtractRepairsDanglingExocyclicAtom exercises the
// dangling-exocyclic-atom repair: an aglycone-classified carbon whose
// only bond leads into the sugar set is swept into the sugar fragment
// along with it, rather than left stranded as a one-atom aglycone
// remnant.
func TestCopyAndExtractRepairsDanglingExocyclicAtom(t *testing.T) {
	mol := molgraph.New()
	ringAtom1 := mol.AddAtom("C", 6)
	ringAtom2 := mol.AddAtom("O", 8)
	exocyclic := mol.AddAtom("C", 6)

	_, err := mol.AddBond(ringAtom1.Handle, ringAtom2.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(ringAtom1.Handle, exocyclic.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)

	detector := &fakeDetector{SugarAtoms: []molgraph.AtomHandle{ringAtom1.Handle, ringAtom2.Handle}}
	opts := extractor.Options{RemoveCircularSugars: true, PreserveStereochemistry: true}

	aglycone, fragments, _, _, err := extractor.CopyAndExtract(mol, detector, opts)
	require.NoError(t, err)

	assert.False(t, aglycone.HasAtom(exocyclic.Handle), "the dangling exocyclic carbon should have moved to the sugar side")
	assert.Equal(t, 0, aglycone.AtomCount())

	require.Len(t, fragments, 1)
	assert.True(t, fragments[0].HasAtom(exocyclic.Handle))
}

// TestCopyAndExtractTransfersCarboxyCarbon exercises the carboxy-transfer
// special case: an aglycone carboxylic-acid carbon whose only non-oxygen
// substituent is already classified as a sugar atom transfers with it
// instead of being duplicated across the boundary.
func TestCopyAndExtractTransfersCarboxyCarbon(t *testing.T) {
	mol := molgraph.New()
	sugarAtom := mol.AddAtom("C", 6)
	carboxyCarbon := mol.AddAtom("C", 6)
	carbonylOxygen := mol.AddAtom("O", 8)
	hydroxylOxygen := mol.AddAtom("O", 8)

	_, err := mol.AddBond(sugarAtom.Handle, carboxyCarbon.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(carboxyCarbon.Handle, carbonylOxygen.Handle, molgraph.BondOrderDouble)
	require.NoError(t, err)
	_, err = mol.AddBond(carboxyCarbon.Handle, hydroxylOxygen.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)

	detector := &fakeDetector{SugarAtoms: []molgraph.AtomHandle{sugarAtom.Handle}}
	opts := extractor.Options{RemoveCircularSugars: true, PreserveStereochemistry: true}

	aglycone, fragments, _, _, err := extractor.CopyAndExtract(mol, detector, opts)
	require.NoError(t, err)

	assert.False(t, aglycone.HasAtom(carboxyCarbon.Handle), "the carboxy carbon should have transferred to the sugar side")

	require.Len(t, fragments, 1)
	assert.True(t, fragments[0].HasAtom(carboxyCarbon.Handle))
}

// TestCopyAndExtractPreservesSpiroAtomOnBothSides exercises Finding 1's
// spiro handling: an atom pre-marked spiro (standing in for a ring atom
// shared with another ring the detector left standing) survives in both
// the aglycone and the sugar fragment, capped with two stub attachments
// on each side rather than being deleted or duplicated.
func TestCopyAndExtractPreservesSpiroAtomOnBothSides(t *testing.T) {
	mol := molgraph.New()
	spiro := mol.AddAtom("C", 6)
	spiro.Properties[molgraph.SpiroMarkerKey] = true
	sugarRingAtom := mol.AddAtom("C", 6)
	aglyconeRingAtom := mol.AddAtom("C", 6)

	_, err := mol.AddBond(spiro.Handle, sugarRingAtom.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(spiro.Handle, aglyconeRingAtom.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)

	detector := &fakeDetector{SugarAtoms: []molgraph.AtomHandle{spiro.Handle, sugarRingAtom.Handle}}
	opts := extractor.Options{RemoveCircularSugars: true, PreserveStereochemistry: true, MarkAttachPointsByR: true}

	aglycone, fragments, _, warnings, err := extractor.CopyAndExtract(mol, detector, opts)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.True(t, aglycone.HasAtom(spiro.Handle), "spiro atom must survive on the aglycone side")
	require.Len(t, fragments, 1)
	require.True(t, fragments[0].HasAtom(spiro.Handle), "spiro atom must survive on the sugar side too")

	var aglyconePseudoCount, sugarPseudoCount int
	for _, nb := range aglycone.Neighbors(spiro.Handle) {
		a, err := aglycone.Atom(nb)
		require.NoError(t, err)
		if a.IsPseudo {
			aglyconePseudoCount++
		}
	}
	for _, nb := range fragments[0].Neighbors(spiro.Handle) {
		a, err := fragments[0].Atom(nb)
		require.NoError(t, err)
		if a.IsPseudo {
			sugarPseudoCount++
		}
	}
	assert.Equal(t, 2, aglyconePseudoCount, "the aglycone-side ring bond that no longer closes gets stubbed")
	assert.Equal(t, 2, sugarPseudoCount, "the sugar-side ring bond that no longer closes gets stubbed")
}

// TestCopyAndExtractAppliesPostProcessingSplitsInternally exercises Finding
// 5's wiring: CopyAndExtract itself runs the splitter package over the
// sugars copy when ApplyPostProcessingSplits is set, without the caller
// having to invoke the splitter separately.
func TestCopyAndExtractAppliesPostProcessingSplitsInternally(t *testing.T) {
	mol := molgraph.New()
	sugarCore := mol.AddAtom("C", 6)
	etherC0 := mol.AddAtom("C", 6)
	etherBridgeO := mol.AddAtom("O", 8)
	etherC1 := mol.AddAtom("C", 6)

	_, err := mol.AddBond(sugarCore.Handle, etherC0.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(etherC0.Handle, etherBridgeO.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)
	_, err = mol.AddBond(etherBridgeO.Handle, etherC1.Handle, molgraph.BondOrderSingle)
	require.NoError(t, err)

	detector := &fakeDetector{SugarAtoms: []molgraph.AtomHandle{sugarCore.Handle, etherC0.Handle, etherBridgeO.Handle, etherC1.Handle}}
	opts := extractor.Options{
		RemoveCircularSugars:      true,
		PreserveStereochemistry:   true,
		ApplyPostProcessingSplits: true,
		LimitPostProcessingBySize: false,
	}

	_, fragments, _, warnings, err := extractor.CopyAndExtract(mol, detector, opts)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Len(t, fragments, 2, "the ether split should have partitioned the sugar copy into two fragments")
}

func TestCopyAndExtractDiscardsTooSmallSugarFragments(t *testing.T) {
	mol, _, bridgeOxygen, sugarCarbon := buildCarbonOxygenBoundary(t)

	detector := &fakeDetector{
		SugarAtoms: []molgraph.AtomHandle{bridgeOxygen.Handle, sugarCarbon.Handle},
		Threshold:  5,
	}
	opts := extractor.Options{
		RemoveCircularSugars:          true,
		PreserveStereochemistry:       true,
		DiscardTooSmallSugarFragments: true,
	}

	_, fragments, _, warnings, err := extractor.CopyAndExtract(mol, detector, opts)
	require.NoError(t, err)
	assert.Empty(t, fragments)
	require.Len(t, warnings, 1)
	assert.Equal(t, extractor.WarningOrphanedSugarFragment, warnings[0].Code)
}
