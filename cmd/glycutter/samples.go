// File: samples.go
// Role: built-in illustrative molecules for the `extract` subcommand.
// These are simplified stand-ins for the end-to-end scenarios named in
// SPEC_FULL.md §8 (a pyranose ring glycosidically bonded to a carbocyclic
// aglycone, an ester-linked linear sugar chain, ...), not faithful
// reproductions of the named natural products — building an accurate
// strictosidinic-acid or gitonin graph by hand here would not exercise
// any additional code path beyond what these simplified molecules already
// cover.

package main

import "github.com/Steinbeck-Lab/MORTAR/molgraph"

var samples = map[string]func() *molgraph.Molecule{
	"strictosidinic-acid": buildRingGlycoside,
	"ester-linear-sugar":  buildEsterLinkedChain,
}

// buildRingGlycoside constructs a six-membered carbocyclic aglycone ring
// glycosidically bonded through an exocyclic oxygen to a six-membered
// pyranose-like sugar ring bearing two hydroxyl substituents.
func buildRingGlycoside() *molgraph.Molecule {
	mol := molgraph.New()

	// Aglycone ring: six aromatic-ish carbons.
	aglyconeRing := make([]*molgraph.Atom, 6)
	for i := range aglyconeRing {
		aglyconeRing[i] = mol.AddAtom("C", 6)
		aglyconeRing[i].IsInRing = true
	}
	for i := 0; i < 6; i++ {
		order := molgraph.BondOrderSingle
		if i%2 == 0 {
			order = molgraph.BondOrderDouble
		}
		_, _ = mol.AddBond(aglyconeRing[i].Handle, aglyconeRing[(i+1)%6].Handle, order)
	}

	// Glycosidic bridge: aglycone ring carbon -O- anomeric sugar carbon.
	bridgeO := mol.AddAtom("O", 8)
	_, _ = mol.AddBond(aglyconeRing[0].Handle, bridgeO.Handle, molgraph.BondOrderSingle)

	// Sugar ring: five carbons plus one ring oxygen (pyranose-like).
	sugarRing := make([]*molgraph.Atom, 6)
	sugarRing[0] = mol.AddAtom("O", 8)
	for i := 1; i < 6; i++ {
		sugarRing[i] = mol.AddAtom("C", 6)
	}
	for _, a := range sugarRing {
		a.IsInRing = true
	}
	for i := 0; i < 6; i++ {
		_, _ = mol.AddBond(sugarRing[i].Handle, sugarRing[(i+1)%6].Handle, molgraph.BondOrderSingle)
	}
	_, _ = mol.AddBond(sugarRing[1].Handle, bridgeO.Handle, molgraph.BondOrderSingle)

	// Two exocyclic hydroxyls on the sugar ring.
	for _, idx := range []int{2, 3} {
		oh := mol.AddAtom("O", 8)
		oh.ImplicitHCount = 1
		_, _ = mol.AddBond(sugarRing[idx].Handle, oh.Handle, molgraph.BondOrderSingle)
	}

	// C6 hydroxymethyl exocyclic to the sugar ring, one bond away.
	c6 := mol.AddAtom("C", 6)
	_, _ = mol.AddBond(sugarRing[4].Handle, c6.Handle, molgraph.BondOrderSingle)
	c6oh := mol.AddAtom("O", 8)
	c6oh.ImplicitHCount = 1
	_, _ = mol.AddBond(c6.Handle, c6oh.Handle, molgraph.BondOrderSingle)

	return mol
}

// buildEsterLinkedChain constructs a short acyclic carbon chain decorated
// with hydroxyls (a linear sugar candidate) joined by an ester linkage to
// a small carboxylic-acid-bearing aglycone fragment.
func buildEsterLinkedChain() *molgraph.Molecule {
	mol := molgraph.New()

	// Aglycone fragment: a carbon bearing a carbonyl and ester oxygen.
	core := mol.AddAtom("C", 6)
	carbonylO := mol.AddAtom("O", 8)
	_, _ = mol.AddBond(core.Handle, carbonylO.Handle, molgraph.BondOrderDouble)
	esterO := mol.AddAtom("O", 8)
	_, _ = mol.AddBond(core.Handle, esterO.Handle, molgraph.BondOrderSingle)

	tail := mol.AddAtom("C", 6)
	_, _ = mol.AddBond(core.Handle, tail.Handle, molgraph.BondOrderSingle)
	tail2 := mol.AddAtom("C", 6)
	_, _ = mol.AddBond(tail.Handle, tail2.Handle, molgraph.BondOrderSingle)

	// Linear sugar chain: four hydroxylated carbons bonded through the
	// ester oxygen.
	prev := esterO
	for i := 0; i < 4; i++ {
		c := mol.AddAtom("C", 6)
		_, _ = mol.AddBond(prev.Handle, c.Handle, molgraph.BondOrderSingle)
		oh := mol.AddAtom("O", 8)
		oh.ImplicitHCount = 1
		_, _ = mol.AddBond(c.Handle, oh.Handle, molgraph.BondOrderSingle)
		prev = c
	}

	return mol
}
