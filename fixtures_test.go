/*
 *  fixtures_test.go
 *  dtlmedian
 */

package dtlmedian_test

import (
	"fmt"
	"testing"

	"github.com/reconlab/dtlmedian"
	"github.com/stretchr/testify/require"
)

func node(gene, species string) dtlmedian.MappingNode {
	return dtlmedian.MappingNode{Gene: gene, Species: species}
}

func spec(left, right dtlmedian.MappingNode) dtlmedian.Event {
	return dtlmedian.Event{Type: dtlmedian.Speciation, Left: left, Right: right}
}

func loss(child dtlmedian.MappingNode) dtlmedian.Event {
	return dtlmedian.Event{Type: dtlmedian.Loss, Left: child}
}

func contemp() dtlmedian.Event {
	return dtlmedian.Event{Type: dtlmedian.Contemporary}
}

// orders sorts the graph's mapping nodes leaf-first and also returns the
// reversed, root-first list the scorer wants.
func orders(t *testing.T, p *dtlmedian.Medianer) (leafFirst, rootFirst []dtlmedian.MappingNode) {
	t.Helper()
	leafFirst, err := dtlmedian.SortMappingNodes(p.GeneOrder, p.SpeciesOrder, p.Graph.Nodes())
	require.NoError(t, err)
	rootFirst = make([]dtlmedian.MappingNode, len(leafFirst))
	for i, n := range leafFirst {
		rootFirst[len(leafFirst)-1-i] = n
	}
	return leafFirst, rootFirst
}

// simpleRecon embeds a 2-leaf gene tree in a 2-leaf species tree with
// speciation and contemporary events only: exactly one MPR.
func simpleRecon() *dtlmedian.Medianer {
	g := dtlmedian.ReconGraph{
		node("n0", "m0"): {spec(node("n1", "m1"), node("n2", "m2"))},
		node("n1", "m1"): {contemp()},
		node("n2", "m2"): {contemp()},
	}
	return &dtlmedian.Medianer{
		Graph:        g,
		GeneOrder:    []string{"n1", "n2", "n0"},
		SpeciesOrder: []string{"m1", "m2", "m0"},
		GeneRoot:     "n0",
		Roots:        []dtlmedian.MappingNode{node("n0", "m0")},
	}
}

// tieRecon offers two root events used by exactly half of the MPRs each.
func tieRecon() *dtlmedian.Medianer {
	g := dtlmedian.ReconGraph{
		node("n0", "m0"): {
			spec(node("n1", "m1"), node("n2", "m2")),
			spec(node("n1", "m3"), node("n2", "m4")),
		},
		node("n1", "m1"): {contemp()},
		node("n2", "m2"): {contemp()},
		node("n1", "m3"): {contemp()},
		node("n2", "m4"): {contemp()},
	}
	return &dtlmedian.Medianer{
		Graph:        g,
		GeneOrder:    []string{"n1", "n2", "n0"},
		SpeciesOrder: []string{"m1", "m2", "m3", "m4", "m0"},
		GeneRoot:     "n0",
		Roots:        []dtlmedian.MappingNode{node("n0", "m0")},
	}
}

// skewedRecon weights its two root events 2/3 vs 1/3: the left subtree of
// the first event can resolve a loss in two interchangeable ways.
func skewedRecon() *dtlmedian.Medianer {
	g := dtlmedian.ReconGraph{
		node("n0", "m0"): {
			spec(node("n1", "m1"), node("n2", "m2")),
			spec(node("n1", "m3"), node("n2", "m4")),
		},
		node("n1", "m1"):  {loss(node("n1", "m1a")), loss(node("n1", "m1b"))},
		node("n1", "m1a"): {contemp()},
		node("n1", "m1b"): {contemp()},
		node("n2", "m2"):  {contemp()},
		node("n1", "m3"):  {contemp()},
		node("n2", "m4"):  {contemp()},
	}
	return &dtlmedian.Medianer{
		Graph:        g,
		GeneOrder:    []string{"n1", "n2", "n0"},
		SpeciesOrder: []string{"m1a", "m1b", "m1", "m2", "m3", "m4", "m0"},
		GeneRoot:     "n0",
		Roots:        []dtlmedian.MappingNode{node("n0", "m0")},
	}
}

// rootTieRecon maps a single-leaf gene tree onto two equally good species
// placements, so the median has to keep both roots.
func rootTieRecon() *dtlmedian.Medianer {
	g := dtlmedian.ReconGraph{
		node("n0", "m0"): {contemp()},
		node("n0", "m1"): {contemp()},
	}
	return &dtlmedian.Medianer{
		Graph:        g,
		GeneOrder:    []string{"n0"},
		SpeciesOrder: []string{"m0", "m1"},
		GeneRoot:     "n0",
		Roots:        []dtlmedian.MappingNode{node("n0", "m0"), node("n0", "m1")},
	}
}

// ladderRecon hangs a chain of depth levels, each resolvable by two
// interchangeable losses, below one speciation at the root: 2^depth MPRs
// over O(depth) mapping nodes, with the gene root mapped only at (n0, m0).
func ladderRecon(depth int) *dtlmedian.Medianer {
	g := dtlmedian.ReconGraph{
		node("n0", "m0"): {spec(node("g1", "s0"), node("g2", "z"))},
		node("g2", "z"):  {contemp()},
	}
	g[node("g1", fmt.Sprintf("s%d", depth))] = []dtlmedian.Event{contemp()}
	speciesOrder := []string{fmt.Sprintf("s%d", depth)}
	for i := depth - 1; i >= 0; i-- {
		s := fmt.Sprintf("s%d", i)
		via1 := fmt.Sprintf("t%d", i)
		via2 := fmt.Sprintf("u%d", i)
		next := fmt.Sprintf("s%d", i+1)
		g[node("g1", s)] = []dtlmedian.Event{loss(node("g1", via1)), loss(node("g1", via2))}
		g[node("g1", via1)] = []dtlmedian.Event{loss(node("g1", next))}
		g[node("g1", via2)] = []dtlmedian.Event{loss(node("g1", next))}
		speciesOrder = append(speciesOrder, via1, via2, s)
	}
	speciesOrder = append(speciesOrder, "z", "m0")
	return &dtlmedian.Medianer{
		Graph:        g,
		GeneOrder:    []string{"g1", "g2", "n0"},
		SpeciesOrder: speciesOrder,
		GeneRoot:     "n0",
		Roots:        []dtlmedian.MappingNode{node("n0", "m0")},
	}
}
