/*
 *  order.go
 *  dtlmedian
 */

package dtlmedian

import (
	"fmt"
	"sort"
)

// SortMappingNodes imposes a single total order over the mapping nodes of a
// reconciliation graph: primarily by the position of the gene node in
// geneOrder, then by the position of the species node in speciesOrder. Both
// orderings must traverse their tree the same way; passing postorder
// (leaf-first) node lists yields a leaf-first mapping node list, and
// reversing the result gives the matching root-first order.
//
// Each node gets the rank geneIndex*len(speciesOrder)+speciesIndex, so the
// gene position dominates regardless of tree sizes.
func SortMappingNodes(geneOrder, speciesOrder []string, nodes []MappingNode) ([]MappingNode, error) {
	geneRank := make(map[string]int, len(geneOrder))
	for i, gene := range geneOrder {
		geneRank[gene] = i * len(speciesOrder)
	}
	speciesRank := make(map[string]int, len(speciesOrder))
	for i, species := range speciesOrder {
		speciesRank[species] = i
	}

	ranks := make(map[MappingNode]int, len(nodes))
	for _, node := range nodes {
		gr, ok := geneRank[node.Gene]
		if !ok {
			return nil, fmt.Errorf("gene node %q of %v: %w", node.Gene, node, ErrUnknownNode)
		}
		sr, ok := speciesRank[node.Species]
		if !ok {
			return nil, fmt.Errorf("species node %q of %v: %w", node.Species, node, ErrUnknownNode)
		}
		ranks[node] = gr + sr
	}

	sorted := append([]MappingNode(nil), nodes...)
	sort.Slice(sorted, func(i, j int) bool {
		return ranks[sorted[i]] < ranks[sorted[j]]
	})
	return sorted, nil
}
