/*
 *  median.go
 *  dtlmedian
 */

package dtlmedian

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
)

// sumFreq is the running state of the median DP at one mapping node: the
// events tying for the best (frequency - 0.5) path sum below the node, and
// that best sum.
type sumFreq struct {
	events []Event
	sum    float64
}

// ComputeMedian extracts the symmetric median from a reconciliation graph: a
// reduced graph where every mapping node keeps exactly the events that
// maximize the running (frequency - 0.5) sum, with ties preserved. leafFirst
// must hold every mapping node in leaf-to-root order; roots are the valid
// MPR roots of the graph. Frequencies must already be normalized to [0, 1],
// the 0.5 threshold is meaningless against raw scores.
//
// It returns the median graph, the exact number of reconciliations the
// median still encodes, and the roots achieving the global maximum.
func ComputeMedian(g ReconGraph, frequencies map[Event]float64, leafFirst []MappingNode,
	roots []MappingNode) (ReconGraph, *big.Int, []MappingNode, error) {
	if len(roots) == 0 {
		return nil, nil, nil, fmt.Errorf("no MPR roots given: %w", ErrMalformedGraph)
	}

	sums := make(map[MappingNode]sumFreq, len(leafFirst))
	for _, node := range leafFirst {
		events, ok := g[node]
		if !ok {
			return nil, nil, nil, fmt.Errorf("mapping node %v is not a graph key: %w",
				node, ErrMalformedGraph)
		}
		// Contemporary nodes are fixed points: the event has frequency 1,
		// so the node contributes exactly 1 - 0.5.
		if len(events) == 1 && events[0].Type == Contemporary {
			sums[node] = sumFreq{events: []Event{events[0]}, sum: 0.5}
			continue
		}

		best := math.Inf(-1)
		candidates := make([]float64, len(events))
		for i, ev := range events {
			c := frequencies[ev] - 0.5
			for _, child := range [2]MappingNode{ev.Left, ev.Right} {
				if child.IsSentinel() {
					continue
				}
				sf, ok := sums[child]
				if !ok {
					return nil, nil, nil, fmt.Errorf(
						"child %v of %v not processed before its parent: %w",
						child, node, ErrMalformedGraph)
				}
				c += sf.sum
			}
			candidates[i] = c
			if c > best {
				best = c
			}
		}
		// Keep every event achieving the exact maximum, ties included.
		var winners []Event
		for i, ev := range events {
			if candidates[i] == best {
				winners = append(winners, ev)
			}
		}
		sums[node] = sumFreq{events: winners, sum: best}
	}

	// Compare the running sums across all valid roots, again keeping ties.
	bestSum := math.Inf(-1)
	var bestRoots []MappingNode
	for _, root := range roots {
		sf, ok := sums[root]
		if !ok {
			return nil, nil, nil, fmt.Errorf("root %v is not a graph key: %w",
				root, ErrMalformedGraph)
		}
		switch {
		case sf.sum > bestSum:
			bestSum = sf.sum
			bestRoots = []MappingNode{root}
		case sf.sum == bestSum:
			bestRoots = append(bestRoots, root)
		}
	}

	selected := make(map[MappingNode][]Event, len(sums))
	for node, sf := range sums {
		selected[node] = sf.events
	}
	median := BuildGraph(bestRoots, selected)
	if !IsSubgraph(g, median) {
		panic("dtlmedian: median is not a subgraph of its reconciliation graph")
	}

	n, err := CountMPRs(median, bestRoots)
	if err != nil {
		return nil, nil, nil, err
	}
	return median, n, bestRoots, nil
}

// Medianer computes the symmetric median reconciliation for one gene family.
// Inputs mirror what the external reconciliation-graph builder and tree
// normalizer hand over: the graph, both tree node lists in postorder
// (leaf-first), the gene-tree root and the valid MPR roots.
type Medianer struct {
	Graph        ReconGraph
	GeneOrder    []string // gene-tree nodes, postorder
	SpeciesOrder []string // species-tree nodes, postorder
	GeneRoot     string
	Roots        []MappingNode

	// Results, populated by Run.
	TotalCount  *big.Int
	Frequencies map[Event]float64
	MedianGraph ReconGraph
	MedianCount *big.Int
	MedianRoots []MappingNode
}

// Run executes the full pipeline: validate, order, score, select.
func (r *Medianer) Run() error {
	if err := r.Graph.Validate(); err != nil {
		return err
	}
	leafFirst, err := SortMappingNodes(r.GeneOrder, r.SpeciesOrder, r.Graph.Nodes())
	if err != nil {
		return err
	}

	scores, err := ScoreEvents(r.Graph, reverseNodes(leafFirst), r.GeneRoot)
	if err != nil {
		return err
	}
	log.Noticef("Graph encodes %v MPRs over %d mapping nodes", scores.Total, len(leafFirst))

	median, n, medRoots, err := ComputeMedian(r.Graph, scores.Frequencies, leafFirst, r.Roots)
	if err != nil {
		return err
	}
	r.TotalCount = scores.Total
	r.Frequencies = scores.Frequencies
	r.MedianGraph = median
	r.MedianCount = n
	r.MedianRoots = medRoots
	log.Noticef("Median keeps %d mapping nodes, %v reconciliation(s), %d root(s)",
		len(median), n, len(medRoots))
	return nil
}

// Sample draws one uniformly random single-path median from the (possibly
// tied) median graph computed by Run.
func (r *Medianer) Sample(rng *rand.Rand) ReconGraph {
	root := r.MedianRoots[rng.Intn(len(r.MedianRoots))]
	return SamplePath(r.MedianGraph, root, rng)
}
