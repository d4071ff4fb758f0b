/*
 *  subgraph.go
 *  dtlmedian
 */

package dtlmedian

import (
	"fmt"
	"math/rand"
)

// IsSubgraph reports whether every mapping node keyed in sub is keyed in g
// and every event listed under it in sub is listed under the same node in g.
func IsSubgraph(g, sub ReconGraph) bool {
	for node, events := range sub {
		super, ok := g[node]
		if !ok {
			return false
		}
		for _, ev := range events {
			found := false
			for _, cand := range super {
				if cand == ev {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

// BuildGraph materializes a reconciliation-graph-shaped map covering
// everything reachable from roots through the selected event lists. The
// walk uses an explicit worklist, shared sub-structure is visited once.
func BuildGraph(roots []MappingNode, events map[MappingNode][]Event) ReconGraph {
	g := make(ReconGraph)
	stack := append([]MappingNode(nil), roots...)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.IsSentinel() {
			continue
		}
		if _, seen := g[node]; seen {
			continue
		}
		evs, ok := events[node]
		if !ok {
			panic(fmt.Sprintf("dtlmedian: no events selected for reachable node %v", node))
		}
		g[node] = evs
		for _, ev := range evs {
			stack = append(stack, ev.Left, ev.Right)
		}
	}
	return g
}

// ExtractPath walks the first event at every mapping node from root,
// materializing one deterministic single-path reconciliation out of a
// possibly tied median graph.
func ExtractPath(g ReconGraph, root MappingNode) ReconGraph {
	return walkPath(g, root, func(events []Event) Event {
		return events[0]
	})
}

// SamplePath is ExtractPath with a uniform random choice among the tied
// events at every mapping node, yielding one uniformly sampled
// representative of the median set.
func SamplePath(g ReconGraph, root MappingNode, rng *rand.Rand) ReconGraph {
	return walkPath(g, root, func(events []Event) Event {
		return events[rng.Intn(len(events))]
	})
}

func walkPath(g ReconGraph, root MappingNode, choose func([]Event) Event) ReconGraph {
	path := make(ReconGraph)
	stack := []MappingNode{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.IsSentinel() {
			continue
		}
		if _, seen := path[node]; seen {
			continue
		}
		events, ok := g[node]
		if !ok || len(events) == 0 {
			panic(fmt.Sprintf("dtlmedian: mapping node %v has no events to extract", node))
		}
		ev := choose(events)
		path[node] = []Event{ev}
		stack = append(stack, ev.Left, ev.Right)
	}
	if !IsSubgraph(g, path) {
		panic("dtlmedian: extracted path is not a subgraph of its source graph")
	}
	return path
}
