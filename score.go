/*
 *  score.go
 *  dtlmedian
 */

package dtlmedian

import (
	"fmt"
	"math/big"
)

// EventScores is the result of one scoring pass over a reconciliation graph.
type EventScores struct {
	// Frequencies maps every reachable event node to the fraction of all
	// MPRs that use it, in [0, 1].
	Frequencies map[Event]float64
	// NodeScores maps every mapping node to the fraction of all MPRs whose
	// history passes through it.
	NodeScores map[MappingNode]float64
	// Total is the exact number of MPRs encoded by the graph.
	Total *big.Int
}

// ScoreEvents turns the MPR sub-counts of a reconciliation graph into
// normalized per-event frequencies. rootFirst must hold every mapping node of
// the graph in root-to-leaf order (the reverse of SortMappingNodes applied to
// postorder trees); geneRoot names the root of the gene tree.
//
// Scores cascade unnormalized and are divided by the total MPR count exactly
// once at the end. The deferred division is deliberate: normalizing inside
// the cascade compounds rounding error across deep graphs.
func ScoreEvents(g ReconGraph, rootFirst []MappingNode, geneRoot string) (*EventScores, error) {
	counts := newCountTable()
	total := new(big.Int)
	for _, node := range rootFirst {
		if node.Gene != geneRoot {
			continue
		}
		if err := counts.countFrom(g, node); err != nil {
			return nil, err
		}
		total.Add(total, counts.nodes[node])
	}
	if total.Sign() == 0 {
		return nil, fmt.Errorf("no mapping node of gene root %q yields an MPR: %w",
			geneRoot, ErrNoReconciliation)
	}

	// Accumulators carry count-sized magnitudes, so their precision has to
	// cover the bit length of the total plus headroom for the divisions.
	prec := uint(total.BitLen()) + 64

	scores := make(map[MappingNode]*big.Float, len(rootFirst))
	for _, node := range rootFirst {
		scores[node] = newFloat(prec)
	}
	eventScores := make(map[Event]*big.Float)

	for _, node := range rootFirst {
		if node.Gene == geneRoot {
			// Seed with the raw count, not count/total (see above).
			scores[node].SetInt(counts.nodes[node])
		}
		if err := cascade(g, node, scores, eventScores, counts, prec); err != nil {
			return nil, err
		}
	}

	totalFloat := newFloat(prec).SetInt(total)
	result := &EventScores{
		Frequencies: make(map[Event]float64, len(eventScores)),
		NodeScores:  make(map[MappingNode]float64, len(scores)),
		Total:       total,
	}
	for ev, s := range eventScores {
		f, _ := newFloat(prec).Quo(s, totalFloat).Float64()
		result.Frequencies[ev] = f
	}
	for node, s := range scores {
		f, _ := newFloat(prec).Quo(s, totalFloat).Float64()
		result.NodeScores[node] = f
	}
	return result, nil
}

// cascade distributes one finalized mapping-node score down to the node's
// events and on to their children. Processing strictly root-first guarantees
// the score is fully summed before it is read; a zero score here is a defect,
// not an input condition.
func cascade(g ReconGraph, node MappingNode, scores map[MappingNode]*big.Float,
	eventScores map[Event]*big.Float, counts *countTable, prec uint) error {
	events, ok := g[node]
	if !ok {
		return fmt.Errorf("mapping node %v is not a graph key: %w", node, ErrMalformedGraph)
	}
	cnt := counts.nodes[node]
	if cnt == nil {
		return fmt.Errorf("mapping node %v unreachable from the gene root: %w",
			node, ErrMalformedGraph)
	}
	score := scores[node]
	if score.Sign() == 0 {
		panic(fmt.Sprintf("dtlmedian: score of %v read before being finalized", node))
	}

	multiplier := newFloat(prec).Quo(score, newFloat(prec).SetInt(cnt))
	for _, ev := range events {
		flow := newFloat(prec).Mul(multiplier, newFloat(prec).SetInt(counts.events[ev]))
		eventScores[ev] = flow
		for _, child := range [2]MappingNode{ev.Left, ev.Right} {
			if child.IsSentinel() {
				continue
			}
			childScore, ok := scores[child]
			if !ok {
				return fmt.Errorf("child %v of event %v missing from the ordering: %w",
					child, ev, ErrMalformedGraph)
			}
			childScore.Add(childScore, flow)
		}
	}
	return nil
}

func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}
