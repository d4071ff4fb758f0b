/*
 *  count.go
 *  dtlmedian
 */

package dtlmedian

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// countTable memoizes the number of MPRs rooted below every mapping node and
// event node reached during one counting pass. Counts are exact: they feed
// frequency denominators and routinely overflow machine integers.
type countTable struct {
	nodes  map[MappingNode]*big.Int
	events map[Event]*big.Int
}

func newCountTable() *countTable {
	return &countTable{
		nodes:  make(map[MappingNode]*big.Int),
		events: make(map[Event]*big.Int),
	}
}

// below returns the memoized count under a child mapping node. The sentinel
// leaves no further choices and counts exactly one.
func (t *countTable) below(node MappingNode) *big.Int {
	if node.IsSentinel() {
		return one
	}
	return t.nodes[node]
}

// countFrom fills the table for everything reachable from root. The walk is
// an explicit two-phase stack: a node is first expanded (children pushed),
// then combined once every child count is memoized, so graph depth never
// translates into call depth.
func (t *countTable) countFrom(g ReconGraph, root MappingNode) error {
	type frame struct {
		node    MappingNode
		combine bool
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node.IsSentinel() {
			continue
		}
		if _, done := t.nodes[f.node]; done {
			continue
		}
		events, ok := g[f.node]
		if !ok {
			return fmt.Errorf("mapping node %v is not a graph key: %w", f.node, ErrMalformedGraph)
		}
		if !f.combine {
			stack = append(stack, frame{node: f.node, combine: true})
			for _, ev := range events {
				stack = append(stack, frame{node: ev.Left}, frame{node: ev.Right})
			}
			continue
		}
		// Events are mutually exclusive alternatives (sum); the two
		// sub-histories of one event are independent (product).
		total := new(big.Int)
		for _, ev := range events {
			c := new(big.Int).Mul(t.below(ev.Left), t.below(ev.Right))
			t.events[ev] = c
			total.Add(total, c)
		}
		t.nodes[f.node] = total
	}
	return nil
}

// CountMPRs returns the exact number of maximum-parsimony reconciliations
// reachable from the given roots. A zero total marks a degenerate graph and
// is rejected.
func CountMPRs(g ReconGraph, roots []MappingNode) (*big.Int, error) {
	t := newCountTable()
	total := new(big.Int)
	for _, root := range roots {
		if root.IsSentinel() {
			return nil, fmt.Errorf("sentinel used as an MPR root: %w", ErrMalformedGraph)
		}
		if err := t.countFrom(g, root); err != nil {
			return nil, err
		}
		total.Add(total, t.nodes[root])
	}
	if total.Sign() == 0 {
		return nil, fmt.Errorf("%d root(s): %w", len(roots), ErrNoReconciliation)
	}
	return total, nil
}
