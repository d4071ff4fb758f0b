/*
 *  recon.go
 *  dtlmedian
 */

package dtlmedian

import "fmt"

// EventType labels one of the five event classes of the DTL model.
type EventType byte

// The five event classes. Speciation, duplication and transfer events have
// two real child mapping nodes; a loss keeps its single surviving child in
// Left; a contemporary event ends the history and has two sentinel children.
const (
	Speciation   EventType = 'S'
	Duplication  EventType = 'D'
	Transfer     EventType = 'T'
	Loss         EventType = 'L'
	Contemporary EventType = 'C'
)

// MappingNode pairs a gene-tree node with the species-tree node its history
// passes through. The zero value is the sentinel (None, None) terminus that
// appears as the child of loss and contemporary events; it has no further
// history and always counts exactly one MPR.
type MappingNode struct {
	Gene    string
	Species string
}

// Sentinel is the (None, None) terminus mapping node.
var Sentinel = MappingNode{}

// IsSentinel reports whether the node is the (None, None) terminus.
func (m MappingNode) IsSentinel() bool {
	return m.Gene == "" && m.Species == ""
}

func (m MappingNode) String() string {
	if m.IsSentinel() {
		return "(None, None)"
	}
	return fmt.Sprintf("(%s, %s)", m.Gene, m.Species)
}

// Event is one evolutionary event together with its resulting child mapping
// nodes. Events are plain comparable values so they can key memo tables.
type Event struct {
	Type  EventType
	Left  MappingNode
	Right MappingNode
}

func (e Event) String() string {
	return fmt.Sprintf("(%c, %v, %v)", e.Type, e.Left, e.Right)
}

// ReconGraph maps every mapping node to the ordered event nodes that are
// valid continuations of the history there. A node with several events
// encodes the ambiguity across all MPRs sharing that sub-structure.
type ReconGraph map[MappingNode][]Event

// Nodes returns the mapping nodes keyed in the graph, in no particular order.
func (g ReconGraph) Nodes() []MappingNode {
	nodes := make([]MappingNode, 0, len(g))
	for node := range g {
		nodes = append(nodes, node)
	}
	return nodes
}

// Validate checks the structural invariants of the graph: no empty event
// lists, event children shaped according to their type, and every real child
// present as a graph key. It reports the first violation found.
func (g ReconGraph) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("empty graph: %w", ErrMalformedGraph)
	}
	for node, events := range g {
		if node.IsSentinel() {
			return fmt.Errorf("sentinel used as a graph key: %w", ErrMalformedGraph)
		}
		if len(events) == 0 {
			return fmt.Errorf("mapping node %v has no events: %w", node, ErrMalformedGraph)
		}
		for _, ev := range events {
			if err := g.checkEvent(node, ev); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g ReconGraph) checkEvent(parent MappingNode, ev Event) error {
	switch ev.Type {
	case Speciation, Duplication, Transfer:
		if ev.Left.IsSentinel() || ev.Right.IsSentinel() {
			return fmt.Errorf("%c event %v under %v needs two real children: %w",
				ev.Type, ev, parent, ErrMalformedGraph)
		}
	case Loss:
		if ev.Left.IsSentinel() || !ev.Right.IsSentinel() {
			return fmt.Errorf("loss event %v under %v needs one real child: %w",
				ev, parent, ErrMalformedGraph)
		}
	case Contemporary:
		if !ev.Left.IsSentinel() || !ev.Right.IsSentinel() {
			return fmt.Errorf("contemporary event %v under %v has descendants: %w",
				ev, parent, ErrMalformedGraph)
		}
	default:
		return fmt.Errorf("event %v under %v has unknown type %q: %w",
			ev, parent, string(ev.Type), ErrMalformedGraph)
	}
	for _, child := range [2]MappingNode{ev.Left, ev.Right} {
		if child.IsSentinel() {
			continue
		}
		if _, ok := g[child]; !ok {
			return fmt.Errorf("event %v under %v references absent child %v: %w",
				ev, parent, child, ErrMalformedGraph)
		}
	}
	return nil
}
