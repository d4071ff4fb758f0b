/*
 *  io.go
 *  dtlmedian
 */

package dtlmedian

import (
	"encoding/json"
	"fmt"

	"github.com/shenwei356/xopen"
)

// ReconInput bundles what the external reconciliation-graph builder and tree
// normalizer hand over for one gene family.
type ReconInput struct {
	GeneOrder    []string
	SpeciesOrder []string
	GeneRoot     string
	Roots        []MappingNode
	Graph        ReconGraph
}

// On disk the input is one JSON document. Mapping nodes are {"gene",
// "species"} objects; a missing or null event child is the sentinel. Files
// ending in .gz are read and written through gzip transparently.
type graphDoc struct {
	GeneOrder    []string     `json:"gene_order,omitempty"`
	SpeciesOrder []string     `json:"species_order,omitempty"`
	GeneRoot     string       `json:"gene_root,omitempty"`
	Roots        []nodeRef    `json:"roots,omitempty"`
	Graph        []nodeRecord `json:"graph"`
}

type nodeRef struct {
	Gene    string `json:"gene"`
	Species string `json:"species"`
}

type nodeRecord struct {
	Gene    string        `json:"gene"`
	Species string        `json:"species"`
	Events  []eventRecord `json:"events"`
}

type eventRecord struct {
	Type  string   `json:"type"`
	Left  *nodeRef `json:"left,omitempty"`
	Right *nodeRef `json:"right,omitempty"`
}

func toNode(r *nodeRef) MappingNode {
	if r == nil {
		return Sentinel
	}
	return MappingNode{Gene: r.Gene, Species: r.Species}
}

func fromNode(node MappingNode) *nodeRef {
	if node.IsSentinel() {
		return nil
	}
	return &nodeRef{Gene: node.Gene, Species: node.Species}
}

// ReadReconInput loads a reconciliation graph file produced by the external
// builder.
func ReadReconInput(filename string) (*ReconInput, error) {
	r, err := xopen.Ropen(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var doc graphDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse `%s`: %w", filename, err)
	}

	in := &ReconInput{
		GeneOrder:    doc.GeneOrder,
		SpeciesOrder: doc.SpeciesOrder,
		GeneRoot:     doc.GeneRoot,
		Graph:        make(ReconGraph, len(doc.Graph)),
	}
	for _, ref := range doc.Roots {
		in.Roots = append(in.Roots, MappingNode{Gene: ref.Gene, Species: ref.Species})
	}
	for _, rec := range doc.Graph {
		node := MappingNode{Gene: rec.Gene, Species: rec.Species}
		events := make([]Event, 0, len(rec.Events))
		for _, er := range rec.Events {
			typ := EventType(0)
			if len(er.Type) == 1 {
				typ = EventType(er.Type[0])
			}
			switch typ {
			case Speciation, Duplication, Transfer, Loss, Contemporary:
			default:
				return nil, fmt.Errorf("event type %q under %v: %w",
					er.Type, node, ErrMalformedGraph)
			}
			events = append(events, Event{
				Type:  typ,
				Left:  toNode(er.Left),
				Right: toNode(er.Right),
			})
		}
		in.Graph[node] = events
	}
	log.Noticef("Loaded `%s`: %d mapping nodes, %d root(s)",
		filename, len(in.Graph), len(in.Roots))
	return in, nil
}

// WriteReconGraph writes a graph (a median, or a single sampled path) in the
// same document shape. Nodes appear in the given order so output is
// reproducible; nodes absent from the graph are skipped.
func WriteReconGraph(filename string, g ReconGraph, order []MappingNode) error {
	w, err := xopen.Wopen(filename)
	if err != nil {
		return err
	}
	defer w.Close()

	doc := graphDoc{Graph: make([]nodeRecord, 0, len(g))}
	for _, node := range order {
		events, ok := g[node]
		if !ok {
			continue
		}
		rec := nodeRecord{Gene: node.Gene, Species: node.Species}
		for _, ev := range events {
			rec.Events = append(rec.Events, eventRecord{
				Type:  string(rune(ev.Type)),
				Left:  fromNode(ev.Left),
				Right: fromNode(ev.Right),
			})
		}
		doc.Graph = append(doc.Graph, rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write `%s`: %w", filename, err)
	}
	log.Noticef("Graph with %d mapping nodes written to `%s`", len(doc.Graph), filename)
	return nil
}
