/*
 *  base.go
 *  dtlmedian
 */

package dtlmedian

import (
	"errors"
	"os"
	"path"
	"strings"

	logging "github.com/op/go-logging"
)

// Version is the current version of dtlmedian
const Version = "0.1.0"

var log = logging.MustGetLogger("dtlmedian")
var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05} %{shortfunc} | %{level:.6s} %{color:reset} %{message}`,
)

// Backend is the default stderr output
var Backend = logging.NewLogBackend(os.Stderr, "", 0)

// BackendFormatter contains the fancy debug formatter
var BackendFormatter = logging.NewBackendFormatter(Backend, format)

// Structural errors reported for bad inputs. Invariant violations inside the
// algorithms panic instead, they signal a defect rather than a bad file.
var (
	// ErrMalformedGraph flags a reconciliation graph that violates its
	// structural invariants, e.g. an event child that is not a graph key.
	ErrMalformedGraph = errors.New("malformed reconciliation graph")
	// ErrNoReconciliation flags a degenerate graph encoding zero MPRs.
	ErrNoReconciliation = errors.New("reconciliation graph encodes no MPRs")
	// ErrUnknownNode flags a mapping node whose gene or species label is
	// absent from the supplied tree orderings.
	ErrUnknownNode = errors.New("mapping node not covered by tree orderings")
)

// RemoveExt returns the substring minus the extension
func RemoveExt(filename string) string {
	return strings.TrimSuffix(filename, path.Ext(filename))
}

// reverseNodes returns a reversed copy of a mapping node list
func reverseNodes(nodes []MappingNode) []MappingNode {
	r := make([]MappingNode, len(nodes))
	for i, node := range nodes {
		r[len(nodes)-1-i] = node
	}
	return r
}
