/*
 *  count_test.go
 *  dtlmedian
 */

package dtlmedian_test

import (
	"math/big"
	"testing"

	"github.com/reconlab/dtlmedian"
	"github.com/stretchr/testify/require"
)

func TestCountSingleMPR(t *testing.T) {
	p := simpleRecon()
	n, err := dtlmedian.CountMPRs(p.Graph, p.Roots)
	require.NoError(t, err)
	require.Equal(t, int64(1), n.Int64())
}

func TestCountSumsOverRoots(t *testing.T) {
	p := rootTieRecon()
	n, err := dtlmedian.CountMPRs(p.Graph, p.Roots)
	require.NoError(t, err)
	require.Equal(t, int64(2), n.Int64())
}

func TestCountSkewed(t *testing.T) {
	p := skewedRecon()
	n, err := dtlmedian.CountMPRs(p.Graph, p.Roots)
	require.NoError(t, err)
	require.Equal(t, int64(3), n.Int64())
}

// The ladder fixture encodes 2^depth MPRs in O(depth) nodes; a depth of 1200
// pushes the total far past what float64 or int64 can hold and exercises the
// explicit-stack walk on a deep graph.
func TestCountLadderExact(t *testing.T) {
	const depth = 1200
	p := ladderRecon(depth)
	n, err := dtlmedian.CountMPRs(p.Graph, p.Roots)
	require.NoError(t, err)
	expected := new(big.Int).Lsh(big.NewInt(1), depth)
	require.Zero(t, n.Cmp(expected))
}

func TestCountRejectsMissingChild(t *testing.T) {
	g := dtlmedian.ReconGraph{
		node("n0", "m0"): {loss(node("n0", "m1"))},
	}
	_, err := dtlmedian.CountMPRs(g, []dtlmedian.MappingNode{node("n0", "m0")})
	require.ErrorIs(t, err, dtlmedian.ErrMalformedGraph)
}

func TestCountRejectsSentinelRoot(t *testing.T) {
	p := simpleRecon()
	_, err := dtlmedian.CountMPRs(p.Graph, []dtlmedian.MappingNode{dtlmedian.Sentinel})
	require.ErrorIs(t, err, dtlmedian.ErrMalformedGraph)
}

func TestCountRejectsDegenerateGraph(t *testing.T) {
	g := dtlmedian.ReconGraph{node("n0", "m0"): {}}
	_, err := dtlmedian.CountMPRs(g, []dtlmedian.MappingNode{node("n0", "m0")})
	require.ErrorIs(t, err, dtlmedian.ErrNoReconciliation)
}
