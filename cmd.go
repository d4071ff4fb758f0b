/*
 *  cmd.go
 *  dtlmedian
 */

package dtlmedian

import (
	"fmt"
	"math/rand"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"
)

// Execute runs the dtlmedian command line interface. The entry point in
// cmd/main.go installs the log backend and calls this.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:   "dtlmedian",
		Short: "Median reconciliation under the duplication-transfer-loss model",
		Long: `dtlmedian computes the symmetric median of the maximum-parsimony
reconciliations (MPRs) encoded by a DTL reconciliation graph: the
reconciliation maximizing the summed (event frequency - 0.5) score, i.e. the
one most typical of the whole MPR space. Graph files are JSON documents
produced by the external reconciliation-graph builder; .gz files work
transparently.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logging.INFO
			if verbose {
				level = logging.DEBUG
			}
			logging.SetLevel(level, "dtlmedian")
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCountCmd())
	root.AddCommand(newMedianCmd())
	root.AddCommand(newSampleCmd())
	return root.Execute()
}

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <graphfile>",
		Short: "Count the MPRs a reconciliation graph encodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := ReadReconInput(args[0])
			if err != nil {
				return err
			}
			if err := in.Graph.Validate(); err != nil {
				return err
			}
			n, err := CountMPRs(in.Graph, in.Roots)
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		},
	}
}

func newMedianCmd() *cobra.Command {
	var outfile string

	cmd := &cobra.Command{
		Use:   "median <graphfile>",
		Short: "Compute the symmetric median reconciliation graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := medianerFromFile(args[0])
			if err != nil {
				return err
			}
			if outfile == "" {
				outfile = RemoveExt(args[0]) + ".median.json"
			}
			order, err := SortMappingNodes(p.GeneOrder, p.SpeciesOrder, p.MedianGraph.Nodes())
			if err != nil {
				return err
			}
			return WriteReconGraph(outfile, p.MedianGraph, order)
		},
	}
	cmd.Flags().StringVarP(&outfile, "outfile", "o", "",
		"output file (default: <graphfile minus extension>.median.json)")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var (
		outfile string
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "sample <graphfile>",
		Short: "Sample one uniform single-path median reconciliation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := medianerFromFile(args[0])
			if err != nil {
				return err
			}
			sampled := p.Sample(rand.New(rand.NewSource(seed)))
			if outfile == "" {
				outfile = RemoveExt(args[0]) + ".sampled.json"
			}
			order, err := SortMappingNodes(p.GeneOrder, p.SpeciesOrder, sampled.Nodes())
			if err != nil {
				return err
			}
			return WriteReconGraph(outfile, sampled, order)
		},
	}
	cmd.Flags().StringVarP(&outfile, "outfile", "o", "",
		"output file (default: <graphfile minus extension>.sampled.json)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	return cmd
}

// medianerFromFile loads a graph file and runs the median pipeline on it.
func medianerFromFile(filename string) (*Medianer, error) {
	in, err := ReadReconInput(filename)
	if err != nil {
		return nil, err
	}
	p := &Medianer{
		Graph:        in.Graph,
		GeneOrder:    in.GeneOrder,
		SpeciesOrder: in.SpeciesOrder,
		GeneRoot:     in.GeneRoot,
		Roots:        in.Roots,
	}
	if err := p.Run(); err != nil {
		return nil, err
	}
	return p, nil
}
