// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fibpath/builder"
	"github.com/katalvlaran/fibpath/core"
	"github.com/katalvlaran/fibpath/graphio"
)

func newGenerateCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic graph document to stdout",
		Long: "Write a synthetic graph document to stdout.\n\n" +
			"Vertices are 0..n-1; a grid has n×n vertices numbered row by row.",
		Args: cobra.NoArgs,
		RunE: newRunGenerate(input),
	}
	fs := cmd.Flags()
	fs.StringVar(&input.kind, "kind", "grid", "graph shape: grid, path, cycle, complete or random")
	fs.IntVarP(&input.size, "size", "n", 4, "number of vertices (grid side length for grid)")
	fs.Int64Var(&input.seed, "seed", 1, "random seed")
	fs.IntVar(&input.maxWeight, "max-weight", 1, "edge weights are drawn from 1..max-weight")
	fs.Float64VarP(&input.probability, "probability", "p", 0.3, "edge probability for random graphs")
	fs.BoolVar(&input.undirected, "undirected", false, "mirror every edge")
	fs.StringVarP(&input.format, "output", "o", "yaml", "output format: yaml or json")

	return cmd
}

func newRunGenerate(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		format, err := graphio.ParseFormat(input.format)
		if err != nil {
			return err
		}
		if input.maxWeight < 1 {
			return fmt.Errorf("max-weight must be ≥ 1, got %d", input.maxWeight)
		}

		var cons builder.Constructor
		switch input.kind {
		case "grid":
			cons = builder.Grid(input.size, input.size)
		case "path":
			cons = builder.Path(input.size)
		case "cycle":
			cons = builder.Cycle(input.size)
		case "complete":
			cons = builder.Complete(input.size)
		case "random":
			cons = builder.RandomSparse(input.size, input.probability)
		default:
			return fmt.Errorf("unknown kind %q", input.kind)
		}

		var gopts []core.GraphOption
		if input.undirected {
			gopts = append(gopts, core.WithUndirected())
		}
		g, err := builder.BuildGraph(gopts, []builder.BuilderOption{
			builder.WithSeed(input.seed),
			builder.WithWeightFn(builder.IntegerWeightFn(1, input.maxWeight)),
		}, cons)
		if err != nil {
			return err
		}
		input.logger.WithFields(log.Fields{
			"kind":     input.kind,
			"vertices": g.VertexCount(),
			"edges":    g.EdgeCount(),
		}).Debug("graph generated")

		return graphio.Encode(cmd.OutOrStdout(), graphio.FromGraph(g, strconv.Itoa), format)
	}
}
