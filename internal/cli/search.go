// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fibpath/core"
	"github.com/katalvlaran/fibpath/dijkstra"
	"github.com/katalvlaran/fibpath/graphio"
)

func newSearchCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Print the shortest distance (and optionally the route) between two vertices",
		Args:  cobra.NoArgs,
		RunE:  newRunSearch(input),
	}
	addGraphFlags(cmd.Flags(), input)
	cmd.Flags().StringVar(&input.to, "to", "", "end vertex")
	cmd.Flags().BoolVar(&input.showPath, "path", false, "print the route as well (always uses the Fibonacci heap)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newRunSearch(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := input.validateHeap(); err != nil {
			return err
		}
		g, err := loadGraph(input)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if input.showPath {
			route, cost, err := dijkstra.Path(g, input.from, input.to, input.searchOptions()...)
			if errors.Is(err, dijkstra.ErrNoPath) {
				fmt.Fprintf(out, "%s -> %s: unreachable\n", input.from, input.to)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %s\n", strings.Join(route, " -> "), formatDistance(cost))
			return nil
		}

		search := dijkstra.Search[string]
		if input.heap == heapBinary {
			search = dijkstra.SearchBinaryHeap[string]
		}
		d, ok, err := search(g, input.from, input.to, input.searchOptions()...)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(out, "%s -> %s: unreachable\n", input.from, input.to)
			return nil
		}
		fmt.Fprintf(out, "%s -> %s: %s\n", input.from, input.to, formatDistance(d))
		return nil
	}
}

// loadGraph reads the --graph document.
func loadGraph(input *Input) (*core.Graph[string], error) {
	g, err := graphio.LoadGraph(input.graphPath)
	if err != nil {
		return nil, err
	}
	input.logger.WithFields(log.Fields{
		"path":     input.graphPath,
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Debug("graph loaded")

	return g, nil
}
