// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fibpath/core"
	"github.com/katalvlaran/fibpath/dijkstra"
)

func newTableCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the shortest distance from a vertex to every vertex",
		Args:  cobra.NoArgs,
		RunE:  newRunTable(input),
	}
	addGraphFlags(cmd.Flags(), input)
	cmd.Flags().StringVarP(&input.output, "output", "o", "text", "output format: text or json")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func newRunTable(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := input.validateHeap(); err != nil {
			return err
		}
		if input.output != "text" && input.output != "json" {
			return fmt.Errorf("unknown output %q (want text or json)", input.output)
		}
		g, err := loadGraph(input)
		if err != nil {
			return err
		}

		table := dijkstra.ShortestPaths[string]
		if input.heap == heapBinary {
			table = dijkstra.ShortestPathsBinaryHeap[string]
		}
		dist, err := table(g, input.from, input.searchOptions()...)
		if err != nil {
			return err
		}

		if input.output == "json" {
			return writeJSONTable(cmd.OutOrStdout(), dist)
		}
		for _, v := range g.Vertices() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v, formatDistance(dist[v]))
		}
		return nil
	}
}

// writeJSONTable writes dist as an object; unreachable vertices are null.
func writeJSONTable(w io.Writer, dist map[string]float64) error {
	out := make(map[string]*float64, len(dist))
	for v, d := range dist {
		if d == core.Infinity {
			out[v] = nil
			continue
		}
		d := d
		out[v] = &d
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func formatDistance(d float64) string {
	if d == core.Infinity {
		return "inf"
	}
	return strconv.FormatFloat(d, 'g', -1, 64)
}
