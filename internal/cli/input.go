// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/fibpath/dijkstra"
)

// Input contains the flag values shared by every command.
type Input struct {
	verbose   bool
	logFormat string

	graphPath string
	from      string
	to        string
	heap      string
	showPath  bool
	output    string // table output: text or json

	kind        string
	size        int
	seed        int64
	maxWeight   int
	probability float64
	undirected  bool
	format      string // generate document format: yaml or json

	logger *log.Logger
}

const (
	heapFib    = "fib"
	heapBinary = "binary"
)

// addGraphFlags registers the flags of commands that run a search.
func addGraphFlags(fs *pflag.FlagSet, input *Input) {
	fs.StringVarP(&input.graphPath, "graph", "g", "", "path to a graph document (.yaml, .yml or .json)")
	fs.StringVar(&input.from, "from", "", "start vertex")
	fs.StringVar(&input.heap, "heap", heapFib, "priority queue: fib or binary")
}

// searchOptions translates flags into dijkstra options.
func (i *Input) searchOptions() []dijkstra.Option {
	if i.verbose && i.logger != nil {
		return []dijkstra.Option{dijkstra.WithLogger(i.logger.WithField("heap", i.heap))}
	}
	return nil
}

func (i *Input) validateHeap() error {
	switch i.heap {
	case heapFib, heapBinary:
		return nil
	default:
		return fmt.Errorf("unknown heap %q (want %s or %s)", i.heap, heapFib, heapBinary)
	}
}

// newLogger builds the command logger, writing to the command's stderr.
func (i *Input) newLogger(out io.Writer) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetLevel(log.InfoLevel)
	if i.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	switch i.logFormat {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", i.logFormat)
	}

	return logger, nil
}
