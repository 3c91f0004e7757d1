// schema-audit reads one page's extracted structured data as JSON from
// a file or stdin and writes the analysis report as JSON to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/schemalens/schema-audit/pkg/analyzer"
	"github.com/schemalens/schema-audit/pkg/knowledge"
	"github.com/schemalens/schema-audit/pkg/logging"
	"github.com/schemalens/schema-audit/pkg/metrics"
)

func main() {
	var (
		inputPath     = flag.String("input", "-", "path to the extracted-data JSON, or - for stdin")
		knowledgePath = flag.String("knowledge", "", "optional YAML file overriding the built-in knowledge base")
		pretty        = flag.Bool("pretty", true, "indent the JSON report")
		withScore     = flag.Bool("score", true, "include the numeric score in the report")
	)
	flag.Parse()

	log := logging.NewDefaultLogger().With(logging.RunID(uuid.NewString()))

	if err := run(*inputPath, *knowledgePath, *pretty, *withScore, log); err != nil {
		log.Error("audit failed", logging.Err(err))
		os.Exit(1)
	}
}

func run(inputPath, knowledgePath string, pretty, withScore bool, log logging.Logger) error {
	base := knowledge.Default()
	if knowledgePath != "" {
		loaded, err := knowledge.LoadFile(knowledgePath)
		if err != nil {
			return fmt.Errorf("loading knowledge overrides: %w", err)
		}
		base = loaded
	}

	data, err := readInput(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var in analyzer.Input
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parsing input JSON: %w", err)
	}

	a, err := analyzer.New(base,
		analyzer.WithLogger(log),
		analyzer.WithMetrics(metrics.DefaultRegistry()),
	)
	if err != nil {
		return err
	}

	rep, err := a.Analyze(&in)
	if err != nil {
		return err
	}
	if !withScore {
		rep.Score = nil
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(rep)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
