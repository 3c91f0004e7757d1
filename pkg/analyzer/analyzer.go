// Package analyzer wires the full pipeline: flatten the extracted
// blocks, build the relationship graph, resolve identity, classify the
// page, run every check group, and assemble the report.
package analyzer

import (
	"fmt"
	"time"

	"github.com/schemalens/schema-audit/pkg/classify"
	"github.com/schemalens/schema-audit/pkg/entitygraph"
	"github.com/schemalens/schema-audit/pkg/identity"
	"github.com/schemalens/schema-audit/pkg/knowledge"
	"github.com/schemalens/schema-audit/pkg/logging"
	"github.com/schemalens/schema-audit/pkg/metrics"
	"github.com/schemalens/schema-audit/pkg/report"
	"github.com/schemalens/schema-audit/pkg/rules"
	"github.com/schemalens/schema-audit/pkg/schema"
)

// Analyzer runs page analyses against one knowledge base. It is
// stateless between calls and safe for concurrent use.
type Analyzer struct {
	base       *knowledge.Base
	classifier *classify.Classifier
	engine     *rules.Engine
	log        logging.Logger
	metrics    *metrics.Registry
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log logging.Logger) Option {
	return func(a *Analyzer) { a.log = log }
}

// WithMetrics sets the metrics registry. Defaults to none.
func WithMetrics(reg *metrics.Registry) Option {
	return func(a *Analyzer) { a.metrics = reg }
}

// New builds an Analyzer over the given knowledge base. A nil base uses
// the built-in defaults.
func New(base *knowledge.Base, opts ...Option) (*Analyzer, error) {
	if base == nil {
		base = knowledge.Default()
	}

	classifier, err := classify.New(base)
	if err != nil {
		return nil, fmt.Errorf("compiling page classifier: %w", err)
	}

	a := &Analyzer{
		base:       base,
		classifier: classifier,
		engine:     rules.NewEngine(base),
		log:        logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Analyze runs the full pipeline over one page's extracted data. The
// only error condition is a caller-contract violation (ErrInvalidInput);
// malformed markup always yields a report describing the problems.
func (a *Analyzer) Analyze(in *Input) (report.Report, error) {
	if err := ValidateInput(in); err != nil {
		if a.metrics != nil {
			a.metrics.RecordAnalysis("unknown", "invalid_input", 0)
		}
		return report.Report{}, err
	}

	start := time.Now()

	entities := schema.Flatten(in.LinkedData, in.Microdata, in.RDFa, a.log)
	typesFound := schema.TypesFound(entities)
	graph := entitygraph.Build(entities)
	resolved := identity.Resolve(entities, in.URL)
	pageType := a.classifier.PageType(in.URL, typesFound)

	fs := a.engine.Evaluate(rules.Context{
		URL:        in.URL,
		PageType:   pageType,
		Entities:   entities,
		ByType:     schema.GroupByType(entities),
		TypesFound: typesFound,
		Graph:      graph,
		Identity:   resolved,
		OpenGraph:  in.OpenGraph,
	})

	rep := report.Build(fs, pageType, typesFound, resolved, graph, a.base.Scoring)

	elapsed := time.Since(start)
	a.log.Info("analysis complete",
		logging.URL(in.URL),
		logging.PageType(pageType),
		logging.EntityCount(len(entities)),
		logging.FindingCount(rep.TotalIssues),
		logging.Health(rep.Health),
		logging.Duration("elapsed", elapsed),
	)
	if a.metrics != nil {
		a.metrics.RecordAnalysis(pageType, "ok", elapsed)
		a.metrics.RecordFindings(fs, len(rep.SchemasFound), rep.Health)
	}

	return rep, nil
}
