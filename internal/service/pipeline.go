// README: Pipeline orchestrator; extract then lookup, short-circuiting.
package service

import (
	"context"
	"fmt"
	"strings"

	"akshar/internal/route"
)

// Extractor derives a route request from raw input.
type Extractor interface {
	Extract(ctx context.Context, in route.RawInput) (route.Request, error)
}

// Lookup resolves a route request into concrete directions.
type Lookup interface {
	Lookup(ctx context.Context, req route.Request) (route.Result, error)
}

// Pipeline runs the two-step extract-then-lookup flow. Each invocation is
// independent and stateless; lookup never starts before extraction completes,
// and the first failure aborts the run with its error kind unchanged.
type Pipeline struct {
	extractor Extractor
	lookup    Lookup
}

// NewPipeline wires the two stages together.
func NewPipeline(extractor Extractor, lookup Lookup) *Pipeline {
	return &Pipeline{extractor: extractor, lookup: lookup}
}

// Process turns raw input into a resolved route. Errors surface with the
// specific kind intact so the presenter can tell extraction failures from
// lookup failures.
func (p *Pipeline) Process(ctx context.Context, in route.RawInput) (route.Result, error) {
	req, err := p.extractor.Extract(ctx, in)
	if err != nil {
		return route.Result{}, err
	}
	return p.lookup.Lookup(ctx, req)
}

// FormatResult renders a route result as a readable directions block with a
// numbered step list. This is also what gets translated when the caller asks
// for a non-English language.
func FormatResult(res route.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Route from %s to %s:\n", res.Origin, res.Destination)
	fmt.Fprintf(&b, "Total Distance: %s\n", res.Distance)
	fmt.Fprintf(&b, "Estimated Time: %s\n", res.Duration)
	b.WriteString("\nDirections:\n")

	if len(res.Steps) == 0 {
		b.WriteString("Detailed directions not available.")
		return b.String()
	}
	for i, step := range res.Steps {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, step.Instruction, step.Distance)
	}
	return strings.TrimRight(b.String(), "\n")
}
