package extract

import (
	"context"
	"strings"

	"github.com/secmon-lab/taskmine/pkg/utils/logging"
)

// Strategy is one tier of extraction. Implementations may fail; the Chain
// decides what happens next.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, text string) ([]string, error)
}

// Chain is an ordered list of strategies. Extraction tries each tier in
// sequence and the first one that succeeds wins; failures are logged and
// the next tier is tried. Construct chains so the last tier cannot fail
// (LineSplit), which makes Extract total.
type Chain struct {
	strategies []Strategy
}

func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Extract runs the chain. A tier that returns a nil error wins even when
// its result is empty. If every tier fails, the result is an empty list.
func (c *Chain) Extract(ctx context.Context, text string) []string {
	logger := logging.From(ctx)

	for _, s := range c.strategies {
		items, err := s.Extract(ctx, text)
		if err != nil {
			logger.Warn("extraction strategy failed, trying next tier",
				"strategy", s.Name(),
				"error", err.Error(),
			)
			continue
		}
		return sanitize(items)
	}

	return []string{}
}

// heuristicStrategy adapts the pure Heuristic to the Strategy interface
type heuristicStrategy struct {
	heuristic *Heuristic
}

// HeuristicStrategy wraps a Heuristic as a chain tier. It never fails.
func HeuristicStrategy(h *Heuristic) Strategy {
	return &heuristicStrategy{heuristic: h}
}

func (s *heuristicStrategy) Name() string {
	return "heuristic"
}

func (s *heuristicStrategy) Extract(ctx context.Context, text string) ([]string, error) {
	return s.heuristic.Extract(text), nil
}

// LineSplit is the terminal tier: every non-blank line becomes its own
// item. It cannot fail.
type LineSplit struct{}

func (LineSplit) Name() string {
	return "line-split"
}

func (LineSplit) Extract(ctx context.Context, text string) ([]string, error) {
	return splitLines(text), nil
}

func splitLines(text string) []string {
	items := []string{}
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			items = append(items, line)
		}
	}
	return items
}

// sanitize trims every item and drops the empty ones. Item text must
// never be empty or whitespace-only regardless of which tier produced it.
func sanitize(items []string) []string {
	result := []string{}
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
