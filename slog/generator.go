package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webcite"
)

// Ensure LoggingGenerator implements webcite.Generator.
var _ webcite.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with pipeline logging.
type LoggingGenerator struct {
	next   webcite.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next webcite.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the resolved
// fields or the failure.
func (g *LoggingGenerator) Generate(ctx context.Context, url string) (*webcite.Citation, error) {
	begin := time.Now()
	citation, err := g.next.Generate(ctx, url)
	if err != nil {
		g.logger.Error("generate",
			"url", url,
			"err", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	g.logger.Info("generate",
		"url", url,
		"title", citation.Title,
		"authors", len(citation.Authors),
		"year", citation.Year,
		"site", citation.SiteName,
		"duration", time.Since(begin),
	)
	return citation, nil
}
