package mock

import (
	"context"

	"github.com/fwojciec/webcite"
)

var _ webcite.Generator = (*Generator)(nil)

// Generator is a mock implementation of webcite.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, url string) (*webcite.Citation, error)
}

func (g *Generator) Generate(ctx context.Context, url string) (*webcite.Citation, error) {
	return g.GenerateFn(ctx, url)
}
