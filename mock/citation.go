package mock

import (
	"context"

	"github.com/fwojciec/webcite"
)

var _ webcite.CitationService = (*CitationService)(nil)

// CitationService is a mock implementation of webcite.CitationService.
type CitationService struct {
	CreateCitationFn   func(ctx context.Context, citation *webcite.Citation) error
	FindCitationByIDFn func(ctx context.Context, id string) (*webcite.Citation, error)
	FindCitationsFn    func(ctx context.Context, filter webcite.CitationFilter) ([]*webcite.Citation, error)
	DeleteCitationFn   func(ctx context.Context, id string) error
}

func (s *CitationService) CreateCitation(ctx context.Context, citation *webcite.Citation) error {
	return s.CreateCitationFn(ctx, citation)
}

func (s *CitationService) FindCitationByID(ctx context.Context, id string) (*webcite.Citation, error) {
	return s.FindCitationByIDFn(ctx, id)
}

func (s *CitationService) FindCitations(ctx context.Context, filter webcite.CitationFilter) ([]*webcite.Citation, error) {
	return s.FindCitationsFn(ctx, filter)
}

func (s *CitationService) DeleteCitation(ctx context.Context, id string) error {
	return s.DeleteCitationFn(ctx, id)
}
