package service

import (
	"context"

	"github.com/festwish/wish-service/internal/domain"
)

type relationshipReader interface {
	GetAll(ctx context.Context, activeOnly bool) ([]domain.Relationship, error)
	GetByID(ctx context.Context, id int64) (*domain.Relationship, error)
	GetByCategory(ctx context.Context, category string) ([]domain.Relationship, error)
}

// RelationshipService exposes the read-only relationship reference data.
type RelationshipService struct {
	repo relationshipReader
}

func NewRelationshipService(repo relationshipReader) *RelationshipService {
	return &RelationshipService{repo: repo}
}

func (s *RelationshipService) GetAll(ctx context.Context, activeOnly bool) ([]domain.Relationship, error) {
	return s.repo.GetAll(ctx, activeOnly)
}

func (s *RelationshipService) GetByID(ctx context.Context, id int64) (*domain.Relationship, error) {
	relationship, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if relationship == nil {
		return nil, domain.NotFoundError("Relationship", id)
	}
	return relationship, nil
}

func (s *RelationshipService) GetByCategory(ctx context.Context, category string) ([]domain.Relationship, error) {
	return s.repo.GetByCategory(ctx, category)
}
