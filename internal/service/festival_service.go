package service

import (
	"context"

	"github.com/festwish/wish-service/internal/domain"
)

type festivalReader interface {
	GetAll(ctx context.Context, activeOnly bool) ([]domain.Festival, error)
	GetByID(ctx context.Context, id int64) (*domain.Festival, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Festival, error)
	GetByCulture(ctx context.Context, culture string) ([]domain.Festival, error)
	GetByMonth(ctx context.Context, month string) ([]domain.Festival, error)
	ActiveQuotes(ctx context.Context, festivalID int64) ([]domain.Quote, error)
	ActiveImages(ctx context.Context, festivalID int64) ([]domain.FestivalImage, error)
}

// FestivalService exposes the read-only festival reference data.
type FestivalService struct {
	repo festivalReader
}

func NewFestivalService(repo festivalReader) *FestivalService {
	return &FestivalService{repo: repo}
}

// FestivalDetail bundles a festival with its active quote and image pools.
type FestivalDetail struct {
	domain.Festival
	Quotes []domain.Quote         `json:"quotes"`
	Images []domain.FestivalImage `json:"images"`
}

func (s *FestivalService) GetAll(ctx context.Context, activeOnly bool) ([]domain.Festival, error) {
	return s.repo.GetAll(ctx, activeOnly)
}

func (s *FestivalService) GetByID(ctx context.Context, id int64) (*domain.Festival, error) {
	festival, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if festival == nil {
		return nil, domain.NotFoundError("Festival", id)
	}
	return festival, nil
}

func (s *FestivalService) GetBySlug(ctx context.Context, slug string) (*domain.Festival, error) {
	festival, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if festival == nil {
		return nil, domain.NotFoundError("Festival", slug)
	}
	return festival, nil
}

func (s *FestivalService) GetByCulture(ctx context.Context, culture string) ([]domain.Festival, error) {
	return s.repo.GetByCulture(ctx, culture)
}

func (s *FestivalService) GetByMonth(ctx context.Context, month string) ([]domain.Festival, error) {
	return s.repo.GetByMonth(ctx, month)
}

// GetDetail returns a festival together with its active quotes and images.
func (s *FestivalService) GetDetail(ctx context.Context, id int64) (*FestivalDetail, error) {
	festival, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	quotes, err := s.repo.ActiveQuotes(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := s.repo.ActiveImages(ctx, id)
	if err != nil {
		return nil, err
	}

	return &FestivalDetail{
		Festival: *festival,
		Quotes:   quotes,
		Images:   images,
	}, nil
}
