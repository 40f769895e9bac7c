package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/festwish/wish-service/internal/domain"
)

// FestivalRepository handles database access for festivals and their content
// pools (message templates, quotes, images).
type FestivalRepository struct {
	db *sqlx.DB
}

func NewFestivalRepository(db *sqlx.DB) *FestivalRepository {
	return &FestivalRepository{db: db}
}

const festivalColumns = "id, slug, name, description, religion_culture, typical_month, is_active, created_at"

func (r *FestivalRepository) GetAll(ctx context.Context, activeOnly bool) ([]domain.Festival, error) {
	query := "SELECT " + festivalColumns + " FROM festivals"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY name"

	var festivals []domain.Festival
	if err := r.db.SelectContext(ctx, &festivals, query); err != nil {
		return nil, fmt.Errorf("failed to get festivals: %w", err)
	}

	return festivals, nil
}

func (r *FestivalRepository) GetByID(ctx context.Context, id int64) (*domain.Festival, error) {
	query := "SELECT " + festivalColumns + " FROM festivals WHERE id = ?"

	var festival domain.Festival
	if err := r.db.GetContext(ctx, &festival, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get festival: %w", err)
	}

	return &festival, nil
}

func (r *FestivalRepository) GetBySlug(ctx context.Context, slug string) (*domain.Festival, error) {
	query := "SELECT " + festivalColumns + " FROM festivals WHERE slug = ?"

	var festival domain.Festival
	if err := r.db.GetContext(ctx, &festival, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get festival by slug: %w", err)
	}

	return &festival, nil
}

func (r *FestivalRepository) GetByCulture(ctx context.Context, culture string) ([]domain.Festival, error) {
	query := "SELECT " + festivalColumns + ` FROM festivals
		WHERE religion_culture = ? AND is_active = TRUE
		ORDER BY name`

	var festivals []domain.Festival
	if err := r.db.SelectContext(ctx, &festivals, query, culture); err != nil {
		return nil, fmt.Errorf("failed to get festivals by culture: %w", err)
	}

	return festivals, nil
}

func (r *FestivalRepository) GetByMonth(ctx context.Context, month string) ([]domain.Festival, error) {
	query := "SELECT " + festivalColumns + ` FROM festivals
		WHERE typical_month = ? AND is_active = TRUE
		ORDER BY name`

	var festivals []domain.Festival
	if err := r.db.SelectContext(ctx, &festivals, query, month); err != nil {
		return nil, fmt.Errorf("failed to get festivals by month: %w", err)
	}

	return festivals, nil
}

// ActiveMessages returns the unordered active template pool for the exact
// (festival, relationship) pair.
func (r *FestivalRepository) ActiveMessages(ctx context.Context, festivalID, relationshipID int64) ([]domain.MessageTemplate, error) {
	query := `
		SELECT id, festival_id, relationship_id, message_text, tone, language, is_active, created_at
		FROM wish_messages
		WHERE festival_id = ? AND relationship_id = ? AND is_active = TRUE
	`

	var templates []domain.MessageTemplate
	if err := r.db.SelectContext(ctx, &templates, query, festivalID, relationshipID); err != nil {
		return nil, fmt.Errorf("failed to get message templates: %w", err)
	}

	return templates, nil
}

func (r *FestivalRepository) ActiveQuotes(ctx context.Context, festivalID int64) ([]domain.Quote, error) {
	query := `
		SELECT id, festival_id, quote_text, author, is_active, created_at
		FROM festival_quotes
		WHERE festival_id = ? AND is_active = TRUE
	`

	var quotes []domain.Quote
	if err := r.db.SelectContext(ctx, &quotes, query, festivalID); err != nil {
		return nil, fmt.Errorf("failed to get quotes: %w", err)
	}

	return quotes, nil
}

func (r *FestivalRepository) ActiveImages(ctx context.Context, festivalID int64) ([]domain.FestivalImage, error) {
	query := `
		SELECT id, festival_id, image_url, alt_text, is_card_template, is_active, created_at
		FROM festival_images
		WHERE festival_id = ? AND is_active = TRUE
	`

	var images []domain.FestivalImage
	if err := r.db.SelectContext(ctx, &images, query, festivalID); err != nil {
		return nil, fmt.Errorf("failed to get festival images: %w", err)
	}

	return images, nil
}

func (r *FestivalRepository) GetQuoteByID(ctx context.Context, id int64) (*domain.Quote, error) {
	query := `
		SELECT id, festival_id, quote_text, author, is_active, created_at
		FROM festival_quotes
		WHERE id = ?
	`

	var quote domain.Quote
	if err := r.db.GetContext(ctx, &quote, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	return &quote, nil
}

func (r *FestivalRepository) GetImageByID(ctx context.Context, id int64) (*domain.FestivalImage, error) {
	query := `
		SELECT id, festival_id, image_url, alt_text, is_card_template, is_active, created_at
		FROM festival_images
		WHERE id = ?
	`

	var img domain.FestivalImage
	if err := r.db.GetContext(ctx, &img, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get festival image: %w", err)
	}

	return &img, nil
}
