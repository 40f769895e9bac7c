package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/festwish/wish-service/internal/domain"
)

type RelationshipRepository struct {
	db *sqlx.DB
}

func NewRelationshipRepository(db *sqlx.DB) *RelationshipRepository {
	return &RelationshipRepository{db: db}
}

const relationshipColumns = "id, name, display_name, category, sort_order, is_active, created_at"

func (r *RelationshipRepository) GetAll(ctx context.Context, activeOnly bool) ([]domain.Relationship, error) {
	query := "SELECT " + relationshipColumns + " FROM relationships"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY sort_order"

	var relationships []domain.Relationship
	if err := r.db.SelectContext(ctx, &relationships, query); err != nil {
		return nil, fmt.Errorf("failed to get relationships: %w", err)
	}

	return relationships, nil
}

func (r *RelationshipRepository) GetByID(ctx context.Context, id int64) (*domain.Relationship, error) {
	query := "SELECT " + relationshipColumns + " FROM relationships WHERE id = ?"

	var relationship domain.Relationship
	if err := r.db.GetContext(ctx, &relationship, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get relationship: %w", err)
	}

	return &relationship, nil
}

func (r *RelationshipRepository) GetByCategory(ctx context.Context, category string) ([]domain.Relationship, error) {
	query := "SELECT " + relationshipColumns + ` FROM relationships
		WHERE category = ? AND is_active = TRUE
		ORDER BY sort_order`

	var relationships []domain.Relationship
	if err := r.db.SelectContext(ctx, &relationships, query, category); err != nil {
		return nil, fmt.Errorf("failed to get relationships by category: %w", err)
	}

	return relationships, nil
}
