package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/festwish/wish-service/internal/domain"
)

// WishRepository handles database operations for wishes.
type WishRepository struct {
	db *sqlx.DB
}

func NewWishRepository(db *sqlx.DB) *WishRepository {
	return &WishRepository{db: db}
}

const wishColumns = `id, user_id, festival_id, relationship_id, recipient_name, custom_message,
	final_message, message_id, quote_id, image_id, user_image_id, channel_type,
	generated_card_url, sent_status, sent_at, created_at, updated_at`

func (r *WishRepository) Create(ctx context.Context, wish *domain.Wish) (*domain.Wish, error) {
	query := `
		INSERT INTO generated_wishes (
			user_id, festival_id, relationship_id, recipient_name, custom_message,
			final_message, message_id, quote_id, image_id, user_image_id,
			channel_type, sent_status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`

	result, err := r.db.ExecContext(ctx, query,
		wish.UserID, wish.FestivalID, wish.RelationshipID, wish.RecipientName,
		wish.CustomMessage, wish.FinalMessage, wish.MessageID, wish.QuoteID,
		wish.ImageID, wish.UserImageID, wish.ChannelType, wish.SentStatus,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create wish: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *WishRepository) GetByID(ctx context.Context, id int64) (*domain.Wish, error) {
	query := "SELECT " + wishColumns + " FROM generated_wishes WHERE id = ?"

	var wish domain.Wish
	if err := r.db.GetContext(ctx, &wish, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wish: %w", err)
	}

	return &wish, nil
}

func (r *WishRepository) GetByUser(ctx context.Context, userID int64, limit int) ([]domain.Wish, error) {
	query := "SELECT " + wishColumns + ` FROM generated_wishes
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`

	var wishes []domain.Wish
	if err := r.db.SelectContext(ctx, &wishes, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to get user wishes: %w", err)
	}

	return wishes, nil
}

// UpdateCardURL overwrites the card URL; re-rendering a wish is idempotent.
func (r *WishRepository) UpdateCardURL(ctx context.Context, id int64, cardURL string) error {
	query := `
		UPDATE generated_wishes
		SET generated_card_url = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, cardURL, id)
	if err != nil {
		return fmt.Errorf("failed to update card url: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("no wish found with id %d", id)
	}

	return nil
}

func (r *WishRepository) MarkAsSent(ctx context.Context, id int64, channelType string, sentAt time.Time) error {
	query := `
		UPDATE generated_wishes
		SET sent_status = 'sent', sent_at = ?, channel_type = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, sentAt, channelType, id)
	if err != nil {
		return fmt.Errorf("failed to mark wish as sent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("no wish found with id %d", id)
	}

	return nil
}
