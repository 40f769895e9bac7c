package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/festwish/wish-service/internal/domain"
)

type UserImageRepository struct {
	db *sqlx.DB
}

func NewUserImageRepository(db *sqlx.DB) *UserImageRepository {
	return &UserImageRepository{db: db}
}

const userImageColumns = "id, user_id, image_url, storage_path, original_filename, file_size, mime_type, created_at"

func (r *UserImageRepository) Create(ctx context.Context, img *domain.UserImage) (*domain.UserImage, error) {
	query := `
		INSERT INTO user_uploaded_images (
			user_id, image_url, storage_path, original_filename, file_size, mime_type, created_at
		) VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`

	result, err := r.db.ExecContext(ctx, query,
		img.UserID, img.ImageURL, img.StoragePath, img.OriginalFilename, img.FileSize, img.MimeType,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user image: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *UserImageRepository) GetByID(ctx context.Context, id int64) (*domain.UserImage, error) {
	query := "SELECT " + userImageColumns + " FROM user_uploaded_images WHERE id = ?"

	var img domain.UserImage
	if err := r.db.GetContext(ctx, &img, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user image: %w", err)
	}

	return &img, nil
}

func (r *UserImageRepository) GetByUser(ctx context.Context, userID int64) ([]domain.UserImage, error) {
	query := "SELECT " + userImageColumns + ` FROM user_uploaded_images
		WHERE user_id = ?
		ORDER BY created_at DESC`

	var images []domain.UserImage
	if err := r.db.SelectContext(ctx, &images, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get user images: %w", err)
	}

	return images, nil
}

func (r *UserImageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM user_uploaded_images WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user image: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("no user image found with id %d", id)
	}

	return nil
}
