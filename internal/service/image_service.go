package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/festwish/wish-service/internal/domain"
	"github.com/festwish/wish-service/pkg/logger"
)

type userImageRepository interface {
	Create(ctx context.Context, img *domain.UserImage) (*domain.UserImage, error)
	GetByID(ctx context.Context, id int64) (*domain.UserImage, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.UserImage, error)
	Delete(ctx context.Context, id int64) error
}

type imageBlobStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
}

// ImageService manages user-uploaded background overrides: bytes go to the
// blob store, the record to the database.
type ImageService struct {
	repo userImageRepository
	blob imageBlobStore
}

func NewImageService(repo userImageRepository, blob imageBlobStore) *ImageService {
	return &ImageService{repo: repo, blob: blob}
}

// UploadUserImage stores the file under a per-user path with a random object
// name so repeated uploads of the same filename never collide.
func (s *ImageService) UploadUserImage(ctx context.Context, userID int64, content []byte, filename, mimeType string) (*domain.UserImage, error) {
	if len(content) == 0 {
		return nil, domain.ValidationError("uploaded file is empty")
	}

	ext := "jpg"
	if idx := strings.LastIndex(filename, "."); idx >= 0 && idx < len(filename)-1 {
		ext = strings.ToLower(filename[idx+1:])
	}

	storagePath := fmt.Sprintf("user_uploads/%d/%s.%s", userID, uuid.New().String(), ext)

	imageURL, err := s.blob.Put(ctx, storagePath, content, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	img := &domain.UserImage{
		UserID:           userID,
		ImageURL:         imageURL,
		StoragePath:      storagePath,
		OriginalFilename: filename,
		FileSize:         int64(len(content)),
		MimeType:         mimeType,
	}

	created, err := s.repo.Create(ctx, img)
	if err != nil {
		// The blob is already stored; leave it for a later cleanup rather
		// than failing the delete too.
		return nil, fmt.Errorf("failed to save image record: %w", err)
	}

	logger.Infof("User %d uploaded image %d (%d bytes)", userID, created.ID, created.FileSize)

	return created, nil
}

func (s *ImageService) GetUserImages(ctx context.Context, userID int64) ([]domain.UserImage, error) {
	return s.repo.GetByUser(ctx, userID)
}

// DeleteUserImage removes the image for its owner; deleting someone else's
// image is a validation error, not a not-found.
func (s *ImageService) DeleteUserImage(ctx context.Context, userID, imageID int64) error {
	img, err := s.repo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img == nil {
		return domain.NotFoundError("Image", imageID)
	}
	if img.UserID != userID {
		return domain.ValidationError("not authorized to delete image %d", imageID)
	}

	if err := s.blob.Delete(ctx, img.StoragePath); err != nil {
		return fmt.Errorf("failed to delete stored image: %w", err)
	}

	return s.repo.Delete(ctx, imageID)
}
