package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/festwish/wish-service/internal/card"
	"github.com/festwish/wish-service/internal/channel"
	"github.com/festwish/wish-service/internal/domain"
	"github.com/festwish/wish-service/pkg/logger"
)

// Small internal interfaces so we can test without touching real DB/storage.
type festivalStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Festival, error)
	GetQuoteByID(ctx context.Context, id int64) (*domain.Quote, error)
	GetImageByID(ctx context.Context, id int64) (*domain.FestivalImage, error)
}

type relationshipStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Relationship, error)
}

type wishStore interface {
	Create(ctx context.Context, wish *domain.Wish) (*domain.Wish, error)
	GetByID(ctx context.Context, id int64) (*domain.Wish, error)
	GetByUser(ctx context.Context, userID int64, limit int) ([]domain.Wish, error)
	UpdateCardURL(ctx context.Context, id int64, cardURL string) error
	MarkAsSent(ctx context.Context, id int64, channelType string, sentAt time.Time) error
}

type userImageStore interface {
	GetByID(ctx context.Context, id int64) (*domain.UserImage, error)
}

type contentSelector interface {
	PickMessage(ctx context.Context, festivalID, relationshipID int64) (*domain.MessageTemplate, error)
	PickQuote(ctx context.Context, festivalID int64) (*domain.Quote, error)
	PickImage(ctx context.Context, festivalID int64) (*domain.FestivalImage, error)
}

type cardRenderer interface {
	Render(background []byte, opts card.Options) ([]byte, error)
}

type blobStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Get(ctx context.Context, urlOrPath string) ([]byte, error)
}

type imageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

type channelDispatcher interface {
	Known(channelType string) bool
	Dispatch(ctx context.Context, channelType, recipient string, content channel.WishContent) channel.SendResult
}

// CardCache is optional; a nil cache disables card-URL caching entirely.
type CardCache interface {
	CacheCardURL(ctx context.Context, wishID int64, cardURL string) error
	GetCachedCardURL(ctx context.Context, wishID int64) (string, error)
}

// WishService composes the selector, renderer, channel registry and the
// store collaborators into the wish operations. It holds no per-request
// state; all collaborator handles are safe for concurrent use.
type WishService struct {
	festivals     festivalStore
	relationships relationshipStore
	wishes        wishStore
	userImages    userImageStore
	selector      contentSelector
	renderer      cardRenderer
	blob          blobStore
	fetcher       imageFetcher
	channels      channelDispatcher
	cache         CardCache

	cardWidth  int
	cardHeight int
}

func NewWishService(
	festivals festivalStore,
	relationships relationshipStore,
	wishes wishStore,
	userImages userImageStore,
	selector contentSelector,
	renderer cardRenderer,
	blob blobStore,
	fetcher imageFetcher,
	channels channelDispatcher,
	cache CardCache,
	cardWidth, cardHeight int,
) *WishService {
	return &WishService{
		festivals:     festivals,
		relationships: relationships,
		wishes:        wishes,
		userImages:    userImages,
		selector:      selector,
		renderer:      renderer,
		blob:          blob,
		fetcher:       fetcher,
		channels:      channels,
		cache:         cache,
		cardWidth:     cardWidth,
		cardHeight:    cardHeight,
	}
}

type CreateWishInput struct {
	UserID         *int64
	FestivalID     int64
	RelationshipID int64
	RecipientName  *string
	CustomMessage  *string
	UserImageID    *int64
	ChannelType    string
}

type PreviewInput struct {
	FestivalID     int64
	RelationshipID int64
	CustomMessage  *string
	RecipientName  *string
}

// CreateWish resolves content for the festival+relationship pair and persists
// a new wish with sent_status "pending". The final message comes from the
// custom message when supplied, otherwise from a random active template; if
// neither yields text the call fails with a validation error.
func (s *WishService) CreateWish(ctx context.Context, in CreateWishInput) (*domain.Wish, error) {
	festival, err := s.festivals.GetByID(ctx, in.FestivalID)
	if err != nil {
		return nil, err
	}
	if festival == nil {
		return nil, domain.NotFoundError("Festival", in.FestivalID)
	}

	relationship, err := s.relationships.GetByID(ctx, in.RelationshipID)
	if err != nil {
		return nil, err
	}
	if relationship == nil {
		return nil, domain.NotFoundError("Relationship", in.RelationshipID)
	}

	channelType := in.ChannelType
	if channelType == "" {
		channelType = "download"
	}
	if !s.channels.Known(channelType) {
		return nil, domain.ValidationError("unknown channel type: %s", channelType)
	}

	var finalMessage string
	var messageID *int64

	if in.CustomMessage != nil && strings.TrimSpace(*in.CustomMessage) != "" {
		finalMessage = *in.CustomMessage
	} else {
		template, err := s.selector.PickMessage(ctx, in.FestivalID, in.RelationshipID)
		if err != nil {
			return nil, err
		}
		if template == nil {
			return nil, domain.ValidationError(
				"no messages available for %s - %s", festival.Name, relationship.DisplayName)
		}
		finalMessage = template.MessageText
		messageID = &template.ID
	}

	// Image and quote references are nice-to-have; an empty pool just means
	// the wish goes without.
	var imageID *int64
	if in.UserImageID == nil {
		img, err := s.selector.PickImage(ctx, in.FestivalID)
		if err != nil {
			return nil, err
		}
		if img != nil {
			imageID = &img.ID
		}
	}

	var quoteID *int64
	quote, err := s.selector.PickQuote(ctx, in.FestivalID)
	if err != nil {
		return nil, err
	}
	if quote != nil {
		quoteID = &quote.ID
	}

	wish := &domain.Wish{
		UserID:         in.UserID,
		FestivalID:     in.FestivalID,
		RelationshipID: in.RelationshipID,
		RecipientName:  in.RecipientName,
		CustomMessage:  in.CustomMessage,
		FinalMessage:   finalMessage,
		MessageID:      messageID,
		QuoteID:        quoteID,
		ImageID:        imageID,
		UserImageID:    in.UserImageID,
		ChannelType:    channelType,
		SentStatus:     domain.StatusPending,
	}

	created, err := s.wishes.Create(ctx, wish)
	if err != nil {
		return nil, fmt.Errorf("failed to create wish: %w", err)
	}

	logger.Infof("Created wish %d for festival %s", created.ID, festival.Slug)

	return created, nil
}

// GeneratePreview runs the same selection logic as CreateWish but persists
// nothing. Repeated calls with the same arguments return different content
// whenever the pools hold more than one item.
func (s *WishService) GeneratePreview(ctx context.Context, in PreviewInput) (*domain.WishPreview, error) {
	festival, err := s.festivals.GetByID(ctx, in.FestivalID)
	if err != nil {
		return nil, err
	}
	if festival == nil {
		return nil, domain.NotFoundError("Festival", in.FestivalID)
	}

	relationship, err := s.relationships.GetByID(ctx, in.RelationshipID)
	if err != nil {
		return nil, err
	}
	if relationship == nil {
		return nil, domain.NotFoundError("Relationship", in.RelationshipID)
	}

	preview := &domain.WishPreview{
		FestivalName:     festival.Name,
		RelationshipName: relationship.DisplayName,
		RecipientName:    in.RecipientName,
	}

	if in.CustomMessage != nil && strings.TrimSpace(*in.CustomMessage) != "" {
		preview.MessageText = *in.CustomMessage
	} else {
		template, err := s.selector.PickMessage(ctx, in.FestivalID, in.RelationshipID)
		if err != nil {
			return nil, err
		}
		if template != nil {
			preview.MessageText = template.MessageText
		}
	}

	img, err := s.selector.PickImage(ctx, in.FestivalID)
	if err != nil {
		return nil, err
	}
	if img != nil {
		preview.ImageURL = img.ImageURL
	}

	quote, err := s.selector.PickQuote(ctx, in.FestivalID)
	if err != nil {
		return nil, err
	}
	if quote != nil {
		preview.QuoteText = &quote.QuoteText
		preview.QuoteAuthor = &quote.Author
	}

	return preview, nil
}

// GenerateCard renders the wish onto a background image and stores the
// result. Background precedence: the user's own upload, then the image
// selected at creation time, then a fresh random pick. No resolvable image
// is reported as a non-fatal failure, not an error. Re-rendering overwrites
// the previous card.
func (s *WishService) GenerateCard(ctx context.Context, wishID int64) (*domain.CardResult, error) {
	wish, err := s.wishes.GetByID(ctx, wishID)
	if err != nil {
		return nil, err
	}
	if wish == nil {
		return nil, domain.NotFoundError("Wish", wishID)
	}

	imageURL, err := s.resolveBackgroundURL(ctx, wish)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return &domain.CardResult{
			Success: false,
			Message: "No image available for card generation",
		}, nil
	}

	var quoteText string
	if wish.QuoteID != nil {
		quote, err := s.festivals.GetQuoteByID(ctx, *wish.QuoteID)
		if err != nil {
			return nil, err
		}
		if quote != nil {
			quoteText = quote.QuoteText
		}
	}

	background, err := s.fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		return nil, domain.RenderingError(fmt.Errorf("fetch background: %w", err))
	}

	var recipientName string
	if wish.RecipientName != nil {
		recipientName = *wish.RecipientName
	}

	cardBytes, err := s.renderer.Render(background, card.Options{
		MessageText:   wish.FinalMessage,
		RecipientName: recipientName,
		QuoteText:     quoteText,
		Width:         s.cardWidth,
		Height:        s.cardHeight,
	})
	if err != nil {
		return nil, err
	}

	storagePath := fmt.Sprintf("generated_cards/%d.jpg", wish.ID)
	cardURL, err := s.blob.Put(ctx, storagePath, cardBytes, "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("failed to store card: %w", err)
	}

	if err := s.wishes.UpdateCardURL(ctx, wish.ID, cardURL); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.CacheCardURL(ctx, wish.ID, cardURL); err != nil {
			logger.Warnf("Failed to cache card url for wish %d: %v", wish.ID, err)
		}
	}

	logger.Infof("Generated card for wish %d", wish.ID)

	return &domain.CardResult{Success: true, CardURL: cardURL}, nil
}

func (s *WishService) resolveBackgroundURL(ctx context.Context, wish *domain.Wish) (string, error) {
	if wish.UserImageID != nil {
		userImage, err := s.userImages.GetByID(ctx, *wish.UserImageID)
		if err != nil {
			return "", err
		}
		if userImage == nil {
			return "", domain.NotFoundError("Image", *wish.UserImageID)
		}
		return userImage.ImageURL, nil
	}

	if wish.ImageID != nil {
		img, err := s.festivals.GetImageByID(ctx, *wish.ImageID)
		if err != nil {
			return "", err
		}
		if img != nil {
			return img.ImageURL, nil
		}
		// Dangling reference: fall through to "no image" rather than failing.
		return "", nil
	}

	img, err := s.selector.PickImage(ctx, wish.FestivalID)
	if err != nil {
		return "", err
	}
	if img == nil {
		return "", nil
	}
	return img.ImageURL, nil
}

// SendWish dispatches the wish through a delivery channel. Delivery problems
// come back inside the SendResult; only store failures surface as errors.
// The wish is marked sent only after the channel reports success.
func (s *WishService) SendWish(ctx context.Context, wishID int64, channelType, recipient string) (channel.SendResult, error) {
	wish, err := s.wishes.GetByID(ctx, wishID)
	if err != nil {
		return channel.SendResult{}, err
	}
	if wish == nil {
		return channel.SendResult{}, domain.NotFoundError("Wish", wishID)
	}

	content := channel.WishContent{
		MessageText: wish.FinalMessage,
		CardURL:     wish.GeneratedCardURL,
	}
	if wish.RecipientName != nil {
		content.RecipientName = *wish.RecipientName
	}

	if wish.QuoteID != nil {
		quote, err := s.festivals.GetQuoteByID(ctx, *wish.QuoteID)
		if err == nil && quote != nil {
			content.QuoteText = &quote.QuoteText
		}
	}

	festival, err := s.festivals.GetByID(ctx, wish.FestivalID)
	if err == nil && festival != nil {
		content.FestivalName = &festival.Name
	}

	result := s.channels.Dispatch(ctx, channelType, recipient, content)

	if result.Success {
		if err := s.wishes.MarkAsSent(ctx, wish.ID, channelType, time.Now()); err != nil {
			return result, fmt.Errorf("wish dispatched but not marked as sent: %w", err)
		}
	}

	return result, nil
}

// GetWish returns a wish by id.
func (s *WishService) GetWish(ctx context.Context, wishID int64) (*domain.Wish, error) {
	wish, err := s.wishes.GetByID(ctx, wishID)
	if err != nil {
		return nil, err
	}
	if wish == nil {
		return nil, domain.NotFoundError("Wish", wishID)
	}
	return wish, nil
}

// GetUserWishes returns the user's wish history, newest first.
func (s *WishService) GetUserWishes(ctx context.Context, userID int64, limit int) ([]domain.Wish, error) {
	return s.wishes.GetByUser(ctx, userID, limit)
}

// DownloadCard returns the stored card bytes and a download filename. The
// cache, when present, lets this skip the wish lookup.
func (s *WishService) DownloadCard(ctx context.Context, wishID int64) ([]byte, string, error) {
	filename := fmt.Sprintf("festwish_%d.jpg", wishID)

	if s.cache != nil {
		if cardURL, err := s.cache.GetCachedCardURL(ctx, wishID); err == nil && cardURL != "" {
			data, err := s.blob.Get(ctx, cardURL)
			if err == nil {
				return data, filename, nil
			}
			logger.Warnf("Cached card url for wish %d is stale: %v", wishID, err)
		}
	}

	wish, err := s.wishes.GetByID(ctx, wishID)
	if err != nil {
		return nil, "", err
	}
	if wish == nil {
		return nil, "", domain.NotFoundError("Wish", wishID)
	}
	if wish.GeneratedCardURL == nil {
		return nil, "", domain.ValidationError("no card generated for wish %d", wishID)
	}

	data, err := s.blob.Get(ctx, *wish.GeneratedCardURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download card: %w", err)
	}

	return data, filename, nil
}
