package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/festwish/wish-service/internal/card"
	"github.com/festwish/wish-service/internal/channel"
	"github.com/festwish/wish-service/internal/domain"
	"github.com/festwish/wish-service/internal/selector"
)

//
// Test fakes – only for this file.
//

type fakeFestivalStore struct {
	festivals map[int64]*domain.Festival
	quotes    map[int64]*domain.Quote
	images    map[int64]*domain.FestivalImage
}

func (s *fakeFestivalStore) GetByID(ctx context.Context, id int64) (*domain.Festival, error) {
	return s.festivals[id], nil
}

func (s *fakeFestivalStore) GetQuoteByID(ctx context.Context, id int64) (*domain.Quote, error) {
	return s.quotes[id], nil
}

func (s *fakeFestivalStore) GetImageByID(ctx context.Context, id int64) (*domain.FestivalImage, error) {
	return s.images[id], nil
}

type fakeRelationshipStore struct {
	relationships map[int64]*domain.Relationship
}

func (s *fakeRelationshipStore) GetByID(ctx context.Context, id int64) (*domain.Relationship, error) {
	return s.relationships[id], nil
}

type fakeWishStore struct {
	nextID int64
	wishes map[int64]*domain.Wish

	createCalls   int
	cardURLWrites map[int64]string
	sentMarks     map[int64]string
}

func newFakeWishStore() *fakeWishStore {
	return &fakeWishStore{
		nextID:        1,
		wishes:        make(map[int64]*domain.Wish),
		cardURLWrites: make(map[int64]string),
		sentMarks:     make(map[int64]string),
	}
}

func (s *fakeWishStore) Create(ctx context.Context, wish *domain.Wish) (*domain.Wish, error) {
	s.createCalls++

	stored := *wish
	stored.ID = s.nextID
	stored.CreatedAt = time.Now()
	s.nextID++
	s.wishes[stored.ID] = &stored

	return &stored, nil
}

func (s *fakeWishStore) GetByID(ctx context.Context, id int64) (*domain.Wish, error) {
	return s.wishes[id], nil
}

func (s *fakeWishStore) GetByUser(ctx context.Context, userID int64, limit int) ([]domain.Wish, error) {
	var result []domain.Wish
	for _, w := range s.wishes {
		if w.UserID != nil && *w.UserID == userID {
			result = append(result, *w)
		}
	}
	return result, nil
}

func (s *fakeWishStore) UpdateCardURL(ctx context.Context, id int64, cardURL string) error {
	s.cardURLWrites[id] = cardURL
	if w, ok := s.wishes[id]; ok {
		w.GeneratedCardURL = &cardURL
	}
	return nil
}

func (s *fakeWishStore) MarkAsSent(ctx context.Context, id int64, channelType string, sentAt time.Time) error {
	s.sentMarks[id] = channelType
	if w, ok := s.wishes[id]; ok {
		w.SentStatus = domain.StatusSent
	}
	return nil
}

type fakeUserImageStore struct {
	images map[int64]*domain.UserImage
}

func (s *fakeUserImageStore) GetByID(ctx context.Context, id int64) (*domain.UserImage, error) {
	return s.images[id], nil
}

// fakePools backs the real selector so the service tests exercise the actual
// selection logic.
type fakePools struct {
	messages []domain.MessageTemplate
	quotes   []domain.Quote
	images   []domain.FestivalImage
}

func (p *fakePools) ActiveMessages(ctx context.Context, festivalID, relationshipID int64) ([]domain.MessageTemplate, error) {
	return p.messages, nil
}

func (p *fakePools) ActiveQuotes(ctx context.Context, festivalID int64) ([]domain.Quote, error) {
	return p.quotes, nil
}

func (p *fakePools) ActiveImages(ctx context.Context, festivalID int64) ([]domain.FestivalImage, error) {
	return p.images, nil
}

type fakeRenderer struct {
	renderCalls    int
	lastBackground []byte
	output         []byte
}

func (r *fakeRenderer) Render(background []byte, opts card.Options) ([]byte, error) {
	r.renderCalls++
	r.lastBackground = background
	if r.output == nil {
		return []byte("jpeg-bytes"), nil
	}
	return r.output, nil
}

type fakeBlobStore struct {
	puts     map[string][]byte
	lastPath string
	objects  map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		puts:    make(map[string][]byte),
		objects: make(map[string][]byte),
	}
}

func (b *fakeBlobStore) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	b.puts[path] = data
	b.lastPath = path
	url := "https://blob.test/" + path
	b.objects[url] = data
	return url, nil
}

func (b *fakeBlobStore) Get(ctx context.Context, urlOrPath string) ([]byte, error) {
	data, ok := b.objects[urlOrPath]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

type fakeFetcher struct {
	responses map[string][]byte
	lastURL   string
}

func (f *fakeFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	f.lastURL = url
	if data, ok := f.responses[url]; ok {
		return data, nil
	}
	return []byte("background-bytes"), nil
}

//
// Fixture wiring
//

type fixture struct {
	service   *WishService
	festivals *fakeFestivalStore
	wishes    *fakeWishStore
	pools     *fakePools
	renderer  *fakeRenderer
	blob      *fakeBlobStore
	fetcher   *fakeFetcher
}

func newFixture() *fixture {
	festivals := &fakeFestivalStore{
		festivals: map[int64]*domain.Festival{
			1: {ID: 1, Slug: "diwali", Name: "Diwali", IsActive: true},
		},
		quotes: map[int64]*domain.Quote{},
		images: map[int64]*domain.FestivalImage{},
	}
	relationships := &fakeRelationshipStore{
		relationships: map[int64]*domain.Relationship{
			2: {ID: 2, Name: "mother", DisplayName: "Mother", IsActive: true},
		},
	}

	wishes := newFakeWishStore()
	userImages := &fakeUserImageStore{images: map[int64]*domain.UserImage{}}
	pools := &fakePools{}
	renderer := &fakeRenderer{}
	blob := newFakeBlobStore()
	fetcher := &fakeFetcher{}

	rng := rand.New(rand.NewSource(3))
	sel := selector.New(pools, rng.Intn)

	svc := NewWishService(
		festivals, relationships, wishes, userImages,
		sel, renderer, blob, fetcher,
		channel.NewRegistry(), nil,
		card.DefaultWidth, card.DefaultHeight,
	)

	return &fixture{
		service:   svc,
		festivals: festivals,
		wishes:    wishes,
		pools:     pools,
		renderer:  renderer,
		blob:      blob,
		fetcher:   fetcher,
	}
}

func ptr[T any](v T) *T { return &v }

//
// CreateWish
//

func TestCreateWish_ResolvesTemplateMessage(t *testing.T) {
	f := newFixture()
	f.pools.messages = []domain.MessageTemplate{
		{ID: 7, FestivalID: 1, RelationshipID: 2, MessageText: "Happy Diwali, Mom!"},
	}

	wish, err := f.service.CreateWish(context.Background(), CreateWishInput{
		FestivalID:     1,
		RelationshipID: 2,
		ChannelType:    "download",
	})
	if err != nil {
		t.Fatalf("CreateWish returned error: %v", err)
	}

	if wish.FinalMessage != "Happy Diwali, Mom!" {
		t.Errorf("expected final message from template, got %q", wish.FinalMessage)
	}
	if wish.SentStatus != domain.StatusPending {
		t.Errorf("expected sent_status pending, got %q", wish.SentStatus)
	}
	if wish.MessageID == nil || *wish.MessageID != 7 {
		t.Errorf("expected message id 7 recorded, got %v", wish.MessageID)
	}
}

func TestCreateWish_CustomMessageWinsOverTemplates(t *testing.T) {
	f := newFixture()
	f.pools.messages = []domain.MessageTemplate{
		{ID: 7, MessageText: "template text"},
	}

	wish, err := f.service.CreateWish(context.Background(), CreateWishInput{
		FestivalID:     1,
		RelationshipID: 2,
		CustomMessage:  ptr("My own words"),
		ChannelType:    "download",
	})
	if err != nil {
		t.Fatalf("CreateWish returned error: %v", err)
	}

	if wish.FinalMessage != "My own words" {
		t.Errorf("expected custom message, got %q", wish.FinalMessage)
	}
	if wish.MessageID != nil {
		t.Errorf("custom message must not record a template id, got %v", wish.MessageID)
	}
}

func TestCreateWish_EmptyPoolWithoutCustomMessageFails(t *testing.T) {
	f := newFixture()

	_, err := f.service.CreateWish(context.Background(), CreateWishInput{
		FestivalID:     1,
		RelationshipID: 2,
		ChannelType:    "download",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "Diwali") || !strings.Contains(err.Error(), "Mother") {
		t.Errorf("expected error to name the unmet pair, got %q", err.Error())
	}
	if f.wishes.createCalls != 0 {
		t.Errorf("no wish may be persisted on validation failure")
	}
}

func TestCreateWish_UnknownFestival(t *testing.T) {
	f := newFixture()

	_, err := f.service.CreateWish(context.Background(), CreateWishInput{
		FestivalID:     99,
		RelationshipID: 2,
		ChannelType:    "download",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateWish_UnknownChannelType(t *testing.T) {
	f := newFixture()
	f.pools.messages = []domain.MessageTemplate{{ID: 1, MessageText: "hi"}}

	_, err := f.service.CreateWish(context.Background(), CreateWishInput{
		FestivalID:     1,
		RelationshipID: 2,
		ChannelType:    "telegraph",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown channel, got %v", err)
	}
}

func TestCreateWish_UserImageSkipsImagePick(t *testing.T) {
	f := newFixture()
	f.pools.messages = []domain.MessageTemplate{{ID: 1, MessageText: "hi"}}
	f.pools.images = []domain.FestivalImage{{ID: 5, ImageURL: "https://img.test/5.jpg"}}

	wish, err := f.service.CreateWish(context.Background(), CreateWishInput{
		FestivalID:     1,
		RelationshipID: 2,
		UserImageID:    ptr(int64(42)),
		ChannelType:    "download",
	})
	if err != nil {
		t.Fatalf("CreateWish returned error: %v", err)
	}

	if wish.ImageID != nil {
		t.Errorf("festival image must not be picked when a user image is supplied, got %v", wish.ImageID)
	}
	if wish.UserImageID == nil || *wish.UserImageID != 42 {
		t.Errorf("expected user image id 42, got %v", wish.UserImageID)
	}
}

func TestCreateWish_MissingQuoteAndImagePoolsAreNonFatal(t *testing.T) {
	f := newFixture()
	f.pools.messages = []domain.MessageTemplate{{ID: 1, MessageText: "hi"}}

	wish, err := f.service.CreateWish(context.Background(), CreateWishInput{
		FestivalID:     1,
		RelationshipID: 2,
		ChannelType:    "download",
	})
	if err != nil {
		t.Fatalf("CreateWish returned error: %v", err)
	}
	if wish.QuoteID != nil || wish.ImageID != nil {
		t.Errorf("expected no quote/image references, got quote=%v image=%v", wish.QuoteID, wish.ImageID)
	}
}

//
// GeneratePreview
//

func TestGeneratePreview_PersistsNothing(t *testing.T) {
	f := newFixture()
	f.pools.messages = []domain.MessageTemplate{{ID: 1, MessageText: "hello"}}

	preview, err := f.service.GeneratePreview(context.Background(), PreviewInput{
		FestivalID:     1,
		RelationshipID: 2,
	})
	if err != nil {
		t.Fatalf("GeneratePreview returned error: %v", err)
	}

	if preview.MessageText != "hello" {
		t.Errorf("expected preview message, got %q", preview.MessageText)
	}
	if preview.FestivalName != "Diwali" || preview.RelationshipName != "Mother" {
		t.Errorf("expected festival/relationship names, got %q/%q",
			preview.FestivalName, preview.RelationshipName)
	}
	if f.wishes.createCalls != 0 {
		t.Errorf("preview must not persist wishes, got %d creates", f.wishes.createCalls)
	}
}

func TestGeneratePreview_AllQuotesObservedOverManyCalls(t *testing.T) {
	f := newFixture()
	f.pools.messages = []domain.MessageTemplate{{ID: 1, MessageText: "hi"}}
	f.pools.quotes = []domain.Quote{
		{ID: 1, QuoteText: "quote one"},
		{ID: 2, QuoteText: "quote two"},
		{ID: 3, QuoteText: "quote three"},
	}

	seen := make(map[string]int)
	for i := 0; i < 300; i++ {
		preview, err := f.service.GeneratePreview(context.Background(), PreviewInput{
			FestivalID:     1,
			RelationshipID: 2,
		})
		if err != nil {
			t.Fatalf("GeneratePreview returned error: %v", err)
		}
		if preview.QuoteText != nil {
			seen[*preview.QuoteText]++
		}
	}

	for _, q := range []string{"quote one", "quote two", "quote three"} {
		if seen[q] == 0 {
			t.Errorf("quote %q never observed over 300 previews; pick is not uniform", q)
		}
	}
}

//
// GenerateCard
//

func TestGenerateCard_UserImageTakesPrecedence(t *testing.T) {
	f := newFixture()
	f.pools.messages = []domain.MessageTemplate{{ID: 1, MessageText: "hi"}}

	userImageURL := "https://blob.test/user_uploads/9/abc.jpg"
	festivalImageURL := "https://img.test/festival.jpg"

	f.festivals.images[5] = &domain.FestivalImage{ID: 5, ImageURL: festivalImageURL}

	userImages := &fakeUserImageStore{images: map[int64]*domain.UserImage{
		42: {ID: 42, UserID: 9, ImageURL: userImageURL},
	}}
	f.service.userImages = userImages

	wish, err := f.wishes.Create(context.Background(), &domain.Wish{
		FestivalID:     1,
		RelationshipID: 2,
		FinalMessage:   "hi",
		ImageID:        ptr(int64(5)),
		UserImageID:    ptr(int64(42)),
		ChannelType:    "download",
		SentStatus:     domain.StatusPending,
	})
	if err != nil {
		t.Fatalf("failed to seed wish: %v", err)
	}

	result, err := f.service.GenerateCard(context.Background(), wish.ID)
	if err != nil {
		t.Fatalf("GenerateCard returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}

	if f.fetcher.lastURL != userImageURL {
		t.Errorf("expected background fetched from user image %q, got %q", userImageURL, f.fetcher.lastURL)
	}
}

func TestGenerateCard_StoredImageUsedWhenNoUserImage(t *testing.T) {
	f := newFixture()
	festivalImageURL := "https://img.test/festival.jpg"
	f.festivals.images[5] = &domain.FestivalImage{ID: 5, ImageURL: festivalImageURL}

	wish, _ := f.wishes.Create(context.Background(), &domain.Wish{
		FestivalID:     1,
		RelationshipID: 2,
		FinalMessage:   "hi",
		ImageID:        ptr(int64(5)),
		ChannelType:    "download",
		SentStatus:     domain.StatusPending,
	})

	result, err := f.service.GenerateCard(context.Background(), wish.ID)
	if err != nil {
		t.Fatalf("GenerateCard returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if f.fetcher.lastURL != festivalImageURL {
		t.Errorf("expected stored festival image %q, got %q", festivalImageURL, f.fetcher.lastURL)
	}
}

func TestGenerateCard_NoResolvableImageIsNonFatal(t *testing.T) {
	f := newFixture()

	wish, _ := f.wishes.Create(context.Background(), &domain.Wish{
		FestivalID:     1,
		RelationshipID: 2,
		FinalMessage:   "hi",
		ChannelType:    "download",
		SentStatus:     domain.StatusPending,
	})

	result, err := f.service.GenerateCard(context.Background(), wish.ID)
	if err != nil {
		t.Fatalf("expected non-fatal result, got error %v", err)
	}
	if result.Success {
		t.Fatalf("expected Success=false with no image, got %+v", result)
	}
	if f.renderer.renderCalls != 0 {
		t.Errorf("renderer must not run without a background")
	}
}

func TestGenerateCard_StoresCardAndWritesURL(t *testing.T) {
	f := newFixture()
	f.pools.images = []domain.FestivalImage{{ID: 5, ImageURL: "https://img.test/5.jpg"}}

	wish, _ := f.wishes.Create(context.Background(), &domain.Wish{
		FestivalID:     1,
		RelationshipID: 2,
		FinalMessage:   "hi",
		ChannelType:    "download",
		SentStatus:     domain.StatusPending,
	})

	result, err := f.service.GenerateCard(context.Background(), wish.ID)
	if err != nil {
		t.Fatalf("GenerateCard returned error: %v", err)
	}
	if !result.Success || result.CardURL == "" {
		t.Fatalf("expected success with card url, got %+v", result)
	}

	expectedPath := "generated_cards/1.jpg"
	if _, ok := f.blob.puts[expectedPath]; !ok {
		t.Errorf("expected card stored at %q, stored at %q", expectedPath, f.blob.lastPath)
	}
	if f.wishes.cardURLWrites[wish.ID] != result.CardURL {
		t.Errorf("expected card url written to wish, got %q", f.wishes.cardURLWrites[wish.ID])
	}
}

func TestGenerateCard_RerenderOverwrites(t *testing.T) {
	f := newFixture()
	f.pools.images = []domain.FestivalImage{{ID: 5, ImageURL: "https://img.test/5.jpg"}}

	wish, _ := f.wishes.Create(context.Background(), &domain.Wish{
		FestivalID:     1,
		RelationshipID: 2,
		FinalMessage:   "hi",
		ChannelType:    "download",
		SentStatus:     domain.StatusPending,
	})

	first, err := f.service.GenerateCard(context.Background(), wish.ID)
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	second, err := f.service.GenerateCard(context.Background(), wish.ID)
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	if first.CardURL != second.CardURL {
		t.Errorf("re-render must overwrite the same object, got %q then %q", first.CardURL, second.CardURL)
	}
	if f.renderer.renderCalls != 2 {
		t.Errorf("expected 2 render calls, got %d", f.renderer.renderCalls)
	}
}

func TestGenerateCard_UnknownWish(t *testing.T) {
	f := newFixture()

	_, err := f.service.GenerateCard(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

//
// SendWish
//

func TestSendWish_DownloadChannelMarksSent(t *testing.T) {
	f := newFixture()

	wish, _ := f.wishes.Create(context.Background(), &domain.Wish{
		FestivalID:     1,
		RelationshipID: 2,
		FinalMessage:   "hi",
		ChannelType:    "download",
		SentStatus:     domain.StatusPending,
	})

	result, err := f.service.SendWish(context.Background(), wish.ID, "download", "whoever")
	if err != nil {
		t.Fatalf("SendWish returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success from download channel, got %+v", result)
	}

	if f.wishes.sentMarks[wish.ID] != "download" {
		t.Errorf("expected wish marked sent via download, got %q", f.wishes.sentMarks[wish.ID])
	}
	if f.wishes.wishes[wish.ID].SentStatus != domain.StatusSent {
		t.Errorf("expected sent status, got %q", f.wishes.wishes[wish.ID].SentStatus)
	}
}

func TestSendWish_StubChannelFailureDoesNotMarkSent(t *testing.T) {
	f := newFixture()

	wish, _ := f.wishes.Create(context.Background(), &domain.Wish{
		FestivalID:     1,
		RelationshipID: 2,
		FinalMessage:   "hi",
		ChannelType:    "sms",
		SentStatus:     domain.StatusPending,
	})

	result, err := f.service.SendWish(context.Background(), wish.ID, "sms", "+15550001111")
	if err != nil {
		t.Fatalf("channel failure must not be a Go error, got %v", err)
	}
	if result.Success {
		t.Fatalf("expected failure from sms stub, got %+v", result)
	}

	if _, marked := f.wishes.sentMarks[wish.ID]; marked {
		t.Errorf("wish must not be marked sent after a failed dispatch")
	}
	if f.wishes.wishes[wish.ID].SentStatus != domain.StatusPending {
		t.Errorf("expected status to remain pending, got %q", f.wishes.wishes[wish.ID].SentStatus)
	}
}

//
// DownloadCard
//

func TestDownloadCard_ReturnsStoredBytes(t *testing.T) {
	f := newFixture()
	f.pools.images = []domain.FestivalImage{{ID: 5, ImageURL: "https://img.test/5.jpg"}}

	wish, _ := f.wishes.Create(context.Background(), &domain.Wish{
		FestivalID:     1,
		RelationshipID: 2,
		FinalMessage:   "hi",
		ChannelType:    "download",
		SentStatus:     domain.StatusPending,
	})

	if _, err := f.service.GenerateCard(context.Background(), wish.ID); err != nil {
		t.Fatalf("GenerateCard returned error: %v", err)
	}

	data, filename, err := f.service.DownloadCard(context.Background(), wish.ID)
	if err != nil {
		t.Fatalf("DownloadCard returned error: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("expected stored card bytes, got %q", data)
	}
	if filename != "festwish_1.jpg" {
		t.Errorf("expected download filename festwish_1.jpg, got %q", filename)
	}
}

func TestDownloadCard_NoCardGenerated(t *testing.T) {
	f := newFixture()

	wish, _ := f.wishes.Create(context.Background(), &domain.Wish{
		FestivalID:     1,
		RelationshipID: 2,
		FinalMessage:   "hi",
		ChannelType:    "download",
		SentStatus:     domain.StatusPending,
	})

	_, _, err := f.service.DownloadCard(context.Background(), wish.ID)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for ungenerated card, got %v", err)
	}
}
