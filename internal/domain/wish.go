package domain

import "time"

type WishStatus string

const (
	StatusPending WishStatus = "pending"
	StatusSent    WishStatus = "sent"
	StatusFailed  WishStatus = "failed"
)

// Festival is reference data maintained by the seeding process; the service
// only ever reads it.
type Festival struct {
	ID              int64     `db:"id" json:"id"`
	Slug            string    `db:"slug" json:"slug"`
	Name            string    `db:"name" json:"name"`
	Description     *string   `db:"description" json:"description,omitempty"`
	ReligionCulture string    `db:"religion_culture" json:"religionCulture"`
	TypicalMonth    string    `db:"typical_month" json:"typicalMonth"`
	IsActive        bool      `db:"is_active" json:"isActive"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type Relationship struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	DisplayName string    `db:"display_name" json:"displayName"`
	Category    string    `db:"category" json:"category"`
	SortOrder   int       `db:"sort_order" json:"sortOrder"`
	IsActive    bool      `db:"is_active" json:"isActive"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// MessageTemplate belongs to one (festival, relationship) pair. The active
// templates for a pair form an unordered pool the selector draws from.
type MessageTemplate struct {
	ID             int64     `db:"id" json:"id"`
	FestivalID     int64     `db:"festival_id" json:"festivalId"`
	RelationshipID int64     `db:"relationship_id" json:"relationshipId"`
	MessageText    string    `db:"message_text" json:"messageText"`
	Tone           string    `db:"tone" json:"tone"`
	Language       string    `db:"language" json:"language"`
	IsActive       bool      `db:"is_active" json:"isActive"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

type Quote struct {
	ID         int64     `db:"id" json:"id"`
	FestivalID int64     `db:"festival_id" json:"festivalId"`
	QuoteText  string    `db:"quote_text" json:"quoteText"`
	Author     string    `db:"author" json:"author"`
	IsActive   bool      `db:"is_active" json:"isActive"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

type FestivalImage struct {
	ID             int64     `db:"id" json:"id"`
	FestivalID     int64     `db:"festival_id" json:"festivalId"`
	ImageURL       string    `db:"image_url" json:"imageUrl"`
	AltText        string    `db:"alt_text" json:"altText"`
	IsCardTemplate bool      `db:"is_card_template" json:"isCardTemplate"`
	IsActive       bool      `db:"is_active" json:"isActive"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// UserImage is an upload owned by exactly one user, usable as a card
// background override.
type UserImage struct {
	ID               int64     `db:"id" json:"id"`
	UserID           int64     `db:"user_id" json:"userId"`
	ImageURL         string    `db:"image_url" json:"imageUrl"`
	StoragePath      string    `db:"storage_path" json:"storagePath"`
	OriginalFilename string    `db:"original_filename" json:"originalFilename"`
	FileSize         int64     `db:"file_size" json:"fileSize"`
	MimeType         string    `db:"mime_type" json:"mimeType"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}

// Wish is the central aggregate. Once created it is immutable except for
// generated_card_url (overwritten on each successful render) and
// sent_status/sent_at (advanced by the send endpoint, never automatically).
type Wish struct {
	ID               int64      `db:"id" json:"id"`
	UserID           *int64     `db:"user_id" json:"userId,omitempty"`
	FestivalID       int64      `db:"festival_id" json:"festivalId"`
	RelationshipID   int64      `db:"relationship_id" json:"relationshipId"`
	RecipientName    *string    `db:"recipient_name" json:"recipientName,omitempty"`
	CustomMessage    *string    `db:"custom_message" json:"customMessage,omitempty"`
	FinalMessage     string     `db:"final_message" json:"finalMessage"`
	MessageID        *int64     `db:"message_id" json:"messageId,omitempty"`
	QuoteID          *int64     `db:"quote_id" json:"quoteId,omitempty"`
	ImageID          *int64     `db:"image_id" json:"imageId,omitempty"`
	UserImageID      *int64     `db:"user_image_id" json:"userImageId,omitempty"`
	ChannelType      string     `db:"channel_type" json:"channelType"`
	GeneratedCardURL *string    `db:"generated_card_url" json:"generatedCardUrl,omitempty"`
	SentStatus       WishStatus `db:"sent_status" json:"sentStatus"`
	SentAt           *time.Time `db:"sent_at" json:"sentAt,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
}

// WishPreview is the transient result of the preview operation; nothing is
// persisted for it.
type WishPreview struct {
	MessageText      string  `json:"messageText"`
	ImageURL         string  `json:"imageUrl"`
	QuoteText        *string `json:"quoteText,omitempty"`
	QuoteAuthor      *string `json:"quoteAuthor,omitempty"`
	FestivalName     string  `json:"festivalName"`
	RelationshipName string  `json:"relationshipName"`
	RecipientName    *string `json:"recipientName,omitempty"`
}

// CardResult reports a card generation attempt. Success=false with no error
// means no background image was resolvable for the wish.
type CardResult struct {
	Success bool   `json:"success"`
	CardURL string `json:"cardUrl,omitempty"`
	Message string `json:"message,omitempty"`
}
