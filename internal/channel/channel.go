// Package channel defines the delivery extension point for wishes. One
// concrete channel (download) works today; whatsapp, sms and email fix the
// contract shape for future transports without delivering anything.
package channel

import "context"

// WishContent carries everything a transport needs to deliver a wish.
type WishContent struct {
	RecipientName string  `json:"recipientName"`
	MessageText   string  `json:"messageText"`
	CardURL       *string `json:"cardUrl,omitempty"`
	QuoteText     *string `json:"quoteText,omitempty"`
	FestivalName  *string `json:"festivalName,omitempty"`
}

// SendResult is transient: it is returned to the caller to decide status
// transitions and is never persisted.
type SendResult struct {
	Success   bool    `json:"success"`
	MessageID *string `json:"messageId,omitempty"`
	Error     *string `json:"error,omitempty"`
}

func failure(message string) SendResult {
	return SendResult{Success: false, Error: &message}
}

// Channel is the capability contract every delivery mechanism implements.
// Send must never panic or return a Go error; delivery problems are reported
// inside the SendResult so callers can branch without error handling.
type Channel interface {
	Type() string
	IsAvailable() bool
	Send(ctx context.Context, recipient string, content WishContent) SendResult
}

// ChannelInfo describes a registered channel for discovery by callers.
type ChannelInfo struct {
	Type        string `json:"type"`
	DisplayName string `json:"name"`
	Stub        bool   `json:"stub"`
}
