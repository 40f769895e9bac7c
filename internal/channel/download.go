package channel

import (
	"context"

	"github.com/festwish/wish-service/pkg/logger"
)

const downloadMessageID = "download"

// DownloadChannel records that the user downloaded their card through the
// same interface as real transports. It performs no external I/O and always
// succeeds.
type DownloadChannel struct{}

func (c *DownloadChannel) Type() string { return "download" }

func (c *DownloadChannel) IsAvailable() bool { return true }

func (c *DownloadChannel) Send(ctx context.Context, recipient string, content WishContent) SendResult {
	if content.FestivalName != nil {
		logger.Infof("Wish downloaded for %s", *content.FestivalName)
	}

	messageID := downloadMessageID
	return SendResult{Success: true, MessageID: &messageID}
}
