package channel

import (
	"context"

	"github.com/festwish/wish-service/pkg/logger"
)

// WhatsAppChannel is a placeholder for a future WhatsApp Business API
// integration. It reports unavailable and refuses to send.
type WhatsAppChannel struct{}

func (c *WhatsAppChannel) Type() string { return "whatsapp" }

func (c *WhatsAppChannel) IsAvailable() bool { return false }

func (c *WhatsAppChannel) Send(ctx context.Context, recipient string, content WishContent) SendResult {
	logger.Debugf("whatsapp send requested for %s, integration not implemented", recipient)
	return failure("WhatsApp integration not yet implemented")
}

// SMSChannel is a placeholder for a future SMS provider integration.
type SMSChannel struct{}

func (c *SMSChannel) Type() string { return "sms" }

func (c *SMSChannel) IsAvailable() bool { return false }

func (c *SMSChannel) Send(ctx context.Context, recipient string, content WishContent) SendResult {
	logger.Debugf("sms send requested for %s, integration not implemented", recipient)
	return failure("SMS integration not yet implemented")
}

// EmailChannel is a placeholder for a future transactional email integration.
type EmailChannel struct{}

func (c *EmailChannel) Type() string { return "email" }

func (c *EmailChannel) IsAvailable() bool { return false }

func (c *EmailChannel) Send(ctx context.Context, recipient string, content WishContent) SendResult {
	logger.Debugf("email send requested for %s, integration not implemented", recipient)
	return failure("Email integration not yet implemented")
}
