package channel

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownChannel = errors.New("unknown channel type")

type registration struct {
	displayName string
	construct   func() Channel
}

// Registry maps channel type ids to constructors. Lookup is case-insensitive.
type Registry struct {
	order    []string
	channels map[string]registration
}

// NewRegistry returns a registry with all built-in channels registered.
func NewRegistry() *Registry {
	r := &Registry{channels: make(map[string]registration)}

	r.Register("download", "Download", func() Channel { return &DownloadChannel{} })
	r.Register("whatsapp", "WhatsApp", func() Channel { return &WhatsAppChannel{} })
	r.Register("sms", "SMS", func() Channel { return &SMSChannel{} })
	r.Register("email", "Email", func() Channel { return &EmailChannel{} })

	return r
}

// Register adds a channel constructor. Registering an existing type replaces
// its constructor but keeps its position in the listing order.
func (r *Registry) Register(channelType, displayName string, construct func() Channel) {
	key := strings.ToLower(channelType)
	if _, exists := r.channels[key]; !exists {
		r.order = append(r.order, key)
	}
	r.channels[key] = registration{displayName: displayName, construct: construct}
}

// Get resolves a channel by type id, ignoring case.
func (r *Registry) Get(channelType string) (Channel, error) {
	reg, ok := r.channels[strings.ToLower(channelType)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, channelType)
	}
	return reg.construct(), nil
}

// Known reports whether a channel type is registered.
func (r *Registry) Known(channelType string) bool {
	_, ok := r.channels[strings.ToLower(channelType)]
	return ok
}

// List returns every registered channel in registration order, flagging the
// ones that cannot actually deliver yet.
func (r *Registry) List() []ChannelInfo {
	infos := make([]ChannelInfo, 0, len(r.order))
	for _, key := range r.order {
		reg := r.channels[key]
		infos = append(infos, ChannelInfo{
			Type:        key,
			DisplayName: reg.displayName,
			Stub:        !reg.construct().IsAvailable(),
		})
	}
	return infos
}

// Dispatch resolves the channel, verifies availability and delegates to Send.
// Unknown types and unavailable channels both come back as failed results so
// the caller never needs error handling around delivery.
func (r *Registry) Dispatch(ctx context.Context, channelType, recipient string, content WishContent) SendResult {
	ch, err := r.Get(channelType)
	if err != nil {
		return failure(err.Error())
	}

	if !ch.IsAvailable() {
		return failure(fmt.Sprintf("%s channel is not configured", ch.Type()))
	}

	return ch.Send(ctx, recipient, content)
}
