package eventbus

import (
	"context"

	"github.com/ratedesk/ratedesk/pkg/domain"
)

// EventBus defines the contract for publishing and subscribing to advisory
// events emitted by the rate provider.
type EventBus interface {
	Publish(ctx context.Context, event domain.Event) error
	Subscribe(eventType string, handler func(context.Context, domain.Event))
}
