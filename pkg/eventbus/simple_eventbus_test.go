package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratedesk/ratedesk/pkg/domain"
)

func TestSimpleEventBus_PublishRoutesByType(t *testing.T) {
	bus := NewSimpleEventBus()

	var offline []domain.Event
	var cleared []domain.Event
	bus.Subscribe(domain.EventTypeOfflineModeEngaged.String(), func(_ context.Context, e domain.Event) {
		offline = append(offline, e)
	})
	bus.Subscribe(domain.EventTypeCacheCleared.String(), func(_ context.Context, e domain.Event) {
		cleared = append(cleared, e)
	})

	event := domain.OfflineModeEngaged{
		EventID:     uuid.New(),
		Reason:      "connection refused",
		SnapshotAge: 10 * time.Minute,
		Timestamp:   time.Now(),
	}
	require.NoError(t, bus.Publish(context.Background(), event))

	require.Len(t, offline, 1)
	assert.Empty(t, cleared)
	got, ok := offline[0].(domain.OfflineModeEngaged)
	require.True(t, ok)
	assert.Equal(t, "connection refused", got.Reason)
}

func TestSimpleEventBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewSimpleEventBus()
	err := bus.Publish(context.Background(), domain.CacheCleared{EventID: uuid.New(), Timestamp: time.Now()})
	assert.NoError(t, err)
}

func TestSimpleEventBus_MultipleHandlers(t *testing.T) {
	bus := NewSimpleEventBus()
	calls := 0
	handler := func(_ context.Context, _ domain.Event) { calls++ }
	bus.Subscribe(domain.EventTypeCacheCleared.String(), handler)
	bus.Subscribe(domain.EventTypeCacheCleared.String(), handler)

	require.NoError(t, bus.Publish(context.Background(), domain.CacheCleared{EventID: uuid.New(), Timestamp: time.Now()}))
	assert.Equal(t, 2, calls)
}
