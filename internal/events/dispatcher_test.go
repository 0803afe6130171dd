package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishInvokesSubscribers(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher()

	var received []Event
	dispatcher.Subscribe(EventFavoriteAdded, func(_ context.Context, event Event) error {
		received = append(received, event)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{ID: "evt-1", Type: EventFavoriteAdded, UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "evt-1", received[0].ID)

	// events of other types are not delivered
	err = dispatcher.Publish(context.Background(), Event{ID: "evt-2", Type: EventUserDeleted})
	require.NoError(t, err)
	assert.Len(t, received, 1)
}

func TestDispatcher_HandlerErrorDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher()

	dispatcher.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		return errors.New("handler failed")
	})

	var called bool
	dispatcher.Subscribe(EventUserRegistered, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventUserRegistered})
	require.NoError(t, err)
	assert.True(t, called)
}
