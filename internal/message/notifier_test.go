package message_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pockettcg/internal/message"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_DeliversPublishedStatusToSubscriber(t *testing.T) {
	n := message.NewNotifier(1, 4)
	defer n.Close()

	received := make(chan message.Status, 1)
	n.Subscribe(func(ctx context.Context, gameID string, status message.Status) error {
		received <- status
		return nil
	})

	err := n.Publish(context.Background(), "game-1", message.Status{Kind: message.StatusActionApplied})
	require.NoError(t, err)

	select {
	case got := <-received:
		assert.Equal(t, message.StatusActionApplied, got.Kind)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

func TestNotifier_ListenerErrorDoesNotStopOtherListeners(t *testing.T) {
	n := message.NewNotifier(1, 4)
	defer n.Close()

	received := make(chan struct{}, 1)
	n.Subscribe(func(ctx context.Context, gameID string, status message.Status) error {
		return errors.New("boom")
	})
	n.Subscribe(func(ctx context.Context, gameID string, status message.Status) error {
		received <- struct{}{}
		return nil
	})

	require.NoError(t, n.Publish(context.Background(), "game-1", message.Status{Kind: message.StatusRejected}))

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for second listener")
	}
}

func TestNotifier_PublishAfterCloseReturnsErrNotifierClosed(t *testing.T) {
	n := message.NewNotifier(1, 4)
	require.NoError(t, n.Close())

	err := n.Publish(context.Background(), "game-1", message.Status{Kind: message.StatusActionApplied})
	assert.ErrorIs(t, err, message.ErrNotifierClosed)
}
