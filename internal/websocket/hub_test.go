package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"ai-journal-be/internal/model"
	"ai-journal-be/internal/pkg/logger"
	"ai-journal-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	return startHubOn(t, nil)
}

func startHubOn(t *testing.T, bus clusterBus) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := newHub(bus, logger.NewNopLogger())
	go hub.Run(ctx)
	return hub
}

// loopbackBus fans every payload out to all subscribers, the publisher's
// own subscription included, like a redis channel does.
type loopbackBus struct {
	mu   sync.Mutex
	subs []chan []byte
}

func (b *loopbackBus) Publish(_ context.Context, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs {
		sub <- payload
	}
	return nil
}

func (b *loopbackBus) Subscribe(_ context.Context) <-chan []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan []byte, 16)
	b.subs = append(b.subs, ch)
	return ch
}

func (b *loopbackBus) subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func receiveTitle(t *testing.T, c *Client) string {
	t.Helper()
	select {
	case raw := <-c.Send:
		var msg struct {
			Data model.Notification `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		return msg.Data.Title
	case <-time.After(time.Second):
		t.Fatal("expected a push")
		return ""
	}
}

func connect(t *testing.T, hub *Hub, userID uuid.UUID, buffer int) *Client {
	t.Helper()
	client := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, buffer)}
	before := hub.ConnectedClients(userID)
	hub.register <- client
	require.Eventually(t, func() bool { return hub.ConnectedClients(userID) == before+1 }, time.Second, 5*time.Millisecond)
	return client
}

func TestHubSendsNoteEnrichedToOwnerOnly(t *testing.T) {
	hub := startHub(t)
	owner := uuid.New()
	other := uuid.New()

	phone := connect(t, hub, owner, 4)
	laptop := connect(t, hub, owner, 4)
	stranger := connect(t, hub, other, 4)

	noteID := uuid.New()
	hub.Send(owner, model.Notification{UserID: owner, TypeCode: events.TypeNoteEnriched, EntityID: &noteID, Title: "ready"})

	for _, c := range []*Client{phone, laptop} {
		select {
		case raw := <-c.Send:
			var msg struct {
				Type string             `json:"type"`
				Data model.Notification `json:"data"`
			}
			require.NoError(t, json.Unmarshal(raw, &msg))
			assert.Equal(t, MessageTypeNoteEnriched, msg.Type)
			assert.Equal(t, noteID, *msg.Data.EntityID)
		case <-time.After(time.Second):
			t.Fatal("expected a push")
		}
	}

	assert.Empty(t, stranger.Send)
}

func TestHubDropsClientWithFullBuffer(t *testing.T) {
	hub := startHub(t)
	owner := uuid.New()

	slow := connect(t, hub, owner, 1)
	hub.Send(owner, model.Notification{TypeCode: "OTHER"})
	hub.Send(owner, model.Notification{TypeCode: "OTHER"})

	require.Eventually(t, func() bool { return hub.ConnectedClients(owner) == 0 }, time.Second, 5*time.Millisecond)

	var msg struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(<-slow.Send, &msg))
	assert.Equal(t, MessageTypeNotification, msg.Type)

	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHubClusterDeliversOncePerDevice(t *testing.T) {
	bus := &loopbackBus{}
	local := startHubOn(t, bus)
	remote := startHubOn(t, bus)
	require.Eventually(t, func() bool { return bus.subscribers() == 2 }, time.Second, 5*time.Millisecond)

	owner := uuid.New()
	phone := connect(t, local, owner, 8)
	laptop := connect(t, remote, owner, 8)

	local.Send(owner, model.Notification{UserID: owner, TypeCode: events.TypeNoteEnriched, Title: "first"})
	assert.Equal(t, "first", receiveTitle(t, phone))
	assert.Equal(t, "first", receiveTitle(t, laptop))

	// the bus is FIFO per subscriber, so once "second" arrives the local
	// hub has already handled its own echo of "first"
	remote.Send(owner, model.Notification{UserID: owner, TypeCode: events.TypeNoteEnriched, Title: "second"})
	assert.Equal(t, "second", receiveTitle(t, phone))
	assert.Equal(t, "second", receiveTitle(t, laptop))

	assert.Empty(t, phone.Send)
	assert.Empty(t, laptop.Send)
}

func TestHubIgnoresMalformedClusterMessage(t *testing.T) {
	hub := startHub(t)
	owner := uuid.New()
	c := connect(t, hub, owner, 2)

	hub.handleClusterMessage([]byte("not json"))
	hub.handleClusterMessage([]byte(`{"origin":"other","target_user_id":"bad","message":{}}`))

	assert.Empty(t, c.Send)
}
