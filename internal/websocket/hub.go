package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"ai-journal-be/internal/model"
	"ai-journal-be/internal/pkg/logger"
	"ai-journal-be/pkg/events"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ClusterChannel carries pushes between instances so a user connected to
// another instance still receives them.
const ClusterChannel = "cluster_events"

const (
	MessageTypeNoteEnriched = "note_enriched"
	MessageTypeNotification = "notification"
)

type Hub struct {
	// UserID -> connected clients (one per device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// nil when redis is not configured; pushes then stay local
	bus clusterBus
	// tags outgoing cluster messages so this instance skips its own echo
	instanceID string

	logger logger.ILogger
}

type clusterMessage struct {
	Origin       string          `json:"origin"`
	TargetUserID string          `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

// clusterBus is the pub/sub channel shared by all instances.
type clusterBus interface {
	Publish(ctx context.Context, payload []byte) error
	// Subscribe delivers payloads until ctx is done.
	Subscribe(ctx context.Context) <-chan []byte
}

type redisBus struct {
	rdb *redis.Client
}

func (b redisBus) Publish(ctx context.Context, payload []byte) error {
	return b.rdb.Publish(ctx, ClusterChannel, payload).Err()
}

func (b redisBus) Subscribe(ctx context.Context) <-chan []byte {
	pubsub := b.rdb.Subscribe(ctx, ClusterChannel)
	out := make(chan []byte)

	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	if rdb == nil {
		return newHub(nil, log)
	}
	return newHub(redisBus{rdb: rdb}, log)
}

func newHub(bus clusterBus, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client, 64),
		clients:    make(map[uuid.UUID][]*Client),
		bus:        bus,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	if h.bus != nil {
		go h.subscribeToCluster(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID.String()})

		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[client.UserID]
	for i, c := range clients {
		if c == client {
			h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.UserID]) == 0 {
		delete(h.clients, client.UserID)
		h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID.String()})
	}
}

// ConnectedClients reports how many local connections userID has.
func (h *Hub) ConnectedClients(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func messageType(notification model.Notification) string {
	if notification.TypeCode == events.TypeNoteEnriched {
		return MessageTypeNoteEnriched
	}
	return MessageTypeNotification
}

// Send pushes a notification to every device of userID, here and, through
// the cluster bus, on the other instances.
func (h *Hub) Send(userID uuid.UUID, notification model.Notification) {
	data, err := json.Marshal(map[string]interface{}{
		"type": messageType(notification),
		"data": notification,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode notification", map[string]interface{}{"error": err.Error()})
		return
	}

	h.deliverLocal(userID, data)

	if h.bus != nil {
		payload, _ := json.Marshal(clusterMessage{Origin: h.instanceID, TargetUserID: userID.String(), Message: data})
		if err := h.bus.Publish(context.Background(), payload); err != nil {
			h.logger.Warn("Hub", "Failed to publish to cluster channel", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (h *Hub) deliverLocal(userID uuid.UUID, data []byte) {
	var stale []*Client

	h.mu.RLock()
	for _, client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stale {
		h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"user_id": userID.String()})
		h.unregister <- client
	}
}

func (h *Hub) subscribeToCluster(ctx context.Context) {
	for payload := range h.bus.Subscribe(ctx) {
		h.handleClusterMessage(payload)
	}
}

func (h *Hub) handleClusterMessage(payload []byte) {
	var msg clusterMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		h.logger.Warn("Hub", "Dropping malformed cluster message", map[string]interface{}{"error": err.Error()})
		return
	}
	// Send already delivered it locally
	if msg.Origin == h.instanceID {
		return
	}

	uid, err := uuid.Parse(msg.TargetUserID)
	if err != nil {
		return
	}
	h.deliverLocal(uid, msg.Message)
}
