package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// heartbeatInterval is how often the server pushes a ping frame to each
// WebSocket client so intermediaries keep the connection alive.
const heartbeatInterval = 15 * time.Second

// ConnectionManager manages WebSocket connections and channel
// subscriptions. Each process has one ConnectionManager instance. The
// first subscriber to a channel starts a pump goroutine feeding from the
// Bus; the last unsubscriber stops it.
type ConnectionManager struct {
	// Active connections: connection_id -> *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Channel subscriptions: channel -> set of connection_ids
	channels  map[string]map[string]bool
	pumps     map[string]*Subscription
	channelMu sync.RWMutex

	bus *Bus

	// Write timeout for WebSocket sends
	writeTimeout time.Duration
}

// Connection represents a single WebSocket client.
//
// subscriptions is accessed WITHOUT a lock. This is safe because all reads
// and writes (subscribe, unsubscribe, unregisterConnection) happen on the
// single goroutine that owns this connection (HandleConnection's read loop
// and its deferred cleanup). If a Connection is ever mutated from a
// different goroutine, subscriptions must be protected by a mutex.
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool // channels this connection is subscribed to
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a new ConnectionManager over the given Bus.
func NewConnectionManager(bus *Bus, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		channels:     make(map[string]map[string]bool),
		pumps:        make(map[string]*Subscription),
		bus:          bus,
		writeTimeout: writeTimeout,
	}
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	// Send connection established message
	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	go m.heartbeat(c)

	// Read loop: process client messages until the connection closes
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(c, &msg)
	}
}

// heartbeat pushes a ping frame on a fixed interval until the connection
// context is cancelled.
func (m *ConnectionManager) heartbeat(c *Connection) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			m.sendJSON(c, map[string]string{"type": EventTypePing})
		}
	}
}

// Broadcast sends an event payload to all connections subscribed to the
// given channel.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.channelMu.RLock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	// Copy IDs to avoid holding lock during sends
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot connection pointers under the lock, then release before
	// sending. Holding mu.RLock during writes (up to writeTimeout per
	// connection) would stall register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported; used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

// handleClientMessage dispatches a client message to the appropriate handler.
func (m *ConnectionManager) handleClientMessage(c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		m.subscribe(c, msg.Channel)
		m.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Auto catch-up: deliver buffered events so late subscribers see
		// progress from before they connected. Clients dedupe by event ID;
		// an event published between pump start and this drain may arrive
		// twice.
		lastID := int64(0)
		if msg.LastEventID != nil {
			lastID = *msg.LastEventID
		}
		m.handleCatchup(c, msg.Channel, lastID)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.handleCatchup(c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers a connection for a channel and starts the bus pump
// if it is the first subscriber. The pump is live-only: catch-up is
// delivered per connection from the ring.
func (m *ConnectionManager) subscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		m.startPumpLocked(channel)
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	c.subscriptions[channel] = true
}

// startPumpLocked subscribes to the Bus for the channel and starts the
// goroutine that broadcasts its events. channelMu must be held.
func (m *ConnectionManager) startPumpLocked(channel string) {
	var sub *Subscription
	if channel == GlobalSessionsChannel {
		sub = m.bus.SubscribeGlobal()
	} else {
		sub = m.bus.SubscribeLive(sessionFromChannel(channel))
	}
	m.pumps[channel] = sub

	go func() {
		for evt := range sub.C {
			data, err := json.Marshal(evt)
			if err != nil {
				slog.Warn("Failed to marshal event for broadcast",
					"channel", channel, "error", err)
				continue
			}
			m.Broadcast(channel, data)
		}
	}()
}

// unsubscribe removes a connection from a channel and stops the pump if it
// was the last subscriber. A resubscribe simply starts a fresh pump.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
			if pump, ok := m.pumps[channel]; ok {
				pump.Close()
				delete(m.pumps, channel)
			}
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

// handleCatchup sends ring-buffered events since lastEventID to the
// client. The global channel is live-only and has no catch-up.
func (m *ConnectionManager) handleCatchup(c *Connection, channel string, lastEventID int64) {
	sessionID := sessionFromChannel(channel)
	if sessionID == "" {
		return
	}

	events := m.bus.History(sessionID, lastEventID)

	// The ring may have evicted events the client missed. When the oldest
	// retained event doesn't directly follow lastEventID, tell the client
	// to do a full REST reload instead of trusting the partial catch-up.
	overflow := lastEventID > 0 && len(events) > 0 && events[0].ID > lastEventID+1

	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event",
				"connection_id", c.ID, "error", err)
			return
		}
	}

	if overflow {
		m.sendJSON(c, map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	// Remove from all channel subscriptions
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
