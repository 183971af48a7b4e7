package websocket

import (
	"context"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents a WebSocket connection subscribed to a set of room keys
// ("chat:{roomID}" or "dm:{reviewID}").
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
	Rooms  map[string]bool
}

// Manager tracks active connections and their room subscriptions and fans
// inserted/updated rows out to subscribers.
type Manager struct {
	clients map[*Client]bool
	rooms   map[string]map[*Client]bool
	feeds   map[string]*Feed

	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		feeds:      make(map[string]*Feed),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = true
				for room := range client.Rooms {
					if m.rooms[room] == nil {
						m.rooms[room] = make(map[*Client]bool)
					}
					m.rooms[room][client] = true
				}
				m.mutex.Unlock()
				log.Printf("Client registered: %s (rooms: %d)", client.UserID, len(client.Rooms))

				// Replay the room logs so a late or reconnecting client
				// converges without polling.
				for room := range client.Rooms {
					for _, entry := range m.RoomFeed(room).Snapshot() {
						select {
						case client.Send <- entry.Payload:
						default:
						}
					}
				}

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client]; ok {
					delete(m.clients, client)
					for room := range client.Rooms {
						delete(m.rooms[room], client)
					}
					close(client.Send)
				}
				m.mutex.Unlock()
				log.Printf("Client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// RoomFeed returns the replay feed for a room key, creating it on first use.
func (m *Manager) RoomFeed(room string) *Feed {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	feed, ok := m.feeds[room]
	if !ok {
		feed = NewFeed()
		m.feeds[room] = feed
	}
	return feed
}

// Publish records the row in the room feed and pushes it to every
// subscriber. Duplicate publishes of the same row id are dropped.
func (m *Manager) Publish(room string, entry Entry) {
	if !m.RoomFeed(room).Append(entry) {
		return
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for client := range m.rooms[room] {
		select {
		case client.Send <- entry.Payload:
		default:
			// Slow consumer; it will catch up from the feed on reconnect.
		}
	}
}

// PublishUpdate pushes a changed row (e.g. a DM read receipt) to room
// subscribers without touching the insert feed.
func (m *Manager) PublishUpdate(room string, payload []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for client := range m.rooms[room] {
		select {
		case client.Send <- payload:
		default:
		}
	}
}

// SendToUser pushes a message to every connection of one user.
func (m *Manager) SendToUser(userID string, message []byte) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for client := range m.clients {
		if client.UserID == userID {
			select {
			case client.Send <- message:
			default:
			}
		}
	}
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
}
