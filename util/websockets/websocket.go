package websockets

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewWebSocketManager initializes a WebSocketManager. sender may be nil, in
// which case clients can only listen.
func NewWebSocketManager(sender MessageSender) *WebSocketManager {
	return &WebSocketManager{
		rooms:      make(map[int]map[*websocket.Conn]*Client),
		broadcast:  make(chan RoomMessage),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
		quit:       make(chan struct{}),
		sender:     sender,
	}
}

// Run services the manager channels until Stop is called
func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			if manager.rooms[client.RoomID] == nil {
				manager.rooms[client.RoomID] = make(map[*websocket.Conn]*Client)
			}
			manager.rooms[client.RoomID][client.Conn] = client
			manager.mu.Unlock()

		case conn := <-manager.unregister:
			manager.mu.Lock()
			manager.remove(conn)
			manager.mu.Unlock()

		case message := <-manager.broadcast:
			manager.mu.Lock()
			for conn := range manager.rooms[message.RoomID] {
				if err := conn.WriteMessage(websocket.TextMessage, message.Payload); err != nil {
					manager.remove(conn)
				}
			}
			manager.mu.Unlock()

		case <-manager.quit:
			manager.mu.Lock()
			for _, clients := range manager.rooms {
				for conn := range clients {
					manager.remove(conn)
				}
			}
			manager.mu.Unlock()
			return
		}
	}
}

// remove closes conn and forgets it. Callers hold mu.
func (manager *WebSocketManager) remove(conn *websocket.Conn) {
	for roomID, clients := range manager.rooms {
		if client, ok := clients[conn]; ok {
			delete(clients, conn)
			_ = conn.Close()
			slog.Debug("websocket client disconnected", "client_id", client.ID, "room_id", roomID)
			return
		}
	}
}

// Stop ends Run and closes every connection
func (manager *WebSocketManager) Stop() {
	manager.stopOnce.Do(func() { close(manager.quit) })
}

// Count returns the number of clients watching roomID
func (manager *WebSocketManager) Count(roomID int) int {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return len(manager.rooms[roomID])
}

// Pump forwards room messages to the room's clients until msgs is closed.
func (manager *WebSocketManager) Pump(roomID int, msgs <-chan model.Message) {
	for msg := range msgs {
		payload, err := json.Marshal(Envelope{Type: MsgTypeNewMessage, Message: &msg})
		if err != nil {
			slog.Error("failed to encode chat message", "room_id", roomID, "error", err)
			continue
		}
		select {
		case manager.broadcast <- RoomMessage{RoomID: roomID, Payload: payload}:
		case <-manager.quit:
			return
		}
	}
}

// HandleConnections upgrades the request and attaches the connection to roomID
func (manager *WebSocketManager) HandleConnections(w http.ResponseWriter, r *http.Request, roomID int) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	// the server read timeout still applies to the hijacked connection
	_ = conn.SetReadDeadline(time.Time{})

	client := &Client{ID: uuid.New(), RoomID: roomID, Conn: conn}
	select {
	case manager.register <- client:
	case <-manager.quit:
		_ = conn.Close()
		return
	}

	defer func() {
		select {
		case manager.unregister <- conn:
		case <-manager.quit:
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var in Envelope
		if err := json.Unmarshal(raw, &in); err != nil {
			slog.Debug("invalid websocket frame", "client_id", client.ID, "error", err)
			continue
		}

		switch in.Type {
		case MsgTypeSendMessage:
			if manager.sender == nil {
				continue
			}
			if _, err := manager.sender.Send(context.WithoutCancel(r.Context()), roomID, in.Content); err != nil {
				manager.reply(conn, Envelope{Type: MsgTypeError, Error: err.Error()})
			}
		}
	}
}

func (manager *WebSocketManager) reply(conn *websocket.Conn, env Envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		return
	}
	manager.mu.Lock()
	defer manager.mu.Unlock()
	_ = conn.WriteMessage(websocket.TextMessage, payload)
}
