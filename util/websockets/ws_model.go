package websockets

import (
	"context"
	"sync"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message types
const (
	MsgTypeSendMessage = "send_message"
	MsgTypeNewMessage  = "new_message"
	MsgTypeError       = "error"
)

// MessageSender posts text from a websocket client into a room.
type MessageSender interface {
	Send(ctx context.Context, roomID int, text string) (*model.Message, error)
}

// Client represents a websocket connection watching one chat room
type Client struct {
	ID     uuid.UUID
	RoomID int
	Conn   *websocket.Conn
}

type WebSocketManager struct {
	rooms      map[int]map[*websocket.Conn]*Client
	broadcast  chan RoomMessage
	register   chan *Client
	unregister chan *websocket.Conn
	quit       chan struct{}
	stopOnce   sync.Once
	sender     MessageSender
	mu         sync.Mutex
}

// RoomMessage is a payload addressed to every client of a room
type RoomMessage struct {
	RoomID  int
	Payload []byte
}

// Envelope is the JSON frame exchanged with clients
type Envelope struct {
	Type    string         `json:"type"`
	Content string         `json:"content,omitempty"`
	Message *model.Message `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
}
