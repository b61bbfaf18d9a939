// Package chat keeps the in-memory chat rooms: message history, the local
// user's sends and the currently selected room.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/connectmate/connectmate_api/internal/model"
)

// TimeLayout is how message times are displayed.
const TimeLayout = "03:04 PM"

// Publisher forwards sent messages to other processes.
type Publisher interface {
	PublishMessage(ctx context.Context, msg model.Message) error
}

type Service struct {
	log       *Log
	rooms     []model.ChatRoom
	now       func() time.Time
	publisher Publisher
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func NewService(rooms []model.ChatRoom, log *Log, opts ...Option) *Service {
	s := &Service{
		log:   log,
		rooms: rooms,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Rooms() []model.ChatRoom {
	out := make([]model.ChatRoom, len(s.rooms))
	copy(out, s.rooms)
	return out
}

func (s *Service) Room(roomID int) (model.ChatRoom, error) {
	for _, r := range s.rooms {
		if r.ID == roomID {
			return r, nil
		}
	}
	return model.ChatRoom{}, fmt.Errorf("room %d: %w", roomID, model.ErrRoomNotFound)
}

func (s *Service) Messages(roomID int) ([]model.Message, error) {
	return s.log.Messages(roomID)
}

func (s *Service) Subscribe(roomID int) (<-chan model.Message, func(), error) {
	return s.log.Subscribe(roomID)
}

// Send appends text from the local user to the room. Blank text is ignored
// and yields a nil message with no error.
func (s *Service) Send(ctx context.Context, roomID int, text string) (*model.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	now := s.now()
	msg, err := s.log.Append(roomID, model.Message{
		Sender:    model.LocalSender,
		Text:      text,
		Time:      now.Format(TimeLayout),
		IsMine:    true,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishMessage(ctx, msg); err != nil {
			slog.WarnContext(ctx, "failed to publish chat message", "room_id", roomID, "message_id", msg.ID, "error", err)
		}
	}
	return &msg, nil
}
