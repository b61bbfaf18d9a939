package chat

import (
	"context"
	"sync"

	"github.com/connectmate/connectmate_api/internal/model"
)

// DefaultRoomID is the room a new session starts on.
const DefaultRoomID = 1

// Session tracks which room the chat screen shows.
type Session struct {
	mu       sync.RWMutex
	svc      *Service
	selected int
}

func NewSession(svc *Service) *Session {
	return &Session{svc: svc, selected: DefaultRoomID}
}

func (s *Session) Selected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Select switches to roomID. Unknown rooms leave the selection unchanged.
func (s *Session) Select(roomID int) error {
	if _, err := s.svc.Room(roomID); err != nil {
		return err
	}
	s.mu.Lock()
	s.selected = roomID
	s.mu.Unlock()
	return nil
}

// View returns the header and history of the selected room.
func (s *Session) View() (model.ChatView, error) {
	roomID := s.Selected()

	room, err := s.svc.Room(roomID)
	if err != nil {
		return model.ChatView{}, err
	}
	msgs, err := s.svc.Messages(roomID)
	if err != nil {
		return model.ChatView{}, err
	}
	return model.ChatView{Room: room, Messages: msgs}, nil
}

// Send posts text to the selected room.
func (s *Session) Send(ctx context.Context, text string) (*model.Message, error) {
	return s.svc.Send(ctx, s.Selected(), text)
}
