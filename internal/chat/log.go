package chat

import (
	"fmt"
	"sync"

	"github.com/connectmate/connectmate_api/internal/model"
)

const subscriberBuffer = 32

// Log is the append-only, per-room message history. Appends to a room are
// serialised and subscribers observe them in append order.
type Log struct {
	mu      sync.Mutex
	rooms   map[int]*roomLog
	nextSub int
}

type roomLog struct {
	messages []model.Message
	lastID   int
	subs     map[int]chan model.Message
}

// NewLog creates a log for the given rooms, seeded with seed(roomID).
func NewLog(rooms []model.ChatRoom, seed func(roomID int) []model.Message) *Log {
	l := &Log{rooms: make(map[int]*roomLog, len(rooms))}
	for _, r := range rooms {
		rl := &roomLog{subs: make(map[int]chan model.Message)}
		if seed != nil {
			for _, m := range seed(r.ID) {
				m.RoomID = r.ID
				rl.messages = append(rl.messages, m)
				if m.ID > rl.lastID {
					rl.lastID = m.ID
				}
			}
		}
		l.rooms[r.ID] = rl
	}
	return l
}

// Append assigns the next sequence id to msg and stores it.
func (l *Log) Append(roomID int, msg model.Message) (model.Message, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rl, ok := l.rooms[roomID]
	if !ok {
		return model.Message{}, fmt.Errorf("room %d: %w", roomID, model.ErrRoomNotFound)
	}

	rl.lastID++
	msg.ID = rl.lastID
	msg.RoomID = roomID
	rl.messages = append(rl.messages, msg)

	for _, ch := range rl.subs {
		select {
		case ch <- msg:
		default:
		}
	}
	return msg, nil
}

// Messages returns a copy of the room's history in append order.
func (l *Log) Messages(roomID int) ([]model.Message, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rl, ok := l.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("room %d: %w", roomID, model.ErrRoomNotFound)
	}
	out := make([]model.Message, len(rl.messages))
	copy(out, rl.messages)
	return out, nil
}

// Subscribe delivers messages appended to roomID after the call. A slow
// reader misses messages instead of blocking writers. The cancel func closes
// the channel and is safe to call more than once.
func (l *Log) Subscribe(roomID int) (<-chan model.Message, func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rl, ok := l.rooms[roomID]
	if !ok {
		return nil, nil, fmt.Errorf("room %d: %w", roomID, model.ErrRoomNotFound)
	}

	id := l.nextSub
	l.nextSub++
	ch := make(chan model.Message, subscriberBuffer)
	rl.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			l.mu.Lock()
			delete(rl.subs, id)
			close(ch)
			l.mu.Unlock()
		})
	}
	return ch, cancel, nil
}
