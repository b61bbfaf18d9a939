package chat

import (
	"context"
	"testing"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStartsOnFirstRoom(t *testing.T) {
	s := NewSession(newTestService())

	view, err := s.View()
	require.NoError(t, err)
	assert.Equal(t, DefaultRoomID, view.Room.ID)
	assert.Equal(t, "Weekly Soccer Match", view.Room.Name)
	assert.Len(t, view.Messages, 4)
}

func TestSessionSelectRoomTwo(t *testing.T) {
	svc := newTestService()
	s := NewSession(svc)

	before, err := svc.Messages(1)
	require.NoError(t, err)

	require.NoError(t, s.Select(2))

	view, err := s.View()
	require.NoError(t, err)
	assert.Equal(t, 2, view.Room.ID)
	assert.Equal(t, "Study Group - Java", view.Room.Name)
	assert.Empty(t, view.Messages)

	after, err := svc.Messages(1)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSessionSelectUnknownKeepsSelection(t *testing.T) {
	s := NewSession(newTestService())
	require.NoError(t, s.Select(3))

	err := s.Select(7)
	assert.ErrorIs(t, err, model.ErrRoomNotFound)
	assert.Equal(t, 3, s.Selected())
}

func TestSessionSendGoesToSelectedRoom(t *testing.T) {
	svc := newTestService()
	s := NewSession(svc)
	require.NoError(t, s.Select(3))

	msg, err := s.Send(context.Background(), "The cafe looks nice!")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, 3, msg.RoomID)

	view, err := s.View()
	require.NoError(t, err)
	require.Len(t, view.Messages, 1)
	assert.True(t, view.Messages[0].IsMine)

	room1, err := svc.Messages(1)
	require.NoError(t, err)
	assert.Len(t, room1, 4)
}
