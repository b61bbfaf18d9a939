package websockets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (f *fakeSender) Send(_ context.Context, roomID int, text string) (*model.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.texts = append(f.texts, text)
	return &model.Message{RoomID: roomID, Text: text}, nil
}

func (f *fakeSender) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.texts...)
}

func startManager(t *testing.T, sender MessageSender) (*WebSocketManager, string) {
	t.Helper()

	manager := NewWebSocketManager(sender)
	go manager.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		manager.HandleConnections(w, r, 1)
	}))
	t.Cleanup(func() {
		manager.Stop()
		srv.Close()
	})
	return manager, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, manager *WebSocketManager, url string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return manager.Count(1) > 0 }, 2*time.Second, 10*time.Millisecond)
	return conn
}

func TestPumpDeliversToRoomClients(t *testing.T) {
	manager, url := startManager(t, nil)
	conn := dial(t, manager, url)

	msgs := make(chan model.Message, 1)
	go manager.Pump(1, msgs)
	msgs <- model.Message{ID: 5, RoomID: 1, Sender: model.LocalSender, Text: "Hello", IsMine: true}
	close(msgs)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var env Envelope
	require.NoError(t, conn.ReadJSON(&env))
	assert.Equal(t, MsgTypeNewMessage, env.Type)
	require.NotNil(t, env.Message)
	assert.Equal(t, "Hello", env.Message.Text)
	assert.Equal(t, 5, env.Message.ID)
}

func TestPumpIgnoresOtherRooms(t *testing.T) {
	manager, url := startManager(t, nil)
	conn := dial(t, manager, url)

	msgs := make(chan model.Message, 1)
	go manager.Pump(2, msgs)
	msgs <- model.Message{ID: 1, RoomID: 2, Text: "not for you"}
	close(msgs)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var env Envelope
	assert.Error(t, conn.ReadJSON(&env))
}

func TestClientSendMessage(t *testing.T) {
	sender := &fakeSender{}
	manager, url := startManager(t, sender)
	conn := dial(t, manager, url)

	require.NoError(t, conn.WriteJSON(Envelope{Type: MsgTypeSendMessage, Content: "from socket"}))

	assert.Eventually(t, func() bool {
		return len(sender.sent()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"from socket"}, sender.sent())
}

func TestClientSendErrorIsReported(t *testing.T) {
	sender := &fakeSender{err: errors.New("chat room not found")}
	manager, url := startManager(t, sender)
	conn := dial(t, manager, url)

	require.NoError(t, conn.WriteJSON(Envelope{Type: MsgTypeSendMessage, Content: "hi"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var env Envelope
	require.NoError(t, conn.ReadJSON(&env))
	assert.Equal(t, MsgTypeError, env.Type)
	assert.Equal(t, "chat room not found", env.Error)
}

func TestDisconnectUnregisters(t *testing.T) {
	manager, url := startManager(t, nil)
	conn := dial(t, manager, url)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return manager.Count(1) == 0 }, 2*time.Second, 10*time.Millisecond)
}
