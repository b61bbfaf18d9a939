package broker

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "connectmate.chat.room.2", Subject(2))
}

func TestPublishMessage(t *testing.T) {
	url := os.Getenv("TEST_NATS_URL")
	if url == "" {
		t.Skip("TEST_NATS_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	b, err := Connect(ctx, url, "CONNECTMATE_TEST")
	if err != nil {
		t.Skipf("nats not available: %v", err)
	}
	defer b.Close()

	msg := model.Message{ID: 5, RoomID: 1, Sender: model.LocalSender, Text: "Hello", Time: "03:04 PM", IsMine: true}
	require.NoError(t, b.PublishMessage(ctx, msg))

	stream, err := b.js.Stream(ctx, "CONNECTMATE_TEST")
	require.NoError(t, err)
	raw, err := stream.GetLastMsgForSubject(ctx, Subject(1))
	require.NoError(t, err)

	var got model.Message
	require.NoError(t, json.Unmarshal(raw.Data, &got))
	assert.Equal(t, msg.Text, got.Text)
	assert.Equal(t, msg.ID, got.ID)

}
