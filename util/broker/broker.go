// Package broker publishes chat messages to a NATS JetStream stream.
package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/connectmate/connectmate_api/internal/model"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	subjectPrefix = "connectmate.chat"
	retention     = 24 * time.Hour
)

type Broker struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	stream string
}

// Connect dials NATS and makes sure the chat stream exists.
func Connect(ctx context.Context, url, stream string) (*Broker, error) {
	nc, err := nats.Connect(url, nats.Name("connectmate_api"))
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	_, err = js.Stream(ctx, stream)
	switch {
	case errors.Is(err, jetstream.ErrStreamNotFound):
		slog.Info("chat stream not found, creating", "stream", stream)
		_, err = js.CreateStream(ctx, jetstream.StreamConfig{
			Name:        stream,
			Description: "ConnectMate chat messages",
			Subjects:    []string{subjectPrefix + ".>"},
			MaxAge:      retention,
			Storage:     jetstream.FileStorage,
		})
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("create stream %s: %w", stream, err)
		}
	case err != nil:
		nc.Close()
		return nil, fmt.Errorf("lookup stream %s: %w", stream, err)
	}

	return &Broker{nc: nc, js: js, stream: stream}, nil
}

// Subject is the subject messages of roomID are published on.
func Subject(roomID int) string {
	return fmt.Sprintf("%s.room.%d", subjectPrefix, roomID)
}

func (b *Broker) PublishMessage(ctx context.Context, msg model.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	subject := Subject(msg.RoomID)
	if _, err := b.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	slog.DebugContext(ctx, "chat message published", "subject", subject, "message_id", msg.ID)
	return nil
}

// Close drains the connection so pending publishes are flushed.
func (b *Broker) Close() error {
	if b.nc == nil {
		return nil
	}
	return b.nc.Drain()
}
