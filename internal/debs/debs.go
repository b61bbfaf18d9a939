package deps

import (
	"context"
	"log/slog"
	"time"

	"github.com/connectmate/connectmate_api/config"
	"github.com/connectmate/connectmate_api/internal/catalog"
	"github.com/connectmate/connectmate_api/internal/chat"
	"github.com/connectmate/connectmate_api/internal/db"
	"github.com/connectmate/connectmate_api/internal/fixtures"
	"github.com/connectmate/connectmate_api/internal/http/kakao"
	"github.com/connectmate/connectmate_api/internal/mapview"
	"github.com/connectmate/connectmate_api/util/broker"
	"github.com/connectmate/connectmate_api/util/cache"
	"github.com/connectmate/connectmate_api/util/websockets"
)

const connectTimeout = 5 * time.Second

type Dependencies struct {
	DB        *db.DB
	Cache     *cache.Cache
	Broker    *broker.Broker
	WebSocket *websockets.WebSocketManager
	Kakao     *kakao.KakaoClient

	Catalog catalog.Source
	Chat    *chat.Service
	Session *chat.Session
	Map     *mapview.Controller

	unsubscribe []func()
}

// New wires every dependency. Postgres, Redis and NATS are optional: when one
// is not configured or not reachable the service runs without it.
func New(ctx context.Context, cfg *config.Config) *Dependencies {
	d := &Dependencies{
		Kakao: kakao.NewKakaoClient(cfg.KakaoMapAppKey, cfg.KakaoRESTAPIKey),
	}

	var source catalog.Source = catalog.NewFixtureSource()
	if cfg.Dsn != "" {
		if database, err := connectDB(ctx, cfg.Dsn); err != nil {
			slog.Warn("postgres unavailable, serving fixture catalog", "error", err)
		} else {
			d.DB = database
			source = catalog.NewPostgresSource(database.Pool())
		}
	}

	if cfg.RedisAddr != "" {
		cctx, cancel := context.WithTimeout(ctx, connectTimeout)
		client, err := cache.Connect(cctx, cfg.RedisAddr, cfg.RedisPassword)
		cancel()
		if err != nil {
			slog.Warn("redis unavailable, catalog cache disabled", "error", err)
		} else {
			d.Cache = cache.New(client, "connectmate:", cfg.CacheTTL)
			source = catalog.NewCachedSource(source, d.Cache)
		}
	}
	d.Catalog = source

	var chatOpts []chat.Option
	if cfg.NatsURL != "" {
		cctx, cancel := context.WithTimeout(ctx, connectTimeout)
		b, err := broker.Connect(cctx, cfg.NatsURL, cfg.NatsStream)
		cancel()
		if err != nil {
			slog.Warn("nats unavailable, chat messages stay local", "error", err)
		} else {
			d.Broker = b
			chatOpts = append(chatOpts, chat.WithPublisher(b))
		}
	}

	rooms := fixtures.ChatRooms()
	d.Chat = chat.NewService(rooms, chat.NewLog(rooms, fixtures.SeedMessages), chatOpts...)
	d.Session = chat.NewSession(d.Chat)
	d.WebSocket = websockets.NewWebSocketManager(d.Chat)

	mapActivities, err := catalog.MapSource(ctx, d.Catalog)
	if err != nil {
		slog.Warn("unable to load map activities, using fixtures", "error", err)
		mapActivities = fixtures.MapActivities()
	}
	d.Map = mapview.NewController(d.Kakao, mapActivities, mapview.WithTimeout(cfg.MapSDKTimeout))

	return d
}

func connectDB(ctx context.Context, dsn string) (*db.DB, error) {
	database, err := db.New(dsn)
	if err != nil {
		return nil, err
	}

	mctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := database.Migrate(mctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// Start runs the background workers: the websocket hub, the per-room
// message pumps and the map SDK load.
func (d *Dependencies) Start(ctx context.Context) {
	go d.WebSocket.Run()

	for _, room := range d.Chat.Rooms() {
		msgs, cancel, err := d.Chat.Subscribe(room.ID)
		if err != nil {
			slog.Error("failed to subscribe to chat room", "room_id", room.ID, "error", err)
			continue
		}
		d.unsubscribe = append(d.unsubscribe, cancel)
		go d.WebSocket.Pump(room.ID, msgs)
	}

	go func() {
		state := d.Map.Start(ctx)
		slog.Info("map initialised", "state", state)
	}()
}

// Close stops the workers and releases every connection.
func (d *Dependencies) Close() {
	for _, cancel := range d.unsubscribe {
		cancel()
	}
	if d.WebSocket != nil {
		d.WebSocket.Stop()
	}
	if d.Broker != nil {
		if err := d.Broker.Close(); err != nil {
			slog.Error("failed to drain nats connection", "error", err)
		}
	}
	if d.Cache != nil {
		if err := d.Cache.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}
	if d.DB != nil {
		d.DB.Close()
	}
}
