package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              int           `env:"PORT" envDefault:"8080"`
	Dsn               string        `env:"DSN"`
	RedisAddr         string        `env:"REDIS_ADDR"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	CacheTTL          time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	NatsURL           string        `env:"NATS_URL"`
	NatsStream        string        `env:"NATS_STREAM" envDefault:"CONNECTMATE_CHAT"`
	KakaoMapAppKey    string        `env:"KAKAO_MAP_APP_KEY"`
	KakaoRESTAPIKey   string        `env:"KAKAO_REST_API_KEY"`
	NaverClientID     string        `env:"NAVER_CLIENT_ID"`
	NaverClientSecret string        `env:"NAVER_CLIENT_SECRET"`
	MapSDKTimeout     time.Duration `env:"MAP_SDK_TIMEOUT" envDefault:"5s"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat         string        `env:"LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	cfg, parseErr := Parse()
	if parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return cfg
}

// Parse reads the process environment without touching .env.
func Parse() (*Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	return &cfg, err
}
