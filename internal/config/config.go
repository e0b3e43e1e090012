package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"

	FanoutBackendLocal      = "local"
	FanoutBackendCentrifugo = "centrifugo"
)

type Config struct {
	Service    Service
	Auth       Auth
	Postgres   Postgres
	Redis      Redis
	Logger     Logger
	Metrics    Metrics
	Platform   Platform
	Kafka      Kafka
	Centrifuge Centrifuge
	Fanout     Fanout
	Poll       Poll
}

type Service struct {
	Port         string `env:"CHAT_SERVICE_PORT" env-default:"8080"`
	Name         string `env:"CHAT_SERVICE_NAME" env-default:"chat-delivery-service"`
	StoreBackend string `env:"CHAT_STORE_BACKEND" env-default:"postgres"`
}

type Auth struct {
	JWTSecret string `env:"AUTH_JWT_SECRET"`
}

type Postgres struct {
	User     string `env:"CHAT_POSTGRES_USER"`
	Password string `env:"CHAT_POSTGRES_PASSWORD"`
	Database string `env:"CHAT_POSTGRES_DB"`
	Host     string `env:"CHAT_POSTGRES_HOST"`
	Port     string `env:"CHAT_POSTGRES_PORT"`
}

type Redis struct {
	Addr        string        `env:"CHAT_REDIS_ADDR" env-default:"localhost:6379"`
	OnlineTTL   time.Duration `env:"CHAT_PRESENCE_ONLINE_TTL" env-default:"60s"`
	TypingTTL   time.Duration `env:"CHAT_PRESENCE_TYPING_TTL" env-default:"5s"`
	DialTimeout time.Duration `env:"CHAT_REDIS_DIAL_TIMEOUT" env-default:"3s"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Kafka struct {
	Host              string `env:"KAFKA_HOST"`
	Port              string `env:"KAFKA_PORT"`
	NotificationTopic string `env:"NOTIFICATION_TOPIC" env-default:"notifications"`
}

type Centrifuge struct {
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Fanout struct {
	Backend        string        `env:"FANOUT_BACKEND" env-default:"local"`
	CommandBuffer  int           `env:"FANOUT_COMMAND_BUFFER" env-default:"1024"`
	SendBuffer     int           `env:"FANOUT_SEND_BUFFER" env-default:"256"`
	WriteTimeout   time.Duration `env:"WS_WRITE_TIMEOUT" env-default:"10s"`
	PongTimeout    time.Duration `env:"WS_PONG_TIMEOUT" env-default:"60s"`
	MaxFrameLength int64         `env:"WS_MAX_FRAME_LENGTH" env-default:"4096"`
}

type Poll struct {
	Overlap    time.Duration `env:"POLL_OVERLAP" env-default:"2s"`
	RatePerSec float64       `env:"POLL_RATE_PER_SEC" env-default:"2"`
	RateBurst  int           `env:"POLL_RATE_BURST" env-default:"8"`
}

func MustLoad() *Config {
	cfg := &Config{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}
	return cfg
}
