package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env      Env
	Server   ServerConfig
	Minio    MinioConfig
	Database DatabaseConfig
	NATS     NATSConfig
	Share    ShareConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
	// PublicBaseURL is the externally reachable base used to build the
	// shareable download link.
	PublicBaseURL string `envconfig:"SERVER_PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

type MinioConfig struct {
	Endpoint                  string        `envconfig:"MINIO_ENDPOINT" required:"true"`
	BucketName                string        `envconfig:"MINIO_BUCKET_NAME" required:"true"`
	AccessKey                 string        `envconfig:"MINIO_ACCESS_KEY" required:"true"`
	SecretKey                 string        `envconfig:"MINIO_SECRET_KEY" required:"true"`
	DownloadSignedURLDuration time.Duration `envconfig:"MINIO_DOWNLOAD_SIGNED_URL_DURATION" default:"15m"`
	UseSSL                    bool          `envconfig:"MINIO_USE_SSL" default:"false"`
}

type ShareConfig struct {
	// SessionTTL is the lifetime of a session from creation.
	SessionTTL time.Duration `envconfig:"SHARE_SESSION_TTL" default:"1h"`
	// UploadMaxAttempts bounds per-file upload retries by attempt count.
	UploadMaxAttempts int `envconfig:"SHARE_UPLOAD_MAX_ATTEMPTS" default:"3"`
	// UploadRetryMaxElapsed bounds per-file upload retries by wall clock,
	// so a slow store cannot stall a batch indefinitely.
	UploadRetryMaxElapsed time.Duration `envconfig:"SHARE_UPLOAD_RETRY_MAX_ELAPSED" default:"30s"`
	// MaxRequestSize caps the multipart upload body.
	MaxRequestSize int64         `envconfig:"SHARE_MAX_REQUEST_SIZE" default:"104857600"` // 100MB
	CleanupEvery   time.Duration `envconfig:"SHARE_CLEANUP_EVERY" default:"5m"`
}

type NATSConfig struct {
	// URL is optional; when empty, lifecycle events are disabled.
	URL        string `envconfig:"NATS_URL" default:""`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"LINKDROP"`
	Subject    string `envconfig:"NATS_SUBJECT" default:"linkdrop.sessions"`
	ClientName string `envconfig:"NATS_CLIENT_NAME" default:"linkdrop-api"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
