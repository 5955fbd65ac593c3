package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Groq     GroqConfig
	GoogleAI GoogleAIConfig
	JWT      JWTConfig
	Upload   UploadConfig
	Worker   WorkerConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meeting_summarizer"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration (task queue broker)
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds MinIO object storage configuration
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-uploads"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// GroqConfig holds Groq provider configuration. An empty or placeholder
// key marks the provider unavailable; it is skipped, never errored on.
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY" default:""`
	BaseURL string `envconfig:"GROQ_API_URL" default:""`
	Model   string `envconfig:"GROQ_MODEL" default:"llama3-8b-8192"`
}

// GoogleAIConfig holds Google AI Studio provider configuration
type GoogleAIConfig struct {
	APIKey  string `envconfig:"GOOGLE_API_KEY" default:""`
	BaseURL string `envconfig:"GOOGLE_API_URL" default:""`
	Model   string `envconfig:"GOOGLE_MODEL" default:"gemini-1.5-flash"`
}

// JWTConfig holds JWT configuration for the auth shim
type JWTConfig struct {
	Secret       string        `envconfig:"JWT_SECRET" default:"dev-secret-key"`
	AccessExpiry time.Duration `envconfig:"JWT_ACCESS_EXPIRY" default:"24h"`
}

// UploadConfig holds transcript upload limits
type UploadConfig struct {
	MaxFileSize int64 `envconfig:"MAX_FILE_SIZE" default:"10485760"` // 10 MiB
}

// WorkerConfig holds processing worker configuration
type WorkerConfig struct {
	Count        int    `envconfig:"WORKER_COUNT" default:"3"`
	QueueBackend string `envconfig:"QUEUE_BACKEND" default:"inprocess"` // inprocess or redis
	QueueDepth   int    `envconfig:"QUEUE_DEPTH" default:"64"`
}

// Load loads configuration from the environment, reading .env first when present
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Environment == "production" && c.JWT.Secret == "dev-secret-key" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	switch c.Worker.QueueBackend {
	case "inprocess", "redis":
	default:
		return fmt.Errorf("QUEUE_BACKEND must be inprocess or redis, got %q", c.Worker.QueueBackend)
	}
	if c.Worker.Count < 1 {
		return fmt.Errorf("WORKER_COUNT must be at least 1")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
