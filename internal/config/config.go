package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// It follows the 12-factor app methodology by prioritizing environment variables.
// The loaded object is passed explicitly to every constructor; nothing reads the
// environment after startup.
type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Uploads UploadConfig
}

type ServerConfig struct {
	Port        string
	Environment string
	// MaxBodyBytes caps the request body size accepted by the server.
	MaxBodyBytes int64
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// Enabled toggles the redis-backed auth rate limiter.
	Enabled bool
}

type AuthConfig struct {
	JWTSecret      string
	TokenTTLHours  int
	AuthRateLimit  int
	AuthRateWindow int // seconds
}

type UploadConfig struct {
	// Dir is where multipart uploads land, served back under /assets.
	Dir string
	// PublicPath is the URL prefix the upload dir is exposed on.
	PublicPath string
}

// LoadConfig loads configuration from environment variables.
// A .env file in the working directory is honored when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "6001"),
			Environment:  getEnv("APP_ENV", "development"),
			MaxBodyBytes: getEnvAsInt64("MAX_BODY_BYTES", 30<<20),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB", "socialink"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", ""),
			TokenTTLHours:  getEnvAsInt("JWT_EXPIRY_HOURS", 24),
			AuthRateLimit:  getEnvAsInt("AUTH_RATE_LIMIT", 10),
			AuthRateWindow: getEnvAsInt("AUTH_RATE_WINDOW_SEC", 60),
		},
		Uploads: UploadConfig{
			Dir:        getEnv("UPLOAD_DIR", "public/assets"),
			PublicPath: getEnv("UPLOAD_PUBLIC_PATH", "/assets"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseInt(strValue, 10, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
