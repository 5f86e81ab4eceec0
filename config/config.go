package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment. It is
// loaded once in main and handed to each component at construction.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	JWTSecret      string
	TokenTTL       time.Duration
	CloudinaryURL  string
	MaxAvatarBytes int64
	AllowOrigins   []string
	GinMode        string
	RateLimit      int
	RateWindow     time.Duration
}

// Load reads .env if present, then the process environment. JWT_SECRET and
// MONGODB_URI have no safe default and must be set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDB:        getEnv("MONGO_DB", "social"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		CloudinaryURL:  os.Getenv("CLOUDINARY_URL"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		AllowOrigins:   strings.Split(getEnv("ALLOW_ORIGINS", "http://localhost:5173"), ","),
		MaxAvatarBytes: getEnvInt64("MAX_AVATAR_BYTES", 500000),
		RateLimit:      int(getEnvInt64("RATE_LIMIT", 60)),
		RateWindow:     time.Minute,
	}

	ttlHours := getEnvInt64("TOKEN_TTL_HOURS", 24)
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET must be set")
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("config: MONGODB_URI must be set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
