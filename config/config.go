package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Dosada05/tournament-fixtures/storage"
	"github.com/Dosada05/tournament-fixtures/utils"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL  string
	JWTSecretKey string
	ServerPort   int

	// Location is the zone fixture dates and times are entered in. Edit deadlines
	// are computed in it.
	Location       *time.Location
	AllowedOrigins []string
	RateLimitRPM   int

	// R2 is optional; schedule export is disabled when it is incomplete.
	R2 storage.R2Config
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	dbURL := getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	port, err := intWithDefault(getenv("SERVER_PORT"), 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	tz := getenv("TOURNAMENT_TIMEZONE")
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TOURNAMENT_TIMEZONE %q: %w", tz, err)
	}

	origins := utils.SplitList(getenv("CORS_ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	rpm, err := intWithDefault(getenv("RATE_LIMIT_RPM"), 120)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPM environment variable: %w", err)
	}
	if rpm < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPM must not be negative, got %d", rpm)
	}

	cfg := &Config{
		DatabaseURL:    dbURL,
		JWTSecretKey:   jwtKey,
		ServerPort:     port,
		Location:       loc,
		AllowedOrigins: origins,
		RateLimitRPM:   rpm,
		R2: storage.R2Config{
			AccountID:       getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: getenv("R2_SECRET_ACCESS_KEY"),
			BucketName:      getenv("R2_BUCKET_NAME"),
			PublicBaseURL:   getenv("R2_PUBLIC_BASE_URL"),
		},
	}

	return cfg, nil
}

func intWithDefault(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
