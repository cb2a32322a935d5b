package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Upstream  UpstreamConfig
	Rates     RatesConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// JWTConfig holds the shared secret used to validate tokens minted by the
// identity provider. Validation is skipped when Enabled is false.
type JWTConfig struct {
	Enabled   bool
	SecretKey string
}

type UpstreamConfig struct {
	ScoringURL    string
	SimulationURL string
	Timeout       time.Duration
}

type RatesConfig struct {
	TableFile string // empty means the embedded default table
}

type SessionConfig struct {
	TTL time.Duration
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	cacheTTL, _ := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "60"))
	upstreamTimeout, _ := strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECONDS", "15"))
	sessionTTL, _ := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "30"))
	rateLimitMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "60"))
	rateLimitWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Enabled:  getEnv("DB_ENABLED", "false") == "true",
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "investr"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:  getEnv("REDIS_ENABLED", "false") == "true",
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			CacheTTL: time.Duration(cacheTTL) * time.Minute,
		},
		JWT: JWTConfig{
			Enabled:   getEnv("JWT_ENABLED", "false") == "true",
			SecretKey: getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
		},
		Upstream: UpstreamConfig{
			ScoringURL:    getEnv("SCORING_SERVICE_URL", "http://localhost:5000/api/recommend"),
			SimulationURL: getEnv("SIMULATION_SERVICE_URL", "http://localhost:5000/api/simulate"),
			Timeout:       time.Duration(upstreamTimeout) * time.Second,
		},
		Rates: RatesConfig{
			TableFile: getEnv("RATE_TABLE_FILE", ""),
		},
		Session: SessionConfig{
			TTL: time.Duration(sessionTTL) * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Max:    rateLimitMax,
			Window: time.Duration(rateLimitWindow) * time.Second,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
