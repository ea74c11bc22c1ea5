package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App           AppConfig
	Server        ServerConfig
	Redis         RedisConfig
	ConfigService ConfigServiceConfig
	Cache         CacheConfig
	JWT           JWTConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type ConfigServiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CacheConfig struct {
	TTL time.Duration
}

type JWTConfig struct {
	SecretKey string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	originTimeout, err := time.ParseDuration(getEnv("CONFIG_SERVICE_TIMEOUT", "5s"))
	if err != nil {
		return nil, errors.New("invalid config service timeout")
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "300s"))
	if err != nil {
		return nil, errors.New("invalid cache ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Chest Analyzer API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		ConfigService: ConfigServiceConfig{
			BaseURL: getEnv("CONFIG_SERVICE_URL", "http://localhost:8090"),
			Timeout: originTimeout,
		},
		Cache: CacheConfig{
			TTL: cacheTTL,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
