package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort   string `mapstructure:"APP_PORT"`
	Env       string `mapstructure:"ENV"`
	JWTSecret string `mapstructure:"JWT_SECRET"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`

	// MongoDB configuration.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBName      string `mapstructure:"DB_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Google Maps API key. Required.
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`

	// Path to the serialized availability model. Required.
	ModelPath string `mapstructure:"MODEL_PATH"`

	// Timeout applied to outbound calls to the Google APIs.
	UpstreamTimeoutSec int `mapstructure:"UPSTREAM_TIMEOUT_SEC"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "smart_parking")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("MODEL_PATH", "")
	viper.SetDefault("UPSTREAM_TIMEOUT_SEC", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Both the Maps key and the model artifact are hard requirements:
	// the server must not come up without either.
	if AppConfig.GoogleAPIKey == "" {
		log.Fatal("Missing Google Maps API key (GOOGLE_API_KEY)")
	}
	if AppConfig.ModelPath == "" {
		log.Fatal("Missing availability model path (MODEL_PATH)")
	}
	if _, err := os.Stat(AppConfig.ModelPath); err != nil {
		log.Fatalf("Availability model not readable at %s: %v", AppConfig.ModelPath, err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UpstreamTimeout returns the configured timeout for Google API calls.
func UpstreamTimeout() time.Duration {
	sec := AppConfig.UpstreamTimeoutSec
	if sec <= 0 {
		sec = 10
	}
	return time.Duration(sec) * time.Second
}
