package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisRecordDB  int    `mapstructure:"REDIS_RECORD_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Session lifetime in hours.
	SessionTTLHours int `mapstructure:"SESSION_TTL_HOURS"`

	// Fixed admin credential. The admin identity is synthetic and is
	// never written into the users collection.
	AdminAadhar   string `mapstructure:"ADMIN_AADHAR"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	AdminPhone    string `mapstructure:"ADMIN_PHONE"`

	// Collection hotline reachable via the call/SMS booking flows.
	HotlineNumber string `mapstructure:"HOTLINE_NUMBER"`

	// Age in hours after which a pending booking or exchange is flagged
	// by the stale sweep.
	StalePendingHours int `mapstructure:"STALE_PENDING_HOURS"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_RECORD_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("SESSION_TTL_HOURS", 72)
	viper.SetDefault("ADMIN_AADHAR", "123456789012")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("ADMIN_PHONE", "9876543210")
	viper.SetDefault("HOTLINE_NUMBER", "+919876543210")
	viper.SetDefault("STALE_PENDING_HOURS", 48)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
