package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	Timezone          string `mapstructure:"TIMEZONE"`

	// Auth.
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	// Redis configuration.
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int           `mapstructure:"REDIS_SESSION_DB"`
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`

	// Pricing. Amounts are in pence, the VAT rate in basis points.
	VATRateBps       int64 `mapstructure:"VAT_RATE_BPS"`
	PermitFeePence   int64 `mapstructure:"PERMIT_FEE_PENCE"`
	TonneBagFeePence int64 `mapstructure:"TONNE_BAG_FEE_PENCE"`

	// Kafka. An empty broker list disables publishing.
	KafkaAddr         []string `mapstructure:"KAFKA_ADDR"`
	KafkaBookingTopic string   `mapstructure:"KAFKA_BOOKING_TOPIC"`
	KafkaContactTopic string   `mapstructure:"KAFKA_CONTACT_TOPIC"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
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

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers the default value of every key. Unmarshal only sees keys viper
// knows about, so env-only overrides need a default registered here.
func SetDefaults() {
	viper.SetDefault("APP_PORT", "3001")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("TIMEZONE", "Europe/London")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "ecoskip-lanka")
	viper.SetDefault("JWT_SECRET", "your-secret-key")
	viper.SetDefault("JWT_TTL", "24h")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("VAT_RATE_BPS", 2000)
	viper.SetDefault("PERMIT_FEE_PENCE", 8400)
	viper.SetDefault("TONNE_BAG_FEE_PENCE", 3000)
	viper.SetDefault("KAFKA_ADDR", []string{})
	viper.SetDefault("KAFKA_BOOKING_TOPIC", "booking.created")
	viper.SetDefault("KAFKA_CONTACT_TOPIC", "contact.submitted")
	viper.SetDefault("METRICS_ENABLED", true)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location returns the configured timezone used for calendar-date arithmetic.
func Location() *time.Location {
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
