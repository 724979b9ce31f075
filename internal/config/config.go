package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	AppPort        string
	AppEnv         string
	StaticDir      string
	TrustedProxies []string
	CookieSecure   bool

	StoreDriver         string
	MongoURI            string
	MongoDatabase       string
	MongoTransactions   bool
	MongoConnectTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionSecret       string
	SessionTTL          time.Duration
	OTPTTL              time.Duration
	OTPRateLimitPerHour int
	BinRetention        time.Duration

	MailFrom     string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	KafkaBrokers []string
	KafkaTopic   string
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		AppPort:        v.GetString("APP_PORT"),
		AppEnv:         strings.ToLower(v.GetString("APP_ENV")),
		StaticDir:      v.GetString("STATIC_DIR"),
		TrustedProxies: parseList(v.GetString("TRUSTED_PROXIES")),
		CookieSecure:   v.GetBool("COOKIE_SECURE"),

		StoreDriver:         strings.ToLower(v.GetString("STORE_DRIVER")),
		MongoURI:            v.GetString("MONGO_URI"),
		MongoDatabase:       v.GetString("MONGO_DATABASE"),
		MongoTransactions:   v.GetBool("MONGO_TRANSACTIONS"),
		MongoConnectTimeout: v.GetDuration("MONGO_CONNECT_TIMEOUT"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		SessionSecret:       v.GetString("SESSION_SECRET"),
		SessionTTL:          v.GetDuration("SESSION_TTL"),
		OTPTTL:              v.GetDuration("OTP_TTL"),
		OTPRateLimitPerHour: v.GetInt("OTP_RATE_LIMIT_PER_HOUR"),
		BinRetention:        v.GetDuration("BIN_RETENTION"),

		MailFrom:     v.GetString("MAIL_FROM"),
		SMTPHost:     v.GetString("SMTP_HOST"),
		SMTPPort:     v.GetInt("SMTP_PORT"),
		SMTPUser:     v.GetString("SMTP_USER"),
		SMTPPassword: v.GetString("SMTP_PASSWORD"),

		KafkaBrokers: parseList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:   v.GetString("KAFKA_TOPIC"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("APP_ENV", EnvProduction)
	v.SetDefault("STATIC_DIR", "dist")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("STORE_DRIVER", StoreMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "magnolia")
	v.SetDefault("MONGO_TRANSACTIONS", false)
	v.SetDefault("MONGO_CONNECT_TIMEOUT", 10*time.Second)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SESSION_TTL", time.Hour)
	v.SetDefault("OTP_TTL", 5*time.Minute)
	v.SetDefault("OTP_RATE_LIMIT_PER_HOUR", 5)
	v.SetDefault("BIN_RETENTION", 7*24*time.Hour)
	v.SetDefault("MAIL_FROM", "Magnolia <no-reply@magnolia.local>")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("KAFKA_TOPIC", "magnolia.task-events")
}

func (c *Config) Validate() error {
	var errs []error
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required"))
	}
	if c.StoreDriver != StoreMongo && c.StoreDriver != StoreMemory {
		errs = append(errs, errors.New("STORE_DRIVER must be mongo or memory"))
	}
	if c.SessionTTL <= 0 || c.OTPTTL <= 0 || c.BinRetention <= 0 {
		errs = append(errs, errors.New("SESSION_TTL, OTP_TTL and BIN_RETENTION must be positive"))
	}
	// Without SMTP the codes only reach the log.
	if !c.IsDevelopment() && c.SMTPHost == "" {
		errs = append(errs, errors.New("SMTP_HOST is required outside development"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
