package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	WhatsApp WhatsAppConfig
	Log      LogConfig
	Jobs     JobsConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	Env            string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL      string
	LogLevel string
}

type RedisConfig struct {
	URL string
}

type SessionConfig struct {
	Secret       string
	TTLHours     int
	CookieName   string
	CookieSecure bool
}

type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	APIURL        string
}

type LogConfig struct {
	Level string
}

type JobsConfig struct {
	StatsIntervalSeconds int
}

// Enabled reports whether outbound WhatsApp messages can be sent.
func (w WhatsAppConfig) Enabled() bool {
	return w.AccessToken != "" && w.PhoneNumberID != ""
}

var AppConfig *Config

// Load reads configuration from the environment. Call godotenv before it if a
// .env file should be honoured.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("SESSION_SECRET", "your-secret-key")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("SESSION_COOKIE_NAME", "session")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("WHATSAPP_API_URL", "https://graph.facebook.com/v18.0")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STATS_INTERVAL_SECONDS", 60)

	AppConfig = &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			Env:            v.GetString("APP_ENV"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DB_URL"),
			LogLevel: v.GetString("DB_LOG_LEVEL"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		Session: SessionConfig{
			Secret:       v.GetString("SESSION_SECRET"),
			TTLHours:     v.GetInt("SESSION_TTL_HOURS"),
			CookieName:   v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure: v.GetBool("SESSION_COOKIE_SECURE"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken:   v.GetString("WHATSAPP_ACCESS_TOKEN"),
			PhoneNumberID: v.GetString("WHATSAPP_PHONE_NUMBER_ID"),
			APIURL:        v.GetString("WHATSAPP_API_URL"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Jobs: JobsConfig{
			StatsIntervalSeconds: v.GetInt("STATS_INTERVAL_SECONDS"),
		},
	}
	return AppConfig
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
