package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Redis    RedisConfig
	Broker   BrokerConfig
}

type AppConfig struct {
	Name           string
	Env            string
	Port           string
	Debug          bool
	LogPath        string
	FrontendOrigin string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	CookieName string
	MaxAgeDays int
}

type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	StatsTTLSec int
}

type BrokerConfig struct {
	URL      string
	Exchange string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("FRONTEND_ORIGIN", "http://localhost:3000")
	viper.SetDefault("SESSION_COOKIE", "admin_session")
	viper.SetDefault("SESSION_MAX_AGE_DAYS", 7)
	viper.SetDefault("REDIS_STATS_TTL_SEC", 30)
	viper.SetDefault("BROKER_EXCHANGE", "admin.events")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Env:            viper.GetString("APP_ENV"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			FrontendOrigin: viper.GetString("FRONTEND_ORIGIN"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			CookieName: viper.GetString("SESSION_COOKIE"),
			MaxAgeDays: viper.GetInt("SESSION_MAX_AGE_DAYS"),
		},
		Redis: RedisConfig{
			Addr:        viper.GetString("REDIS_ADDR"),
			Password:    viper.GetString("REDIS_PASS"),
			DB:          viper.GetInt("REDIS_DB"),
			StatsTTLSec: viper.GetInt("REDIS_STATS_TTL_SEC"),
		},
		Broker: BrokerConfig{
			URL:      viper.GetString("BROKER_URL"),
			Exchange: viper.GetString("BROKER_EXCHANGE"),
		},
	}

	return config, nil
}

// IsProduction reports whether the app runs with production settings.
// Controls the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
