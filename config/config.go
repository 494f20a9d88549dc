package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DB struct {
		User     string
		Password string
		Host     string
		Port     string
		Name     string
		SSLMode  string
	}
	// MigrationsPath points at a directory of step files to use instead of
	// the embedded ones.
	MigrationsPath string
	// Competition that imported games are filed under.
	Competition struct {
		Name string
		Slug string
		Year string
	}
}

var defaults = map[string]string{
	"user_name":        "postgres",
	"db_password":      "",
	"db_host":          "localhost",
	"db_port":          "5432",
	"db_name":          "mls_api",
	"ssl_mode":         "disable",
	"migrations_path":  "",
	"competition_name": "MLS 2013",
	"competition_slug": "mls-2013",
	"competition_year": "2013",
}

// Load reads configuration from a .env file, the environment and an optional
// config/config.yaml, in increasing order of precedence for the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on system environment variables")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	cfg.DB.User = v.GetString("user_name")
	cfg.DB.Password = v.GetString("db_password")
	cfg.DB.Host = v.GetString("db_host")
	cfg.DB.Port = v.GetString("db_port")
	cfg.DB.Name = v.GetString("db_name")
	cfg.DB.SSLMode = v.GetString("ssl_mode")
	cfg.MigrationsPath = v.GetString("migrations_path")
	cfg.Competition.Name = v.GetString("competition_name")
	cfg.Competition.Slug = v.GetString("competition_slug")
	cfg.Competition.Year = v.GetString("competition_year")

	if len(cfg.Competition.Year) > 4 {
		return nil, fmt.Errorf("invalid COMPETITION_YEAR %q: at most 4 characters", cfg.Competition.Year)
	}
	return cfg, nil
}

// DatabaseURL renders the postgres connection string used by both sqlx and
// the migration tool.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DB.User, c.DB.Password),
		Host:     net.JoinHostPort(c.DB.Host, c.DB.Port),
		Path:     "/" + c.DB.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.DB.SSLMode),
	}
	return u.String()
}
