package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml и переменных окружения через cleanenv

type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Logger        LoggerConfig        `yaml:"logger"`
	CryptoCompare CryptoCompareConfig `yaml:"cryptocompare"`
	Trends        TrendsConfig        `yaml:"trends"`
	Pipeline      PipelineConfig      `yaml:"pipeline"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	Telegram      TelegramConfig      `yaml:"telegram"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"SERVER_ADDR" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
	Debug           bool          `yaml:"debug" env:"SERVER_DEBUG" env-default:"false"` // dev-режим echo
}

type LoggerConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL" env-default:"info"` // debug|info|warn|error
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"` // text|json
}

// CryptoCompareConfig — провайдер списка монет и истории цен
type CryptoCompareConfig struct {
	CoinListURL   string        `yaml:"coinlist_url" env-default:"https://min-api.cryptocompare.com/data/all/coinlist"`
	BaseURL       string        `yaml:"base_url" env-default:"https://min-api.cryptocompare.com/data"`
	APIKey        string        `yaml:"api_key" env:"CRYPTOCOMPARE_API_KEY"`
	QuoteCurrency string        `yaml:"quote_currency" env-default:"USD"`
	Timeout       time.Duration `yaml:"timeout" env-default:"10s"`
	UserAgent     string        `yaml:"user_agent" env-default:"crypto-trends/1.0"`
}

// TrendsConfig — провайдер популярности поисковых запросов (Google Trends)
type TrendsConfig struct {
	BaseURL   string        `yaml:"base_url" env-default:"https://trends.google.com"`
	HL        string        `yaml:"hl" env-default:"en-US"`
	TZ        int           `yaml:"tz" env-default:"360"`
	Timeout   time.Duration `yaml:"timeout" env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env-default:"Mozilla/5.0 (compatible; crypto-trends/1.0)"`
}

type PipelineConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"PIPELINE_TIMEOUT" env-default:"20s"`
}

type PostgresConfig struct {
	Enabled         bool          `yaml:"enabled" env:"POSTGRES_ENABLED" env-default:"false"`
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DBName          string        `yaml:"dbname" env:"POSTGRES_DB" env-default:"crypto_trends"`
	SSLMode         string        `yaml:"sslmode" env-default:"disable"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	MaxConns        int32         `yaml:"max_conns" env-default:"10"`
	MinConns        int32         `yaml:"min_conns" env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"30m"`
	// Retention — сколько хранить журнал запросов; 0 отключает очистку
	Retention       time.Duration `yaml:"retention" env:"POSTGRES_RETENTION" env-default:"720h"`
	PruneInterval   time.Duration `yaml:"prune_interval" env-default:"1h"`
}

type TelegramConfig struct {
	Enabled bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
	Token   string `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
}

// LoadConfig читает конфигурацию: сначала файл (если указан), затем окружение.
// Путь берётся из аргумента, иначе из CONFIG_PATH.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// ReadConfig уже читает окружение, поэтому без файла — только env + значения по умолчанию
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
