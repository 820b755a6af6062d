package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	TelegramBotToken  string
	DatabaseURL       string
	RedisURL          string
	MarketDataBaseURL string

	QuotesPollSecs      int
	HeatmapPollSecs     int
	CorrelationPollSecs int
	CorrelationDays     int
	CacheTTLSecs        int

	OpenAIAPIKey      string
	OpenAIModel       string
	AdvisorMaxHistory int

	APIKey         string
	SSHPort        int
	SSHHostKeyPath string
}

func Load() *Config {
	cfg := &Config{
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		MarketDataBaseURL: strings.TrimSpace(os.Getenv("MARKET_DATA_BASE_URL")),
	}

	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}
	if cfg.MarketDataBaseURL == "" {
		log.Println("Warning: MARKET_DATA_BASE_URL not set, market data fetches will fail")
	}
	cfg.MarketDataBaseURL = strings.TrimSuffix(cfg.MarketDataBaseURL, "/")

	cfg.QuotesPollSecs = 60
	if v := os.Getenv("QUOTES_POLL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.QuotesPollSecs = n
		}
	}

	cfg.HeatmapPollSecs = 300
	if v := os.Getenv("HEATMAP_POLL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HeatmapPollSecs = n
		}
	}

	cfg.CorrelationPollSecs = 1800
	if v := os.Getenv("CORRELATION_POLL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CorrelationPollSecs = n
		}
	}

	cfg.CorrelationDays = 30
	if v := strings.TrimSpace(os.Getenv("CORRELATION_DAYS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CorrelationDays = n
		}
	}

	cfg.CacheTTLSecs = 60
	if v := strings.TrimSpace(os.Getenv("CACHE_TTL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTLSecs = n
		}
	}

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, advisor will be disabled")
	}

	cfg.OpenAIModel = strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}

	cfg.AdvisorMaxHistory = 20
	if v := os.Getenv("ADVISOR_MAX_HISTORY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AdvisorMaxHistory = n
		}
	}

	cfg.APIKey = strings.TrimSpace(os.Getenv("API_KEY"))

	cfg.SSHPort = 23234
	if v := os.Getenv("SSH_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SSHPort = n
		}
	}

	cfg.SSHHostKeyPath = strings.TrimSpace(os.Getenv("SSH_HOST_KEY_PATH"))
	if cfg.SSHHostKeyPath == "" {
		cfg.SSHHostKeyPath = ".ssh/marome_markets_ed25519"
	}

	return cfg
}
