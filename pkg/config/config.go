package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"0" env-description:"health check port, 0 disables it"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	MCP struct {
		Name            string `env:"MCP_NAME" env-default:"echo mcp server"`
		Version         string `env:"MCP_VERSION" env-default:"1.0.0"`
		Transport       string `env:"MCP_TRANSPORT" env-default:"stdio" env-description:"stdio or sse"`
		Addr            string `env:"MCP_ADDR" env-default:"localhost:8000"`
		BaseURL         string `env:"MCP_BASE_URL" env-default:"http://localhost:8000"`
		SSEEndpoint     string `env:"MCP_SSE_ENDPOINT" env-default:"/mcp/sse"`
		MessageEndpoint string `env:"MCP_MESSAGE_ENDPOINT" env-default:"/mcp/message"`
	}
	HTTP struct {
		Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`
		UserAgent   string        `env:"HTTP_USER_AGENT" env-default:"Mozilla/5.0 (compatible; mcp-test/1.0)"`
		CacheTTL    time.Duration `env:"HTTP_CACHE_TTL" env-default:"0s" env-description:"upstream body cache TTL, 0 disables it"`
		CacheSizeMB int           `env:"HTTP_CACHE_SIZE_MB" env-default:"16"`
	}
	Hotdeal struct {
		URL             string   `env:"HOTDEAL_URL" env-default:"https://m.ruliweb.com/market/board/1020"`
		ExpiredKeywords []string `env:"HOTDEAL_EXPIRED_KEYWORDS" env-separator:"," env-default:"품절,종료,마감,완료"`
		WarmupCron      string   `env:"HOTDEAL_WARMUP_CRON"`
		DigestLimit     int      `env:"HOTDEAL_DIGEST_LIMIT" env-default:"20"`
	}
	Kbo struct {
		URL    string `env:"KBO_RANK_URL" env-default:"https://sports.daum.net/prx/hermes/api/team/rank.json"`
		Season string `env:"KBO_SEASON" env-default:"2025"`
	}
	News struct {
		URL            string `env:"NEWS_RSS_URL" env-default:"https://news.google.com/rss/search"`
		Language       string `env:"NEWS_LANGUAGE" env-default:"ko"`
		Country        string `env:"NEWS_COUNTRY" env-default:"KR"`
		DefaultKeyword string `env:"NEWS_DEFAULT_KEYWORD" env-default:"카카오엔터테인먼트"`
		DefaultLimit   int    `env:"NEWS_DEFAULT_LIMIT" env-default:"100"`
	}
	Resource struct {
		Dir string `env:"RESOURCE_DIR" env-description:"directory served by dir://test, defaults to ~/test"`
	}
	Briefing struct {
		UserName string `env:"BRIEFING_USER_NAME" env-default:"ANDY"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		// A missing .env is fine, the process environment still applies.
		_ = godotenv.Load()

		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}
