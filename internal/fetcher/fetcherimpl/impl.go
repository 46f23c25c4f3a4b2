package fetcherimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/wapj/mcp-test/internal/fetcher"
	"github.com/wapj/mcp-test/pkg/cache"
	"github.com/wapj/mcp-test/pkg/config"
	apperrors "github.com/wapj/mcp-test/pkg/errors"
	"github.com/wapj/mcp-test/pkg/logger"
	"go.uber.org/fx"
)

const maxBodySize = 8 << 20

type Opts struct {
	fx.In

	LC     fx.Lifecycle
	Config *config.Config
	Logger logger.Logger
}

type FetcherImpl struct {
	httpClient   *http.Client
	cache        cache.Cache
	cacheEnabled bool
	userAgent    string
	logger       logger.Logger
}

func New(opts Opts) (*FetcherImpl, error) {
	log := opts.Logger.WithComponent("Fetcher")

	var c cache.Cache = cache.Nop{}
	enabled := opts.Config.HTTP.CacheTTL > 0
	if enabled {
		bc, err := cache.NewBigCache(context.Background(), opts.Config.HTTP.CacheSizeMB, opts.Config.HTTP.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to create response cache: %w", err)
		}
		c = bc
		log.Info("Response cache enabled", "ttl", opts.Config.HTTP.CacheTTL.String(), "size_mb", opts.Config.HTTP.CacheSizeMB)
	}

	opts.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})

	return &FetcherImpl{
		httpClient:   &http.Client{Timeout: opts.Config.HTTP.Timeout},
		cache:        c,
		cacheEnabled: enabled,
		userAgent:    opts.Config.HTTP.UserAgent,
		logger:       log,
	}, nil
}

var _ fetcher.Client = (*FetcherImpl)(nil)

func (f *FetcherImpl) Get(ctx context.Context, url string) ([]byte, error) {
	if body, ok := f.cache.Get(url); ok {
		f.logger.Debug("Serving response from cache", "url", url)
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err), "build request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Warn("Request failed", "url", url, "error", err)
		return nil, apperrors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrUpstream, err), "GET "+url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Warn("Unexpected status", "url", url, "status", resp.StatusCode)
		return nil, apperrors.WrapWithCode(apperrors.ErrUpstreamStatus, strconv.Itoa(resp.StatusCode), "GET "+url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrUpstream, err), "read body of "+url)
	}

	if f.cacheEnabled {
		if err := f.cache.Set(url, body); err != nil {
			f.logger.Warn("Failed to cache response", "url", url, "error", err)
		}
	}

	f.logger.Debug("Fetched", "url", url, "bytes", len(body))
	return body, nil
}
