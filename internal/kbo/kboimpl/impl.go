package kboimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/wapj/mcp-test/internal/fetcher"
	"github.com/wapj/mcp-test/internal/kbo"
	"github.com/wapj/mcp-test/pkg/config"
	apperrors "github.com/wapj/mcp-test/pkg/errors"
	"github.com/wapj/mcp-test/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Fetcher fetcher.Client
	Logger  logger.Logger
	Config  *config.Config
}

type KboImpl struct {
	fetcher fetcher.Client
	logger  logger.Logger
	config  *config.Config
}

func New(opts Opts) *KboImpl {
	return &KboImpl{
		fetcher: opts.Fetcher,
		logger:  opts.Logger.WithComponent("Kbo"),
		config:  opts.Config,
	}
}

var _ kbo.Client = (*KboImpl)(nil)

func (k *KboImpl) GetRank(ctx context.Context) (map[string]any, error) {
	rankURL, err := k.rankURL()
	if err != nil {
		return nil, err
	}

	body, err := k.fetcher.Get(ctx, rankURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kbo rank: %w", err)
	}

	var rank map[string]any
	if err := json.Unmarshal(body, &rank); err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrUpstreamFormat, err), "decode kbo rank")
	}

	k.logger.Info("KBO rank retrieved", "season", k.config.Kbo.Season)
	return rank, nil
}

func (k *KboImpl) rankURL() (string, error) {
	u, err := url.Parse(k.config.Kbo.URL)
	if err != nil {
		return "", apperrors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err), "kbo rank url")
	}

	q := u.Query()
	q.Set("leagueCode", "kbo")
	q.Set("seasonKey", k.config.Kbo.Season)
	q.Set("page", "1")
	q.Set("pageSize", "100")
	u.RawQuery = q.Encode()

	return u.String(), nil
}
