package hotdealimpl

import (
	"context"
	"fmt"

	"github.com/wapj/mcp-test/internal/domain"
	"github.com/wapj/mcp-test/internal/fetcher"
	"github.com/wapj/mcp-test/internal/hotdeal"
	"github.com/wapj/mcp-test/internal/hotdeal/ruliweb"
	"github.com/wapj/mcp-test/pkg/config"
	"github.com/wapj/mcp-test/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Fetcher fetcher.Client
	Logger  logger.Logger
	Config  *config.Config
}

type HotdealImpl struct {
	Fetcher   fetcher.Client
	Extractor *ruliweb.Extractor
	Logger    logger.Logger
	Config    *config.Config
}

func New(opts Opts) *HotdealImpl {
	log := opts.Logger.WithComponent("Hotdeal")

	extractor := ruliweb.New(ruliweb.Opts{
		ExpiredKeywords: opts.Config.Hotdeal.ExpiredKeywords,
		Logger:          log,
	})

	return &HotdealImpl{
		Fetcher:   opts.Fetcher,
		Extractor: extractor,
		Logger:    log,
		Config:    opts.Config,
	}
}

var _ hotdeal.Client = (*HotdealImpl)(nil)

func (h *HotdealImpl) GetHotDeals(ctx context.Context, excludeExpired bool) ([]domain.HotDeal, error) {
	body, err := h.Fetcher.Get(ctx, h.Config.Hotdeal.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hot deal listing: %w", err)
	}

	deals := h.Extractor.Extract(string(body), excludeExpired)
	h.Logger.Info("Hot deals retrieved", "count", len(deals), "exclude_expired", excludeExpired)

	return deals, nil
}
