package newsimpl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/wapj/mcp-test/internal/domain"
	"github.com/wapj/mcp-test/internal/fetcher"
	"github.com/wapj/mcp-test/internal/news"
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

type NewsImpl struct {
	fetcher fetcher.Client
	logger  logger.Logger
	config  *config.Config
}

func New(opts Opts) *NewsImpl {
	return &NewsImpl{
		fetcher: opts.Fetcher,
		logger:  opts.Logger.WithComponent("News"),
		config:  opts.Config,
	}
}

var _ news.Client = (*NewsImpl)(nil)

func (n *NewsImpl) Search(ctx context.Context, keyword string, limit int) ([]domain.NewsArticle, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "keyword is required")
	}
	if limit < 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("limit must not be negative, got %d", limit))
	}

	searchURL, err := n.searchURL(keyword)
	if err != nil {
		return nil, err
	}

	body, err := n.fetcher.Get(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news feed: %w", err)
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrUpstreamFormat, err), "parse news feed")
	}

	items := feed.Items
	if len(items) > limit {
		items = items[:limit]
	}

	articles := make([]domain.NewsArticle, 0, len(items))
	for _, item := range items {
		articles = append(articles, domain.NewsArticle{
			Title:       item.Title,
			Link:        item.Link,
			Published:   item.Published,
			Description: item.Description,
		})
	}

	n.logger.Info("News searched", "keyword", keyword, "count", len(articles))
	return articles, nil
}

// searchURL builds a Google News RSS search query for the configured locale.
func (n *NewsImpl) searchURL(keyword string) (string, error) {
	u, err := url.Parse(n.config.News.URL)
	if err != nil {
		return "", apperrors.Wrap(fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err), "news rss url")
	}

	lang, country := n.config.News.Language, n.config.News.Country

	q := u.Query()
	q.Set("q", keyword)
	q.Set("hl", lang)
	q.Set("gl", country)
	q.Set("ceid", country+":"+lang)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
