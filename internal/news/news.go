package news

import (
	"context"

	"github.com/wapj/mcp-test/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=news.go -destination=mocks/mock.go
type Client interface {
	// Search returns at most limit articles matching keyword, newest feed order first.
	Search(ctx context.Context, keyword string, limit int) ([]domain.NewsArticle, error)
}
