package hotdeal

import (
	"context"

	"github.com/wapj/mcp-test/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=hotdeal.go -destination=mocks/mock.go
type Client interface {
	// GetHotDeals fetches the listing page and returns its rows in board order.
	// With excludeExpired set, sold out or finished deals are left out.
	GetHotDeals(ctx context.Context, excludeExpired bool) ([]domain.HotDeal, error)

	// ScheduleWarmup keeps the listing page in the response cache on a cron schedule.
	ScheduleWarmup(ctx context.Context) error
}
