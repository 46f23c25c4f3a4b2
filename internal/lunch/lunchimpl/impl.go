package lunchimpl

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/wapj/mcp-test/internal/domain"
	"github.com/wapj/mcp-test/internal/lunch"
	"github.com/wapj/mcp-test/pkg/logger"
	"go.uber.org/fx"
)

const maxAlternatives = 3

type Opts struct {
	fx.In

	Logger logger.Logger
	Rand   *rand.Rand `optional:"true"`
}

type LunchImpl struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	logger logger.Logger
}

func New(opts Opts) *LunchImpl {
	rnd := opts.Rand
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1))
	}

	return &LunchImpl{
		rnd:    rnd,
		logger: opts.Logger.WithComponent("Lunch"),
	}
}

var _ lunch.Client = (*LunchImpl)(nil)

func (l *LunchImpl) Cuisines() []string {
	return cuisineNames()
}

// Recommend picks one dish. An unknown cuisine is treated like lunch.RandomCuisine.
func (l *LunchImpl) Recommend(cuisine string) domain.MenuRecommendation {
	dishes, ok := dishesOf(cuisine)
	label := cuisine
	if cuisine == lunch.RandomCuisine || !ok {
		dishes = allDishes()
		label = randomLabel
	}

	l.mu.Lock()
	pick := dishes[l.rnd.IntN(len(dishes))]
	alternatives := l.sample(dishes, maxAlternatives)
	l.mu.Unlock()

	l.logger.Debug("Lunch recommended", "cuisine", label, "menu", pick)

	return domain.MenuRecommendation{
		RecommendedMenu: pick,
		CuisineType:     label,
		Message:         fmt.Sprintf("오늘 점심으로 %s 어떠세요?", pick),
		Alternatives:    alternatives,
	}
}

// sample draws up to n distinct entries. Callers hold l.mu.
func (l *LunchImpl) sample(from []string, n int) []string {
	n = min(n, len(from))
	out := make([]string, 0, n)
	for _, i := range l.rnd.Perm(len(from))[:n] {
		out = append(out, from[i])
	}
	return out
}

// FindRestaurants returns sample listings until a places API is configured.
func (l *LunchImpl) FindRestaurants(menu, location string) []domain.Restaurant {
	l.logger.Debug("Restaurant search", "menu", menu, "location", location)

	return []domain.Restaurant{
		{
			Name:    fmt.Sprintf("[샘플]%s 전문점 판교본점", menu),
			Rating:  4.5,
			Address: "경기도 성남시 분당구 판교역로 235",
			Phone:   "031-123-4567",
			Note:    "샘플 데이터 - Google API 키를 제공하면 실제 데이터를 가져올 수 있습니다.",
		},
		{
			Name:    fmt.Sprintf("[샘플]맛있는 %s 집", menu),
			Rating:  4.2,
			Address: "경기도 성남시 분당구 백현동 542",
			Phone:   "031-234-5678",
			Note:    "샘플 데이터",
		},
		{
			Name:    fmt.Sprintf("[샘플] %s 마당", menu),
			Rating:  4.7,
			Address: "경기도 성남시 분당구 삼평동 682",
			Phone:   "031-345-6789",
			Note:    "샘플 데이터",
		},
	}
}
