package lunch

import "github.com/wapj/mcp-test/internal/domain"

// RandomCuisine asks for a pick across every cuisine.
const RandomCuisine = "random"

//go:generate go run go.uber.org/mock/mockgen -source=lunch.go -destination=mocks/mock.go
type Client interface {
	// Cuisines lists the cuisine names Recommend understands, in menu order.
	Cuisines() []string
	Recommend(cuisine string) domain.MenuRecommendation
	FindRestaurants(menu, location string) []domain.Restaurant
}
