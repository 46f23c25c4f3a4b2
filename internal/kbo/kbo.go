package kbo

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=kbo.go -destination=mocks/mock.go
type Client interface {
	// GetRank returns the league table exactly as the sports API encodes it.
	GetRank(ctx context.Context) (map[string]any, error)
}
