package fetcher

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock.go
type Client interface {
	// Get returns the body of a successful GET against url.
	Get(ctx context.Context, url string) ([]byte, error)
}
