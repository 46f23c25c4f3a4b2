package logger

import (
	"github.com/wapj/mcp-test/pkg/config"
	"go.uber.org/fx"
)

var FxOption = fx.Annotate(
	func(cfg *config.Config) *Impl {
		return New(
			Opts{
				Env:         cfg.App.Env,
				Development: cfg.IsDevelopment(),
				SentryDSN:   cfg.App.SentryUrl,
			},
		)
	},
	fx.As(new(Logger)),
)
