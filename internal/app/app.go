package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/wapj/mcp-test/internal/fetcher"
	"github.com/wapj/mcp-test/internal/fetcher/fetcherimpl"
	"github.com/wapj/mcp-test/internal/hotdeal"
	"github.com/wapj/mcp-test/internal/hotdeal/hotdealimpl"
	"github.com/wapj/mcp-test/internal/kbo"
	"github.com/wapj/mcp-test/internal/kbo/kboimpl"
	"github.com/wapj/mcp-test/internal/lunch"
	"github.com/wapj/mcp-test/internal/lunch/lunchimpl"
	"github.com/wapj/mcp-test/internal/mcpserver"
	"github.com/wapj/mcp-test/internal/news"
	"github.com/wapj/mcp-test/internal/news/newsimpl"
	"github.com/wapj/mcp-test/pkg/config"
	"github.com/wapj/mcp-test/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			fetcherimpl.New,
			fx.As(new(fetcher.Client)),
		), fx.Annotate(
			hotdealimpl.New,
			fx.As(new(hotdeal.Client)),
		), fx.Annotate(
			kboimpl.New,
			fx.As(new(kbo.Client)),
		), fx.Annotate(
			newsimpl.New,
			fx.As(new(news.Client)),
		), fx.Annotate(
			lunchimpl.New,
			fx.As(new(lunch.Client)),
		),
		mcpserver.New,
	),
	fx.Invoke(run),
)

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, log logger.Logger, cfg *config.Config,
	hdClient hotdeal.Client, srv *mcpserver.Server) {
	ctx, cancel := context.WithCancel(context.Background())
	var health *http.Server

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if cfg.App.Port > 0 {
				health = startHttpServer(log, cfg)
			}

			if err := hdClient.ScheduleWarmup(ctx); err != nil {
				log.Error("Schedule warmup error", "Error", err)
			}

			go func() {
				if err := srv.Serve(ctx); err != nil {
					log.Error("MCP server stopped", "Error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}
				_ = shutdowner.Shutdown()
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			if health != nil {
				return health.Shutdown(stopCtx)
			}
			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info(fmt.Sprintf("Starting health server on :%d", cfg.App.Port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Health server failed", "Error", err)
		}
	}()
	return srv
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
