package http

import (
	"context"
	"errors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"ircwire/internal/app/adapters/http/handlers"
	"ircwire/internal/app/adapters/http/middlewares"
	"ircwire/internal/app/infrastructure/config"
	"ircwire/internal/app/ports"
	"ircwire/pkg/logger"
	"log/slog"
	"net/http"
	"time"
)

type Router struct {
	router      *gin.Engine
	handlers    *handlers.Handlers
	middlewares *middlewares.Middlewares

	log     logger.Logger
	manager *config.Manager
}

func NewRouter(log logger.Logger, manager *config.Manager, parser ports.ParserPort) *Router {
	r := &Router{
		router:      gin.New(),
		handlers:    handlers.New(log, manager, parser),
		middlewares: middlewares.New(),
		log:         log,
		manager:     manager,
	}
	cfg := manager.Get()

	r.router.Use(gin.Recovery(), r.middlewares.Metrics())

	if cfg.HTTP.AuthToken != "" {
		pprofGroup := r.router.Group("/", gin.BasicAuth(gin.Accounts{
			"admin": cfg.HTTP.AuthToken,
		}))
		pprof.Register(pprofGroup)

		r.router.GET("/metrics", gin.BasicAuth(gin.Accounts{
			"admin": cfg.HTTP.AuthToken,
		}), gin.WrapH(promhttp.Handler()))
	} else {
		r.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.router.GET("/", r.handlers.IndexHandler)

	api := r.router.Group("/",
		r.middlewares.Auth(cfg.HTTP.AuthToken),
		r.middlewares.RateLimit(cfg.HTTP.Limiter.Requests, cfg.HTTP.Limiter.Per),
	)
	api.POST("/parse", r.handlers.ParseHandler)
	api.POST("/format", r.handlers.FormatHandler)

	return r
}

func (r *Router) Handler() http.Handler {
	return r.router
}

// Run serves until ctx is done, then shuts the server down gracefully.
func (r *Router) Run(ctx context.Context) error {
	addr := r.manager.Get().HTTP.Addr
	srv := r.newServer(addr, r.router)

	errCh := make(chan error, 1)
	go func() {
		r.log.Info("HTTP API listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (r *Router) newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
}
