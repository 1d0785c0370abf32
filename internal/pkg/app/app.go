package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"io"
	router "ircwire/internal/app/adapters/http"
	"ircwire/internal/app/adapters/metrics"
	"ircwire/internal/app/adapters/source"
	"ircwire/internal/app/domain/ingest"
	"ircwire/internal/app/domain/parser"
	"ircwire/internal/app/infrastructure/config"
	"ircwire/internal/app/infrastructure/storage"
	"ircwire/internal/app/ports"
	"ircwire/pkg/irc"
	"ircwire/pkg/logger"
	"log/slog"
	"strings"
	"sync"
)

var registerOnce sync.Once

type App struct {
	log     logger.Logger
	manager *config.Manager
	parser  ports.ParserPort
}

func New(configPath string) (*App, error) {
	manager, err := config.New(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := manager.Get()
	log := logger.New(logger.FileOptions{
		Filename:   cfg.App.LogFile.Filename,
		MaxSize:    cfg.App.LogFile.MaxSize,
		MaxBackups: cfg.App.LogFile.MaxBackups,
		MaxAge:     cfg.App.LogFile.MaxAge,
		Compress:   cfg.App.LogFile.Compress,
	})
	log.SetLogLevel(cfg.App.LogLevel)
	gin.SetMode(cfg.App.GinMode)

	return newApp(log, manager), nil
}

func newApp(log logger.Logger, manager *config.Manager) *App {
	registerOnce.Do(func() {
		prometheus.MustRegister(metrics.ParseDuration)
	})

	cfg := manager.Get()

	var cache ports.CachePort[*irc.Message]
	if cfg.Cache.Capacity > 0 {
		cache = storage.NewCache[*irc.Message](cfg.Cache.Capacity, cfg.Cache.TTL)
	}

	return &App{
		log:     log,
		manager: manager,
		parser:  parser.New(cfg.Parser, cache),
	}
}

// Check parses every line of every file and writes a summary per file to
// out. It reports false when any line of any file was rejected.
func (a *App) Check(ctx context.Context, paths []string, out io.Writer) (bool, error) {
	ok := true
	pipeline := ingest.New(a.log, a.parser, nil)

	for _, path := range paths {
		report, err := pipeline.Run(ctx, source.NewFile(path))
		if err != nil {
			return false, err
		}

		fmt.Fprintf(out, "%s: %d lines, %d parsed, %d failed\n", path, report.Total, report.Parsed, report.Failed)
		for _, f := range report.Failures {
			fmt.Fprintf(out, "%s:%d: %v\n", path, f.Index, f.Err)
		}
		if report.Failed > len(report.Failures) {
			fmt.Fprintf(out, "%s: %d more failures not shown\n", path, report.Failed-len(report.Failures))
		}

		ok = ok && report.OK()
	}

	return ok, nil
}

type parsedLine struct {
	Message *irc.Message `json:"message"`
	Line    string       `json:"line"`
}

// Parse prints the JSON form of line, or of every line read from in when
// line is empty.
func (a *App) Parse(ctx context.Context, line string, in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if line != "" {
		msg, err := a.parser.Parse(line)
		if err != nil {
			return err
		}
		return enc.Encode(parsedLine{Message: msg, Line: irc.Format(msg)})
	}

	var encErr error
	pipeline := ingest.New(a.log, a.parser, func(msg *irc.Message) {
		if encErr == nil {
			encErr = enc.Encode(parsedLine{Message: msg, Line: irc.Format(msg)})
		}
	})

	report, err := pipeline.Run(ctx, source.NewReader("stdin", in))
	if err != nil {
		return err
	}
	if encErr != nil {
		return encErr
	}
	if !report.OK() {
		return fmt.Errorf("%d of %d lines failed to parse", report.Failed, report.Total)
	}
	return nil
}

// Serve runs the HTTP API until ctx is done.
func (a *App) Serve(ctx context.Context) error {
	return router.NewRouter(a.log, a.manager, a.parser).Run(ctx)
}

// Tail connects to the configured network and logs every parsed message
// until ctx is done.
func (a *App) Tail(ctx context.Context) error {
	src, err := a.newSource()
	if err != nil {
		return err
	}

	log := logger.NewPrefixedLogger(a.log, src.Name())
	pipeline := ingest.New(log, a.parser, func(msg *irc.Message) {
		log.Info(msg.Command,
			slog.String("prefix", msg.Prefix),
			slog.String("params", strings.Join(msg.Params, " ")),
			slog.Int("tags", len(msg.Tags)),
		)
	})

	report, err := pipeline.Run(ctx, src)
	log.Info("Source closed", slog.Int("total", report.Total), slog.Int("parsed", report.Parsed), slog.Int("failed", report.Failed))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) newSource() (ports.ChatPort, error) {
	cfg := a.manager.Get()

	switch cfg.Source.Kind {
	case config.SourceWebSocket:
		return source.NewWebSocket(a.log, cfg.Source, cfg.Proxy)
	case config.SourceTCP:
		return source.NewTCP(a.log, cfg.Source, cfg.Proxy)
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}
