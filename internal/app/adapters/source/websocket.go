package source

import (
	"context"
	"fmt"
	"github.com/gorilla/websocket"
	"ircwire/internal/app/adapters/metrics"
	"ircwire/internal/app/infrastructure/config"
	"ircwire/pkg/irc"
	"ircwire/pkg/logger"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// WebSocket speaks IRC over a websocket, one or more lines per text frame.
type WebSocket struct {
	log    logger.Logger
	cfg    config.Source
	dialer *websocket.Dialer

	mu sync.Mutex
	ws *websocket.Conn
}

func NewWebSocket(log logger.Logger, cfg config.Source, p *config.Proxy) (*WebSocket, error) {
	dial, err := newDialFunc(cfg.DialTimeout, p)
	if err != nil {
		return nil, fmt.Errorf("proxy dialer: %w", err)
	}

	timeout := cfg.DialTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebSocket{
		log: log,
		cfg: cfg,
		dialer: &websocket.Dialer{
			NetDialContext:   dial,
			HandshakeTimeout: timeout,
		},
	}, nil
}

func (w *WebSocket) Name() string {
	return "websocket:" + w.cfg.WebSocketURL
}

func (w *WebSocket) Lines(ctx context.Context, out chan<- string) error {
	return reconnectLoop(ctx, w.log, w.Name(), w.cfg.ReconnectDelay, func(ctx context.Context) error {
		return w.connectAndListen(ctx, out)
	})
}

func (w *WebSocket) Send(msg *irc.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.ws == nil {
		return ErrNotConnected
	}

	wr, err := w.ws.NextWriter(websocket.TextMessage)
	if err != nil {
		return err
	}
	if _, err := msg.WriteTo(wr); err != nil {
		_ = wr.Close()
		return err
	}
	return wr.Close()
}

func (w *WebSocket) connectAndListen(ctx context.Context, out chan<- string) error {
	ws, resp, err := w.dialer.DialContext(ctx, w.cfg.WebSocketURL, nil)
	if err != nil {
		if resp != nil {
			if err := resp.Body.Close(); err != nil {
				w.log.Error("Failed to close response body", err)
			}
		}
		return fmt.Errorf("websocket dial: %w", err)
	}

	w.setConn(ws)
	defer w.setConn(nil)
	defer ws.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = ws.Close()
	})
	defer stop()

	metrics.SourceConnected.WithLabelValues(w.Name()).Set(1)
	defer metrics.SourceConnected.WithLabelValues(w.Name()).Set(0)

	for _, msg := range registration(w.cfg) {
		if err := w.Send(msg); err != nil {
			return fmt.Errorf("register: %w", err)
		}
	}

	w.log.Info("Connected to IRC websocket", slog.String("url", w.cfg.WebSocketURL))

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return fmt.Errorf("websocket read: %w", err)
		}

		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSuffix(line, "\r")
			if line == "" {
				continue
			}

			if pong := keepAlive(line); pong != nil {
				if err := w.Send(pong); err != nil {
					return fmt.Errorf("send pong: %w", err)
				}
			}

			if err := emit(ctx, out, line); err != nil {
				return err
			}
		}
	}
}

func (w *WebSocket) setConn(ws *websocket.Conn) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.ws = ws
}
