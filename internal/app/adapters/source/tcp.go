package source

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"ircwire/internal/app/adapters/metrics"
	"ircwire/internal/app/infrastructure/config"
	"ircwire/pkg/irc"
	"ircwire/pkg/logger"
	"log/slog"
	"net"
	"strings"
	"sync"
)

// TCP is a plain or TLS IRC connection. It registers, joins the configured
// channels, answers PING and emits every received line.
type TCP struct {
	log  logger.Logger
	cfg  config.Source
	dial dialFunc

	mu   sync.Mutex
	conn net.Conn
}

func NewTCP(log logger.Logger, cfg config.Source, p *config.Proxy) (*TCP, error) {
	dial, err := newDialFunc(cfg.DialTimeout, p)
	if err != nil {
		return nil, fmt.Errorf("proxy dialer: %w", err)
	}

	return &TCP{
		log:  log,
		cfg:  cfg,
		dial: dial,
	}, nil
}

func (t *TCP) Name() string {
	return "tcp:" + t.cfg.Address
}

func (t *TCP) Lines(ctx context.Context, out chan<- string) error {
	return reconnectLoop(ctx, t.log, t.Name(), t.cfg.ReconnectDelay, func(ctx context.Context) error {
		return t.connectAndListen(ctx, out)
	})
}

func (t *TCP) Send(msg *irc.Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return ErrNotConnected
	}
	_, err := msg.WriteTo(t.conn)
	return err
}

func (t *TCP) connectAndListen(ctx context.Context, out chan<- string) error {
	conn, err := t.dial(ctx, "tcp", t.cfg.Address)
	if err != nil {
		t.log.Error("Failed to connect to IRC server", err, slog.String("address", t.cfg.Address))
		return err
	}

	if t.cfg.TLS {
		host, _, _ := net.SplitHostPort(t.cfg.Address)
		tlsConn := tls.Client(conn, &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12})
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			_ = conn.Close()
			return fmt.Errorf("tls handshake: %w", err)
		}
		conn = tlsConn
	}

	t.setConn(conn)
	defer t.setConn(nil)
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	metrics.SourceConnected.WithLabelValues(t.Name()).Set(1)
	defer metrics.SourceConnected.WithLabelValues(t.Name()).Set(0)

	for _, msg := range registration(t.cfg) {
		if err := t.Send(msg); err != nil {
			return fmt.Errorf("register: %w", err)
		}
	}

	t.log.Info("Listening on IRC server", slog.String("address", t.cfg.Address))

	reader := bufio.NewReaderSize(conn, 16*1024)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		if pong := keepAlive(line); pong != nil {
			if err := t.Send(pong); err != nil {
				return fmt.Errorf("send pong: %w", err)
			}
		}

		if err := emit(ctx, out, line); err != nil {
			return err
		}
	}
}

func (t *TCP) setConn(conn net.Conn) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.conn = conn
}
