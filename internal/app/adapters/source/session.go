package source

import (
	"context"
	"errors"
	"fmt"
	"golang.org/x/net/proxy"
	"ircwire/internal/app/adapters/metrics"
	"ircwire/internal/app/infrastructure/config"
	"ircwire/pkg/irc"
	"ircwire/pkg/logger"
	"log/slog"
	"net"
	"strings"
	"time"
)

var ErrNotConnected = errors.New("source is not connected")

type dialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// newDialFunc dials directly, or through a SOCKS5 proxy when one is set.
func newDialFunc(timeout time.Duration, p *config.Proxy) (dialFunc, error) {
	base := &net.Dialer{Timeout: timeout}
	if p == nil || p.Address == "" || p.Port == 0 {
		return base.DialContext, nil
	}

	dialer, err := proxy.SOCKS5("tcp", fmt.Sprintf("%s:%d", p.Address, p.Port), nil, base)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			return cd.DialContext(ctx, network, addr)
		}
		return dialer.Dial(network, addr)
	}, nil
}

// registration returns the lines sent right after connecting. CAP REQ goes
// before NICK/USER so the server holds registration until CAP END.
func registration(cfg config.Source) []*irc.Message {
	var msgs []*irc.Message
	if cfg.Pass != "" {
		msgs = append(msgs, irc.NewMessage("PASS", cfg.Pass))
	}
	if len(cfg.Caps) > 0 {
		msgs = append(msgs, irc.NewMessage("CAP", "REQ", strings.Join(cfg.Caps, " ")))
	}
	msgs = append(msgs,
		irc.NewMessage("NICK", cfg.Nick),
		irc.NewMessage("USER", cfg.Nick, "0", "*", cfg.Nick),
	)
	if len(cfg.Caps) > 0 {
		msgs = append(msgs, irc.NewMessage("CAP", "END"))
	}
	for _, ch := range cfg.Channels {
		if !strings.HasPrefix(ch, "#") {
			ch = "#" + ch
		}
		msgs = append(msgs, irc.NewMessage("JOIN", ch))
	}
	return msgs
}

// keepAlive returns the PONG for a PING line, or nil.
func keepAlive(line string) *irc.Message {
	msg, err := irc.ParseShared(line)
	if err != nil || !strings.EqualFold(msg.Command, "PING") {
		return nil
	}
	return irc.NewMessage("PONG", msg.Params...)
}

// reconnectLoop runs connect until ctx is done, waiting delay between
// attempts.
func reconnectLoop(ctx context.Context, log logger.Logger, name string, delay time.Duration, connect func(context.Context) error) error {
	for {
		err := connect(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		reason := "closed by server"
		if err != nil {
			reason = err.Error()
		}
		log.Warn("Connection lost, retrying...", slog.String("source", name), slog.String("error", reason))
		metrics.SourceReconnects.WithLabelValues(name).Inc()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

func emit(ctx context.Context, out chan<- string, line string) error {
	select {
	case out <- line:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
