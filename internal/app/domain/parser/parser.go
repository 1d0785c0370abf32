package parser

import (
	"errors"
	"ircwire/internal/app/adapters/metrics"
	"ircwire/internal/app/infrastructure/config"
	"ircwire/internal/app/ports"
	"ircwire/pkg/irc"
	"time"
)

// Parser parses lines with the options from the parser config section and
// remembers recent results. Cached messages are shared between callers and
// must not be modified.
type Parser struct {
	parse func(string, ...irc.Option) (*irc.Message, error)
	opts  []irc.Option
	cache ports.CachePort[*irc.Message]
}

// New creates a parser. cache may be nil.
func New(cfg config.Parser, cache ports.CachePort[*irc.Message]) *Parser {
	p := &Parser{
		parse: irc.Parse,
		opts:  Options(cfg),
		cache: cache,
	}
	if cfg.Shared {
		p.parse = irc.ParseShared
	}

	return p
}

func Options(cfg config.Parser) []irc.Option {
	var opts []irc.Option
	if cfg.KeepRaw {
		opts = append(opts, irc.WithRaw())
	}
	if cfg.AllowMissingCommand {
		opts = append(opts, irc.WithAllowMissingCommand())
	}
	if cfg.ValuelessTagDefault != nil {
		opts = append(opts, irc.WithValuelessTagDefault(*cfg.ValuelessTagDefault))
	}
	return opts
}

func (p *Parser) Parse(line string) (*irc.Message, error) {
	if p.cache != nil {
		if msg, ok := p.cache.Get(line); ok {
			metrics.CacheRequests.WithLabelValues("hit").Inc()
			metrics.ParseResults.WithLabelValues("ok").Inc()
			return msg, nil
		}
		metrics.CacheRequests.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	msg, err := p.parse(line, p.opts...)
	metrics.ParseDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ParseResults.WithLabelValues(ErrorKind(err)).Inc()
		return nil, err
	}
	metrics.ParseResults.WithLabelValues("ok").Inc()

	if p.cache != nil {
		p.cache.Set(line, msg)
	}
	return msg, nil
}

// ErrorKind maps a parse error to its metric label.
func ErrorKind(err error) string {
	var perr *irc.ParseError
	if errors.As(err, &perr) {
		return perr.Kind()
	}
	return "unknown"
}
