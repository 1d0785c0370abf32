package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

func (m *Manager) validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error; got %s", cfg.App.LogLevel)
	}

	validGinModes := map[string]bool{"debug": true, "release": true, "test": true}
	if cfg.App.GinMode != "" && !validGinModes[cfg.App.GinMode] {
		return fmt.Errorf("app.gin_mode must be one of debug, release, test; got %s", cfg.App.GinMode)
	}

	if cfg.App.LogFile.MaxSize < 0 || cfg.App.LogFile.MaxBackups < 0 || cfg.App.LogFile.MaxAge < 0 {
		return errors.New("app.log_file sizes must not be negative")
	}

	// cache
	if cfg.Cache.Capacity < 0 {
		return errors.New("cache.capacity must not be negative")
	}
	if cfg.Cache.TTL < 0 {
		return errors.New("cache.ttl must not be negative")
	}

	// source
	switch cfg.Source.Kind {
	case SourceTCP:
		if cfg.Source.Address == "" {
			return errors.New("source.address is required for tcp source")
		}
	case SourceWebSocket:
		u, err := url.Parse(cfg.Source.WebSocketURL)
		if err != nil {
			return fmt.Errorf("source.websocket_url: %w", err)
		}
		if u.Scheme != "ws" && u.Scheme != "wss" {
			return fmt.Errorf("source.websocket_url must use ws or wss; got %q", u.Scheme)
		}
	default:
		return fmt.Errorf("source.kind must be 'tcp' or 'websocket'; got %q", cfg.Source.Kind)
	}

	if cfg.Source.Nick == "" {
		return errors.New("source.nick is required")
	}
	if strings.ContainsAny(cfg.Source.Nick, " \r\n") {
		return errors.New("source.nick must not contain spaces or line breaks")
	}
	for _, ch := range cfg.Source.Channels {
		if ch == "" || strings.ContainsAny(ch, " ,\r\n") {
			return fmt.Errorf("source.channels contains invalid channel %q", ch)
		}
	}
	if cfg.Source.ReconnectDelay < 0 || cfg.Source.DialTimeout < 0 {
		return errors.New("source durations must not be negative")
	}

	// proxy
	if cfg.Proxy != nil && (cfg.Proxy.Address == "") != (cfg.Proxy.Port == 0) {
		return errors.New("proxy.address and proxy.port must both be set or both be empty")
	}

	// http
	if (cfg.HTTP.Limiter.Requests != 0 && cfg.HTTP.Limiter.Per == 0) || (cfg.HTTP.Limiter.Requests == 0 && cfg.HTTP.Limiter.Per != 0) {
		return errors.New("http.limiter.requests and http.limiter.per must both be set or both be zero")
	}
	if cfg.HTTP.Limiter.Requests < 0 || cfg.HTTP.Limiter.Per < 0 {
		return errors.New("http.limiter values must not be negative")
	}

	return nil
}
