package config

import "time"

const (
	SourceTCP       = "tcp"
	SourceWebSocket = "websocket"
)

func (m *Manager) GetDefault() *Config {
	return &Config{
		App: App{
			LogLevel: "info",
			GinMode:  "release",
			LogFile: LogFile{
				Filename:   "logs/main.log",
				MaxSize:    64,
				MaxBackups: 32,
				MaxAge:     30,
				Compress:   true,
			},
		},
		Cache: Cache{
			Capacity: 4096,
			TTL:      time.Minute,
		},
		Source: Source{
			Kind:           SourceTCP,
			Address:        "irc.chat.twitch.tv:6697",
			TLS:            true,
			WebSocketURL:   "wss://irc-ws.chat.twitch.tv:443",
			Nick:           "justinfan12345",
			Caps:           []string{"twitch.tv/tags", "twitch.tv/commands", "twitch.tv/membership"},
			DialTimeout:    10 * time.Second,
			ReconnectDelay: 5 * time.Second,
		},
		HTTP: HTTP{
			Addr: ":8080",
			Limiter: Limiter{
				Requests: 20,
				Per:      time.Second,
			},
		},
	}
}
