package config

import (
	"time"
)

type Config struct {
	App    App    `json:"app"`
	Parser Parser `json:"parser"`
	Cache  Cache  `json:"cache"`
	Source Source `json:"source"`
	Proxy  *Proxy `json:"proxy"`
	HTTP   HTTP   `json:"http"`
}

type App struct {
	LogLevel string  `json:"log_level"`
	GinMode  string  `json:"gin_mode"`
	LogFile  LogFile `json:"log_file"`
}

type LogFile struct {
	Filename   string `json:"filename"`
	MaxSize    int    `json:"max_size"`    // мегабайты
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"`     // дни
	Compress   bool   `json:"compress"`
}

type Parser struct {
	KeepRaw             bool    `json:"keep_raw"`
	Shared              bool    `json:"shared"`
	AllowMissingCommand bool    `json:"allow_missing_command"`
	ValuelessTagDefault *string `json:"valueless_tag_default"` // null - тег без "=" остаётся без значения
}

type Cache struct {
	Capacity int           `json:"capacity"` // 0 - кэш выключен
	TTL      time.Duration `json:"ttl"`
}

type Source struct {
	Kind           string        `json:"kind"` // tcp или websocket
	Address        string        `json:"address"`
	TLS            bool          `json:"tls"`
	WebSocketURL   string        `json:"websocket_url"`
	Nick           string        `json:"nick"`
	Pass           string        `json:"pass"`
	Caps           []string      `json:"caps"`
	Channels       []string      `json:"channels"`
	DialTimeout    time.Duration `json:"dial_timeout"`
	ReconnectDelay time.Duration `json:"reconnect_delay"`
}

type Proxy struct {
	Address string `json:"address"`
	Port    int    `json:"port"`
}

type HTTP struct {
	Addr      string  `json:"addr"`
	AuthToken string  `json:"auth_token"`
	Limiter   Limiter `json:"limiter"`
}

type Limiter struct {
	Requests int           `json:"requests"` // сколько запросов
	Per      time.Duration `json:"per"`      // за какое время
}
