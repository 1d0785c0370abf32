package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LinesReceived - строки, полученные от источника.
	LinesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ircwire_lines_received_total",
			Help: "Total number of raw lines received per source",
		},
		[]string{"source"},
	)

	// ParseResults - результаты разбора, result = ok или вид ошибки.
	ParseResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ircwire_parse_results_total",
			Help: "Total number of parsed lines by result",
		},
		[]string{"result"},
	)

	// Commands - разобранные сообщения по командам.
	Commands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ircwire_commands_total",
			Help: "Total number of parsed messages per IRC command",
		},
		[]string{"command"},
	)

	// ParseDuration - время разбора одной строки.
	ParseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ircwire_parse_duration_seconds",
			Help:    "Time spent parsing a single line",
			Buckets: prometheus.ExponentialBuckets(0.0000001, 2, 20),
		},
	)

	// CacheRequests - попадания и промахи кэша разобранных строк.
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ircwire_cache_requests_total",
			Help: "Parsed line cache lookups by result",
		},
		[]string{"result"},
	)

	// SourceConnected - подключён ли источник (1) или нет (0).
	SourceConnected = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ircwire_source_connected",
			Help: "Whether the network source is connected (1) or not (0)",
		},
		[]string{"source"},
	)

	// SourceReconnects - количество переподключений источника.
	SourceReconnects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ircwire_source_reconnects_total",
			Help: "Total number of reconnect attempts per source",
		},
		[]string{"source"},
	)

	// HTTPRequests - запросы к API.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ircwire_http_requests_total",
			Help: "Total number of API requests by route and status",
		},
		[]string{"route", "status"},
	)
)
