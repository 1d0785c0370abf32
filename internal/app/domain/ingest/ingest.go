package ingest

import (
	"context"
	"ircwire/internal/app/adapters/metrics"
	"ircwire/internal/app/ports"
	"ircwire/pkg/irc"
	"ircwire/pkg/logger"
	"log/slog"
)

// maxFailures bounds how many rejected lines a report keeps.
const maxFailures = 100

type Handler func(msg *irc.Message)

type Failure struct {
	Index int // порядковый номер непустой строки, с 1
	Line  string
	Err   error
}

type Report struct {
	Source   string
	Total    int
	Parsed   int
	Failed   int
	Failures []Failure
	Commands map[string]int // по метке команды, см. commandLabel
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

// Pipeline parses every line of a source and hands parsed messages to a
// handler. Lines that fail to parse are logged and dropped.
type Pipeline struct {
	log     logger.Logger
	parser  ports.ParserPort
	handler Handler
}

func New(log logger.Logger, parser ports.ParserPort, handler Handler) *Pipeline {
	return &Pipeline{
		log:     log,
		parser:  parser,
		handler: handler,
	}
}

// Run reads src until it is exhausted or ctx is done. The report is
// returned even when the source fails.
func (p *Pipeline) Run(ctx context.Context, src ports.LineSource) (*Report, error) {
	name := src.Name()
	lines := make(chan string, 256)
	errCh := make(chan error, 1)

	go func() {
		errCh <- src.Lines(ctx, lines)
		close(lines)
	}()

	report := &Report{
		Source:   name,
		Commands: make(map[string]int),
	}
	received := metrics.LinesReceived.WithLabelValues(name)

	for line := range lines {
		report.Total++
		received.Inc()

		msg, err := p.parser.Parse(line)
		if err != nil {
			report.Failed++
			if len(report.Failures) < maxFailures {
				report.Failures = append(report.Failures, Failure{Index: report.Total, Line: line, Err: err})
			}
			p.log.Warn("Discarding unparsable line", slog.String("source", name), slog.Int("index", report.Total), slog.String("error", err.Error()))
			continue
		}

		report.Parsed++
		label := commandLabel(msg.Command)
		report.Commands[label]++
		metrics.Commands.WithLabelValues(label).Inc()
		p.log.Trace("Parsed line", slog.String("source", name), slog.String("command", msg.Command), slog.Int("params", len(msg.Params)))

		if p.handler != nil {
			p.handler(msg)
		}
	}

	return report, <-errCh
}
