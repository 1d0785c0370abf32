package ports

import (
	"context"
	"ircwire/pkg/irc"
)

// LineSource delivers already framed IRC lines, without line terminators.
// Lines blocks until the source is exhausted or ctx is done.
type LineSource interface {
	Name() string
	Lines(ctx context.Context, out chan<- string) error
}

// ChatPort is a connected source that can also send messages back.
type ChatPort interface {
	LineSource
	Send(msg *irc.Message) error
}
