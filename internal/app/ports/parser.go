package ports

import "ircwire/pkg/irc"

type ParserPort interface {
	Parse(line string) (*irc.Message, error)
}
