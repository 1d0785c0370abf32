package irc

import "strings"

// Parse parses one line without its line terminator. Every string in the
// returned message is a copy, so the message may outlive line's storage.
func Parse(line string, opts ...Option) (*Message, error) {
	return parse(line, strings.Clone, newParseConfig(opts))
}

// ParseShared parses like Parse but the message's strings are substrings
// of line.
func ParseShared(line string, opts ...Option) (*Message, error) {
	return parse(line, shared, newParseConfig(opts))
}

// ParseBytes parses a line held in a reusable read buffer. The result does
// not reference b.
func ParseBytes(b []byte, opts ...Option) (*Message, error) {
	return parse(string(b), shared, newParseConfig(opts))
}

func shared(s string) string {
	return s
}

// parse walks the tags, prefix, command and params sections in order.
// wrap converts every substring of line that ends up in the message.
func parse(line string, wrap func(string) string, cfg parseConfig) (*Message, error) {
	rest := skipSpaces(line)
	if rest == "" {
		return nil, newParseError(line, ErrEmptyInput)
	}

	msg := &Message{}
	if cfg.keepRaw {
		msg.Raw = wrap(line)
	}

	if rest[0] == '@' {
		section, next, ok := nextSection(rest[1:])
		if !ok {
			section, next = rest[1:], ""
		}

		tags, err := parseTags(section, wrap, cfg)
		if err != nil {
			return nil, newParseError(line, err)
		}
		msg.Tags = tags
		rest = next
	}

	if rest != "" && rest[0] == ':' {
		section, next, ok := nextSection(rest[1:])
		if !ok {
			section, next = rest[1:], ""
		}
		msg.Prefix = wrap(section)
		rest = next
	}

	if rest == "" {
		if cfg.allowMissingCommand {
			return msg, nil
		}
		return nil, newParseError(line, ErrMissingCommand)
	}

	command, rest := nextToken(rest)
	msg.Command = wrap(command)

	for rest != "" {
		if rest[0] == ':' {
			msg.Params = append(msg.Params, wrap(rest[1:]))
			break
		}

		var param string
		param, rest = nextToken(rest)
		msg.Params = append(msg.Params, wrap(param))
	}

	return msg, nil
}

func parseTags(section string, wrap func(string) string, cfg parseConfig) (map[string]Tag, error) {
	if section == "" {
		return nil, ErrMalformedTagSection
	}

	raw := strings.Split(section, ";")
	// A single trailing ';' is what Format writes after the last tag.
	if len(raw) > 1 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	tags := make(map[string]Tag, len(raw))
	for _, token := range raw {
		key, value, found := strings.Cut(token, "=")
		if key == "" {
			return nil, ErrMalformedTagSection
		}

		var tag Tag
		switch {
		case found:
			tag = Tag{Value: wrap(value), HasValue: true}
		case cfg.valuelessDefault != nil:
			tag = Tag{Value: *cfg.valuelessDefault, HasValue: true}
		}
		tags[wrap(key)] = tag
	}

	return tags, nil
}
