package irc

type parseConfig struct {
	keepRaw             bool
	allowMissingCommand bool
	valuelessDefault    *string
}

type Option func(*parseConfig)

// WithRaw keeps the original line in Message.Raw.
func WithRaw() Option {
	return func(c *parseConfig) {
		c.keepRaw = true
	}
}

// WithValuelessTagDefault stores v as the value of tags written without
// "=". By default such tags have no value at all.
func WithValuelessTagDefault(v string) Option {
	return func(c *parseConfig) {
		c.valuelessDefault = &v
	}
}

// WithAllowMissingCommand accepts lines made only of tags and/or a prefix
// and returns them with an empty Command instead of ErrMissingCommand.
func WithAllowMissingCommand() Option {
	return func(c *parseConfig) {
		c.allowMissingCommand = true
	}
}

func newParseConfig(opts []Option) parseConfig {
	var c parseConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
