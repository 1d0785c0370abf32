package ingest

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCommandLabel(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    string
	}{
		{name: "known", command: "PRIVMSG", want: "PRIVMSG"},
		{name: "lower case", command: "privmsg", want: "PRIVMSG"},
		{name: "twitch", command: "USERNOTICE", want: "USERNOTICE"},
		{name: "ircv3", command: "TAGMSG", want: "TAGMSG"},
		{name: "numeric", command: "001", want: "numeric"},
		{name: "numeric high", command: "999", want: "numeric"},
		{name: "four digits", command: "0001", want: "other"},
		{name: "mixed digits", command: "00A", want: "other"},
		{name: "unknown word", command: "FROBNICATE", want: "other"},
		{name: "junk", command: "X42", want: "other"},
		{name: "empty", command: "", want: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandLabel(tt.command))
		})
	}
}
