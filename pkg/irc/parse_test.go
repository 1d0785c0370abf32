package irc

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *Message
	}{
		{
			name: "command only",
			line: "FOO",
			want: &Message{Command: "FOO"},
		},
		{
			name: "prefix command",
			line: ":test FOO",
			want: &Message{Prefix: "test", Command: "FOO"},
		},
		{
			name: "prefix command trailing space",
			line: ":test FOO  ",
			want: &Message{Prefix: "test", Command: "FOO"},
		},
		{
			name: "prefix command middle trailing",
			line: ":test!me@test.ing PRIVMSG #Test :This is a test",
			want: &Message{Prefix: "test!me@test.ing", Command: "PRIVMSG", Params: []string{"#Test", "This is a test"}},
		},
		{
			name: "command middle trailing",
			line: "PRIVMSG #foo :This is a test",
			want: &Message{Command: "PRIVMSG", Params: []string{"#foo", "This is a test"}},
		},
		{
			name: "trailing keeps inner and outer spaces",
			line: ":test PRIVMSG foo :A string  with spaces   ",
			want: &Message{Prefix: "test", Command: "PRIVMSG", Params: []string{"foo", "A string  with spaces   "}},
		},
		{
			name: "extraneous spaces",
			line: ":test    PRIVMSG  foo   :bar",
			want: &Message{Prefix: "test", Command: "PRIVMSG", Params: []string{"foo", "bar"}},
		},
		{
			name: "multiple params with prefix",
			line: ":test FOO bar baz quux",
			want: &Message{Prefix: "test", Command: "FOO", Params: []string{"bar", "baz", "quux"}},
		},
		{
			name: "multiple middle without prefix",
			line: "FOO bar baz quux",
			want: &Message{Command: "FOO", Params: []string{"bar", "baz", "quux"}},
		},
		{
			name: "multiple middle extra spaces",
			line: "FOO   bar   baz  quux",
			want: &Message{Command: "FOO", Params: []string{"bar", "baz", "quux"}},
		},
		{
			name: "multiple middle and trailing",
			line: "FOO   bar   baz  quux :This is a test",
			want: &Message{Command: "FOO", Params: []string{"bar", "baz", "quux", "This is a test"}},
		},
		{
			name: "middle containing colons",
			line: ":test PRIVMSG #fo:oo :This is a test",
			want: &Message{Prefix: "test", Command: "PRIVMSG", Params: []string{"#fo:oo", "This is a test"}},
		},
		{
			name: "tags prefix command middle and trailing",
			line: "@best=super;single :test!me@test.ing FOO bar baz quux :This is a test",
			want: &Message{
				Tags: map[string]Tag{
					"best":   {Value: "super", HasValue: true},
					"single": {},
				},
				Prefix:  "test!me@test.ing",
				Command: "FOO",
				Params:  []string{"bar", "baz", "quux", "This is a test"},
			},
		},
		{
			name: "empty trailing",
			line: "TOPIC #test :",
			want: &Message{Command: "TOPIC", Params: []string{"#test", ""}},
		},
		{
			name: "trailing with more colons",
			line: "FOO bar :a :b:c",
			want: &Message{Command: "FOO", Params: []string{"bar", "a :b:c"}},
		},
		{
			name: "trailing directly after command",
			line: "PING :irc.example.net",
			want: &Message{Command: "PING", Params: []string{"irc.example.net"}},
		},
		{
			name: "leading spaces",
			line: "   FOO bar",
			want: &Message{Command: "FOO", Params: []string{"bar"}},
		},
		{
			name: "duplicate tag last wins",
			line: "@a=b;a=c FOO",
			want: &Message{Tags: map[string]Tag{"a": {Value: "c", HasValue: true}}, Command: "FOO"},
		},
		{
			name: "empty value differs from no value",
			line: "@a=;b FOO",
			want: &Message{Tags: map[string]Tag{"a": {Value: "", HasValue: true}, "b": {}}, Command: "FOO"},
		},
		{
			name: "tag split on first equals only",
			line: "@a=b=c FOO",
			want: &Message{Tags: map[string]Tag{"a": {Value: "b=c", HasValue: true}}, Command: "FOO"},
		},
		{
			name: "trailing semicolon in tags",
			line: "@a=1;b; :srv CMD",
			want: &Message{Tags: map[string]Tag{"a": {Value: "1", HasValue: true}, "b": {}}, Prefix: "srv", Command: "CMD"},
		},
		{
			name: "tags without prefix",
			line: "@id=1   PRIVMSG #chan :hi",
			want: &Message{Tags: map[string]Tag{"id": {Value: "1", HasValue: true}}, Command: "PRIVMSG", Params: []string{"#chan", "hi"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantErr  error
		wantKind string
	}{
		{name: "empty", line: "", wantErr: ErrEmptyInput, wantKind: "empty_input"},
		{name: "only spaces", line: "    ", wantErr: ErrEmptyInput, wantKind: "empty_input"},
		{name: "tags only", line: "@a=b", wantErr: ErrMissingCommand, wantKind: "missing_command"},
		{name: "tags and spaces", line: "@a=b   ", wantErr: ErrMissingCommand, wantKind: "missing_command"},
		{name: "prefix only", line: ":irc.example.net", wantErr: ErrMissingCommand, wantKind: "missing_command"},
		{name: "prefix and spaces", line: ":irc.example.net  ", wantErr: ErrMissingCommand, wantKind: "missing_command"},
		{name: "tags and prefix only", line: "@a=b :nick!u@h", wantErr: ErrMissingCommand, wantKind: "missing_command"},
		{name: "at sign alone", line: "@", wantErr: ErrMalformedTagSection, wantKind: "malformed_tag_section"},
		{name: "empty tag section", line: "@ FOO", wantErr: ErrMalformedTagSection, wantKind: "malformed_tag_section"},
		{name: "semicolon only", line: "@; FOO", wantErr: ErrMalformedTagSection, wantKind: "malformed_tag_section"},
		{name: "empty key in middle", line: "@a;;b FOO", wantErr: ErrMalformedTagSection, wantKind: "malformed_tag_section"},
		{name: "leading empty key", line: "@;b FOO", wantErr: ErrMalformedTagSection, wantKind: "malformed_tag_section"},
		{name: "value without key", line: "@=v FOO", wantErr: ErrMalformedTagSection, wantKind: "malformed_tag_section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, parse := range []func(string, ...Option) (*Message, error){Parse, ParseShared} {
				msg, err := parse(tt.line)
				assert.Nil(t, msg)
				require.ErrorIs(t, err, tt.wantErr)

				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tt.line, perr.Line)
				assert.Equal(t, tt.wantKind, perr.Kind())
			}
		})
	}
}

func TestParseOptions(t *testing.T) {
	const line = "@best=super;single :test!me@test.ing FOO bar"

	t.Run("valueless default", func(t *testing.T) {
		msg, err := Parse(line, WithValuelessTagDefault("true"))
		require.NoError(t, err)
		assert.Equal(t, Tag{Value: "true", HasValue: true}, msg.Tags["single"])
		assert.Equal(t, Tag{Value: "super", HasValue: true}, msg.Tags["best"])
	})

	t.Run("no default keeps tag valueless", func(t *testing.T) {
		msg, err := Parse(line)
		require.NoError(t, err)
		tag, ok := msg.Tag("single")
		assert.True(t, ok)
		assert.False(t, tag.HasValue)
		_, ok = msg.TagValue("single")
		assert.False(t, ok)
	})

	t.Run("raw", func(t *testing.T) {
		msg, err := Parse(line, WithRaw())
		require.NoError(t, err)
		assert.Equal(t, line, msg.Raw)

		msg, err = Parse(line)
		require.NoError(t, err)
		assert.Empty(t, msg.Raw)
	})

	t.Run("allow missing command", func(t *testing.T) {
		msg, err := Parse("@a=b :irc.example.net", WithAllowMissingCommand())
		require.NoError(t, err)
		assert.Equal(t, &Message{
			Tags:   map[string]Tag{"a": {Value: "b", HasValue: true}},
			Prefix: "irc.example.net",
		}, msg)

		msg, err = Parse(":irc.example.net   ", WithAllowMissingCommand())
		require.NoError(t, err)
		assert.Equal(t, &Message{Prefix: "irc.example.net"}, msg)
	})

	t.Run("allow missing command still rejects empty line", func(t *testing.T) {
		_, err := Parse("", WithAllowMissingCommand())
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("nil option ignored", func(t *testing.T) {
		msg, err := Parse("FOO", nil)
		require.NoError(t, err)
		assert.Equal(t, "FOO", msg.Command)
	})
}

func TestParseWhitespaceCollapsing(t *testing.T) {
	tests := []struct {
		spaced    string
		canonical string
	}{
		{spaced: "  FOO  ", canonical: "FOO"},
		{spaced: ":test   FOO    bar", canonical: ":test FOO bar"},
		{spaced: "@a=b;c    :test   FOO   bar    baz   :x y", canonical: "@a=b;c :test FOO bar baz :x y"},
		{spaced: "@a=b    FOO", canonical: "@a=b FOO"},
		{spaced: "FOO bar baz    ", canonical: "FOO bar baz"},
	}

	for _, tt := range tests {
		t.Run(tt.canonical, func(t *testing.T) {
			spaced, err := Parse(tt.spaced)
			require.NoError(t, err)
			canonical, err := Parse(tt.canonical)
			require.NoError(t, err)
			assert.Equal(t, canonical, spaced)
		})
	}
}

func TestParseSharedMatchesParse(t *testing.T) {
	lines := []string{
		"FOO",
		":test!me@test.ing PRIVMSG #Test :This is a test",
		"@best=super;single :test!me@test.ing FOO bar baz quux :This is a test",
		"FOO   bar   baz  quux",
		"TOPIC #test :",
	}

	for _, line := range lines {
		owned, err := Parse(line, WithRaw())
		require.NoError(t, err)
		shared, err := ParseShared(line, WithRaw())
		require.NoError(t, err)
		fromBytes, err := ParseBytes([]byte(line), WithRaw())
		require.NoError(t, err)

		assert.Equal(t, owned, shared, line)
		assert.Equal(t, owned, fromBytes, line)
	}
}

func TestParseOwnership(t *testing.T) {
	line := "PRIVMSG #chan :hello world"

	shared, err := ParseShared(line)
	require.NoError(t, err)
	assert.Same(t, unsafe.StringData(line), unsafe.StringData(shared.Command))
	assert.Same(t, unsafe.StringData(line[len("PRIVMSG "):]), unsafe.StringData(shared.Params[0]))

	owned, err := Parse(line)
	require.NoError(t, err)
	assert.NotSame(t, unsafe.StringData(line), unsafe.StringData(owned.Command))
}

func TestParseLogFixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.log"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			scanner := bufio.NewScanner(f)
			scanner.Buffer(make([]byte, 0, 4096), 64*1024)
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}

				msg, err := Parse(line)
				require.NoError(t, err, line)
				assert.NotEmpty(t, msg.Command, line)

				again, err := Parse(Format(msg))
				require.NoError(t, err, line)
				assert.True(t, msg.Equal(again), "%q reformatted as %q", line, Format(msg))
			}
			require.NoError(t, scanner.Err())
		})
	}
}

func BenchmarkParse(b *testing.B) {
	const line = "@badge-info=;badges=broadcaster/1;color=#1E90FF;display-name=Streamer;id=b34ccfc7;mod=0;room-id=1337 :streamer!streamer@streamer.tmi.twitch.tv PRIVMSG #streamer :Kappa Keepo Kappa"

	b.Run("owned", func(b *testing.B) {
		for range b.N {
			_, _ = Parse(line)
		}
	})
	b.Run("shared", func(b *testing.B) {
		for range b.N {
			_, _ = ParseShared(line)
		}
	})
}
