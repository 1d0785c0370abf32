package irc

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// Tag is the value of a message tag. HasValue is false for tags written
// without "=", which is not the same as an empty value ("key=").
type Tag struct {
	Value    string
	HasValue bool
}

func (t Tag) MarshalJSON() ([]byte, error) {
	if !t.HasValue {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Tag{}
		return nil
	}
	if err := json.Unmarshal(data, &t.Value); err != nil {
		return err
	}
	t.HasValue = true
	return nil
}

// Message is one IRC line split into its sections. An empty Prefix means
// the line had none. Raw is only set when parsing WithRaw.
type Message struct {
	Tags    map[string]Tag `json:"tags,omitempty"`
	Prefix  string         `json:"prefix,omitempty"`
	Command string         `json:"command"`
	Params  []string       `json:"params,omitempty"`
	Raw     string         `json:"raw,omitempty"`
}

// Source is the prefix split into nick, user and host. A server name
// prefix ends up in Nick with User and Host empty.
type Source struct {
	Nick string
	User string
	Host string
}

func NewMessage(command string, params ...string) *Message {
	return &Message{
		Command: command,
		Params:  params,
	}
}

func (m *Message) HasPrefix() bool {
	return m.Prefix != ""
}

// Tag reports the tag stored under key and whether the line carried it.
func (m *Message) Tag(key string) (Tag, bool) {
	t, ok := m.Tags[key]
	return t, ok
}

// TagValue returns the value of key. ok is false when the tag is missing
// or was written without a value.
func (m *Message) TagValue(key string) (value string, ok bool) {
	t, found := m.Tags[key]
	if !found || !t.HasValue {
		return "", false
	}
	return t.Value, true
}

// TagKeys returns the tag keys in the order Format writes them.
func (m *Message) TagKeys() []string {
	return slices.Sorted(maps.Keys(m.Tags))
}

// Trailing returns the last parameter, or "" if there are none.
func (m *Message) Trailing() string {
	if len(m.Params) == 0 {
		return ""
	}
	return m.Params[len(m.Params)-1]
}

// Param returns the i-th parameter, or "" when out of range.
func (m *Message) Param(i int) string {
	if i < 0 || i >= len(m.Params) {
		return ""
	}
	return m.Params[i]
}

func (m *Message) Source() Source {
	var s Source
	rest := m.Prefix
	if at := strings.IndexByte(rest, '@'); at != -1 {
		s.Host = rest[at+1:]
		rest = rest[:at]
	}
	if excl := strings.IndexByte(rest, '!'); excl != -1 {
		s.User = rest[excl+1:]
		rest = rest[:excl]
	}
	s.Nick = rest
	return s
}

// Equal compares tags (ignoring order), prefix, command and params. Raw
// is not compared.
func (m *Message) Equal(other *Message) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Prefix != other.Prefix || m.Command != other.Command {
		return false
	}
	return maps.Equal(m.Tags, other.Tags) && slices.Equal(m.Params, other.Params)
}
