package irc

import (
	"io"
	"strings"
)

// Format renders m as a single line without a line terminator.
//
// Tags are written in key order, each followed by ';'. A parameter is
// written as the trailing parameter when it contains a space, or when it
// is the last one and is empty or starts with ':'. Parameters after a
// trailing one cannot be represented and are dropped.
//
// Parse(Format(m)) reproduces m only when every parameter except the last
// is non-empty and does not start with ':'.
func Format(m *Message) string {
	return string(m.AppendTo(nil))
}

func (m *Message) String() string {
	return Format(m)
}

// AppendTo appends the wire form of m to dst.
func (m *Message) AppendTo(dst []byte) []byte {
	sep := false
	space := func() {
		if sep {
			dst = append(dst, ' ')
		}
		sep = true
	}

	if len(m.Tags) > 0 {
		space()
		dst = append(dst, '@')
		for _, key := range m.TagKeys() {
			tag := m.Tags[key]
			dst = append(dst, key...)
			if tag.HasValue {
				dst = append(dst, '=')
				dst = append(dst, tag.Value...)
			}
			dst = append(dst, ';')
		}
	}

	if m.Prefix != "" {
		space()
		dst = append(dst, ':')
		dst = append(dst, m.Prefix...)
	}

	if m.Command != "" {
		space()
		dst = append(dst, m.Command...)
	}

	for i, param := range m.Params {
		space()
		if isTrailing(param, i == len(m.Params)-1) {
			dst = append(dst, ':')
			dst = append(dst, param...)
			break
		}
		dst = append(dst, param...)
	}

	return dst
}

// WriteTo writes the wire form of m followed by CRLF.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	buf := m.AppendTo(make([]byte, 0, 128))
	buf = append(buf, '\r', '\n')
	n, err := w.Write(buf)
	return int64(n), err
}

func isTrailing(param string, last bool) bool {
	if strings.IndexByte(param, ' ') != -1 {
		return true
	}
	return last && (param == "" || param[0] == ':')
}
