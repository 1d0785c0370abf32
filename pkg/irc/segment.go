package irc

import "strings"

// nextToken splits s at the first space. The remainder has its leading run
// of spaces removed. Without a space the whole string is the token.
func nextToken(s string) (token, rest string) {
	n := strings.IndexByte(s, ' ')
	if n == -1 {
		return s, ""
	}
	return s[:n], skipSpaces(s[n:])
}

// nextSection is nextToken for the tags and prefix sections: a section with
// no space after it has no boundary, so ok is false.
func nextSection(s string) (token, rest string, ok bool) {
	n := strings.IndexByte(s, ' ')
	if n == -1 {
		return "", s, false
	}
	return s[:n], skipSpaces(s[n:]), true
}

func skipSpaces(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return s[i:]
}
