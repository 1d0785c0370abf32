package ingest

import "strings"

const (
	labelNumeric = "numeric"
	labelOther   = "other"
)

// knownCommands is the closed set of command labels. Anything else a server
// or log file sends is counted as "other" so the label set stays bounded.
var knownCommands = map[string]struct{}{
	// RFC 1459 / 2812
	"ADMIN": {}, "AWAY": {}, "CONNECT": {}, "DIE": {}, "ERROR": {}, "INFO": {},
	"INVITE": {}, "ISON": {}, "JOIN": {}, "KICK": {}, "KILL": {}, "LINKS": {},
	"LIST": {}, "LUSERS": {}, "MODE": {}, "MOTD": {}, "NAMES": {}, "NICK": {},
	"NOTICE": {}, "OPER": {}, "PART": {}, "PASS": {}, "PING": {}, "PONG": {},
	"PRIVMSG": {}, "QUIT": {}, "REHASH": {}, "RESTART": {}, "SERVICE": {},
	"SERVLIST": {}, "SQUERY": {}, "SQUIT": {}, "STATS": {}, "SUMMON": {},
	"TIME": {}, "TOPIC": {}, "TRACE": {}, "USER": {}, "USERHOST": {},
	"USERS": {}, "VERSION": {}, "WALLOPS": {}, "WHO": {}, "WHOIS": {},
	"WHOWAS": {},
	// IRCv3
	"ACCOUNT": {}, "AUTHENTICATE": {}, "BATCH": {}, "CAP": {}, "CHGHOST": {},
	"FAIL": {}, "NOTE": {}, "SETNAME": {}, "TAGMSG": {}, "WARN": {},
	// Twitch
	"CLEARCHAT": {}, "CLEARMSG": {}, "GLOBALUSERSTATE": {}, "HOSTTARGET": {},
	"RECONNECT": {}, "ROOMSTATE": {}, "USERNOTICE": {}, "USERSTATE": {},
	"WHISPER": {},
}

// commandLabel maps a parsed command to a bounded label: known commands in
// upper case, three-digit replies as "numeric", the rest as "other".
func commandLabel(command string) string {
	if isNumeric(command) {
		return labelNumeric
	}

	upper := strings.ToUpper(command)
	if _, ok := knownCommands[upper]; ok {
		return upper
	}
	return labelOther
}

func isNumeric(command string) bool {
	if len(command) != 3 {
		return false
	}
	for i := 0; i < len(command); i++ {
		if command[i] < '0' || command[i] > '9' {
			return false
		}
	}
	return true
}
