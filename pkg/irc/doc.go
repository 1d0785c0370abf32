// Package irc parses single lines of IRC wire text into Message values and
// renders messages back to wire text.
//
// The grammar handled here is
//
//	message := [tags SP] [prefix SP] command [SP params]
//	tags    := "@" tag *(";" tag)
//	tag     := key ["=" value]
//	prefix  := ":" source
//	params  := middle *(SP middle) [SP ":" trailing] / ":" trailing
//
// Runs of spaces between sections count as one separator. Keys, values and
// params are not validated against any character set, and command names
// and parameter counts are not checked: the parser knows the grammar, not
// the protocol.
//
// Parse returns a message whose strings are independent copies of the
// input. ParseShared returns substrings of the input and allocates less,
// at the cost of keeping the whole line alive for as long as the message.
// Both produce identical messages for the same line.
package irc
