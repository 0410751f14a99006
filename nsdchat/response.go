package nsdchat

import "strings"

// Protocol sentinel tokens. The server uses these in place of real data.
const (
	// SentinelEmpty marks an empty collection.
	SentinelEmpty = "<empty>"

	// SentinelUnknown marks an absent or unresolved reference.
	SentinelUnknown = "unknown"
)

// IsSentinel reports whether token is one of the protocol's placeholders
// for "no data".
func IsSentinel(token string) bool {
	return token == SentinelEmpty || token == SentinelUnknown
}

// SingleValue collapses a reply token list into one conceptual value: the
// empty string for no tokens, the sole token for exactly one, and the
// space-joined tokens otherwise. Multi-word values such as volume labels
// come back from the server as several tokens; rejoining them with single
// spaces is the protocol convention, even though it is lossy for values
// that legitimately contained runs of spaces.
func SingleValue(tokens []string) string {
	switch len(tokens) {
	case 0:
		return ""
	case 1:
		return tokens[0]
	default:
		return strings.Join(tokens, " ")
	}
}

// Names filters a reply token list down to real resource names, dropping
// sentinel tokens.
func Names(tokens []string) []string {
	names := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" || IsSentinel(tok) {
			continue
		}
		names = append(names, tok)
	}
	return names
}

// Resources builds one resource handle per reply token, bound to conn.
// Sentinel tokens are skipped, so an all-sentinel reply yields an empty
// slice.
func Resources(tokens []string, conn *Connection) []Resource {
	names := Names(tokens)
	resources := make([]Resource, 0, len(names))
	for _, name := range names {
		resources = append(resources, NewResource(name, conn))
	}
	return resources
}
