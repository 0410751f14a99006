package nsdchat

import (
	"fmt"
	"strconv"
)

// Flatten converts a heterogeneous argument list into the flat token list
// handed to the nsdchat binary. Nested lists are flattened depth-first,
// left-to-right, so repeated "<option> <value>" groups can be passed as one
// slice. Entries that carry no information are dropped entirely rather than
// emitted as empty placeholders: nil, empty strings, the integer 0 and
// false all vanish from the token list.
//
// Dropping the integer 0 as well as empty strings matches the wire
// behavior existing P5 scripts rely on. Callers that must transmit a
// literal zero should pass the string "0", which is kept.
func Flatten(args ...any) []string {
	tokens := make([]string, 0, len(args))
	return appendTokens(tokens, args)
}

func appendTokens(tokens []string, args []any) []string {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// dropped
		case string:
			if v != "" {
				tokens = append(tokens, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					tokens = append(tokens, s)
				}
			}
		case []any:
			tokens = appendTokens(tokens, v)
		case int:
			if v != 0 {
				tokens = append(tokens, strconv.Itoa(v))
			}
		case int64:
			if v != 0 {
				tokens = append(tokens, strconv.FormatInt(v, 10))
			}
		case bool:
			if v {
				tokens = append(tokens, "1")
			}
		case fmt.Stringer:
			if s := v.String(); s != "" {
				tokens = append(tokens, s)
			}
		default:
			if s := fmt.Sprintf("%v", v); s != "" {
				tokens = append(tokens, s)
			}
		}
	}
	return tokens
}
