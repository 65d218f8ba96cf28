package internal

import (
	"strings"
	"unicode"
)

// TokenizeAttributes splits raw attribute text into positional tokens.
//
// Tokens are separated by whitespace. A token opened with ' or " runs until
// the matching quote and may contain whitespace; the quotes are not part of
// the token. A quote met in the middle of a bare token ends that token and
// starts a quoted one. Empty input yields no tokens.
//
// A token closes only on its own quote kind, so mismatched quotes such as
// 'a" are reported as an unterminated string.
func TokenizeAttributes(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	lead := strings.Index(raw, trimmed)

	var tokens []string
	var quote rune
	quoteAt := -1
	start := -1

	for i, ch := range trimmed {
		switch {
		case quote != 0:
			if ch == quote {
				tokens = append(tokens, trimmed[start:i])
				quote = 0
				start = -1
			}
		case ch == CharDoubleQuote || ch == CharSingleQuote:
			if start >= 0 {
				tokens = append(tokens, trimmed[start:i])
			}
			quote = ch
			quoteAt = i
			start = i + 1
		case unicode.IsSpace(ch):
			if start >= 0 {
				tokens = append(tokens, trimmed[start:i])
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}

	if quote != 0 {
		return nil, NewUnterminatedStringError(trimmed, lead+quoteAt)
	}

	// Bare final token: the input was trimmed, so nothing followed it
	if start >= 0 {
		tokens = append(tokens, trimmed[start:])
	}

	return tokens, nil
}
