package extract

import "strings"

// StripTrailingCommas removes commas that are followed, modulo whitespace,
// by a closing } or ]. A run of commas before a closer is removed entirely,
// so the pass is idempotent: applying it twice yields the same output as
// applying it once.
func StripTrailingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != ',' {
			b.WriteByte(c)
			continue
		}

		// Look ahead past whitespace and further commas. If the next
		// significant byte closes a container, drop the whole comma run
		// and keep the whitespace.
		j := i
		trailing := false
		for ; j < len(text); j++ {
			switch text[j] {
			case ',', ' ', '\t', '\n', '\r':
				continue
			case '}', ']':
				trailing = true
			}
			break
		}
		if !trailing {
			b.WriteByte(c)
			continue
		}
		for k := i + 1; k < j; k++ {
			if text[k] != ',' {
				b.WriteByte(text[k])
			}
		}
		i = j - 1
	}

	return b.String()
}

// NormalizeQuotes rewrites single-quoted string literals as double-quoted
// ones, escaping any double quotes found inside. Double-quoted literals pass
// through untouched, and backslash escapes are honored in both kinds so that
// an escaped quote never terminates a literal.
//
// This is a best-effort heuristic: an apostrophe in running prose looks
// exactly like an opening quote, so the transform can corrupt natural
// language. Decode therefore applies it only after every stricter attempt
// has failed.
func NormalizeQuotes(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	const (
		stateBare = iota
		stateDouble
		stateSingle
	)
	state := stateBare
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch state {
		case stateBare:
			switch c {
			case '"':
				state = stateDouble
				b.WriteByte(c)
			case '\'':
				state = stateSingle
				b.WriteByte('"')
			default:
				b.WriteByte(c)
			}

		case stateDouble:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				state = stateBare
			}
			b.WriteByte(c)

		case stateSingle:
			switch {
			case escaped:
				escaped = false
				if c == '\'' {
					// \' needs no escape inside a double-quoted literal.
					b.WriteByte(c)
				} else {
					b.WriteByte('\\')
					b.WriteByte(c)
				}
			case c == '\\':
				escaped = true
			case c == '\'':
				state = stateBare
				b.WriteByte('"')
			case c == '"':
				b.WriteString(`\"`)
			default:
				b.WriteByte(c)
			}
		}
	}

	return b.String()
}
