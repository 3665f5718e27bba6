package extract

import "strings"

// BalancedBlock returns the first maximal balanced {...} or [...] span in
// text. The scan starts at the earliest opening bracket and walks forward
// tracking a stack of open bracket kinds, so nested structures are handled
// in a single linear pass.
//
// Both double and single quotes open a string literal, because models emit
// single-quoted strings often enough that treating them as plain characters
// would let a brace inside 'it}s fine' terminate the span early. Inside a
// literal, brackets are inert and a backslash escapes the following
// character.
//
// Returns false when no opening bracket exists or the input ends before the
// stack empties (unterminated block).
func BalancedBlock(text string) (string, bool) {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", false
	}

	var stack []byte
	inString := false
	var quote byte
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				inString = false
			}
			continue
		}

		switch c {
		case '"', '\'':
			inString = true
			quote = c
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) == 0 {
				return "", false
			}
			open := stack[len(stack)-1]
			if (c == '}' && open != '{') || (c == ']' && open != '[') {
				// Mismatched bracket kinds; this span cannot be valid JSON.
				return "", false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

// BetweenMarkers returns the substring strictly between the first occurrence
// of start and the first occurrence of end after it, trimmed of surrounding
// whitespace. Returns false if either marker is missing or end never appears
// after start.
func BetweenMarkers(text, start, end string) (string, bool) {
	i := strings.Index(text, start)
	if i < 0 {
		return "", false
	}
	rest := text[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:j]), true
}

// greedySpan returns the substring from the first open byte through the last
// close byte. It is the bluntest extraction strategy: no balance checking at
// all, just the widest plausible window. Used only after the balanced scan
// has failed, e.g. when the completion was truncated mid-string.
func greedySpan(text string, open, close byte) (string, bool) {
	i := strings.IndexByte(text, open)
	if i < 0 {
		return "", false
	}
	j := strings.LastIndexByte(text, close)
	if j <= i {
		return "", false
	}
	return text[i : j+1], true
}
