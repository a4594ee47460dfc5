package ingest

import (
	"fmt"
	"strings"
)

// IsListLiteral reports whether the cell is syntactically a bracketed list.
func IsListLiteral(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

// ParseListLiteral parses a bracketed list literal such as
// ['Gin', 'Lime juice'] or ["Vodka"] into its elements. Elements may be
// single- or double-quoted, or bare tokens. A malformed literal returns an
// error; callers fall back to treating the raw cell as a single entry.
func ParseListLiteral(s string) ([]string, error) {
	trimmed := strings.TrimSpace(s)
	if !IsListLiteral(trimmed) {
		return nil, fmt.Errorf("not a list literal: %q", s)
	}
	inner := trimmed[1 : len(trimmed)-1]

	var items []string
	i := 0
	for i < len(inner) {
		// skip separators and whitespace between elements
		for i < len(inner) && (inner[i] == ' ' || inner[i] == '\t' || inner[i] == ',') {
			i++
		}
		if i >= len(inner) {
			break
		}

		if q := inner[i]; q == '\'' || q == '"' {
			i++
			var sb strings.Builder
			closed := false
			for i < len(inner) {
				c := inner[i]
				if c == '\\' && i+1 < len(inner) {
					sb.WriteByte(inner[i+1])
					i += 2
					continue
				}
				if c == q {
					closed = true
					i++
					break
				}
				sb.WriteByte(c)
				i++
			}
			if !closed {
				return nil, fmt.Errorf("unterminated quote in list literal: %q", s)
			}
			items = append(items, sb.String())
		} else {
			start := i
			for i < len(inner) && inner[i] != ',' {
				i++
			}
			items = append(items, strings.TrimSpace(inner[start:i]))
		}
	}
	return items, nil
}
