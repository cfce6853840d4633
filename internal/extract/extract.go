// Package extract locates and slices balanced JSON aggregates out of raw
// page text. The stat sites ship their data inside script push payloads,
// usually double-escaped, so the extractor works on plain text with a
// bracket scanner instead of a DOM or a full-document JSON parse.
package extract

import (
	"encoding/json"
	"strings"
)

// Aggregates further than this from their anchor are assumed malformed.
const maxScan = 500_000

// Aggregate finds anchor in text and returns the first syntactically
// balanced JSON array or object starting at or after it. The second return
// is false when the anchor or an aggregate is absent; both are expected,
// non-fatal outcomes (a page may legitimately omit a section).
func Aggregate(text, anchor string) (string, bool) {
	idx := strings.Index(text, anchor)
	if idx < 0 {
		return "", false
	}
	rel := strings.IndexAny(text[idx:], "[{")
	if rel < 0 {
		return "", false
	}
	return span(text, idx+rel)
}

// ObjectAt returns the balanced object beginning at a known '{' offset.
func ObjectAt(text string, start int) (string, bool) {
	if start < 0 || start >= len(text) || text[start] != '{' {
		return "", false
	}
	return span(text, start)
}

// span scans forward from an opening bracket, tracking nesting depth and
// string-literal state. Brackets inside string literals do not affect
// depth; a backslash consumes exactly one following character.
func span(text string, start int) (string, bool) {
	open := text[start]
	var close byte
	switch open {
	case '[':
		close = ']'
	case '{':
		close = '}'
	default:
		return "", false
	}

	end := start + maxScan
	if end > len(text) {
		end = len(text)
	}

	depth := 0
	inString := false
	escape := false
	for i := start; i < end; i++ {
		ch := text[i]
		if escape {
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// rscReplacer undoes one level of backslash escaping applied by the page
// serialization: \" for quotes, \\/ for slashes, \\n for newlines.
var rscReplacer = strings.NewReplacer(`\"`, `"`, `\\/`, "/", `\\n`, "\n")

// Unescape removes one level of RSC payload escaping.
func Unescape(s string) string {
	return rscReplacer.Replace(s)
}

// Decode unmarshals an extracted span into dst, reporting success. Decode
// failure is treated like absence: callers get false, never an error.
func Decode(span string, dst any) bool {
	return json.Unmarshal([]byte(span), dst) == nil
}
