package scrape

import (
	"net/url"
	"regexp"
	"strings"
)

// RiotID is a game name plus tag line, the unit every adapter keys on.
type RiotID struct {
	GameName string `json:"game_name"`
	TagLine  string `json:"tag_line"`
}

// DefaultTagLine is assumed when the input carries no tag.
const DefaultTagLine = "NA1"

var multiSplitRe = regexp.MustCompile(`\n|%0A|,`)

// ParsePlayerInput accepts the forms users actually paste: an op.gg
// multi-search link, "Name#TAG", "Name-TAG", or a bare name.
func ParsePlayerInput(text string) []RiotID {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if strings.Contains(text, "op.gg") {
		return ParseMultiSearchURL(text)
	}
	if strings.Contains(text, "#") {
		name, tag, _ := cutLast(text, "#")
		return []RiotID{{GameName: strings.TrimSpace(name), TagLine: strings.TrimSpace(tag)}}
	}
	if strings.Contains(text, "-") && !strings.HasPrefix(text, "http") {
		name, tag, _ := cutLast(text, "-")
		return []RiotID{{GameName: strings.TrimSpace(name), TagLine: strings.TrimSpace(tag)}}
	}
	return []RiotID{{GameName: text, TagLine: DefaultTagLine}}
}

// ParseMultiSearchURL parses an op.gg multi search URL into Riot IDs.
func ParseMultiSearchURL(raw string) []RiotID {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	summoners := parsed.Query().Get("summoners")
	if unquoted, err := url.QueryUnescape(summoners); err == nil {
		summoners = unquoted
	}

	var ids []RiotID
	for _, entry := range multiSplitRe.Split(summoners, -1) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		var name, tag string
		switch {
		case strings.Contains(entry, "#"):
			name, tag, _ = cutLast(entry, "#")
		case strings.Contains(entry, "-"):
			name, tag, _ = cutLast(entry, "-")
		default:
			name, tag = entry, DefaultTagLine
		}
		ids = append(ids, RiotID{GameName: strings.TrimSpace(name), TagLine: strings.TrimSpace(tag)})
	}
	return ids
}

// cutLast splits around the last occurrence of sep.
func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
