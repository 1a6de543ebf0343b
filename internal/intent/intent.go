// Package intent pulls structured fields out of free-text user messages.
// Every extractor is pure and case-insensitive; the second return value
// reports whether anything was found.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"reddit-assistant/internal/model"
)

var (
	subredditRe = regexp.MustCompile(`(?i)r/(\w+)`)
	numberRe    = regexp.MustCompile(`\b\d+\b`)
	urlRe       = regexp.MustCompile(`(?i)https?://(?:[a-z0-9$-_@.&+!*(),]|%[0-9a-f]{2})+`)
	depthRe     = regexp.MustCompile(`(?i)depth\s+(\d+)|(\d+)\s+levels?\s+deep`)
)

// ExtractSubredditName returns the name following the first "r/".
func ExtractSubredditName(text string) (string, bool) {
	m := subredditRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractNumber returns the first standalone run of digits.
// It does not try to tell a post index from any other number in the text.
func ExtractNumber(text string) (int, bool) {
	m := numberRe.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractURL returns the first http(s) URL.
func ExtractURL(text string) (string, bool) {
	m := urlRe.FindString(text)
	return m, m != ""
}

// ExtractSort returns the first comment sort named in the text, either as a bare
// word or as "sorted by <sort>".
func ExtractSort(text string) (model.CommentSort, bool) {
	words := strings.Fields(strings.ToLower(text))
	for i, word := range words {
		if word == "sorted" && i+2 < len(words) && words[i+1] == "by" {
			if sort, ok := parseSort(words[i+2]); ok {
				return sort, true
			}
		}
		if sort, ok := parseSort(word); ok {
			return sort, true
		}
	}
	return "", false
}

// ExtractDepth reads phrases like "depth 5" or "5 levels deep".
func ExtractDepth(text string) (int, bool) {
	m := depthRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseSort(word string) (model.CommentSort, bool) {
	for _, s := range model.CommentSorts {
		if word == string(s) {
			return s, true
		}
	}
	return "", false
}
