package router

import (
	"strings"

	"reddit-assistant/internal/model"
)

func newTurn(text string) Turn {
	return Turn{Text: text, Lower: strings.ToLower(text)}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func isReset(_ *model.Session, t Turn) bool {
	return strings.TrimSpace(t.Lower) == PhraseReset
}

func isSummarizeByTitle(_ *model.Session, t Turn) bool {
	return strings.Contains(t.Lower, PhraseSummarizePost)
}

func hasOverview(sess *model.Session, _ Turn) bool {
	return sess.HasOverview()
}

func isListPosts(_ *model.Session, t Turn) bool {
	return strings.Contains(t.Lower, MarkerSubreddit) && containsAny(t.Lower, listingKeywords)
}

func isSummarizeThread(_ *model.Session, t Turn) bool {
	return containsAny(t.Lower, summarizeKeywords)
}

func hasSummaries(sess *model.Session, _ Turn) bool {
	return sess.HasSummaries()
}

func always(*model.Session, Turn) bool {
	return true
}

// listingMode picks the listing by keyword precedence new > hot > top, defaulting to hot.
func listingMode(lower string) model.ListingMode {
	switch {
	case strings.Contains(lower, string(model.ListingNew)):
		return model.ListingNew
	case strings.Contains(lower, string(model.ListingHot)):
		return model.ListingHot
	case strings.Contains(lower, string(model.ListingTop)):
		return model.ListingTop
	default:
		return model.ListingHot
	}
}
