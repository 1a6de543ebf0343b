package router

import (
	"reddit-assistant/pkg/llmprovider"
	pkgLog "reddit-assistant/pkg/log"
)

// Router turns a message plus session state into a reply, updating the session as it goes.
type Router struct {
	fetcher      Fetcher
	summarizer   Summarizer
	llm          llmprovider.TextGenerator
	l            pkgLog.Logger
	defaultPosts int
	maxPosts     int
	rules        []Rule
}

// New creates a Router with the fixed rule order:
// reset, summarize post by title, overview Q&A, list posts, summarize thread,
// follow-up on a summarized post, general query.
func New(fetcher Fetcher, summarizer Summarizer, llm llmprovider.TextGenerator, l pkgLog.Logger, cfg Config) *Router {
	if cfg.DefaultPosts <= 0 {
		cfg.DefaultPosts = DefaultPostCount
	}
	if cfg.MaxPosts <= 0 {
		cfg.MaxPosts = MaxPostCount
	}

	r := &Router{
		fetcher:      fetcher,
		summarizer:   summarizer,
		llm:          llm,
		l:            l,
		defaultPosts: cfg.DefaultPosts,
		maxPosts:     cfg.MaxPosts,
	}

	r.rules = []Rule{
		{Intent: IntentReset, Match: isReset, Handle: r.handleReset},
		{Intent: IntentSummarizeByTitle, Match: isSummarizeByTitle, Handle: r.handleSummarizeByTitle},
		{Intent: IntentOverviewQA, Match: hasOverview, Handle: r.handleOverviewQA},
		{Intent: IntentListPosts, Match: isListPosts, Handle: r.handleListPosts},
		{Intent: IntentSummarizeThread, Match: isSummarizeThread, Handle: r.handleSummarizeThread},
		{Intent: IntentFollowUp, Match: hasSummaries, Handle: r.handleFollowUp},
		{Intent: IntentGeneral, Match: always, Handle: r.handleGeneral},
	}
	return r
}

// Rules returns the rules in priority order.
func (r *Router) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}
