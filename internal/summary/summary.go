package summary

import (
	"context"
	"fmt"
	"strings"

	"reddit-assistant/internal/model"
	pkgErrors "reddit-assistant/pkg/errors"
)

// SummarizePostAndComments summarizes a thread with its comments ordered by sort.
// Records are cached per URL and sort; a cached record is returned unchanged.
func (s *Summarizer) SummarizePostAndComments(ctx context.Context, url string, sort model.CommentSort) (model.SummaryRecord, error) {
	if sort == "" {
		sort = model.SortBest
	}

	key := cacheKey(url, sort)
	if cached, ok := s.cache.Get(key); ok {
		if rec, ok := cached.(model.SummaryRecord); ok {
			s.l.Debugf(ctx, "%s: cache hit for %s", LogPrefixSummarizePostAndComments, key)
			return rec, nil
		}
	}

	s.l.Infof(ctx, "%s: fetching %s sorted by %s", LogPrefixSummarizePostAndComments, url, sort)
	thread, err := s.fetcher.FetchThread(ctx, url, sort)
	if err != nil {
		return model.SummaryRecord{}, err
	}

	postContent := fmt.Sprintf(PostContentTemplate, thread.Title, thread.Content)
	postSummary, err := s.llm.Generate(ctx, PromptPostSummary, postContent, PostSummaryMaxTokens, Temperature)
	if err != nil {
		return model.SummaryRecord{}, pkgErrors.NewLLMError(LogPrefixSummarizePostAndComments, err)
	}

	rec := model.SummaryRecord{
		Sort:         sort,
		PostTitle:    thread.Title,
		PostContent:  thread.Content,
		Comments:     thread.Comments,
		CommentCount: len(thread.Comments),
	}

	if rec.CommentCount == 0 {
		s.l.Infof(ctx, "%s: %s has no comments", LogPrefixSummarizePostAndComments, url)
		rec.Summary = fmt.Sprintf(NoCommentsTemplate, postSummary)
		s.cache.Put(key, rec)
		return rec, nil
	}

	s.l.Infof(ctx, "%s: summarizing %d comments", LogPrefixSummarizePostAndComments, rec.CommentCount)
	commentSummary, err := s.llm.Generate(ctx,
		fmt.Sprintf(PromptCommentSummarySorted, rec.CommentCount, sort),
		strings.Join(thread.Comments, " "),
		CommentSummaryMaxTokens, Temperature)
	if err != nil {
		return model.SummaryRecord{}, pkgErrors.NewLLMError(LogPrefixSummarizePostAndComments, err)
	}

	rec.Summary = fmt.Sprintf(SummaryTemplate, postSummary, rec.CommentCount, commentSummary)
	s.cache.Put(key, rec)
	return rec, nil
}

// SummarizeByTitle summarizes the overview post whose title matches exactly, ignoring case.
// An unknown title is reported as an unresolved intent. Results are not cached.
func (s *Summarizer) SummarizeByTitle(ctx context.Context, overview []model.OverviewPost, title string) (string, error) {
	var post *model.OverviewPost
	for i := range overview {
		if strings.EqualFold(overview[i].Title, title) {
			post = &overview[i]
			break
		}
	}
	if post == nil {
		return "", pkgErrors.NewIntentUnresolved(fmt.Sprintf(MsgPostTitleNotFoundTmpl, title))
	}

	postContent := fmt.Sprintf(PostContentTemplate, post.Title, post.Content)
	postSummary, err := s.llm.Generate(ctx, PromptPostSummary, postContent, PostSummaryMaxTokens, Temperature)
	if err != nil {
		return "", pkgErrors.NewLLMError(LogPrefixSummarizeByTitle, err)
	}

	if len(post.Comments) == 0 {
		return fmt.Sprintf(NoCommentsTemplate, postSummary), nil
	}

	commentSummary, err := s.llm.Generate(ctx,
		fmt.Sprintf(PromptCommentSummary, len(post.Comments)),
		strings.Join(post.Comments, " "),
		CommentSummaryMaxTokens, Temperature)
	if err != nil {
		return "", pkgErrors.NewLLMError(LogPrefixSummarizeByTitle, err)
	}

	return fmt.Sprintf(SummaryByTitleTemplate, postSummary, len(post.Comments), commentSummary), nil
}
