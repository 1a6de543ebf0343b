package usecase

const (
	LogPrefixChat          = "internal.chat.usecase.Chat"
	LogPrefixOverview      = "internal.chat.usecase.Overview"
	LogPrefixSummarizePost = "internal.chat.usecase.SummarizePost"
	LogPrefixClassify      = "internal.chat.usecase.Classify"

	DefaultOverviewPosts = 20
)
