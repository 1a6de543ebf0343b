package http

const (
	LogPrefixChat          = "internal.chat.delivery.http.Chat"
	LogPrefixOverview      = "internal.chat.delivery.http.Overview"
	LogPrefixSummarizePost = "internal.chat.delivery.http.SummarizePost"
)
