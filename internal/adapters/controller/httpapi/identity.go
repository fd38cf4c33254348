package httpapi

import (
	"CommunityOracle/internal/domain/schema"
	"net/http"
	"strings"
)

// Identity headers set by the platform gateway. Values are trusted as-is;
// authenticating them is the gateway's job.
const (
	headerSubredditID   = "X-Context-Subreddit-Id"
	headerSubredditName = "X-Context-Subreddit-Name"
	headerUserID        = "X-Context-User-Id"
)

func requestContext(r *http.Request) schema.RequestContext {
	return schema.RequestContext{
		SubredditID:   strings.TrimSpace(r.Header.Get(headerSubredditID)),
		SubredditName: strings.TrimSpace(r.Header.Get(headerSubredditName)),
		UserID:        strings.TrimSpace(r.Header.Get(headerUserID)),
	}
}
