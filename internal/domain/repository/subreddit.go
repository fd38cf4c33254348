package repository

import (
	"CommunityOracle/internal/domain/schema"
	"context"
)

type SubredditCache interface {
	Get(ctx context.Context, subredditID string) (schema.SubredditInfo, bool, error)
	Set(ctx context.Context, info schema.SubredditInfo) error
}

// SubredditDirectory looks up current subreddit facts and rules from the
// external directory service. Lookup is by display name.
type SubredditDirectory interface {
	Lookup(ctx context.Context, name string) (schema.SubredditInfo, error)
}
