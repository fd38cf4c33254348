package subredditinfo

import (
	"CommunityOracle/internal/domain/repository"
	"CommunityOracle/internal/domain/schema"
	"context"
	"log/slog"
)

// Service resolves subreddit metadata cache-first. The directory is a soft
// dependency: every failure degrades to "no metadata" and is never returned
// to the caller.
type Service struct {
	cache     repository.SubredditCache
	directory repository.SubredditDirectory
	log       *slog.Logger
}

func New(cache repository.SubredditCache, directory repository.SubredditDirectory, log *slog.Logger) *Service {
	return &Service{cache: cache, directory: directory, log: log}
}

// Get returns the current metadata snapshot for the subreddit, or nil when
// it cannot be resolved. name is the gateway-supplied display name used for
// the directory lookup on a cache miss.
func (s *Service) Get(ctx context.Context, subredditID, name string) *schema.SubredditInfo {
	if subredditID == "" {
		return nil
	}

	cached, ok, err := s.cache.Get(ctx, subredditID)
	if err != nil {
		s.log.Warn("subreddit cache read failed", "subreddit_id", subredditID, "error", err)
	} else if ok {
		return &cached
	}

	if name == "" {
		return nil
	}

	info, err := s.directory.Lookup(ctx, name)
	if err != nil {
		s.log.Warn("subreddit directory lookup failed", "subreddit", name, "error", err)
		return nil
	}
	info.ID = subredditID

	if err := s.cache.Set(ctx, info); err != nil {
		s.log.Warn("subreddit cache write failed", "subreddit_id", subredditID, "error", err)
	}
	return &info
}
