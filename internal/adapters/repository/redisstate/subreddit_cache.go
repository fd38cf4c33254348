package redisstate

import (
	"CommunityOracle/internal/domain/repository"
	"CommunityOracle/internal/domain/schema"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = time.Hour

type SubredditCacheRepo struct {
	client *redis.Client
	ttl    time.Duration
}

var _ repository.SubredditCache = (*SubredditCacheRepo)(nil)

func NewSubredditCacheRepo(client *redis.Client, ttl time.Duration) *SubredditCacheRepo {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &SubredditCacheRepo{client: client, ttl: ttl}
}

func (r *SubredditCacheRepo) Get(ctx context.Context, subredditID string) (schema.SubredditInfo, bool, error) {
	v, err := r.client.Get(ctx, subredditKey(subredditID)).Result()
	if err == redis.Nil {
		return schema.SubredditInfo{}, false, nil
	}
	if err != nil {
		return schema.SubredditInfo{}, false, err
	}

	var info schema.SubredditInfo
	if err := json.Unmarshal([]byte(v), &info); err != nil {
		return schema.SubredditInfo{}, false, err
	}
	return info, true, nil
}

func (r *SubredditCacheRepo) Set(ctx context.Context, info schema.SubredditInfo) error {
	b, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, subredditKey(info.ID), b, r.ttl).Err()
}

func subredditKey(subredditID string) string {
	return fmt.Sprintf("oracle:subreddit:%s", subredditID)
}
