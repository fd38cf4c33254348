package redisstate

import (
	"CommunityOracle/internal/domain/repository"
	"CommunityOracle/internal/domain/schema"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultHistoryTTL = 24 * time.Hour

const (
	questionKeyPrefix = "oracle:question:"
	answerKeyPrefix   = "oracle:answer:"
)

type HistoryRepo struct {
	client *redis.Client
	ttl    time.Duration

	// seq disambiguates records written within the same clock tick so
	// (subreddit, user, timestamp) keys never collide.
	seq atomic.Uint64
}

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

func NewHistoryRepo(client *redis.Client, ttl time.Duration) *HistoryRepo {
	if ttl <= 0 {
		ttl = defaultHistoryTTL
	}
	return &HistoryRepo{client: client, ttl: ttl}
}

type storedQuestion struct {
	SubredditID string `json:"subreddit_id"`
	UserID      string `json:"user_id"`
	Question    string `json:"question"`
	CreatedAt   int64  `json:"created_at"`
}

type storedAnswer struct {
	SubredditID   string `json:"subreddit_id"`
	UserID        string `json:"user_id"`
	Question      string `json:"question"`
	Answer        string `json:"answer"`
	SubredditName string `json:"subreddit_name,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

func (r *HistoryRepo) AppendQuestion(ctx context.Context, rec schema.QuestionRecord) error {
	b, err := json.Marshal(storedQuestion{
		SubredditID: rec.SubredditID,
		UserID:      rec.UserID,
		Question:    rec.Question,
		CreatedAt:   rec.CreatedAt.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("encode question record: %w", err)
	}
	key := r.recordKey(questionKeyPrefix, rec.SubredditID, rec.UserID, rec.CreatedAt)
	return r.client.Set(ctx, key, b, r.ttl).Err()
}

func (r *HistoryRepo) AppendAnswer(ctx context.Context, rec schema.AnswerRecord) error {
	b, err := json.Marshal(storedAnswer{
		SubredditID:   rec.SubredditID,
		UserID:        rec.UserID,
		Question:      rec.Question,
		Answer:        rec.Answer,
		SubredditName: rec.SubredditName,
		CreatedAt:     rec.CreatedAt.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("encode answer record: %w", err)
	}
	key := r.recordKey(answerKeyPrefix, rec.SubredditID, rec.UserID, rec.CreatedAt)
	return r.client.Set(ctx, key, b, r.ttl).Err()
}

func (r *HistoryRepo) RecentAnswers(ctx context.Context, subredditID, userID string, limit int) ([]schema.HistoryEntry, error) {
	if limit <= 0 {
		return []schema.HistoryEntry{}, nil
	}

	pattern := fmt.Sprintf("%s%s:%s:*", answerKeyPrefix, subredditID, userID)
	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, fmt.Errorf("scan answer records: %w", err)
	}

	type keyedEntry struct {
		entry schema.HistoryEntry
		nano  int64
		seq   uint64
	}

	found := make([]keyedEntry, 0, len(keys))
	for _, key := range keys {
		nano, seq, ok := parseRecordKey(key)
		if !ok {
			continue
		}
		v, err := r.client.Get(ctx, key).Result()
		if err != nil {
			// expired between scan and read, or transient; skip
			continue
		}
		var rec storedAnswer
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			continue
		}
		found = append(found, keyedEntry{
			entry: schema.HistoryEntry{
				Question:  rec.Question,
				Answer:    rec.Answer,
				Timestamp: nano / int64(time.Millisecond),
			},
			nano: nano,
			seq:  seq,
		})
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].nano != found[j].nano {
			return found[i].nano > found[j].nano
		}
		return found[i].seq > found[j].seq
	})
	if len(found) > limit {
		found = found[:limit]
	}

	entries := make([]schema.HistoryEntry, 0, len(found))
	for _, f := range found {
		entries = append(entries, f.entry)
	}
	return entries, nil
}

func (r *HistoryRepo) recordKey(prefix, subredditID, userID string, at time.Time) string {
	return fmt.Sprintf("%s%s:%s:%d-%d", prefix, subredditID, userID, at.UnixNano(), r.seq.Add(1))
}

// parseRecordKey extracts the "<unixnano>-<seq>" suffix of a record key.
func parseRecordKey(key string) (nano int64, seq uint64, ok bool) {
	idx := strings.LastIndexByte(key, ':')
	if idx < 0 {
		return 0, 0, false
	}
	parts := strings.SplitN(key[idx+1:], "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	nano, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	seq, err = strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return nano, seq, true
}
