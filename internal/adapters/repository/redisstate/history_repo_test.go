package redisstate

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CommunityOracle/internal/domain/schema"
)

func newTestRepo(t *testing.T) (*HistoryRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewHistoryRepo(client, 24*time.Hour), mr
}

func answerRecord(question, answer string, at time.Time) schema.AnswerRecord {
	return schema.AnswerRecord{
		SubredditID:   "t5_abc",
		UserID:        "t2_xyz",
		Question:      question,
		Answer:        answer,
		SubredditName: "golang",
		CreatedAt:     at,
	}
}

func TestAnswerRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.AppendAnswer(ctx, answerRecord("Will it rain?", "Signs point to yes.", at)))

	entries, err := repo.RecentAnswers(ctx, "t5_abc", "t2_xyz", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Will it rain?", entries[0].Question)
	assert.Equal(t, "Signs point to yes.", entries[0].Answer)
	assert.Equal(t, at.UnixMilli(), entries[0].Timestamp)
}

func TestRecentAnswersLimitAndOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 15; i++ {
		at := base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.AppendAnswer(ctx, answerRecord(fmt.Sprintf("q%d", i), "Yes.", at)))
	}

	entries, err := repo.RecentAnswers(ctx, "t5_abc", "t2_xyz", 10)
	require.NoError(t, err)
	require.Len(t, entries, 10)
	assert.Equal(t, "q14", entries[0].Question)
	assert.Equal(t, "q5", entries[9].Question)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Timestamp, entries[i].Timestamp)
	}
}

func TestSameTickAppendsDoNotCollide(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.AppendAnswer(ctx, answerRecord("first", "Yes.", at)))
	require.NoError(t, repo.AppendAnswer(ctx, answerRecord("second", "No.", at)))

	entries, err := repo.RecentAnswers(ctx, "t5_abc", "t2_xyz", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// same tick: the later append wins the tie-break
	assert.Equal(t, "second", entries[0].Question)
	assert.Equal(t, "first", entries[1].Question)
}

func TestAppendSetsRetentionTTL(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.AppendQuestion(ctx, schema.QuestionRecord{
		SubredditID: "t5_abc", UserID: "t2_xyz", Question: "Will it rain?", CreatedAt: at,
	}))
	require.NoError(t, repo.AppendAnswer(ctx, answerRecord("Will it rain?", "Yes.", at)))

	for _, key := range mr.Keys() {
		assert.Equal(t, 24*time.Hour, mr.TTL(key), "key %s", key)
	}
}

func TestExpiredRecordsAreGone(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AppendAnswer(ctx, answerRecord("Will it rain?", "Yes.", time.Now())))
	mr.FastForward(25 * time.Hour)

	entries, err := repo.RecentAnswers(ctx, "t5_abc", "t2_xyz", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMalformedRecordSkipped(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.AppendAnswer(ctx, answerRecord("Will it rain?", "Yes.", at)))
	require.NoError(t, mr.Set(fmt.Sprintf("%st5_abc:t2_xyz:%d-99", answerKeyPrefix, at.Add(time.Second).UnixNano()), "{not json"))

	entries, err := repo.RecentAnswers(ctx, "t5_abc", "t2_xyz", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Will it rain?", entries[0].Question)
}

func TestQuestionNamespaceIsSeparate(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.AppendQuestion(ctx, schema.QuestionRecord{
		SubredditID: "t5_abc", UserID: "t2_xyz", Question: "Will it rain?", CreatedAt: at,
	}))

	entries, err := repo.RecentAnswers(ctx, "t5_abc", "t2_xyz", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecentAnswersScopedToPair(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.AppendAnswer(ctx, answerRecord("mine", "Yes.", at)))
	other := answerRecord("theirs", "No.", at)
	other.UserID = "t2_other"
	require.NoError(t, repo.AppendAnswer(ctx, other))

	entries, err := repo.RecentAnswers(ctx, "t5_abc", "t2_xyz", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "mine", entries[0].Question)
}
