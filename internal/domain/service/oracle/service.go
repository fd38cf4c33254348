package oracle

import (
	"CommunityOracle/internal/domain/errorz"
	"CommunityOracle/internal/domain/repository"
	"CommunityOracle/internal/domain/schema"
	"CommunityOracle/internal/domain/service/pool"
	"context"
	"log/slog"
	"strings"
	"time"
)

// UniformSource draws a uniformly distributed int in [0, n). It is injected
// so selection properties are testable.
type UniformSource func(n int) int

// InfoProvider resolves subreddit metadata, nil meaning unresolved.
type InfoProvider interface {
	Get(ctx context.Context, subredditID, name string) *schema.SubredditInfo
}

type Service struct {
	history repository.HistoryRepository
	info    InfoProvider
	rand    UniformSource
	now     func() time.Time
	log     *slog.Logger
}

func New(history repository.HistoryRepository, info InfoProvider, rand UniformSource, log *slog.Logger) *Service {
	return &Service{
		history: history,
		info:    info,
		rand:    rand,
		now:     time.Now,
		log:     log,
	}
}

// Ask runs one oracle request: validate, enrich, select, persist, respond.
// Persistence failures degrade history but never block the answer.
func (s *Service) Ask(ctx context.Context, rc schema.RequestContext, question string) (schema.AskResult, error) {
	if rc.SubredditID == "" {
		return schema.AskResult{}, errorz.ErrNoPost
	}
	if rc.UserID == "" {
		return schema.AskResult{}, errorz.ErrNotLoggedIn
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return schema.AskResult{}, errorz.ErrEmptyQuestion
	}

	info := s.info.Get(ctx, rc.SubredditID, rc.SubredditName)
	candidates := pool.Build(info, s.rand)
	answer := candidates[s.rand(len(candidates))]

	subredditName := ""
	if info != nil {
		subredditName = info.Name
	}

	now := s.now()
	if err := s.history.AppendQuestion(ctx, schema.QuestionRecord{
		SubredditID: rc.SubredditID,
		UserID:      rc.UserID,
		Question:    question,
		CreatedAt:   now,
	}); err != nil {
		s.log.Warn("question record not persisted", "subreddit_id", rc.SubredditID, "user_id", rc.UserID, "error", err)
	}
	if err := s.history.AppendAnswer(ctx, schema.AnswerRecord{
		SubredditID:   rc.SubredditID,
		UserID:        rc.UserID,
		Question:      question,
		Answer:        answer,
		SubredditName: subredditName,
		CreatedAt:     now,
	}); err != nil {
		s.log.Warn("answer record not persisted", "subreddit_id", rc.SubredditID, "user_id", rc.UserID, "error", err)
	}

	return schema.AskResult{
		Answer:        answer,
		SubredditName: subredditName,
		Confidence:    50 + s.rand(50),
		MysticalLevel: 1 + s.rand(10),
	}, nil
}

// History returns the caller's most recent asks, newest first.
func (s *Service) History(ctx context.Context, rc schema.RequestContext, limit int) ([]schema.HistoryEntry, error) {
	if rc.SubredditID == "" {
		return nil, errorz.ErrNoPost
	}
	if rc.UserID == "" {
		return nil, errorz.ErrNotLoggedIn
	}
	return s.history.RecentAnswers(ctx, rc.SubredditID, rc.UserID, limit)
}

// Subreddit returns the current metadata snapshot, nil when unresolved.
func (s *Service) Subreddit(ctx context.Context, rc schema.RequestContext) (*schema.SubredditInfo, error) {
	if rc.SubredditID == "" {
		return nil, errorz.ErrNoPost
	}
	return s.info.Get(ctx, rc.SubredditID, rc.SubredditName), nil
}
