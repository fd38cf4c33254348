package repository

import (
	"CommunityOracle/internal/domain/schema"
	"context"
)

type HistoryRepository interface {
	AppendQuestion(ctx context.Context, rec schema.QuestionRecord) error
	AppendAnswer(ctx context.Context, rec schema.AnswerRecord) error
	// RecentAnswers returns up to limit entries for the pair, newest first.
	// Individual records that expired or fail to decode are skipped, not errors.
	RecentAnswers(ctx context.Context, subredditID, userID string, limit int) ([]schema.HistoryEntry, error)
}
