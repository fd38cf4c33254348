package schema

import "time"

// RequestContext carries the identity supplied by the platform gateway.
// It is trusted as-is; the service does no authentication of its own.
type RequestContext struct {
	SubredditID   string
	SubredditName string
	UserID        string
}

type QuestionRecord struct {
	SubredditID string    `json:"subreddit_id"`
	UserID      string    `json:"user_id"`
	Question    string    `json:"question"`
	CreatedAt   time.Time `json:"created_at"`
}

type AnswerRecord struct {
	SubredditID   string    `json:"subreddit_id"`
	UserID        string    `json:"user_id"`
	Question      string    `json:"question"`
	Answer        string    `json:"answer"`
	SubredditName string    `json:"subreddit_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// HistoryEntry is one resolved ask as returned to the client.
// Timestamp is unix milliseconds, taken from the stored record key.
type HistoryEntry struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp int64  `json:"timestamp"`
}

type AskResult struct {
	Answer        string
	SubredditName string
	Confidence    int
	MysticalLevel int
}
