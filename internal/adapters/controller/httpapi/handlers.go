package httpapi

import (
	"CommunityOracle/internal/domain/errorz"
	"CommunityOracle/internal/domain/schema"
	"CommunityOracle/internal/domain/service/oracle"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

type Handler struct {
	oracle       *oracle.Service
	ping         func(ctx context.Context) error
	historyLimit int
	log          *slog.Logger
}

func NewHandler(oracleSvc *oracle.Service, ping func(ctx context.Context) error, historyLimit int, log *slog.Logger) *Handler {
	if historyLimit <= 0 {
		historyLimit = 10
	}
	return &Handler{oracle: oracleSvc, ping: ping, historyLimit: historyLimit, log: log}
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Status        string `json:"status"`
	Answer        string `json:"answer"`
	Subreddit     string `json:"subreddit,omitempty"`
	Animation     string `json:"animation"`
	Confidence    int    `json:"confidence"`
	MysticalLevel int    `json:"mysticalLevel"`
}

type subredditResponse struct {
	Status    string                `json:"status"`
	Subreddit *schema.SubredditInfo `json:"subreddit,omitempty"`
}

type historyResponse struct {
	Status  string                `json:"status"`
	History []schema.HistoryEntry `json:"history"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Message: "invalid request body"})
		return
	}

	res, err := h.oracle.Ask(r.Context(), requestContext(r), req.Question)
	if err != nil {
		h.respondOracleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, askResponse{
		Status:        "success",
		Answer:        res.Answer,
		Subreddit:     res.SubredditName,
		Animation:     "reveal",
		Confidence:    res.Confidence,
		MysticalLevel: res.MysticalLevel,
	})
}

func (h *Handler) Subreddit(w http.ResponseWriter, r *http.Request) {
	info, err := h.oracle.Subreddit(r.Context(), requestContext(r))
	if err != nil {
		h.respondOracleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, subredditResponse{Status: "success", Subreddit: info})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.oracle.History(r.Context(), requestContext(r), h.historyLimit)
	if err != nil {
		h.respondOracleError(w, err)
		return
	}
	if entries == nil {
		entries = []schema.HistoryEntry{}
	}
	respondJSON(w, http.StatusOK, historyResponse{Status: "success", History: entries})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "reason": "store unavailable"})
			return
		}
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) respondOracleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errorz.ErrNoPost),
		errors.Is(err, errorz.ErrNotLoggedIn),
		errors.Is(err, errorz.ErrEmptyQuestion):
		respondJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Message: err.Error()})
	default:
		h.log.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Status: "error", Message: "internal error"})
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
