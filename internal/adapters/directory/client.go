package directory

import (
	"CommunityOracle/internal/domain/errorz"
	"CommunityOracle/internal/domain/repository"
	"CommunityOracle/internal/domain/schema"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 5 * time.Second

// Client talks to the external community directory over HTTP. Callers treat
// it as a soft dependency; any error here means "metadata unavailable".
type Client struct {
	baseURL string
	http    *http.Client
}

var _ repository.SubredditDirectory = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type aboutPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Subscribers  int    `json:"subscribers"`
	FlairEnabled bool   `json:"flair_enabled"`
}

type rulePayload struct {
	ShortName       string `json:"short_name"`
	ViolationReason string `json:"violation_reason"`
	Description     string `json:"description"`
}

type rulesPayload struct {
	Rules []rulePayload `json:"rules"`
}

func (c *Client) Lookup(ctx context.Context, name string) (schema.SubredditInfo, error) {
	var about aboutPayload
	if err := c.getJSON(ctx, fmt.Sprintf("/r/%s/about", url.PathEscape(name)), &about); err != nil {
		return schema.SubredditInfo{}, fmt.Errorf("fetch subreddit %q: %w", name, err)
	}

	var rules rulesPayload
	if err := c.getJSON(ctx, fmt.Sprintf("/r/%s/rules", url.PathEscape(name)), &rules); err != nil {
		return schema.SubredditInfo{}, fmt.Errorf("fetch rules for %q: %w", name, err)
	}

	info := schema.SubredditInfo{
		ID:           about.ID,
		Name:         about.Name,
		Description:  about.Description,
		Subscribers:  about.Subscribers,
		FlairEnabled: about.FlairEnabled,
	}
	if info.Name == "" {
		info.Name = name
	}
	for _, r := range rules.Rules {
		info.Rules = append(info.Rules, normalizeRule(r))
	}
	return info, nil
}

// normalizeRule fills missing short names from the violation reason, then
// the literal "Rule"; a missing description stays empty.
func normalizeRule(p rulePayload) schema.SubredditRule {
	name := strings.TrimSpace(p.ShortName)
	if name == "" {
		name = strings.TrimSpace(p.ViolationReason)
	}
	if name == "" {
		name = "Rule"
	}
	return schema.SubredditRule{ShortName: name, Description: p.Description}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errorz.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
