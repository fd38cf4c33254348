package schema

type SubredditRule struct {
	ShortName   string `json:"short_name"`
	Description string `json:"description"`
}

type SubredditInfo struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Subscribers  int             `json:"subscribers,omitempty"`
	Rules        []SubredditRule `json:"rules,omitempty"`
	FlairEnabled bool            `json:"flair_enabled"`
}
