package entity

// ChatRequest is the body of POST /chat. SessionID is accepted for
// caller-side correlation and is only echoed into logs.
type ChatRequest struct {
	Message      string `json:"message"`
	UseWebsearch bool   `json:"use_websearch"`
	SessionID    string `json:"session_id,omitempty"`
}

// ChatSource describes one web source surfaced with a reply.
type ChatSource struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

// ChatResponse is the response of POST /chat and POST /chat/websearch.
type ChatResponse struct {
	Success           bool         `json:"success"`
	Response          string       `json:"response"`
	IsDiabetesRelated bool         `json:"is_diabetes_related"`
	WebsearchUsed     bool         `json:"websearch_used"`
	Sources           []ChatSource `json:"sources"`
	ResponseTimeMs    int64        `json:"response_time_ms"`
	Model             string       `json:"model"`
}

// TopicsResponse is the static catalog served by GET /topics.
type TopicsResponse struct {
	SupportedTopics []string `json:"supported_topics"`
	SampleQuestions []string `json:"sample_questions"`
}

// SearchResult is one hit from a web search engine. Content is only
// populated when page text was fetched for prompt enrichment.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
	Content string `json:"-"`
}

// SearchResponse is the response of GET /search.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}
