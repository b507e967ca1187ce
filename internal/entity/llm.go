package entity

// Chat-completions wire format of the LLM provider (OpenAI compatible).

type LLMMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	LLMRoleSystem = "system"
	LLMRoleUser   = "user"
)

type LLMChatRequest struct {
	Model       string       `json:"model"`
	Messages    []LLMMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature float64      `json:"temperature,omitempty"`
}

type LLMChatChoice struct {
	Message LLMMessage `json:"message"`
}

type LLMChatResponse struct {
	Choices []LLMChatChoice `json:"choices"`
}
