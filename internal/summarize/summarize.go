package summarize

import (
    "context"
    "errors"
    "fmt"
    "math"
    "strings"

    openai "github.com/sashabaranov/go-openai"

    "github.com/vjoshi253/digestbot/internal/budget"
    "github.com/vjoshi253/digestbot/internal/llm"
)

// ErrEmptyCompletion indicates the model returned no usable summary text.
var ErrEmptyCompletion = errors.New("model returned no summary")

// Request bundles the text to summarize with its budgeted length window.
// Callers derive the window from budget.Bounds, so MinWords < MaxWords holds
// whenever MaxWords > 0.
type Request struct {
    Text     string
    MaxWords int
    MinWords int
}

// Summarizer produces an abstractive summary through an OpenAI-compatible
// chat model with deterministic decoding. One attempt per call; any failure
// is returned to the caller, never retried here.
type Summarizer struct {
    Client llm.Client
    Model  string
}

const systemMessage = "You are a news editor who writes faithful abstractive summaries. Use ONLY the provided article text. Do not add facts, opinions, or sources."

// Summarize requests a single summary whose length falls inside the request
// window. The output token cap is derived from the word budget so the model
// cannot run far past the window.
func (s *Summarizer) Summarize(ctx context.Context, req Request) (string, error) {
    if s.Client == nil || strings.TrimSpace(s.Model) == "" {
        return "", errors.New("summarizer not configured")
    }
    if req.MaxWords <= 0 || strings.TrimSpace(req.Text) == "" {
        return "", ErrEmptyCompletion
    }
    chat := openai.ChatCompletionRequest{
        Model: s.Model,
        Messages: []openai.ChatCompletionMessage{
            {Role: openai.ChatMessageRoleSystem, Content: systemMessage},
            {Role: openai.ChatMessageRoleUser, Content: userMessage(req)},
        },
        // go-openai omits a zero temperature from the request body, so send
        // the smallest representable value to pin decoding.
        Temperature: math.SmallestNonzeroFloat32,
        N:           1,
        MaxTokens:   budget.EstimateTokensFromWords(req.MaxWords),
    }
    resp, err := s.Client.CreateChatCompletion(ctx, chat)
    if err != nil {
        return "", fmt.Errorf("summarization call: %w", err)
    }
    gen, ok := llm.FromChat(resp)
    if !ok {
        return "", ErrEmptyCompletion
    }
    return gen.Value, nil
}

func userMessage(req Request) string {
    var sb strings.Builder
    fmt.Fprintf(&sb, "Summarize the following article in %d to %d words.", req.MinWords, req.MaxWords)
    sb.WriteString(" Output only the summary.\n\nArticle:\n")
    sb.WriteString(req.Text)
    return sb.String()
}
