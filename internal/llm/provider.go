package llm

import (
    "context"
    "strings"

    openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal interface needed by core logic to call a generative
// backend. It mirrors the two go-openai entry points used in this codebase so
// that any OpenAI-compatible or local server can be adapted: chat completions
// for modern backends, legacy completions for servers that only expose
// /v1/completions.
type Client interface {
    CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
    CreateCompletion(ctx context.Context, request openai.CompletionRequest) (openai.CompletionResponse, error)
}

// ModelLister is an optional capability that allows listing available models.
// Providers that do not support this can omit it; callers should use a type
// assertion to detect availability.
type ModelLister interface {
    ListModels(ctx context.Context) (openai.ModelsList, error)
}

// OpenAIProvider adapts *openai.Client to the Client/ModelLister interfaces.
type OpenAIProvider struct {
    Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
    return p.Inner.CreateChatCompletion(ctx, request)
}

func (p *OpenAIProvider) CreateCompletion(ctx context.Context, request openai.CompletionRequest) (openai.CompletionResponse, error) {
    return p.Inner.CreateCompletion(ctx, request)
}

func (p *OpenAIProvider) ListModels(ctx context.Context) (openai.ModelsList, error) {
    return p.Inner.ListModels(ctx)
}

// Response field names carried by Generation. Chat backends put the
// continuation in the choice's message content; legacy completion backends
// put it in the choice's text field.
const (
    FieldMessageContent = "message.content"
    FieldText           = "text"
)

// Generation is a model's generated continuation, tagged with the response
// field that carried it. The field is resolved exactly once here so callers
// never probe alternate field names ad hoc.
type Generation struct {
    Field string
    Value string
}

// FromChat resolves the first choice of a chat completion response. The
// second return is false when the response has no usable continuation.
func FromChat(resp openai.ChatCompletionResponse) (Generation, bool) {
    if len(resp.Choices) == 0 {
        return Generation{}, false
    }
    v := strings.TrimSpace(resp.Choices[0].Message.Content)
    if v == "" {
        return Generation{}, false
    }
    return Generation{Field: FieldMessageContent, Value: v}, true
}

// FromCompletion resolves the first choice of a legacy completion response.
func FromCompletion(resp openai.CompletionResponse) (Generation, bool) {
    if len(resp.Choices) == 0 {
        return Generation{}, false
    }
    v := strings.TrimSpace(resp.Choices[0].Text)
    if v == "" {
        return Generation{}, false
    }
    return Generation{Field: FieldText, Value: v}, true
}
