package evaluate

import (
    "context"
    "errors"
    "fmt"
    "math"
    "regexp"
    "strconv"
    "strings"

    "github.com/rs/zerolog/log"
    openai "github.com/sashabaranov/go-openai"

    "github.com/vjoshi253/digestbot/internal/llm"
)

// ErrNoRating indicates the model output contained no standalone 1-10.
// Callers treat it as absence; no default rating is ever substituted.
var ErrNoRating = errors.New("no rating in model output")

var errEmptyGeneration = errors.New("model returned no continuation")

// ratingPattern matches the first standalone 1-10. The word boundaries keep
// digits embedded in longer numbers (a "10" inside "100") from matching.
var ratingPattern = regexp.MustCompile(`\b(10|[1-9])\b`)

const defaultMaxOutputTokens = 10

// Evaluator rates an article for a reader profile on a 1-10 integer scale
// using deterministic decoding with a short output cap.
type Evaluator struct {
    Client llm.Client
    Model  string
    // MaxOutputTokens caps the generated continuation. Zero means 10.
    MaxOutputTokens int
}

// BuildPrompt constructs the editorial rating instruction. Pure string
// formatting; the four fields are trimmed before interpolation.
func BuildPrompt(title, content, interest, userType string) string {
    var sb strings.Builder
    sb.WriteString("You are a senior news editor evaluating an article for a specific reader.\n")
    sb.WriteString("Rate the article strictly on a scale of 1 to 10 based on the following criteria:\n\n")
    sb.WriteString("- Clarity and relevance of the article\n")
    sb.WriteString("- The user's interest area\n")
    sb.WriteString("- The user's expertise level (Power User or Basic User)\n\n")
    sb.WriteString("Do NOT provide any explanation. Only output the rating as a single number (e.g., 7).\n\n")
    sb.WriteString("Guidelines:\n")
    sb.WriteString("- For a Power User, prioritize articles that are technical, in-depth, and impactful.\n")
    sb.WriteString("- For a Basic User, prioritize articles that are simple, clear, and essential for general awareness.\n\n")
    fmt.Fprintf(&sb, "Title: %s\n\n", strings.TrimSpace(title))
    fmt.Fprintf(&sb, "Article Content: %s\n\n", strings.TrimSpace(content))
    fmt.Fprintf(&sb, "User Interest: %s\n\n", strings.TrimSpace(interest))
    fmt.Fprintf(&sb, "User Type: %s\n", strings.TrimSpace(userType))
    return sb.String()
}

// Evaluate builds the rating prompt, invokes the model once, and extracts the
// first standalone 1-10 from the continuation. It returns ErrNoRating when no
// qualifying number exists and wraps any backend failure; failures are logged
// with title context here so callers only need to decide presence/absence.
func (e *Evaluator) Evaluate(ctx context.Context, title, content, interest, userType string) (int, error) {
    if e.Client == nil || strings.TrimSpace(e.Model) == "" {
        return 0, errors.New("evaluator not configured")
    }
    prompt := BuildPrompt(title, content, interest, userType)
    gen, err := e.generate(ctx, prompt)
    if err != nil {
        log.Error().Err(err).Str("component", "evaluate").Str("title", strings.TrimSpace(title)).Msg("rating generation failed")
        return 0, err
    }
    rating, err := ParseRating(gen, prompt)
    if err != nil {
        log.Error().Err(err).Str("component", "evaluate").Str("title", strings.TrimSpace(title)).Str("field", gen.Field).Msg("rating extraction failed")
        return 0, err
    }
    log.Info().Str("component", "evaluate").Str("title", strings.TrimSpace(title)).Int("rating", rating).Msg("article rated")
    return rating, nil
}

// generate tries the chat endpoint first and falls back once to the legacy
// completion endpoint for servers that only expose /v1/completions. The
// serving response is resolved into a tagged generation exactly once.
func (e *Evaluator) generate(ctx context.Context, prompt string) (llm.Generation, error) {
    maxTokens := e.MaxOutputTokens
    if maxTokens <= 0 {
        maxTokens = defaultMaxOutputTokens
    }
    chatResp, chatErr := e.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
        Model: e.Model,
        Messages: []openai.ChatCompletionMessage{
            {Role: openai.ChatMessageRoleUser, Content: prompt},
        },
        Temperature: math.SmallestNonzeroFloat32,
        N:           1,
        MaxTokens:   maxTokens,
    })
    if chatErr == nil {
        if gen, ok := llm.FromChat(chatResp); ok {
            return gen, nil
        }
    }

    compResp, compErr := e.Client.CreateCompletion(ctx, openai.CompletionRequest{
        Model:       e.Model,
        Prompt:      prompt,
        Temperature: math.SmallestNonzeroFloat32,
        N:           1,
        MaxTokens:   maxTokens,
    })
    if compErr != nil {
        if chatErr != nil {
            return llm.Generation{}, fmt.Errorf("rating call: %w", chatErr)
        }
        return llm.Generation{}, fmt.Errorf("rating call: %w", compErr)
    }
    gen, ok := llm.FromCompletion(compResp)
    if !ok {
        return llm.Generation{}, errEmptyGeneration
    }
    return gen, nil
}

// ParseRating extracts the first standalone 1-10 from a generation.
// Continuations served from the legacy "text" field echo the prompt, and the
// prompt itself contains digits (the "1 to 10" scale, article content), so a
// leading prompt prefix is stripped before matching on that path.
func ParseRating(gen llm.Generation, prompt string) (int, error) {
    out := gen.Value
    if gen.Field == llm.FieldText {
        out = strings.TrimSpace(strings.TrimPrefix(out, strings.TrimSpace(prompt)))
    }
    m := ratingPattern.FindString(out)
    if m == "" {
        return 0, ErrNoRating
    }
    n, err := strconv.Atoi(m)
    if err != nil {
        return 0, ErrNoRating
    }
    return n, nil
}
