package llm

import (
    "testing"

    openai "github.com/sashabaranov/go-openai"
)

func TestFromChat_ResolvesMessageContent(t *testing.T) {
    resp := openai.ChatCompletionResponse{
        Choices: []openai.ChatCompletionChoice{
            {Message: openai.ChatCompletionMessage{Content: "  hello  "}},
        },
    }
    gen, ok := FromChat(resp)
    if !ok {
        t.Fatalf("expected a generation")
    }
    if gen.Field != FieldMessageContent {
        t.Fatalf("expected field %q, got %q", FieldMessageContent, gen.Field)
    }
    if gen.Value != "hello" {
        t.Fatalf("expected trimmed value, got %q", gen.Value)
    }
}

func TestFromChat_EmptyChoices(t *testing.T) {
    if _, ok := FromChat(openai.ChatCompletionResponse{}); ok {
        t.Fatalf("expected no generation for empty choices")
    }
}

func TestFromChat_BlankContent(t *testing.T) {
    resp := openai.ChatCompletionResponse{
        Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "   "}}},
    }
    if _, ok := FromChat(resp); ok {
        t.Fatalf("expected no generation for blank content")
    }
}

func TestFromCompletion_ResolvesTextField(t *testing.T) {
    resp := openai.CompletionResponse{
        Choices: []openai.CompletionChoice{{Text: "7\n"}},
    }
    gen, ok := FromCompletion(resp)
    if !ok {
        t.Fatalf("expected a generation")
    }
    if gen.Field != FieldText {
        t.Fatalf("expected field %q, got %q", FieldText, gen.Field)
    }
    if gen.Value != "7" {
        t.Fatalf("expected trimmed value, got %q", gen.Value)
    }
}
