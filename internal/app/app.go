package app

import (
    "context"
    "net/url"
    "strings"

    "github.com/rs/zerolog/log"

    "github.com/vjoshi253/digestbot/internal/backend"
    "github.com/vjoshi253/digestbot/internal/budget"
    "github.com/vjoshi253/digestbot/internal/evaluate"
    "github.com/vjoshi253/digestbot/internal/extract"
    "github.com/vjoshi253/digestbot/internal/fetch"
    "github.com/vjoshi253/digestbot/internal/llm"
    "github.com/vjoshi253/digestbot/internal/summarize"
)

// Result is the user-visible outcome of one pipeline run. Empty fields mean
// the corresponding stage degraded; only non-empty fields get printed.
type Result struct {
    Title   string
    Summary string
    Rating  int
    // HasRating distinguishes a real rating from absence. No default value
    // is ever substituted when the model output has no usable number.
    HasRating bool
}

// App wires one article pipeline: fetch, extract, summarize, rate.
type App struct {
    cfg       Config
    client    llm.Client
    extractor extract.Extractor
    fetcher   *fetch.Client
}

// New resolves the inference backend once and constructs the pipeline
// components around the shared client.
func New(ctx context.Context, cfg Config) (*App, error) {
    resolver := &backend.Resolver{Candidates: cfg.backendCandidates()}
    ep, err := resolver.Resolve(ctx)
    if err != nil {
        return nil, err
    }
    return &App{
        cfg:       cfg,
        client:    &llm.OpenAIProvider{Inner: backend.NewOpenAIClient(ep)},
        extractor: extract.ReadabilityExtractor{},
        fetcher: &fetch.Client{
            UserAgent: cfg.UserAgent,
            Timeout:   cfg.FetchTimeout,
        },
    }, nil
}

func (cfg Config) backendCandidates() []backend.Endpoint {
    var out []backend.Endpoint
    if strings.TrimSpace(cfg.LLMBaseURL) != "" {
        out = append(out, backend.Endpoint{Name: "primary", BaseURL: cfg.LLMBaseURL, APIKey: cfg.LLMAPIKey})
    }
    if strings.TrimSpace(cfg.LLMFallbackURL) != "" {
        out = append(out, backend.Endpoint{Name: "fallback", BaseURL: cfg.LLMFallbackURL, APIKey: cfg.LLMAPIKey})
    }
    if len(out) == 0 {
        // No explicit endpoint configured: stock go-openai default.
        out = append(out, backend.Endpoint{Name: "default", APIKey: cfg.LLMAPIKey})
    }
    return out
}

// Run executes one sequential pipeline pass. Every stage failure degrades to
// an empty or absent field rather than aborting: a fetch or content failure
// short-circuits summarization and rating entirely, while a missing title
// blocks nothing. Run itself never fails; failures land in the log sink.
func (a *App) Run(ctx context.Context) Result {
    log.Info().Str("component", "app").Str("url", a.cfg.URL).Msg("starting article pipeline")

    raw, _, err := a.fetcher.Get(ctx, a.cfg.URL)
    if err != nil {
        log.Error().Err(err).Str("component", "app").Str("url", a.cfg.URL).Msg("fetch failed")
        return Result{}
    }
    log.Info().Str("component", "app").Str("url", a.cfg.URL).Int("bytes", len(raw)).Msg("page fetched")

    pageURL, _ := url.Parse(a.cfg.URL)
    article := a.extractor.Extract(raw, pageURL)
    res := Result{Title: article.Title}
    if strings.TrimSpace(article.Content) == "" {
        log.Warn().Str("component", "app").Str("url", a.cfg.URL).Msg("no readable content; skipping summary and rating")
        return res
    }

    maxWords, minWords := budget.Bounds(article.Content, budget.Options{})
    if maxWords > 0 {
        s := &summarize.Summarizer{Client: a.client, Model: a.cfg.SummaryModel}
        summary, err := s.Summarize(ctx, summarize.Request{Text: article.Content, MaxWords: maxWords, MinWords: minWords})
        if err != nil {
            log.Error().Err(err).Str("component", "app").Str("url", a.cfg.URL).Msg("summarization failed")
        } else {
            res.Summary = summary
            log.Info().Str("component", "app").Str("url", a.cfg.URL).Msg("page summarized")
        }
    }

    ev := &evaluate.Evaluator{Client: a.client, Model: a.cfg.RatingModel}
    rating, err := ev.Evaluate(ctx, article.Title, article.Content, a.cfg.Interest, a.cfg.UserType)
    if err == nil {
        res.Rating = rating
        res.HasRating = true
    }
    return res
}
