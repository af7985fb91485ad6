package backend

import (
    "context"
    "errors"
    "strings"
    "sync"
    "time"

    "github.com/rs/zerolog/log"
    openai "github.com/sashabaranov/go-openai"

    "github.com/vjoshi253/digestbot/internal/llm"
)

// ErrNoBackend is returned when a resolver has no candidates at all.
var ErrNoBackend = errors.New("no inference backend configured")

// DefaultProbeTimeout bounds each reachability probe.
const DefaultProbeTimeout = 5 * time.Second

// Endpoint is one candidate OpenAI-compatible inference server. An empty
// BaseURL means the go-openai default.
type Endpoint struct {
    Name    string
    BaseURL string
    APIKey  string
}

// Resolver picks the inference endpoint for the rest of the process. The
// candidates are ordered by preference (accelerator-backed server first);
// each is probed once with ListModels and the first reachable one wins. The
// final candidate is accepted even when its probe fails, so a run can still
// proceed against it. Resolution happens once and the outcome is memoized;
// concurrent callers are safe behind the sync.Once.
type Resolver struct {
    Candidates   []Endpoint
    ProbeTimeout time.Duration
    // NewLister builds the probe client for an endpoint. Nil means the
    // default go-openai client; tests inject fakes.
    NewLister func(Endpoint) llm.ModelLister

    once     sync.Once
    resolved Endpoint
    err      error
}

// Resolve returns the selected endpoint, computing the selection on first
// call and reusing it afterwards.
func (r *Resolver) Resolve(ctx context.Context) (Endpoint, error) {
    r.once.Do(func() {
        r.resolved, r.err = r.resolve(ctx)
    })
    return r.resolved, r.err
}

func (r *Resolver) resolve(ctx context.Context) (Endpoint, error) {
    if len(r.Candidates) == 0 {
        return Endpoint{}, ErrNoBackend
    }
    timeout := r.ProbeTimeout
    if timeout <= 0 {
        timeout = DefaultProbeTimeout
    }
    for i, ep := range r.Candidates {
        probe := r.newLister(ep)
        pctx, cancel := context.WithTimeout(ctx, timeout)
        _, err := probe.ListModels(pctx)
        cancel()
        if err == nil {
            log.Info().Str("component", "backend").Str("endpoint", ep.Name).Msg("inference backend selected")
            return ep, nil
        }
        if i == len(r.Candidates)-1 {
            log.Warn().Err(err).Str("component", "backend").Str("endpoint", ep.Name).Msg("probe failed; using final candidate anyway")
            return ep, nil
        }
        log.Warn().Err(err).Str("component", "backend").Str("endpoint", ep.Name).Msg("probe failed; trying next candidate")
    }
    return Endpoint{}, ErrNoBackend
}

func (r *Resolver) newLister(ep Endpoint) llm.ModelLister {
    if r.NewLister != nil {
        return r.NewLister(ep)
    }
    return &llm.OpenAIProvider{Inner: NewOpenAIClient(ep)}
}

// NewOpenAIClient constructs a go-openai client pointed at the endpoint.
func NewOpenAIClient(ep Endpoint) *openai.Client {
    cfg := openai.DefaultConfig(ep.APIKey)
    if strings.TrimSpace(ep.BaseURL) != "" {
        cfg.BaseURL = ep.BaseURL
    }
    return openai.NewClientWithConfig(cfg)
}
