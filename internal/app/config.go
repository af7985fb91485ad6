package app

import "time"

// Defaults reproduce the stock single-article run.
const (
    DefaultURL          = "https://www.utsa.edu/today/2025/07/story/AI-for-everyone-camp.html"
    DefaultInterest     = "Artificial Intelligence"
    DefaultUserType     = "Power User"
    DefaultSummaryModel = "facebook/bart-large-cnn"
    DefaultRatingModel  = "HuggingFaceTB/SmolLM3-3B"
    DefaultLogFile      = "digestbot.log"
    DefaultUserAgent    = "digestbot/1.0 (+https://github.com/vjoshi253/digestbot)"
)

// Config holds runtime configuration for one pipeline run.
type Config struct {
    // Article and reader profile
    URL      string
    Interest string
    UserType string

    // Inference backends, in preference order. An accelerator-backed server
    // goes in LLMBaseURL; LLMFallbackURL is tried when the primary is down.
    LLMBaseURL     string
    LLMFallbackURL string
    LLMAPIKey      string
    SummaryModel   string
    RatingModel    string

    // Fetching
    UserAgent    string
    FetchTimeout time.Duration

    // Behavior
    LogFile string
    Verbose bool
}
