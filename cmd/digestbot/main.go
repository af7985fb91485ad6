package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vjoshi253/digestbot/internal/app"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	var (
		configPath   string
		articleURL   string
		interest     string
		userType     string
		llmBase      string
		llmFallback  string
		llmKey       string
		summaryModel string
		ratingModel  string
		userAgent    string
		fetchTimeout time.Duration
		logFile      string
		verbose      bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("DIGESTBOT_CONFIG"), "Path to optional YAML/JSON config file")
	flag.StringVar(&articleURL, "url", envOr("ARTICLE_URL", app.DefaultURL), "Article URL to fetch")
	flag.StringVar(&interest, "interest", envOr("READER_INTEREST", app.DefaultInterest), "Reader interest area")
	flag.StringVar(&userType, "user.type", envOr("READER_TYPE", app.DefaultUserType), "Reader type: 'Power User' or 'Basic User'")
	flag.StringVar(&llmBase, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL (accelerator-backed server)")
	flag.StringVar(&llmFallback, "llm.fallback", os.Getenv("LLM_FALLBACK_URL"), "Fallback OpenAI-compatible base URL")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.StringVar(&summaryModel, "model.summary", envOr("SUMMARY_MODEL", app.DefaultSummaryModel), "Summarization model name")
	flag.StringVar(&ratingModel, "model.rating", envOr("RATING_MODEL", app.DefaultRatingModel), "Rating model name")
	flag.StringVar(&userAgent, "ua", app.DefaultUserAgent, "User-Agent for article fetching")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", 10*time.Second, "Fetch timeout")
	flag.StringVar(&logFile, "log.file", envOr("DIGESTBOT_LOG", app.DefaultLogFile), "Append-mode log file path")
	flag.BoolVar(&verbose, "v", false, "Also log to stderr")
	flag.Parse()

	cfg := app.Config{
		URL:            articleURL,
		Interest:       interest,
		UserType:       userType,
		LLMBaseURL:     llmBase,
		LLMFallbackURL: llmFallback,
		LLMAPIKey:      llmKey,
		SummaryModel:   summaryModel,
		RatingModel:    ratingModel,
		UserAgent:      userAgent,
		FetchTimeout:   fetchTimeout,
		LogFile:        logFile,
		Verbose:        verbose,
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config %s: %v\n", configPath, err)
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	// Logging setup: append-mode file sink, console mirror when verbose.
	zerolog.TimeFieldFormat = time.RFC3339
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file %s: %v\n", cfg.LogFile, err)
		os.Exit(1)
	}
	defer f.Close()
	var w io.Writer = f
	if cfg.Verbose {
		w = zerolog.MultiLevelWriter(f, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	res := a.Run(ctx)
	// Success paths only; degraded fields stay silent at the console and are
	// visible in the log sink.
	if res.Title != "" {
		fmt.Println("Title:", res.Title)
	}
	if res.Summary != "" {
		fmt.Println("Summary:", res.Summary)
	}
	if res.HasRating {
		fmt.Println("Rating:", res.Rating)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
