package app

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"
    "time"

    yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to the flags.
type FileConfig struct {
    URL string `yaml:"url" json:"url"`

    Reader struct {
        Interest string `yaml:"interest" json:"interest"`
        UserType string `yaml:"userType" json:"userType"`
    } `yaml:"reader" json:"reader"`

    LLM struct {
        BaseURL      string `yaml:"base" json:"base"`
        FallbackURL  string `yaml:"fallback" json:"fallback"`
        APIKey       string `yaml:"key" json:"key"`
        SummaryModel string `yaml:"summaryModel" json:"summaryModel"`
        RatingModel  string `yaml:"ratingModel" json:"ratingModel"`
    } `yaml:"llm" json:"llm"`

    Fetch struct {
        UserAgent string        `yaml:"ua" json:"ua"`
        Timeout   time.Duration `yaml:"timeout" json:"timeout"`
    } `yaml:"fetch" json:"fetch"`

    Log struct {
        File string `yaml:"file" json:"file"`
    } `yaml:"log" json:"log"`

    Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that still hold their flag defaults or zero values. Flags should already
// have been parsed; this lets file config supply defaults while preserving
// explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil {
        return
    }
    if (cfg.URL == "" || cfg.URL == DefaultURL) && fc.URL != "" {
        cfg.URL = fc.URL
    }
    if (cfg.Interest == "" || cfg.Interest == DefaultInterest) && fc.Reader.Interest != "" {
        cfg.Interest = fc.Reader.Interest
    }
    if (cfg.UserType == "" || cfg.UserType == DefaultUserType) && fc.Reader.UserType != "" {
        cfg.UserType = fc.Reader.UserType
    }

    if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
        cfg.LLMBaseURL = fc.LLM.BaseURL
    }
    if cfg.LLMFallbackURL == "" && fc.LLM.FallbackURL != "" {
        cfg.LLMFallbackURL = fc.LLM.FallbackURL
    }
    if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
        cfg.LLMAPIKey = fc.LLM.APIKey
    }
    if (cfg.SummaryModel == "" || cfg.SummaryModel == DefaultSummaryModel) && fc.LLM.SummaryModel != "" {
        cfg.SummaryModel = fc.LLM.SummaryModel
    }
    if (cfg.RatingModel == "" || cfg.RatingModel == DefaultRatingModel) && fc.LLM.RatingModel != "" {
        cfg.RatingModel = fc.LLM.RatingModel
    }

    if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && fc.Fetch.UserAgent != "" {
        cfg.UserAgent = fc.Fetch.UserAgent
    }
    if cfg.FetchTimeout == 0 && fc.Fetch.Timeout > 0 {
        cfg.FetchTimeout = fc.Fetch.Timeout
    }

    if (cfg.LogFile == "" || cfg.LogFile == DefaultLogFile) && fc.Log.File != "" {
        cfg.LogFile = fc.Log.File
    }
    if !cfg.Verbose && fc.Verbose {
        cfg.Verbose = true
    }
}
