package extract

import "net/url"

// Extractor defines a minimal interface for content extraction strategies.
// Implementations can swap readability tactics without changing callers.
type Extractor interface {
    // Extract converts raw HTML bytes into an Article. The page URL, when
    // known, helps resolve relative references; nil is accepted.
    // Implementations should be deterministic.
    Extract(raw []byte, pageURL *url.URL) Article
}

// ReadabilityExtractor uses FromHTML: go-readability isolation of the main
// body plus independent <title> extraction from the raw document.
type ReadabilityExtractor struct{}

func (ReadabilityExtractor) Extract(raw []byte, pageURL *url.URL) Article {
    return FromHTML(raw, pageURL)
}
