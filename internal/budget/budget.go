package budget

import (
    "math"
    "strings"
)

// Default budgeting knobs tuned for abstractive news summaries.
const (
    DefaultMaxCap   = 250
    DefaultMinFloor = 30
    DefaultRatio    = 0.4
)

// Options control summary length budgeting. Zero values fall back to the
// defaults above.
type Options struct {
    // MaxCap is the upper limit for the maximum summary length in words.
    MaxCap int
    // MinFloor is the preferred minimum summary length in words.
    MinFloor int
    // Ratio scales the input word count into the maximum summary length.
    Ratio float64
}

func (o Options) withDefaults() Options {
    if o.MaxCap <= 0 {
        o.MaxCap = DefaultMaxCap
    }
    if o.MinFloor <= 0 {
        o.MinFloor = DefaultMinFloor
    }
    if o.Ratio <= 0 {
        o.Ratio = DefaultRatio
    }
    return o
}

// Bounds computes the target summary length window for text, in words.
// The maximum is the input word count scaled by Ratio and capped at MaxCap.
// The minimum sits at MinFloor when the maximum clears the floor, otherwise
// it is scaled down to 60% of the maximum so that minLen < maxLen holds
// whenever maxLen > 0. Pure and deterministic.
func Bounds(text string, opts Options) (maxLen, minLen int) {
    opts = opts.withDefaults()

    words := len(strings.Fields(text))
    maxLen = int(float64(words) * opts.Ratio)
    if maxLen > opts.MaxCap {
        maxLen = opts.MaxCap
    }
    if maxLen > opts.MinFloor {
        minLen = min(opts.MinFloor, maxLen-1)
    } else {
        minLen = int(0.6 * float64(maxLen))
    }
    return maxLen, minLen
}

// EstimateTokensFromWords converts a word budget into an output token cap
// using a conservative heuristic (~4 tokens per 3 English words). The result
// is always at least 1 when words > 0.
func EstimateTokensFromWords(words int) int {
    if words <= 0 {
        return 0
    }
    // Keep conservative to avoid truncating mid-sentence. Use ceiling.
    return int(math.Ceil(float64(words) * 4.0 / 3.0))
}
