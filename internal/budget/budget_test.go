package budget

import (
    "strings"
    "testing"
)

func words(n int) string {
    return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestBounds_HundredWords(t *testing.T) {
    maxLen, minLen := Bounds(words(100), Options{})
    if maxLen != 40 {
        t.Fatalf("expected maxLen 40, got %d", maxLen)
    }
    if minLen != 30 {
        t.Fatalf("expected minLen 30, got %d", minLen)
    }
}

func TestBounds_ShortInputScalesFloorDown(t *testing.T) {
    // 50 words * 0.4 = 20, at or below the floor of 30, so the minimum
    // becomes 60% of the maximum.
    maxLen, minLen := Bounds(words(50), Options{})
    if maxLen != 20 {
        t.Fatalf("expected maxLen 20, got %d", maxLen)
    }
    if minLen != 12 {
        t.Fatalf("expected minLen 12, got %d", minLen)
    }
}

func TestBounds_EmptyText(t *testing.T) {
    maxLen, minLen := Bounds("", Options{})
    if maxLen != 0 || minLen != 0 {
        t.Fatalf("expected zero bounds for empty text, got (%d, %d)", maxLen, minLen)
    }
}

func TestBounds_CapApplies(t *testing.T) {
    maxLen, minLen := Bounds(words(10000), Options{})
    if maxLen != DefaultMaxCap {
        t.Fatalf("expected maxLen capped at %d, got %d", DefaultMaxCap, maxLen)
    }
    if minLen != DefaultMinFloor {
        t.Fatalf("expected minLen %d, got %d", DefaultMinFloor, minLen)
    }
}

func TestBounds_InvariantMinBelowMax(t *testing.T) {
    opts := []Options{
        {},
        {MaxCap: 250, MinFloor: 30, Ratio: 0.4},
        {MaxCap: 100, MinFloor: 10, Ratio: 0.1},
        {MaxCap: 50, MinFloor: 40, Ratio: 1.0},
    }
    for _, o := range opts {
        for w := 0; w <= 1200; w++ {
            maxLen, minLen := Bounds(words(w), o)
            eff := o.withDefaults()
            if maxLen > eff.MaxCap {
                t.Fatalf("w=%d opts=%+v: maxLen %d exceeds cap %d", w, o, maxLen, eff.MaxCap)
            }
            if maxLen > 0 && minLen >= maxLen {
                t.Fatalf("w=%d opts=%+v: minLen %d not below maxLen %d", w, o, minLen, maxLen)
            }
        }
    }
}

func TestBounds_Deterministic(t *testing.T) {
    text := words(321)
    a1, i1 := Bounds(text, Options{})
    a2, i2 := Bounds(text, Options{})
    if a1 != a2 || i1 != i2 {
        t.Fatalf("expected deterministic bounds, got (%d,%d) then (%d,%d)", a1, i1, a2, i2)
    }
}

func TestEstimateTokensFromWords(t *testing.T) {
    if got := EstimateTokensFromWords(0); got != 0 {
        t.Fatalf("expected 0 tokens for 0 words, got %d", got)
    }
    if got := EstimateTokensFromWords(1); got < 1 {
        t.Fatalf("expected at least 1 token for 1 word, got %d", got)
    }
    if got := EstimateTokensFromWords(30); got != 40 {
        t.Fatalf("expected 40 tokens for 30 words, got %d", got)
    }
}
