package extract

import (
    "bytes"
    "net/url"
    "strings"

    readability "github.com/go-shiori/go-readability"
    "github.com/rs/zerolog/log"
    "golang.org/x/net/html"
    "golang.org/x/text/unicode/norm"
)

// Article is the extracted, display-ready view of one fetched page. Content
// is the visible text of the main article body as a single space-separated
// string; Title comes from the document <title> element. Either field may be
// empty when its extraction failed.
type Article struct {
    Title   string
    Content string
}

// FromHTML extracts the readable article body and the document title from
// raw HTML. The two extractions are independent failure domains: a
// readability failure leaves Content empty without touching Title, and a
// missing or broken <title> never aborts content extraction. No error
// escapes; failures are logged and degrade to the empty string. The function
// is a pure function of its input apart from logging.
func FromHTML(raw []byte, pageURL *url.URL) Article {
    return Article{
        Title:   extractTitle(raw),
        Content: extractContent(raw, pageURL),
    }
}

func extractContent(raw []byte, pageURL *url.URL) string {
    art, err := readability.FromReader(bytes.NewReader(raw), pageURL)
    if err != nil {
        log.Error().Err(err).Str("component", "extract").Msg("readability parse failed")
        return ""
    }
    // Walk the readability fragment ourselves so any script/style remnants
    // are dropped and text nodes collapse into one space-separated string.
    node, err := html.Parse(strings.NewReader(art.Content))
    if err != nil || node == nil {
        log.Error().Err(err).Str("component", "extract").Msg("content fragment parse failed")
        return ""
    }
    var b strings.Builder
    collectText(&b, node)
    text := norm.NFC.String(strings.TrimSpace(collapseSpaces(b.String())))
    log.Info().Str("component", "extract").Int("chars", len(text)).Msg("content extracted")
    return text
}

func extractTitle(raw []byte) string {
    node, err := html.Parse(bytes.NewReader(raw))
    if err != nil || node == nil {
        log.Error().Err(err).Str("component", "extract").Msg("title parse failed")
        return ""
    }
    title := norm.NFC.String(strings.TrimSpace(findTitle(node)))
    log.Info().Str("component", "extract").Str("title", title).Msg("title extracted")
    return title
}

func findTitle(n *html.Node) string {
    head := findFirst(n, "head")
    if head == nil {
        return ""
    }
    t := findFirst(head, "title")
    if t == nil || t.FirstChild == nil {
        return ""
    }
    return t.FirstChild.Data
}

func findFirst(n *html.Node, tag string) *html.Node {
    var res *html.Node
    var dfs func(*html.Node)
    dfs = func(cur *html.Node) {
        if res != nil {
            return
        }
        if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
            res = cur
            return
        }
        for c := cur.FirstChild; c != nil; c = c.NextSibling {
            dfs(c)
            if res != nil {
                return
            }
        }
    }
    dfs(n)
    return res
}

// collectText appends the visible text of n to b, skipping non-visible
// subtrees entirely.
func collectText(b *strings.Builder, n *html.Node) {
    if n.Type == html.ElementNode {
        switch strings.ToLower(n.Data) {
        case "script", "style", "noscript", "template":
            return
        }
    }
    if n.Type == html.TextNode {
        b.WriteString(n.Data)
        b.WriteString(" ")
    }
    for c := n.FirstChild; c != nil; c = c.NextSibling {
        collectText(b, c)
    }
}

func collapseSpaces(s string) string {
    var b strings.Builder
    lastSpace := false
    for _, r := range s {
        if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
            if !lastSpace {
                b.WriteByte(' ')
                lastSpace = true
            }
            continue
        }
        b.WriteRune(r)
        lastSpace = false
    }
    return b.String()
}
