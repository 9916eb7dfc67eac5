package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"
)

// maxSnapshotLines caps the snapshot so one noisy page element cannot blow
// up the change comparison
const maxSnapshotLines = 50

var (
	relevantLineRe = regexp.MustCompile(`(?i)goal|target|raised|funded|bitcoin|btc|sats|progress|funding|campaign`)
	numericUnitRe  = regexp.MustCompile(`(?i)\d+(?:,\d{3})*(?:\.\d+)?\s*(?:%|btc|sats|bitcoin|\$|€|USD)`)
	satsSuffixRe   = regexp.MustCompile(`(?i)\s+sats\b`)
)

// Extractor fetches a funding page and distills it into a deterministic
// snapshot of goal-relevant text suitable for cycle-to-cycle comparison.
type Extractor struct {
	client    *http.Client
	userAgent string
}

// NewExtractor creates a funding page extractor
func NewExtractor(timeout time.Duration, userAgent string) *Extractor {
	return &Extractor{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Snapshot fetches the page and returns the goal-relevant subset of its
// text: keyword-matching lines plus unit-suffixed numeric values, stripped
// of " sats" suffixes, deduplicated and sorted so equal page states always
// produce equal snapshots.
func (e *Extractor) Snapshot(ctx context.Context, pageURL string) (string, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	addBrowserHeaders(req, e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text := pageText(string(body), parsedURL)
	return Distill(text), nil
}

// pageText extracts readable text from raw HTML, trafilatura first with a
// plain goquery text dump as fallback. Funding pages are often too sparse
// for article extraction to accept them.
func pageText(rawHTML string, pageURL *url.URL) string {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		Deduplicate:     true,
		OriginalURL:     pageURL,
	}

	if result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts); err == nil && result != nil && result.ContentText != "" {
		return result.ContentText
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	doc.Find("script, style, noscript, iframe, embed, object").Remove()
	return doc.Find("body").Text()
}

// Distill reduces page text to the funding-relevant snapshot
func Distill(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	relevant := map[string]struct{}{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(line) >= 200 {
			continue
		}
		if relevantLineRe.MatchString(line) {
			relevant[line] = struct{}{}
		}
	}
	for _, m := range numericUnitRe.FindAllString(text, -1) {
		relevant[strings.TrimSpace(m)] = struct{}{}
	}

	lines := make([]string, 0, len(relevant))
	for line := range relevant {
		lines = append(lines, line)
	}
	sort.Strings(lines)
	if len(lines) > maxSnapshotLines {
		lines = lines[:maxSnapshotLines]
	}

	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = satsSuffixRe.ReplaceAllString(line, "")
		cleaned = append(cleaned, strings.Join(strings.Fields(line), " "))
	}
	return strings.Join(cleaned, "\n")
}
