// Package fetch retrieves job-description pages over HTTP and extracts their
// main text, with a headless-browser fallback for JavaScript-rendered
// job boards.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// defaultUserAgent identifies the service on outbound requests.
const defaultUserAgent = "Mozilla/5.0 (compatible; ATSAnalytics/1.0)"

// Error represents a failure fetching a URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Result holds the raw and processed content from a fetch.
type Result struct {
	URL         string
	Body        string
	ContentType string
	StatusCode  int
}

// Fetcher fetches and extracts job-description content.
type Fetcher struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool
}

// New returns a Fetcher with default settings.
func New() *Fetcher {
	return &Fetcher{Timeout: DefaultTimeout, UserAgent: defaultUserAgent}
}

// Get retrieves the raw content from a URL.
func (f *Fetcher) Get(ctx context.Context, urlStr string) (*Result, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	ua := f.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:         urlStr,
		Body:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return result, nil
}

// Text fetches a URL and returns its extracted main text. For HTML pages
// that render too little content (likely SPA job boards), it retries with a
// headless browser when UseBrowser is set.
func (f *Fetcher) Text(ctx context.Context, urlStr string) (string, error) {
	result, err := f.Get(ctx, urlStr)
	if err != nil {
		return "", err
	}

	if !strings.Contains(result.ContentType, "html") {
		return strings.TrimSpace(result.Body), nil
	}

	text, err := ExtractMainText(result.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}

	if f.UseBrowser && ShouldUseBrowser(text) {
		rendered, browserErr := renderWithBrowser(ctx, urlStr, f.Timeout)
		if browserErr == nil {
			if renderedText, extractErr := ExtractMainText(rendered); extractErr == nil && len(renderedText) > len(text) {
				text = renderedText
			}
		}
	}

	return text, nil
}

// jobPostingSelectors are tried in order to locate the posting body.
var jobPostingSelectors = []string{
	".job-description",
	"#job-description",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractMainText parses HTML and returns the main body text, stripping
// navigation and other noise elements. Falls back to the body element when
// no content selector matches.
func ExtractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range jobPostingSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace drops blank lines and trims each remaining line.
func cleanWhitespace(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
