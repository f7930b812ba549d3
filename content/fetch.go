package content

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/core"
	"golang.org/x/net/html/charset"
)

var (
	// ErrUnsupportedScheme is returned for URLs that are not http or https
	ErrUnsupportedScheme = errors.New("only http and https URLs are supported")

	// ErrNotEnoughText is returned when a page yields too little usable text
	ErrNotEnoughText = errors.New("not enough text content found")
)

// StatusError reports a non-2xx HTTP response
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %s", e.Status)
}

// Fetcher retrieves pages and extracts text from them
type Fetcher struct {
	client  *http.Client
	retries int
	backoff time.Duration
}

// NewFetcher creates a fetcher; non-positive arguments take the package defaults
func NewFetcher(timeout time.Duration, retries int, backoff time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = constants.FetchTimeout
	}
	if retries <= 0 {
		retries = constants.FetchRetries
	}
	if backoff <= 0 {
		backoff = constants.FetchBackoff
	}
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		retries: retries,
		backoff: backoff,
	}
}

// ValidateURL checks that raw parses as an absolute http or https URL
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q: %w", raw, ErrUnsupportedScheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", raw)
	}
	return nil
}

// FetchURL extracts main-content text from an arbitrary page and chunks it into sentences
func (f *Fetcher) FetchURL(ctx context.Context, raw string) ([]string, error) {
	if err := ValidateURL(raw); err != nil {
		return nil, err
	}

	doc, err := f.document(ctx, raw)
	if err != nil {
		return nil, err
	}

	text := ExtractMainContent(doc)
	if utf8.RuneCountInString(text) < constants.MinExtractedLength {
		return nil, fmt.Errorf("%s: %w", raw, ErrNotEnoughText)
	}

	text = Truncate(CleanText(text), constants.MaxTextLength)
	chunks := ChunkText(text, constants.ChunkMaxLength)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%s: %w", raw, ErrNotEnoughText)
	}
	return chunks, nil
}

// FetchLiterary extracts the body text of an archive page as a single excerpt
func (f *Fetcher) FetchLiterary(ctx context.Context, raw string) ([]string, error) {
	if err := ValidateURL(raw); err != nil {
		return nil, err
	}

	doc, err := f.document(ctx, raw)
	if err != nil {
		return nil, err
	}

	text := ExtractLiterary(doc)
	if utf8.RuneCountInString(text) <= constants.MinLiteraryLength {
		return nil, fmt.Errorf("%s: %w", raw, ErrNotEnoughText)
	}
	return []string{text}, nil
}

// FetchAsync runs a fetch for src in a panic-safe goroutine and hands the result to deliver
func (f *Fetcher) FetchAsync(ctx context.Context, src Source, raw string, deliver func(FetchResult)) {
	core.Go(func() {
		var texts []string
		var err error
		if src == SourceLiterary {
			texts, err = f.FetchLiterary(ctx, raw)
		} else {
			texts, err = f.FetchURL(ctx, raw)
		}
		deliver(FetchResult{Source: src, URL: raw, Texts: texts, Err: err})
	})
}

// document fetches raw with exponential backoff; client errors are not retried
func (f *Fetcher) document(ctx context.Context, raw string) (*goquery.Document, error) {
	delay := f.backoff
	var lastErr error

	for attempt := 0; attempt < f.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		doc, err := f.get(ctx, raw)
		if err == nil {
			return doc, nil
		}
		lastErr = err
		log.Printf("content: fetch %s attempt %d failed: %v", raw, attempt+1, err)

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var se *StatusError
		if errors.As(err, &se) && se.Code < 500 {
			break
		}
	}

	return nil, fmt.Errorf("fetch %s: %w", raw, lastErr)
}

// get performs one request and decodes the body to UTF-8 before parsing
func (f *Fetcher) get(ctx context.Context, raw string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "waterfall/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	return doc, nil
}
