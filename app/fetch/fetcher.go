package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lysyi3m/fdr/app/feed"
	"github.com/lysyi3m/fdr/app/logger"
	"github.com/lysyi3m/fdr/app/subscription"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// FetchError reports a subscription that could not be downloaded or parsed.
// Only that source is skipped.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Result pairs a subscription with its parsed document or the error that
// prevented it.
type Result struct {
	Subscription subscription.Subscription
	Document     *feed.Document
	Err          error
}

type Options struct {
	UserAgent string
	Timeout   time.Duration
	Workers   int
	Rate      float64 // requests per second, 0 for unlimited
}

type Fetcher struct {
	httpClient *http.Client
	parser     *feed.Parser
	limiter    *rate.Limiter
	userAgent  string
	timeout    time.Duration
	workers    int
}

func NewFetcher(httpClient *http.Client, parser *feed.Parser, opts Options) *Fetcher {
	limit := rate.Inf
	if opts.Rate > 0 {
		limit = rate.Limit(opts.Rate)
	}

	return &Fetcher{
		httpClient: httpClient,
		parser:     parser,
		limiter:    rate.NewLimiter(limit, 1),
		userAgent:  opts.UserAgent,
		timeout:    opts.Timeout,
		workers:    max(opts.Workers, 1),
	}
}

// FetchAll downloads every subscription concurrently. Results are returned in
// subscription order whatever order the downloads finish in; a failed source
// carries a *FetchError and never stops the others. The returned error is
// non-nil only when ctx is cancelled.
func (f *Fetcher) FetchAll(ctx context.Context, subs []subscription.Subscription) ([]Result, error) {
	results := make([]Result, len(subs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)

	for i, sub := range subs {
		g.Go(func() error {
			results[i] = f.fetchOne(gctx, sub)
			return nil
		})
	}

	g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, sub subscription.Subscription) Result {
	start := time.Now()
	result := Result{Subscription: sub}

	doc, err := f.Fetch(ctx, sub.URL)
	if err != nil {
		result.Err = &FetchError{URL: sub.URL, Err: err}
		logger.L.Debugw("Feed fetch failed", "url", sub.URL, "duration", time.Since(start), "error", err)
		return result
	}

	result.Document = doc
	logger.L.Debugw("Feed fetched", "url", sub.URL, "duration", time.Since(start), "entries", len(doc.Entries))
	return result
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*feed.Document, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	data, err := f.fetchFeed(ctx, url)
	if err != nil {
		return nil, err
	}

	return f.parser.Run(data)
}

func (f *Fetcher) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
