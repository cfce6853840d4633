// Package fetch retrieves documents from the scraped stat sites with a
// fixed retry budget, escalating backoff and failure classification.
package fetch

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"github.com/valyala/fasthttp"

	"lol-scout/internal/constants"
)

// Fetcher is the retrieval contract the source adapters depend on.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// browserHeaders make requests look like a regular browser session; the
// sites serve bot traffic a 403.
var browserHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
}

type Client struct {
	client      *fasthttp.Client
	logger      zerolog.Logger
	timeout     time.Duration
	backoffBase time.Duration
	maxAttempts uint64
}

func NewClient(logger zerolog.Logger) *Client {
	return &Client{
		client: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         constants.FetchTimeout,
			WriteTimeout:        constants.FetchTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger:      logger,
		timeout:     constants.FetchTimeout,
		backoffBase: constants.FetchBackoffBase,
		maxAttempts: constants.FetchMaxAttempts,
	}
}

// Fetch performs a GET with up to three attempts and 1s/2s/4s backoff.
// 429 consumes a retry slot; 403 fails immediately as blocked; transport
// errors and other non-2xx statuses retry until the budget is exhausted.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	backoff := retry.WithMaxRetries(c.maxAttempts-1, retry.NewExponential(c.backoffBase))

	var body string
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		b, err := c.do(ctx, url)
		if err != nil {
			if IsBlocked(err) {
				// Retrying an anti-bot rejection is pointless.
				return err
			}
			c.logger.Debug().Err(err).Str("url", url).Int("attempt", attempt).Msg("fetch attempt failed")
			return retry.RetryableError(err)
		}
		body = b
		return nil
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("url", url).Int("attempts", attempt).Msg("fetch failed")
		return "", err
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, url string) (string, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return "", &Error{Kind: KindTransport, URL: url, Err: err}
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusTooManyRequests:
		return "", &Error{Kind: KindRateLimited, URL: url, Status: status}
	case status == fasthttp.StatusForbidden:
		return "", &Error{Kind: KindBlocked, URL: url, Status: status}
	case status < 200 || status >= 300:
		return "", &Error{Kind: KindHTTP, URL: url, Status: status, Err: errors.New(fasthttp.StatusMessage(status))}
	}

	return string(resp.Body()), nil
}
