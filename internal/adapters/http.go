package adapters

import (
	"context"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

const (
	defaultHTTPTimeout    = 60 * time.Second
	defaultHTTPRetries    = 3
	defaultHTTPRetryDelay = 200 * time.Millisecond
	maxHTTPRetryDelay     = 2 * time.Second
)

// httpRetryConfig bounds a single GET: attempts counts the first try.
type httpRetryConfig struct {
	timeout   time.Duration
	attempts  int
	baseDelay time.Duration
}

func normalizeHTTPConfig(timeoutSec int, retries int, delayMs int) httpRetryConfig {
	cfg := httpRetryConfig{
		timeout:   time.Duration(timeoutSec) * time.Second,
		attempts:  retries,
		baseDelay: time.Duration(delayMs) * time.Millisecond,
	}
	if cfg.timeout <= 0 {
		cfg.timeout = defaultHTTPTimeout
	}
	if cfg.attempts <= 0 {
		cfg.attempts = defaultHTTPRetries
	}
	if cfg.baseDelay <= 0 {
		cfg.baseDelay = defaultHTTPRetryDelay
	}
	return cfg
}

// doRequest issues a GET. Transport errors, 5xx and 429 are retried; the
// response of the last attempt is returned whatever its status.
func doRequest(ctx context.Context, url string, headers map[string]string, cfg httpRetryConfig) (*http.Response, error) {
	client := &http.Client{Timeout: cfg.timeout}
	for attempt := 1; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create request").
				WithCause(err)
		}
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		resp, err := client.Do(req)
		last := attempt >= cfg.attempts
		switch {
		case err != nil && ctx.Err() != nil:
			return nil, canceled(ctx)
		case err != nil && last:
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("request to " + url + " failed").
				WithCause(err)
		case err == nil && (!retryable(resp.StatusCode) || last):
			return resp, nil
		case err == nil:
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		log.Debug().Str("url", url).Int("attempt", attempt).Msg("retrying request")
		timer := time.NewTimer(cfg.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, canceled(ctx)
		case <-timer.C:
		}
	}
}

func retryable(status int) bool {
	return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
}

// backoff doubles per attempt up to maxHTTPRetryDelay, plus up to half of
// that again as jitter.
func (c httpRetryConfig) backoff(attempt int) time.Duration {
	delay := c.baseDelay << (attempt - 1)
	if delay <= 0 || delay > maxHTTPRetryDelay {
		delay = maxHTTPRetryDelay
	}
	return delay + rand.N(delay/2+1)
}

func canceled(ctx context.Context) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("request canceled").
		WithCause(ctx.Err())
}
