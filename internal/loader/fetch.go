package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"github.com/shane9b3/cycling/internal/models"
)

// FetchConfig controls the retry behavior of remote fetches.
type FetchConfig struct {
	Retries    int           // additional attempts after the first
	Timeout    time.Duration // per-attempt deadline
	RetryDelay time.Duration // backoff base; doubled after every failure
	UserAgent  string
}

// DefaultFetchConfig returns the standard retry policy: 4 total attempts,
// 30s per attempt, 1s/2s/4s backoff.
func DefaultFetchConfig() FetchConfig {
	return FetchConfig{
		Retries:    3,
		Timeout:    30 * time.Second,
		RetryDelay: time.Second,
		UserAgent:  "cycling-validate-data/1.0",
	}
}

// Statuses that indicate the request itself is wrong; retrying cannot help.
var nonRetriableStatus = map[int]bool{
	http.StatusBadRequest:          true,
	http.StatusUnauthorized:        true,
	http.StatusForbidden:           true,
	http.StatusNotFound:            true,
	http.StatusMethodNotAllowed:    true,
	http.StatusUnprocessableEntity: true,
}

// FetchWithRetry GETs a URL and returns the response body as text. Each
// attempt runs under its own timeout; failed attempts back off exponentially
// with no jitter. A status in the non-retriable set aborts immediately with a
// NetworkError carrying that status; any other failure is retried until the
// attempts are exhausted, after which the last failure is wrapped.
func FetchWithRetry(ctx context.Context, rawURL string, cfg FetchConfig) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", &NetworkError{URL: rawURL, Reason: "invalid URL", Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &NetworkError{URL: rawURL, Reason: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}

	client := &http.Client{}
	attempts := cfg.Retries + 1
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := cfg.RetryDelay * (1 << (attempt - 1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", &NetworkError{URL: rawURL, Reason: "canceled while waiting to retry", Err: ctx.Err()}
			}
		}

		body, status, err := fetchOnce(ctx, client, rawURL, cfg)
		if err == nil {
			return body, nil
		}
		if nonRetriableStatus[status] {
			return "", &NetworkError{URL: rawURL, Status: status, Reason: "request rejected", Err: err}
		}
		lastErr = err
	}

	return "", &NetworkError{
		URL:    rawURL,
		Reason: fmt.Sprintf("all %d attempts failed", attempts),
		Err:    lastErr,
	}
}

// fetchOnce performs a single GET under its own deadline. The returned status
// is 0 when no HTTP response was received.
func fetchOnce(ctx context.Context, client *http.Client, rawURL string, cfg FetchConfig) (string, int, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return string(body), resp.StatusCode, nil
}

// FetchWorkoutDetails fetches a remote segment timeline and applies the
// structural pass. The remote pass checks field presence, types and positive
// durations but not the resistance/cadence bounds; remote files get the full
// range treatment from the validate package instead.
func FetchWorkoutDetails(ctx context.Context, rawURL string, cfg FetchConfig) (models.WorkoutDetails, error) {
	body, err := FetchWithRetry(ctx, rawURL, cfg)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return nil, loadErr(rawURL, "response is not valid JSON", err)
	}
	items, ok := v.([]any)
	if !ok {
		return nil, loadErr(rawURL, "response is not a JSON array", nil)
	}
	if len(items) == 0 {
		return nil, loadErr(rawURL, "workout details has no segments", nil)
	}

	details := make(models.WorkoutDetails, 0, len(items))
	for i, item := range items {
		seg, err := decodeSegment(rawURL, i, item)
		if err != nil {
			return nil, err
		}
		details = append(details, seg)
	}
	return details, nil
}
