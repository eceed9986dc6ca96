package util

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// NewHTTPClient returns a client that retries failed requests up to retries
// times, logging only warnings and errors.
func NewHTTPClient(retries int, timeout time.Duration) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = max(0, retries)
	c.RetryWaitMin = 250 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.HTTPClient.Timeout = timeout
	c.Logger = quietLogger{}
	return c
}

// IsRemote reports whether ref is an http(s) URL rather than a file path.
func IsRemote(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// FetchURL GETs url and returns the whole response body.
// Any non-200 status is an error.
func FetchURL(ctx context.Context, client *retryablehttp.Client, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

type quietLogger struct{}

var _ retryablehttp.LeveledLogger = quietLogger{}

func (quietLogger) Error(msg string, kv ...interface{}) { log.Printf("http error: %s %v", msg, kv) }
func (quietLogger) Warn(msg string, kv ...interface{})  { log.Printf("http warning: %s %v", msg, kv) }
func (quietLogger) Info(string, ...interface{})         {}
func (quietLogger) Debug(string, ...interface{})        {}
