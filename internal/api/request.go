package api

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/google/uuid"

	apierrors "github.com/dincharya-ai/cli/internal/errors"
	"github.com/dincharya-ai/cli/internal/models"
)

// maxErrorBody caps how much of a failed response is kept for diagnostics
const maxErrorBody = 2048

// doRequest executes one request against the backend and returns the raw
// response body. Transport failures, timeouts, and non-2xx statuses are
// mapped to the typed errors in internal/errors.
func (c *Client) doRequest(method, path string, body io.Reader, contentType string) ([]byte, error) {
	endpoint := strings.TrimRight(c.baseURL, "/") + path

	req, err := http.NewRequest(method, endpoint, body)
	if err != nil {
		return nil, apierrors.NewNetworkError(path, err)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, apierrors.NewTimeoutError(path)
		}
		return nil, apierrors.NewNetworkError(path, err)
	}
	defer func() {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetworkError(path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := apierrors.NewAPIError(resp.StatusCode, path, http.StatusText(resp.StatusCode))
		return nil, apiErr.WithBody(truncateBody(data))
	}

	return data, nil
}

// get issues a GET request for the given path (query included)
func (c *Client) get(path string) ([]byte, error) {
	return c.doRequest(http.MethodGet, path, nil, "")
}

// postJSON issues a POST request with a JSON body
func (c *Client) postJSON(path string, body []byte) ([]byte, error) {
	return c.doRequest(http.MethodPost, path, strings.NewReader(string(body)), "application/json")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return true
	}
	return strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "deadline exceeded")
}

func truncateBody(data []byte) string {
	if len(data) > maxErrorBody {
		return string(data[:maxErrorBody])
	}
	return string(data)
}
