package vetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
	bearerPrefix        = "Bearer "
)

// doRequest performs an HTTP request and handles common error cases.
// It is the single choke point for all network I/O to the backend.
//
// When includeAuth is true the bearer token is re-read from the session
// store for every request, and a 401 answer tears the session down
// before the error is returned.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, includeAuth bool, result interface{}) error {
	reqURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("failed to build URL: %w", err)
	}

	// Body is serialized only for methods that carry a payload.
	var bodyReader io.Reader
	if body != nil && (method == http.MethodPost || method == http.MethodPatch) {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(headerContentType, contentTypeJSON)
	if includeAuth {
		if token := c.sessions.Token(); token != "" {
			req.Header.Set(headerAuthorization, bearerPrefix+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Context cancellation is the caller's doing, not a network
		// problem; everything else is normalized to a connectivity error.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	// Session expiry: wipe the persisted session and signal the
	// subscriber before failing. Downstream auth state depends on this
	// side effect, not just on the returned error.
	if resp.StatusCode == http.StatusUnauthorized && includeAuth {
		c.expireSession()
		return ErrSessionExpired
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseError(resp.StatusCode, respBody)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// expireSession clears both persisted session keys and notifies the
// registered handler, if any.
func (c *Client) expireSession() {
	_ = c.sessions.Clear()
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

// get performs an authorized GET request.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, true, result)
}

// post performs an authorized POST request.
func (c *Client) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.doRequest(ctx, http.MethodPost, path, body, true, result)
}

// postNoAuth performs a POST request without attaching credentials.
// Login and registration use it; a 401 on these endpoints is an
// ordinary request error, not a session-expiry signal.
func (c *Client) postNoAuth(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.doRequest(ctx, http.MethodPost, path, body, false, result)
}

// patch performs an authorized PATCH request.
func (c *Client) patch(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.doRequest(ctx, http.MethodPatch, path, body, true, result)
}

// delete performs an authorized DELETE request.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.doRequest(ctx, http.MethodDelete, path, nil, true, nil)
}
