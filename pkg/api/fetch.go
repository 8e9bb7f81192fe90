package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ctrl-app/ctrl-client/pkg/httpclient"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Fetch performs one request against {baseURL}{path} and decodes the JSON response into T.
//
// The response body is parsed as JSON whatever the status. A non-2xx status yields a
// KindLogical *Error whose message comes from the body's "detail", then "message", then
// "Request failed". Transport and decode failures are returned as KindTransport and
// KindDecode errors carrying the underlying error.
func Fetch[T any](ctx context.Context, c *Client, path string, opts *RequestOptions) (T, error) {
	var out T
	if c == nil {
		return out, fmt.Errorf("api client is not initialized")
	}

	var o RequestOptions
	if opts != nil {
		o = *opts
	}
	if o.Method == "" {
		o.Method = MethodGet
	}
	if !o.Method.valid() {
		return out, fmt.Errorf("%w: %q", ErrUnsupportedMethod, o.Method)
	}

	requestID := uuid.NewString()
	headers := map[string]string{
		"Content-Type":  "application/json",
		requestIDHeader: requestID,
	}
	if o.Token != "" {
		headers["Authorization"] = "Bearer " + o.Token
	}

	var payload []byte
	if o.Body != nil {
		b, err := json.Marshal(o.Body)
		if err != nil {
			return out, fmt.Errorf("encode request body: %w", err)
		}
		payload = b
	}

	method := string(o.Method)
	start := time.Now()
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method:  method,
		URL:     c.endpoint.URL(path),
		Headers: headers,
		Body:    payload,
	})
	if err != nil {
		requestsTotal.WithLabelValues(method, outcomeTransport).Inc()
		return out, c.failed(method, path, requestID, transportError(err))
	}
	elapsed := time.Since(start)
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())

	status := resp.StatusCode()
	c.log.DebugObj("api request completed", "api_request", map[string]any{
		"method":     method,
		"path":       path,
		"status":     status,
		"request_id": requestID,
		"elapsed_ms": elapsed.Milliseconds(),
	})

	raw := resp.Body()
	var parsed json.RawMessage
	if err := json.Unmarshal(raw, &parsed); err != nil {
		requestsTotal.WithLabelValues(method, outcomeDecode).Inc()
		return out, c.failed(method, path, requestID, decodeError(status, err))
	}

	if status < 200 || status > 299 {
		requestsTotal.WithLabelValues(method, outcomeLogical).Inc()
		return out, c.failed(method, path, requestID, logicalError(status, parsed))
	}

	if err := json.Unmarshal(parsed, &out); err != nil {
		requestsTotal.WithLabelValues(method, outcomeDecode).Inc()
		var zero T
		return zero, c.failed(method, path, requestID, decodeError(status, err))
	}
	requestsTotal.WithLabelValues(method, outcomeOK).Inc()
	return out, nil
}

// failed logs a failed exchange at warn level and returns e.
func (c *Client) failed(method, path, requestID string, e *Error) *Error {
	c.log.WarnObj("api request failed", "api_request", map[string]any{
		"method":     method,
		"path":       path,
		"request_id": requestID,
		"kind":       e.Kind.String(),
		"status":     e.StatusCode,
		"error":      e.Message,
	})
	return e
}
