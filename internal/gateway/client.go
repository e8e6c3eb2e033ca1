// Package gateway is the typed HTTP client for the remote user, booking and common services.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"cabadmin/internal/endpoint"
)

// SuccessCode is the responseCode the remote services use for success.
const SuccessCode = 200

var (
	// ErrUnavailable wraps transport failures (connection refused, timeouts, ...).
	ErrUnavailable = errors.New("upstream service unavailable")

	// ErrInvalidPayload is returned when a successful response cannot be decoded.
	ErrInvalidPayload = errors.New("upstream returned an invalid payload")

	// ErrEmptyData is returned when a single record was expected but none was returned.
	ErrEmptyData = errors.New("upstream returned no data")
)

// Envelope is the response wrapper shared by all remote services.
type Envelope struct {
	ResponseCode    int             `json:"responseCode"`
	ResponseMessage string          `json:"responseMessage"`
	ResponseData    json.RawMessage `json:"responseData"`
}

// APIError is returned when a remote service answers with a non-2xx status
// or a failure responseCode.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream error (status %d, code %d): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("upstream error (status %d, code %d)", e.Status, e.Code)
}

// HTTPFailure reports whether the error happened at the HTTP level rather than
// as an application failure code inside a 2xx response.
func (e *APIError) HTTPFailure() bool {
	return e.Status < 200 || e.Status > 299
}

// Client calls the remote services. A Client is safe for concurrent use;
// WithToken returns a copy bound to a caller's bearer token.
type Client struct {
	httpClient *http.Client
	registry   endpoint.Registry
	token      string
}

// NewClient creates a new Client.
func NewClient(registry endpoint.Registry, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		registry:   registry,
	}
}

// WithToken returns a copy of the client that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// plainText marks a request body that is sent verbatim as text/plain.
type plainText string

// call issues a request for op and decodes responseData into out (when out is non-nil).
func (c *Client) call(ctx context.Context, method string, op endpoint.Operation, id string, body any, out any) (*Envelope, error) {
	var reader io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case plainText:
		reader = bytes.NewBufferString(string(b))
		contentType = "text/plain"
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.registry.URL(op, id), reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s response: %v", ErrUnavailable, op, err)
	}

	var env Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Code = env.ResponseCode
			apiErr.Message = env.ResponseMessage
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, op, decodeErr)
	}
	if env.ResponseCode != SuccessCode {
		return &env, &APIError{Status: resp.StatusCode, Code: env.ResponseCode, Message: env.ResponseMessage}
	}

	if out != nil {
		if err := decodeData(env.ResponseData, out); err != nil {
			if errors.Is(err, ErrEmptyData) {
				return &env, fmt.Errorf("%s: %w", op, err)
			}
			return &env, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, op, err)
		}
	}
	return &env, nil
}

// decodeData unmarshals responseData into out. Services return single records either
// as an object or as a one-element array; both are accepted for non-slice targets.
// Empty or null data leaves out untouched and returns ErrEmptyData for non-slice targets.
func decodeData(raw json.RawMessage, out any) error {
	trimmed := bytes.TrimSpace(raw)
	wantSlice := reflect.TypeOf(out).Elem().Kind() == reflect.Slice

	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		if wantSlice {
			return nil
		}
		return ErrEmptyData
	}

	if !wantSlice && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyData
		}
		trimmed = items[0]
	}

	return json.Unmarshal(trimmed, out)
}
