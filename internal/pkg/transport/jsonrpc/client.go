// Package jsonrpc is a minimal JSON-RPC 2.0 client over the shared retrying
// HTTP transport. Chain adapters use it to talk to EVM providers.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrProviderReturnedError indicates the provider answered with a JSON-RPC error object.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates the provider answered with a non-2xx HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// ProviderError carries the JSON-RPC error object returned by the provider.
type ProviderError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return ErrProviderReturnedError
}

type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *ProviderError  `json:"error"`
	Result  json.RawMessage `json:"result"`
}

func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client sends JSON-RPC calls and returns the raw result.
type Client interface {
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
}

var _ Client = (*client)(nil)

// Fetch performs one JSON-RPC call. Request ids are random UUIDs.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s calling %s", ErrUnexpectedStatus, res.Status, method)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data.Result, data.Err()
}

// NewClient returns a Client posting to providerEndpoint through httpClient.
func NewClient(httpClient *retryablehttp.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
