// Package push sends signed notification payloads to the Push notification API.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"

	"github.com/hashicorp/go-retryablehttp"
)

const payloadsPath = "/v1/payloads"

// maxErrorBody bounds how much of an error response ends up in the error message.
const maxErrorBody = 512

// ErrUnexpectedStatus is returned for non-2xx answers.
var ErrUnexpectedStatus = errors.New("unexpected notification api status")

type client struct {
	endpoint   string
	httpClient *retryablehttp.Client
}

var _ notify.Sender = (*client)(nil)

// NewClient returns a notify.Sender posting to endpoint.
func NewClient(httpClient *retryablehttp.Client, endpoint string) *client {
	return &client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: httpClient,
	}
}

// Send posts payload. Client errors other than 429 wrap notify.ErrRejected;
// server errors and transport failures are left retryable.
func (c *client) Send(ctx context.Context, payload notify.Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Join(notify.ErrRejected, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+payloadsPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	err = fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, res.Status, bytes.TrimSpace(detail))

	if res.StatusCode >= 400 && res.StatusCode <= 499 && res.StatusCode != http.StatusTooManyRequests {
		return errors.Join(notify.ErrRejected, err)
	}
	return err
}
