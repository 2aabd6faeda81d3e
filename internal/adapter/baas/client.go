// Package baas contains the HTTP clients for the backend-as-a-service the
// gateway fronts: flight listings, bookings, user profiles, and auth. Each
// client implements one of the domain service interfaces and owns the
// translation between the service's external wire format and the domain's.
package baas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
)

// DefaultTimeout bounds every request to the backing service.
const DefaultTimeout = 10 * time.Second

// Client is the shared HTTP plumbing for all service clients.
type Client struct {
	baseURL string
	service string
	httpc   *http.Client
}

// NewClient creates a Client for the named service rooted at baseURL.
// A nil httpc gets a client with DefaultTimeout.
func NewClient(service, baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: baseURL,
		service: service,
		httpc:   httpc,
	}
}

// Ping checks that the backing service answers at all. Used by the startup
// reachability probe, never on request-serving paths.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "/health", nil, nil)
}

// get issues a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.NewServiceError(c.service, err)
	}
	return c.do(req, out)
}

// post issues a POST with a JSON body and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

// put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.send(ctx, http.MethodPut, path, body, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.NewServiceError(c.service, fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return domain.NewServiceError(c.service, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and maps transport and status failures onto the
// domain's error taxonomy. Callers translate 404 via domain.IsBookingNotFound
// style checks on ErrNotFound.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		if isTimeout(err) {
			return domain.NewServiceTimeoutError(c.service)
		}
		return domain.NewServiceUnavailableError(c.service)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.NewServiceError(c.service, fmt.Errorf("read response: %w", err))
	}

	if err := c.checkStatus(resp.StatusCode, body); err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewServiceError(c.service, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

// ErrNotFound marks a 404 from the backing service. Clients wrap it into the
// resource-specific sentinel where one exists.
var ErrNotFound = errors.New("resource not found")

// remoteError is the service's error envelope. Services are inconsistent
// about which key carries the message, so both are read.
type remoteError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e *remoteError) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

func (c *Client) checkStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return domain.NewServiceError(c.service, ErrNotFound)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.NewServiceError(c.service, domain.ErrUnauthenticated)
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return domain.NewServiceTimeoutError(c.service)
	case status >= 500:
		return domain.NewServiceUnavailableError(c.service)
	default:
		var remote remoteError
		_ = json.Unmarshal(body, &remote)
		msg := remote.text()
		if msg == "" {
			msg = http.StatusText(status)
		}
		return domain.NewServiceError(c.service, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, msg))
	}
}

// isTimeout reports whether a transport error is a timeout rather than a
// reachability failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return true
	}
	return false
}
