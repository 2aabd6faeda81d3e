package baas

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/airvoyage/flight-booking-gateway/internal/domain"
)

// BookingsServiceName identifies the booking service in errors and logs.
const BookingsServiceName = "bookings"

// createBookingResponse is the booking service's reply to a create. Older
// deployments return the reference under "id", newer ones under
// "bookingReference"; either is accepted.
type createBookingResponse struct {
	ID               string `json:"id"`
	BookingReference string `json:"bookingReference"`
}

func (r *createBookingResponse) reference() string {
	if r.BookingReference != "" {
		return r.BookingReference
	}
	return r.ID
}

// BookingsClient implements domain.BookingService against the booking service.
type BookingsClient struct {
	*Client
}

// NewBookingsClient creates a BookingsClient rooted at baseURL.
func NewBookingsClient(baseURL string, httpc *http.Client) *BookingsClient {
	return &BookingsClient{Client: NewClient(BookingsServiceName, baseURL, httpc)}
}

// Create implements domain.BookingService.Create. The composite request is
// sent atomically; the reference comes back from the service.
func (c *BookingsClient) Create(ctx context.Context, req domain.BookingRequest) (string, error) {
	var resp createBookingResponse
	if err := c.post(ctx, "/bookings", req, &resp); err != nil {
		return "", err
	}

	reference := resp.reference()
	if reference == "" {
		return "", domain.NewServiceError(BookingsServiceName,
			errors.New("create response carried no booking reference"))
	}
	return reference, nil
}

// GetByReference implements domain.BookingService.GetByReference.
// A 404 from the service maps to domain.ErrBookingNotFound.
func (c *BookingsClient) GetByReference(ctx context.Context, reference string) (*domain.BookingRecord, error) {
	var record domain.BookingRecord
	err := c.get(ctx, "/bookings/"+url.PathEscape(reference), nil, &record)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: reference %q", domain.ErrBookingNotFound, reference)
		}
		return nil, err
	}
	return &record, nil
}

// ListByUser implements domain.BookingService.ListByUser.
func (c *BookingsClient) ListByUser(ctx context.Context, userID string) ([]domain.BookingRecord, error) {
	query := url.Values{}
	query.Set("userId", userID)

	var records []domain.BookingRecord
	if err := c.get(ctx, "/bookings", query, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Ensure BookingsClient implements domain.BookingService at compile time.
var _ domain.BookingService = (*BookingsClient)(nil)
