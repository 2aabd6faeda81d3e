package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContext creates an echo context and recorder for response tests.
func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// decodeErrorDetail decodes the recorded body as an ErrorDetail.
func decodeErrorDetail(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var detail ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

func TestSuccessEnvelope(t *testing.T) {
	resp := Success(map[string]string{"key": "value"})

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestFailureEnvelope(t *testing.T) {
	resp := Failure(CodeValidationError, MsgValidationFailed, map[string]string{
		"origin": "origin is required",
	})

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeValidationError, resp.Error.Code)
	assert.Equal(t, "origin is required", resp.Error.Details["origin"])
}

func TestErrorBuilders(t *testing.T) {
	tests := []struct {
		name       string
		write      func(echo.Context) error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid request body",
			write:      InvalidRequestBody,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidRequest,
		},
		{
			name:       "unauthorized",
			write:      Unauthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   CodeUnauthorized,
		},
		{
			name:       "session expired",
			write:      SessionExpired,
			wantStatus: http.StatusUnauthorized,
			wantCode:   CodeUnauthorized,
		},
		{
			name:       "service unavailable",
			write:      ServiceUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   CodeServiceUnavailable,
		},
		{
			name:       "gateway timeout",
			write:      GatewayTimeout,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   CodeTimeout,
		},
		{
			name:       "internal error",
			write:      InternalServerError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			detail := decodeErrorDetail(t, rec)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.NotEmpty(t, detail.Message)
		})
	}
}

func TestNotFound(t *testing.T) {
	c, rec := newTestContext()
	require.NoError(t, NotFound(c, "Booking details not found."))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	detail := decodeErrorDetail(t, rec)
	assert.Equal(t, CodeNotFound, detail.Code)
	assert.Equal(t, "Booking details not found.", detail.Message)
}

func TestValidationErrorDetails(t *testing.T) {
	c, rec := newTestContext()
	require.NoError(t, ValidationError(c, map[string]string{
		"password": "password must be at least 8 characters",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeErrorDetail(t, rec)
	assert.Equal(t, CodeValidationError, detail.Code)
	assert.Equal(t, "password must be at least 8 characters", detail.Details["password"])
}

func TestHealth(t *testing.T) {
	c, rec := newTestContext()
	require.NoError(t, Health(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
