package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domainalerts "github.com/magabrotheeeer/gym-console/internal/domain/alerts"
	"github.com/magabrotheeeer/gym-console/internal/http/response"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Digest(ctx context.Context, today time.Time) ([]domainalerts.Bucket, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domainalerts.Bucket), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestAlertsHandler_ServeHTTP(t *testing.T) {
	buckets := []domainalerts.Bucket{
		{Type: domainalerts.BucketExpiredSubscriptions, Count: 2, Message: "2 expired subscription(s)"},
		{Type: domainalerts.BucketPendingPayments, Count: 1, Message: "1 pending payment(s)"},
	}

	tests := []struct {
		name           string
		setupMocks     func(s *ServiceMock)
		wantStatusCode int
		wantStatus     string
		wantBuckets    int
	}{
		{
			name: "digest with buckets",
			setupMocks: func(s *ServiceMock) {
				s.On("Digest", mock.Anything, mock.Anything).Return(buckets, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     response.StatusOK,
			wantBuckets:    2,
		},
		{
			name: "empty digest",
			setupMocks: func(s *ServiceMock) {
				s.On("Digest", mock.Anything, mock.Anything).Return([]domainalerts.Bucket{}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     response.StatusOK,
			wantBuckets:    0,
		},
		{
			name: "service error",
			setupMocks: func(s *ServiceMock) {
				s.On("Digest", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantStatus:     response.StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(ServiceMock)
			handler := New(newNoopLogger(), service)

			tt.setupMocks(service)

			req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp map[string]any
			err := json.Unmarshal(rec.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp["status"])

			if tt.wantStatusCode == http.StatusOK {
				data := resp["data"].(map[string]any)
				got, _ := data["buckets"].([]any)
				assert.Len(t, got, tt.wantBuckets)
			}

			service.AssertExpectations(t)
		})
	}
}
