package acknowledge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/gym-console/internal/http/response"
	"github.com/magabrotheeeer/gym-console/internal/storage/repository"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Acknowledge(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestAcknowledgeHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		urlID          string
		setupMocks     func(s *ServiceMock)
		wantStatusCode int
		wantStatus     string
	}{
		{
			name:  "success acknowledge",
			urlID: "42",
			setupMocks: func(s *ServiceMock) {
				s.On("Acknowledge", mock.Anything, 42).Return(1, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     response.StatusOK,
		},
		{
			name:           "invalid id",
			urlID:          "abc",
			setupMocks:     func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     response.StatusError,
		},
		{
			name:  "event not found",
			urlID: "99",
			setupMocks: func(s *ServiceMock) {
				s.On("Acknowledge", mock.Anything, 99).
					Return(0, fmt.Errorf("event 99: %w", repository.ErrNotFound)).Once()
			},
			wantStatusCode: http.StatusNotFound,
			wantStatus:     response.StatusError,
		},
		{
			name:  "service error",
			urlID: "42",
			setupMocks: func(s *ServiceMock) {
				s.On("Acknowledge", mock.Anything, 42).Return(0, errors.New("db down")).Once()
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

			req := httptest.NewRequest(http.MethodPost, "/events/"+tt.urlID+"/acknowledge", nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.urlID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "reqid123")
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp map[string]any
			err := json.Unmarshal(rec.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp["status"])

			service.AssertExpectations(t)
		})
	}
}
