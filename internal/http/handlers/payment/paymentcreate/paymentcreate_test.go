package paymentcreate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/gym-console/internal/domain/allocation"
	"github.com/magabrotheeeer/gym-console/internal/http/response"
	"github.com/magabrotheeeer/gym-console/internal/models"
	paymentsvc "github.com/magabrotheeeer/gym-console/internal/services/payment"
	"github.com/magabrotheeeer/gym-console/internal/storage/repository"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, req models.DummyPayment, today time.Time) (*paymentsvc.RegisterResult, error) {
	args := m.Called(ctx, req, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentsvc.RegisterResult), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestPaymentCreateHandler_ServeHTTP(t *testing.T) {
	memberUID := "0b6c9f4e-5f4e-4a8a-9c3d-2f1e8b7a6d5c"
	validBody := models.DummyPayment{
		MemberUID:   memberUID,
		AmountCents: 6000,
		PaymentType: models.PaymentTypeMonthly,
	}
	expiration := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	okResult := &paymentsvc.RegisterResult{
		PaymentID:      42,
		Months:         1,
		ExpirationDate: &expiration,
		Message:        "1 month allocated",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(s *ServiceMock)
		wantStatusCode int
		wantStatus     string
	}{
		{
			name:        "valid payment",
			requestBody: validBody,
			setupMocks: func(s *ServiceMock) {
				s.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(okResult, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantStatus:     response.StatusOK,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			setupMocks:     func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantStatus:     response.StatusError,
		},
		{
			name: "validation error - zero amount",
			requestBody: models.DummyPayment{
				MemberUID:   memberUID,
				PaymentType: models.PaymentTypeMonthly,
			},
			setupMocks:     func(_ *ServiceMock) {},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     response.StatusError,
		},
		{
			name: "validation error - unknown payment type",
			requestBody: models.DummyPayment{
				MemberUID:   memberUID,
				AmountCents: 6000,
				PaymentType: "barter",
			},
			setupMocks:     func(_ *ServiceMock) {},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     response.StatusError,
		},
		{
			name:        "member not found",
			requestBody: validBody,
			setupMocks: func(s *ServiceMock) {
				s.On("Register", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("storage.ReadMember: %w", repository.ErrNotFound)).Once()
			},
			wantStatusCode: http.StatusNotFound,
			wantStatus:     response.StatusError,
		},
		{
			name:        "invalid amount from allocation",
			requestBody: validBody,
			setupMocks: func(s *ServiceMock) {
				s.On("Register", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, allocation.ErrInvalidAmount).Once()
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantStatus:     response.StatusError,
		},
		{
			name:        "partial failure",
			requestBody: validBody,
			setupMocks: func(s *ServiceMock) {
				s.On("Register", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: payment id 42", paymentsvc.ErrPartialFailure)).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantStatus:     response.StatusError,
		},
		{
			name:        "service error",
			requestBody: validBody,
			setupMocks: func(s *ServiceMock) {
				s.On("Register", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("db down")).Once()
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

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var resp map[string]any
			err = json.Unmarshal(rec.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp["status"])

			service.AssertExpectations(t)
		})
	}
}
