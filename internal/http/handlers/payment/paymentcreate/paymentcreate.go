// Package paymentcreate реализует HTTP-обработчик приёма платежа.
//
// Handler принимает JSON-запрос с данными платежа, валидирует их и вызывает
// бизнес-логику приёма: начисление месяцев, продление абонемента и запись
// платежа в историю. Возвращает итог начисления для подтверждения на стойке.
package paymentcreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/gym-console/internal/domain/allocation"
	"github.com/magabrotheeeer/gym-console/internal/http/response"
	"github.com/magabrotheeeer/gym-console/internal/lib/sl"
	"github.com/magabrotheeeer/gym-console/internal/models"
	paymentsvc "github.com/magabrotheeeer/gym-console/internal/services/payment"
	"github.com/magabrotheeeer/gym-console/internal/storage/repository"
)

// Handler управляет HTTP-запросами на приём платежей.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики приёма платежа.
type Service interface {
	Register(ctx context.Context, req models.DummyPayment, today time.Time) (*paymentsvc.RegisterResult, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Принять платёж
// @Description Принимает платёж клиента, начисляет месяцы и продлевает абонемент. Возвращает итог начисления.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body models.DummyPayment true "Данные платежа"
// @Success 200 {object} map[string]any "Итог приёма платежа"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации или недопустимая сумма"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при приёме платежа"
// @Router /payments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.paymentcreate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPayment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	res, err := h.service.Register(r.Context(), req, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Error("member not found", slog.String("member_uid", req.MemberUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("member not found"))
		case errors.Is(err, allocation.ErrInvalidAmount),
			errors.Is(err, allocation.ErrUnknownPaymentType):
			log.Error("invalid payment", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))
		case errors.Is(err, paymentsvc.ErrPartialFailure):
			log.Error("payment recorded without member update", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("payment recorded but member update failed, reconciliation required"))
		default:
			log.Error("failed to register payment", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not register payment"))
		}
		return
	}

	log.Info("success to register payment",
		slog.Int("payment_id", res.PaymentID),
		slog.Int("months", res.Months))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"payment_id":      res.PaymentID,
		"months":          res.Months,
		"expiration_date": res.ExpirationDate,
		"message":         res.Message,
	}))
}
