// Package alerts реализует HTTP-обработчик сводки уведомлений консоли:
// корзины просроченных абонементов, истекающих и отсутствующих справок
// и ожидающих оплат для значка меню.
package alerts

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-console/internal/domain/alerts"
	"github.com/magabrotheeeer/gym-console/internal/http/response"
	"github.com/magabrotheeeer/gym-console/internal/lib/sl"
)

// Handler обрабатывает запросы сводки уведомлений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики сводки.
type Service interface {
	Digest(ctx context.Context, today time.Time) ([]alerts.Bucket, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сводка уведомлений
// @Description Возвращает непустые корзины уведомлений по активным клиентам на сегодня.
// @Tags Alerts
// @Produce  json
// @Success 200 {object} map[string]any "Корзины уведомлений"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /alerts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.alerts"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.Digest(r.Context(), time.Now())
	if err != nil {
		log.Error("failed to build alerts digest", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build alerts digest"))
		return
	}

	log.Info("alerts digest built", "buckets", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"buckets": res,
	}))
}
