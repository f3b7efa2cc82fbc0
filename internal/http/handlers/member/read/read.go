// Package read реализует HTTP-обработчик для получения карточки клиента по UID.
//
// Handler извлекает UID из URL-параметров, вызывает бизнес-логику чтения
// карточки и возвращает её вместе с производными статусами абонемента
// и медицинской справки в JSON-формате.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-console/internal/domain/status"
	"github.com/magabrotheeeer/gym-console/internal/http/response"
	"github.com/magabrotheeeer/gym-console/internal/lib/sl"
	"github.com/magabrotheeeer/gym-console/internal/models"
	"github.com/magabrotheeeer/gym-console/internal/storage/repository"
)

// Handler обрабатывает запросы на получение карточки клиента по UID.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения карточки.
type Service interface {
	Read(ctx context.Context, uid string) (*models.Member, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить карточку клиента
// @Description Возвращает карточку клиента вместе с производными статусами абонемента и справки.
// @Tags Members
// @Produce  json
// @Param uid path string true "UID клиента"
// @Success 200 {object} map[string]any "Карточка клиента"
// @Failure 404 {object} response.ErrorResponse "Клиент не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /members/{uid} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid := chi.URLParam(r, "uid")

	res, err := h.service.Read(r.Context(), uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("member not found", slog.String("uid", uid))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("member not found"))
			return
		}
		log.Error("failed to read member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read member"))
		return
	}

	today := time.Now()
	log.Info("success to read member", slog.String("uid", uid))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"member":              res,
		"subscription_status": status.Subscription(*res, today),
		"certificate_status":  status.Certificate(*res, today),
		"expiring_soon":       status.SubscriptionExpiringSoon(*res, today),
	}))
}
