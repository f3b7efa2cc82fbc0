// Package acknowledge реализует HTTP-обработчик подтверждения напоминания.
// Подтверждённое напоминание помечается отправленным и больше не попадает
// в выборку планировщика, пока дату напоминания не отредактируют.
package acknowledge

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-console/internal/http/response"
	"github.com/magabrotheeeer/gym-console/internal/lib/sl"
	"github.com/magabrotheeeer/gym-console/internal/storage/repository"
)

// Handler обрабатывает запросы на подтверждение напоминания.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики подтверждения напоминания.
type Service interface {
	Acknowledge(ctx context.Context, id int) (int, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Подтвердить напоминание
// @Description Помечает напоминание события отправленным.
// @Tags Events
// @Produce  json
// @Param id path int true "ID события"
// @Success 200 {object} map[string]any "Напоминание подтверждено"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Событие не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /events/{id}/acknowledge [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.acknowledge"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	res, err := h.service.Acknowledge(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("event not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
			return
		}
		log.Error("failed to acknowledge reminder", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not acknowledge reminder"))
		return
	}

	log.Info("success to acknowledge reminder", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"acknowledged_count": res,
	}))
}
