// Package list реализует HTTP-обработчик списка событий календаря
// за диапазон дат.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-console/internal/http/response"
	"github.com/magabrotheeeer/gym-console/internal/lib/sl"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

// Handler обрабатывает запросы на получение событий за диапазон дат.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка событий.
type Service interface {
	ListRange(ctx context.Context, from, to time.Time) ([]*models.Event, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список событий календаря
// @Description Возвращает события, пересекающиеся с диапазоном дат from..to (формат 02-01-2006).
// @Tags Events
// @Produce  json
// @Param from query string true "Начало диапазона"
// @Param to query string true "Конец диапазона"
// @Success 200 {object} map[string]any "Список событий"
// @Failure 400 {object} response.ErrorResponse "Некорректный диапазон дат"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /events [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.event.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	from, err := time.Parse("02-01-2006", r.URL.Query().Get("from"))
	if err != nil {
		log.Error("invalid from date", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid from date"))
		return
	}

	to, err := time.Parse("02-01-2006", r.URL.Query().Get("to"))
	if err != nil {
		log.Error("invalid to date", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid to date"))
		return
	}

	res, err := h.service.ListRange(r.Context(), from, to)
	if err != nil {
		log.Error("failed to list events", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list events"))
		return
	}

	log.Info("list events", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"events":     res,
	}))
}
