// Package list реализует HTTP-обработчик выборки табеля сотрудника
// за диапазон дат.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-console/internal/http/response"
	"github.com/magabrotheeeer/gym-console/internal/lib/sl"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

// Handler обрабатывает запросы на выборку табеля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки табеля.
type Service interface {
	List(ctx context.Context, technicianUID string, from, to time.Time) ([]*models.AttendanceRecord, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Табель сотрудника
// @Description Возвращает отметки посещаемости сотрудника за диапазон дат from..to (формат 02-01-2006).
// @Tags Attendance
// @Produce  json
// @Param uid path string true "UID сотрудника"
// @Param from query string true "Начало диапазона"
// @Param to query string true "Конец диапазона"
// @Success 200 {object} map[string]any "Отметки посещаемости"
// @Failure 400 {object} response.ErrorResponse "Некорректный диапазон дат"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /attendance/{uid} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.attendance.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	technicianUID := chi.URLParam(r, "uid")

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

	res, err := h.service.List(r.Context(), technicianUID, from, to)
	if err != nil {
		log.Error("failed to list attendance", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list attendance"))
		return
	}

	log.Info("list attendance", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"records":    res,
	}))
}
