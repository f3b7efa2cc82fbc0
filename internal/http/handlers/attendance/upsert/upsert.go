// Package upsert реализует HTTP-обработчик отметки посещаемости сотрудника.
// Повторная отметка за тот же день заменяет предыдущую.
package upsert

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/magabrotheeeer/gym-console/internal/http/response"
	"github.com/magabrotheeeer/gym-console/internal/lib/sl"
	"github.com/magabrotheeeer/gym-console/internal/models"
)

// Handler управляет HTTP-запросами на отметку посещаемости.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики табеля.
type Service interface {
	Upsert(ctx context.Context, req models.DummyAttendance) (int, error)
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
// @Summary Отметить посещаемость
// @Description Записывает отметку сотрудника за день, заменяя предыдущую отметку за ту же дату.
// @Tags Attendance
// @Accept  json
// @Produce  json
// @Param request body models.DummyAttendance true "Отметка посещаемости"
// @Success 200 {object} map[string]any "Отметка записана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /attendance [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.attendance.upsert"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyAttendance
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	id, err := h.service.Upsert(r.Context(), req)
	if err != nil {
		log.Error("failed to record attendance", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not record attendance"))
		return
	}

	log.Info("success to record attendance", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"record_id": id,
	}))
}
