// Package remove реализует HTTP-обработчик для удаления карточки клиента.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-console/internal/http/response"
	"github.com/magabrotheeeer/gym-console/internal/lib/sl"
)

// Handler обрабатывает запросы на удаление карточки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления карточки.
type Service interface {
	Remove(ctx context.Context, uid string) (int, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить карточку клиента
// @Description Удаляет карточку клиента по UID. Возвращает количество удалённых записей.
// @Tags Members
// @Produce  json
// @Param uid path string true "UID клиента"
// @Success 200 {object} map[string]any "Карточка удалена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /members/{uid} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid := chi.URLParam(r, "uid")

	res, err := h.service.Remove(r.Context(), uid)
	if err != nil {
		log.Error("failed to delete member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete member"))
		return
	}

	log.Info("success to delete member", slog.String("uid", uid))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_count": res,
	}))
}
