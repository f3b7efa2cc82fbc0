// Package archive реализует HTTP-обработчик для архивации карточки клиента.
// Архивная карточка исчезает из списков и сводки уведомлений, но история
// платежей сохраняется.
package archive

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

// Handler обрабатывает запросы на архивацию карточки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики архивации карточки.
type Service interface {
	Archive(ctx context.Context, uid string) (int, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Архивировать карточку клиента
// @Description Переводит карточку клиента в состояние archived. История платежей сохраняется.
// @Tags Members
// @Produce  json
// @Param uid path string true "UID клиента"
// @Success 200 {object} map[string]any "Карточка архивирована"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /members/{uid}/archive [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.archive"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid := chi.URLParam(r, "uid")

	res, err := h.service.Archive(r.Context(), uid)
	if err != nil {
		log.Error("failed to archive member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not archive member"))
		return
	}

	log.Info("success to archive member", slog.String("uid", uid))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"archived_count": res,
	}))
}
