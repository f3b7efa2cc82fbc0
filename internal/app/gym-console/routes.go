// Package gymconsole предоставляет маршруты и жизненный цикл
// HTTP-приложения административной консоли.
package gymconsole

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	alertshandler "github.com/magabrotheeeer/gym-console/internal/http/handlers/alerts"
	attendancelist "github.com/magabrotheeeer/gym-console/internal/http/handlers/attendance/list"
	attendanceupsert "github.com/magabrotheeeer/gym-console/internal/http/handlers/attendance/upsert"
	eventacknowledge "github.com/magabrotheeeer/gym-console/internal/http/handlers/event/acknowledge"
	eventcreate "github.com/magabrotheeeer/gym-console/internal/http/handlers/event/create"
	eventlist "github.com/magabrotheeeer/gym-console/internal/http/handlers/event/list"
	eventremove "github.com/magabrotheeeer/gym-console/internal/http/handlers/event/remove"
	eventupdate "github.com/magabrotheeeer/gym-console/internal/http/handlers/event/update"
	"github.com/magabrotheeeer/gym-console/internal/http/handlers/health"
	memberarchive "github.com/magabrotheeeer/gym-console/internal/http/handlers/member/archive"
	membercreate "github.com/magabrotheeeer/gym-console/internal/http/handlers/member/create"
	memberlist "github.com/magabrotheeeer/gym-console/internal/http/handlers/member/list"
	memberread "github.com/magabrotheeeer/gym-console/internal/http/handlers/member/read"
	memberremove "github.com/magabrotheeeer/gym-console/internal/http/handlers/member/remove"
	memberupdate "github.com/magabrotheeeer/gym-console/internal/http/handlers/member/update"
	"github.com/magabrotheeeer/gym-console/internal/http/handlers/payment/paymentcreate"
	"github.com/magabrotheeeer/gym-console/internal/http/handlers/payment/paymentlist"
	"github.com/magabrotheeeer/gym-console/internal/http/handlers/payment/paymentremove"
	"github.com/magabrotheeeer/gym-console/internal/http/middlewarectx"
	alertservice "github.com/magabrotheeeer/gym-console/internal/services/alerts"
	attendanceservice "github.com/magabrotheeeer/gym-console/internal/services/attendance"
	eventservice "github.com/magabrotheeeer/gym-console/internal/services/event"
	memberservice "github.com/magabrotheeeer/gym-console/internal/services/member"
	paymentservice "github.com/magabrotheeeer/gym-console/internal/services/payment"
)

// RegisterRoutes регистрирует все маршруты консоли.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	memberService *memberservice.MemberService,
	paymentService *paymentservice.PaymentService,
	eventService *eventservice.EventService,
	attendanceService *attendanceservice.AttendanceService,
	alertsService *alertservice.AlertsService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Post("/members", membercreate.New(logger, memberService).ServeHTTP)
		r.Get("/members", memberlist.New(logger, memberService).ServeHTTP)
		r.Get("/members/{uid}", memberread.New(logger, memberService).ServeHTTP)
		r.Put("/members/{uid}", memberupdate.New(logger, memberService).ServeHTTP)
		r.Delete("/members/{uid}", memberremove.New(logger, memberService).ServeHTTP)
		r.Post("/members/{uid}/archive", memberarchive.New(logger, memberService).ServeHTTP)
		r.Get("/members/{uid}/payments", paymentlist.New(logger, paymentService).ServeHTTP)

		r.Post("/payments", paymentcreate.New(logger, paymentService).ServeHTTP)
		r.Delete("/payments/{id}", paymentremove.New(logger, paymentService).ServeHTTP)

		r.Post("/events", eventcreate.New(logger, eventService).ServeHTTP)
		r.Get("/events", eventlist.New(logger, eventService).ServeHTTP)
		r.Put("/events/{id}", eventupdate.New(logger, eventService).ServeHTTP)
		r.Delete("/events/{id}", eventremove.New(logger, eventService).ServeHTTP)
		r.Post("/events/{id}/acknowledge", eventacknowledge.New(logger, eventService).ServeHTTP)

		r.Post("/attendance", attendanceupsert.New(logger, attendanceService).ServeHTTP)
		r.Get("/attendance/{uid}", attendancelist.New(logger, attendanceService).ServeHTTP)

		r.Get("/alerts", alertshandler.New(logger, alertsService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
