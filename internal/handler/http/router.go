package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/worktrail-hq/attendance-backend-go/internal/config"
	"github.com/worktrail-hq/attendance-backend-go/internal/domain/user"
	"github.com/worktrail-hq/attendance-backend-go/internal/handler/http/middleware"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/jwt"
)

// NewRouter wires the HTTP surface. Endpoint paths follow the original client
// contract, including its mixed-case /Admin prefix.
func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	overtimeHandler OvertimeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Stored proof photos.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.LocalPath)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", userHandler.Profile)
				r.Get("/getApprovers", userHandler.ListApprovers)

				r.Get("/status", attendanceHandler.Status)
				r.Get("/checkin-time", attendanceHandler.Status)
				r.Post("/checkin", attendanceHandler.CheckIn)
				r.Post("/checkout", attendanceHandler.CheckOut)
				r.Get("/getOwntime", attendanceHandler.GetOwnTime)

				r.Post("/ot-request", overtimeHandler.Create)
				r.Get("/getMyOTRequests", overtimeHandler.ListMine)
				r.Get("/getOTTime/{userId}", overtimeHandler.UserMonthlyTotal)

				r.Get("/report/calendar", reportHandler.Calendar)
				r.Get("/report/summary", reportHandler.Summary)

				// Senior approval queue
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSenior)
					r.Get("/getAllOTRequests", overtimeHandler.ListAll)
					r.Put("/approveOTRequest", overtimeHandler.SeniorDecide)
				})

				// Admin views of other users' attendance
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewAll))
					r.Post("/getUserCheckingData", attendanceHandler.GetUserCheckingData)
				})
			})

			r.Route("/Admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).
					Get("/getuser", userHandler.List)
				r.Put("/rejectOT/{id}", overtimeHandler.SeniorReject)
				r.Put("/updateOTStatus", overtimeHandler.AdminDecide)
				r.Put("/rejectOTbyAdmin/{id}", overtimeHandler.AdminReject)
				r.Get("/getAllOTRequestsTotal", overtimeHandler.MonthlyTotals)
			})
		})
	})

	return r
}
