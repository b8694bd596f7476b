package http

import (
	"log/slog"
	"os"

	"github.com/Core-Staff/core-staff/internal/handler/http/middleware"
	"github.com/Core-Staff/core-staff/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	performanceHandler PerformanceHandler,
	analyticsHandler AnalyticsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "core-staff"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/signin", authHandler.Signin)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Leave submission and lookup are reachable from the public leave
		// form without an account.
		r.Route("/leave-requests", func(r chi.Router) {
			r.Post("/", leaveHandler.Submit)
			r.Post("/lookup", leaveHandler.Lookup)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/", leaveHandler.List)
				r.Patch("/{id}", leaveHandler.UpdateStatus)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/lookup", employeeHandler.FindByEmail)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/{id}/clock-out", attendanceHandler.ClockOut)
			})

			r.Route("/performance", func(r chi.Router) {
				r.Route("/reviews", func(r chi.Router) {
					r.Get("/", performanceHandler.ListReviews)
					r.Post("/", performanceHandler.CreateReview)
					r.Get("/{id}", performanceHandler.GetReview)
					r.Put("/{id}", performanceHandler.UpdateReview)
					r.Delete("/{id}", performanceHandler.DeleteReview)
				})
				r.Route("/goals", func(r chi.Router) {
					r.Get("/", performanceHandler.ListGoals)
					r.Post("/", performanceHandler.CreateGoal)
					r.Get("/{id}", performanceHandler.GetGoal)
					r.Put("/{id}", performanceHandler.UpdateGoal)
					r.Delete("/{id}", performanceHandler.DeleteGoal)
				})
				r.Get("/stats", performanceHandler.Stats)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/overview", analyticsHandler.Overview)
				r.Get("/attendance-trends", analyticsHandler.AttendanceTrends)
				r.Get("/department-stats", analyticsHandler.DepartmentRollup)
				r.Get("/kpi-metrics", analyticsHandler.KPIMetrics)
				r.Get("/performance-distribution", analyticsHandler.PerformanceDistribution)
				r.Get("/top-performers", analyticsHandler.TopPerformers)
			})
		})
	})

	return r
}
