package main

import (
	"fmt"
	"net/http"

	"github.com/Core-Staff/core-staff/internal/config"
	appHTTP "github.com/Core-Staff/core-staff/internal/handler/http"
	"github.com/Core-Staff/core-staff/internal/pkg/database"
	"github.com/Core-Staff/core-staff/internal/pkg/jwt"
	"github.com/Core-Staff/core-staff/internal/pkg/oauth"
	"github.com/Core-Staff/core-staff/internal/repository/postgresql"
	analyticsService "github.com/Core-Staff/core-staff/internal/service/analytics"
	attendanceService "github.com/Core-Staff/core-staff/internal/service/attendance"
	authService "github.com/Core-Staff/core-staff/internal/service/auth"
	employeeService "github.com/Core-Staff/core-staff/internal/service/employee"
	leaveService "github.com/Core-Staff/core-staff/internal/service/leave"
	performanceService "github.com/Core-Staff/core-staff/internal/service/performance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(dsn); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	goalRepo := postgresql.NewGoalRepository(db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(userRepo, JWTService, GoogleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	performanceSvc := performanceService.NewPerformanceService(reviewRepo, goalRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(analyticsRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		performanceHandler,
		analyticsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
