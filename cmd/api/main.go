package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/worktrail-hq/attendance-backend-go/internal/config"
	appHTTP "github.com/worktrail-hq/attendance-backend-go/internal/handler/http"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/cron"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/database"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/geo"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/geocode"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/storage"
	"github.com/worktrail-hq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worktrail-hq/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/worktrail-hq/attendance-backend-go/internal/service/auth"
	"github.com/worktrail-hq/attendance-backend-go/internal/service/file"
	overtimeService "github.com/worktrail-hq/attendance-backend-go/internal/service/overtime"
	reportService "github.com/worktrail-hq/attendance-backend-go/internal/service/report"
	userService "github.com/worktrail-hq/attendance-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	workEntryRepo := postgresql.NewWorkEntryRepository(db)
	otRequestRepo := postgresql.NewOTRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	geocoder := geocode.NewClient(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, cfg.Geocoder.Timeout)

	office := geo.Office{
		Coordinate: geo.Coordinate{
			Latitude:  cfg.Office.Latitude,
			Longitude: cfg.Office.Longitude,
		},
		RadiusMeters: cfg.Office.RadiusMeters,
	}

	fileSvc := file.NewFileService(fileStorage)
	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, refreshTokenRepo)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(workEntryRepo, fileSvc, geocoder, office)
	overtimeSvc := overtimeService.NewOTService(otRequestRepo, userRepo)
	reportSvc := reportService.NewReportService(workEntryRepo, otRequestRepo, userRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		userHandler,
		attendanceHandler,
		overtimeHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(workEntryRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
