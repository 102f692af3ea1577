package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/config"
	appHTTP "github.com/pontohr/ponto-backend-go/internal/handler/http"
	"github.com/pontohr/ponto-backend-go/internal/pkg/database"
	"github.com/pontohr/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontohr/ponto-backend-go/internal/pkg/oauth"
	"github.com/pontohr/ponto-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/pontohr/ponto-backend-go/internal/service/auth"
	justificationService "github.com/pontohr/ponto-backend-go/internal/service/justification"
	masterService "github.com/pontohr/ponto-backend-go/internal/service/master"
	reportService "github.com/pontohr/ponto-backend-go/internal/service/report"
	timeRecordService "github.com/pontohr/ponto-backend-go/internal/service/timerecord"
	userService "github.com/pontohr/ponto-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	functionRepo := postgresql.NewFunctionRepository(db)
	employmentTypeRepo := postgresql.NewEmploymentTypeRepository(db)
	justificationTypeRepo := postgresql.NewJustificationTypeRepository(db)
	passwordResetRepo := postgresql.NewPasswordResetRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, JWTRepository, googleService)
	userSvc := userService.NewUserService(userRepo)
	passwordResetSvc := userService.NewPasswordResetService(db, userRepo, passwordResetRepo)
	timeRecordSvc := timeRecordService.NewTimeRecordService(timeRecordRepo, location)
	justificationSvc := justificationService.NewJustificationService(justificationRepo, userRepo)
	masterSvc := masterService.NewMasterService(departmentRepo, functionRepo, employmentTypeRepo, justificationTypeRepo)
	reportSvc := reportService.NewReportService(userRepo, timeRecordRepo, justificationRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	userHandler := appHTTP.NewUserHandler(userSvc)
	timeRecordHandler := appHTTP.NewTimeRecordHandler(timeRecordSvc)
	justificationHandler := appHTTP.NewJustificationHandler(justificationSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	passwordResetHandler := appHTTP.NewPasswordResetHandler(passwordResetSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        cfg.App.Name,
			AppVersion:     cfg.App.Version,
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		authHandler,
		userHandler,
		timeRecordHandler,
		justificationHandler,
		masterHandler,
		reportHandler,
		passwordResetHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
