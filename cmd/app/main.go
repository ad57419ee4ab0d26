package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"radiology/cmd"
	httpadapter "radiology/internal/adapters/in/http"
	"radiology/internal/adapters/out/postgres/orderrepo"
	"radiology/internal/adapters/out/postgres/studyrepo"
	"radiology/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateResyncWorklistCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		WorklistURL:     goDotEnvVariable("WORKLIST_URL"),
		WorklistTimeout: goDotEnvVariable("WORKLIST_TIMEOUT"),
		JWTSecret:       goDotEnvVariable("JWT_SECRET"),
		StudyUIDPrefix:  goDotEnvVariable("STUDY_UID_PREFIX"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &studyrepo.StudyDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	server := httpadapter.NewServer(
		app.CreateSaveOrderCommandHandler(),
		app.CreateVoidOrderCommandHandler(),
		app.CreateUnvoidOrderCommandHandler(),
		app.CreateDiscontinueOrderCommandHandler(),
		app.CreateUndiscontinueOrderCommandHandler(),
		app.CreateGetOrderFormQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)

	e := echo.New()
	e.Use(httpadapter.NewAuthMiddleware([]byte(configs.JWTSecret)))
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
