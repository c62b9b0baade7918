package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campusrun/cmd"
	httpin "campusrun/internal/adapters/in/http"
	"campusrun/internal/adapters/out/kafka"
	"campusrun/internal/adapters/out/postgres/addressrepo"
	"campusrun/internal/adapters/out/postgres/delivererrepo"
	"campusrun/internal/adapters/out/postgres/orderrepo"
	"campusrun/internal/jobs"
	"campusrun/internal/pkg/logging"
)

func main() {
	configs := getConfigs()
	logger := logging.NewLogger(configs.LogLevel)

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	publisher, err := kafka.NewOrderEventPublisher(
		strings.Split(configs.KafkaHost, ","),
		configs.KafkaOrderChangedTopic,
	)
	if err != nil {
		log.Fatalf("Failed to create order event publisher: %v", err)
	}
	defer func() {
		_ = publisher.Close()
	}()

	app := cmd.NewCompositionRoot(gormDB, publisher, logger)

	jobManager := startJobs(&app, configs.RatingCronSchedule, logger)
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:              goDotEnvVariable("JWT_SECRET"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		RatingCronSchedule:     goDotEnvVariable("RATING_CRON_SCHEDULE"),
		LogLevel:               goDotEnvVariable("LOG_LEVEL"),
	}

	if config.RatingCronSchedule == "" {
		config.RatingCronSchedule = "*/15 * * * *"
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
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&delivererrepo.DelivererDTO{},
		&addressrepo.AddressDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, schedule string, logger *slog.Logger) *jobs.JobManager {
	jobManager := jobs.NewJobManager(app.CreateRecalculateRatingsCommandHandler(), schedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	server := httpin.NewServer(app.CreateServerHandlers())
	server.RegisterRoutes(e, configs.JWTSecret)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
