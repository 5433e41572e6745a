package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"negoce/cmd"
	httpin "negoce/internal/adapters/in/http"
	"negoce/internal/adapters/out/kafka"
	"negoce/internal/adapters/out/postgres"
	redisout "negoce/internal/adapters/out/redis"
	"negoce/internal/adapters/out/smtp"
	"negoce/internal/core/domain/services"
	"negoce/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		configs.DBUser, configs.DBPassword, configs.DBHost, configs.DBPort, configs.DBName, configs.DBSslMode)

	if err := postgres.RunMigrations(dsn, configs.MigrationsPath); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	gormDB, err := postgres.ConnectDB(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	tariff, err := services.NewTariff(configs.TariffAirPerKg, configs.TariffSeaPerM3)
	if err != nil {
		log.Fatalf("Invalid tariff configuration: %v", err)
	}

	publisher := kafka.NewStepChangedPublisher([]string{configs.KafkaHost}, configs.KafkaStepChangedTopic)
	defer publisher.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	defer redisClient.Close()
	statsCache := redisout.NewStatsCache(redisClient, time.Duration(configs.StatsCacheTTLSecs)*time.Second)

	mailer := smtp.NewMailer(configs.SMTPAddr, configs.SMTPHost, configs.SMTPFrom, configs.SMTPUsername, configs.SMTPPassword)

	app := cmd.NewCompositionRoot(configs, gormDB, tariff, publisher, statsCache, logger)

	jobManager := jobs.NewJobManager(app.CreateCloseStaleOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, mailer, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		AppID:                 goDotEnvVariable("APP_ID"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		MigrationsPath:        goDotEnvVariable("MIGRATIONS_PATH"),
		TariffAirPerKg:        goDotEnvFloat("TARIFF_AIR_PER_KG", 29),
		TariffSeaPerM3:        goDotEnvFloat("TARIFF_SEA_PER_M3", 600),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaStepChangedTopic: goDotEnvVariable("KAFKA_STEP_CHANGED_TOPIC"),
		RedisAddr:             goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:         goDotEnvVariable("REDIS_PASSWORD"),
		StatsCacheTTLSecs:     goDotEnvInt("STATS_CACHE_TTL_SECONDS", 60),
		SMTPAddr:              goDotEnvVariable("SMTP_ADDR"),
		SMTPHost:              goDotEnvVariable("SMTP_HOST"),
		SMTPFrom:              goDotEnvVariable("SMTP_FROM"),
		SMTPUsername:          goDotEnvVariable("SMTP_USERNAME"),
		SMTPPassword:          goDotEnvVariable("SMTP_PASSWORD"),
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

func goDotEnvFloat(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func goDotEnvInt(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, mailer *smtp.Mailer, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateClientCommandHandler(),
		app.CreateUpdateClientCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStepCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateCreateCotationCommandHandler(),
		app.CreateDeleteCotationCommandHandler(),
		app.CreateConvertCotationCommandHandler(),
		app.CreateRecordTransactionCommandHandler(),
		app.CreateGetClientsQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderTrackingQueryHandler(),
		app.CreateGetCotationsQueryHandler(),
		app.CreateGetFinanceSummaryQueryHandler(),
		app.CreateGetDashboardStatsQueryHandler(),
		mailer,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
