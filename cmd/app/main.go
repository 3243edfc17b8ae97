package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"fooddelivery/api"
	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/in/http/middleware"
	"fooddelivery/internal/adapters/out/email"
	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/customerrepo"
	"fooddelivery/internal/adapters/out/postgres/foodrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	notifier := mustCreateNotifier(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := jobs.NewJobManager(
		app.CreateReleaseStrandedCouriersCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:    goDotEnvVariable("JWT_SECRET"),
		SMTPHost:     goDotEnvVariable("SMTP_HOST"),
		SMTPPort:     goDotEnvVariable("SMTP_PORT"),
		SMTPUser:     goDotEnvVariable("SMTP_USER"),
		SMTPPassword: goDotEnvVariable("SMTP_PASSWORD"),
		SMTPFrom:     goDotEnvVariable("SMTP_FROM"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&foodrepo.FoodDTO{},
		&customerrepo.CustomerDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func mustCreateNotifier(configs cmd.Config) *email.SMTPNotifier {
	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		log.Fatalf("Invalid SMTP port: %v", err)
	}

	notifier, err := email.NewSMTPNotifier(
		configs.SMTPHost, port, configs.SMTPUser, configs.SMTPPassword, configs.SMTPFrom)
	if err != nil {
		log.Fatalf("Failed to create SMTP notifier: %v", err)
	}

	return notifier
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	validator, err := middleware.NewOpenAPIValidator(api.OpenAPISpec)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI contract: %v", err)
	}
	e.Use(validator.Middleware())

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateVerifyDeliveryCommandHandler(),
		app.CreateSetOrderStatusCommandHandler(),
		app.CreateCreateCourierCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetCourierOrdersQueryHandler(),
		app.CreateGetAllCouriersQueryHandler(),
	)
	server.RegisterRoutes(e, middleware.JWTAuth(configs.JWTSecret))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
