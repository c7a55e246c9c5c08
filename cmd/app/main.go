package main

import (
	"fmt"
	"log/slog"
	"os"

	"lastmile/cmd"
	httpin "lastmile/internal/adapters/in/http"
	"lastmile/internal/adapters/out/postgres/courierrepo"
	"lastmile/internal/adapters/out/postgres/facilityrepo"
	"lastmile/internal/adapters/out/postgres/merchantrepo"
	"lastmile/internal/adapters/out/postgres/orderrepo"
	"lastmile/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	envFile := pflag.String("env-file", ".env", "path to the environment file")
	pflag.Parse()

	configs := getConfigs(*envFile)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(
		app.CreateGetUnassignedOrdersQueryHandler(),
		app.CreateAssignCourierCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs(envFile string) cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable(envFile, "HTTP_PORT"),
		DBHost:            goDotEnvVariable(envFile, "DB_HOST"),
		DBPort:            goDotEnvVariable(envFile, "DB_PORT"),
		DBUser:            goDotEnvVariable(envFile, "DB_USER"),
		DBPassword:        goDotEnvVariable(envFile, "DB_PASSWORD"),
		DBName:            goDotEnvVariable(envFile, "DB_NAME"),
		DBSslMode:         goDotEnvVariable(envFile, "DB_SSLMODE"),
		MapboxAccessToken: goDotEnvVariable(envFile, "MAPBOX_ACCESS_TOKEN"),
	}
	return config
}

func goDotEnvVariable(envFile, key string) string {
	err := godotenv.Load(envFile)
	if err != nil {
		log.Fatalf("Error loading %s file", envFile)
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&courierrepo.CourierDTO{},
		&courierrepo.ServiceTypeDTO{},
		&facilityrepo.FacilityDTO{},
		&merchantrepo.MerchantConfigDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateIngestOrderCommandHandler(),
		app.CreateGetDeliveryRatesQueryHandler(),
		app.CreateGetUnassignedOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
