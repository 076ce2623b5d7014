package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"commerce/cmd"
	httpin "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/kafka"
	"commerce/internal/adapters/out/postgres/catalogrepo"
	"commerce/internal/adapters/out/postgres/orderrepo"
	redisadapter "commerce/internal/adapters/out/redis"
	"commerce/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	sessionStore := mustCreateSessionStore(configs)
	publisher := mustCreatePublisher(configs)
	defer publisher.Close()

	app, err := cmd.NewCompositionRoot(configs, gormDB, sessionStore, publisher)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		configs.StaleOrderCronSpec,
		configs.StaleOrderTTL,
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
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		RedisAddr:  goDotEnvVariable("REDIS_ADDR"),
		SessionTTL: durationEnvVariable("SESSION_TTL"),

		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventsTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),

		ChannelCode:             goDotEnvVariable("CHANNEL_CODE"),
		ChannelCurrencyCode:     goDotEnvVariable("CHANNEL_CURRENCY_CODE"),
		ChannelPricesIncludeTax: boolEnvVariable("CHANNEL_PRICES_INCLUDE_TAX"),
		ChannelDefaultTaxZone:   goDotEnvVariable("CHANNEL_DEFAULT_TAX_ZONE"),

		AnonymousAccessWindow: durationEnvVariable("ANONYMOUS_ACCESS_WINDOW"),
		StaleOrderTTL:         durationEnvVariable("STALE_ORDER_TTL"),
		StaleOrderCronSpec:    goDotEnvVariable("STALE_ORDER_CRON_SPEC"),

		OpenAPISpecPath: goDotEnvVariable("OPENAPI_SPEC_PATH"),
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

func durationEnvVariable(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func boolEnvVariable(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid boolean in %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.PaymentDTO{},
		&catalogrepo.VariantDTO{},
		&catalogrepo.TaxZoneDTO{},
		&catalogrepo.TaxRateDTO{},
		&catalogrepo.ShippingMethodDTO{},
		&catalogrepo.PromotionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func mustCreateSessionStore(configs cmd.Config) *redisadapter.RedisSessionStore {
	client := goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})

	store, err := redisadapter.NewRedisSessionStore(client, configs.SessionTTL)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	return store
}

func mustCreatePublisher(configs cmd.Config) *kafka.KafkaOrderEventPublisher {
	producer, err := kafka.NewSyncProducer([]string{configs.KafkaHost})
	if err != nil {
		log.Fatalf("Failed to connect to kafka: %v", err)
	}

	publisher, err := kafka.NewKafkaOrderEventPublisher(producer, configs.KafkaOrderEventsTopic)
	if err != nil {
		log.Fatalf("Failed to create event publisher: %v", err)
	}
	return publisher
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	validator, err := httpin.NewOpenAPIValidator(configs.OpenAPISpecPath)
	if err != nil {
		log.Fatalf("Failed to load OpenAPI spec: %v", err)
	}

	e.Use(httpin.RequestContextMiddleware(app.SessionStore(), app.Channel()))
	e.Use(validator)

	server := httpin.NewServer(
		app.CreateAddItemToOrderCommandHandler(),
		app.CreateAdjustItemQuantityCommandHandler(),
		app.CreateRemoveItemFromOrderCommandHandler(),
		app.CreateSetShippingMethodCommandHandler(),
		app.CreateSetCustomerForOrderCommandHandler(),
		app.CreateTransitionOrderToStateCommandHandler(),
		app.CreateAddPaymentToOrderCommandHandler(),
		app.CreateActiveOrderQueryHandler(),
		app.CreateOrderByCodeQueryHandler(),
		app.CreateNextOrderStatesQueryHandler(),
		app.CreateEligibleShippingMethodsQueryHandler(),
		app.CreateListOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
