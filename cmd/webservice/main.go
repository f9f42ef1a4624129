package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopantik/payment-service/config"
	"github.com/shopantik/payment-service/internal/controller"
	"github.com/shopantik/payment-service/internal/downstream"
	circuitbreaker "github.com/shopantik/payment-service/internal/infrastructure/circuit-breaker"
	"github.com/shopantik/payment-service/internal/infrastructure/database/postgres"
	"github.com/shopantik/payment-service/internal/infrastructure/message-queue/kafka"
	paymentgateway "github.com/shopantik/payment-service/internal/infrastructure/payment-gateway"
	"github.com/shopantik/payment-service/internal/infrastructure/tracing"
	localmiddleware "github.com/shopantik/payment-service/internal/middleware"
	"github.com/shopantik/payment-service/internal/repository"
	"github.com/shopantik/payment-service/internal/service"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	log.Info().
		Str("store_id", config.SSLCommerzConfig.StoreID).
		Bool("live_mode", config.SSLCommerzConfig.IsLive).
		Str("backend_url", config.BackendURL).
		Str("frontend_url", config.FrontendURL).
		Msg("SSLCommerz configuration")

	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	cb := circuitbreaker.CreateCircuitBreaker("payment-service")
	sslcommerzClient := paymentgateway.CreateSSLCommerzClient(config, cb)

	kafkaProducer := kafka.CreateKafkaProducer(config)

	db, err := postgres.GetDBInstance(config.PostgreSQLConfig)
	if err != nil {
		panic(err)
	}

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
	if err != nil {
		fmt.Println(err)
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			fmt.Println(err)
		}
	}()

	tracer := traceProvider.Tracer("payment-service")

	e := echo.New()

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	confirmationSender := downstream.CreateEmailConfirmationSender(config)
	inventoryPublisher := downstream.CreateKafkaInventoryPublisher(kafkaProducer)

	orderRepo := repository.CreateOrderRepository(db)
	paymentSvc := service.CreatePaymentService(orderRepo, sslcommerzClient, confirmationSender, inventoryPublisher, config)
	controller.CreatePaymentController(e, paymentSvc, config.FrontendURL)

	mode := "SANDBOX"
	if config.SSLCommerzConfig.IsLive {
		mode = "LIVE PRODUCTION"
	}
	log.Info().Str("mode", mode).Str("port", config.ServicePort).Msg("starting payment service")

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
