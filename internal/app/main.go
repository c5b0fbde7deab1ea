package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Egor213/LogViewer/internal/broker"
	kafkabroker "github.com/Egor213/LogViewer/internal/broker/kafka"
	"github.com/Egor213/LogViewer/internal/config"
	logginghelper "github.com/Egor213/LogViewer/internal/controller/common/logging"
	"github.com/Egor213/LogViewer/internal/controller/http/guards"
	httpv1 "github.com/Egor213/LogViewer/internal/controller/http/v1"
	"github.com/Egor213/LogViewer/internal/metrics"
	"github.com/Egor213/LogViewer/internal/service"
	"github.com/Egor213/LogViewer/internal/view"
	errorsUtils "github.com/Egor213/LogViewer/pkg/errors"
	"github.com/Egor213/LogViewer/pkg/flash"
	"github.com/Egor213/LogViewer/pkg/httpserver"
	"github.com/Egor213/LogViewer/pkg/logger"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	log.Info("Logger has been set up")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Repos
	log.Infof("Opening %s log storage", cfg.Storage.Driver)
	repositories, closeRepos, err := NewRepositories(ctx, cfg)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer closeRepos()

	// Producer
	var producer broker.Producer = broker.NopProducer{}
	if cfg.Kafka.Enabled {
		log.Debugf("Kafka brokers: %v", cfg.Kafka.Brokers)
		producer = kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
	}
	defer func() {
		if err := producer.Close(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}()

	// Services
	metricsCnt := metrics.New()
	services := service.NewServices(service.ServicesDependencies{
		Repos:          repositories,
		Counters:       metricsCnt,
		BrokerProducer: producer,
		Clock:          time.Now,
	})

	// HTTP handler
	renderer, err := view.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	filters, err := guards.NewRegistry(cfg.Guards).Resolve(cfg.Viewer.Filters)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	handler := echo.New()
	handler.HideBanner = true
	handler.HidePort = true
	handler.Renderer = renderer
	handler.Use(
		middleware.Recover(),
		logginghelper.RequestLogger(),
		metrics.Middleware(),
		session.Middleware(NewSessionStore(cfg.Session)),
		flash.Middleware,
	)

	controller := httpv1.NewLogViewerController(services.LogViewer, metricsCnt, httpv1.ControllerConfig{
		PerPage: cfg.Viewer.PerPage,
		Prefix:  cfg.Viewer.Prefix,
		Clock:   time.Now,
	})
	httpv1.RegisterRoutes(handler, controller, filters...)

	log.Infof("Starting HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	httpServer := httpserver.New(handler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metricsHandler.HidePort = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
