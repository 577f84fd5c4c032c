package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/citizengeo/sites/internal/config"
	"github.com/citizengeo/sites/internal/infrastructure/providers"
	"github.com/citizengeo/sites/internal/infrastructure/repository"
	"github.com/citizengeo/sites/internal/present/rest"
	"github.com/citizengeo/sites/internal/present/rest/middleware"
	"github.com/citizengeo/sites/internal/service"
	"github.com/citizengeo/sites/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	db, err := providers.NewDatabase(conf.Server)
	if err != nil {
		panic("failed to connect database")
	}

	err = providers.MigrateDatabase(db)
	if err != nil {
		panic("failed to migrate database")
	}

	var realtime rest.RealtimeSource
	var publisher usecase.SitePublisher
	if conf.Server.RedisAddr != "" {
		signal := service.NewSignalService(providers.NewRedis(conf.Server))
		realtime = signal
		publisher = signal
	}

	siteRepo := repository.NewSiteRepository(db)
	siteTypeRepo := repository.NewSiteTypeRepository(db)
	userRepo := repository.NewUserRepository(db)

	siteUC := usecase.NewSiteUsecase(siteRepo, publisher)
	siteTypeUC := usecase.NewSiteTypeUsecase(siteTypeRepo)

	auth := service.NewAuthService(conf.Auth, userRepo)
	media := service.NewMediaService(conf.Media)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	if conf.Server.EnableTrace {
		shutdown, err := setupTraceProvider(conf.Server.TraceEndpoint)
		if err != nil {
			panic("failed to set up trace provider: " + err.Error())
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("failed to shut down trace provider",
					slog.String("error", err.Error()),
				)
			}
		}()
		e.Use(otelecho.Middleware("sites"))
	}

	authMiddleware := middleware.NewAuthMiddleware(auth)

	handler := rest.NewHandler(siteUC, siteTypeUC, media, realtime)
	handler.RegisterRoutes(e.Group(conf.Server.APIPrefix, authMiddleware.IdentifyIdentity))

	e.Logger.Fatal(e.Start(conf.Server.ListenAddr))
}

func setupTraceProvider(endpoint string) (func(context.Context) error, error) {
	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("sites"),
		)),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
