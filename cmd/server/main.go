package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/forknroll/go-boilerplate-base/internal/config"
	"github.com/forknroll/go-boilerplate-base/internal/env"
	"github.com/forknroll/go-boilerplate-base/internal/handler"
	handlerhttp "github.com/forknroll/go-boilerplate-base/internal/handler/http"
	"github.com/forknroll/go-boilerplate-base/internal/logger"
	"github.com/forknroll/go-boilerplate-base/internal/metrics"
	"github.com/forknroll/go-boilerplate-base/internal/server"
	"github.com/forknroll/go-boilerplate-base/internal/service"
	"github.com/forknroll/go-boilerplate-base/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-boilerplate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewWithRegistry(registry)
	collector.SetBuildInfo(buildInfo.BuildVersion(), buildInfo.BuildDate(), buildInfo.BuildCommit())

	source := env.DotEnvSource{Files: cfg.Env.Files}

	serverEnv, err := config.NewEnv(env.ServerSide, source, env.WithObserver(collector.ObserveEnvValidation))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid server environment")
	}

	nodeEnv, err := env.Lookup[string](serverEnv, config.KeyNodeEnv)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading NODE_ENV")
	}

	log = logger.NewLoggerWithFields(logger.Fields{
		logger.ContextFieldName: "go-boilerplate-server",
		"node_env":              nodeEnv,
	}, logger.WithDevelopment(nodeEnv == config.NodeEnvDevelopment))

	// validated lazily on the first request that reads it
	clientEnv, err := config.NewEnv(env.ClientSide, source, env.WithObserver(collector.ObserveEnvValidation))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid client environment schema")
	}

	services, err := service.NewServices(buildInfo, serverEnv, clientEnv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	var handlerOpts []handlerhttp.Option
	if !cfg.Metrics.Disabled {
		handlerOpts = append(handlerOpts, handlerhttp.WithMetrics(collector, registry, cfg.Metrics.Path))
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log, handlerOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
