//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/brainsacos-ui/asistente-linux/internal/bootstrap"
	"github.com/brainsacos-ui/asistente-linux/internal/domain/qa"
	"github.com/brainsacos-ui/asistente-linux/internal/infra/config"
	httpiface "github.com/brainsacos-ui/asistente-linux/internal/interface/http"
	"github.com/brainsacos-ui/asistente-linux/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideQAConfig,
		provideCorpus,
		provideStore,
		qa.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
