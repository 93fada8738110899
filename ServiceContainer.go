package main

import (
	"github.com/gin-gonic/gin"
	"log/slog"
	"sumSheet/contracts"
)

type ServiceContainer struct {
	Logger            *slog.Logger
	Resolver          contracts.Resolver
	Sheet             contracts.Sheet
	WebhookDispatcher contracts.WebhookDispatcher
	SheetExporter     contracts.SheetExporter
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer(config AppConfig, logger *slog.Logger) (container ServiceContainer, err error) {
	canonicalizer := NewCanonicalizer()

	container.Logger = logger
	container.Resolver, err = NewResolver(canonicalizer, config.CellIds)
	if err != nil {
		return
	}

	container.WebhookDispatcher = NewWebhookDispatcher(logger)
	container.Sheet = NewSheet(container.Resolver, canonicalizer, container.WebhookDispatcher)
	container.SheetExporter = NewSheetExporter()
	container.ApiController = NewApiController(container.Sheet, container.WebhookDispatcher, container.SheetExporter)

	container.Router = SetupRouter(container.ApiController)

	return
}
