package main

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"log/slog"
	"net/http"
)

const ExitCodeMainError = 1

func RunApp(config AppConfig, logger *slog.Logger) error {
	gin.SetMode(gin.ReleaseMode)

	serviceContainer, err := BuildServiceContainer(config, logger)

	if err == nil {
		serviceContainer.WebhookDispatcher.Start()
		defer serviceContainer.WebhookDispatcher.Close()

		logger.Info("sheet service started", "listen", config.ListenAddr, "cells", serviceContainer.Resolver.CellIds())
		err = http.ListenAndServe(config.ListenAddr, serviceContainer.Router)
	}

	return err
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
