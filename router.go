package main

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"sumSheet/contracts"
)

const ApiVersion = "v1"

const subscribePath = "subscribe"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/cells/:cell_id/"+subscribePath, controller.SubscribeAction)

	apiRouterGroup.POST("/cells/:cell_id", controller.SetCellAction)
	apiRouterGroup.GET("/cells/:cell_id", controller.GetCellAction)
	apiRouterGroup.GET("/cells", controller.GetSheetAction)
	apiRouterGroup.GET("/export", controller.ExportAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
