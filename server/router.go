package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/evmwatch/blockfilter/http/controller"
	"github.com/evmwatch/blockfilter/middleware"
)

func addRouters(r gin.IRouter) {
	addHealthRouter(r)
	apiV1 := setV1Group(r)
	filterCtrl := controller.FilterController{}
	filterCtrl.Routers(apiV1)
}

func setV1Group(r gin.IRouter) gin.IRouter {
	return r.Group("/api/v1", middleware.CheckAPIKey())
}

func addHealthRouter(r gin.IRouter) {
	r.GET("/health", func(context *gin.Context) {
		context.JSON(http.StatusOK, fmt.Sprintf("running on %v", time.Now()))
	})
}
