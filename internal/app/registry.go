package app

import (
	"leave-portal/internal/request"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(api *gin.RouterGroup, db *gorm.DB) {
	requestRepo := request.NewRepository(db)
	requestService := request.NewService(requestRepo)
	requestHandler := request.NewHandler(requestService)
	request.RegisterRoutes(api, requestHandler)
}
