package request

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	requests := r.Group("/requests")
	{
		requests.POST("", handler.Create)
		requests.GET("", handler.GetAll)
		requests.GET("/:id", handler.GetByID)
		requests.PUT("/:id", handler.UpdateStatus)
	}
}
