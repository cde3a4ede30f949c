// ================== internal/features/tickets/routes.go ==================
package tickets

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/campusfix/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	group := router.Group("/tickets")
	group.Use(middleware.Auth())
	{
		group.GET("", handler.List)
		group.GET("/stats", handler.Stats)
		group.GET("/:id", handler.Get)
		group.POST("/:id/responses", handler.AddResponse)
		group.PATCH("/:id/status", handler.UpdateStatus)
		group.POST("/:id/resolve", handler.Resolve)
	}
}
