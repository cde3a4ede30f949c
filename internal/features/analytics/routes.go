// ================== internal/features/analytics/routes.go ==================
package analytics

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/campusfix/internal/features/reports"
	"github.com/xyz-asif/campusfix/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	service := NewService(reports.NewRepository(db))
	handler := NewHandler(service)

	group := router.Group("/analytics")
	group.Use(middleware.Auth())
	{
		group.GET("/summary", handler.Summary)
		group.GET("/breakdown", handler.Breakdown)
		group.GET("/reports", handler.Table)
	}
}
