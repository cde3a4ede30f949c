// ================== internal/features/reports/routes.go ==================
package reports

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/campusfix/internal/features/staff"
	"github.com/xyz-asif/campusfix/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, staffRepo *staff.Repository) {
	repo := NewRepository(db)
	handler := NewHandler(repo, staffRepo)

	group := router.Group("/reports")
	group.Use(middleware.Auth())
	{
		group.GET("", handler.List)
		group.GET("/pending-reviews", handler.ListPendingReview)
		group.GET("/:id", handler.Get)
		group.POST("/:id/assign", handler.Assign)
		group.POST("/:id/reassign", handler.Reassign)
		group.PATCH("/:id/status", handler.UpdateStatus)
		group.POST("/:id/resolve", handler.Resolve)
		group.POST("/:id/review", handler.Review)
	}
}
