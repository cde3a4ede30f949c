// ================== internal/features/staff/routes.go ==================
package staff

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/campusfix/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	group := router.Group("/staff")
	group.Use(middleware.Auth())
	{
		group.GET("", handler.List)
	}
}
