// ================== internal/routes/routes.go ==================
package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/campusfix/internal/config"
	"github.com/xyz-asif/campusfix/internal/features/analytics"
	"github.com/xyz-asif/campusfix/internal/features/auth"
	"github.com/xyz-asif/campusfix/internal/features/media"
	"github.com/xyz-asif/campusfix/internal/features/reports"
	"github.com/xyz-asif/campusfix/internal/features/staff"
	"github.com/xyz-asif/campusfix/internal/features/stream"
	"github.com/xyz-asif/campusfix/internal/features/tickets"
)

// SetupRoutes mounts every feature under /api/v1.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	v1 := router.Group("/api/v1")

	staffRepo := staff.NewRepository(db)

	auth.RegisterRoutes(v1, db, cfg)
	staff.RegisterRoutes(v1, db)
	reports.RegisterRoutes(v1, db, staffRepo)
	tickets.RegisterRoutes(v1, db)
	analytics.RegisterRoutes(v1, db)
	media.RegisterRoutes(v1, cfg)
	stream.RegisterRoutes(v1, db)
}
