// ================== internal/features/media/routes.go ==================
package media

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/campusfix/internal/config"
	"github.com/xyz-asif/campusfix/internal/middleware"
	"github.com/xyz-asif/campusfix/internal/pkg/cloudinary"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "campusfix")
	if err != nil {
		log.Printf("Cloudinary unavailable, uploads disabled: %v", err)
	}

	handler := NewHandler(cld)

	group := router.Group("/media")
	group.Use(middleware.Auth())
	{
		group.POST("/upload", handler.UploadImage)
	}
}
