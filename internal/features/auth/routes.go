// ================== internal/features/auth/routes.go ==================
package auth

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/campusfix/internal/config"
	"github.com/xyz-asif/campusfix/internal/middleware"
	"github.com/xyz-asif/campusfix/internal/pkg/ratelimit"
)

// RegisterRoutes registers the auth routes and initializes dependencies.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	firebaseClient, err := InitFirebase(cfg)
	if err != nil {
		// Email/password login still works without Firebase.
		log.Printf("Firebase unavailable, ID-token login disabled: %v", err)
	}

	repo := NewRepository(db)
	handler := NewHandler(repo, firebaseClient)

	// Login endpoints are brute-force targets, so they get a tight
	// per-IP limit.
	loginLimiter := ratelimit.New(10, time.Minute)
	loginLimiter.StartCleanup(10 * time.Minute)

	group := router.Group("/auth")
	{
		group.POST("/login", ratelimit.Middleware(loginLimiter), handler.Login)
		group.POST("/firebase", ratelimit.Middleware(loginLimiter), handler.FirebaseLogin)
		group.GET("/me", middleware.Auth(), handler.GetMe)
	}
}
