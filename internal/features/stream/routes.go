// ================== internal/features/stream/routes.go ==================
package stream

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/campusfix/internal/features/reports"
	"github.com/xyz-asif/campusfix/internal/features/staff"
	"github.com/xyz-asif/campusfix/internal/features/tickets"
	"github.com/xyz-asif/campusfix/internal/pkg/response"
	"github.com/xyz-asif/campusfix/internal/pkg/token"
)

// RegisterRoutes starts the snapshot hub, one change-stream watcher per
// collection, and mounts the websocket endpoint.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	hub := NewHub()
	go hub.Run()

	reportsRepo := reports.NewRepository(db)
	staffRepo := staff.NewRepository(db)
	ticketsRepo := tickets.NewRepository(db)

	loaders := map[string]Loader{
		CollectionReports: func(ctx context.Context) (interface{}, error) {
			return reportsRepo.ListAll(ctx)
		},
		CollectionStaff: func(ctx context.Context) (interface{}, error) {
			return staffRepo.List(ctx)
		},
		CollectionTickets: func(ctx context.Context) (interface{}, error) {
			return ticketsRepo.ListAll(ctx)
		},
	}

	ctx := context.Background()
	go NewWatcher(hub, db, CollectionReports, "reports", loaders[CollectionReports]).Run(ctx)
	go NewWatcher(hub, db, CollectionStaff, "users", loaders[CollectionStaff]).Run(ctx)
	go NewWatcher(hub, db, CollectionTickets, "support_tickets", loaders[CollectionTickets]).Run(ctx)

	handler := NewHandler(hub, loaders)
	router.GET("/ws/:collection", wsAuth(), handler.Serve)
}

// wsAuth validates the JWT like middleware.Auth but also accepts a
// "token" query parameter, since browsers cannot set headers on
// websocket requests.
func wsAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			header := c.GetHeader("Authorization")
			fields := strings.Fields(header)
			if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
				tokenString = fields[1]
			} else {
				tokenString = header
			}
		}
		if tokenString == "" {
			response.Unauthorized(c, "Authorization required")
			c.Abort()
			return
		}

		claims, err := token.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
