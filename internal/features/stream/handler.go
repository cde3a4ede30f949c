// ================== internal/features/stream/handler.go ==================
package stream

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/xyz-asif/campusfix/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is enforced at the HTTP layer
	},
}

type Handler struct {
	hub     *Hub
	loaders map[string]Loader
}

func NewHandler(hub *Hub, loaders map[string]Loader) *Handler {
	return &Handler{hub: hub, loaders: loaders}
}

// Serve godoc
// @Summary      Subscribe to live collection snapshots
// @Description  Upgrades to a websocket and pushes the full collection state on every change
// @Tags         stream
// @Param        collection  path  string  true  "Collection name (reports, staff, tickets)"
// @Success      101
// @Failure      404  {object}  response.ErrorResponse
// @Router       /ws/{collection} [get]
func (h *Handler) Serve(c *gin.Context) {
	collection := c.Param("collection")
	if !ValidCollection(collection) {
		response.NotFound(c, "Unknown collection", "UNKNOWN_COLLECTION")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		return
	}

	// Send the current state before registering, so the write cannot
	// interleave with a hub broadcast on the same connection.
	if load := h.loaders[collection]; load != nil {
		if items, err := load(c.Request.Context()); err == nil {
			if err := conn.WriteJSON(Snapshot{Collection: collection, Items: items, At: time.Now()}); err != nil {
				conn.Close()
				return
			}
		}
	}

	sub := Subscription{Conn: conn, Collection: collection}
	h.hub.Subscribe(sub)
	defer h.hub.Unsubscribe(sub)

	// Clients never send payloads; the read loop only detects closure.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
