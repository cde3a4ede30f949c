package stream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, hub *Hub, collection string) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Subscribe(Subscription{Conn: conn, Collection: collection})
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool {
		return hub.SubscriberCount(collection) == 1
	}, time.Second, 10*time.Millisecond)

	return conn
}

func TestHubBroadcastsToSubscribers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialHub(t, hub, CollectionReports)

	hub.Publish(Snapshot{Collection: CollectionReports, Items: []string{"a", "b"}, At: time.Now()})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var got Snapshot
	require.NoError(t, conn.ReadJSON(&got))
	require.Equal(t, CollectionReports, got.Collection)
	require.Equal(t, []interface{}{"a", "b"}, got.Items)
}

func TestHubIsolatesCollections(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialHub(t, hub, CollectionTickets)

	// A reports snapshot must not reach a tickets subscriber.
	hub.Publish(Snapshot{Collection: CollectionReports, Items: []string{"x"}, At: time.Now()})
	hub.Publish(Snapshot{Collection: CollectionTickets, Items: []string{"y"}, At: time.Now()})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var got Snapshot
	require.NoError(t, conn.ReadJSON(&got))
	require.Equal(t, CollectionTickets, got.Collection)
}

func TestHubUnsubscribeRemovesClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := dialHub(t, hub, CollectionStaff)
	_ = conn

	// Unsubscribe the server-side connection by closing the client side:
	// the handler's read loop calls Unsubscribe, but here we exercise the
	// hub directly.
	hub.mu.Lock()
	var serverConn *websocket.Conn
	for c := range hub.clients[CollectionStaff] {
		serverConn = c
	}
	hub.mu.Unlock()

	hub.Unsubscribe(Subscription{Conn: serverConn, Collection: CollectionStaff})

	require.Eventually(t, func() bool {
		return hub.SubscriberCount(CollectionStaff) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestValidCollection(t *testing.T) {
	require.True(t, ValidCollection("reports"))
	require.True(t, ValidCollection("staff"))
	require.True(t, ValidCollection("tickets"))
	require.False(t, ValidCollection("users"))
	require.False(t, ValidCollection(""))
}
