package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialHub spins up a websocket server wired to the hub and returns a
// connected client.
func dialHub(t *testing.T, hub *Hub, socketID string, userID int64) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		go hub.ServeConn(conn, socketID, userID)
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev envelope
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(msg, &ev))
	return ev
}

func TestHub_SubscribeAndReceive(t *testing.T) {
	signer := NewSigner("secret")
	hub := NewHub(signer)

	conn := dialHub(t, hub, "sock-1", 7)

	hello := readEvent(t, conn)
	assert.Equal(t, "connection_established", hello.Event)

	channel := UserChannel(7)
	sub, _ := json.Marshal(clientFrame{
		Type:    "subscribe",
		Channel: channel,
		Auth:    signer.Sign("sock-1", channel),
	})
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, sub))

	ack := readEvent(t, conn)
	assert.Equal(t, "subscription_succeeded", ack.Event)
	assert.Equal(t, channel, ack.Channel)

	require.NoError(t, hub.Publish(context.Background(), 7, "notification", map[string]string{"title": "hello"}))

	ev := readEvent(t, conn)
	assert.Equal(t, "notification", ev.Event)
	assert.Equal(t, channel, ev.Channel)
}

func TestHub_RejectsBadSubscriptionToken(t *testing.T) {
	signer := NewSigner("secret")
	hub := NewHub(signer)

	conn := dialHub(t, hub, "sock-1", 7)
	readEvent(t, conn) // connection_established

	channel := UserChannel(7)
	sub, _ := json.Marshal(clientFrame{
		Type:    "subscribe",
		Channel: channel,
		Auth:    "forged-token",
	})
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, sub))

	reply := readEvent(t, conn)
	assert.Equal(t, "subscription_error", reply.Event)

	// Nothing is delivered on the unsubscribed channel.
	require.NoError(t, hub.Publish(context.Background(), 7, "notification", nil))

	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err) // timeout, no frame arrived
}

func TestHub_PublishWithNobodyConnectedIsDropped(t *testing.T) {
	hub := NewHub(NewSigner("secret"))
	// No error, no blocking: the event is simply dropped.
	require.NoError(t, hub.Publish(context.Background(), 99, "notification", map[string]string{"x": "y"}))
}
