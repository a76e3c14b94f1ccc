package notification

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T, hub *Hub, userID int64) *websocket.Conn {
	t.Helper()

	registered := make(chan struct{})
	up := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(userID, conn)
		close(registered)
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("connection was not registered")
	}
	return client
}

// Lifecycle commands for the same user can emit from separate requests at
// once; every event must still arrive intact on the single connection.
func TestHub_ConcurrentSendsToOneConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	client := dialTestHub(t, hub, 7)

	const senders, perSender = 8, 10
	total := senders * perSender

	received := make(chan int, 1)
	go func() {
		n := 0
		_ = client.SetReadDeadline(time.Now().Add(3 * time.Second))
		for n < total {
			var e Event
			if err := client.ReadJSON(&e); err != nil {
				break
			}
			n++
		}
		received <- n
	}()

	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			for j := 0; j < perSender; j++ {
				hub.SendToUser(7, Event{Type: EventCheckedIn, BookingID: n, ClientID: 7})
			}
		}(int64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, total, <-received)
}

func TestHub_SendToUnknownUser(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	assert.False(t, hub.SendToUser(99, Event{Type: EventCheckedIn, BookingID: 1, ClientID: 99}))
}

func TestHub_UnregisterDropsConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	client := dialTestHub(t, hub, 7)

	require.True(t, hub.SendToUser(7, Event{Type: EventCheckedIn, BookingID: 1, ClientID: 7}))
	hub.Unregister(7)
	assert.False(t, hub.SendToUser(7, Event{Type: EventCheckedIn, BookingID: 2, ClientID: 7}))

	_ = client.SetReadDeadline(time.Now().Add(time.Second))
	var e Event
	require.NoError(t, client.ReadJSON(&e))
	// the server side is closed; the next read reports it
	var next Event
	assert.Error(t, client.ReadJSON(&next))
}
