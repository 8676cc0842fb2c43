package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"tripgoBack/internal/models"
)

// Pings are sent as control frames while the manager goroutine writes
// data frames to the same connection; both must be able to run at once.
func TestPingConcurrentWithDirectDelivery(t *testing.T) {
	mgr := NewWebSocketManager()
	go mgr.Run()

	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		mgr.register <- Client{ID: 1, Socket: conn}
		connCh <- conn
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	serverConn := <-connCh
	defer serverConn.Close()

	const total = 50

	received := make(chan models.Message, total)
	go func() {
		for i := 0; i < total; i++ {
			var msg models.Message
			if err := client.ReadJSON(&msg); err != nil {
				return
			}
			received <- msg
		}
	}()

	pingsDone := make(chan struct{})
	go func() {
		defer close(pingsDone)
		for i := 0; i < total; i++ {
			if err := serverConn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				t.Errorf("ping %d: %v", i, err)
				return
			}
		}
	}()

	for i := 0; i < total; i++ {
		mgr.direct <- directMsg{userID: 1, msg: models.Message{
			ChatID:     1,
			SenderID:   2,
			ReceiverID: 1,
			Text:       "hello",
			CreatedAt:  time.Now(),
		}}
	}

	<-pingsDone

	for i := 0; i < total; i++ {
		select {
		case <-received:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out after %d of %d messages", i, total)
		}
	}
}
