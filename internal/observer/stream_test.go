package observer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestClient_PublishesSnapshotsToDialer(t *testing.T) {
	updates := make(chan Snapshot, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := Upgrade(w, r, updates)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		c.Sync(ctx)
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	updates <- Snapshot{Tick: 3, Progress: 0.5}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Snapshot
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("expected a snapshot, got error: %v", err)
	}
	if got.Tick != 3 || got.Progress != 0.5 {
		t.Fatalf("got %+v, want tick=3 progress=0.5", got)
	}
}
