package observer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const (
	writeWait      = 1 * time.Second
	pingResolution = 2 * time.Second
	pongWait       = pingResolution * 4
	pubResolution  = 100 * time.Millisecond
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ErrPongDeadlineExceeded signals that a client stopped acknowledging pings.
var ErrPongDeadlineExceeded = errors.New("observer: client disconnect, pong deadline exceeded")

// Client publishes Snapshots to a single upgraded websocket connection,
// grounded in the teacher's fastview client: one goroutine group per
// connection running read/ping/publish concurrently via errgroup, torn down
// together on the first failure.
type Client struct {
	conn    *websocket.Conn
	updates <-chan Snapshot
}

// Upgrade promotes an HTTP request to a websocket connection and returns a
// Client ready to Sync. updates should be a channel fed by the simulation
// driver, one Snapshot per tick or less often.
func Upgrade(w http.ResponseWriter, r *http.Request, updates <-chan Snapshot) (*Client, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, fmt.Errorf("observer: upgrade: %w", err)
	}
	return &Client{conn: conn, updates: updates}, nil
}

// Sync runs until the client disconnects or ctx is cancelled, publishing
// Snapshots and answering pings in the background. A Snapshot that arrives
// less than pubResolution after the previous one was sent is dropped and
// never sent later, so the last Snapshot of a fast burst may not reach the
// client.
func (c *Client) Sync(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	pong := make(chan struct{}, 1)
	c.conn.SetPongHandler(func(string) error {
		select {
		case pong <- struct{}{}:
		default:
		}
		return nil
	})

	group.Go(func() error { return c.drainClientMessages(groupCtx) })
	group.Go(func() error { return c.pingPong(groupCtx, pong) })
	group.Go(func() error { return c.publish(groupCtx) })

	err := group.Wait()
	c.conn.Close()
	return err
}

// drainClientMessages discards inbound messages (this stream is
// publish-only) but must keep reading so the pong handler fires.
func (c *Client) drainClientMessages(ctx context.Context) error {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}

func (c *Client) pingPong(ctx context.Context, pong <-chan struct{}) error {
	ticker := time.NewTicker(pingResolution)
	defer ticker.Stop()
	lastPong := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pong:
			lastPong = time.Now()
		case <-ticker.C:
			if time.Since(lastPong) > pongWait {
				return ErrPongDeadlineExceeded
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

func (c *Client) publish(ctx context.Context) error {
	var lastSent time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-c.updates:
			if !ok {
				return nil
			}
			if time.Since(lastSent) < pubResolution {
				continue
			}
			lastSent = time.Now()
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(snap); err != nil {
				return err
			}
		}
	}
}
