package devtools

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fenestra-dev/fenestra/internal/diag"
)

// wsConn adapts a single inspector connection into a sink. Writes are
// serialized with a mutex, mirroring pkg/server/session.go's "mu sync.Mutex
// // Protects conn writes" — gorilla/websocket connections are not safe
// for concurrent writers.
type wsConn struct {
	conn *websocket.Conn

	mu     sync.Mutex
	closed bool
}

func (c *wsConn) send(evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		c.closed = true
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler returns an http.HandlerFunc that upgrades a request to a
// WebSocket connection and attaches it to b as a sink for every
// mount/update/unmount/event broadcast until the connection drops. It is
// a no-op (plain 404) when b is disabled, so mounting it unconditionally
// on a server is safe: FENESTRA_DEVTOOLS=0 leaves the endpoint dark.
func (b *Bridge) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !b.Enabled() {
			http.NotFound(w, r)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := &wsConn{conn: conn}
		b.attach(c)
		defer b.detach(c)

		// The inspector never sends anything meaningful back; this read
		// loop exists only to notice the connection closing (and to
		// answer control frames, which gorilla/websocket requires a
		// reader goroutine to do).
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				c.mu.Lock()
				c.closed = true
				c.mu.Unlock()
				_ = conn.Close()
				return
			}
		}
	}
}

// Inspector is a minimal client for the Handler endpoint above, used by
// integration tests that want to assert a sequence of events arrives
// in order without standing up a full browser-side inspector.
type Inspector struct {
	conn *websocket.Conn
}

// Dial connects to a running Handler at url (e.g.
// "ws://127.0.0.1:8080/__devtools").
func Dial(url string) (*Inspector, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, connectionError(err)
	}
	return &Inspector{conn: conn}, nil
}

// Next blocks for the next event the bridge broadcasts, or returns the
// E061 diagnostic if the frame can't be decoded as one.
func (i *Inspector) Next() (Event, error) {
	var evt Event
	_, data, err := i.conn.ReadMessage()
	if err != nil {
		return evt, connectionError(err)
	}
	if err := json.Unmarshal(data, &evt); err != nil {
		return evt, diag.New("E061").Wrap(err)
	}
	return evt, nil
}

// Close closes the underlying connection.
func (i *Inspector) Close() error {
	return i.conn.Close()
}

// connectionError wraps a dial/upgrade failure as the registered E060
// diagnostic, for callers (e.g. an inspector client, not this package's
// server side) that want a structured error rather than a raw net error.
func connectionError(err error) error {
	return diag.New("E060").Wrap(err)
}
