package harness

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/duck-tower/internal/config"
	"github.com/vovakirdan/duck-tower/internal/games/ducks"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, err := NewServer(Config{
		Ducks:   config.DefaultDucksConfig(),
		Runtime: testRuntime(),
	}, log.New(io.Discard))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil {
		resp.Body.Close()
	}
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})
	return conn
}

func readReply(t *testing.T, conn *websocket.Conn) Reply {
	t.Helper()
	var reply Reply
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func send(t *testing.T, conn *websocket.Conn, msg Message) Reply {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
	return readReply(t, conn)
}

func TestServerWebsocketSession(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts)

	hello := readReply(t, conn)
	require.Equal(t, ReplyState, hello.Type)
	require.NotNil(t, hello.State)
	assert.Equal(t, "MENU", hello.State.Mode)

	reply := send(t, conn, Message{Type: TypeStart, Seed: "socket"})
	require.Equal(t, ReplyState, reply.Type)
	assert.Equal(t, "PLAYING", reply.State.Mode)
	assert.Equal(t, "socket", reply.State.Seed)

	reply = send(t, conn, Message{Type: TypeTick, Ticks: 3})
	assert.Equal(t, uint64(3), reply.State.Tick)

	reply = send(t, conn, Message{Type: "fly"})
	assert.Equal(t, ReplyError, reply.Type)
	assert.Nil(t, reply.State)
	assert.Contains(t, reply.Error, "unknown message type")
}

func TestServerMalformedMessage(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts)
	readReply(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	reply := readReply(t, conn)
	assert.Equal(t, ReplyError, reply.Type)
	assert.Contains(t, reply.Error, "malformed")

	// The connection survives a bad message
	reply = send(t, conn, Message{Type: TypeState})
	assert.Equal(t, ReplyState, reply.Type)
}

func TestServerStateEndpoint(t *testing.T) {
	ts := newTestServer(t)
	conn := dial(t, ts)
	readReply(t, conn)
	send(t, conn, Message{Type: TypeStart, Seed: "http"})

	resp, err := http.Get(ts.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var state ducks.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.Equal(t, "PLAYING", state.Mode)
	assert.Equal(t, "http", state.Seed)
}

func TestServerSchemaEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/schema")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var schema map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&schema))
	assert.Equal(t, "Duck Tower State", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "schema should list properties")
	for _, key := range []string{"mode", "currentDuck", "wobblePhysics", "isDragging"} {
		assert.Contains(t, props, key)
	}
	assert.Contains(t, schema["required"], "mode")
}

func TestServerStateRejectsPost(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/state", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
