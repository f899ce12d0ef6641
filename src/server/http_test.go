package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilibili-mcp/go-bilibili-mcp/src/config"
)

func TestRouterHealthz(t *testing.T) {
	for _, transport := range []string{config.TransportHTTP, config.TransportSSE} {
		h, err := Router(newTestServer(t, &recordingSearcher{}), Options{Transport: transport})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code, transport)
		assert.Equal(t, "ok", rec.Body.String(), transport)
	}
}

func TestRouterRejectsStdio(t *testing.T) {
	_, err := Router(newTestServer(t, &recordingSearcher{}), Options{Transport: config.TransportStdio})
	assert.Error(t, err)
}

func TestRouterCORSPreflight(t *testing.T) {
	h, err := Router(newTestServer(t, &recordingSearcher{}), Options{
		Transport:   config.TransportHTTP,
		CORSOrigins: []string{"*"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/mcp", nil)
	req.Header.Set("Origin", "http://localhost:6274")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSSEMessageRequiresSession(t *testing.T) {
	h, err := Router(newTestServer(t, &recordingSearcher{}), Options{Transport: config.TransportSSE})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/message", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStreamableHTTPEndToEnd(t *testing.T) {
	fake := &recordingSearcher{}
	h, err := Router(newTestServer(t, fake), Options{Transport: config.TransportHTTP, EndpointPath: "/mcp"})
	require.NoError(t, err)
	ts := httptest.NewServer(h)
	defer ts.Close()

	c, err := client.NewStreamableHttpClient(ts.URL + "/mcp")
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, c.Start(ctx))
	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "http-test", Version: "1.0.0"}
	_, err = c.Initialize(ctx, initReq)
	require.NoError(t, err)

	req := mcp.CallToolRequest{}
	req.Params.Name = "general_search"
	req.Params.Arguments = map[string]any{"keyword": "over http"}
	res, err := c.CallTool(ctx, req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "over http")
	assert.Equal(t, "over http", fake.lastCall().keyword)
}

func TestServeHTTPStopsOnCancel(t *testing.T) {
	h, err := Router(newTestServer(t, &recordingSearcher{}), Options{Transport: config.TransportHTTP})
	require.NoError(t, err)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveHTTP(ctx, ln, h, discard) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "ok"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func discard(string, ...interface{}) {}
