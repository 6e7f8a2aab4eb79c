package hearth

import (
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearth-web/hearth/config"
	"github.com/hearth-web/hearth/internal/httptest"
	"github.com/hearth-web/hearth/internal/seed"
)

func startApp(t *testing.T, root string) (*App, string, chan error) {
	t.Helper()

	cfg := config.Default()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0 // let the kernel pick a free one
	cfg.Root = root
	cfg.NET.AcceptLoopInterruptPeriod = 50 * time.Millisecond

	app := New(cfg)
	started := make(chan struct{})
	app.OnStart(func() { close(started) })

	done := make(chan error, 1)
	go func() { done <- app.Serve() }()

	select {
	case <-started:
	case err := <-done:
		t.Fatalf("server did not start: %s", err)
	}

	return app, app.Addr().String(), done
}

func roundtrip(t *testing.T, addr, raw string) httptest.Response {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	// the server closes the connection after the response, so read to EOF
	wire, err := io.ReadAll(conn)
	require.NoError(t, err)

	response, err := httptest.Parse(string(wire))
	require.NoError(t, err)

	return response
}

func TestServe(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, seed.Populate(root))

	app, addr, done := startApp(t, root)
	defer func() {
		app.Stop()
		assert.NoError(t, <-done)
	}()

	t.Run("GET index", func(t *testing.T) {
		response := roundtrip(t, addr, "GET /index.html HTTP/1.1\r\nHost: localhost\r\n\r\n")
		assert.Equal(t, 200, response.Code)
		assert.Equal(t, "text/html", response.Headers.Value("Content-Type"))
		assert.Equal(t, "close", response.Headers.Value("Connection"))
		assert.Contains(t, response.Body, "hearth")
	})

	t.Run("GET json", func(t *testing.T) {
		response := roundtrip(t, addr, "GET /api/data.json HTTP/1.1\r\n\r\n")
		assert.Equal(t, 200, response.Code)
		assert.Equal(t, "application/json", response.Headers.Value("Content-Type"))
	})

	t.Run("traversal", func(t *testing.T) {
		response := roundtrip(t, addr, "GET /../etc/passwd HTTP/1.1\r\n\r\n")
		assert.Equal(t, 403, response.Code)
	})

	t.Run("missing", func(t *testing.T) {
		response := roundtrip(t, addr, "GET /missing.xyz HTTP/1.1\r\n\r\n")
		assert.Equal(t, 404, response.Code)
	})

	t.Run("DELETE", func(t *testing.T) {
		response := roundtrip(t, addr, "DELETE /index.html HTTP/1.1\r\n\r\n")
		assert.Equal(t, 405, response.Code)
		assert.Equal(t, "GET, HEAD", response.Headers.Value("Allow"))
	})
}

func TestServeConcurrent(t *testing.T) {
	root := t.TempDir()

	const clients = 20
	payloads := make([]string, clients)
	for i := range payloads {
		payloads[i] = uniuri.NewLen(512)
		name := fmt.Sprintf("file%d.txt", i)
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(payloads[i]), 0o644))
	}

	app, addr, done := startApp(t, root)
	defer func() {
		app.Stop()
		assert.NoError(t, <-done)
	}()

	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			response := roundtrip(t, addr, fmt.Sprintf("GET /file%d.txt HTTP/1.1\r\n\r\n", i))
			assert.Equal(t, 200, response.Code)
			assert.Equal(t, payloads[i], response.Body)
		}(i)
	}

	wg.Wait()
}

func TestServeBadRoot(t *testing.T) {
	cfg := config.Default()
	cfg.Root = filepath.Join(t.TempDir(), "definitely-not-there")

	err := New(cfg).Serve()
	assert.Error(t, err)
}
