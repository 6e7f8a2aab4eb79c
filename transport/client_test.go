package transport

import (
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRead(t *testing.T) {
	server, peer := net.Pipe()
	defer func() {
		_ = server.Close()
		_ = peer.Close()
	}()

	client := NewClient(server, time.Second, make([]byte, 64))

	go func() {
		_, _ = peer.Write([]byte("GET / HTTP/1.1\r\n\r\n"))
	}()

	data, err := client.Read()
	require.NoError(t, err)
	assert.Equal(t, "GET / HTTP/1.1\r\n\r\n", string(data))
}

func TestClientReadTimeout(t *testing.T) {
	server, peer := net.Pipe()
	defer func() {
		_ = server.Close()
		_ = peer.Close()
	}()

	client := NewClient(server, 10*time.Millisecond, make([]byte, 64))

	_, err := client.Read()
	assert.ErrorIs(t, err, os.ErrDeadlineExceeded)
}
