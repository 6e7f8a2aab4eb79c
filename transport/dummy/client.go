package dummy

import (
	"bytes"
	"io"
	"net"

	"github.com/hearth-web/hearth/transport"
)

var _ transport.Client = new(Client)

// Client is an in-memory transport.Client. Every Read returns the next
// scripted chunk; io.EOF follows the last one. Written data accumulates
// and can be inspected afterwards.
type Client struct {
	chunks  [][]byte
	pointer int
	readErr error
	written bytes.Buffer
	closed  bool
}

func NewClient(chunks ...[]byte) *Client {
	return &Client{chunks: chunks}
}

// NewErrClient returns a client whose every Read fails with err, the way a
// connection that timed out or broke mid-request does.
func NewErrClient(err error) *Client {
	return &Client{readErr: err}
}

// NewStringClient is NewClient over string chunks, for readability in tests.
func NewStringClient(chunks ...string) *Client {
	c := new(Client)
	for _, chunk := range chunks {
		c.chunks = append(c.chunks, []byte(chunk))
	}

	return c
}

func (c *Client) Read() ([]byte, error) {
	if c.readErr != nil {
		return nil, c.readErr
	}

	if c.closed || c.pointer >= len(c.chunks) {
		return nil, io.EOF
	}

	chunk := c.chunks[c.pointer]
	c.pointer++

	return chunk, nil
}

func (c *Client) Write(b []byte) (int, error) {
	return c.written.Write(b)
}

// Written returns everything the server has sent so far.
func (c *Client) Written() []byte {
	return c.written.Bytes()
}

func (c *Client) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 49152}
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

func (c *Client) Closed() bool {
	return c.closed
}
