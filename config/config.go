package config

import (
	"net"
	"strconv"
	"time"
)

type (
	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read
		// from the socket.
		ReadBufferSize int
		// ReadTimeout bounds how long a client may take to deliver its request.
		// Exceeding it terminates the connection without a response.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often the Accept() call is
		// interrupted in order to check whether it's time to stop.
		AcceptLoopInterruptPeriod time.Duration
	}

	HTTP struct {
		// MaxRequestSize limits the total size of the request line and the
		// header block. Requests exceeding it are rejected with 400.
		MaxRequestSize int
		// ResponseBuffSize is the initial capacity of the per-connection
		// response serialization buffer.
		ResponseBuffSize int
	}
)

// Config holds the process-wide server configuration. It is constructed once
// at startup and passed around read-only; workers never mutate it.
type Config struct {
	// Host and Port form the address the listener binds.
	Host string
	Port uint16
	// Root is the document root, the sole servable namespace.
	Root string
	// Index is the file served for empty and "/" targets, and retried for
	// directory targets.
	Index string
	// ServerName is the Server response header value.
	ServerName string
	NET        NET
	HTTP       HTTP
}

// Default returns the default config: localhost:8080 serving ./www.
func Default() *Config {
	return &Config{
		Host:       "localhost",
		Port:       8080,
		Root:       "./www",
		Index:      "index.html",
		ServerName: "hearth/1.0",
		NET: NET{
			ReadBufferSize:            2 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		HTTP: HTTP{
			MaxRequestSize:   16 * 1024,
			ResponseBuffSize: 2 * 1024,
		},
	}
}

// Addr renders the host:port pair the listener binds.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}
