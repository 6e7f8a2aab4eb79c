package httptest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\n" +
		"Date: Sun, 06 Nov 1994 08:49:37 GMT\r\n" +
		"Server: hearth/1.0\r\n" +
		"Connection: close\r\n" +
		"Content-Type: text/html\r\n" +
		"Content-Length: 5\r\n" +
		"\r\n" +
		"hello"

	response, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1", response.Proto)
	assert.Equal(t, 200, response.Code)
	assert.Equal(t, "OK", response.Status)
	assert.Equal(t, "close", response.Headers.Value("connection"))
	assert.Equal(t, "hello", response.Body)
}

func TestParseLengthMismatch(t *testing.T) {
	_, err := Parse("HTTP/1.1 200 OK\r\nContent-Length: 99\r\n\r\nhello")
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("not a response")
	assert.Error(t, err)
}
