package accesslog

import (
	"bytes"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearth-web/hearth/http"
	"github.com/hearth-web/hearth/http/method"
	"github.com/hearth-web/hearth/http/status"
)

func newRequest() *http.Request {
	request := http.NewRequest(&net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 49152})
	request.Method = method.GET
	request.Target = "/index.html"

	return request
}

func TestRecord(t *testing.T) {
	var buff bytes.Buffer
	request := newRequest()
	request.Headers.Add("User-Agent", "curl/8.0")

	New(&buff).Record(request, status.OK, 42)

	line := buff.String()
	assert.Contains(t, line, "127.0.0.1:49152 - GET /index.html - 200 OK - 42 bytes")
	assert.Contains(t, line, `"curl/8.0"`)
}

func TestRecordNoUserAgent(t *testing.T) {
	var buff bytes.Buffer
	New(&buff).Record(newRequest(), status.NotFound, 0)

	assert.Contains(t, buff.String(), `"-"`)
}
