package render

import (
	"strconv"
	"time"

	"github.com/indigo-web/utils/uf"

	"github.com/hearth-web/hearth/http"
	"github.com/hearth-web/hearth/http/method"
	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/kv"
	"github.com/hearth-web/hearth/transport"
)

// httpDate is the RFC 1123 variant mandated for the Date header.
const httpDate = "Mon, 02 Jan 2006 15:04:05 GMT"

// Serializer renders responses into the wire format and flushes them to the
// client in a single write. Every response carries Date, Server and
// Connection: close; Content-Type and Content-Length accompany any body.
// For HEAD the body bytes are withheld while Content-Length still states
// their length.
type Serializer struct {
	client transport.Client
	server string
	buff   []byte
	now    func() time.Time
}

func New(client transport.Client, server string, prealloc int) *Serializer {
	return &Serializer{
		client: client,
		server: server,
		buff:   make([]byte, 0, prealloc),
		now:    time.Now,
	}
}

// Clock overrides the time source. Tests only.
func (s *Serializer) Clock(now func() time.Time) *Serializer {
	s.now = now
	return s
}

func (s *Serializer) Write(m method.Method, resp *http.Response) error {
	fields := resp.Expose()

	s.appendStatusLine(fields)
	s.appendKnownHeader("Date", s.now().UTC().Format(httpDate))
	s.appendKnownHeader("Server", s.server)
	s.appendKnownHeader("Connection", "close")

	for _, header := range fields.Headers {
		s.appendHeader(header)
	}

	if len(fields.ContentType) > 0 {
		s.appendKnownHeader("Content-Type", fields.ContentType)
	}

	// always stated, so an empty file still answers an explicit zero
	s.appendKnownHeader("Content-Length", strconv.Itoa(len(fields.Body)))

	s.crlf()

	if m != method.HEAD {
		s.buff = append(s.buff, fields.Body...)
	}

	_, err := s.client.Write(s.buff)
	s.buff = s.buff[:0]

	return err
}

func (s *Serializer) appendStatusLine(fields http.Fields) {
	s.buff = append(s.buff, "HTTP/1.1 "...)
	s.buff = strconv.AppendInt(s.buff, int64(fields.Code), 10)
	s.sp()

	text := fields.Status
	if len(text) == 0 {
		text = status.Text(fields.Code)
	}

	s.buff = append(s.buff, text...)
	s.crlf()
}

func (s *Serializer) appendHeader(header kv.Pair) {
	s.appendKnownHeader(header.Key, header.Value)
}

func (s *Serializer) appendKnownHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, ':', ' ')
	s.buff = append(s.buff, uf.S2B(value)...)
	s.crlf()
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, '\r', '\n')
}
