package http

import (
	"github.com/indigo-web/utils/uf"

	"github.com/hearth-web/hearth/http/mime"
	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/kv"
)

// Fields is a view into the response under construction, used by the
// serializer. Values are to be read only.
type Fields struct {
	Code        status.Code
	Status      status.Status
	ContentType mime.MIME
	Headers     []kv.Pair
	Body        []byte
}

// Response is a builder for a single HTTP response. The zero code is 200 OK.
type Response struct {
	fields Fields
}

func NewResponse() *Response {
	return &Response{
		fields: Fields{
			Code: status.OK,
		},
	}
}

// Code sets a Response code and a corresponding status. In case of unknown
// code, the status line falls back to the bare code; call Status explicitly
// to override.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text, overriding the one derived from the code.
func (r *Response) Status(s status.Status) *Response {
	r.fields.Status = s
	return r
}

// ContentType sets the Content-Type header value. It is only emitted along
// a body.
func (r *Response) ContentType(value mime.MIME) *Response {
	r.fields.ContentType = value
	return r
}

// Header appends a custom header pair.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers = append(r.fields.Headers, kv.Pair{Key: key, Value: value})
	return r
}

// String sets the response's body to the passed string.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself.
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Expose reveals the accumulated fields for serialization.
func (r *Response) Expose() Fields {
	return r.fields
}
