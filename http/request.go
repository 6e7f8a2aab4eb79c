package http

import (
	"net"

	"github.com/hearth-web/hearth/http/method"
	"github.com/hearth-web/hearth/http/proto"
	"github.com/hearth-web/hearth/kv"
)

type Headers = *kv.Storage

// Request represents a single parsed HTTP request. It is constructed once
// per connection, never mutated after parsing and discarded as soon as the
// response is written.
type Request struct {
	// Method is an enum representing the request method. Unknown stands for
	// any token the enum doesn't recognize.
	Method method.Method
	// Target is the request target exactly as received: not decoded, query
	// string still attached. Decoding and confinement happen at resolution.
	Target string
	// Protocol is the advertised protocol version. Unrecognized versions are
	// tolerated, the response is framed as HTTP/1.1 regardless.
	Protocol proto.Proto
	// Headers holds non-normalized header pairs; lookup is case-insensitive.
	Headers Headers
	// Remote holds the remote address of the connection.
	Remote net.Addr
}

// headersPrealloc covers the handful of headers an ordinary request carries.
const headersPrealloc = 8

func NewRequest(remote net.Addr) *Request {
	return &Request{
		Method:   method.Unknown,
		Protocol: proto.HTTP11,
		Headers:  kv.NewPrealloc(headersPrealloc),
		Remote:   remote,
	}
}
