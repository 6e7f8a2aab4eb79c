package handler

import (
	"errors"
	"fmt"
	"os"

	"github.com/hearth-web/hearth/accesslog"
	"github.com/hearth-web/hearth/config"
	"github.com/hearth-web/hearth/http"
	"github.com/hearth-web/hearth/http/method"
	"github.com/hearth-web/hearth/http/mime"
	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/internal/parser"
	"github.com/hearth-web/hearth/internal/render"
	"github.com/hearth-web/hearth/internal/resolver"
	"github.com/hearth-web/hearth/transport"
)

type state uint8

const (
	awaitingRequest state = iota + 1
	parsed
	validated
	resolved
	responding
	closed
)

const errorContentType = "text/html; charset=utf-8"

// Handler runs the request/response cycle of a single connection:
// parse, validate the method, resolve the target, read the file, respond.
// Whatever happens inside is converted into a well-formed response; nothing
// propagates to the acceptor.
type Handler struct {
	cfg      *config.Config
	resolver *resolver.Resolver
	log      *accesslog.Logger
}

func New(cfg *config.Config, res *resolver.Resolver, log *accesslog.Logger) *Handler {
	return &Handler{
		cfg:      cfg,
		resolver: res,
		log:      log,
	}
}

// Serve processes exactly one request and returns. The connection is closed
// by the caller unconditionally afterwards, keep-alive does not exist here.
func (h *Handler) Serve(client transport.Client) {
	request := http.NewRequest(client.Remote())
	serializer := render.New(client, h.cfg.ServerName, h.cfg.HTTP.ResponseBuffSize)

	defer func() {
		if p := recover(); p != nil {
			// a single broken request must never take the server down with it
			_ = serializer.Write(request.Method, h.errorPage(status.ErrInternalServerError))
		}
	}()

	var (
		resp *http.Response
		file resolver.Resolved
	)

	current := awaitingRequest

	for current != closed {
		switch current {
		case awaitingRequest:
			err := parser.New(h.cfg, client).Parse(request)
			if err == nil {
				current = parsed
				break
			}

			if !respondable(err) {
				// the client hung up or timed out before completing the
				// request; there is nobody to answer
				return
			}

			resp, current = h.errorPage(err), responding

		case parsed:
			if request.Method == method.GET || request.Method == method.HEAD {
				current = validated
				break
			}

			resp = h.errorPage(status.ErrMethodNotAllowed).Header("Allow", method.Allowed)
			current = responding

		case validated:
			var err error
			file, err = h.resolver.Resolve(request.Target)
			if err != nil {
				resp, current = h.errorPage(err), responding
				break
			}

			current = resolved

		case resolved:
			body, err := os.ReadFile(file.Path)
			if err != nil {
				// the file vanished or became unreadable after resolution
				resp, current = h.errorPage(status.ErrInternalServerError), responding
				break
			}

			resp = http.NewResponse().
				ContentType(mime.ByPath(file.Path)).
				Bytes(body)
			current = responding

		case responding:
			fields := resp.Expose()
			_ = serializer.Write(request.Method, resp)
			h.log.Record(request, fields.Code, len(fields.Body))
			current = closed
		}
	}
}

// errorPage renders the error into a minimal HTML response. Anything that
// isn't an HTTPError counts as an internal fault.
func (h *Handler) errorPage(err error) *http.Response {
	httpErr := status.HTTPError{Code: status.InternalServerError, Message: "internal server error"}
	_ = errors.As(err, &httpErr)

	text := status.Text(httpErr.Code)
	body := fmt.Sprintf(page, httpErr.Code, text, httpErr.Message, h.cfg.ServerName)

	return http.NewResponse().
		Code(httpErr.Code).
		ContentType(errorContentType).
		String(body)
}

// respondable tells whether the error deserves a response at all. Transport
// failures (timeouts included) don't: the peer is gone or hostile.
func respondable(err error) bool {
	var httpErr status.HTTPError
	return errors.As(err, &httpErr)
}

const page = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%[1]d %[2]s</title>
</head>
<body>
    <h1>%[1]d %[2]s</h1>
    <p>%[3]s</p>
    <hr>
    <small>%[4]s</small>
</body>
</html>
`
