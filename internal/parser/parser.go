package parser

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/indigo-web/utils/uf"

	"github.com/hearth-web/hearth/config"
	"github.com/hearth-web/hearth/http"
	"github.com/hearth-web/hearth/http/method"
	"github.com/hearth-web/hearth/http/proto"
	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/transport"
)

// ErrHungUp signals that the client went away before sending a single byte.
// There is nobody to answer, so the connection is simply dropped.
var ErrHungUp = errors.New("client hung up before sending a request")

var crlfcrlf = []byte("\r\n\r\n")

// Parser consumes raw bytes from a connection until the blank line
// terminating the header block, then produces a structured request.
//
// Header lines lacking a colon are skipped rather than failing the parse
// (lenient policy).
type Parser struct {
	cfg    *config.Config
	client transport.Client
}

func New(cfg *config.Config, client transport.Client) *Parser {
	return &Parser{
		cfg:    cfg,
		client: client,
	}
}

// Parse fills the request in. All failures are 400-classified except
// ErrHungUp and transport errors (timeouts included), on which no response
// must be sent at all.
func (p *Parser) Parse(request *http.Request) error {
	head, err := p.readHead()
	if err != nil {
		return err
	}

	line, rest := cutLine(head)
	if err := parseRequestLine(line, request); err != nil {
		return err
	}

	for len(rest) > 0 {
		line, rest = cutLine(rest)
		key, value, found := strings.Cut(line, ":")
		if !found || len(key) == 0 {
			// lenient policy: a line without a colon carries no header, drop it
			continue
		}

		request.Headers.Add(key, strings.TrimLeft(value, " \t"))
	}

	return nil
}

// readHead accumulates reads until CRLFCRLF is met and returns the head
// without the terminator. The terminator of the very first line-less
// request ("\r\n\r\n" straight away) yields an empty head, which the
// request-line parser rejects.
func (p *Parser) readHead() (string, error) {
	var head []byte

	for {
		data, err := p.client.Read()
		head = append(head, data...)

		if end := bytes.Index(head, crlfcrlf); end != -1 {
			return uf.B2S(head[:end]), nil
		}

		// tolerate bare-LF clients, mostly hand-typed telnet sessions
		if end := bytes.Index(head, []byte("\n\n")); end != -1 {
			return uf.B2S(head[:end]), nil
		}

		switch {
		case err == io.EOF:
			if len(head) == 0 {
				return "", ErrHungUp
			}

			// some bytes arrived, yet the head never completed
			return "", status.ErrBadRequest
		case err != nil:
			return "", err
		case len(head) > p.cfg.HTTP.MaxRequestSize:
			return "", status.ErrTooLargeRequest
		}
	}
}

func parseRequestLine(line string, request *http.Request) error {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return status.ErrBadRequest
	}

	request.Method = method.Parse(tokens[0])
	request.Target = tokens[1]
	request.Protocol = proto.Parse(tokens[2])

	return nil
}

func cutLine(data string) (line, rest string) {
	line, rest, found := strings.Cut(data, "\n")
	if !found {
		return data, ""
	}

	return strings.TrimSuffix(line, "\r"), rest
}
