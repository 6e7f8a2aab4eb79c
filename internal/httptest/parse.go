package httptest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hearth-web/hearth/kv"
)

// Response is a loosely parsed wire response, used by tests to assert on
// what the server actually sent.
type Response struct {
	Proto   string
	Code    int
	Status  string
	Headers *kv.Storage
	Body    string
}

// Parse destructures a raw HTTP/1.1 response. The body is taken verbatim
// from whatever follows the blank line and is checked against
// Content-Length, if stated.
func Parse(raw string) (response Response, err error) {
	response.Headers = kv.New()

	var found bool
	response.Proto, raw, found = strings.Cut(raw, " ")
	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad status line: lacking code and status")
	}

	var code string
	code, raw, found = strings.Cut(raw, " ")
	if !found {
		return response, fmt.Errorf("bad status line: lacking status text")
	}

	response.Code, err = strconv.Atoi(code)
	if err != nil {
		return response, fmt.Errorf("bad status code: %w", err)
	}

	response.Status, raw, found = strings.Cut(raw, "\r\n")
	if !found {
		return response, fmt.Errorf("bad response: only the status line is present")
	}

	for {
		var headerLine string
		headerLine, raw, found = strings.Cut(raw, "\r\n")
		if len(headerLine) == 0 {
			break
		}
		if !found {
			return response, fmt.Errorf("bad header line %q: no terminating CRLF", headerLine)
		}

		key, value, ok := strings.Cut(headerLine, ": ")
		if !ok {
			return response, fmt.Errorf("bad header line %q: no value", headerLine)
		}

		response.Headers.Add(key, value)
	}

	response.Body = raw

	if cl := response.Headers.Value("Content-Length"); len(cl) > 0 {
		length, err := strconv.Atoi(cl)
		if err != nil {
			return response, fmt.Errorf("bad Content-Length: %w", err)
		}

		if length != len(response.Body) {
			return response, fmt.Errorf(
				"Content-Length says %d, yet %d bytes of body arrived", length, len(response.Body),
			)
		}
	}

	return response, nil
}
