package accesslog

import (
	"io"
	"log"

	"github.com/hearth-web/hearth/http"
	"github.com/hearth-web/hearth/http/status"
)

// Logger records one line per served request. Concurrent workers share a
// single log.Logger, whose internal lock serializes the writes.
type Logger struct {
	l *log.Logger
}

func New(w io.Writer) *Logger {
	return &Logger{
		l: log.New(w, "", log.LstdFlags),
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(io.Discard)
}

func (l *Logger) Record(request *http.Request, code status.Code, size int) {
	l.l.Printf(
		"%s - %s %s - %d %s - %d bytes - %q",
		request.Remote, request.Method, request.Target,
		code, status.Text(code), size,
		request.Headers.ValueOr("User-Agent", "-"),
	)
}
