package hearth

import (
	"fmt"
	"io"
	"net"

	"github.com/hearth-web/hearth/accesslog"
	"github.com/hearth-web/hearth/config"
	"github.com/hearth-web/hearth/internal/handler"
	"github.com/hearth-web/hearth/internal/resolver"
	"github.com/hearth-web/hearth/transport"
)

// App ties the acceptor and the request handler together. Construct it with
// New, optionally attach hooks, then Serve.
type App struct {
	cfg     *config.Config
	tcp     *transport.TCP
	log     *accesslog.Logger
	onStart func()
}

// New returns a new App instance. Passing nil falls back to the default
// configuration.
func New(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	return &App{
		cfg: cfg,
		tcp: transport.NewTCP(),
		log: accesslog.Nop(),
	}
}

// OnStart calls the callback once the listener is bound, right before the
// accept loop spins up.
func (a *App) OnStart(cb func()) *App {
	a.onStart = cb
	return a
}

// AccessLog directs the per-request log to the writer.
func (a *App) AccessLog(w io.Writer) *App {
	a.log = accesslog.New(w)
	return a
}

// Serve binds the listener and blocks serving connections until Stop is
// called or a fatal accept error occurs. A bind failure is the only error
// surfaced before any connection is accepted; the document root must exist
// (and be populated) by this point.
func (a *App) Serve() error {
	res, err := resolver.New(a.cfg.Root, a.cfg.Index)
	if err != nil {
		return fmt.Errorf("document root: %w", err)
	}

	if err := a.tcp.Bind(a.cfg.Addr()); err != nil {
		return fmt.Errorf("bind %s: %w", a.cfg.Addr(), err)
	}

	h := handler.New(a.cfg, res, a.log)

	if a.onStart != nil {
		a.onStart()
	}

	err = a.tcp.Listen(a.cfg.NET, func(conn net.Conn) {
		buff := make([]byte, a.cfg.NET.ReadBufferSize)
		h.Serve(transport.NewClient(conn, a.cfg.NET.ReadTimeout, buff))
	})

	a.tcp.Wait()
	a.tcp.Close()

	return err
}

// Addr reports the address the listener is actually bound to. Valid once
// the OnStart hook has fired.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Stop makes the accept loop wind down. In-flight requests are served to
// completion; Serve returns afterwards.
//
// NOTE: the call isn't blocking, the loop notices the stop on its next
// accept interrupt.
func (a *App) Stop() {
	a.tcp.Stop()
}
