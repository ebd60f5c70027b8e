// Package server serves a quill session over SSH. Every connection gets
// its own model reading the same shared document, sized to the client's
// PTY and with width adjustments disabled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/ssh"

	"github.com/dodorz/quill/internal/app"
	"github.com/dodorz/quill/internal/config"
	"github.com/dodorz/quill/internal/document"
)

const shutdownTimeout = 30 * time.Second

// Options configures the SSH server.
type Options struct {
	Host    string
	Port    string
	KeyPath string

	Doc        *document.Document
	UserConfig *config.UserConfig
}

// Server wraps the wish SSH server.
type Server struct {
	srv  *ssh.Server
	addr string
}

// New builds the SSH server. The host key is created at KeyPath on first
// run.
func New(opts Options) (*Server, error) {
	addr := net.JoinHostPort(opts.Host, opts.Port)

	srv, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithHostKeyPath(opts.KeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(sessionHandler(opts)),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ssh server: %w", err)
	}

	return &Server{srv: srv, addr: addr}, nil
}

// sessionHandler builds a read-only model per connection, sized to the
// client's PTY.
func sessionHandler(opts Options) bubbletea.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := s.Pty()

		a := app.New(opts.Doc, opts.UserConfig,
			app.WithSize(pty.Window.Width, pty.Window.Height),
			app.WithSSHSession(s),
			app.WithReadOnly(),
		)

		return a, []tea.ProgramOption{tea.WithFPS(config.NormalFPS)}
	}
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("Starting SSH server", "address", s.addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("ssh server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Stopping SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("ssh server shutdown: %w", err)
	}
	return nil
}
