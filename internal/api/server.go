package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/thep2p/go-staker-manager/internal"
	"github.com/thep2p/go-staker-manager/internal/utils"
)

const (
	readyTimeout    = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server runs the staker API until its context is cancelled.
type Server struct {
	logger       zerolog.Logger
	handler      http.Handler
	host         string
	portAssigner internal.PortAssigner

	srv      *http.Server
	port     int
	started  atomic.Bool
	shutdown chan struct{}
	cancel   context.CancelFunc
}

// NewServer constructs a Server that serves handler on host at a port
// picked by portAssigner.
func NewServer(logger zerolog.Logger, handler http.Handler, host string, portAssigner internal.PortAssigner) *Server {
	return &Server{
		logger:       logger.With().Str("component", "api-server").Logger(),
		handler:      handler,
		host:         host,
		portAssigner: portAssigner,
		shutdown:     make(chan struct{}),
	}
}

// Start binds the listener, serves in the background and waits until the
// ping endpoint is reachable.
func (s *Server) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errors.New("api server already started")
	}
	ctx, s.cancel = context.WithCancel(ctx)

	s.port = s.portAssigner.NewPort()
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		close(s.shutdown)
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	s.srv = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("api server stopped unexpectedly")
		}
	}()

	if err := s.waitReady(ctx); err != nil {
		_ = s.srv.Close()
		close(s.shutdown)
		return err
	}
	s.logger.Info().Str("url", s.URL()).Msg("staker api is running")

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(sctx); err != nil {
			s.logger.Error().Err(err).Msg("failed to shutdown the api server gracefully")
		}
		close(s.shutdown)
	}()

	return nil
}

func (s *Server) waitReady(ctx context.Context) error {
	pingURL := s.URL() + PingEndpoint
	deadline := time.Now().Add(readyTimeout)
	for {
		if time.Now().After(deadline) {
			return fmt.Errorf("api %q never came up", pingURL)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pingURL, nil)
		if err != nil {
			return fmt.Errorf("build ping request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// Port returns the port the server listens on.
func (s *Server) Port() int { return s.port }

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	return utils.LocalAddress(s.host, s.port)
}

// Stop shuts the server down and blocks until it is done.
// It returns immediately when the server was never started.
func (s *Server) Stop() {
	if !s.started.Load() {
		return
	}
	s.cancel()
	<-s.shutdown
}

// Done is closed once a started server has shut down.
func (s *Server) Done() <-chan struct{} { return s.shutdown }
