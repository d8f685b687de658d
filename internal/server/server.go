package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/fleetmaint/internal/logging"
)

// shutdownTimeout bounds graceful shutdown after a signal
const shutdownTimeout = 10 * time.Second

// Config holds the server configuration
type Config struct {
	Host     string
	Port     int
	SeedPath string // JSON or YAML seed file (empty = DefaultSeed)
	LogLevel string
}

// Server serves the vehicles API
type Server struct {
	config     *Config
	store      *Store
	httpServer *http.Server
	listener   net.Listener
}

// New creates a server with its store seeded from config.SeedPath
func New(config *Config) (*Server, error) {
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	seed := DefaultSeed()
	if config.SeedPath != "" {
		loaded, err := LoadSeed(config.SeedPath)
		if err != nil {
			return nil, err
		}
		seed = loaded
	}

	store := NewStore(seed)
	logging.Info("Vehicle store seeded",
		zap.Int("count", store.Len()),
		zap.String("seed", seedName(config.SeedPath)),
	)

	httpServer := &http.Server{
		Handler:           NewRouter(store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		config:     config,
		store:      store,
		httpServer: httpServer,
	}, nil
}

// Store returns the backing store
func (s *Server) Store() *Store {
	return s.store
}

// Addr returns the listening address once Listen has succeeded
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Listen binds the configured address without serving
func (s *Server) Listen() error {
	addr := net.JoinHostPort(s.config.Host, fmt.Sprintf("%d", s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener
	return nil
}

// Serve blocks serving requests on the bound listener until ctx is done or
// the server fails.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	logging.Info("Vehicles API listening", zap.String("addr", s.Addr()))

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Start serves until SIGINT or SIGTERM
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.Serve(ctx)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")
	defer logging.Sync()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logging.Warn("Shutdown timeout, forcing close", zap.Error(err))
		return s.httpServer.Close()
	}
	return nil
}

func seedName(path string) string {
	if path == "" {
		return "default"
	}
	return path
}
