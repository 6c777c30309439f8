package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kasule/wagepay/internal/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

// GracefulServer wraps Echo with graceful shutdown. Hooks registered
// with OnShutdown run after the HTTP listener has drained, in order.
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.ZapLogger
	port   int
	hooks  []func()
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		logger: zapLogger,
		port:   port,
	}
}

// OnShutdown registers a hook to run during shutdown, after in-flight
// requests have completed
func (s *GracefulServer) OnShutdown(hook func()) {
	s.hooks = append(s.hooks, hook)
}

// Start runs the server until an interrupt or termination signal arrives
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains in-flight requests, then runs the shutdown hooks
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}

	for _, hook := range s.hooks {
		hook()
	}

	if err != nil {
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}
