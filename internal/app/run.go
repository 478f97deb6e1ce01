package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// Time in-flight requests get to finish on shutdown
const shutdownTimeout = 5 * time.Second

// Run serves the site until SIGINT or SIGTERM, then drains the server
// and releases the connections.
func (a *App) Run() error {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.server.Handler = a.Handler()

	served := make(chan error, 1)
	go func() {
		log.Printf("Server running on: http://%s, content from %s", a.server.Addr, a.Content.BaseURL())
		served <- a.server.ListenAndServe()
	}()

	select {
	case err := <-served:
		if !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(err, a.Close())
		}
	case <-ctx.Done():
		// A second Ctrl+C now goes straight to the OS
		stop()
		log.Println("Shutting down gracefully, press Ctrl+C again to force...")
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(ctx)
	if err != nil {
		err = fmt.Errorf("server forced to shut down: %w", err)
	}

	err = errors.Join(err, a.Close())
	if err == nil {
		log.Println("Graceful shutdown complete.")
	}
	return err
}

// Close releases the connections the app holds
func (a *App) Close() error {
	return a.cleanup()
}
