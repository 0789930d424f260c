package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Server runs the HTTP listener over the API router.
type Server struct {
	address string
	api     *API
}

func NewServer(address string, api *API) *Server {
	return &Server{address: address, api: api}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.api.Router(),
	}

	go func() {
		<-ctx.Done()
		s.api.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.api.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
