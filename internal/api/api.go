package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katiamach/hivebox/internal/config"
	"github.com/katiamach/hivebox/internal/logger"
	"github.com/katiamach/hivebox/internal/opensensemap"
	"github.com/katiamach/hivebox/internal/service"
	"github.com/katiamach/hivebox/internal/transport/rest/handler"
	"github.com/katiamach/hivebox/internal/version"
)

const shutdownTimeout = 10 * time.Second

// NewRouter registers the API routes of server.
func NewRouter(server *handler.HiveServer) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger)

	r.HandleFunc("/temperature", server.GetTemperatureHandler).Methods(http.MethodGet)
	r.HandleFunc("/boxes/{id}", server.GetBoxHandler).Methods(http.MethodGet)
	r.HandleFunc("/version", server.GetVersionHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

// RunAPI runs hivebox API until ctx is canceled.
func RunAPI(ctx context.Context, cfg *config.Config) error {
	client := opensensemap.New(cfg.OpenSenseMapURL, cfg.OpenSenseMapTimeout)
	service := service.New(client, cfg.SenseBoxIDs, cfg.Reference)
	server := handler.NewHiveServer(service, version.Version)

	r := NewRouter(server)

	options := setupCorsOptions(cfg.Origin)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.CORS(options...)(r),
		ReadHeaderTimeout: 5 * time.Second,
		// a temperature request fetches every box in turn
		WriteTimeout: cfg.OpenSenseMapTimeout*time.Duration(len(cfg.SenseBoxIDs)+1) + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info(fmt.Sprintf("Starting hivebox api %s at port %s", version.Version, cfg.Port))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	}

	logger.Info("Shutting down hivebox api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown: %w", err)
	}

	err := <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}
