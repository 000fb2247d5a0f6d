package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katiamach/hivebox/internal/logger"
	"github.com/katiamach/hivebox/internal/model"
	"github.com/katiamach/hivebox/internal/opensensemap"
	"github.com/katiamach/hivebox/internal/service"
)

var errNoDataResponse = errors.New("No temperature data available from the last hour")

//go:generate mockgen -source=handlers.go -destination=mock/mock.go SensorService

// SensorService provides sensor service methods.
type SensorService interface {
	CurrentTemperature(ctx context.Context) (*model.Temperature, error)
	BoxDetails(ctx context.Context, boxID string) (*model.BoxDetails, error)
}

// HiveServer is a server for temperature requests.
type HiveServer struct {
	service SensorService
	version string
}

// NewHiveServer creates new HiveServer.
func NewHiveServer(service SensorService, version string) *HiveServer {
	return &HiveServer{service: service, version: version}
}

// GetTemperatureHandler handles GetTemperature request.
func (s *HiveServer) GetTemperatureHandler(w http.ResponseWriter, r *http.Request) {
	temperature, err := s.service.CurrentTemperature(r.Context())
	if err != nil {
		s.respondServiceErr(w, fmt.Errorf("failed to get temperature: %w", err))
		return
	}

	respondData(w, http.StatusOK, temperature)
}

// GetBoxHandler handles GetBox request.
func (s *HiveServer) GetBoxHandler(w http.ResponseWriter, r *http.Request) {
	boxID := mux.Vars(r)["id"]
	if boxID == "" {
		respondErr(w, http.StatusBadRequest, errors.New("box id not provided in path"))
		return
	}

	details, err := s.service.BoxDetails(r.Context(), boxID)
	if err != nil {
		s.respondServiceErr(w, fmt.Errorf("failed to get box %s: %w", boxID, err))
		return
	}

	respondData(w, http.StatusOK, details)
}

// GetVersionHandler handles GetVersion request.
func (s *HiveServer) GetVersionHandler(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, &model.Version{Version: s.version})
}

// respondServiceErr maps service and client errors to status codes.
func (s *HiveServer) respondServiceErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoData):
		respondErr(w, http.StatusServiceUnavailable, errNoDataResponse)
	case errors.Is(err, service.ErrUnsupportedUnit):
		logger.Error(err)
		respondErr(w, http.StatusInternalServerError, unwrapCause(err))
	case errors.Is(err, opensensemap.ErrNotFound):
		respondErr(w, http.StatusNotFound, unwrapCause(err))
	case errors.Is(err, opensensemap.ErrRemote):
		logger.Error(err)
		respondErr(w, http.StatusBadGateway, fmt.Errorf("External API error: %w", unwrapCause(err)))
	default:
		logger.Error(err)
		respondErr(w, http.StatusInternalServerError, errors.New(http.StatusText(http.StatusInternalServerError)))
	}
}

// unwrapCause strips the handler's own "failed to ..." context.
func unwrapCause(err error) error {
	if cause := errors.Unwrap(err); cause != nil {
		return cause
	}
	return err
}
