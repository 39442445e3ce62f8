package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/models"
)

type healthService struct {
	pinger    store.Pinger
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, buildInfo models.AppBuildInfo, logger *logger.Logger) HealthService {
	return &healthService{
		pinger:    pinger,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Check pings the store. The returned response carries the build version and
// commit in both cases; its status is "ok" only when err is nil.
func (s *healthService) Check(ctx context.Context) (models.HealthResponse, error) {
	response := models.HealthResponse{
		Status:  app.MsgStatusOK,
		Version: s.buildInfo.BuildVersion(),
		Commit:  s.buildInfo.BuildCommit(),
	}

	if s.pinger == nil {
		response.Status = app.MsgStatusUnavailable
		return response, ErrStoreUnavailable
	}

	if err := s.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("store ping failed")
		response.Status = app.MsgStatusUnavailable
		return response, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return response, nil
}
