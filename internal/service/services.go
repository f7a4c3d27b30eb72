package service

import (
	"fmt"

	"github.com/forknroll/go-boilerplate-base/internal/logger"
	"github.com/forknroll/go-boilerplate-base/models"
)

type Services struct {
	AppInfoService AppInfoService
	LandingService LandingService
}

func NewServices(buildInfo models.AppBuildInfo, serverEnv, clientEnv EnvReader, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	landingService, err := NewLandingService(serverEnv, clientEnv, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating landing service: %w", err)
	}

	return &Services{
		AppInfoService: appInfoService,
		LandingService: landingService,
	}, nil
}
