package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/forknroll/go-boilerplate-base/models"
)

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// LandingService assembles the landing page and the browser-safe
// environment.
type LandingService interface {
	// GetLandingPage builds the landing page view model.
	GetLandingPage(ctx context.Context) (models.LandingPage, error)
	// PublicEnv returns the shared and client variables. It never contains
	// server variables.
	PublicEnv(ctx context.Context) (map[string]any, error)
}

// EnvReader is the read side of a validated environment accessor.
// *env.Env satisfies it.
type EnvReader interface {
	Get(name string) (any, error)
	Public() (map[string]any, error)
}
