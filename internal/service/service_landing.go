package service

import (
	"context"
	"fmt"

	"github.com/forknroll/go-boilerplate-base/internal/config"
	"github.com/forknroll/go-boilerplate-base/internal/logger"
	"github.com/forknroll/go-boilerplate-base/models"
)

type landingService struct {
	serverEnv EnvReader
	clientEnv EnvReader

	logger *logger.Logger
}

// NewLandingService returns a [LandingService]. serverEnv is read for
// server-only values such as the application name; clientEnv is the
// restricted accessor whose public view is handed to browsers.
func NewLandingService(serverEnv, clientEnv EnvReader, logger *logger.Logger) (LandingService, error) {
	if serverEnv == nil || clientEnv == nil {
		return nil, ErrEnvNotProvided
	}

	return &landingService{
		serverEnv: serverEnv,
		clientEnv: clientEnv,
		logger:    logger,
	}, nil
}

// GetLandingPage combines the static landing content with the application
// name, the current NODE_ENV, the repository link and the public
// environment.
//
// Returns a wrapped env error if any accessor fails, e.g.
// env.SchemaValidationError on a first client-side read with invalid
// variables.
func (s *landingService) GetLandingPage(ctx context.Context) (models.LandingPage, error) {
	log := logger.FromContext(ctx)
	defer s.logger.Time("landing page")()

	appName, err := lookupString(s.serverEnv, config.KeyAppName)
	if err != nil {
		log.Err(err).Msg("error reading app name")
		return models.LandingPage{}, fmt.Errorf("error reading app name: %w", err)
	}

	nodeEnv, err := lookupString(s.serverEnv, config.KeyNodeEnv)
	if err != nil {
		log.Err(err).Msg("error reading node env")
		return models.LandingPage{}, fmt.Errorf("error reading node env: %w", err)
	}

	repository, err := lookupString(s.clientEnv, config.KeyRepositoryURL)
	if err != nil {
		log.Err(err).Msg("error reading repository url")
		return models.LandingPage{}, fmt.Errorf("error reading repository url: %w", err)
	}

	public, err := s.PublicEnv(ctx)
	if err != nil {
		return models.LandingPage{}, err
	}

	return models.LandingPage{
		AppName:      appName,
		Environment:  nodeEnv,
		Metadata:     models.DefaultMetadata(),
		Links:        models.ProjectLinks{GitHub: repository},
		Features:     models.Features(),
		Technologies: models.Technologies(),
		PublicEnv:    public,
	}, nil
}

func (s *landingService) PublicEnv(ctx context.Context) (map[string]any, error) {
	public, err := s.clientEnv.Public()
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error reading public env")
		return nil, fmt.Errorf("error reading public env: %w", err)
	}

	return public, nil
}

func lookupString(r EnvReader, key string) (string, error) {
	v, err := r.Get(key)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T", ErrUnexpectedEnvType, key, v)
	}

	return s, nil
}
