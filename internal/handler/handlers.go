package handler

import (
	"github.com/forknroll/go-boilerplate-base/internal/config"
	"github.com/forknroll/go-boilerplate-base/internal/handler/http"
	"github.com/forknroll/go-boilerplate-base/internal/logger"
	"github.com/forknroll/go-boilerplate-base/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger, opts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger, opts...)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
