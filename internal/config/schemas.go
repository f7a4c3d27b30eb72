package config

import (
	"github.com/forknroll/go-boilerplate-base/internal/env"
)

// Application environment variables.
const (
	KeyNodeEnv       = "NODE_ENV"
	KeyRepositoryURL = "PUBLIC_REPOSITORY_URL"
	KeyAppName       = "APP_NAME"
)

// NODE_ENV values.
const (
	NodeEnvDevelopment = "development"
	NodeEnvTest        = "test"
	NodeEnvProduction  = "production"
)

// DefaultRepositoryURL is the repository the landing page links to.
const DefaultRepositoryURL = "https://github.com/forknroll/go-boilerplate-base"

// SharedEnv holds variables visible on both sides.
type SharedEnv struct {
	NodeEnv string `env:"NODE_ENV" envDefault:"development" oneof:"development test production"`
}

// ClientEnv holds variables that may be exposed to browsers.
type ClientEnv struct {
	RepositoryURL string `env:"PUBLIC_REPOSITORY_URL" envDefault:"https://github.com/forknroll/go-boilerplate-base"`
}

// ServerEnv holds server-only variables.
type ServerEnv struct {
	AppName string `env:"APP_NAME" envDefault:"Go Boilerplate"`
}

// EnvSchemas returns the application's schema groups.
func EnvSchemas() env.Schemas {
	return env.Schemas{
		Shared: SharedEnv{},
		Client: ClientEnv{},
		Server: ServerEnv{},
	}
}

// NewEnv builds an accessor over the application schemas for side, reading
// from source.
func NewEnv(side env.Side, source env.Source, opts ...env.Option) (*env.Env, error) {
	opts = append([]env.Option{env.WithSide(side), env.WithSource(source)}, opts...)
	return env.New(EnvSchemas(), opts...)
}
