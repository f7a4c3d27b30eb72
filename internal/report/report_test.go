package report

import (
	"bytes"
	"testing"

	"github.com/forknroll/go-boilerplate-base/internal/env"
	"github.com/forknroll/go-boilerplate-base/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testShared struct {
	NodeEnv string `env:"NODE_ENV" envDefault:"development" oneof:"development test production"`
}

type testClient struct {
	SiteURL string `env:"PUBLIC_SITE_URL"`
}

type testServer struct {
	Port int `env:"PORT" envDefault:"8080"`
}

func newTestEnv(t *testing.T, side env.Side, vars env.MapSource) *env.Env {
	t.Helper()

	e, err := env.New(env.Schemas{Shared: testShared{}, Client: testClient{}, Server: testServer{}},
		env.WithSide(side), env.WithSource(vars))
	require.NoError(t, err)
	return e
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name string
		side env.Side
		vars env.MapSource
		want []Row
	}{
		{
			name: "server side sees everything",
			side: env.ServerSide,
			vars: env.MapSource{"PUBLIC_SITE_URL": "https://example.com"},
			want: []Row{
				{Name: "NODE_ENV", Group: "shared", Value: "development"},
				{Name: "PUBLIC_SITE_URL", Group: "client", Value: "https://example.com"},
				{Name: "PORT", Group: "server", Value: "8080"},
			},
		},
		{
			name: "client side hides server variables",
			side: env.ClientSide,
			vars: env.MapSource{"NODE_ENV": "production", "PORT": "9000"},
			want: []Row{
				{Name: "NODE_ENV", Group: "shared", Value: "production"},
				{Name: "PUBLIC_SITE_URL", Group: "client", Value: Unset},
				{Name: "PORT", Group: "server", Value: ServerOnly},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Collect(newTestEnv(t, tt.side, tt.vars))

			require.NoError(t, err)
			assert.Equal(t, tt.want, rows)
		})
	}
}

func TestCollect_ValidationError(t *testing.T) {
	e := newTestEnv(t, env.ClientSide, env.MapSource{"NODE_ENV": "staging"})

	rows, err := Collect(e)

	assert.Nil(t, rows)
	var validationErr *env.SchemaValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"NODE_ENV"}, validationErr.Keys())
}

func TestFromRemote_SortsByName(t *testing.T) {
	rows := FromRemote(models.EnvResponse{
		Side:      "client",
		Variables: map[string]any{"PUBLIC_B": "b", "NODE_ENV": "test", "PUBLIC_A": 1.0},
	})

	assert.Equal(t, []Row{
		{Name: "NODE_ENV", Group: "public", Value: "test"},
		{Name: "PUBLIC_A", Group: "public", Value: "1"},
		{Name: "PUBLIC_B", Group: "public", Value: "b"},
	}, rows)
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, "server environment", []Row{
		{Name: "NODE_ENV", Group: "shared", Value: "test"},
		{Name: "APP_NAME", Group: "server", Value: ServerOnly},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "server environment")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "NODE_ENV  shared  test")
	assert.Contains(t, out, "APP_NAME  server  server-only")
	assert.Contains(t, out, "2 variables valid")
}

func TestRenderValidationError(t *testing.T) {
	var buf bytes.Buffer

	err := RenderValidationError(&buf, &env.SchemaValidationError{Fields: []env.FieldError{
		{Key: "NODE_ENV", Reason: "invalid value"},
		{Key: "SECRET", Reason: "required"},
	}})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2 invalid environment variables")
	assert.Contains(t, buf.String(), "NODE_ENV: invalid value")
	assert.Contains(t, buf.String(), "SECRET: required")
}
