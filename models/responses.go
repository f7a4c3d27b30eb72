package models

// EnvResponse is the body of GET /api/env. Variables holds only shared and
// client values.
type EnvResponse struct {
	Side      string         `json:"side"`
	Variables map[string]any `json:"variables"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
