// Package env provides validated, typed access to environment variables
// declared in three schema groups and enforces which side of the
// application may read which variables.
//
// A schema group is a flat struct whose fields carry caarlos0/env tags:
//
//	type Shared struct {
//		NodeEnv string `env:"NODE_ENV" envDefault:"development" oneof:"development test production"`
//	}
//
// Variables in the shared group are readable everywhere, variables in the
// client group are readable everywhere and must carry the public prefix, and
// variables in the server group are readable only on [ServerSide].
//
// On [ServerSide] the union of all groups is validated when the accessor is
// constructed. On [ClientSide] validation of the shared and client groups is
// deferred to the first read and happens exactly once.
package env
