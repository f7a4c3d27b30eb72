// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	envparse "github.com/caarlos0/env/v11"
)

type snapshot map[string]any

// Env is a validated, typed view over the environment. It is safe for
// concurrent use.
type Env struct {
	side         Side
	source       Source
	clientPrefix string
	observer     func(Side, error)

	groups     []*group
	serverKeys map[string]struct{}

	load func() (snapshot, error)
}

// Option configures an [Env].
type Option func(*Env)

// WithSide sets the execution side. Defaults to [ServerSide].
func WithSide(side Side) Option {
	return func(e *Env) {
		e.side = side
	}
}

// WithSource sets the raw environment source. Defaults to [OSSource].
func WithSource(source Source) Option {
	return func(e *Env) {
		e.source = source
	}
}

// WithClientPrefix sets the prefix client variables must carry. An empty
// prefix disables the check.
func WithClientPrefix(prefix string) Option {
	return func(e *Env) {
		e.clientPrefix = prefix
	}
}

// WithObserver registers fn to be called after every validation run with
// the side and the validation result.
func WithObserver(fn func(Side, error)) Option {
	return func(e *Env) {
		e.observer = fn
	}
}

// New compiles the schemas and, on [ServerSide], validates every group
// against the source. On [ClientSide] validation is deferred to the first
// read.
func New(schemas Schemas, opts ...Option) (*Env, error) {
	e := &Env{
		side:         ServerSide,
		source:       OSSource{},
		clientPrefix: DefaultClientPrefix,
	}
	for _, opt := range opts {
		opt(e)
	}

	groups, err := compileSchemas(schemas, e.clientPrefix)
	if err != nil {
		return nil, err
	}
	e.groups = groups
	e.serverKeys = make(map[string]struct{})
	for _, g := range groups {
		if g.kind != GroupServer {
			continue
		}
		for _, f := range g.fields {
			e.serverKeys[f.key] = struct{}{}
		}
	}

	if e.side == ClientSide {
		e.load = sync.OnceValues(func() (snapshot, error) {
			return e.resolve(e.visibleGroups())
		})
		return e, nil
	}

	snap, err := e.resolve(e.groups)
	if err != nil {
		return nil, err
	}
	e.load = func() (snapshot, error) { return snap, nil }

	return e, nil
}

// Get returns the validated value of name.
//
// Reading a server variable on [ClientSide] fails with
// [ForbiddenAccessError] before anything is validated. A validation failure
// is returned as [SchemaValidationError], and a name missing from the
// snapshot as [UndefinedKeyError].
func (e *Env) Get(name string) (any, error) {
	if _, ok := e.serverKeys[name]; ok && e.side == ClientSide {
		return nil, &ForbiddenAccessError{Key: name}
	}

	snap, err := e.load()
	if err != nil {
		return nil, err
	}

	v, ok := snap[name]
	if !ok {
		return nil, &UndefinedKeyError{Key: name}
	}

	return v, nil
}

// Lookup returns the value of name as T.
func Lookup[T any](e *Env, name string) (T, error) {
	var zero T

	v, err := e.Get(name)
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, not %T", ErrTypeMismatch, name, v, zero)
	}

	return typed, nil
}

// Public returns a copy of the shared and client values. The result never
// contains server variables and is safe to hand to browsers.
func (e *Env) Public() (map[string]any, error) {
	snap, err := e.load()
	if err != nil {
		return nil, err
	}

	public := make(map[string]any)
	for k, v := range snap {
		if _, server := e.serverKeys[k]; server {
			continue
		}
		public[k] = v
	}

	return public, nil
}

// Keys returns every declared variable in declaration order.
func (e *Env) Keys() []Key {
	var keys []Key
	for _, g := range e.groups {
		for _, f := range g.fields {
			keys = append(keys, Key{Name: f.key, Group: g.kind})
		}
	}
	return keys
}

// Side returns the execution side the accessor was built for.
func (e *Env) Side() Side {
	return e.side
}

func (e *Env) visibleGroups() []*group {
	return slices.DeleteFunc(slices.Clone(e.groups), func(g *group) bool {
		return g.kind == GroupServer
	})
}

// resolve validates groups against the source and builds the snapshot.
func (e *Env) resolve(groups []*group) (snap snapshot, err error) {
	defer func() {
		if e.observer != nil {
			e.observer(e.side, err)
		}
	}()

	environ, err := e.source.Environ()
	if err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	// an empty value is treated as absent
	raw := make(map[string]string, len(environ))
	for k, v := range environ {
		if v != "" {
			raw[k] = v
		}
	}

	snap = make(snapshot)
	var failures []FieldError
	for _, g := range groups {
		values, fieldErrs := parseGroup(g, raw)
		failures = append(failures, fieldErrs...)
		maps.Copy(snap, values)
	}

	if len(failures) > 0 {
		return nil, &SchemaValidationError{Fields: failures}
	}

	return snap, nil
}

// parseGroup runs caarlos0/env over a fresh instance of the group type,
// applies the oneof constraints and collects values of every variable that
// was either supplied or defaulted.
func parseGroup(g *group, raw map[string]string) (map[string]any, []FieldError) {
	ptr := reflect.New(g.typ)
	err := envparse.ParseWithOptions(ptr.Interface(), envparse.Options{Environment: raw})

	failures := fieldErrors(g, err)
	failed := make(map[string]struct{}, len(failures))
	for _, f := range failures {
		failed[f.Key] = struct{}{}
	}

	values := make(map[string]any, len(g.fields))
	for _, f := range g.fields {
		if _, ok := failed[f.key]; ok {
			continue
		}

		_, supplied := raw[f.key]
		if !supplied && !f.hasDefault {
			continue
		}

		v := ptr.Elem().Field(f.index).Interface()
		if len(f.oneOf) > 0 && !slices.Contains(f.oneOf, fmt.Sprint(v)) {
			failures = append(failures, FieldError{
				Key:    f.key,
				Reason: fmt.Sprintf("invalid value %q, expected one of %v", fmt.Sprint(v), f.oneOf),
			})
			continue
		}

		values[f.key] = v
	}

	slices.SortStableFunc(failures, func(a, b FieldError) int {
		i, _ := g.fieldIndex(a.Key)
		j, _ := g.fieldIndex(b.Key)
		return i - j
	})

	return values, failures
}

// fieldErrors maps the aggregated caarlos0/env error to per-variable
// failures.
func fieldErrors(g *group, err error) []FieldError {
	if err == nil {
		return nil
	}

	errs := []error{err}
	var agg envparse.AggregateError
	if errors.As(err, &agg) {
		errs = agg.Errors
	}

	failures := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		var (
			parseErr  envparse.ParseError
			notSetErr envparse.EnvVarIsNotSetError
			emptyErr  envparse.EmptyEnvVarError
		)

		switch {
		case errors.As(e, &parseErr):
			key := parseErr.Name
			if f, ok := g.fieldByName(parseErr.Name); ok {
				key = f.key
			}
			failures = append(failures, FieldError{Key: key, Reason: parseErr.Err.Error()})
		case errors.As(e, &notSetErr):
			failures = append(failures, FieldError{Key: notSetErr.Key, Reason: "required"})
		case errors.As(e, &emptyErr):
			failures = append(failures, FieldError{Key: emptyErr.Key, Reason: "must not be empty"})
		default:
			failures = append(failures, FieldError{Key: g.kind.String(), Reason: e.Error()})
		}
	}

	return failures
}
