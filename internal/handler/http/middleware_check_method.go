// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers 404 Not Found instead of chi's 405 when the matched route does
// not serve the requested method. Pages and API routes thereby look absent
// to callers using an unsupported method.
//
// Routes are matched by exact pattern against the request path; wildcard
// and parameterised patterns are not expanded. When the method is in fact
// registered the request is passed back to router.
//
//	router := chi.NewRouter()
//	router.Get("/", landing)
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		routes := router.Routes()
		i := slices.IndexFunc(routes, func(route chi.Route) bool {
			return route.Pattern == r.URL.Path
		})

		if i < 0 {
			http.NotFound(w, r)
			return
		}
		if _, ok := routes[i].Handlers[r.Method]; !ok {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
