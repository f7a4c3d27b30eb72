// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrRenderingPage is returned when the landing template fails to execute.
var ErrRenderingPage = errors.New("error rendering page")
