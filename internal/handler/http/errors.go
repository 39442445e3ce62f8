// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoUserIDInContext is logged when a protected handler runs without the
// user ID that the auth middleware binds into the request context.
var ErrNoUserIDInContext = errors.New("no user ID in request context")
