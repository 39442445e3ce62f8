// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/utils"
)

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler: an unsupported method on a known path answers 404 like an unknown
// path does, with the regular JSON error body.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
