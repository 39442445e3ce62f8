// Package http implements the REST API of the food-ordering server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as CORS, request tracing, access logging and bearer-token
// authentication are handled in this package before requests are delegated
// to the service layer. Failures are mapped to HTTP statuses and
// {"error": "..."} bodies in errors_mapper.go.
package http
