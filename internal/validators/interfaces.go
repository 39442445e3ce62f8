// Package validators checks API request bodies before they reach the store.
//
// Required-field rules mirror the API contract: registration needs all four
// profile fields, a food item needs restaurant, name and a non-negative
// price, a cart line needs a quantity of at least one. PATCH bodies may omit
// any field but must not blank one out.
//
// Every error returned is one of the sentinels in errors.go, so the HTTP
// layer can map it to a 400 response with a stable message.
package validators

import "context"

// Validator checks a request value. When fields are given, only the named
// fields (Field* constants) are checked.
type Validator interface {
	Validate(ctx context.Context, request any, fields ...string) error
}
