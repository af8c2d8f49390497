// Package apierrors defines the connector's API error taxonomy and the fixed
// JSON wire shape consumed by the Zendesk support app.
package apierrors

import "net/http"

// Problem is a terminal request failure with a fixed client-facing message.
// Reason is the log-facing diagnostic and never reaches the wire.
type Problem struct {
	Status  int
	Message string
	Reason  string
}

// Error implements the error interface.
func (p *Problem) Error() string {
	return p.Message
}

// Authorization-phase failures. Messages are part of the API contract and
// must not be reworded.
var (
	// ErrMissingCredential: no extractor produced a credential at all.
	ErrMissingCredential = &Problem{
		Status:  http.StatusForbidden,
		Message: "Unable to extract authorization header from request",
		Reason:  "missing credential",
	}

	// ErrAPIDisabled: API access flag is off and no provisioning token matched.
	ErrAPIDisabled = &Problem{
		Status:  http.StatusForbidden,
		Message: "API access disabled",
		Reason:  "api disabled",
	}

	// ErrNoToken: a credential was present but no bearer token parsed from it.
	ErrNoToken = &Problem{
		Status:  http.StatusUnauthorized,
		Message: "No authorisation token provided",
		Reason:  "no token",
	}

	// ErrNotAuthorized: the parsed token matches neither accepted secret.
	ErrNotAuthorized = &Problem{
		Status:  http.StatusUnauthorized,
		Message: "Not authorised",
		Reason:  "token mismatch",
	}
)

// ErrBadParams: the request did not carry exactly one parameter.
var ErrBadParams = &Problem{
	Status:  http.StatusBadRequest,
	Message: "Expected exactly one request parameter",
	Reason:  "bad parameter count",
}
