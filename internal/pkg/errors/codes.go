package errors

import "net/http"

const (
	CodeMissingCity     = "MISSING_CITY"
	CodeInvalidParams   = "INVALID_PARAMETERS"
	CodeNoResults       = "NO_RESULTS"
	CodeUpstreamFailure = "UPSTREAM_FAILURE"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

var (
	ErrMissingCity = New(
		CodeMissingCity,
		"Missing city",
		http.StatusBadRequest,
	)

	ErrInvalidParameters = New(
		CodeInvalidParams,
		"Invalid parameters",
		http.StatusBadRequest,
	)

	// Geocoder misses are reported as 500, matching the behavior the
	// front-end was written against.
	ErrNoResults = New(
		CodeNoResults,
		"No results",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
