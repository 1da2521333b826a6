package errors

import "net/http"

var (
	ErrResourceNotFound = New(
		"RESOURCE_NOT_FOUND",
		"Recreation resource not found",
		http.StatusNotFound,
	)

	ErrPageLimitExceeded = New(
		"PAGE_LIMIT_EXCEEDED",
		"maximum page limit is 10 when no limit is provided",
		http.StatusBadRequest,
	)

	ErrGeoPairRequired = New(
		"GEO_PAIR_REQUIRED",
		"both lat and lon must be provided",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
