package errors

import "net/http"

var (
	ErrInvalidFile = New(
		"INVALID_FILE",
		"Invalid file format. Please upload a GPX file",
		http.StatusBadRequest,
	)

	ErrFileTooLarge = New(
		"FILE_TOO_LARGE",
		"File too large",
		http.StatusRequestEntityTooLarge,
	)

	ErrInvalidGPX = New(
		"INVALID_GPX",
		"Invalid GPX file format",
		http.StatusBadRequest,
	)

	ErrEmptyTrack = New(
		"EMPTY_TRACK",
		"No track points found in GPX file",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrGeodataUnavailable = New(
		"GEODATA_UNAVAILABLE",
		"External geodata service temporarily unavailable",
		http.StatusServiceUnavailable,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
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
