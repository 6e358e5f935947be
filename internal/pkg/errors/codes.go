package errors

import "net/http"

var (
	ErrDocumentNotFound = New(
		"DOCUMENT_NOT_FOUND",
		"Document not found",
		http.StatusNotFound,
	)

	ErrStakeholdersNotFound = New(
		"STAKEHOLDERS_NOT_FOUND",
		"No stakeholders found",
		http.StatusNotFound,
	)

	ErrScalesNotFound = New(
		"SCALES_NOT_FOUND",
		"No scales found",
		http.StatusNotFound,
	)

	ErrTypesNotFound = New(
		"TYPES_NOT_FOUND",
		"No document types found",
		http.StatusNotFound,
	)

	ErrLinkNotFound = New(
		"LINK_NOT_FOUND",
		"Link not found",
		http.StatusNotFound,
	)

	ErrLinkExists = New(
		"LINK_ALREADY_EXISTS",
		"Link already exists",
		http.StatusConflict,
	)

	ErrGeoreferenceExists = New(
		"GEOREFERENCE_ALREADY_EXISTS",
		"Document already has a georeference",
		http.StatusConflict,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request body",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidID = New(
		"INVALID_ID",
		"Invalid id parameter",
		http.StatusUnprocessableEntity,
	)

	ErrNotAuthenticated = New(
		"NOT_AUTHENTICATED",
		"Not authenticated",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Incorrect username or password",
		http.StatusUnauthorized,
	)

	ErrNotPlanner = New(
		"NOT_AUTHORIZED",
		"Not an urban planner",
		http.StatusForbidden,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusServiceUnavailable,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusServiceUnavailable,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusServiceUnavailable,
	)
)
