package client

import "errors"

// networkErrorMessage is the generic message shown when the backend is
// unreachable or returns an unparseable body.
const networkErrorMessage = "Erro de conexão. Verifique sua internet."

// APIError is the single error shape every request failure resolves to.
// Error() is the resolved human-readable message only; callers render it
// directly and never see raw status codes.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsStatus returns true if err (or any wrapped error) is an APIError with
// the given status code. Used by the route guard to detect expired sessions.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}
