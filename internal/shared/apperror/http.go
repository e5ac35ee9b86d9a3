package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the transport-level view of an error, ready to be written
// as a response body by the handler layer.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details string
}

// ToHTTP maps any error to its HTTP representation. AppErrors keep their
// code, message and status; anything else becomes a 500 with the raw error
// message attached as details.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		httpErr := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if appErr.Err != nil {
			httpErr.Details = appErr.Err.Error()
		}
		return httpErr
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
		Details: err.Error(),
	}
}
