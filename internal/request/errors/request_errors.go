package requesterrors

import (
	"fmt"
	"net/http"
	"strings"

	"leave-portal/internal/shared/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"All fields are required",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID format. Must be ATS0 followed by 3 digits (not all zeros)",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email format. Must be in format: firstname.lastname@astrolitetech.com",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date range. Must be within one year from today and not exceed 60 days",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidState,
		"Invalid status",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Request not found",
		http.StatusNotFound,
	)
)

// DuplicateRequest reports an existing non-rejected request for the same
// employee and date span, naming its current status.
func DuplicateRequest(status string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("You already have a %s request for these dates", strings.ToLower(status)),
		http.StatusBadRequest,
	)
}
