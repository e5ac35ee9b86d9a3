package request

import (
	"regexp"
	"time"

	requesterrors "leave-portal/internal/request/errors"
)

const maxRangeDays = 60

var (
	// Go regexp has no lookahead, so the not-all-zeros rule of
	// ^ATS0(?!000)[0-9]{3}$ is checked separately.
	employeeIDPattern = regexp.MustCompile(`^ATS0[0-9]{3}$`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._-]*[a-zA-Z0-9]@astrolitetech\.com$`)
)

// validateCreatePayload runs the submission checks in order, stopping at
// the first failure: presence, employee id format, email format, date
// range legality. Returns the parsed dates on success.
func validateCreatePayload(req CreatePayload, now time.Time) (time.Time, time.Time, error) {
	if req.Name == "" || req.EmployeeID == "" || req.Email == "" ||
		req.Project == "" || req.Manager == "" || req.Location == "" ||
		req.FromDate == "" || req.ToDate == "" || req.Reason == "" {
		return time.Time{}, time.Time{}, requesterrors.ErrMissingFields
	}

	if !employeeIDPattern.MatchString(req.EmployeeID) || req.EmployeeID == "ATS0000" {
		return time.Time{}, time.Time{}, requesterrors.ErrInvalidEmployeeID
	}

	if !emailPattern.MatchString(req.Email) {
		return time.Time{}, time.Time{}, requesterrors.ErrInvalidEmail
	}

	from, err := parseDate(req.FromDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(req.ToDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	oneYearFromToday := today.AddDate(1, 0, 0)

	if from.Before(today) ||
		from.After(oneYearFromToday) ||
		to.Before(from) ||
		to.Sub(from) > maxRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, requesterrors.ErrInvalidDateRange
	}

	return from, to, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, requesterrors.ErrInvalidDateRange
	}
	return t, nil
}

func isValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
