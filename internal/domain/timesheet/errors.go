package timesheet

import "errors"

var (
	ErrWorkEntryNotFound = errors.New("work entry not found")
	ErrInvalidDate       = errors.New("invalid work entry date")
)
