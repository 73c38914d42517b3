package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Storage errors
	ErrBlobNotFound    = fmt.Errorf("blob not found")
	ErrConcertNotFound = fmt.Errorf("concert not found")
	ErrDuplicateID     = fmt.Errorf("duplicate concert id")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrInvalidDate     = fmt.Errorf("invalid date")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
	ErrUnknownFormat   = fmt.Errorf("unknown format")
)
