package jobs

import "errors"

var (
	ErrNotFound      = errors.New("Job not found")
	ErrTitleRequired = errors.New("Job title is required")
	ErrInvalidType   = errors.New("Invalid job type")
	ErrInvalidStatus = errors.New("Invalid job status")
)
