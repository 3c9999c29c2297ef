package applicants

import "errors"

var (
	ErrResumeRequired = errors.New("Resume file is required")
	ErrMissingFields  = errors.New("Name, email, and phone are required fields")
)
