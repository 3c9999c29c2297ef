package employees

import "errors"

var (
	ErrNotFound            = errors.New("Employee not found")
	ErrMissingFields       = errors.New("Name, client, start date, and position are required.")
	ErrNoteContentRequired = errors.New("Note content is required.")
	ErrInvalidRating       = errors.New("Rating must be a number between 0 and 5.")
)
