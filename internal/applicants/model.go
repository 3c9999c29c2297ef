package applicants

import "time"

// Applicant is a standalone application to a job posting. The resume field
// holds the storage path returned by intake; listings rewrite it into an
// absolute URL at read time.
type Applicant struct {
	ID              string    `json:"id"`
	JobID           string    `json:"jobId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	CurrentSalary   *float64  `json:"currentSalary,omitempty"`
	ExpectedSalary  *float64  `json:"expectedSalary,omitempty"`
	PortfolioLink   string    `json:"portfolioLink,omitempty"`
	LinkedinProfile string    `json:"linkedinProfile,omitempty"`
	Resume          string    `json:"resume"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
