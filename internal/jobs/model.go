package jobs

import "time"

// JobType classifies a posting's employment arrangement.
type JobType string

const (
	TypeFullTime   JobType = "Full-time"
	TypePartTime   JobType = "Part-time"
	TypeInternship JobType = "Internship"
	TypeContract   JobType = "Contract"
	TypeRemote     JobType = "Remote"
)

// JobStatus marks whether a posting still accepts applicants.
type JobStatus string

const (
	StatusOpen   JobStatus = "Open"
	StatusClosed JobStatus = "Closed"
)

// ApplicantStatus tracks an embedded applicant's progress.
type ApplicantStatus string

const (
	ApplicantApplied      ApplicantStatus = "Applied"
	ApplicantInterviewing ApplicantStatus = "Interviewing"
	ApplicantHired        ApplicantStatus = "Hired"
	ApplicantRejected     ApplicantStatus = "Rejected"
)

// JobApplicant is the lightweight applicant sub-record embedded on a posting.
// It is a read model independent of the standalone applicants collection;
// nothing keeps the two synchronized.
type JobApplicant struct {
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Resume    string          `json:"resume"`
	Status    ApplicantStatus `json:"status"`
	Notes     string          `json:"notes,omitempty"`
	AppliedAt time.Time       `json:"appliedAt"`
}

// Job is a posting in the recruitment pipeline.
type Job struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Department   string         `json:"department"`
	Description  string         `json:"description"`
	Requirements string         `json:"requirements"`
	Salary       string         `json:"salary"`
	Position     string         `json:"position"`
	Location     string         `json:"location"`
	JobType      JobType        `json:"jobType"`
	Status       JobStatus      `json:"status"`
	Applicants   []JobApplicant `json:"applicants"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func validJobType(t JobType) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeInternship, TypeContract, TypeRemote:
		return true
	}
	return false
}

func validJobStatus(s JobStatus) bool {
	switch s {
	case StatusOpen, StatusClosed:
		return true
	}
	return false
}
