package jobs

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for job postings.
type Service struct {
	Repo Repo
}

// CreateJobInput carries the fields accepted when creating a posting.
type CreateJobInput struct {
	Title        string `json:"title"`
	Department   string `json:"department"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Salary       string `json:"salary"`
	Position     string `json:"position"`
	Location     string `json:"location"`
	JobType      string `json:"jobType"`
	Status       string `json:"status"`
}

// Create validates input, applies defaults and persists a new posting.
func (s *Service) Create(ctx context.Context, in CreateJobInput) (Job, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Job{}, ErrTitleRequired
	}

	jobType := TypeFullTime
	if in.JobType != "" {
		jobType = JobType(in.JobType)
		if !validJobType(jobType) {
			return Job{}, ErrInvalidType
		}
	}

	status := StatusOpen
	if in.Status != "" {
		status = JobStatus(in.Status)
		if !validJobStatus(status) {
			return Job{}, ErrInvalidStatus
		}
	}

	job := Job{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(in.Title),
		Department:   in.Department,
		Description:  in.Description,
		Requirements: in.Requirements,
		Salary:       in.Salary,
		Position:     in.Position,
		Location:     in.Location,
		JobType:      jobType,
		Status:       status,
		Applicants:   []JobApplicant{},
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// List returns all postings, newest first.
func (s *Service) List(ctx context.Context) ([]Job, error) {
	return s.Repo.List(ctx)
}

// Get returns a single posting by id.
func (s *Service) Get(ctx context.Context, id string) (Job, error) {
	return s.Repo.GetByID(ctx, id)
}

// Delete removes a posting by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
