package applicants

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"

	"hr-backend/internal/notify"
	"hr-backend/internal/resumes"
)

// Service runs the applicant submission pipeline: resume intake, field
// validation, persistence and the notification broadcast, in that order.
type Service struct {
	Repo        Repo
	Intake      *resumes.Intake
	Broadcaster notify.Broadcaster
	BaseURL     string
}

// SubmissionInput carries the applicant form fields.
type SubmissionInput struct {
	Name            string
	Email           string
	Phone           string
	CurrentSalary   *float64
	ExpectedSalary  *float64
	PortfolioLink   string
	LinkedinProfile string
}

// Submit stores the resume, validates required fields and persists the
// applicant. The stored file is not removed when persistence fails, so a
// failed submission can leave an orphaned upload behind.
func (s *Service) Submit(ctx context.Context, jobID string, in SubmissionInput, resume *multipart.FileHeader) (Applicant, error) {
	if resume == nil {
		return Applicant{}, ErrResumeRequired
	}

	resumePath, err := s.Intake.Accept(ctx, resume)
	if err != nil {
		return Applicant{}, err
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Phone) == "" {
		return Applicant{}, ErrMissingFields
	}

	now := time.Now().UTC()
	applicant := Applicant{
		ID:              uuid.NewString(),
		JobID:           jobID,
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		CurrentSalary:   in.CurrentSalary,
		ExpectedSalary:  in.ExpectedSalary,
		PortfolioLink:   in.PortfolioLink,
		LinkedinProfile: in.LinkedinProfile,
		Resume:          resumePath,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(ctx, applicant); err != nil {
		return Applicant{}, fmt.Errorf("persist applicant: %w", err)
	}

	s.Broadcaster.Publish(notify.Event{
		Message: fmt.Sprintf("New applicant: %s for job ID: %s", applicant.Name, jobID),
	})

	return applicant, nil
}

// ListByJob returns applicants for a job with resume paths rewritten into
// absolute URLs. The rewrite is a read-time transform; stored records keep
// the relative path.
func (s *Service) ListByJob(ctx context.Context, jobID string) ([]Applicant, error) {
	list, err := s.Repo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Resume = s.resumeURL(list[i].Resume)
	}
	return list, nil
}

func (s *Service) resumeURL(storagePath string) string {
	normalized := strings.ReplaceAll(storagePath, "\\", "/")
	return strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(normalized, "/")
}
