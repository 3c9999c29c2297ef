package employees

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hr-backend/internal/notify"
)

// Service contains business logic for employees. Every successful mutation
// broadcasts a notification event; none of them persist a Notification
// record.
type Service struct {
	Repo        Repo
	Broadcaster notify.Broadcaster
}

// CreateEmployeeInput carries the fields accepted when adding an employee.
type CreateEmployeeInput struct {
	Name          string
	Position      string
	Client        string
	StartDate     time.Time
	PromotionDate *time.Time
}

// Create validates input and persists a new employee.
func (s *Service) Create(ctx context.Context, in CreateEmployeeInput) (Employee, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Client) == "" ||
		strings.TrimSpace(in.Position) == "" || in.StartDate.IsZero() {
		return Employee{}, ErrMissingFields
	}

	now := time.Now().UTC()
	employee := Employee{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		Position:      strings.TrimSpace(in.Position),
		Client:        strings.TrimSpace(in.Client),
		StartDate:     in.StartDate,
		PromotionDate: in.PromotionDate,
		Notes:         []Note{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, employee); err != nil {
		return Employee{}, err
	}

	s.Broadcaster.Publish(notify.Event{Message: fmt.Sprintf("New employee added: %s", employee.Name)})
	return employee, nil
}

// List returns all employees, newest first.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.Repo.List(ctx)
}

// AddNote appends a note to the employee's history. A missing date defaults
// to the current time.
func (s *Service) AddNote(ctx context.Context, id, content string, date *time.Time) (Employee, error) {
	if strings.TrimSpace(content) == "" {
		return Employee{}, ErrNoteContentRequired
	}

	employee, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Employee{}, err
	}

	noteDate := time.Now().UTC()
	if date != nil {
		noteDate = *date
	}
	employee.Notes = append(employee.Notes, Note{Date: noteDate, Content: content})
	employee.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, employee); err != nil {
		return Employee{}, err
	}

	s.Broadcaster.Publish(notify.Event{Message: fmt.Sprintf("Note added to employee: %s", employee.Name)})
	return employee, nil
}

// UpdateRating sets the performance rating. Ratings outside [0, 5] are
// rejected. Concurrent updates race; last write wins.
func (s *Service) UpdateRating(ctx context.Context, id string, rating float64) (Employee, error) {
	if rating < 0 || rating > 5 {
		return Employee{}, ErrInvalidRating
	}

	employee, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Employee{}, err
	}

	employee.PerformanceRating = rating
	employee.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, employee); err != nil {
		return Employee{}, err
	}

	s.Broadcaster.Publish(notify.Event{Message: fmt.Sprintf("Performance rating updated for: %s", employee.Name)})
	return employee, nil
}

// Delete removes an employee.
func (s *Service) Delete(ctx context.Context, id string) error {
	employee, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	s.Broadcaster.Publish(notify.Event{Message: fmt.Sprintf("Employee deleted: %s", employee.Name)})
	return nil
}
