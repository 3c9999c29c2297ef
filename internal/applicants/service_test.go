package applicants

import (
	"context"
	"testing"
	"time"
)

func TestListByJobRewritesResumeURLs(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Now().UTC()
	seed := []Applicant{
		{ID: "a1", JobID: "job-1", Name: "Jane", Resume: "uploads/1700000000000-42.pdf", CreatedAt: now},
		{ID: "a2", JobID: "job-1", Name: "Bob", Resume: `uploads\1700000000001-43.docx`, CreatedAt: now.Add(time.Second)},
		{ID: "a3", JobID: "job-2", Name: "Eve", Resume: "uploads/other.pdf", CreatedAt: now},
	}
	for _, a := range seed {
		if err := repo.Create(context.Background(), a); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	svc := &Service{Repo: repo, BaseURL: "http://localhost:5000/"}

	list, err := svc.ListByJob(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("ListByJob: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 applicants for job-1, got %d", len(list))
	}
	if list[0].Resume != "http://localhost:5000/uploads/1700000000000-42.pdf" {
		t.Fatalf("unexpected resume URL %q", list[0].Resume)
	}
	// Backslash separators from legacy records are normalized.
	if list[1].Resume != "http://localhost:5000/uploads/1700000000001-43.docx" {
		t.Fatalf("unexpected resume URL %q", list[1].Resume)
	}

	// Stored records keep the relative path.
	stored, err := repo.ListByJob(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("ListByJob: %v", err)
	}
	if stored[0].Resume != "uploads/1700000000000-42.pdf" {
		t.Fatalf("stored path mutated: %q", stored[0].Resume)
	}
}
