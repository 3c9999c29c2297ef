package applicants_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/bootstrap"
	"hr-backend/internal/shared/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:            "0",
		BaseURL:         "http://localhost:5000",
		Env:             "dev",
		ObjectStoreType: "local",
		UploadsDir:      t.TempDir(),
	}
}

func buildApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(testConfig(t))
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func createJob(t *testing.T, app *bootstrap.App, title string) string {
	t.Helper()
	body := bytes.NewBufferString(`{"title":"` + title + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/recruitments", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("create job: expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}
	var created struct {
		Job struct {
			ID string `json:"id"`
		} `json:"job"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode job response: %v", err)
	}
	return created.Job.ID
}

func submissionBody(t *testing.T, fields map[string]string, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileName != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="resume"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func listApplicants(t *testing.T, app *bootstrap.App, jobID string) []map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/recruitments/"+jobID+"/applicants", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("list applicants: expected 200, got %d", resp.Code)
	}
	var out []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode applicants: %v", err)
	}
	return out
}

func TestSubmitApplicantHappyPath(t *testing.T) {
	app := buildApp(t)
	jobID := createJob(t, app, "Backend Engineer")

	events, cancel := app.Hub.Subscribe()
	defer cancel()

	pdf := append([]byte("%PDF-1.4 "), bytes.Repeat([]byte("a"), 2<<20)...)
	body, contentType := submissionBody(t, map[string]string{
		"name":  "Jane",
		"email": "jane@x.com",
		"phone": "555",
	}, "cv.pdf", "application/pdf", pdf)

	req := httptest.NewRequest(http.MethodPost, "/api/recruitments/"+jobID+"/applicants", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}
	var created struct {
		Message   string `json:"message"`
		Applicant struct {
			ID     string `json:"id"`
			JobID  string `json:"jobId"`
			Resume string `json:"resume"`
		} `json:"applicant"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Applicant.JobID != jobID {
		t.Fatalf("expected jobId %s, got %s", jobID, created.Applicant.JobID)
	}
	if !strings.HasPrefix(created.Applicant.Resume, "uploads/") {
		t.Fatalf("expected relative stored resume path, got %q", created.Applicant.Resume)
	}

	select {
	case ev := <-events:
		want := "New applicant: Jane for job ID: " + jobID
		if ev.Message != want {
			t.Fatalf("expected event %q, got %q", want, ev.Message)
		}
	default:
		t.Fatalf("expected a broadcast event")
	}

	list := listApplicants(t, app, jobID)
	if len(list) != 1 {
		t.Fatalf("expected 1 applicant, got %d", len(list))
	}
	resume, _ := list[0]["resume"].(string)
	if !strings.HasPrefix(resume, "http://localhost:5000/uploads/") {
		t.Fatalf("expected absolute resume URL, got %q", resume)
	}
}

func TestSubmitApplicantMissingFields(t *testing.T) {
	app := buildApp(t)
	jobID := createJob(t, app, "Backend Engineer")

	body, contentType := submissionBody(t, map[string]string{
		"name":  "Jane",
		"email": "jane@x.com",
	}, "cv.pdf", "application/pdf", []byte("%PDF-1.4"))

	req := httptest.NewRequest(http.MethodPost, "/api/recruitments/"+jobID+"/applicants", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if list := listApplicants(t, app, jobID); len(list) != 0 {
		t.Fatalf("expected no applicants, got %d", len(list))
	}
}

func TestSubmitApplicantMissingResume(t *testing.T) {
	app := buildApp(t)
	jobID := createJob(t, app, "Backend Engineer")

	body, contentType := submissionBody(t, map[string]string{
		"name":  "Jane",
		"email": "jane@x.com",
		"phone": "555",
	}, "", "", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/recruitments/"+jobID+"/applicants", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Resume file is required") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestSubmitApplicantRejectsDisallowedFileType(t *testing.T) {
	app := buildApp(t)
	jobID := createJob(t, app, "Backend Engineer")

	body, contentType := submissionBody(t, map[string]string{
		"name":  "Jane",
		"email": "jane@x.com",
		"phone": "555",
	}, "cv.png", "image/png", []byte("png bytes"))

	req := httptest.NewRequest(http.MethodPost, "/api/recruitments/"+jobID+"/applicants", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if list := listApplicants(t, app, jobID); len(list) != 0 {
		t.Fatalf("expected no applicants, got %d", len(list))
	}
}

func TestSubmitApplicantOptionalFieldsPassThrough(t *testing.T) {
	app := buildApp(t)
	jobID := createJob(t, app, "Backend Engineer")

	body, contentType := submissionBody(t, map[string]string{
		"name":            "Jane",
		"email":           "jane@x.com",
		"phone":           "555",
		"currentSalary":   "50000",
		"expectedSalary":  "40000",
		"portfolioLink":   "https://jane.dev",
		"linkedinProfile": "https://linkedin.com/in/jane",
	}, "cv.pdf", "application/pdf", []byte("%PDF-1.4"))

	req := httptest.NewRequest(http.MethodPost, "/api/recruitments/"+jobID+"/applicants", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}

	list := listApplicants(t, app, jobID)
	if len(list) != 1 {
		t.Fatalf("expected 1 applicant, got %d", len(list))
	}
	// expectedSalary below currentSalary is accepted verbatim.
	if got := list[0]["expectedSalary"].(float64); got != 40000 {
		t.Fatalf("expected expectedSalary 40000, got %v", got)
	}
	if got := list[0]["portfolioLink"].(string); got != "https://jane.dev" {
		t.Fatalf("unexpected portfolioLink %q", got)
	}
}
