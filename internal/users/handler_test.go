package users_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/bootstrap"
	"hr-backend/internal/shared/config"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(config.Config{
		BaseURL:         "http://localhost:5000",
		Env:             "dev",
		ObjectStoreType: "local",
		UploadsDir:      t.TempDir(),
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func doJSON(t *testing.T, app *bootstrap.App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	app := newTestApp(t)

	reg := doJSON(t, app, http.MethodPost, "/api/auth/register", `{"email":"Jane@X.com","password":"s3cret"}`)
	if reg.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", reg.Code, reg.Body.String())
	}

	// Email lookup is case-insensitive; the stored form is lowercased.
	login := doJSON(t, app, http.MethodPost, "/api/auth/login", `{"email":"jane@x.com","password":"s3cret"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", login.Code, login.Body.String())
	}
	var body struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := json.NewDecoder(login.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Login successful" || body.Token != "dummy-token" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	first := doJSON(t, app, http.MethodPost, "/api/auth/register", `{"email":"jane@x.com","password":"s3cret"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first register: got %d", first.Code)
	}

	second := doJSON(t, app, http.MethodPost, "/api/auth/register", `{"email":"JANE@x.com","password":"other"}`)
	if second.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", second.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(second.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "User already exists" {
		t.Fatalf("unexpected error %q", body.Error)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	reg := doJSON(t, app, http.MethodPost, "/api/auth/register", `{"email":"jane@x.com","password":"s3cret"}`)
	if reg.Code != http.StatusCreated {
		t.Fatalf("register: got %d", reg.Code)
	}

	wrongPassword := doJSON(t, app, http.MethodPost, "/api/auth/login", `{"email":"jane@x.com","password":"nope"}`)
	if wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", wrongPassword.Code)
	}

	unknownEmail := doJSON(t, app, http.MethodPost, "/api/auth/login", `{"email":"ghost@x.com","password":"s3cret"}`)
	if unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401, got %d", unknownEmail.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(unknownEmail.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Unknown email and wrong password answer identically.
	if body.Error != "Invalid email or password" {
		t.Fatalf("unexpected error %q", body.Error)
	}
}

func TestRegisterRequiresCredentials(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", `{"email":"jane@x.com"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
