package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"perkhub/internal/models"

	"github.com/labstack/echo/v4"
)

type stubVerifier struct {
	user *models.UserFromAuth
	err  error
}

func (v *stubVerifier) Validate(token string) (*models.UserFromAuth, error) {
	return v.user, v.err
}

func runAuthn(t *testing.T, verifier *stubVerifier, authorization string) (called bool, gotUser *models.UserFromAuth, rec *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		called = true
		gotUser, _ = c.Request().Context().Value(ctxKeyAuthUser).(*models.UserFromAuth)
		return nil
	}

	if err := Authn(verifier)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	return called, gotUser, rec
}

func TestAuthn_ValidToken(t *testing.T) {
	verifier := &stubVerifier{user: &models.UserFromAuth{ID: 7, Email: "a@example.com"}}

	called, gotUser, _ := runAuthn(t, verifier, "Bearer some-token")

	if !called {
		t.Fatal("next handler not called")
	}
	if gotUser == nil || gotUser.ID != 7 {
		t.Errorf("context user = %+v, want ID 7", gotUser)
	}
}

func TestAuthn_MissingHeaderPassesThrough(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("should not be called")}

	called, gotUser, _ := runAuthn(t, verifier, "")

	if !called {
		t.Fatal("next handler not called")
	}
	if gotUser != nil {
		t.Errorf("context user = %+v, want nil", gotUser)
	}
}

func TestAuthn_InvalidTokenAborts(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("bad signature")}

	called, _, _ := runAuthn(t, verifier, "Bearer expired-token")

	if called {
		t.Fatal("next handler called for invalid token")
	}
}

func TestAuthn_MalformedHeaderPassesThrough(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("should not be called")}

	called, gotUser, _ := runAuthn(t, verifier, "Basic dXNlcjpwYXNz")

	if !called {
		t.Fatal("next handler not called")
	}
	if gotUser != nil {
		t.Errorf("context user = %+v, want nil", gotUser)
	}
}

func TestAuthnAdmin(t *testing.T) {
	tests := []struct {
		name       string
		adminKey   string
		header     string
		wantCalled bool
	}{
		{name: "matching key", adminKey: "s3cret", header: "s3cret", wantCalled: true},
		{name: "wrong key", adminKey: "s3cret", header: "guess", wantCalled: false},
		{name: "missing header", adminKey: "s3cret", header: "", wantCalled: false},
		{name: "unconfigured key never passes", adminKey: "", header: "", wantCalled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("X-Api-Key", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			next := func(c echo.Context) error {
				called = true
				return nil
			}

			if err := AuthnAdmin(tt.adminKey)(next)(c); err != nil {
				t.Fatalf("middleware returned error: %v", err)
			}

			if called != tt.wantCalled {
				t.Errorf("next called = %v, want %v", called, tt.wantCalled)
			}
		})
	}
}
