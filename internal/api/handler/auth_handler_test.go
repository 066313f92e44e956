package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/userauth/auth-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, name, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, password)
}

func (s *stubAuthService) Login(ctx context.Context, name, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, name, password)
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, password string) (*domain.User, error) {
			if name != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", name, password)
			}
			return &domain.User{ID: "id-1", Name: name}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/cadastro",
		`{"name":"alice","pass":"secret","confpass":"secret"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["msg"] == "" {
		t.Fatalf("expected msg in response")
	}
}

func TestAuthHandler_Register_MissingName(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/cadastro",
		`{"pass":"secret","confpass":"secret"}`)

	_ = h.Register(c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_MissingPassword(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/cadastro", `{"name":"alice"}`)

	_ = h.Register(c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, password string) (*domain.User, error) {
			t.Fatalf("mismatched confirmation must never reach the service")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/cadastro",
		`{"name":"alice","pass":"secret","confpass":"other"}`)

	_ = h.Register(c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/cadastro",
		`{"name":"bob","pass":"secret","confpass":"secret"}`)

	_ = h.Register(c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_StoreFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, password string) (*domain.User, error) {
			return nil, errors.New("mongo: connection reset")
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/cadastro",
		`{"name":"bob","pass":"secret","confpass":"secret"}`)

	// Infrastructure failures propagate to the central handler, which logs
	// the cause and renders an opaque 500.
	if err := h.Register(c); err == nil {
		t.Fatalf("expected error to propagate to the central handler")
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/cadastro", "not-json")

	_ = h.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, name, password string) (string, *domain.User, error) {
			if name != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", name, password)
			}
			return "token123", &domain.User{ID: "id-1", Name: "alice"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/login",
		`{"name":"alice","pass":"secret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, name, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/login",
		`{"name":"ghost","pass":"secret"}`)

	_ = h.Login(c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, name, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidPassword
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/login",
		`{"name":"alice","pass":"bad"}`)

	_ = h.Login(c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, name, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	for _, body := range []string{`{"pass":"secret"}`, `{"name":"alice"}`} {
		c, rec := newJSONContext(t, http.MethodPost, "/login", body)
		_ = h.Login(c)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422, got %d", body, rec.Code)
		}
	}
}
