package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"content-manager-api/internal/application/services"
	"content-manager-api/internal/domain/user"
)

type FakeAuthService struct {
	RegisterFunc       func(ctx context.Context, name, email, password string) (string, error)
	LoginFunc          func(ctx context.Context, email, password string) (string, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, token, password string) error
}

func (f *FakeAuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if f.RegisterFunc == nil {
		return "", errors.New("not used")
	}
	return f.RegisterFunc(ctx, name, email, password)
}
func (f *FakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if f.LoginFunc == nil {
		return "", errors.New("not used")
	}
	return f.LoginFunc(ctx, email, password)
}
func (f *FakeAuthService) ForgotPassword(ctx context.Context, email string) error {
	if f.ForgotPasswordFunc == nil {
		return errors.New("not used")
	}
	return f.ForgotPasswordFunc(ctx, email)
}
func (f *FakeAuthService) ResetPassword(ctx context.Context, token, password string) error {
	if f.ResetPasswordFunc == nil {
		return errors.New("not used")
	}
	return f.ResetPasswordFunc(ctx, token, password)
}

func setupAuthRouter(t *testing.T, svc *FakeAuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewAuthController(r, zap.NewNop(), svc)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(method, path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRegister_Success(t *testing.T) {
	svc := &FakeAuthService{
		RegisterFunc: func(_ context.Context, name, email, _ string) (string, error) {
			assert.Equal(t, "Jane", name)
			assert.Equal(t, "jane@example.org", email)
			return "signed-token", nil
		},
	}
	r := setupAuthRouter(t, svc)

	rr := doJSON(t, r, http.MethodPost, RouteRegister, map[string]string{
		"name": "Jane", "email": "jane@example.org", "password": "long-enough",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	body := decodeBody(t, rr)
	data := body["data"].(map[string]any)
	assert.Equal(t, "signed-token", data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := &FakeAuthService{
		RegisterFunc: func(context.Context, string, string, string) (string, error) {
			return "", user.ErrEmailAlreadyExists
		},
	}
	r := setupAuthRouter(t, svc)

	rr := doJSON(t, r, http.MethodPost, RouteRegister, map[string]string{
		"name": "Jane", "email": "jane@example.org", "password": "long-enough",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegister_Validation(t *testing.T) {
	r := setupAuthRouter(t, &FakeAuthService{})

	rr := doJSON(t, r, http.MethodPost, RouteRegister, map[string]string{
		"name": "J", "email": "bad", "password": "short",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	body := decodeBody(t, rr)
	errs := body["error"].(map[string]any)
	assert.Len(t, errs, 3)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &FakeAuthService{
		LoginFunc: func(context.Context, string, string) (string, error) {
			return "", services.ErrInvalidCredentials
		},
	}
	r := setupAuthRouter(t, svc)

	rr := doJSON(t, r, http.MethodPost, RouteLogin, map[string]string{
		"email": "jane@example.org", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_Success(t *testing.T) {
	svc := &FakeAuthService{
		LoginFunc: func(context.Context, string, string) (string, error) {
			return "signed-token", nil
		},
	}
	r := setupAuthRouter(t, svc)

	rr := doJSON(t, r, http.MethodPost, RouteLogin, map[string]string{
		"email": "jane@example.org", "password": "long-enough",
	})
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestForgotPassword_UniformReply(t *testing.T) {
	for _, known := range []bool{true, false} {
		svc := &FakeAuthService{
			ForgotPasswordFunc: func(context.Context, string) error { return nil },
		}
		r := setupAuthRouter(t, svc)

		email := "jane@example.org"
		if !known {
			email = "nobody@example.org"
		}
		rr := doJSON(t, r, http.MethodPost, RouteForgotPassword, map[string]string{"email": email})
		require.Equal(t, http.StatusOK, rr.Code)

		body := decodeBody(t, rr)
		assert.Equal(t, "if the account exists, a reset link has been sent", body["message"])
	}
}

func TestResetPassword_InvalidToken(t *testing.T) {
	svc := &FakeAuthService{
		ResetPasswordFunc: func(_ context.Context, token, _ string) error {
			assert.Equal(t, "stale-token", token)
			return services.ErrInvalidResetToken
		},
	}
	r := setupAuthRouter(t, svc)

	rr := doJSON(t, r, http.MethodPost, "/api/auth/reset-password/stale-token", map[string]string{
		"password": "new-password-1",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResetPassword_Success(t *testing.T) {
	svc := &FakeAuthService{
		ResetPasswordFunc: func(context.Context, string, string) error { return nil },
	}
	r := setupAuthRouter(t, svc)

	rr := doJSON(t, r, http.MethodPost, "/api/auth/reset-password/good-token", map[string]string{
		"password": "new-password-1",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "password has been reset", body["message"])
}
