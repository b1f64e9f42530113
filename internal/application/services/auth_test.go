package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"content-manager-api/internal/domain/user"
	"content-manager-api/internal/infrastructure/jwt"
)

type FakeUserRepo struct {
	FetchByEmailFunc      func(ctx context.Context, email string) (*user.User, error)
	CreateFunc            func(ctx context.Context, u user.User) (*user.User, error)
	SetResetTokenFunc     func(ctx context.Context, id user.UUID, tokenHash string, expires time.Time) error
	FetchByResetTokenFunc func(ctx context.Context, tokenHash string) (*user.User, error)
	ClearResetTokenFunc   func(ctx context.Context, id user.UUID) error
	UpdatePasswordFunc    func(ctx context.Context, id user.UUID, passwordHash string) error
}

func (f *FakeUserRepo) FetchByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.FetchByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByEmailFunc(ctx, email)
}
func (f *FakeUserRepo) Create(ctx context.Context, u user.User) (*user.User, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, u)
}
func (f *FakeUserRepo) SetResetToken(ctx context.Context, id user.UUID, tokenHash string, expires time.Time) error {
	if f.SetResetTokenFunc == nil {
		return errors.New("not used")
	}
	return f.SetResetTokenFunc(ctx, id, tokenHash, expires)
}
func (f *FakeUserRepo) FetchByResetToken(ctx context.Context, tokenHash string) (*user.User, error) {
	if f.FetchByResetTokenFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByResetTokenFunc(ctx, tokenHash)
}
func (f *FakeUserRepo) ClearResetToken(ctx context.Context, id user.UUID) error {
	if f.ClearResetTokenFunc == nil {
		return errors.New("not used")
	}
	return f.ClearResetTokenFunc(ctx, id)
}
func (f *FakeUserRepo) UpdatePassword(ctx context.Context, id user.UUID, passwordHash string) error {
	if f.UpdatePasswordFunc == nil {
		return errors.New("not used")
	}
	return f.UpdatePasswordFunc(ctx, id, passwordHash)
}

type FakeMailer struct {
	SendFunc func(ctx context.Context, to, subject, body string) error
}

func (f *FakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if f.SendFunc == nil {
		return errors.New("not used")
	}
	return f.SendFunc(ctx, to, subject, body)
}

func newAuthService(repo user.Repository, mailer *FakeMailer) *AuthService {
	return NewAuthService(
		repo, jwt.New("test-secret"), mailer, zap.NewNop(),
		time.Hour, "http://localhost:5000",
	).(*AuthService)
}

func storedUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &user.User{
		UUID:         uuid.New(),
		Name:         "Jane",
		Email:        "jane@example.org",
		PasswordHash: string(hash),
		Role:         user.RoleUser,
	}
}

func TestLogin(t *testing.T) {
	u := storedUser(t, "correct-horse")
	repo := &FakeUserRepo{
		FetchByEmailFunc: func(_ context.Context, email string) (*user.User, error) {
			if email == u.Email {
				return u, nil
			}
			return nil, nil
		},
	}
	s := newAuthService(repo, &FakeMailer{})

	token, err := s.Login(context.Background(), "jane@example.org", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = s.Login(context.Background(), "jane@example.org", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(context.Background(), "nobody@example.org", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := &FakeUserRepo{
		CreateFunc: func(_ context.Context, u user.User) (*user.User, error) {
			assert.NotEqual(t, "plain-password", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("plain-password")))
			assert.Equal(t, user.RoleUser, u.Role)
			u.UUID = uuid.New()
			return &u, nil
		},
	}
	s := newAuthService(repo, &FakeMailer{})

	token, err := s.Register(context.Background(), "Jane", "jane@example.org", "plain-password")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestForgotPassword_StoresHashMailsToken(t *testing.T) {
	u := storedUser(t, "x")
	var storedHash string
	var mailedBody string

	repo := &FakeUserRepo{
		FetchByEmailFunc: func(context.Context, string) (*user.User, error) { return u, nil },
		SetResetTokenFunc: func(_ context.Context, id user.UUID, tokenHash string, expires time.Time) error {
			assert.Equal(t, u.UUID, id)
			assert.WithinDuration(t, time.Now().Add(15*time.Minute), expires, time.Minute)
			storedHash = tokenHash
			return nil
		},
	}
	mailer := &FakeMailer{
		SendFunc: func(_ context.Context, to, _, body string) error {
			assert.Equal(t, u.Email, to)
			mailedBody = body
			return nil
		},
	}
	s := newAuthService(repo, mailer)

	require.NoError(t, s.ForgotPassword(context.Background(), u.Email))

	// the mail carries the raw token, the database only its hash
	m := regexp.MustCompile(`/reset-password/([0-9a-f]{64})`).FindStringSubmatch(mailedBody)
	require.Len(t, m, 2)
	sum := sha256.Sum256([]byte(m[1]))
	assert.Equal(t, hex.EncodeToString(sum[:]), storedHash)
	assert.NotContains(t, storedHash, m[1])
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	repo := &FakeUserRepo{
		FetchByEmailFunc: func(context.Context, string) (*user.User, error) { return nil, nil },
	}
	mailer := &FakeMailer{
		SendFunc: func(context.Context, string, string, string) error {
			t.Fatal("no mail for unknown accounts")
			return nil
		},
	}
	s := newAuthService(repo, mailer)

	assert.NoError(t, s.ForgotPassword(context.Background(), "nobody@example.org"))
}

func TestForgotPassword_MailFailureClearsToken(t *testing.T) {
	u := storedUser(t, "x")
	cleared := false

	repo := &FakeUserRepo{
		FetchByEmailFunc:  func(context.Context, string) (*user.User, error) { return u, nil },
		SetResetTokenFunc: func(context.Context, user.UUID, string, time.Time) error { return nil },
		ClearResetTokenFunc: func(_ context.Context, id user.UUID) error {
			cleared = true
			assert.Equal(t, u.UUID, id)
			return nil
		},
	}
	mailer := &FakeMailer{
		SendFunc: func(context.Context, string, string, string) error {
			return errors.New("smtp down")
		},
	}
	s := newAuthService(repo, mailer)

	err := s.ForgotPassword(context.Background(), u.Email)
	require.Error(t, err)
	assert.True(t, cleared, "an undeliverable token must be revoked")
}

func TestResetPassword(t *testing.T) {
	u := storedUser(t, "old-password")
	var newHash string

	repo := &FakeUserRepo{
		FetchByResetTokenFunc: func(_ context.Context, tokenHash string) (*user.User, error) {
			sum := sha256.Sum256([]byte("raw-token"))
			if tokenHash == hex.EncodeToString(sum[:]) {
				return u, nil
			}
			return nil, nil
		},
		UpdatePasswordFunc: func(_ context.Context, id user.UUID, passwordHash string) error {
			assert.Equal(t, u.UUID, id)
			newHash = passwordHash
			return nil
		},
	}
	s := newAuthService(repo, &FakeMailer{})

	require.NoError(t, s.ResetPassword(context.Background(), "raw-token", "new-password"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-password")))

	err := s.ResetPassword(context.Background(), "stale-token", "new-password")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
