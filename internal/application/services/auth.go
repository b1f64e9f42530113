package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"content-manager-api/internal/application/ports"
	"content-manager-api/internal/domain/user"
	"content-manager-api/internal/infrastructure/jwt"
)

const resetTokenTTL = 15 * time.Minute

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
	ErrInvalidResetToken     = errors.New("invalid or expired reset token")
)

type AuthService struct {
	userRepo   user.Repository
	jwtService *jwt.Service
	mailer     ports.Mailer
	log        *zap.Logger
	tokenTTL   time.Duration
	baseURL    string
}

func NewAuthService(
	userRepo user.Repository,
	jwtService *jwt.Service,
	mailer ports.Mailer,
	logger *zap.Logger,
	tokenTTL time.Duration,
	baseURL string,
) ports.AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		mailer:     mailer,
		log:        logger,
		tokenTTL:   tokenTTL,
		baseURL:    baseURL,
	}
}

func (as *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	u, err := as.userRepo.Create(ctx, user.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.RoleUser,
	})
	if err != nil {
		return "", err
	}

	token, err := as.jwtService.GenerateJWT(u.UUID.String(), u.Role, as.tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

func (as *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := as.userRepo.FetchByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(u.UUID.String(), u.Role, as.tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

// ForgotPassword issues a single-use reset token valid for fifteen minutes.
// Unknown addresses return success, the response never reveals whether an
// account exists.
func (as *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := as.userRepo.FetchByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}

	raw := make([]byte, 32)
	if _, err = rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)

	// only the hash touches the database
	sum := sha256.Sum256([]byte(token))
	expires := time.Now().Add(resetTokenTTL)

	if err = as.userRepo.SetResetToken(ctx, u.UUID, hex.EncodeToString(sum[:]), expires); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"You requested a password reset.\n\n%s/reset-password/%s\n\nThe link expires in 15 minutes. If you did not request this, ignore this mail.\n",
		as.baseURL, token,
	)
	if err = as.mailer.Send(ctx, u.Email, "Password reset", body); err != nil {
		// token would be undeliverable, take it back
		if clearErr := as.userRepo.ClearResetToken(ctx, u.UUID); clearErr != nil {
			as.log.Error("reset token cleanup failed", zap.Error(clearErr))
		}
		return err
	}

	return nil
}

func (as *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	sum := sha256.Sum256([]byte(token))

	u, err := as.userRepo.FetchByResetToken(ctx, hex.EncodeToString(sum[:]))
	if err != nil {
		return err
	}
	if u == nil {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return as.userRepo.UpdatePassword(ctx, u.UUID, string(hash))
}
