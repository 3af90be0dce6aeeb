package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gameshelf/internal/auth"
	"gameshelf/internal/config"
	"gameshelf/internal/models"
	"gameshelf/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// dummyHash keeps login timing flat when the email is unknown.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e"

// TokenClaims is the wire payload of a session token: the user id under the
// "id" claim plus the registered set (jti, iat, exp).
type TokenClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, name, email, password, passwordConfirm string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	VerifyToken(ctx context.Context, tokenString string) (*TokenClaims, error)
	Logout(ctx context.Context, claims *TokenClaims) error
	GetUser(ctx context.Context, id string) (*models.User, error)
}

type authService struct {
	userRepo  repository.UserRepository
	denylist  repository.TokenDenylist // nil when redis is not configured
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, denylist repository.TokenDenylist, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		denylist:  denylist,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiry,
	}
}

// Register creates a user with a bcrypt-hashed password and issues a token.
func (s *authService) Register(ctx context.Context, name, email, password, passwordConfirm string) (*models.User, string, error) {
	if password != passwordConfirm {
		return nil, "", newValidationError("passwords do not match")
	}

	email = normalizeEmail(email)

	// Pre-insert check for the friendly message; the unique index on email
	// still catches concurrent registrations.
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, "", ErrEmailInUse
		}
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates by email and password and issues a token.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		// Dummy compare so an unknown email takes as long as a wrong password.
		auth.VerifyPassword(dummyHash, password)
		return nil, "", ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// VerifyToken parses and verifies a token and returns its claims. Missing,
// malformed, expired, mis-signed and revoked tokens all collapse into
// ErrInvalidToken; callers never learn which.
func (s *authService) VerifyToken(ctx context.Context, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if s.denylist != nil {
		revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrInvalidToken
		}
	}

	return claims, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
// Without a denylist this is the stateless acknowledgment the API documents.
func (s *authService) Logout(ctx context.Context, claims *TokenClaims) error {
	if s.denylist == nil || claims.ExpiresAt == nil {
		return nil
	}
	return s.denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

// GetUser resolves a user id to its live record.
func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
