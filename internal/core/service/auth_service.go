package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sonnasweet/ordering-system/internal/core/domain"
	"github.com/sonnasweet/ordering-system/internal/core/ports"
)

// AuthService implements registration and login against the hosted identity
// service, with a self-issued token path as the server-side fallback.
type AuthService struct {
	users     ports.UserRepository
	identity  ports.IdentityProvider
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, identity ports.IdentityProvider, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		identity:  identity,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Register creates a hosted account and the matching profile row. Both must
// share the subject id the identity service assigns.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	subjectID, err := s.identity.CreateUser(ctx, ports.AccountInput{
		Email:     email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      domain.RoleCustomer,
	})
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           subjectID,
		Email:        email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         domain.RoleCustomer,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		// Profile insert failed after the hosted account was created; remove
		// the account so no ghost identity is left behind.
		if delErr := s.identity.DeleteUser(ctx, subjectID); delErr != nil {
			s.log.Error().Err(delErr).Str("subject_id", subjectID).Msg("failed to roll back auth account after profile insert failure")
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates against the hosted service first; when the hosted
// grant rejects the credentials it falls back to the stored local hash and
// mints a self-issued token. The returned token is whichever scheme
// succeeded, and the auth middleware accepts both.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	token, _, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			return "", nil, err
		}
		// Hosted grant rejected; try the local credential.
		if user.PasswordHash == "" ||
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return "", nil, domain.ErrInvalidCredentials
		}
		token, err = s.MintToken(user)
		if err != nil {
			return "", nil, err
		}
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record last login")
	}
	return token, user, nil
}

// MintToken issues a self-signed HS256 token carrying the subject id.
func (s *AuthService) MintToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
