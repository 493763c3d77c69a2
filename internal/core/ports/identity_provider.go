package ports

import "context"

// AccountInput carries the fields for privileged account creation on the
// hosted identity service.
type AccountInput struct {
	Email          string
	Password       string
	EmailConfirmed bool
	FirstName      string
	LastName       string
	Role           string
}

// IdentityProvider is the hosted identity service (session verification and
// privileged account management).
type IdentityProvider interface {
	// VerifyToken checks an access token against the hosted service and
	// returns the subject id it belongs to. Returns domain.ErrInvalidSession
	// when the service rejects the token.
	VerifyToken(ctx context.Context, accessToken string) (string, error)

	// SignIn exchanges email/password for a hosted session token and the
	// subject id. Returns domain.ErrInvalidCredentials on rejection.
	SignIn(ctx context.Context, email, password string) (token string, subjectID string, err error)

	// CreateUser provisions an account through the privileged admin API and
	// returns the new subject id.
	CreateUser(ctx context.Context, in AccountInput) (string, error)

	// DeleteUser removes an account by subject id.
	DeleteUser(ctx context.Context, subjectID string) error
}
