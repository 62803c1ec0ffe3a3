package admin

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// ErrInvalidAuth covers every login failure. Unknown identity and wrong
// password are deliberately indistinguishable to the caller.
var ErrInvalidAuth = errors.New("invalid credentials")

type Servicer interface {
	Authenticate(username, password string) error
}

// Service validates logins against the single configured administrator
// account. There is no user table: the identity and the bcrypt hash of
// its password come from operational configuration.
type Service struct {
	username     string
	passwordHash string
	log          *slog.Logger
}

func NewService(username, passwordHash string, log *slog.Logger) *Service {
	return &Service{
		username:     username,
		passwordHash: passwordHash,
		log:          log.With("component", "admin_service"),
	}
}

func (s *Service) Authenticate(username, password string) error {
	if username != s.username {
		s.log.Debug("login attempt for unknown identity", "username", username)
		return ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		s.log.Debug("password mismatch", "username", username)
		return ErrInvalidAuth
	}

	return nil
}
