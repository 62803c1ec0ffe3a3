package credential

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

// Cipher seals plaintext secrets into storable envelopes and opens them
// back. Satisfied by crypto.Cipher.
type Cipher interface {
	Seal(plaintext string) (string, error)
	Open(envelope string) (string, error)
}

type Servicer interface {
	Create(ctx context.Context, categoria, servicio, secret, descripcion string) (*Credential, error)
	List(ctx context.Context) ([]Credential, error)
	Get(ctx context.Context, id int) (*Credential, error)
	Reveal(ctx context.Context, id int) (string, error)
	Update(ctx context.Context, id int, categoria, servicio, secret, descripcion string) (*Credential, error)
	Delete(ctx context.Context, id int) error
	MostRecent(ctx context.Context) (*Credential, error)
}

type Service struct {
	repo   Repository
	cipher Cipher
	log    *slog.Logger
}

func NewService(repo Repository, cipher Cipher, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cipher: cipher,
		log:    log.With("component", "credential_service"),
	}
}

// Create seals the secret exactly once and persists the envelope. The
// servicio field is always required; the secret only on creation.
func (s *Service) Create(ctx context.Context, categoria, servicio, secret, descripcion string) (*Credential, error) {
	if servicio == "" {
		return nil, fmt.Errorf("%w: servicio_o_usuario is required", ErrInvalidInput)
	}
	if secret == "" {
		return nil, fmt.Errorf("%w: contrasena is required", ErrInvalidInput)
	}

	envelope, err := s.cipher.Seal(secret)
	if err != nil {
		s.log.Error("failed to seal secret", "error", err)
		return nil, fmt.Errorf("seal secret: %w", err)
	}

	c := &Credential{
		Categoria:   categoria,
		Servicio:    servicio,
		Descripcion: descripcion,
	}
	if err := s.repo.Create(ctx, c, envelope); err != nil {
		s.log.Error("failed to create credential", "servicio", servicio, "error", err)
		return nil, fmt.Errorf("create credential: %w", err)
	}

	return c, nil
}

func (s *Service) List(ctx context.Context) ([]Credential, error) {
	creds, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list credentials", "error", err)
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	return creds, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Credential, error) {
	return s.repo.Get(ctx, id)
}

// Reveal fetches the stored envelope and opens it. A credential whose
// envelope cannot be opened surfaces ErrDecrypt, never a partial value.
func (s *Service) Reveal(ctx context.Context, id int) (string, error) {
	envelope, err := s.repo.GetEnvelope(ctx, id)
	if err != nil {
		return "", err
	}

	plaintext, err := s.cipher.Open(envelope)
	if err != nil {
		s.log.Error("failed to open envelope", "id", id, "error", err)
		return "", ErrDecrypt
	}

	return plaintext, nil
}

// Update overwrites the non-secret fields. A non-empty secret is
// resealed and replaces the stored envelope; an empty secret leaves the
// existing envelope untouched.
func (s *Service) Update(ctx context.Context, id int, categoria, servicio, secret, descripcion string) (*Credential, error) {
	if servicio == "" {
		return nil, fmt.Errorf("%w: servicio_o_usuario is required", ErrInvalidInput)
	}

	c := &Credential{
		ID:          id,
		Categoria:   categoria,
		Servicio:    servicio,
		Descripcion: descripcion,
	}

	if secret == "" {
		if err := s.repo.Update(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}

	envelope, err := s.cipher.Seal(secret)
	if err != nil {
		s.log.Error("failed to seal secret", "id", id, "error", err)
		return nil, fmt.Errorf("seal secret: %w", err)
	}
	if err := s.repo.UpdateWithEnvelope(ctx, c, envelope); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete is best-effort: removing an id that does not exist reports
// success, matching the original deletion policy.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete credential", "id", id, "error", err)
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

// MostRecent returns the latest created credential, or nil when the
// store is empty.
func (s *Service) MostRecent(ctx context.Context) (*Credential, error) {
	c, err := s.repo.MostRecent(ctx)
	if err != nil {
		s.log.Error("failed to fetch most recent credential", "error", err)
		return nil, fmt.Errorf("most recent credential: %w", err)
	}
	return c, nil
}
