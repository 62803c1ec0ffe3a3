package custody

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, r *Responsiva) (*Responsiva, error)
	List(ctx context.Context) ([]Responsiva, error)
	ListBrief(ctx context.Context) ([]Brief, error)
	Delete(ctx context.Context, id int) error
	AttachFile(ctx context.Context, id int, filename string) error
	Stats(ctx context.Context) (Stats, error)
	MostRecent(ctx context.Context) (*Responsiva, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "custody_service"),
	}
}

// Create persists a new responsiva. Fields are free-form: the paper
// form this mirrors imposes no structure beyond what the caller sends.
func (s *Service) Create(ctx context.Context, r *Responsiva) (*Responsiva, error) {
	if err := s.repo.Create(ctx, r); err != nil {
		s.log.Error("failed to create responsiva", "responsable", r.Responsable, "error", err)
		return nil, fmt.Errorf("create responsiva: %w", err)
	}
	return r, nil
}

func (s *Service) List(ctx context.Context) ([]Responsiva, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list responsivas", "error", err)
		return nil, fmt.Errorf("list responsivas: %w", err)
	}
	return list, nil
}

func (s *Service) ListBrief(ctx context.Context) ([]Brief, error) {
	list, err := s.repo.ListBrief(ctx)
	if err != nil {
		s.log.Error("failed to list responsivas", "error", err)
		return nil, fmt.Errorf("list responsivas: %w", err)
	}
	return list, nil
}

// Delete is best-effort: an id with no matching row still reports
// success.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete responsiva", "id", id, "error", err)
		return fmt.Errorf("delete responsiva: %w", err)
	}
	return nil
}

// AttachFile records the stored filename of the signed document.
func (s *Service) AttachFile(ctx context.Context, id int, filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}
	if err := s.repo.SetArchivo(ctx, id, filename); err != nil {
		s.log.Error("failed to attach file", "id", id, "filename", filename, "error", err)
		return fmt.Errorf("attach file: %w", err)
	}
	return nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		s.log.Error("failed to fetch stats", "error", err)
		return Stats{}, fmt.Errorf("responsiva stats: %w", err)
	}
	return stats, nil
}

func (s *Service) MostRecent(ctx context.Context) (*Responsiva, error) {
	r, err := s.repo.MostRecent(ctx)
	if err != nil {
		s.log.Error("failed to fetch most recent responsiva", "error", err)
		return nil, fmt.Errorf("most recent responsiva: %w", err)
	}
	return r, nil
}
