package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

// Store writes uploaded signed documents to a local directory. Only the
// generated filename travels back to the database; serving the files is
// left to the HTTP layer.
type Store struct {
	dir string
	log *slog.Logger

	// now is swappable in tests to pin generated names.
	now func() time.Time
}

func NewStore(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Store{
		dir: dir,
		log: log.With("component", "file_store"),
		now: time.Now,
	}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

const maxNameAttempts = 10

// Save stores the uploaded content under a generated name of the form
// responsiva_<unix-millis><ext>, where ext is taken from the original
// filename. Two saves in the same millisecond get a numbered suffix
// instead of clobbering each other. Returns the generated name.
func (s *Store) Save(originalName string, content io.Reader) (string, error) {
	ext := sanitizeExt(originalName)
	millis := s.now().UnixMilli()

	var (
		name string
		dst  *os.File
	)
	for attempt := 0; ; attempt++ {
		name = fmt.Sprintf("responsiva_%d%s", millis, ext)
		if attempt > 0 {
			name = fmt.Sprintf("responsiva_%d_%d%s", millis, attempt, ext)
		}

		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			dst = f
			break
		}
		if errors.Is(err, os.ErrExist) && attempt < maxNameAttempts {
			continue
		}
		s.log.Error("failed to create upload file", "name", name, "error", err)
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		s.log.Error("failed to write upload file", "name", name, "error", err)
		return "", fmt.Errorf("write file: %w", err)
	}

	return name, nil
}

// sanitizeExt keeps only a plain extension from the client-supplied
// filename; anything with path separators or oddities is dropped.
func sanitizeExt(name string) string {
	ext := filepath.Ext(filepath.Base(name))
	if strings.ContainsAny(ext, "/\\") || len(ext) > 10 {
		return ""
	}
	return ext
}
