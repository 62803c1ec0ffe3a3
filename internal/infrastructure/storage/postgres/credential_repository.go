package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"responsivas/internal/domain/credential"
)

type CredentialRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCredentialRepository(pool *pgxpool.Pool, log *slog.Logger) *CredentialRepository {
	return &CredentialRepository{
		pool: pool,
		log:  log.With("component", "credential_repository"),
	}
}

func (r *CredentialRepository) Create(ctx context.Context, c *credential.Credential, envelope string) error {
	const query = `
		INSERT INTO contrasenas (categoria, servicio_o_usuario, contrasena_cifrada, descripcion)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		c.Categoria, c.Servicio, envelope, c.Descripcion,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		r.log.Error("failed to create credential", "servicio", c.Servicio, "error", err)
		return fmt.Errorf("create credential: %w", err)
	}
	return nil
}

// List never selects the envelope column.
func (r *CredentialRepository) List(ctx context.Context) ([]credential.Credential, error) {
	const query = `
		SELECT id, categoria, servicio_o_usuario, descripcion, created_at
		FROM contrasenas
		ORDER BY categoria, servicio_o_usuario`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list credentials", "error", err)
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	creds := make([]credential.Credential, 0)
	for rows.Next() {
		var c credential.Credential
		if err := rows.Scan(&c.ID, &c.Categoria, &c.Servicio, &c.Descripcion, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}
		creds = append(creds, c)
	}
	return creds, rows.Err()
}

func (r *CredentialRepository) Get(ctx context.Context, id int) (*credential.Credential, error) {
	const query = `
		SELECT id, categoria, servicio_o_usuario, descripcion, created_at
		FROM contrasenas
		WHERE id = $1`

	var c credential.Credential
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Categoria, &c.Servicio, &c.Descripcion, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, credential.ErrNotFound
		}
		r.log.Error("failed to get credential", "id", id, "error", err)
		return nil, fmt.Errorf("get credential: %w", err)
	}
	return &c, nil
}

func (r *CredentialRepository) GetEnvelope(ctx context.Context, id int) (string, error) {
	const query = `SELECT contrasena_cifrada FROM contrasenas WHERE id = $1`

	var envelope string
	err := r.pool.QueryRow(ctx, query, id).Scan(&envelope)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", credential.ErrNotFound
		}
		r.log.Error("failed to get envelope", "id", id, "error", err)
		return "", fmt.Errorf("get envelope: %w", err)
	}
	return envelope, nil
}

func (r *CredentialRepository) Update(ctx context.Context, c *credential.Credential) error {
	const query = `
		UPDATE contrasenas
		SET categoria = $1, servicio_o_usuario = $2, descripcion = $3
		WHERE id = $4
		RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, c.Categoria, c.Servicio, c.Descripcion, c.ID).Scan(&c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.ErrNotFound
		}
		r.log.Error("failed to update credential", "id", c.ID, "error", err)
		return fmt.Errorf("update credential: %w", err)
	}
	return nil
}

func (r *CredentialRepository) UpdateWithEnvelope(ctx context.Context, c *credential.Credential, envelope string) error {
	const query = `
		UPDATE contrasenas
		SET categoria = $1, servicio_o_usuario = $2, contrasena_cifrada = $3, descripcion = $4
		WHERE id = $5
		RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, c.Categoria, c.Servicio, envelope, c.Descripcion, c.ID).Scan(&c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.ErrNotFound
		}
		r.log.Error("failed to update credential", "id", c.ID, "error", err)
		return fmt.Errorf("update credential: %w", err)
	}
	return nil
}

// Delete reports success whether or not the row existed.
func (r *CredentialRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM contrasenas WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		r.log.Error("failed to delete credential", "id", id, "error", err)
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

func (r *CredentialRepository) MostRecent(ctx context.Context) (*credential.Credential, error) {
	const query = `
		SELECT id, categoria, servicio_o_usuario, descripcion, created_at
		FROM contrasenas
		ORDER BY created_at DESC
		LIMIT 1`

	var c credential.Credential
	err := r.pool.QueryRow(ctx, query).Scan(&c.ID, &c.Categoria, &c.Servicio, &c.Descripcion, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to get most recent credential", "error", err)
		return nil, fmt.Errorf("most recent credential: %w", err)
	}
	return &c, nil
}
