package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"responsivas/internal/domain/custody"
)

type CustodyRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCustodyRepository(pool *pgxpool.Pool, log *slog.Logger) *CustodyRepository {
	return &CustodyRepository{
		pool: pool,
		log:  log.With("component", "custody_repository"),
	}
}

const responsivaColumns = `
	id, ciudad, fecha::text, responsable, empresa, tipo_equipo, marca,
	modelo, numero_serie, accesorios, estado, responsable_area,
	archivo_pdf, created_at`

func (r *CustodyRepository) scan(row pgx.Row) (*custody.Responsiva, error) {
	var rec custody.Responsiva
	err := row.Scan(
		&rec.ID, &rec.Ciudad, &rec.Fecha, &rec.Responsable, &rec.Empresa,
		&rec.TipoEquipo, &rec.Marca, &rec.Modelo, &rec.NumeroSerie,
		&rec.Accesorios, &rec.Estado, &rec.ResponsableArea,
		&rec.ArchivoPDF, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *CustodyRepository) Create(ctx context.Context, rec *custody.Responsiva) error {
	const query = `
		INSERT INTO responsivas
			(ciudad, fecha, responsable, empresa, tipo_equipo, marca,
			 modelo, numero_serie, accesorios, estado, responsable_area)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		rec.Ciudad, rec.Fecha, rec.Responsable, rec.Empresa, rec.TipoEquipo,
		rec.Marca, rec.Modelo, rec.NumeroSerie, rec.Accesorios, rec.Estado,
		rec.ResponsableArea,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		r.log.Error("failed to create responsiva", "responsable", rec.Responsable, "error", err)
		return fmt.Errorf("create responsiva: %w", err)
	}
	return nil
}

func (r *CustodyRepository) List(ctx context.Context) ([]custody.Responsiva, error) {
	query := `SELECT` + responsivaColumns + `
		FROM responsivas
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list responsivas", "error", err)
		return nil, fmt.Errorf("list responsivas: %w", err)
	}
	defer rows.Close()

	list := make([]custody.Responsiva, 0)
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan responsiva: %w", err)
		}
		list = append(list, *rec)
	}
	return list, rows.Err()
}

func (r *CustodyRepository) ListBrief(ctx context.Context) ([]custody.Brief, error) {
	const query = `
		SELECT id, responsable, fecha::text
		FROM responsivas
		ORDER BY fecha DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list responsivas", "error", err)
		return nil, fmt.Errorf("list responsivas: %w", err)
	}
	defer rows.Close()

	list := make([]custody.Brief, 0)
	for rows.Next() {
		var b custody.Brief
		if err := rows.Scan(&b.ID, &b.Responsable, &b.Fecha); err != nil {
			return nil, fmt.Errorf("scan responsiva: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Delete reports success whether or not the row existed.
func (r *CustodyRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM responsivas WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		r.log.Error("failed to delete responsiva", "id", id, "error", err)
		return fmt.Errorf("delete responsiva: %w", err)
	}
	return nil
}

func (r *CustodyRepository) SetArchivo(ctx context.Context, id int, filename string) error {
	const query = `UPDATE responsivas SET archivo_pdf = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, filename, id)
	if err != nil {
		r.log.Error("failed to set archivo_pdf", "id", id, "error", err)
		return fmt.Errorf("set archivo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return custody.ErrNotFound
	}
	return nil
}

func (r *CustodyRepository) Stats(ctx context.Context) (custody.Stats, error) {
	const query = `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE archivo_pdf IS NULL)
		FROM responsivas`

	var stats custody.Stats
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Faltantes); err != nil {
		r.log.Error("failed to fetch stats", "error", err)
		return custody.Stats{}, fmt.Errorf("responsiva stats: %w", err)
	}
	return stats, nil
}

func (r *CustodyRepository) MostRecent(ctx context.Context) (*custody.Responsiva, error) {
	query := `SELECT` + responsivaColumns + `
		FROM responsivas
		ORDER BY fecha DESC
		LIMIT 1`

	rec, err := r.scan(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to get most recent responsiva", "error", err)
		return nil, fmt.Errorf("most recent responsiva: %w", err)
	}
	return rec, nil
}
