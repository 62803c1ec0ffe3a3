package custody

import "context"

type Repository interface {
	// Create persists a responsiva and fills in the generated id and
	// created_at.
	Create(ctx context.Context, r *Responsiva) error

	// List returns all responsivas ordered by created_at descending.
	List(ctx context.Context) ([]Responsiva, error)

	// ListBrief returns the reduced listing ordered by fecha descending.
	ListBrief(ctx context.Context) ([]Brief, error)

	// Delete removes a responsiva. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int) error

	// SetArchivo records the uploaded document filename for an id.
	SetArchivo(ctx context.Context, id int, filename string) error

	// Stats counts all responsivas and those without a signed document.
	Stats(ctx context.Context) (Stats, error)

	// MostRecent returns the responsiva with the greatest fecha, or nil
	// when the table is empty.
	MostRecent(ctx context.Context) (*Responsiva, error)
}
