package credential

import "context"

type Repository interface {
	// Create persists a credential with its sealed envelope and fills
	// in the generated id and created_at.
	Create(ctx context.Context, c *Credential, envelope string) error

	// List returns all credentials ordered by categoria, then servicio.
	List(ctx context.Context) ([]Credential, error)

	Get(ctx context.Context, id int) (*Credential, error)

	// GetEnvelope returns the stored envelope for one credential.
	GetEnvelope(ctx context.Context, id int) (string, error)

	// Update overwrites the non-secret fields; envelope is untouched.
	Update(ctx context.Context, c *Credential) error

	// UpdateWithEnvelope overwrites all fields including the envelope.
	UpdateWithEnvelope(ctx context.Context, c *Credential, envelope string) error

	// Delete removes a credential. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int) error

	// MostRecent returns the credential with the greatest created_at,
	// or nil when the table is empty.
	MostRecent(ctx context.Context) (*Credential, error)
}
