package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartsched/smartsched/internal/model"
	"github.com/smartsched/smartsched/internal/repository/base"
)

type ClientRepository struct {
	*base.Repository
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{Repository: base.NewRepository(pool)}
}

// FindByName looks a client up by name, case-insensitively. Returns nil when
// no client matches.
func (r *ClientRepository) FindByName(ctx context.Context, name string) (*model.Client, error) {
	query := `
		SELECT id, name, email, phone, created_at
		FROM clients
		WHERE LOWER(name) = LOWER($1)
	`

	var client model.Client
	err := r.QueryRow(ctx, query, name).Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find client by name: %w", err)
	}

	return &client, nil
}

// Upsert returns the existing client on a name match, otherwise inserts the
// client and assigns its identifier. Calling it twice with the same name
// yields the same identifier, including when two first-time bookings race:
// the insert steps aside on the unique name index and the winner's row is
// re-read.
func (r *ClientRepository) Upsert(ctx context.Context, client *model.Client) (*model.Client, error) {
	existing, err := r.FindByName(ctx, client.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	query := `
		INSERT INTO clients (name, email, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (LOWER(name)) DO NOTHING
		RETURNING id, created_at
	`

	err = r.QueryRow(ctx, query, client.Name, client.Email, client.Phone).
		Scan(&client.ID, &client.CreatedAt)
	if base.IsNotFound(err) {
		// A concurrent Upsert inserted the row between the lookup and the
		// insert; use its row.
		existing, err = r.FindByName(ctx, client.Name)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("upsert client %q: concurrent insert vanished", client.Name)
		}
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	return client, nil
}
