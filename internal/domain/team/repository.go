package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	// Upsert inserts by abbreviation. An existing row keeps every column except name.
	Upsert(ctx context.Context, item Team) error
}
