package match

import "context"

type Repository interface {
	// List returns matches ordered by date ascending.
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	DeleteAll(ctx context.Context) error
	Insert(ctx context.Context, item Match) error
}
