package matchevent

import "context"

type Repository interface {
	// ListRecent returns the newest events first.
	ListRecent(ctx context.Context, limit int) ([]Event, error)
	DeleteAll(ctx context.Context) error
	Insert(ctx context.Context, item Event) error
}
