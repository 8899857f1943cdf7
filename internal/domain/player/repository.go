package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// List returns players ordered by goals descending.
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamAbbreviation string) ([]Player, error)
	// Upsert inserts by name, overwriting goals, assists and team on conflict.
	Upsert(ctx context.Context, item Player) error
}
