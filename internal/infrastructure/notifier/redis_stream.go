package notifier

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/nhl-sheet-sync/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const DefaultSyncStream = "sheets.sync.completed"

type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStreamPublisher appends one entry per completed sheet sync to a Redis stream.
type RedisStreamPublisher struct {
	client streamAdder
	closer func() error
	stream string
	maxLen int64
}

type syncCompletedMessage struct {
	SheetID   string          `json:"sheet_id"`
	SheetName string          `json:"sheet_name"`
	SyncedAt  time.Time       `json:"synced_at"`
	Imported  importedPayload `json:"imported"`
}

type importedPayload struct {
	Events  int `json:"events"`
	Players int `json:"players"`
	Teams   int `json:"teams"`
	Matches int `json:"matches"`
}

// NewRedisStreamPublisher connects to redisURL and pings it before returning.
func NewRedisStreamPublisher(ctx context.Context, redisURL, stream string, maxLen int64) (*RedisStreamPublisher, error) {
	opt, err := redis.ParseURL(strings.TrimSpace(redisURL))
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	p := newRedisStreamPublisher(client, stream, maxLen)
	p.closer = client.Close
	return p, nil
}

func newRedisStreamPublisher(client streamAdder, stream string, maxLen int64) *RedisStreamPublisher {
	stream = strings.TrimSpace(stream)
	if stream == "" {
		stream = DefaultSyncStream
	}
	return &RedisStreamPublisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
	}
}

func (p *RedisStreamPublisher) OnSheetSynced(ctx context.Context, event usecase.SyncEvent) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	msg := syncCompletedMessage{
		SheetID:   event.SheetID,
		SheetName: event.SheetName,
		SyncedAt:  event.SyncedAt.UTC(),
		Imported: importedPayload{
			Events:  event.Imported.Events,
			Players: event.Imported.Players,
			Teams:   event.Imported.Teams,
			Matches: event.Imported.Matches,
		},
	}
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(msg); err != nil {
		return fmt.Errorf("encode sync message: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"data":      string(bytes.TrimSpace(buf.B)),
			"sheet_id":  event.SheetID,
			"timestamp": event.SyncedAt.Unix(),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}

func (p *RedisStreamPublisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}
