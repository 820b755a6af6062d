package repository

import (
	"context"
	"time"

	"marome-markets/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/trace"
)

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS sentiment_snapshots (
    id             BIGSERIAL   PRIMARY KEY,
    class          TEXT        NOT NULL,
    score          INT         NOT NULL,
    bucket         TEXT        NOT NULL,
    positive_count INT         NOT NULL,
    total_count    INT         NOT NULL,
    narrative      TEXT        NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_sentiment_snapshots_class_time
    ON sentiment_snapshots (class, created_at DESC);

CREATE TABLE IF NOT EXISTS conversation_messages (
    id         BIGSERIAL   PRIMARY KEY,
    session_id TEXT        NOT NULL,
    role       TEXT        NOT NULL,
    content    TEXT        NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_conversation_messages_session_time
    ON conversation_messages (session_id, created_at DESC);
`

type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SnapshotRepository persists per-class sentiment snapshots so the
// history endpoints can chart scores over time.
type SnapshotRepository struct {
	pool   PgxPool
	tracer trace.Tracer
}

func NewSnapshotRepository(pool PgxPool, tracer trace.Tracer) *SnapshotRepository {
	return &SnapshotRepository{pool: pool, tracer: tracer}
}

func (r *SnapshotRepository) RunMigrations(ctx context.Context) error {
	_, span := r.tracer.Start(ctx, "snapshot-repo.run-migrations")
	defer span.End()

	_, err := r.pool.Exec(ctx, createSnapshotsTable)
	return err
}

func (r *SnapshotRepository) SaveSnapshots(ctx context.Context, snapshots []*domain.SentimentSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	_, span := r.tracer.Start(ctx, "snapshot-repo.save-snapshots")
	defer span.End()

	batch := &pgx.Batch{}
	for _, s := range snapshots {
		batch.Queue(
			`INSERT INTO sentiment_snapshots (class, score, bucket, positive_count, total_count, narrative)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			s.Class, s.Score, s.Bucket, s.PositiveCount, s.TotalCount, s.Narrative,
		)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range snapshots {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *SnapshotRepository) History(ctx context.Context, class string, limit int) ([]*domain.SentimentSnapshot, error) {
	_, span := r.tracer.Start(ctx, "snapshot-repo.history")
	defer span.End()

	rows, err := r.pool.Query(ctx,
		`SELECT id, class, score, bucket, positive_count, total_count, narrative, created_at
		 FROM sentiment_snapshots
		 WHERE class = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		class, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*domain.SentimentSnapshot
	for rows.Next() {
		s := &domain.SentimentSnapshot{}
		var ts time.Time
		if err := rows.Scan(&s.ID, &s.Class, &s.Score, &s.Bucket, &s.PositiveCount, &s.TotalCount, &s.Narrative, &ts); err != nil {
			return nil, err
		}
		s.CreatedAt = ts.UTC()
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

func (r *SnapshotRepository) Latest(ctx context.Context, class string) (*domain.SentimentSnapshot, error) {
	snapshots, err := r.History(ctx, class, 1)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	return snapshots[0], nil
}
