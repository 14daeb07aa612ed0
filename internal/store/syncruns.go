package store

import "context"

const insertSyncRun = `-- name: InsertSyncRun :one
INSERT INTO sync_runs (id, status, stats)
VALUES ($1, $2, COALESCE($3, '{}'::jsonb))
RETURNING id, status, stats, started_at, completed_at, last_error
`

type InsertSyncRunParams struct {
	ID     string
	Status string
	Stats  map[string]any
}

func (q *Queries) InsertSyncRun(ctx context.Context, arg InsertSyncRunParams) (SyncRun, error) {
	row := q.db.QueryRow(ctx, insertSyncRun, arg.ID, arg.Status, arg.Stats)
	var i SyncRun
	err := row.Scan(&i.ID, &i.Status, &i.Stats, &i.StartedAt, &i.CompletedAt, &i.LastError)
	return i, err
}

const updateSyncRun = `-- name: UpdateSyncRun :one
UPDATE sync_runs
SET status = $2,
    stats = COALESCE($3, stats),
    completed_at = CASE WHEN $2 IN ('completed', 'failed') THEN now() ELSE completed_at END,
    last_error = $4
WHERE id = $1
RETURNING id, status, stats, started_at, completed_at, last_error
`

type UpdateSyncRunParams struct {
	ID        string
	Status    string
	Stats     map[string]any
	LastError *string
}

func (q *Queries) UpdateSyncRun(ctx context.Context, arg UpdateSyncRunParams) (SyncRun, error) {
	row := q.db.QueryRow(ctx, updateSyncRun, arg.ID, arg.Status, arg.Stats, arg.LastError)
	var i SyncRun
	err := row.Scan(&i.ID, &i.Status, &i.Stats, &i.StartedAt, &i.CompletedAt, &i.LastError)
	return i, err
}

const getLatestSyncRun = `-- name: GetLatestSyncRun :one
SELECT id, status, stats, started_at, completed_at, last_error
FROM sync_runs
ORDER BY started_at DESC
LIMIT 1
`

func (q *Queries) GetLatestSyncRun(ctx context.Context) (SyncRun, error) {
	row := q.db.QueryRow(ctx, getLatestSyncRun)
	var i SyncRun
	err := row.Scan(&i.ID, &i.Status, &i.Stats, &i.StartedAt, &i.CompletedAt, &i.LastError)
	return i, err
}
