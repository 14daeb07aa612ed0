package store

import "context"

const listZones = `-- name: ListZones :many
SELECT id, name, description
FROM zones
ORDER BY id
`

func (q *Queries) ListZones(ctx context.Context) ([]Zone, error) {
	rows, err := q.db.Query(ctx, listZones)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Zone
	for rows.Next() {
		var i Zone
		if err := rows.Scan(&i.ID, &i.Name, &i.Description); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getZone = `-- name: GetZone :one
SELECT id, name, description
FROM zones
WHERE id = $1
`

func (q *Queries) GetZone(ctx context.Context, id int64) (Zone, error) {
	row := q.db.QueryRow(ctx, getZone, id)
	var i Zone
	err := row.Scan(&i.ID, &i.Name, &i.Description)
	return i, err
}

const createZone = `-- name: CreateZone :one
INSERT INTO zones (name, description)
VALUES ($1, $2)
RETURNING id, name, description
`

func (q *Queries) CreateZone(ctx context.Context, name, description string) (Zone, error) {
	row := q.db.QueryRow(ctx, createZone, name, description)
	var i Zone
	err := row.Scan(&i.ID, &i.Name, &i.Description)
	return i, err
}

const updateZone = `-- name: UpdateZone :one
UPDATE zones
SET name = $2, description = $3
WHERE id = $1
RETURNING id, name, description
`

func (q *Queries) UpdateZone(ctx context.Context, id int64, name, description string) (Zone, error) {
	row := q.db.QueryRow(ctx, updateZone, id, name, description)
	var i Zone
	err := row.Scan(&i.ID, &i.Name, &i.Description)
	return i, err
}

const deleteZone = `-- name: DeleteZone :execrows
DELETE FROM zones
WHERE id = $1
`

func (q *Queries) DeleteZone(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteZone, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
