package store

import "context"

const listFabrics = `-- name: ListFabrics :many
SELECT id, name
FROM fabrics
ORDER BY id
`

func (q *Queries) ListFabrics(ctx context.Context) ([]Fabric, error) {
	rows, err := q.db.Query(ctx, listFabrics)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Fabric
	for rows.Next() {
		var i Fabric
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getFabric = `-- name: GetFabric :one
SELECT id, name
FROM fabrics
WHERE id = $1
`

func (q *Queries) GetFabric(ctx context.Context, id int64) (Fabric, error) {
	row := q.db.QueryRow(ctx, getFabric, id)
	var i Fabric
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

const createFabric = `-- name: CreateFabric :one
INSERT INTO fabrics (name)
VALUES ($1)
RETURNING id, name
`

func (q *Queries) CreateFabric(ctx context.Context, name string) (Fabric, error) {
	row := q.db.QueryRow(ctx, createFabric, name)
	var i Fabric
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

const updateFabric = `-- name: UpdateFabric :one
UPDATE fabrics
SET name = $2
WHERE id = $1
RETURNING id, name
`

func (q *Queries) UpdateFabric(ctx context.Context, id int64, name string) (Fabric, error) {
	row := q.db.QueryRow(ctx, updateFabric, id, name)
	var i Fabric
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

const deleteFabric = `-- name: DeleteFabric :execrows
DELETE FROM fabrics
WHERE id = $1
`

func (q *Queries) DeleteFabric(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteFabric, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
