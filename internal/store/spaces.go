package store

import "context"

const listSpaces = `-- name: ListSpaces :many
SELECT id, name
FROM spaces
ORDER BY id
`

func (q *Queries) ListSpaces(ctx context.Context) ([]Space, error) {
	rows, err := q.db.Query(ctx, listSpaces)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Space
	for rows.Next() {
		var i Space
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getSpace = `-- name: GetSpace :one
SELECT id, name
FROM spaces
WHERE id = $1
`

func (q *Queries) GetSpace(ctx context.Context, id int64) (Space, error) {
	row := q.db.QueryRow(ctx, getSpace, id)
	var i Space
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

const createSpace = `-- name: CreateSpace :one
INSERT INTO spaces (name)
VALUES ($1)
RETURNING id, name
`

func (q *Queries) CreateSpace(ctx context.Context, name string) (Space, error) {
	row := q.db.QueryRow(ctx, createSpace, name)
	var i Space
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

const updateSpace = `-- name: UpdateSpace :one
UPDATE spaces
SET name = $2
WHERE id = $1
RETURNING id, name
`

func (q *Queries) UpdateSpace(ctx context.Context, id int64, name string) (Space, error) {
	row := q.db.QueryRow(ctx, updateSpace, id, name)
	var i Space
	err := row.Scan(&i.ID, &i.Name)
	return i, err
}

const deleteSpace = `-- name: DeleteSpace :execrows
DELETE FROM spaces
WHERE id = $1
`

func (q *Queries) DeleteSpace(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteSpace, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
