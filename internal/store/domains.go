package store

import "context"

const listDomains = `-- name: ListDomains :many
SELECT id, name, authoritative
FROM domains
ORDER BY id
`

func (q *Queries) ListDomains(ctx context.Context) ([]Domain, error) {
	rows, err := q.db.Query(ctx, listDomains)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Domain
	for rows.Next() {
		var i Domain
		if err := rows.Scan(&i.ID, &i.Name, &i.Authoritative); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getDomain = `-- name: GetDomain :one
SELECT id, name, authoritative
FROM domains
WHERE id = $1
`

func (q *Queries) GetDomain(ctx context.Context, id int64) (Domain, error) {
	row := q.db.QueryRow(ctx, getDomain, id)
	var i Domain
	err := row.Scan(&i.ID, &i.Name, &i.Authoritative)
	return i, err
}

const createDomain = `-- name: CreateDomain :one
INSERT INTO domains (name, authoritative)
VALUES ($1, $2)
RETURNING id, name, authoritative
`

func (q *Queries) CreateDomain(ctx context.Context, name string, authoritative bool) (Domain, error) {
	row := q.db.QueryRow(ctx, createDomain, name, authoritative)
	var i Domain
	err := row.Scan(&i.ID, &i.Name, &i.Authoritative)
	return i, err
}

const updateDomain = `-- name: UpdateDomain :one
UPDATE domains
SET name = $2, authoritative = $3
WHERE id = $1
RETURNING id, name, authoritative
`

func (q *Queries) UpdateDomain(ctx context.Context, id int64, name string, authoritative bool) (Domain, error) {
	row := q.db.QueryRow(ctx, updateDomain, id, name, authoritative)
	var i Domain
	err := row.Scan(&i.ID, &i.Name, &i.Authoritative)
	return i, err
}

const deleteDomain = `-- name: DeleteDomain :execrows
DELETE FROM domains
WHERE id = $1
`

func (q *Queries) DeleteDomain(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteDomain, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
