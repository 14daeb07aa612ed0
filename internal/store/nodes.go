package store

import "context"

const listNodes = `-- name: ListNodes :many
SELECT id, system_id, hostname, address, status, zone_id, domain_id
FROM nodes
ORDER BY id
`

func (q *Queries) ListNodes(ctx context.Context) ([]Node, error) {
	rows, err := q.db.Query(ctx, listNodes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Node
	for rows.Next() {
		var i Node
		if err := rows.Scan(&i.ID, &i.SystemID, &i.Hostname, &i.Address, &i.Status, &i.ZoneID, &i.DomainID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getNode = `-- name: GetNode :one
SELECT id, system_id, hostname, address, status, zone_id, domain_id
FROM nodes
WHERE id = $1
`

func (q *Queries) GetNode(ctx context.Context, id int64) (Node, error) {
	row := q.db.QueryRow(ctx, getNode, id)
	var i Node
	err := row.Scan(&i.ID, &i.SystemID, &i.Hostname, &i.Address, &i.Status, &i.ZoneID, &i.DomainID)
	return i, err
}

const createNode = `-- name: CreateNode :one
INSERT INTO nodes (system_id, hostname, address, status, zone_id, domain_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, system_id, hostname, address, status, zone_id, domain_id
`

type CreateNodeParams struct {
	SystemID string
	Hostname string
	Address  *string
	Status   string
	ZoneID   *int64
	DomainID *int64
}

func (q *Queries) CreateNode(ctx context.Context, arg CreateNodeParams) (Node, error) {
	row := q.db.QueryRow(ctx, createNode, arg.SystemID, arg.Hostname, arg.Address, arg.Status, arg.ZoneID, arg.DomainID)
	var i Node
	err := row.Scan(&i.ID, &i.SystemID, &i.Hostname, &i.Address, &i.Status, &i.ZoneID, &i.DomainID)
	return i, err
}

const updateNode = `-- name: UpdateNode :one
UPDATE nodes
SET hostname = $2, address = $3, status = $4, zone_id = $5, domain_id = $6
WHERE id = $1
RETURNING id, system_id, hostname, address, status, zone_id, domain_id
`

type UpdateNodeParams struct {
	ID       int64
	Hostname string
	Address  *string
	Status   string
	ZoneID   *int64
	DomainID *int64
}

func (q *Queries) UpdateNode(ctx context.Context, arg UpdateNodeParams) (Node, error) {
	row := q.db.QueryRow(ctx, updateNode, arg.ID, arg.Hostname, arg.Address, arg.Status, arg.ZoneID, arg.DomainID)
	var i Node
	err := row.Scan(&i.ID, &i.SystemID, &i.Hostname, &i.Address, &i.Status, &i.ZoneID, &i.DomainID)
	return i, err
}

const setNodeHostnameIfUnset = `-- name: SetNodeHostnameIfUnset :execrows
UPDATE nodes
SET hostname = $2
WHERE id = $1 AND hostname = ''
`

func (q *Queries) SetNodeHostnameIfUnset(ctx context.Context, id int64, hostname string) (int64, error) {
	tag, err := q.db.Exec(ctx, setNodeHostnameIfUnset, id, hostname)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteNode = `-- name: DeleteNode :execrows
DELETE FROM nodes
WHERE id = $1
`

func (q *Queries) DeleteNode(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteNode, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
