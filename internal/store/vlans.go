package store

import "context"

const listVLANs = `-- name: ListVLANs :many
SELECT id, vid, name, fabric_id
FROM vlans
ORDER BY id
`

func (q *Queries) ListVLANs(ctx context.Context) ([]VLAN, error) {
	rows, err := q.db.Query(ctx, listVLANs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []VLAN
	for rows.Next() {
		var i VLAN
		if err := rows.Scan(&i.ID, &i.VID, &i.Name, &i.FabricID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getVLAN = `-- name: GetVLAN :one
SELECT id, vid, name, fabric_id
FROM vlans
WHERE id = $1
`

func (q *Queries) GetVLAN(ctx context.Context, id int64) (VLAN, error) {
	row := q.db.QueryRow(ctx, getVLAN, id)
	var i VLAN
	err := row.Scan(&i.ID, &i.VID, &i.Name, &i.FabricID)
	return i, err
}

const createVLAN = `-- name: CreateVLAN :one
INSERT INTO vlans (vid, name, fabric_id)
VALUES ($1, $2, $3)
RETURNING id, vid, name, fabric_id
`

type CreateVLANParams struct {
	VID      int
	Name     string
	FabricID int64
}

func (q *Queries) CreateVLAN(ctx context.Context, arg CreateVLANParams) (VLAN, error) {
	row := q.db.QueryRow(ctx, createVLAN, arg.VID, arg.Name, arg.FabricID)
	var i VLAN
	err := row.Scan(&i.ID, &i.VID, &i.Name, &i.FabricID)
	return i, err
}

const updateVLAN = `-- name: UpdateVLAN :one
UPDATE vlans
SET vid = $2, name = $3, fabric_id = $4
WHERE id = $1
RETURNING id, vid, name, fabric_id
`

type UpdateVLANParams struct {
	ID       int64
	VID      int
	Name     string
	FabricID int64
}

func (q *Queries) UpdateVLAN(ctx context.Context, arg UpdateVLANParams) (VLAN, error) {
	row := q.db.QueryRow(ctx, updateVLAN, arg.ID, arg.VID, arg.Name, arg.FabricID)
	var i VLAN
	err := row.Scan(&i.ID, &i.VID, &i.Name, &i.FabricID)
	return i, err
}

const deleteVLAN = `-- name: DeleteVLAN :execrows
DELETE FROM vlans
WHERE id = $1
`

func (q *Queries) DeleteVLAN(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteVLAN, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
