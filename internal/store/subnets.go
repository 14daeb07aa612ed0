package store

import "context"

const listSubnets = `-- name: ListSubnets :many
SELECT id, cidr, name, vlan_id, space_id
FROM subnets
ORDER BY id
`

func (q *Queries) ListSubnets(ctx context.Context) ([]Subnet, error) {
	rows, err := q.db.Query(ctx, listSubnets)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Subnet
	for rows.Next() {
		var i Subnet
		if err := rows.Scan(&i.ID, &i.CIDR, &i.Name, &i.VLANID, &i.SpaceID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getSubnet = `-- name: GetSubnet :one
SELECT id, cidr, name, vlan_id, space_id
FROM subnets
WHERE id = $1
`

func (q *Queries) GetSubnet(ctx context.Context, id int64) (Subnet, error) {
	row := q.db.QueryRow(ctx, getSubnet, id)
	var i Subnet
	err := row.Scan(&i.ID, &i.CIDR, &i.Name, &i.VLANID, &i.SpaceID)
	return i, err
}

const createSubnet = `-- name: CreateSubnet :one
INSERT INTO subnets (cidr, name, vlan_id, space_id)
VALUES ($1, $2, $3, $4)
RETURNING id, cidr, name, vlan_id, space_id
`

type CreateSubnetParams struct {
	CIDR    string
	Name    string
	VLANID  int64
	SpaceID *int64
}

func (q *Queries) CreateSubnet(ctx context.Context, arg CreateSubnetParams) (Subnet, error) {
	row := q.db.QueryRow(ctx, createSubnet, arg.CIDR, arg.Name, arg.VLANID, arg.SpaceID)
	var i Subnet
	err := row.Scan(&i.ID, &i.CIDR, &i.Name, &i.VLANID, &i.SpaceID)
	return i, err
}

const updateSubnet = `-- name: UpdateSubnet :one
UPDATE subnets
SET cidr = $2, name = $3, vlan_id = $4, space_id = $5
WHERE id = $1
RETURNING id, cidr, name, vlan_id, space_id
`

type UpdateSubnetParams struct {
	ID      int64
	CIDR    string
	Name    string
	VLANID  int64
	SpaceID *int64
}

func (q *Queries) UpdateSubnet(ctx context.Context, arg UpdateSubnetParams) (Subnet, error) {
	row := q.db.QueryRow(ctx, updateSubnet, arg.ID, arg.CIDR, arg.Name, arg.VLANID, arg.SpaceID)
	var i Subnet
	err := row.Scan(&i.ID, &i.CIDR, &i.Name, &i.VLANID, &i.SpaceID)
	return i, err
}

const deleteSubnet = `-- name: DeleteSubnet :execrows
DELETE FROM subnets
WHERE id = $1
`

func (q *Queries) DeleteSubnet(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteSubnet, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
