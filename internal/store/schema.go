package store

import "context"

// Schema is applied idempotently at startup. Entity ids are bigserial so
// the API surface can use plain integer ids; referential actions are
// RESTRICT so deleting a parent with children surfaces as a foreign key
// violation rather than a cascade.
const schema = `
CREATE TABLE IF NOT EXISTS fabrics (
  id   bigserial PRIMARY KEY,
  name text NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS spaces (
  id   bigserial PRIMARY KEY,
  name text NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS vlans (
  id        bigserial PRIMARY KEY,
  vid       integer NOT NULL CHECK (vid >= 0 AND vid <= 4094),
  name      text NOT NULL DEFAULT '',
  fabric_id bigint NOT NULL REFERENCES fabrics(id) ON DELETE RESTRICT,
  UNIQUE (fabric_id, vid)
);

CREATE TABLE IF NOT EXISTS subnets (
  id       bigserial PRIMARY KEY,
  cidr     text NOT NULL,
  name     text NOT NULL DEFAULT '',
  vlan_id  bigint NOT NULL REFERENCES vlans(id) ON DELETE RESTRICT,
  space_id bigint REFERENCES spaces(id) ON DELETE RESTRICT
);

CREATE TABLE IF NOT EXISTS zones (
  id          bigserial PRIMARY KEY,
  name        text NOT NULL UNIQUE,
  description text NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS domains (
  id            bigserial PRIMARY KEY,
  name          text NOT NULL UNIQUE,
  authoritative boolean NOT NULL DEFAULT true
);

CREATE TABLE IF NOT EXISTS nodes (
  id        bigserial PRIMARY KEY,
  system_id text NOT NULL UNIQUE,
  hostname  text NOT NULL DEFAULT '',
  address   text,
  status    text NOT NULL DEFAULT 'new',
  zone_id   bigint REFERENCES zones(id) ON DELETE RESTRICT,
  domain_id bigint REFERENCES domains(id) ON DELETE RESTRICT
);

CREATE TABLE IF NOT EXISTS sync_runs (
  id           uuid PRIMARY KEY,
  status       text NOT NULL,
  stats        jsonb NOT NULL DEFAULT '{}'::jsonb,
  started_at   timestamptz NOT NULL DEFAULT now(),
  completed_at timestamptz,
  last_error   text
);
`

func (q *Queries) EnsureSchema(ctx context.Context) error {
	_, err := q.db.Exec(ctx, schema)
	return err
}
