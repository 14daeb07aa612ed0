// Package manager owns the in-memory snapshots of the console's entity
// collections. All writes go through a manager method, which performs the
// database round trip first and only then updates the shared snapshot, so
// readers always see rows the database has accepted. Readers get copies;
// entities are never mutated in place.
package manager

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"fabricview/internal/store"
)

// ErrNotFound is returned by mutations that matched no row.
var ErrNotFound = errors.New("entity not found")

// Queries is the minimal DB interface the entity managers need.
//
// NOTE: fabricview uses a sqlc-style query layer. *store.Queries satisfies
// this.
type Queries interface {
	ListFabrics(ctx context.Context) ([]store.Fabric, error)
	CreateFabric(ctx context.Context, name string) (store.Fabric, error)
	UpdateFabric(ctx context.Context, id int64, name string) (store.Fabric, error)
	DeleteFabric(ctx context.Context, id int64) (int64, error)

	ListVLANs(ctx context.Context) ([]store.VLAN, error)
	CreateVLAN(ctx context.Context, arg store.CreateVLANParams) (store.VLAN, error)
	UpdateVLAN(ctx context.Context, arg store.UpdateVLANParams) (store.VLAN, error)
	DeleteVLAN(ctx context.Context, id int64) (int64, error)

	ListSubnets(ctx context.Context) ([]store.Subnet, error)
	CreateSubnet(ctx context.Context, arg store.CreateSubnetParams) (store.Subnet, error)
	UpdateSubnet(ctx context.Context, arg store.UpdateSubnetParams) (store.Subnet, error)
	DeleteSubnet(ctx context.Context, id int64) (int64, error)

	ListSpaces(ctx context.Context) ([]store.Space, error)
	CreateSpace(ctx context.Context, name string) (store.Space, error)
	UpdateSpace(ctx context.Context, id int64, name string) (store.Space, error)
	DeleteSpace(ctx context.Context, id int64) (int64, error)

	ListZones(ctx context.Context) ([]store.Zone, error)
	CreateZone(ctx context.Context, name, description string) (store.Zone, error)
	UpdateZone(ctx context.Context, id int64, name, description string) (store.Zone, error)
	DeleteZone(ctx context.Context, id int64) (int64, error)

	ListDomains(ctx context.Context) ([]store.Domain, error)
	CreateDomain(ctx context.Context, name string, authoritative bool) (store.Domain, error)
	UpdateDomain(ctx context.Context, id int64, name string, authoritative bool) (store.Domain, error)
	DeleteDomain(ctx context.Context, id int64) (int64, error)

	ListNodes(ctx context.Context) ([]store.Node, error)
	CreateNode(ctx context.Context, arg store.CreateNodeParams) (store.Node, error)
	UpdateNode(ctx context.Context, arg store.UpdateNodeParams) (store.Node, error)
	SetNodeHostnameIfUnset(ctx context.Context, id int64, hostname string) (int64, error)
	DeleteNode(ctx context.Context, id int64) (int64, error)
}

// Snapshot is a point-in-time copy of every collection. The generation is
// bumped on every mutation and completed reload, so a caller can cache
// work derived from a snapshot and invalidate it by generation compare.
type Snapshot struct {
	Generation uint64

	Fabrics []store.Fabric
	VLANs   []store.VLAN
	Subnets []store.Subnet
	Spaces  []store.Space
	Zones   []store.Zone
	Domains []store.Domain
	Nodes   []store.Node
}

type Manager struct {
	log zerolog.Logger
	q   Queries

	mu  sync.RWMutex
	gen uint64

	fabrics []store.Fabric
	vlans   []store.VLAN
	subnets []store.Subnet
	spaces  []store.Space
	zones   []store.Zone
	domains []store.Domain
	nodes   []store.Node
}

func New(log zerolog.Logger, q Queries) *Manager {
	return &Manager{log: log, q: q}
}

// Load fetches every collection and installs the result as the new
// snapshot. If anything mutated the manager while the fetch was in flight
// the fetched data is stale and the install is skipped; the caller retries
// on its next cycle.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.RLock()
	startGen := m.gen
	m.mu.RUnlock()

	fabrics, err := m.q.ListFabrics(ctx)
	if err != nil {
		return err
	}
	vlans, err := m.q.ListVLANs(ctx)
	if err != nil {
		return err
	}
	subnets, err := m.q.ListSubnets(ctx)
	if err != nil {
		return err
	}
	spaces, err := m.q.ListSpaces(ctx)
	if err != nil {
		return err
	}
	zones, err := m.q.ListZones(ctx)
	if err != nil {
		return err
	}
	domains, err := m.q.ListDomains(ctx)
	if err != nil {
		return err
	}
	nodes, err := m.q.ListNodes(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != startGen {
		m.log.Debug().Uint64("start_gen", startGen).Uint64("gen", m.gen).Msg("reload lost the race, discarding")
		return nil
	}
	m.fabrics = fabrics
	m.vlans = vlans
	m.subnets = subnets
	m.spaces = spaces
	m.zones = zones
	m.domains = domains
	m.nodes = nodes
	m.gen++
	return nil
}

// Snapshot returns copies of every collection under a single lock, so the
// four topology inputs are mutually consistent.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		Generation: m.gen,
		Fabrics:    append([]store.Fabric(nil), m.fabrics...),
		VLANs:      append([]store.VLAN(nil), m.vlans...),
		Subnets:    append([]store.Subnet(nil), m.subnets...),
		Spaces:     append([]store.Space(nil), m.spaces...),
		Zones:      append([]store.Zone(nil), m.zones...),
		Domains:    append([]store.Domain(nil), m.domains...),
		Nodes:      append([]store.Node(nil), m.nodes...),
	}
}

// Generation returns the current snapshot generation.
func (m *Manager) Generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gen
}
