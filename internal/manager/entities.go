package manager

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fabricview/internal/store"
)

// upsertByID replaces the element with v's id, or appends when the
// snapshot does not know the id yet (a mutation racing a reload).
func upsertByID[T any](list []T, id func(T) int64, v T) []T {
	want := id(v)
	for i := range list {
		if id(list[i]) == want {
			list[i] = v
			return list
		}
	}
	return append(list, v)
}

func removeByID[T any](list []T, id func(T) int64, want int64) []T {
	out := list[:0]
	for _, v := range list {
		if id(v) != want {
			out = append(out, v)
		}
	}
	return out
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func fabricID(f store.Fabric) int64 { return f.ID }
func vlanID(v store.VLAN) int64     { return v.ID }
func subnetID(s store.Subnet) int64 { return s.ID }
func spaceID(s store.Space) int64   { return s.ID }
func zoneID(z store.Zone) int64     { return z.ID }
func domainID(d store.Domain) int64 { return d.ID }
func nodeID(n store.Node) int64     { return n.ID }

func (m *Manager) CreateFabric(ctx context.Context, name string) (store.Fabric, error) {
	f, err := m.q.CreateFabric(ctx, name)
	if err != nil {
		return store.Fabric{}, err
	}
	m.mu.Lock()
	m.fabrics = upsertByID(m.fabrics, fabricID, f)
	m.gen++
	m.mu.Unlock()
	return f, nil
}

func (m *Manager) UpdateFabric(ctx context.Context, id int64, name string) (store.Fabric, error) {
	f, err := m.q.UpdateFabric(ctx, id, name)
	if err != nil {
		return store.Fabric{}, mapNoRows(err)
	}
	m.mu.Lock()
	m.fabrics = upsertByID(m.fabrics, fabricID, f)
	m.gen++
	m.mu.Unlock()
	return f, nil
}

func (m *Manager) DeleteFabric(ctx context.Context, id int64) error {
	n, err := m.q.DeleteFabric(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	m.mu.Lock()
	m.fabrics = removeByID(m.fabrics, fabricID, id)
	m.gen++
	m.mu.Unlock()
	return nil
}

func (m *Manager) CreateVLAN(ctx context.Context, arg store.CreateVLANParams) (store.VLAN, error) {
	v, err := m.q.CreateVLAN(ctx, arg)
	if err != nil {
		return store.VLAN{}, err
	}
	m.mu.Lock()
	m.vlans = upsertByID(m.vlans, vlanID, v)
	m.gen++
	m.mu.Unlock()
	return v, nil
}

func (m *Manager) UpdateVLAN(ctx context.Context, arg store.UpdateVLANParams) (store.VLAN, error) {
	v, err := m.q.UpdateVLAN(ctx, arg)
	if err != nil {
		return store.VLAN{}, mapNoRows(err)
	}
	m.mu.Lock()
	m.vlans = upsertByID(m.vlans, vlanID, v)
	m.gen++
	m.mu.Unlock()
	return v, nil
}

func (m *Manager) DeleteVLAN(ctx context.Context, id int64) error {
	n, err := m.q.DeleteVLAN(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	m.mu.Lock()
	m.vlans = removeByID(m.vlans, vlanID, id)
	m.gen++
	m.mu.Unlock()
	return nil
}

func (m *Manager) CreateSubnet(ctx context.Context, arg store.CreateSubnetParams) (store.Subnet, error) {
	s, err := m.q.CreateSubnet(ctx, arg)
	if err != nil {
		return store.Subnet{}, err
	}
	m.mu.Lock()
	m.subnets = upsertByID(m.subnets, subnetID, s)
	m.gen++
	m.mu.Unlock()
	return s, nil
}

func (m *Manager) UpdateSubnet(ctx context.Context, arg store.UpdateSubnetParams) (store.Subnet, error) {
	s, err := m.q.UpdateSubnet(ctx, arg)
	if err != nil {
		return store.Subnet{}, mapNoRows(err)
	}
	m.mu.Lock()
	m.subnets = upsertByID(m.subnets, subnetID, s)
	m.gen++
	m.mu.Unlock()
	return s, nil
}

func (m *Manager) DeleteSubnet(ctx context.Context, id int64) error {
	n, err := m.q.DeleteSubnet(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	m.mu.Lock()
	m.subnets = removeByID(m.subnets, subnetID, id)
	m.gen++
	m.mu.Unlock()
	return nil
}

func (m *Manager) CreateSpace(ctx context.Context, name string) (store.Space, error) {
	s, err := m.q.CreateSpace(ctx, name)
	if err != nil {
		return store.Space{}, err
	}
	m.mu.Lock()
	m.spaces = upsertByID(m.spaces, spaceID, s)
	m.gen++
	m.mu.Unlock()
	return s, nil
}

func (m *Manager) UpdateSpace(ctx context.Context, id int64, name string) (store.Space, error) {
	s, err := m.q.UpdateSpace(ctx, id, name)
	if err != nil {
		return store.Space{}, mapNoRows(err)
	}
	m.mu.Lock()
	m.spaces = upsertByID(m.spaces, spaceID, s)
	m.gen++
	m.mu.Unlock()
	return s, nil
}

func (m *Manager) DeleteSpace(ctx context.Context, id int64) error {
	n, err := m.q.DeleteSpace(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	m.mu.Lock()
	m.spaces = removeByID(m.spaces, spaceID, id)
	m.gen++
	m.mu.Unlock()
	return nil
}

func (m *Manager) CreateZone(ctx context.Context, name, description string) (store.Zone, error) {
	z, err := m.q.CreateZone(ctx, name, description)
	if err != nil {
		return store.Zone{}, err
	}
	m.mu.Lock()
	m.zones = upsertByID(m.zones, zoneID, z)
	m.gen++
	m.mu.Unlock()
	return z, nil
}

func (m *Manager) UpdateZone(ctx context.Context, id int64, name, description string) (store.Zone, error) {
	z, err := m.q.UpdateZone(ctx, id, name, description)
	if err != nil {
		return store.Zone{}, mapNoRows(err)
	}
	m.mu.Lock()
	m.zones = upsertByID(m.zones, zoneID, z)
	m.gen++
	m.mu.Unlock()
	return z, nil
}

func (m *Manager) DeleteZone(ctx context.Context, id int64) error {
	n, err := m.q.DeleteZone(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	m.mu.Lock()
	m.zones = removeByID(m.zones, zoneID, id)
	m.gen++
	m.mu.Unlock()
	return nil
}

func (m *Manager) CreateDomain(ctx context.Context, name string, authoritative bool) (store.Domain, error) {
	d, err := m.q.CreateDomain(ctx, name, authoritative)
	if err != nil {
		return store.Domain{}, err
	}
	m.mu.Lock()
	m.domains = upsertByID(m.domains, domainID, d)
	m.gen++
	m.mu.Unlock()
	return d, nil
}

func (m *Manager) UpdateDomain(ctx context.Context, id int64, name string, authoritative bool) (store.Domain, error) {
	d, err := m.q.UpdateDomain(ctx, id, name, authoritative)
	if err != nil {
		return store.Domain{}, mapNoRows(err)
	}
	m.mu.Lock()
	m.domains = upsertByID(m.domains, domainID, d)
	m.gen++
	m.mu.Unlock()
	return d, nil
}

func (m *Manager) DeleteDomain(ctx context.Context, id int64) error {
	n, err := m.q.DeleteDomain(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	m.mu.Lock()
	m.domains = removeByID(m.domains, domainID, id)
	m.gen++
	m.mu.Unlock()
	return nil
}

func (m *Manager) CreateNode(ctx context.Context, arg store.CreateNodeParams) (store.Node, error) {
	nd, err := m.q.CreateNode(ctx, arg)
	if err != nil {
		return store.Node{}, err
	}
	m.mu.Lock()
	m.nodes = upsertByID(m.nodes, nodeID, nd)
	m.gen++
	m.mu.Unlock()
	return nd, nil
}

func (m *Manager) UpdateNode(ctx context.Context, arg store.UpdateNodeParams) (store.Node, error) {
	nd, err := m.q.UpdateNode(ctx, arg)
	if err != nil {
		return store.Node{}, mapNoRows(err)
	}
	m.mu.Lock()
	m.nodes = upsertByID(m.nodes, nodeID, nd)
	m.gen++
	m.mu.Unlock()
	return nd, nil
}

// SetNodeHostnameIfUnset records an enrichment-discovered hostname without
// clobbering an operator-assigned one. Returns true when the row changed.
func (m *Manager) SetNodeHostnameIfUnset(ctx context.Context, id int64, hostname string) (bool, error) {
	n, err := m.q.SetNodeHostnameIfUnset(ctx, id, hostname)
	if err != nil || n == 0 {
		return false, err
	}
	m.mu.Lock()
	for i := range m.nodes {
		if m.nodes[i].ID == id {
			m.nodes[i].Hostname = hostname
			break
		}
	}
	m.gen++
	m.mu.Unlock()
	return true, nil
}

func (m *Manager) DeleteNode(ctx context.Context, id int64) error {
	n, err := m.q.DeleteNode(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	m.mu.Lock()
	m.nodes = removeByID(m.nodes, nodeID, id)
	m.gen++
	m.mu.Unlock()
	return nil
}
