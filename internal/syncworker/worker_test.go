package syncworker

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"fabricview/internal/enrichment/snmpinfo"
	"fabricview/internal/manager"
	"fabricview/internal/store"
)

// fakeDB backs a real manager.Manager with in-memory collections. Mutation
// methods are left as stubs; the worker only reads and sets hostnames.
type fakeDB struct {
	fabrics []store.Fabric
	vlans   []store.VLAN
	subnets []store.Subnet
	spaces  []store.Space
	zones   []store.Zone
	domains []store.Domain
	nodes   []store.Node

	listErr      error
	hostnameSets map[int64]string
}

func (f *fakeDB) ListFabrics(ctx context.Context) ([]store.Fabric, error) {
	return f.fabrics, f.listErr
}
func (f *fakeDB) ListVLANs(ctx context.Context) ([]store.VLAN, error) { return f.vlans, f.listErr }
func (f *fakeDB) ListSubnets(ctx context.Context) ([]store.Subnet, error) {
	return f.subnets, f.listErr
}
func (f *fakeDB) ListSpaces(ctx context.Context) ([]store.Space, error) { return f.spaces, f.listErr }
func (f *fakeDB) ListZones(ctx context.Context) ([]store.Zone, error)   { return f.zones, f.listErr }
func (f *fakeDB) ListDomains(ctx context.Context) ([]store.Domain, error) {
	return f.domains, f.listErr
}
func (f *fakeDB) ListNodes(ctx context.Context) ([]store.Node, error) { return f.nodes, f.listErr }

func (f *fakeDB) SetNodeHostnameIfUnset(ctx context.Context, id int64, hostname string) (int64, error) {
	if f.hostnameSets == nil {
		f.hostnameSets = make(map[int64]string)
	}
	f.hostnameSets[id] = hostname
	return 1, nil
}

func (f *fakeDB) CreateFabric(ctx context.Context, name string) (store.Fabric, error) {
	return store.Fabric{}, nil
}
func (f *fakeDB) UpdateFabric(ctx context.Context, id int64, name string) (store.Fabric, error) {
	return store.Fabric{}, nil
}
func (f *fakeDB) DeleteFabric(ctx context.Context, id int64) (int64, error) { return 0, nil }
func (f *fakeDB) CreateVLAN(ctx context.Context, arg store.CreateVLANParams) (store.VLAN, error) {
	return store.VLAN{}, nil
}
func (f *fakeDB) UpdateVLAN(ctx context.Context, arg store.UpdateVLANParams) (store.VLAN, error) {
	return store.VLAN{}, nil
}
func (f *fakeDB) DeleteVLAN(ctx context.Context, id int64) (int64, error) { return 0, nil }
func (f *fakeDB) CreateSubnet(ctx context.Context, arg store.CreateSubnetParams) (store.Subnet, error) {
	return store.Subnet{}, nil
}
func (f *fakeDB) UpdateSubnet(ctx context.Context, arg store.UpdateSubnetParams) (store.Subnet, error) {
	return store.Subnet{}, nil
}
func (f *fakeDB) DeleteSubnet(ctx context.Context, id int64) (int64, error) { return 0, nil }
func (f *fakeDB) CreateSpace(ctx context.Context, name string) (store.Space, error) {
	return store.Space{}, nil
}
func (f *fakeDB) UpdateSpace(ctx context.Context, id int64, name string) (store.Space, error) {
	return store.Space{}, nil
}
func (f *fakeDB) DeleteSpace(ctx context.Context, id int64) (int64, error) { return 0, nil }
func (f *fakeDB) CreateZone(ctx context.Context, name, description string) (store.Zone, error) {
	return store.Zone{}, nil
}
func (f *fakeDB) UpdateZone(ctx context.Context, id int64, name, description string) (store.Zone, error) {
	return store.Zone{}, nil
}
func (f *fakeDB) DeleteZone(ctx context.Context, id int64) (int64, error) { return 0, nil }
func (f *fakeDB) CreateDomain(ctx context.Context, name string, authoritative bool) (store.Domain, error) {
	return store.Domain{}, nil
}
func (f *fakeDB) UpdateDomain(ctx context.Context, id int64, name string, authoritative bool) (store.Domain, error) {
	return store.Domain{}, nil
}
func (f *fakeDB) DeleteDomain(ctx context.Context, id int64) (int64, error) { return 0, nil }
func (f *fakeDB) CreateNode(ctx context.Context, arg store.CreateNodeParams) (store.Node, error) {
	return store.Node{}, nil
}
func (f *fakeDB) UpdateNode(ctx context.Context, arg store.UpdateNodeParams) (store.Node, error) {
	return store.Node{}, nil
}
func (f *fakeDB) DeleteNode(ctx context.Context, id int64) (int64, error) { return 0, nil }

type fakeRunStore struct {
	inserted []store.InsertSyncRunParams
	updated  []store.UpdateSyncRunParams

	insertErr error
}

func (f *fakeRunStore) InsertSyncRun(ctx context.Context, arg store.InsertSyncRunParams) (store.SyncRun, error) {
	f.inserted = append(f.inserted, arg)
	return store.SyncRun{ID: arg.ID, Status: arg.Status}, f.insertErr
}

func (f *fakeRunStore) UpdateSyncRun(ctx context.Context, arg store.UpdateSyncRunParams) (store.SyncRun, error) {
	f.updated = append(f.updated, arg)
	return store.SyncRun{ID: arg.ID, Status: arg.Status}, nil
}

type fakeResolver struct {
	names map[string]string
	err   error
}

func (f *fakeResolver) LookupAddr(ctx context.Context, address string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.names[address], nil
}

func strptr(s string) *string { return &s }

func TestRunOnceRecordsCompletedRun(t *testing.T) {
	db := &fakeDB{
		fabrics: []store.Fabric{{ID: 1, Name: "fabric-a"}},
		vlans:   []store.VLAN{{ID: 10, VID: 0, FabricID: 1}},
		subnets: []store.Subnet{{ID: 100, CIDR: "10.0.0.0/24", VLANID: 10}},
	}
	runs := &fakeRunStore{}
	mgr := manager.New(zerolog.Nop(), db)
	w := New(zerolog.Nop(), mgr, runs, Options{}, nil)

	w.runOnce(context.Background())

	if len(runs.inserted) != 1 || runs.inserted[0].Status != "running" {
		t.Fatalf("inserted runs = %+v, want one running", runs.inserted)
	}
	if len(runs.updated) != 1 {
		t.Fatalf("updated runs = %+v, want one", runs.updated)
	}
	upd := runs.updated[0]
	if upd.ID != runs.inserted[0].ID {
		t.Errorf("update run id = %q, insert id = %q", upd.ID, runs.inserted[0].ID)
	}
	if upd.Status != "completed" {
		t.Errorf("final status = %q, want completed", upd.Status)
	}
	if got := upd.Stats["fabrics"]; got != 1 {
		t.Errorf("stats fabrics = %v, want 1", got)
	}
	if got := upd.Stats["subnets"]; got != 1 {
		t.Errorf("stats subnets = %v, want 1", got)
	}
	if mgr.Generation() == 0 {
		t.Error("manager generation still zero after run, reload did not land")
	}
}

func TestRunOnceReloadFailureRecordsFailed(t *testing.T) {
	db := &fakeDB{listErr: errors.New("connection refused")}
	runs := &fakeRunStore{}
	mgr := manager.New(zerolog.Nop(), db)
	w := New(zerolog.Nop(), mgr, runs, Options{}, nil)

	w.runOnce(context.Background())

	if len(runs.updated) != 1 {
		t.Fatalf("updated runs = %+v, want one", runs.updated)
	}
	upd := runs.updated[0]
	if upd.Status != "failed" {
		t.Errorf("final status = %q, want failed", upd.Status)
	}
	if upd.LastError == nil || *upd.LastError != "connection refused" {
		t.Errorf("last error = %v, want connection refused", upd.LastError)
	}
}

func TestRunOnceSkipsWhenInsertFails(t *testing.T) {
	db := &fakeDB{}
	runs := &fakeRunStore{insertErr: errors.New("db down")}
	mgr := manager.New(zerolog.Nop(), db)
	w := New(zerolog.Nop(), mgr, runs, Options{}, nil)

	w.runOnce(context.Background())

	if len(runs.updated) != 0 {
		t.Errorf("updated runs = %+v, want none when the run could not be recorded", runs.updated)
	}
}

func TestRunOnceEnrichesHostnames(t *testing.T) {
	db := &fakeDB{
		nodes: []store.Node{
			{ID: 1, SystemID: "abc123", Hostname: "", Address: strptr("10.0.0.5"), Status: "new"},
			{ID: 2, SystemID: "def456", Hostname: "named", Address: strptr("10.0.0.6"), Status: "ready"},
			{ID: 3, SystemID: "ghi789", Hostname: "", Address: nil, Status: "new"},
		},
	}
	runs := &fakeRunStore{}
	resolver := &fakeResolver{names: map[string]string{"10.0.0.5": "rack-1.example.net"}}
	mgr := manager.New(zerolog.Nop(), db)
	w := New(zerolog.Nop(), mgr, runs, Options{Resolver: resolver}, nil)

	w.runOnce(context.Background())

	if got := db.hostnameSets[1]; got != "rack-1.example.net" {
		t.Errorf("node 1 hostname = %q, want rack-1.example.net", got)
	}
	if _, ok := db.hostnameSets[2]; ok {
		t.Error("node 2 already had a hostname, must not be overwritten")
	}
	if _, ok := db.hostnameSets[3]; ok {
		t.Error("node 3 has no address, must not be looked up")
	}
	if got := runs.updated[0].Stats["nodes_enriched"]; got != 1 {
		t.Errorf("stats nodes_enriched = %v, want 1", got)
	}
}

func TestRunOnceEnrichmentErrorsDoNotFailRun(t *testing.T) {
	db := &fakeDB{
		nodes: []store.Node{{ID: 1, SystemID: "abc123", Address: strptr("10.0.0.5"), Status: "new"}},
	}
	runs := &fakeRunStore{}
	mgr := manager.New(zerolog.Nop(), db)
	w := New(zerolog.Nop(), mgr, runs, Options{Resolver: &fakeResolver{err: errors.New("timeout")}}, nil)

	w.runOnce(context.Background())

	if runs.updated[0].Status != "completed" {
		t.Errorf("final status = %q, want completed despite lookup failure", runs.updated[0].Status)
	}
	if got := runs.updated[0].Stats["nodes_enriched"]; got != 0 {
		t.Errorf("stats nodes_enriched = %v, want 0", got)
	}
}

type fakeSNMP struct {
	info map[string]snmpinfo.SystemInfo
}

func (f *fakeSNMP) SystemInfo(ctx context.Context, address string) (snmpinfo.SystemInfo, error) {
	return f.info[address], nil
}

func TestRunOnceFallsBackToSNMPName(t *testing.T) {
	db := &fakeDB{
		nodes: []store.Node{{ID: 1, SystemID: "abc123", Address: strptr("10.0.0.5"), Status: "new"}},
	}
	runs := &fakeRunStore{}
	snmp := &fakeSNMP{info: map[string]snmpinfo.SystemInfo{"10.0.0.5": {SysName: "sw-core-1"}}}
	mgr := manager.New(zerolog.Nop(), db)
	w := New(zerolog.Nop(), mgr, runs, Options{Resolver: &fakeResolver{}, SNMP: snmp}, nil)

	w.runOnce(context.Background())

	if got := db.hostnameSets[1]; got != "sw-core-1" {
		t.Errorf("node 1 hostname = %q, want sw-core-1 from snmp", got)
	}
}

func TestCheckReferencesCountsDangling(t *testing.T) {
	zone := int64(99)
	space := int64(77)
	snap := manager.Snapshot{
		Fabrics: []store.Fabric{{ID: 1}},
		VLANs: []store.VLAN{
			{ID: 10, FabricID: 1},
			{ID: 11, FabricID: 2}, // fabric 2 missing
		},
		Subnets: []store.Subnet{
			{ID: 100, VLANID: 10},
			{ID: 101, VLANID: 12},                  // vlan 12 missing
			{ID: 102, VLANID: 10, SpaceID: &space}, // space 77 missing
		},
		Nodes: []store.Node{
			{ID: 1},
			{ID: 2, ZoneID: &zone}, // zone 99 missing
		},
	}

	stats := CheckReferences(snap)
	if got := stats["dangling_vlans"]; got != 1 {
		t.Errorf("dangling_vlans = %v, want 1", got)
	}
	if got := stats["dangling_subnets"]; got != 2 {
		t.Errorf("dangling_subnets = %v, want 2", got)
	}
	if got := stats["dangling_nodes"]; got != 1 {
		t.Errorf("dangling_nodes = %v, want 1", got)
	}
	if got := stats["vlans"]; got != 2 {
		t.Errorf("vlans = %v, want 2", got)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	db := &fakeDB{}
	runs := &fakeRunStore{}
	mgr := manager.New(zerolog.Nop(), db)
	w := New(zerolog.Nop(), mgr, runs, Options{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	if len(runs.inserted) == 0 {
		t.Error("Run performed no initial cycle before cancellation")
	}
}
