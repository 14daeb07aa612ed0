package topology

import (
	"reflect"
	"testing"

	"fabricview/internal/store"
)

func int64p(v int64) *int64 { return &v }

func TestFabricRows_ExampleTable(t *testing.T) {
	fabrics := []store.Fabric{{ID: 1, Name: "fabric-0"}}
	vlans := []store.VLAN{
		{ID: 1, VID: 0, FabricID: 1},
		{ID: 2, VID: 10, Name: "storage", FabricID: 1},
	}
	subnets := []store.Subnet{
		{ID: 1, CIDR: "10.0.0.0/24", VLANID: 1},
	}

	rows := FabricRows(fabrics, vlans, subnets, nil)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	r0 := rows[0]
	if r0.FabricName != "fabric-0" || r0.VLANName != "untagged" || r0.SubnetName != "10.0.0.0/24" {
		t.Fatalf("row0 labels = %q/%q/%q", r0.FabricName, r0.VLANName, r0.SubnetName)
	}
	r1 := rows[1]
	if r1.FabricName != "" {
		t.Fatalf("row1 fabric label should be suppressed, got %q", r1.FabricName)
	}
	if r1.VLANName != "10 (storage)" {
		t.Fatalf("row1 vlan label = %q, want %q", r1.VLANName, "10 (storage)")
	}
	if r1.Subnet != nil || r1.SubnetName != "" {
		t.Fatalf("row1 should carry no subnet, got %+v %q", r1.Subnet, r1.SubnetName)
	}
}

func TestFabricRows_RowCountPerVLANAndSubnet(t *testing.T) {
	fabrics := []store.Fabric{
		{ID: 1, Name: "alpha"},
		{ID: 2, Name: "beta"},
	}
	vlans := []store.VLAN{
		{ID: 1, VID: 0, FabricID: 1},
		{ID: 2, VID: 20, FabricID: 1},
		{ID: 3, VID: 0, FabricID: 2},
	}
	subnets := []store.Subnet{
		{ID: 1, CIDR: "10.0.0.0/24", VLANID: 1},
		{ID: 2, CIDR: "10.0.1.0/24", VLANID: 1},
		{ID: 3, CIDR: "192.168.0.0/16", VLANID: 3},
	}

	rows := FabricRows(fabrics, vlans, subnets, nil)

	// One row per subnet plus one row per VLAN without subnets.
	wantRows := 3 + 1
	if len(rows) != wantRows {
		t.Fatalf("expected %d rows, got %d", wantRows, len(rows))
	}

	var withSubnet, withoutSubnet int
	for _, r := range rows {
		if r.VLAN == nil || r.Fabric == nil {
			t.Fatalf("every row carries a fabric and a vlan: %+v", r)
		}
		if r.Subnet != nil {
			withSubnet++
		} else {
			withoutSubnet++
		}
	}
	if withSubnet != 3 || withoutSubnet != 1 {
		t.Fatalf("got %d subnet rows and %d placeholder rows", withSubnet, withoutSubnet)
	}
}

func TestFabricRows_OrderingByNameAndVID(t *testing.T) {
	fabrics := []store.Fabric{
		{ID: 1, Name: "zebra"},
		{ID: 2, Name: "alpha"},
	}
	vlans := []store.VLAN{
		{ID: 1, VID: 30, FabricID: 2},
		{ID: 2, VID: 0, FabricID: 2},
		{ID: 3, VID: 5, FabricID: 1},
	}

	rows := FabricRows(fabrics, vlans, nil, nil)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Fabric.Name != "alpha" || rows[0].VLAN.VID != 0 {
		t.Fatalf("row0 = %s vid %d", rows[0].Fabric.Name, rows[0].VLAN.VID)
	}
	if rows[1].Fabric.Name != "alpha" || rows[1].VLAN.VID != 30 {
		t.Fatalf("row1 = %s vid %d", rows[1].Fabric.Name, rows[1].VLAN.VID)
	}
	if rows[2].Fabric.Name != "zebra" || rows[2].VLAN.VID != 5 {
		t.Fatalf("row2 = %s vid %d", rows[2].Fabric.Name, rows[2].VLAN.VID)
	}
}

func TestFabricRows_VLANLabelRepeatsAcrossFabricBoundary(t *testing.T) {
	// Both fabrics carry an untagged VLAN. The second fabric's first row
	// must still show its VLAN label even though the preceding row showed
	// the same text for a different fabric.
	fabrics := []store.Fabric{
		{ID: 1, Name: "alpha"},
		{ID: 2, Name: "beta"},
	}
	vlans := []store.VLAN{
		{ID: 1, VID: 0, FabricID: 1},
		{ID: 2, VID: 0, FabricID: 2},
	}

	rows := FabricRows(fabrics, vlans, nil, nil)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].FabricName != "beta" {
		t.Fatalf("row1 fabric label = %q, want beta", rows[1].FabricName)
	}
	if rows[1].VLANName != "untagged" {
		t.Fatalf("row1 vlan label = %q, want untagged", rows[1].VLANName)
	}
}

func TestFabricRows_SuppressionWithinVLANGroup(t *testing.T) {
	fabrics := []store.Fabric{{ID: 1, Name: "alpha"}}
	vlans := []store.VLAN{{ID: 1, VID: 10, FabricID: 1}}
	subnets := []store.Subnet{
		{ID: 1, CIDR: "10.0.0.0/24", VLANID: 1},
		{ID: 2, CIDR: "10.0.1.0/24", VLANID: 1},
	}

	rows := FabricRows(fabrics, vlans, subnets, nil)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].FabricName == "" || rows[0].VLANName == "" {
		t.Fatalf("first row must show both labels: %+v", rows[0])
	}
	if rows[1].FabricName != "" || rows[1].VLANName != "" {
		t.Fatalf("second row of the same vlan must suppress both labels: %q %q",
			rows[1].FabricName, rows[1].VLANName)
	}
	if rows[1].SubnetName != "10.0.1.0/24" {
		t.Fatalf("subnet label = %q", rows[1].SubnetName)
	}
}

func TestFabricRows_SpaceResolvedFromSubnet(t *testing.T) {
	fabrics := []store.Fabric{{ID: 1, Name: "alpha"}}
	vlans := []store.VLAN{{ID: 1, VID: 0, FabricID: 1}}
	spaces := []store.Space{{ID: 9, Name: "dmz"}}
	subnets := []store.Subnet{
		{ID: 1, CIDR: "10.0.0.0/24", VLANID: 1, SpaceID: int64p(9)},
		{ID: 2, CIDR: "10.0.1.0/24", VLANID: 1},
	}

	rows := FabricRows(fabrics, vlans, subnets, spaces)
	if rows[0].Space == nil || rows[0].SpaceName != "dmz" {
		t.Fatalf("row0 space = %+v %q", rows[0].Space, rows[0].SpaceName)
	}
	if rows[1].Space != nil || rows[1].SpaceName != "" {
		t.Fatalf("row1 should carry no space, got %+v %q", rows[1].Space, rows[1].SpaceName)
	}
}

func TestFabricRows_MissingReferencesAreTolerated(t *testing.T) {
	fabrics := []store.Fabric{{ID: 1, Name: "alpha"}}
	vlans := []store.VLAN{{ID: 1, VID: 0, FabricID: 1}}
	// The space collection has not arrived yet; the subnet still renders.
	subnets := []store.Subnet{
		{ID: 1, CIDR: "10.0.0.0/24", VLANID: 1, SpaceID: int64p(42)},
	}

	rows := FabricRows(fabrics, vlans, subnets, nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Space != nil || rows[0].SpaceName != "" {
		t.Fatalf("unresolved space must render empty, got %+v %q", rows[0].Space, rows[0].SpaceName)
	}
	if rows[0].SubnetName != "10.0.0.0/24" {
		t.Fatalf("subnet label = %q", rows[0].SubnetName)
	}
}

func TestFabricRows_SubnetNameEqualToCIDR(t *testing.T) {
	fabrics := []store.Fabric{{ID: 1, Name: "alpha"}}
	vlans := []store.VLAN{{ID: 1, VID: 0, FabricID: 1}}
	subnets := []store.Subnet{
		{ID: 1, CIDR: "10.0.0.0/24", Name: "10.0.0.0/24", VLANID: 1},
	}

	rows := FabricRows(fabrics, vlans, subnets, nil)
	if rows[0].SubnetName != "10.0.0.0/24" {
		t.Fatalf("subnet label = %q, want bare cidr", rows[0].SubnetName)
	}
}

func TestFabricRows_Idempotent(t *testing.T) {
	fabrics := []store.Fabric{{ID: 1, Name: "alpha"}, {ID: 2, Name: "beta"}}
	vlans := []store.VLAN{
		{ID: 1, VID: 0, FabricID: 1},
		{ID: 2, VID: 10, Name: "storage", FabricID: 1},
		{ID: 3, VID: 0, FabricID: 2},
	}
	subnets := []store.Subnet{
		{ID: 1, CIDR: "10.0.0.0/24", VLANID: 1},
		{ID: 2, CIDR: "10.1.0.0/24", VLANID: 2, SpaceID: int64p(1)},
	}
	spaces := []store.Space{{ID: 1, Name: "dmz"}}

	first := FabricRows(fabrics, vlans, subnets, spaces)
	second := FabricRows(fabrics, vlans, subnets, spaces)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recomputation with unchanged inputs differed:\n%+v\n%+v", first, second)
	}
}

func TestSpaceRows_GroupsAndSuppresses(t *testing.T) {
	fabrics := []store.Fabric{{ID: 1, Name: "alpha"}}
	vlans := []store.VLAN{{ID: 1, VID: 10, Name: "storage", FabricID: 1}}
	spaces := []store.Space{
		{ID: 1, Name: "dmz"},
		{ID: 2, Name: "core"},
	}
	subnets := []store.Subnet{
		{ID: 1, CIDR: "10.0.9.0/24", VLANID: 1, SpaceID: int64p(1)},
		{ID: 2, CIDR: "10.0.1.0/24", VLANID: 1, SpaceID: int64p(1)},
	}

	rows := SpaceRows(spaces, subnets, vlans, fabrics)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Spaces in name order: core first, then dmz's two subnets in CIDR order.
	if rows[0].SpaceName != "core" || rows[0].Subnet != nil {
		t.Fatalf("row0 = %q %+v", rows[0].SpaceName, rows[0].Subnet)
	}
	if rows[1].SpaceName != "dmz" || rows[1].Subnet.CIDR != "10.0.1.0/24" {
		t.Fatalf("row1 = %q %+v", rows[1].SpaceName, rows[1].Subnet)
	}
	if rows[2].SpaceName != "" || rows[2].Subnet.CIDR != "10.0.9.0/24" {
		t.Fatalf("row2 = %q %+v", rows[2].SpaceName, rows[2].Subnet)
	}

	// Fabric and VLAN labels show on every subnet-bearing row.
	for _, r := range rows[1:] {
		if r.FabricName != "alpha" || r.VLANName != "10 (storage)" {
			t.Fatalf("labels = %q %q", r.FabricName, r.VLANName)
		}
	}
}

func TestSpaceRows_EmptySpaceStaysVisible(t *testing.T) {
	spaces := []store.Space{{ID: 1, Name: "lonely"}}

	rows := SpaceRows(spaces, nil, nil, nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.SpaceName != "lonely" {
		t.Fatalf("space label = %q", r.SpaceName)
	}
	if r.Fabric != nil || r.VLAN != nil || r.Subnet != nil {
		t.Fatalf("empty space row must carry only the space: %+v", r)
	}
}

func TestSpaceRows_MissingVLANAndFabricTolerated(t *testing.T) {
	spaces := []store.Space{{ID: 1, Name: "dmz"}}
	subnets := []store.Subnet{
		{ID: 1, CIDR: "10.0.0.0/24", VLANID: 7, SpaceID: int64p(1)},
	}

	rows := SpaceRows(spaces, subnets, nil, nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	r := rows[0]
	if r.VLAN != nil || r.Fabric != nil {
		t.Fatalf("unresolved references must stay nil: %+v", r)
	}
	if r.VLANName != "" || r.FabricName != "" {
		t.Fatalf("unresolved labels must be empty: %q %q", r.VLANName, r.FabricName)
	}
	if r.SubnetName != "10.0.0.0/24" {
		t.Fatalf("subnet label = %q", r.SubnetName)
	}
}

func TestSpaceRows_Idempotent(t *testing.T) {
	spaces := []store.Space{{ID: 1, Name: "dmz"}, {ID: 2, Name: "core"}}
	subnets := []store.Subnet{
		{ID: 1, CIDR: "10.0.0.0/24", VLANID: 1, SpaceID: int64p(1)},
	}
	vlans := []store.VLAN{{ID: 1, VID: 0, FabricID: 1}}
	fabrics := []store.Fabric{{ID: 1, Name: "alpha"}}

	first := SpaceRows(spaces, subnets, vlans, fabrics)
	second := SpaceRows(spaces, subnets, vlans, fabrics)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("recomputation with unchanged inputs differed")
	}
}

func TestFabricRows_DoesNotMutateInputs(t *testing.T) {
	fabrics := []store.Fabric{{ID: 2, Name: "zebra"}, {ID: 1, Name: "alpha"}}
	vlans := []store.VLAN{{ID: 2, VID: 30, FabricID: 1}, {ID: 1, VID: 0, FabricID: 1}}

	FabricRows(fabrics, vlans, nil, nil)

	if fabrics[0].ID != 2 || fabrics[1].ID != 1 {
		t.Fatalf("fabric input order changed: %+v", fabrics)
	}
	if vlans[0].ID != 2 || vlans[1].ID != 1 {
		t.Fatalf("vlan input order changed: %+v", vlans)
	}
}
