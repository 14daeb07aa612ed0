// Package topology flattens the fabric/VLAN/subnet/space collections into
// the two row lists the console's network tables render: one grouped by
// fabric, one grouped by space. Both computations are pure functions of
// their inputs; they never mutate the entities and never fail, even when a
// reference points at an entity that has not been loaded yet.
package topology

import (
	"sort"

	"fabricview/internal/naming"
	"fabricview/internal/store"
)

// Row is one rendered table line. The entity pointers carry the full
// records for the view; the *Name fields are the display labels with
// repeated leading labels already suppressed (empty string means "same as
// the row above"). A nil entity pointer means the row has no such entity,
// or the referenced entity has not arrived yet.
type Row struct {
	Fabric *store.Fabric
	VLAN   *store.VLAN
	Subnet *store.Subnet
	Space  *store.Space

	FabricName string
	VLANName   string
	SubnetName string
	SpaceName  string
}

// FabricRows groups the topology by fabric: fabrics in name order, each
// fabric's VLANs in vid order, each VLAN's subnets in input order. A VLAN
// with no subnets still gets exactly one row so it stays visible.
//
// Fabric labels are shown only on the first row of a fabric group. VLAN
// labels repeat only across a fabric boundary: a row keeps its VLAN label
// whenever the fabric changed from the previous row, even if the VLAN id
// matches, since vid comparisons only mean anything within one fabric.
// The returned order is the display order; callers must not re-sort.
func FabricRows(fabrics []store.Fabric, vlans []store.VLAN, subnets []store.Subnet, spaces []store.Space) []Row {
	ordered := make([]store.Fabric, len(fabrics))
	copy(ordered, fabrics)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	vlansByFabric := make(map[int64][]*store.VLAN, len(fabrics))
	for i := range vlans {
		v := &vlans[i]
		vlansByFabric[v.FabricID] = append(vlansByFabric[v.FabricID], v)
	}
	for _, group := range vlansByFabric {
		sort.SliceStable(group, func(i, j int) bool { return group[i].VID < group[j].VID })
	}

	subnetsByVLAN := make(map[int64][]*store.Subnet, len(vlans))
	for i := range subnets {
		s := &subnets[i]
		subnetsByVLAN[s.VLANID] = append(subnetsByVLAN[s.VLANID], s)
	}

	spacesByID := make(map[int64]*store.Space, len(spaces))
	for i := range spaces {
		spacesByID[spaces[i].ID] = &spaces[i]
	}

	rows := []Row{}
	var prevFabric *store.Fabric
	var prevVLAN *store.VLAN

	emit := func(fabric *store.Fabric, vlan *store.VLAN, subnet *store.Subnet) {
		row := Row{Fabric: fabric, VLAN: vlan, Subnet: subnet}

		showFabric := prevFabric == nil || prevFabric.ID != fabric.ID
		if showFabric {
			row.FabricName = naming.FabricLabel(fabric.ID, fabric.Name)
		}
		if showFabric || prevVLAN == nil || prevVLAN.ID != vlan.ID {
			row.VLANName = naming.VLANLabel(vlan.VID, vlan.Name)
		}

		if subnet != nil {
			row.SubnetName = naming.SubnetLabel(subnet.CIDR, subnet.Name)
			if subnet.SpaceID != nil {
				if sp := spacesByID[*subnet.SpaceID]; sp != nil {
					row.Space = sp
					row.SpaceName = naming.SpaceLabel(sp.ID, sp.Name)
				}
			}
		}

		prevFabric = fabric
		prevVLAN = vlan
		rows = append(rows, row)
	}

	for i := range ordered {
		fabric := &ordered[i]
		for _, vlan := range vlansByFabric[fabric.ID] {
			group := subnetsByVLAN[vlan.ID]
			if len(group) == 0 {
				emit(fabric, vlan, nil)
				continue
			}
			for _, subnet := range group {
				emit(fabric, vlan, subnet)
			}
		}
	}
	return rows
}

// SpaceRows groups the topology by space: spaces in name order, each
// space's subnets in CIDR order, with the owning VLAN and fabric resolved
// per subnet. A space with no subnets still gets exactly one row. Only the
// space label is suppressed on repeats; fabric and VLAN labels are shown
// on every row since neither groups the table here.
func SpaceRows(spaces []store.Space, subnets []store.Subnet, vlans []store.VLAN, fabrics []store.Fabric) []Row {
	ordered := make([]store.Space, len(spaces))
	copy(ordered, spaces)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	subnetsBySpace := make(map[int64][]*store.Subnet, len(spaces))
	for i := range subnets {
		s := &subnets[i]
		if s.SpaceID == nil {
			continue
		}
		subnetsBySpace[*s.SpaceID] = append(subnetsBySpace[*s.SpaceID], s)
	}
	for _, group := range subnetsBySpace {
		sort.SliceStable(group, func(i, j int) bool { return group[i].CIDR < group[j].CIDR })
	}

	vlansByID := make(map[int64]*store.VLAN, len(vlans))
	for i := range vlans {
		vlansByID[vlans[i].ID] = &vlans[i]
	}
	fabricsByID := make(map[int64]*store.Fabric, len(fabrics))
	for i := range fabrics {
		fabricsByID[fabrics[i].ID] = &fabrics[i]
	}

	rows := []Row{}
	var prevSpace *store.Space

	for i := range ordered {
		space := &ordered[i]
		label := ""
		if prevSpace == nil || prevSpace.ID != space.ID {
			label = naming.SpaceLabel(space.ID, space.Name)
		}

		group := subnetsBySpace[space.ID]
		if len(group) == 0 {
			rows = append(rows, Row{Space: space, SpaceName: label})
			prevSpace = space
			continue
		}

		for _, subnet := range group {
			row := Row{Space: space, Subnet: subnet, SpaceName: label}
			if prevSpace != nil && prevSpace.ID == space.ID {
				row.SpaceName = ""
			}
			row.SubnetName = naming.SubnetLabel(subnet.CIDR, subnet.Name)

			if vlan := vlansByID[subnet.VLANID]; vlan != nil {
				row.VLAN = vlan
				row.VLANName = naming.VLANLabel(vlan.VID, vlan.Name)
				if fabric := fabricsByID[vlan.FabricID]; fabric != nil {
					row.Fabric = fabric
					row.FabricName = naming.FabricLabel(fabric.ID, fabric.Name)
				}
			}

			prevSpace = space
			rows = append(rows, row)
		}
	}
	return rows
}
