package naming

import (
	"fmt"
	"strconv"
	"strings"
)

// Label helpers for the console's topology tables. These format a single
// entity; repeated-label suppression across rows is the topology package's
// concern.

// FabricLabel returns the fabric's name, or "fabric-<id>" when the name is
// empty. New fabrics are created unnamed and pick up the default label
// until an operator renames them.
func FabricLabel(id int64, name string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return fmt.Sprintf("fabric-%d", id)
}

// SpaceLabel returns the space's name, or "space-<id>" when the name is
// empty.
func SpaceLabel(id int64, name string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return fmt.Sprintf("space-%d", id)
}

// VLANLabel renders a VLAN for display: "untagged" for vid 0, otherwise
// the numeric vid, with the VLAN's own name appended in parentheses when
// non-empty.
func VLANLabel(vid int, name string) string {
	label := "untagged"
	if vid != 0 {
		label = strconv.Itoa(vid)
	}
	if strings.TrimSpace(name) != "" {
		label += " (" + name + ")"
	}
	return label
}

// SubnetLabel renders a subnet for display: the CIDR, with the subnet's
// name appended in parentheses only when the name is non-empty and differs
// from the CIDR.
func SubnetLabel(cidr, name string) string {
	if strings.TrimSpace(name) == "" || name == cidr {
		return cidr
	}
	return cidr + " (" + name + ")"
}
