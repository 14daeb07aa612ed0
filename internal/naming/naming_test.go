package naming

import "testing"

func TestFabricLabel(t *testing.T) {
	cases := []struct {
		name   string
		id     int64
		fabric string
		want   string
	}{
		{"named", 3, "dc1-fabric", "dc1-fabric"},
		{"empty falls back to default", 3, "", "fabric-3"},
		{"whitespace falls back to default", 7, "   ", "fabric-7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FabricLabel(tc.id, tc.fabric); got != tc.want {
				t.Fatalf("FabricLabel(%d, %q) = %q, want %q", tc.id, tc.fabric, got, tc.want)
			}
		})
	}
}

func TestSpaceLabel(t *testing.T) {
	if got := SpaceLabel(2, "dmz"); got != "dmz" {
		t.Fatalf("expected dmz, got %q", got)
	}
	if got := SpaceLabel(2, ""); got != "space-2" {
		t.Fatalf("expected space-2, got %q", got)
	}
}

func TestVLANLabel(t *testing.T) {
	cases := []struct {
		name string
		vid  int
		vlan string
		want string
	}{
		{"untagged without name", 0, "", "untagged"},
		{"untagged with name", 0, "default", "untagged (default)"},
		{"tagged without name", 10, "", "10"},
		{"tagged with name", 10, "storage", "10 (storage)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VLANLabel(tc.vid, tc.vlan); got != tc.want {
				t.Fatalf("VLANLabel(%d, %q) = %q, want %q", tc.vid, tc.vlan, got, tc.want)
			}
		})
	}
}

func TestSubnetLabel(t *testing.T) {
	cases := []struct {
		name   string
		cidr   string
		subnet string
		want   string
	}{
		{"no name", "10.0.0.0/24", "", "10.0.0.0/24"},
		{"name equals cidr", "10.0.0.0/24", "10.0.0.0/24", "10.0.0.0/24"},
		{"distinct name", "10.0.0.0/24", "mgmt", "10.0.0.0/24 (mgmt)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SubnetLabel(tc.cidr, tc.subnet); got != tc.want {
				t.Fatalf("SubnetLabel(%q, %q) = %q, want %q", tc.cidr, tc.subnet, got, tc.want)
			}
		})
	}
}
