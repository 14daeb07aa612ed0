package store

import "time"

type Fabric struct {
	ID   int64
	Name string
}

type VLAN struct {
	ID       int64
	VID      int
	Name     string
	FabricID int64
}

type Subnet struct {
	ID      int64
	CIDR    string
	Name    string
	VLANID  int64
	SpaceID *int64
}

type Space struct {
	ID   int64
	Name string
}

type Zone struct {
	ID          int64
	Name        string
	Description string
}

type Domain struct {
	ID            int64
	Name          string
	Authoritative bool
}

type Node struct {
	ID       int64
	SystemID string
	Hostname string
	Address  *string
	Status   string
	ZoneID   *int64
	DomainID *int64
}

type SyncRun struct {
	ID          string
	Status      string
	Stats       map[string]any
	StartedAt   time.Time
	CompletedAt *time.Time
	LastError   *string
}
