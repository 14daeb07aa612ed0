package httpapi

import (
	"net/http"
	"sync"
	"time"

	"fabricview/internal/manager"
	"fabricview/internal/topology"
)

// topologyRow is the wire shape of one rendered table line. The *_name
// fields carry the display labels with repeated leading labels suppressed
// to empty strings; clients render them verbatim and must not re-sort.
type topologyRow struct {
	FabricID   *int64 `json:"fabric_id"`
	FabricName string `json:"fabric_name"`
	VLANID     *int64 `json:"vlan_id"`
	VLANName   string `json:"vlan_name"`
	SubnetID   *int64 `json:"subnet_id"`
	SubnetName string `json:"subnet_name"`
	SpaceID    *int64 `json:"space_id"`
	SpaceName  string `json:"space_name"`
}

type topologyResponse struct {
	Grouping   string        `json:"grouping"`
	Generation uint64        `json:"generation"`
	Rows       []topologyRow `json:"rows"`
}

// topologyCache keeps the last rendered table per grouping, keyed by the
// manager generation that produced it. Collections only change through
// manager mutations or reloads, both of which bump the generation, so a
// generation match means the cached rows are still exact.
type topologyCache struct {
	mu     sync.Mutex
	fabric cachedTable
	space  cachedTable
}

type cachedTable struct {
	generation uint64
	rows       []topologyRow
	valid      bool
}

func toTopologyRow(r topology.Row) topologyRow {
	out := topologyRow{
		FabricName: r.FabricName,
		VLANName:   r.VLANName,
		SubnetName: r.SubnetName,
		SpaceName:  r.SpaceName,
	}
	if r.Fabric != nil {
		id := r.Fabric.ID
		out.FabricID = &id
	}
	if r.VLAN != nil {
		id := r.VLAN.ID
		out.VLANID = &id
	}
	if r.Subnet != nil {
		id := r.Subnet.ID
		out.SubnetID = &id
	}
	if r.Space != nil {
		id := r.Space.ID
		out.SpaceID = &id
	}
	return out
}

func (h *Handler) handleTopologyByFabric(w http.ResponseWriter, r *http.Request) {
	snap := h.mgr.Snapshot()

	h.topoCache.mu.Lock()
	if h.topoCache.fabric.valid && h.topoCache.fabric.generation == snap.Generation {
		rows := h.topoCache.fabric.rows
		h.topoCache.mu.Unlock()
		h.writeJSON(w, http.StatusOK, topologyResponse{Grouping: "fabric", Generation: snap.Generation, Rows: rows})
		return
	}
	h.topoCache.mu.Unlock()

	start := time.Now()
	rows := buildFabricTable(snap)
	h.metrics.ObserveTopologyBuild("fabric", time.Since(start))

	h.topoCache.mu.Lock()
	h.topoCache.fabric = cachedTable{generation: snap.Generation, rows: rows, valid: true}
	h.topoCache.mu.Unlock()

	h.writeJSON(w, http.StatusOK, topologyResponse{Grouping: "fabric", Generation: snap.Generation, Rows: rows})
}

func (h *Handler) handleTopologyBySpace(w http.ResponseWriter, r *http.Request) {
	snap := h.mgr.Snapshot()

	h.topoCache.mu.Lock()
	if h.topoCache.space.valid && h.topoCache.space.generation == snap.Generation {
		rows := h.topoCache.space.rows
		h.topoCache.mu.Unlock()
		h.writeJSON(w, http.StatusOK, topologyResponse{Grouping: "space", Generation: snap.Generation, Rows: rows})
		return
	}
	h.topoCache.mu.Unlock()

	start := time.Now()
	rows := buildSpaceTable(snap)
	h.metrics.ObserveTopologyBuild("space", time.Since(start))

	h.topoCache.mu.Lock()
	h.topoCache.space = cachedTable{generation: snap.Generation, rows: rows, valid: true}
	h.topoCache.mu.Unlock()

	h.writeJSON(w, http.StatusOK, topologyResponse{Grouping: "space", Generation: snap.Generation, Rows: rows})
}

func buildFabricTable(snap manager.Snapshot) []topologyRow {
	rows := topology.FabricRows(snap.Fabrics, snap.VLANs, snap.Subnets, snap.Spaces)
	out := make([]topologyRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, toTopologyRow(r))
	}
	return out
}

func buildSpaceTable(snap manager.Snapshot) []topologyRow {
	rows := topology.SpaceRows(snap.Spaces, snap.Subnets, snap.VLANs, snap.Fabrics)
	out := make([]topologyRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, toTopologyRow(r))
	}
	return out
}
