package httpapi

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/go-chi/chi/v5"

	"fabricview/internal/store"
)

type fabric struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type fabricPayload struct {
	Name string `json:"name"`
}

type vlan struct {
	ID       int64  `json:"id"`
	VID      int    `json:"vid"`
	Name     string `json:"name"`
	FabricID int64  `json:"fabric_id"`
}

type vlanPayload struct {
	VID      int    `json:"vid"`
	Name     string `json:"name"`
	FabricID int64  `json:"fabric_id"`
}

type subnet struct {
	ID      int64  `json:"id"`
	CIDR    string `json:"cidr"`
	Name    string `json:"name"`
	VLANID  int64  `json:"vlan_id"`
	SpaceID *int64 `json:"space_id"`
}

type subnetPayload struct {
	CIDR    string `json:"cidr"`
	Name    string `json:"name"`
	VLANID  int64  `json:"vlan_id"`
	SpaceID *int64 `json:"space_id"`
}

type space struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type spacePayload struct {
	Name string `json:"name"`
}

type zone struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type zonePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type domain struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Authoritative bool   `json:"authoritative"`
}

type domainPayload struct {
	Name          string `json:"name"`
	Authoritative bool   `json:"authoritative"`
}

type node struct {
	ID       int64   `json:"id"`
	SystemID string  `json:"system_id"`
	Hostname string  `json:"hostname"`
	Address  *string `json:"address"`
	Status   string  `json:"status"`
	ZoneID   *int64  `json:"zone_id"`
	DomainID *int64  `json:"domain_id"`
}

type nodePayload struct {
	SystemID string  `json:"system_id,omitempty"`
	Hostname string  `json:"hostname"`
	Address  *string `json:"address"`
	Status   string  `json:"status"`
	ZoneID   *int64  `json:"zone_id"`
	DomainID *int64  `json:"domain_id"`
}

func toFabric(f store.Fabric) fabric { return fabric{ID: f.ID, Name: f.Name} }
func toVLAN(v store.VLAN) vlan {
	return vlan{ID: v.ID, VID: v.VID, Name: v.Name, FabricID: v.FabricID}
}
func toSubnet(s store.Subnet) subnet {
	return subnet{ID: s.ID, CIDR: s.CIDR, Name: s.Name, VLANID: s.VLANID, SpaceID: s.SpaceID}
}
func toSpace(s store.Space) space { return space{ID: s.ID, Name: s.Name} }
func toZone(z store.Zone) zone {
	return zone{ID: z.ID, Name: z.Name, Description: z.Description}
}
func toDomain(d store.Domain) domain {
	return domain{ID: d.ID, Name: d.Name, Authoritative: d.Authoritative}
}
func toNode(n store.Node) node {
	return node{ID: n.ID, SystemID: n.SystemID, Hostname: n.Hostname, Address: n.Address,
		Status: n.Status, ZoneID: n.ZoneID, DomainID: n.DomainID}
}

// canonicalCIDR validates a user-entered CIDR and returns its masked form,
// so "10.0.0.5/24" is rejected rather than silently truncated.
func canonicalCIDR(raw string) (string, bool) {
	prefix, err := netip.ParsePrefix(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	if prefix.Addr() != prefix.Masked().Addr() {
		return "", false
	}
	return prefix.Masked().String(), true
}

func (h *Handler) requireValidID(w http.ResponseWriter, r *http.Request, entity string) (int64, bool) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_id", entity+" id is not an integer", map[string]any{"id": chi.URLParam(r, "id")})
		return 0, false
	}
	return id, true
}

// ---- fabrics ----

func (h *Handler) handleListFabrics(w http.ResponseWriter, r *http.Request) {
	snap := h.mgr.Snapshot()
	resp := make([]fabric, 0, len(snap.Fabrics))
	for _, f := range snap.Fabrics {
		resp = append(resp, toFabric(f))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetFabric(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "fabric")
	if !ok {
		return
	}
	for _, f := range h.mgr.Snapshot().Fabrics {
		if f.ID == id {
			h.writeJSON(w, http.StatusOK, toFabric(f))
			return
		}
	}
	h.writeError(w, http.StatusNotFound, "not_found", "fabric not found", map[string]any{"id": id})
}

func (h *Handler) handleCreateFabric(w http.ResponseWriter, r *http.Request) {
	var req fabricPayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "name is required", nil)
		return
	}

	row, err := h.mgr.CreateFabric(r.Context(), req.Name)
	if err != nil {
		h.writeMutationError(w, err, "fabric", nil)
		return
	}
	h.writeJSON(w, http.StatusCreated, toFabric(row))
}

func (h *Handler) handleUpdateFabric(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "fabric")
	if !ok {
		return
	}
	var req fabricPayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "name is required", nil)
		return
	}

	row, err := h.mgr.UpdateFabric(r.Context(), id, req.Name)
	if err != nil {
		h.writeMutationError(w, err, "fabric", id)
		return
	}
	h.writeJSON(w, http.StatusOK, toFabric(row))
}

func (h *Handler) handleDeleteFabric(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "fabric")
	if !ok {
		return
	}
	if err := h.mgr.DeleteFabric(r.Context(), id); err != nil {
		h.writeMutationError(w, err, "fabric", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- vlans ----

func (h *Handler) handleListVLANs(w http.ResponseWriter, r *http.Request) {
	snap := h.mgr.Snapshot()
	resp := make([]vlan, 0, len(snap.VLANs))
	for _, v := range snap.VLANs {
		resp = append(resp, toVLAN(v))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetVLAN(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "vlan")
	if !ok {
		return
	}
	for _, v := range h.mgr.Snapshot().VLANs {
		if v.ID == id {
			h.writeJSON(w, http.StatusOK, toVLAN(v))
			return
		}
	}
	h.writeError(w, http.StatusNotFound, "not_found", "vlan not found", map[string]any{"id": id})
}

func (h *Handler) validVLANPayload(w http.ResponseWriter, req vlanPayload) bool {
	if req.VID < 0 || req.VID > 4094 {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "vid must be between 0 and 4094", map[string]any{"vid": req.VID})
		return false
	}
	if req.FabricID <= 0 {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "fabric_id is required", nil)
		return false
	}
	return true
}

func (h *Handler) handleCreateVLAN(w http.ResponseWriter, r *http.Request) {
	var req vlanPayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	if !h.validVLANPayload(w, req) {
		return
	}

	row, err := h.mgr.CreateVLAN(r.Context(), store.CreateVLANParams{
		VID:      req.VID,
		Name:     req.Name,
		FabricID: req.FabricID,
	})
	if err != nil {
		h.writeMutationError(w, err, "vlan", nil)
		return
	}
	h.writeJSON(w, http.StatusCreated, toVLAN(row))
}

func (h *Handler) handleUpdateVLAN(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "vlan")
	if !ok {
		return
	}
	var req vlanPayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	if !h.validVLANPayload(w, req) {
		return
	}

	row, err := h.mgr.UpdateVLAN(r.Context(), store.UpdateVLANParams{
		ID:       id,
		VID:      req.VID,
		Name:     req.Name,
		FabricID: req.FabricID,
	})
	if err != nil {
		h.writeMutationError(w, err, "vlan", id)
		return
	}
	h.writeJSON(w, http.StatusOK, toVLAN(row))
}

func (h *Handler) handleDeleteVLAN(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "vlan")
	if !ok {
		return
	}
	if err := h.mgr.DeleteVLAN(r.Context(), id); err != nil {
		h.writeMutationError(w, err, "vlan", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- subnets ----

func (h *Handler) handleListSubnets(w http.ResponseWriter, r *http.Request) {
	snap := h.mgr.Snapshot()
	resp := make([]subnet, 0, len(snap.Subnets))
	for _, s := range snap.Subnets {
		resp = append(resp, toSubnet(s))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetSubnet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "subnet")
	if !ok {
		return
	}
	for _, s := range h.mgr.Snapshot().Subnets {
		if s.ID == id {
			h.writeJSON(w, http.StatusOK, toSubnet(s))
			return
		}
	}
	h.writeError(w, http.StatusNotFound, "not_found", "subnet not found", map[string]any{"id": id})
}

func (h *Handler) handleCreateSubnet(w http.ResponseWriter, r *http.Request) {
	var req subnetPayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	cidr, ok := canonicalCIDR(req.CIDR)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "cidr is not a valid network prefix", map[string]any{"cidr": req.CIDR})
		return
	}
	if req.VLANID <= 0 {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "vlan_id is required", nil)
		return
	}

	row, err := h.mgr.CreateSubnet(r.Context(), store.CreateSubnetParams{
		CIDR:    cidr,
		Name:    req.Name,
		VLANID:  req.VLANID,
		SpaceID: req.SpaceID,
	})
	if err != nil {
		h.writeMutationError(w, err, "subnet", nil)
		return
	}
	h.writeJSON(w, http.StatusCreated, toSubnet(row))
}

func (h *Handler) handleUpdateSubnet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "subnet")
	if !ok {
		return
	}
	var req subnetPayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	cidr, okCIDR := canonicalCIDR(req.CIDR)
	if !okCIDR {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "cidr is not a valid network prefix", map[string]any{"cidr": req.CIDR})
		return
	}
	if req.VLANID <= 0 {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "vlan_id is required", nil)
		return
	}

	row, err := h.mgr.UpdateSubnet(r.Context(), store.UpdateSubnetParams{
		ID:      id,
		CIDR:    cidr,
		Name:    req.Name,
		VLANID:  req.VLANID,
		SpaceID: req.SpaceID,
	})
	if err != nil {
		h.writeMutationError(w, err, "subnet", id)
		return
	}
	h.writeJSON(w, http.StatusOK, toSubnet(row))
}

func (h *Handler) handleDeleteSubnet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "subnet")
	if !ok {
		return
	}
	if err := h.mgr.DeleteSubnet(r.Context(), id); err != nil {
		h.writeMutationError(w, err, "subnet", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- spaces ----

func (h *Handler) handleListSpaces(w http.ResponseWriter, r *http.Request) {
	snap := h.mgr.Snapshot()
	resp := make([]space, 0, len(snap.Spaces))
	for _, s := range snap.Spaces {
		resp = append(resp, toSpace(s))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetSpace(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "space")
	if !ok {
		return
	}
	for _, s := range h.mgr.Snapshot().Spaces {
		if s.ID == id {
			h.writeJSON(w, http.StatusOK, toSpace(s))
			return
		}
	}
	h.writeError(w, http.StatusNotFound, "not_found", "space not found", map[string]any{"id": id})
}

func (h *Handler) handleCreateSpace(w http.ResponseWriter, r *http.Request) {
	var req spacePayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "name is required", nil)
		return
	}

	row, err := h.mgr.CreateSpace(r.Context(), req.Name)
	if err != nil {
		h.writeMutationError(w, err, "space", nil)
		return
	}
	h.writeJSON(w, http.StatusCreated, toSpace(row))
}

func (h *Handler) handleUpdateSpace(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "space")
	if !ok {
		return
	}
	var req spacePayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "name is required", nil)
		return
	}

	row, err := h.mgr.UpdateSpace(r.Context(), id, req.Name)
	if err != nil {
		h.writeMutationError(w, err, "space", id)
		return
	}
	h.writeJSON(w, http.StatusOK, toSpace(row))
}

func (h *Handler) handleDeleteSpace(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "space")
	if !ok {
		return
	}
	if err := h.mgr.DeleteSpace(r.Context(), id); err != nil {
		h.writeMutationError(w, err, "space", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- zones ----

func (h *Handler) handleListZones(w http.ResponseWriter, r *http.Request) {
	snap := h.mgr.Snapshot()
	resp := make([]zone, 0, len(snap.Zones))
	for _, z := range snap.Zones {
		resp = append(resp, toZone(z))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetZone(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "zone")
	if !ok {
		return
	}
	for _, z := range h.mgr.Snapshot().Zones {
		if z.ID == id {
			h.writeJSON(w, http.StatusOK, toZone(z))
			return
		}
	}
	h.writeError(w, http.StatusNotFound, "not_found", "zone not found", map[string]any{"id": id})
}

func (h *Handler) handleCreateZone(w http.ResponseWriter, r *http.Request) {
	var req zonePayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "name is required", nil)
		return
	}

	row, err := h.mgr.CreateZone(r.Context(), req.Name, req.Description)
	if err != nil {
		h.writeMutationError(w, err, "zone", nil)
		return
	}
	h.writeJSON(w, http.StatusCreated, toZone(row))
}

func (h *Handler) handleUpdateZone(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "zone")
	if !ok {
		return
	}
	var req zonePayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "name is required", nil)
		return
	}

	row, err := h.mgr.UpdateZone(r.Context(), id, req.Name, req.Description)
	if err != nil {
		h.writeMutationError(w, err, "zone", id)
		return
	}
	h.writeJSON(w, http.StatusOK, toZone(row))
}

func (h *Handler) handleDeleteZone(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "zone")
	if !ok {
		return
	}
	if err := h.mgr.DeleteZone(r.Context(), id); err != nil {
		h.writeMutationError(w, err, "zone", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- domains ----

func (h *Handler) handleListDomains(w http.ResponseWriter, r *http.Request) {
	snap := h.mgr.Snapshot()
	resp := make([]domain, 0, len(snap.Domains))
	for _, d := range snap.Domains {
		resp = append(resp, toDomain(d))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetDomain(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "domain")
	if !ok {
		return
	}
	for _, d := range h.mgr.Snapshot().Domains {
		if d.ID == id {
			h.writeJSON(w, http.StatusOK, toDomain(d))
			return
		}
	}
	h.writeError(w, http.StatusNotFound, "not_found", "domain not found", map[string]any{"id": id})
}

func (h *Handler) handleCreateDomain(w http.ResponseWriter, r *http.Request) {
	var req domainPayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "name is required", nil)
		return
	}

	row, err := h.mgr.CreateDomain(r.Context(), req.Name, req.Authoritative)
	if err != nil {
		h.writeMutationError(w, err, "domain", nil)
		return
	}
	h.writeJSON(w, http.StatusCreated, toDomain(row))
}

func (h *Handler) handleUpdateDomain(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "domain")
	if !ok {
		return
	}
	var req domainPayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "name is required", nil)
		return
	}

	row, err := h.mgr.UpdateDomain(r.Context(), id, req.Name, req.Authoritative)
	if err != nil {
		h.writeMutationError(w, err, "domain", id)
		return
	}
	h.writeJSON(w, http.StatusOK, toDomain(row))
}

func (h *Handler) handleDeleteDomain(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "domain")
	if !ok {
		return
	}
	if err := h.mgr.DeleteDomain(r.Context(), id); err != nil {
		h.writeMutationError(w, err, "domain", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- nodes ----

func (h *Handler) handleListNodes(w http.ResponseWriter, r *http.Request) {
	snap := h.mgr.Snapshot()
	resp := make([]node, 0, len(snap.Nodes))
	for _, n := range snap.Nodes {
		resp = append(resp, toNode(n))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetNode(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "node")
	if !ok {
		return
	}
	for _, n := range h.mgr.Snapshot().Nodes {
		if n.ID == id {
			h.writeJSON(w, http.StatusOK, toNode(n))
			return
		}
	}
	h.writeError(w, http.StatusNotFound, "not_found", "node not found", map[string]any{"id": id})
}

func (h *Handler) handleCreateNode(w http.ResponseWriter, r *http.Request) {
	var req nodePayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.SystemID) == "" {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "system_id is required", nil)
		return
	}
	status := req.Status
	if status == "" {
		status = "new"
	}

	row, err := h.mgr.CreateNode(r.Context(), store.CreateNodeParams{
		SystemID: req.SystemID,
		Hostname: req.Hostname,
		Address:  req.Address,
		Status:   status,
		ZoneID:   req.ZoneID,
		DomainID: req.DomainID,
	})
	if err != nil {
		h.writeMutationError(w, err, "node", nil)
		return
	}
	h.writeJSON(w, http.StatusCreated, toNode(row))
}

func (h *Handler) handleUpdateNode(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "node")
	if !ok {
		return
	}
	var req nodePayload
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "validation_failed", "invalid json body", map[string]any{"error": err.Error()})
		return
	}
	status := req.Status
	if status == "" {
		status = "new"
	}

	row, err := h.mgr.UpdateNode(r.Context(), store.UpdateNodeParams{
		ID:       id,
		Hostname: req.Hostname,
		Address:  req.Address,
		Status:   status,
		ZoneID:   req.ZoneID,
		DomainID: req.DomainID,
	})
	if err != nil {
		h.writeMutationError(w, err, "node", id)
		return
	}
	h.writeJSON(w, http.StatusOK, toNode(row))
}

func (h *Handler) handleDeleteNode(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireValidID(w, r, "node")
	if !ok {
		return
	}
	if err := h.mgr.DeleteNode(r.Context(), id); err != nil {
		h.writeMutationError(w, err, "node", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
