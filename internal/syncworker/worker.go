// Package syncworker keeps the in-memory entity snapshots fresh. On each
// cycle it reloads every collection from the database, sweeps the result
// for dangling references (expected transiently while collections populate
// out of order), optionally enriches nodes, and records the outcome as a
// sync run.
package syncworker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fabricview/internal/enrichment/snmpinfo"
	"fabricview/internal/manager"
	"fabricview/internal/metrics"
	"fabricview/internal/store"
)

// Queries is the minimal DB interface the worker needs for run bookkeeping.
// *store.Queries satisfies this.
type Queries interface {
	InsertSyncRun(ctx context.Context, arg store.InsertSyncRunParams) (store.SyncRun, error)
	UpdateSyncRun(ctx context.Context, arg store.UpdateSyncRunParams) (store.SyncRun, error)
}

// NodeEnricher resolves a hostname for a node address. Enrichment is
// best-effort; errors are logged per node and never fail the run.
// *dnsname.Resolver satisfies this.
type NodeEnricher interface {
	LookupAddr(ctx context.Context, address string) (string, error)
}

// SystemInfoClient fetches SNMP system facts for a node address, used as a
// hostname fallback when reverse DNS has nothing. *snmpinfo.Client
// satisfies this.
type SystemInfoClient interface {
	SystemInfo(ctx context.Context, address string) (snmpinfo.SystemInfo, error)
}

type Options struct {
	Interval      time.Duration
	EnrichTimeout time.Duration
	Resolver      NodeEnricher
	SNMP          SystemInfoClient
}

type Worker struct {
	log      zerolog.Logger
	mgr      *manager.Manager
	q        Queries
	enricher NodeEnricher
	snmp     SystemInfoClient
	metrics  *metrics.Metrics

	interval      time.Duration
	enrichTimeout time.Duration
}

func New(log zerolog.Logger, mgr *manager.Manager, q Queries, opts Options, m *metrics.Metrics) *Worker {
	interval := opts.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	enrichTimeout := opts.EnrichTimeout
	if enrichTimeout <= 0 {
		enrichTimeout = 5 * time.Second
	}
	return &Worker{
		log:           log,
		mgr:           mgr,
		q:             q,
		enricher:      opts.Resolver,
		snmp:          opts.SNMP,
		metrics:       m,
		interval:      interval,
		enrichTimeout: enrichTimeout,
	}
}

// Run loops until the context is cancelled. The first cycle starts
// immediately so a fresh process serves data as soon as the database is
// reachable.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	start := time.Now()
	runID := uuid.NewString()

	if _, err := w.q.InsertSyncRun(ctx, store.InsertSyncRunParams{ID: runID, Status: "running"}); err != nil {
		w.log.Error().Err(err).Str("run_id", runID).Msg("record sync run start failed")
		return
	}

	if err := w.mgr.Load(ctx); err != nil {
		w.log.Error().Err(err).Str("run_id", runID).Msg("collection reload failed")
		msg := err.Error()
		if _, err := w.q.UpdateSyncRun(ctx, store.UpdateSyncRunParams{ID: runID, Status: "failed", LastError: &msg}); err != nil {
			w.log.Error().Err(err).Str("run_id", runID).Msg("record sync run failure failed")
		}
		return
	}

	snap := w.mgr.Snapshot()
	stats := CheckReferences(snap)
	w.logDangling(runID, stats)

	if w.enricher != nil || w.snmp != nil {
		stats["nodes_enriched"] = w.enrichNodes(ctx, snap)
	}

	if _, err := w.q.UpdateSyncRun(ctx, store.UpdateSyncRunParams{ID: runID, Status: "completed", Stats: stats}); err != nil {
		w.log.Error().Err(err).Str("run_id", runID).Msg("record sync run completion failed")
	}

	w.metrics.ObserveSyncRun(time.Since(start))
	w.log.Debug().Str("run_id", runID).Int64("duration_ms", time.Since(start).Milliseconds()).Msg("sync run completed")
}

// CheckReferences counts collection sizes and dangling references in a
// snapshot. Dangling references render as blank labels rather than errors,
// but persistent ones indicate deletions that raced a reload, so they are
// surfaced for operators.
func CheckReferences(snap manager.Snapshot) map[string]any {
	fabricIDs := make(map[int64]struct{}, len(snap.Fabrics))
	for _, f := range snap.Fabrics {
		fabricIDs[f.ID] = struct{}{}
	}
	vlanIDs := make(map[int64]struct{}, len(snap.VLANs))
	for _, v := range snap.VLANs {
		vlanIDs[v.ID] = struct{}{}
	}
	spaceIDs := make(map[int64]struct{}, len(snap.Spaces))
	for _, s := range snap.Spaces {
		spaceIDs[s.ID] = struct{}{}
	}
	zoneIDs := make(map[int64]struct{}, len(snap.Zones))
	for _, z := range snap.Zones {
		zoneIDs[z.ID] = struct{}{}
	}
	domainIDs := make(map[int64]struct{}, len(snap.Domains))
	for _, d := range snap.Domains {
		domainIDs[d.ID] = struct{}{}
	}

	var danglingVLANs, danglingSubnets, danglingNodes int
	for _, v := range snap.VLANs {
		if _, ok := fabricIDs[v.FabricID]; !ok {
			danglingVLANs++
		}
	}
	for _, s := range snap.Subnets {
		if _, ok := vlanIDs[s.VLANID]; !ok {
			danglingSubnets++
			continue
		}
		if s.SpaceID != nil {
			if _, ok := spaceIDs[*s.SpaceID]; !ok {
				danglingSubnets++
			}
		}
	}
	for _, n := range snap.Nodes {
		if n.ZoneID != nil {
			if _, ok := zoneIDs[*n.ZoneID]; !ok {
				danglingNodes++
				continue
			}
		}
		if n.DomainID != nil {
			if _, ok := domainIDs[*n.DomainID]; !ok {
				danglingNodes++
			}
		}
	}

	return map[string]any{
		"fabrics":          len(snap.Fabrics),
		"vlans":            len(snap.VLANs),
		"subnets":          len(snap.Subnets),
		"spaces":           len(snap.Spaces),
		"zones":            len(snap.Zones),
		"domains":          len(snap.Domains),
		"nodes":            len(snap.Nodes),
		"dangling_vlans":   danglingVLANs,
		"dangling_subnets": danglingSubnets,
		"dangling_nodes":   danglingNodes,
	}
}

func (w *Worker) logDangling(runID string, stats map[string]any) {
	for _, key := range []string{"dangling_vlans", "dangling_subnets", "dangling_nodes"} {
		if n, ok := stats[key].(int); ok && n > 0 {
			w.log.Warn().Str("run_id", runID).Int(key, n).Msg("dangling references in snapshot")
		}
	}
}

// enrichNodes resolves hostnames for nodes that have an address but no
// hostname yet. Operator-assigned hostnames are never overwritten.
func (w *Worker) enrichNodes(ctx context.Context, snap manager.Snapshot) int {
	enriched := 0
	for _, n := range snap.Nodes {
		if n.Hostname != "" || n.Address == nil || *n.Address == "" {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		name := w.lookupHostname(ctx, *n.Address)
		if name == "" {
			continue
		}

		changed, err := w.mgr.SetNodeHostnameIfUnset(ctx, n.ID, name)
		if err != nil {
			w.log.Error().Err(err).Int64("node_id", n.ID).Msg("record enriched hostname failed")
			continue
		}
		if changed {
			enriched++
		}
	}
	return enriched
}

// lookupHostname tries reverse DNS first, then SNMP sysName.
func (w *Worker) lookupHostname(ctx context.Context, address string) string {
	if w.enricher != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, w.enrichTimeout)
		name, err := w.enricher.LookupAddr(lookupCtx, address)
		cancel()
		if err != nil {
			w.log.Debug().Err(err).Str("address", address).Msg("reverse dns lookup failed")
		} else if name != "" {
			return name
		}
	}
	if w.snmp != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, w.enrichTimeout)
		info, err := w.snmp.SystemInfo(lookupCtx, address)
		cancel()
		if err != nil {
			w.log.Debug().Err(err).Str("address", address).Msg("snmp system lookup failed")
			return ""
		}
		return info.SysName
	}
	return ""
}
