package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"fabricview/internal/db"
	"fabricview/internal/manager"
	"fabricview/internal/metrics"
)

type Handler struct {
	log     zerolog.Logger
	pool    *db.Pool
	mgr     *manager.Manager
	metrics *metrics.Metrics

	topoCache topologyCache
}

func NewHandler(log zerolog.Logger, pool *db.Pool, mgr *manager.Manager, m *metrics.Metrics) *Handler {
	return &Handler{log: log, pool: pool, mgr: mgr, metrics: m}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(h.accessLog)

	// Health
	r.Get("/healthz", h.handleHealthz)
	r.Get("/readyz", h.handleReadyZ)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	// API
	r.Route("/api", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Use(h.requireStore)
			r.Route("/fabrics", func(r chi.Router) {
				r.Get("/", h.handleListFabrics)
				r.Post("/", h.handleCreateFabric)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetFabric)
					r.Put("/", h.handleUpdateFabric)
					r.Delete("/", h.handleDeleteFabric)
				})
			})
			r.Route("/vlans", func(r chi.Router) {
				r.Get("/", h.handleListVLANs)
				r.Post("/", h.handleCreateVLAN)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetVLAN)
					r.Put("/", h.handleUpdateVLAN)
					r.Delete("/", h.handleDeleteVLAN)
				})
			})
			r.Route("/subnets", func(r chi.Router) {
				r.Get("/", h.handleListSubnets)
				r.Post("/", h.handleCreateSubnet)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetSubnet)
					r.Put("/", h.handleUpdateSubnet)
					r.Delete("/", h.handleDeleteSubnet)
				})
			})
			r.Route("/spaces", func(r chi.Router) {
				r.Get("/", h.handleListSpaces)
				r.Post("/", h.handleCreateSpace)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetSpace)
					r.Put("/", h.handleUpdateSpace)
					r.Delete("/", h.handleDeleteSpace)
				})
			})
			r.Route("/zones", func(r chi.Router) {
				r.Get("/", h.handleListZones)
				r.Post("/", h.handleCreateZone)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetZone)
					r.Put("/", h.handleUpdateZone)
					r.Delete("/", h.handleDeleteZone)
				})
			})
			r.Route("/domains", func(r chi.Router) {
				r.Get("/", h.handleListDomains)
				r.Post("/", h.handleCreateDomain)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetDomain)
					r.Put("/", h.handleUpdateDomain)
					r.Delete("/", h.handleDeleteDomain)
				})
			})
			r.Route("/nodes", func(r chi.Router) {
				r.Get("/", h.handleListNodes)
				r.Post("/", h.handleCreateNode)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.handleGetNode)
					r.Put("/", h.handleUpdateNode)
					r.Delete("/", h.handleDeleteNode)
				})
			})

			r.Route("/topology", func(r chi.Router) {
				r.Get("/fabrics", h.handleTopologyByFabric)
				r.Get("/spaces", h.handleTopologyBySpace)
			})

			r.Get("/sync/latest", h.handleLatestSyncRun)
		})
	})

	return r
}

// requireStore rejects API calls when the process was started without a
// database. Health and metrics stay reachable.
func (h *Handler) requireStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.mgr == nil {
			h.writeError(w, http.StatusServiceUnavailable, "db_unavailable", "database not configured", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		h.metrics.ObserveHTTPRequest(r.Method, routePattern, ww.Status(), time.Since(start))
		h.log.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("http_request")
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, msg string, details map[string]any) {
	resp := map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": msg,
		},
	}
	if details != nil {
		resp["error"].(map[string]any)["details"] = details
	}
	h.writeJSON(w, status, resp)
}

// writeMutationError maps the common store failure modes to HTTP: missing
// rows to 404, unique and foreign key violations to 409, anything else to
// a logged 500.
func (h *Handler) writeMutationError(w http.ResponseWriter, err error, entity string, id any) {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, manager.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not_found", entity+" not found", map[string]any{"id": id})
	case errors.As(err, &pgErr) && pgErr.Code == "23505":
		h.writeError(w, http.StatusConflict, "conflict", entity+" already exists", map[string]any{"constraint": pgErr.ConstraintName})
	case errors.As(err, &pgErr) && pgErr.Code == "23503":
		h.writeError(w, http.StatusConflict, "conflict", entity+" is referenced by or references another entity", map[string]any{"constraint": pgErr.ConstraintName})
	default:
		h.log.Error().Err(err).Str("entity", entity).Any("id", id).Msg("store mutation failed")
		h.writeError(w, http.StatusInternalServerError, "db_error", "failed to modify "+entity, nil)
	}
}

func decodeJSONStrict(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return errors.New("unexpected extra data after JSON body")
		}
		return err
	}
	return nil
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) handleReadyZ(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.pool == nil {
		h.writeError(w, http.StatusServiceUnavailable, "db_unavailable", "database not configured", nil)
		return
	}

	if err := h.pool.Ping(ctx); err != nil {
		h.writeError(w, http.StatusServiceUnavailable, "db_unavailable", "database not ready", map[string]any{"error": err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"ready": true})
}

type syncRunResponse struct {
	ID          string         `json:"id"`
	Status      string         `json:"status"`
	Stats       map[string]any `json:"stats"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at"`
	LastError   *string        `json:"last_error"`
}

func (h *Handler) handleLatestSyncRun(w http.ResponseWriter, r *http.Request) {
	if h.pool == nil {
		h.writeError(w, http.StatusServiceUnavailable, "db_unavailable", "database not configured", nil)
		return
	}
	run, err := h.pool.Queries().GetLatestSyncRun(r.Context())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			h.writeError(w, http.StatusNotFound, "not_found", "no sync runs recorded yet", nil)
			return
		}
		h.log.Error().Err(err).Msg("latest sync run lookup failed")
		h.writeError(w, http.StatusInternalServerError, "db_error", "failed to load sync run", nil)
		return
	}
	h.writeJSON(w, http.StatusOK, syncRunResponse{
		ID:          run.ID,
		Status:      run.Status,
		Stats:       run.Stats,
		StartedAt:   run.StartedAt,
		CompletedAt: run.CompletedAt,
		LastError:   run.LastError,
	})
}
