package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/campaign-orchestrator/internal/content"
	"github.com/ignite/campaign-orchestrator/internal/distribution"
	"github.com/ignite/campaign-orchestrator/internal/domain"
	"github.com/ignite/campaign-orchestrator/internal/outreach"
	"github.com/ignite/campaign-orchestrator/internal/pkg/httputil"
	"github.com/ignite/campaign-orchestrator/internal/pkg/logger"
	"github.com/ignite/campaign-orchestrator/internal/repository/postgres"
	"github.com/ignite/campaign-orchestrator/internal/timeline"
)

// RunStore persists scheduling run history. Optional; a nil store disables
// the audit endpoints and recording.
type RunStore interface {
	Insert(ctx context.Context, run *domain.ScheduleRun) error
	Get(ctx context.Context, id string) (*domain.ScheduleRun, error)
	List(ctx context.Context, runType domain.RunType, limit, offset int) ([]domain.ScheduleRun, int, error)
}

// Handlers holds the HTTP handlers and their service dependencies.
type Handlers struct {
	timeline     *timeline.Service
	distribution *distribution.Service
	outreach     *outreach.Service
	importer     *content.FeedImporter
	runs         RunStore
}

// NewHandlers wires the handler set. runs may be nil.
func NewHandlers(
	timelineSvc *timeline.Service,
	distributionSvc *distribution.Service,
	outreachSvc *outreach.Service,
	importer *content.FeedImporter,
	runs RunStore,
) *Handlers {
	return &Handlers{
		timeline:     timelineSvc,
		distribution: distributionSvc,
		outreach:     outreachSvc,
		importer:     importer,
		runs:         runs,
	}
}

// HealthCheck reports liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]string{"status": "healthy"})
}

// OptimizeTimeline runs one timeline optimization pass.
func (h *Handlers) OptimizeTimeline(w http.ResponseWriter, r *http.Request) {
	var req domain.TimelineRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	resp, err := h.timeline.Optimize(r.Context(), req)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	h.recordRun(r.Context(), domain.RunTimeline, resp.ExecutionStatus, req, resp)
	httputil.OK(w, resp)
}

// ScheduleDistribution runs one distribution scheduling pass.
func (h *Handlers) ScheduleDistribution(w http.ResponseWriter, r *http.Request) {
	var req domain.DistributionRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	resp, err := h.distribution.Schedule(r.Context(), req)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	h.recordRun(r.Context(), domain.RunDistribution, resp.ExecutionStatus, req, resp)
	httputil.OK(w, resp)
}

// ScheduleOutreach runs one call scheduling pass.
func (h *Handlers) ScheduleOutreach(w http.ResponseWriter, r *http.Request) {
	var req domain.OutreachRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	resp, err := h.outreach.Schedule(r.Context(), req)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	h.recordRun(r.Context(), domain.RunOutreach, resp.ExecutionStatus, req, resp)
	httputil.OK(w, resp)
}

type importFeedRequest struct {
	FeedURL  string `json:"feed_url"`
	Platform string `json:"platform"`
}

// ImportFeed converts an RSS/Atom feed into content inventory.
func (h *Handlers) ImportFeed(w http.ResponseWriter, r *http.Request) {
	var req importFeedRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.FeedURL == "" {
		httputil.BadRequest(w, "feed_url is required")
		return
	}
	if req.Platform == "" {
		req.Platform = "general"
	}

	inventory, err := h.importer.Import(r.Context(), req.FeedURL, req.Platform)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	httputil.OK(w, map[string]any{"content_inventory": inventory})
}

// ListRuns returns recent scheduling runs, newest first.
func (h *Handlers) ListRuns(w http.ResponseWriter, r *http.Request) {
	if h.runs == nil {
		httputil.NotFound(w, "run history is not enabled")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	runType := domain.RunType(r.URL.Query().Get("type"))

	runs, total, err := h.runs.List(r.Context(), runType, limit, offset)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, map[string]any{"runs": runs, "total": total})
}

// GetRun returns one run by ID.
func (h *Handlers) GetRun(w http.ResponseWriter, r *http.Request) {
	if h.runs == nil {
		httputil.NotFound(w, "run history is not enabled")
		return
	}

	run, err := h.runs.Get(r.Context(), chi.URLParam(r, "id"))
	if err == postgres.ErrRunNotFound {
		httputil.NotFound(w, "run not found")
		return
	}
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	httputil.OK(w, run)
}

// recordRun appends to the audit log. Failures are logged, never surfaced:
// the schedule was already produced.
func (h *Handlers) recordRun(ctx context.Context, runType domain.RunType, status domain.ExecutionStatus, req, resp any) {
	if h.runs == nil {
		return
	}

	reqJSON, err := json.Marshal(req)
	if err != nil {
		logger.Error("marshal run request for audit", "error", err.Error())
		return
	}
	respJSON, err := json.Marshal(resp)
	if err != nil {
		logger.Error("marshal run response for audit", "error", err.Error())
		return
	}

	run := &domain.ScheduleRun{
		RunType:         runType,
		ExecutionStatus: status,
		Request:         reqJSON,
		Response:        respJSON,
	}
	if err := h.runs.Insert(ctx, run); err != nil {
		logger.Error("record schedule run", "error", err.Error(), "run_type", string(runType))
	}
}
