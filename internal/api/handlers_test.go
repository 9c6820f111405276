package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/campaign-orchestrator/internal/config"
	"github.com/ignite/campaign-orchestrator/internal/content"
	"github.com/ignite/campaign-orchestrator/internal/distribution"
	"github.com/ignite/campaign-orchestrator/internal/domain"
	"github.com/ignite/campaign-orchestrator/internal/outreach"
	"github.com/ignite/campaign-orchestrator/internal/repository/postgres"
	"github.com/ignite/campaign-orchestrator/internal/timeline"
)

type memoryRunStore struct {
	runs []domain.ScheduleRun
}

func (s *memoryRunStore) Insert(_ context.Context, run *domain.ScheduleRun) error {
	if run.RunID == "" {
		run.RunID = fmt.Sprintf("run-%d", len(s.runs)+1)
	}
	run.CreatedAt = time.Now()
	s.runs = append(s.runs, *run)
	return nil
}

func (s *memoryRunStore) Get(_ context.Context, id string) (*domain.ScheduleRun, error) {
	for i := range s.runs {
		if s.runs[i].RunID == id {
			return &s.runs[i], nil
		}
	}
	return nil, postgres.ErrRunNotFound
}

func (s *memoryRunStore) List(_ context.Context, runType domain.RunType, limit, offset int) ([]domain.ScheduleRun, int, error) {
	var out []domain.ScheduleRun
	for _, run := range s.runs {
		if runType == "" || run.RunType == runType {
			out = append(out, run)
		}
	}
	return out, len(out), nil
}

func newTestServer(store RunStore) *Server {
	h := NewHandlers(
		timeline.NewService(nil, timeline.NewBuilder(timeline.DefaultPolicy())),
		distribution.NewService(nil, distribution.NewMatcher(rand.New(rand.NewSource(1)))),
		outreach.NewService(nil, outreach.NewScheduler()),
		content.NewFeedImporter(time.Second, 10),
		store,
	)
	return NewServer(config.ServerConfig{Host: "localhost", Port: 0}, h)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func timelineBody() domain.TimelineRequest {
	return domain.TimelineRequest{
		CampaignDuration: domain.CampaignWindow{StartDate: "2025-12-01", EndDate: "2025-12-31"},
		ContentInventory: []domain.ContentInventoryItem{
			{ContentID: "c1", ContentType: "video", Platform: "instagram"},
		},
		AudienceSegments: []string{"professionals"},
		OptimalPostingTimes: domain.OptimalPostingTimes{
			Platform: "instagram", TimeSlots: []string{"09:00"},
		},
		PostingFrequency: domain.PostingFrequency{MaxPostsPerDay: 1},
	}
}

func TestOptimizeTimelineEndpoint(t *testing.T) {
	store := &memoryRunStore{}
	srv := newTestServer(store)

	rec := postJSON(t, srv.Handler(), "/api/timeline/optimize", timelineBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.TimelineResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusSuccess, resp.ExecutionStatus)
	assert.Len(t, resp.Timeline, 13)
	assert.Equal(t, 13, resp.Insights.TotalSlots)

	// The run landed in the audit log.
	require.Len(t, store.runs, 1)
	assert.Equal(t, domain.RunTimeline, store.runs[0].RunType)
}

func TestOptimizeTimelineValidationError(t *testing.T) {
	srv := newTestServer(nil)

	body := timelineBody()
	body.ContentInventory = nil
	rec := postJSON(t, srv.Handler(), "/api/timeline/optimize", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "content inventory is empty")
}

func TestOptimizeTimelineRejectsBadJSON(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/timeline/optimize", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleDistributionEndpoint(t *testing.T) {
	srv := newTestServer(nil)

	body := domain.DistributionRequest{
		OptimizedTimeline: []domain.TimelineSlot{
			{TimelineSlotID: "slot_001", ScheduledDate: "2025-12-01", ContentType: "social_caption",
				Platform: "instagram", TargetSegment: "professionals", OptimalTime: "09:00"},
		},
		GeneratedCopies: []domain.GeneratedCopy{
			{CopyID: "social_copy_1", CopyText: "hello world", Hashtags: []string{"a"}},
		},
		PlatformSpecifications: domain.PlatformSpecifications{
			PlatformName: "Instagram", MaxCaptionLength: 2200,
		},
	}
	rec := postJSON(t, srv.Handler(), "/api/distribution/schedule", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.DistributionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Schedule, 1)
	assert.Equal(t, "post_001", resp.Schedule[0].ScheduleItemID)
	assert.Equal(t, "2025-12-01 09:00", resp.Schedule[0].ScheduledDatetime)
}

func TestScheduleOutreachEndpoint(t *testing.T) {
	srv := newTestServer(nil)

	body := domain.OutreachRequest{
		DiscoveredLeads: []domain.DiscoveredLead{
			{LeadID: "lead_001", CompanyName: "TechCorp", ContactName: "Jordan Smith",
				Email: "jordan@techcorp.com", JobTitle: "CTO", Industry: "Technology",
				CompanySize: "Enterprise", Location: "San Francisco, CA", QualificationScore: 85},
		},
		CallWindowPreferences: domain.CallWindowPreferences{
			Timezone: "PST", PreferredHours: []string{"10:00"},
		},
		CampaignDuration: domain.CampaignWindow{StartDate: "2025-12-01", EndDate: "2025-12-05"},
		CallsPerDay:      2,
		PrioritizationCriteria: domain.PrioritizationCriteria{
			QualificationScoreThreshold: 60,
			PrioritySegments:            []string{"Technology"},
		},
	}
	rec := postJSON(t, srv.Handler(), "/api/outreach/schedule", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.OutreachResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.CallSchedule, 1)
	assert.Equal(t, domain.PriorityHigh, resp.CallSchedule[0].PriorityLevel)
	assert.Equal(t, 100.0, resp.Summary.CoveragePercentage)
}

func TestRunHistoryEndpoints(t *testing.T) {
	store := &memoryRunStore{}
	srv := newTestServer(store)

	rec := postJSON(t, srv.Handler(), "/api/timeline/optimize", timelineBody())
	require.Equal(t, http.StatusOK, rec.Code)

	listReq := httptest.NewRequest(http.MethodGet, "/api/runs?type=timeline", nil)
	listRec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(listRec, listReq)
	require.Equal(t, http.StatusOK, listRec.Code)
	assert.Contains(t, listRec.Body.String(), `"total":1`)

	getReq := httptest.NewRequest(http.MethodGet, "/api/runs/run-1", nil)
	getRec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)

	missingReq := httptest.NewRequest(http.MethodGet, "/api/runs/none", nil)
	missingRec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(missingRec, missingReq)
	assert.Equal(t, http.StatusNotFound, missingRec.Code)
}

func TestRunHistoryDisabled(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
