package planner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ignite/campaign-orchestrator/internal/domain"
	"github.com/ignite/campaign-orchestrator/internal/pkg/cache"
	"github.com/ignite/campaign-orchestrator/internal/pkg/logger"
)

// ErrUnusableResponse means the model replied but nothing parseable came out.
var ErrUnusableResponse = errors.New("planner response unusable")

// Service is the typed planner facade. Each Plan method renders a prompt,
// invokes the model (through the response cache), and unmarshals the reply
// into domain types. All failures return errors; callers fall back.
type Service struct {
	invoker Invoker
	prompts *Prompts
	cache   cache.Cache
	ttl     time.Duration
	timeout time.Duration
}

// NewService wires a planner service. cache may be nil to disable caching.
func NewService(invoker Invoker, c cache.Cache, ttl, timeout time.Duration) *Service {
	return &Service{
		invoker: invoker,
		prompts: NewPrompts(),
		cache:   c,
		ttl:     ttl,
		timeout: timeout,
	}
}

// PlanTimeline asks the model for a posting timeline.
func (s *Service) PlanTimeline(ctx context.Context, req domain.TimelineRequest, upcomingEvents []string) ([]domain.TimelineSlot, error) {
	prompt, err := s.prompts.Timeline(req, upcomingEvents)
	if err != nil {
		return nil, fmt.Errorf("render timeline prompt: %w", err)
	}

	data, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Timeline []domain.TimelineSlot `json:"optimized_timeline"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Timeline) > 0 {
		return envelope.Timeline, nil
	}

	// Some replies skip the envelope and return the array directly.
	var bare []domain.TimelineSlot
	if err := json.Unmarshal(data, &bare); err == nil && len(bare) > 0 {
		return bare, nil
	}

	return nil, fmt.Errorf("%w: no timeline slots in reply", ErrUnusableResponse)
}

// PlanDistribution asks the model for a distribution schedule.
func (s *Service) PlanDistribution(ctx context.Context, req domain.DistributionRequest) ([]domain.DistributionScheduleItem, error) {
	prompt, err := s.prompts.Distribution(req)
	if err != nil {
		return nil, fmt.Errorf("render distribution prompt: %w", err)
	}

	data, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Schedule []domain.DistributionScheduleItem `json:"distribution_schedule"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Schedule) > 0 {
		return envelope.Schedule, nil
	}

	var bare []domain.DistributionScheduleItem
	if err := json.Unmarshal(data, &bare); err == nil && len(bare) > 0 {
		return bare, nil
	}

	return nil, fmt.Errorf("%w: no schedule items in reply", ErrUnusableResponse)
}

// PlanOutreach asks the model for a call schedule.
func (s *Service) PlanOutreach(ctx context.Context, req domain.OutreachRequest) ([]domain.CallScheduleItem, error) {
	prompt, err := s.prompts.Outreach(req)
	if err != nil {
		return nil, fmt.Errorf("render outreach prompt: %w", err)
	}

	data, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Schedule []domain.CallScheduleItem `json:"call_schedule"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Schedule) > 0 {
		return envelope.Schedule, nil
	}

	var bare []domain.CallScheduleItem
	if err := json.Unmarshal(data, &bare); err == nil && len(bare) > 0 {
		return bare, nil
	}

	return nil, fmt.Errorf("%w: no call items in reply", ErrUnusableResponse)
}

// complete runs the cached invoke-and-parse pipeline for one prompt.
func (s *Service) complete(ctx context.Context, prompt string) (json.RawMessage, error) {
	key := promptKey(prompt)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			logger.Debug("planner cache hit", "key", key)
			return json.RawMessage(cached), nil
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.invoker.Complete(ctx, s.prompts.System(), prompt)
	if err != nil {
		return nil, err
	}

	result := ParseResponse(raw)
	if !result.Ok() {
		return nil, fmt.Errorf("%w: %s", ErrUnusableResponse, result.Reason())
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, result.Data(), s.ttl)
	}
	return result.Data(), nil
}

// promptKey hashes the prompt so equal requests share one cache entry.
func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "plan:" + hex.EncodeToString(sum[:])
}
