package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/skillpath/learning-service/internal/events"
	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/store"
	"github.com/skillpath/learning-service/internal/validator"
)

type progressService struct {
	kv        *store.KV
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewProgressService(kv *store.KV, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator) ProgressService {
	return &progressService{
		kv:        kv,
		publisher: publisher,
		logger:    logger,
		validator: v,
	}
}

// Update is a read-merge-write over progress:{userId}:{moduleId}. The merge
// is last-write-wins with no concurrency control; two racing updates to the
// same module can lose one merge.
func (s *progressService) Update(ctx context.Context, userID string, req *ProgressUpdateRequest) (*models.Progress, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, verrs.Error())
	}

	key := store.ProgressKey(userID, req.ModuleID)

	progress := models.Progress{
		UserID:   userID,
		ModuleID: req.ModuleID,
		Status:   models.StatusNotStarted,
	}
	if err := s.kv.Get(ctx, key, &progress); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	wasCompleted := progress.CompletedAt != nil

	if req.Status != "" {
		progress.Status = req.Status
	}
	// timeSpent accumulates; it is a delta, never a replacement.
	progress.TimeSpent += req.TimeSpent
	if req.PerformanceScore != nil {
		progress.PerformanceScore = *req.PerformanceScore
	}
	if req.Notes != nil {
		progress.Notes = *req.Notes
	}
	if req.CompletedTopics != nil {
		progress.CompletedTopics = req.CompletedTopics
	}

	now := time.Now().UTC()
	progress.LastUpdated = now

	// completedAt is stamped on the first transition to completed and stays
	// set even if the status later moves away.
	if progress.Status == models.StatusCompleted && progress.CompletedAt == nil {
		progress.CompletedAt = &now
	}

	if err := s.kv.Set(ctx, key, &progress); err != nil {
		return nil, fmt.Errorf("failed to persist progress: %w", err)
	}

	if !wasCompleted && progress.CompletedAt != nil {
		if err := s.publisher.Publish(ctx, events.NewEvent(events.TypeModuleCompleted, map[string]interface{}{
			"userId":   userID,
			"moduleId": req.ModuleID,
		})); err != nil {
			s.logger.Error("failed to publish module completion event", "error", err, "module_id", req.ModuleID)
		}
	}

	return &progress, nil
}

// List returns every progress record in the user's partition, ordered by
// module id for a stable response.
func (s *progressService) List(ctx context.Context, userID string) ([]*models.Progress, error) {
	records, err := s.kv.GetByPrefix(ctx, store.ProgressPrefix(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to scan progress records: %w", err)
	}

	result := make([]*models.Progress, 0, len(records))
	for key, raw := range records {
		var p models.Progress
		if err := json.Unmarshal(raw, &p); err != nil {
			s.logger.Warn("skipping unreadable progress record", "key", key, "error", err)
			continue
		}
		result = append(result, &p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ModuleID < result[j].ModuleID
	})

	return result, nil
}
