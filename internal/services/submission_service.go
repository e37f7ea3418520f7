package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/store"
	"github.com/skillpath/learning-service/internal/validator"
)

type submissionService struct {
	kv        *store.KV
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSubmissionService(kv *store.KV, logger *slog.Logger, v *validator.Validator) SubmissionService {
	return &submissionService{
		kv:        kv,
		logger:    logger,
		validator: v,
	}
}

// SubmitAssessment appends one assessment run, keyed by submission time.
// There is no update or delete path for assessments.
func (s *submissionService) SubmitAssessment(ctx context.Context, userID string, req *AssessmentSubmitRequest) (*models.Assessment, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, verrs.Error())
	}

	now := time.Now().UTC()
	results := req.Results
	if results == nil {
		results = json.RawMessage("{}")
	}

	assessment := &models.Assessment{
		UserID:      userID,
		ModuleID:    req.ModuleID,
		Score:       req.Score,
		Results:     results,
		CompletedAt: now,
	}

	key := store.AssessmentKey(userID, req.ModuleID, now.UnixMilli())
	if err := s.kv.Set(ctx, key, assessment); err != nil {
		return nil, fmt.Errorf("failed to persist assessment: %w", err)
	}

	return assessment, nil
}

// SubmitChallenge saves a coding solution, overwriting any prior submission
// for the same challenge.
func (s *submissionService) SubmitChallenge(ctx context.Context, userID string, req *ChallengeSubmitRequest) (*models.Challenge, error) {
	if verrs := s.validator.Validate(req); verrs != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, verrs.Error())
	}

	challenge := &models.Challenge{
		UserID:      userID,
		ChallengeID: req.ChallengeID,
		Code:        req.Code,
		CompletedAt: time.Now().UTC(),
	}

	if err := s.kv.Set(ctx, store.ChallengeKey(userID, req.ChallengeID), challenge); err != nil {
		return nil, fmt.Errorf("failed to persist challenge: %w", err)
	}

	return challenge, nil
}
