package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/skillpath/learning-service/internal/validator"
)

func TestSubmissionService_SubmitAssessment(t *testing.T) {
	ctx := context.Background()

	t.Run("records the submission", func(t *testing.T) {
		svc := NewSubmissionService(newTestKV(t), testLogger(), validator.New())

		got, err := svc.SubmitAssessment(ctx, "u1", &AssessmentSubmitRequest{
			ModuleID: "m1",
			Score:    85,
			Results:  json.RawMessage(`{"correct": 17, "total": 20}`),
		})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if got.UserID != "u1" || got.ModuleID != "m1" || got.Score != 85 {
			t.Errorf("unexpected assessment %+v", got)
		}
		if got.CompletedAt.IsZero() {
			t.Error("expected completedAt stamped")
		}
	})

	t.Run("missing results default to an empty object", func(t *testing.T) {
		svc := NewSubmissionService(newTestKV(t), testLogger(), validator.New())

		got, err := svc.SubmitAssessment(ctx, "u1", &AssessmentSubmitRequest{ModuleID: "m1", Score: 50})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if string(got.Results) != "{}" {
			t.Errorf("expected empty object results, got %s", got.Results)
		}
	})

	t.Run("score out of range fails validation", func(t *testing.T) {
		svc := NewSubmissionService(newTestKV(t), testLogger(), validator.New())

		_, err := svc.SubmitAssessment(ctx, "u1", &AssessmentSubmitRequest{ModuleID: "m1", Score: 120})
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
	})
}

func TestSubmissionService_SubmitChallenge(t *testing.T) {
	ctx := context.Background()
	svc := NewSubmissionService(newTestKV(t), testLogger(), validator.New())

	first, err := svc.SubmitChallenge(ctx, "u1", &ChallengeSubmitRequest{
		ChallengeID: "two-sum",
		Code:        "func twoSum() {}",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if first.ChallengeID != "two-sum" {
		t.Errorf("unexpected challenge %+v", first)
	}

	// Resubmission replaces the stored solution.
	second, err := svc.SubmitChallenge(ctx, "u1", &ChallengeSubmitRequest{
		ChallengeID: "two-sum",
		Code:        "func twoSum() { /* faster */ }",
	})
	if err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	if second.Code == first.Code {
		t.Error("expected replacement code")
	}
}
