package services

import (
	"context"
	"testing"
	"time"

	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/validator"
)

func TestProfileService_Save(t *testing.T) {
	ctx := context.Background()
	identity := &models.User{ID: "u1", Email: "u1@example.com", Name: "Learner One"}

	t.Run("identity fields come from the token, not the payload", func(t *testing.T) {
		svc := NewProfileService(newTestKV(t), testLogger(), validator.New())

		profile, err := svc.Save(ctx, identity, &ProfileCreateRequest{
			TargetGoal:         "Full-Stack Developer",
			LearningPace:       "steady",
			OnboardingComplete: true,
		})
		if err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if profile.UserID != "u1" || profile.Email != "u1@example.com" || profile.Name != "Learner One" {
			t.Errorf("identity fields not stamped from token: %+v", profile)
		}
		if !profile.OnboardingComplete {
			t.Error("expected onboardingComplete true")
		}
		if profile.KnownSkills == nil {
			t.Error("expected knownSkills defaulted to empty slice")
		}
	})

	t.Run("resubmission overwrites wholesale", func(t *testing.T) {
		svc := NewProfileService(newTestKV(t), testLogger(), validator.New())

		if _, err := svc.Save(ctx, identity, &ProfileCreateRequest{
			TargetGoal:  "Data Scientist",
			KnownSkills: []string{"python", "sql"},
		}); err != nil {
			t.Fatalf("first save failed: %v", err)
		}

		time.Sleep(time.Millisecond)

		second, err := svc.Save(ctx, identity, &ProfileCreateRequest{TargetGoal: "ML Engineer"})
		if err != nil {
			t.Fatalf("second save failed: %v", err)
		}
		if second.TargetGoal != "ML Engineer" {
			t.Errorf("expected new goal, got %q", second.TargetGoal)
		}
		if len(second.KnownSkills) != 0 {
			t.Errorf("expected skills dropped by wholesale overwrite, got %v", second.KnownSkills)
		}

		stored, err := svc.Get(ctx, identity)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if stored.TargetGoal != "ML Engineer" {
			t.Errorf("expected stored goal replaced, got %q", stored.TargetGoal)
		}
	})
}

func TestProfileService_Get_Stub(t *testing.T) {
	svc := NewProfileService(newTestKV(t), testLogger(), validator.New())
	identity := &models.User{ID: "fresh", Email: "fresh@example.com", Name: "Fresh"}

	profile, err := svc.Get(context.Background(), identity)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if profile.UserID != "fresh" || profile.Email != "fresh@example.com" {
		t.Errorf("expected stub with token identity, got %+v", profile)
	}
	if profile.OnboardingComplete {
		t.Error("expected onboardingComplete false in stub")
	}
	if profile.KnownSkills == nil || len(profile.KnownSkills) != 0 {
		t.Errorf("expected empty knownSkills in stub, got %v", profile.KnownSkills)
	}
}
