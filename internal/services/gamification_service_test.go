package services

import (
	"context"
	"testing"

	"github.com/skillpath/learning-service/internal/events"
	"github.com/skillpath/learning-service/internal/validator"
)

func newGamificationService(t *testing.T) (GamificationService, *events.MockEventPublisher) {
	t.Helper()
	publisher := events.NewMockEventPublisher(testLogger())
	svc := NewGamificationService(newTestKV(t), publisher, testLogger(), validator.New())
	return svc, publisher
}

func TestGamificationService_Get_Defaults(t *testing.T) {
	svc, _ := newGamificationService(t)

	got, err := svc.Get(context.Background(), "new-user")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.XP != 0 || got.Level != 1 || got.Streak != 0 {
		t.Errorf("expected fresh state xp=0 level=1 streak=0, got %+v", got)
	}
	if got.Unlocked == nil || len(got.Unlocked) != 0 {
		t.Errorf("expected empty unlocked slice, got %v", got.Unlocked)
	}
}

func TestGamificationService_Unlock(t *testing.T) {
	ctx := context.Background()

	t.Run("awards xp and recomputes level", func(t *testing.T) {
		svc, publisher := newGamificationService(t)

		got, err := svc.Unlock(ctx, "u1", &AchievementUpdateRequest{AchievementID: "first-module", XP: 1500})
		if err != nil {
			t.Fatalf("unlock failed: %v", err)
		}
		if got.XP != 1500 {
			t.Errorf("expected xp 1500, got %d", got.XP)
		}
		if got.Level != 2 {
			t.Errorf("expected level 2 at 1500 xp, got %d", got.Level)
		}
		if len(got.Unlocked) != 1 || got.Unlocked[0] != "first-module" {
			t.Errorf("expected unlocked [first-module], got %v", got.Unlocked)
		}

		published := publisher.GetPublishedEvents()
		if len(published) != 1 || published[0].Type != events.TypeAchievementUnlocked {
			t.Errorf("expected one %s event, got %v", events.TypeAchievementUnlocked, published)
		}
	})

	t.Run("duplicate unlock is a no-op", func(t *testing.T) {
		svc, publisher := newGamificationService(t)

		if _, err := svc.Unlock(ctx, "u1", &AchievementUpdateRequest{AchievementID: "streak-7", XP: 500}); err != nil {
			t.Fatalf("first unlock failed: %v", err)
		}
		publisher.ClearEvents()

		got, err := svc.Unlock(ctx, "u1", &AchievementUpdateRequest{AchievementID: "streak-7", XP: 500})
		if err != nil {
			t.Fatalf("duplicate unlock failed: %v", err)
		}
		if got.XP != 500 {
			t.Errorf("expected xp unchanged at 500, got %d", got.XP)
		}
		if len(got.Unlocked) != 1 {
			t.Errorf("expected one unlocked achievement, got %v", got.Unlocked)
		}
		if published := publisher.GetPublishedEvents(); len(published) != 0 {
			t.Errorf("expected no event on duplicate unlock, got %d", len(published))
		}
	})

	t.Run("xp accumulates across achievements", func(t *testing.T) {
		svc, _ := newGamificationService(t)

		if _, err := svc.Unlock(ctx, "u1", &AchievementUpdateRequest{AchievementID: "a", XP: 900}); err != nil {
			t.Fatalf("unlock failed: %v", err)
		}
		got, err := svc.Unlock(ctx, "u1", &AchievementUpdateRequest{AchievementID: "b", XP: 900})
		if err != nil {
			t.Fatalf("unlock failed: %v", err)
		}
		if got.XP != 1800 {
			t.Errorf("expected xp 1800, got %d", got.XP)
		}
		if got.Level != 2 {
			t.Errorf("expected level 2, got %d", got.Level)
		}
	})

	t.Run("missing achievement id fails validation", func(t *testing.T) {
		svc, _ := newGamificationService(t)

		if _, err := svc.Unlock(ctx, "u1", &AchievementUpdateRequest{XP: 100}); err == nil {
			t.Fatal("expected validation error for missing achievementId")
		}
	})
}
