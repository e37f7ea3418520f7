package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/skillpath/learning-service/internal/events"
	"github.com/skillpath/learning-service/internal/models"
	"github.com/skillpath/learning-service/internal/validator"
)

func TestReportService_ExportProgress(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	v := validator.New()
	publisher := events.NewMockEventPublisher(testLogger())

	profiles := NewProfileService(kv, testLogger(), v)
	progress := NewProgressService(kv, publisher, testLogger(), v)
	reports := NewReportService(profiles, progress, testLogger())

	identity := &models.User{ID: "u1", Email: "u1@example.com", Name: "Learner One"}

	if _, err := profiles.Save(ctx, identity, &ProfileCreateRequest{
		TargetGoal:   "Full-Stack Developer",
		LearningPace: "steady",
	}); err != nil {
		t.Fatalf("seeding profile failed: %v", err)
	}
	if _, err := progress.Update(ctx, "u1", &ProgressUpdateRequest{
		ModuleID:  "fs-html-css",
		Status:    models.StatusCompleted,
		TimeSpent: 120,
	}); err != nil {
		t.Fatalf("seeding progress failed: %v", err)
	}
	if _, err := progress.Update(ctx, "u1", &ProgressUpdateRequest{
		ModuleID:  "fs-javascript",
		Status:    models.StatusInProgress,
		TimeSpent: 45,
	}); err != nil {
		t.Fatalf("seeding progress failed: %v", err)
	}

	data, filename, err := reports.ExportProgress(ctx, identity)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(filename, "progress-report-") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("unexpected filename %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes are not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Progress Report")
	if err != nil {
		t.Fatalf("failed to read report sheet: %v", err)
	}

	var foundLearner, foundModule bool
	for _, row := range rows {
		if len(row) >= 2 && row[0] == "Learner" && row[1] == "Learner One" {
			foundLearner = true
		}
		if len(row) >= 1 && row[0] == "fs-html-css" {
			foundModule = true
		}
	}
	if !foundLearner {
		t.Error("expected learner summary row in report")
	}
	if !foundModule {
		t.Error("expected a row per progress record in report")
	}
}

func TestReportService_ExportProgress_NoRecords(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	v := validator.New()

	profiles := NewProfileService(kv, testLogger(), v)
	progress := NewProgressService(kv, events.NewMockEventPublisher(testLogger()), testLogger(), v)
	reports := NewReportService(profiles, progress, testLogger())

	identity := &models.User{ID: "fresh", Email: "fresh@example.com", Name: "Fresh"}

	data, _, err := reports.ExportProgress(ctx, identity)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("exported bytes are not a valid workbook: %v", err)
	}
	f.Close()
}
