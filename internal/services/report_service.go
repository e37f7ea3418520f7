package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/skillpath/learning-service/internal/models"
)

type reportService struct {
	profiles ProfileService
	progress ProgressService
	logger   *slog.Logger
}

func NewReportService(profiles ProfileService, progress ProgressService, logger *slog.Logger) ReportService {
	return &reportService{
		profiles: profiles,
		progress: progress,
		logger:   logger,
	}
}

const reportSheet = "Progress Report"

// ExportProgress builds an xlsx workbook with the learner's profile summary
// and one row per module progress record.
func (s *reportService) ExportProgress(ctx context.Context, identity *models.User) ([]byte, string, error) {
	profile, err := s.profiles.Get(ctx, identity)
	if err != nil {
		return nil, "", err
	}

	records, err := s.progress.List(ctx, identity.ID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, "", fmt.Errorf("failed to build report sheet: %w", err)
	}

	// Profile summary block.
	summary := [][]interface{}{
		{"Learner", profile.Name},
		{"Email", profile.Email},
		{"Target goal", profile.TargetGoal},
		{"Learning pace", profile.LearningPace},
		{"Hours per week", profile.HoursPerWeek},
		{"Exported at", time.Now().UTC().Format(time.RFC3339)},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write report summary: %w", err)
		}
	}

	// Progress table.
	headerRow := len(summary) + 2
	header := []interface{}{"Module", "Status", "Time spent (min)", "Performance score", "Completed topics", "Completed at"}
	cell, _ := excelize.CoordinatesToCellName(1, headerRow)
	if err := f.SetSheetRow(reportSheet, cell, &header); err != nil {
		return nil, "", fmt.Errorf("failed to write report header: %w", err)
	}

	for i, p := range records {
		completedAt := ""
		if p.CompletedAt != nil {
			completedAt = p.CompletedAt.Format(time.RFC3339)
		}
		row := []interface{}{
			p.ModuleID,
			p.Status,
			p.TimeSpent,
			p.PerformanceScore,
			strings.Join(p.CompletedTopics, ", "),
			completedAt,
		}
		cell, _ := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write report row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode report: %w", err)
	}

	filename := fmt.Sprintf("progress-report-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
