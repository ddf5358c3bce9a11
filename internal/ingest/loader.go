package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"cap-recommender/internal/models"
	"cap-recommender/internal/repositories"
	"cap-recommender/internal/services"

	"github.com/google/uuid"
)

// cutoffBatchSize bounds the insert batches so a full report does not build
// one giant statement.
const cutoffBatchSize = 500

var (
	ErrInProgress = errors.New("an ingestion run is already in progress")
	ErrNoRecords  = errors.New("report contained no usable records")
)

// Summary reports the outcome of one ingestion run.
type Summary struct {
	File        string        `json:"file"`
	Colleges    int           `json:"colleges"`
	Cutoffs     int           `json:"cutoffs"`
	Skipped     int           `json:"skipped"`
	RankingRows int           `json:"ranking_rows"`
	Duration    time.Duration `json:"-"`
}

// Loader drives a full ingestion run: extract report pages, parse them,
// upsert colleges, batch-insert cutoffs and rebuild the ranking table.
type Loader struct {
	collegeRepo  repositories.CollegeRepositoryInterface
	cutoffRepo   repositories.CutoffRepositoryInterface
	dataService  services.DataServiceInterface
	auditService services.AuditServiceInterface
	suggestLog   services.SuggestionLoggerInterface
	metrics      services.MetricsRecorderInterface

	running atomic.Bool
}

// NewLoader creates a report loader
func NewLoader(
	collegeRepo repositories.CollegeRepositoryInterface,
	cutoffRepo repositories.CutoffRepositoryInterface,
	dataService services.DataServiceInterface,
	auditService services.AuditServiceInterface,
	suggestLog services.SuggestionLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *Loader {
	return &Loader{
		collegeRepo:  collegeRepo,
		cutoffRepo:   cutoffRepo,
		dataService:  dataService,
		auditService: auditService,
		suggestLog:   suggestLog,
		metrics:      metrics,
	}
}

// LoadFile ingests one cutoff report PDF for the given admission year.
// Only one run may be active at a time. performedBy may be uuid.Nil for
// unattended CLI runs; the audit entry is skipped in that case.
func (l *Loader) LoadFile(ctx context.Context, path string, year int, performedBy uuid.UUID) (*Summary, error) {
	if !l.running.CompareAndSwap(false, true) {
		return nil, ErrInProgress
	}
	defer l.running.Store(false)

	start := time.Now()
	fileName := filepath.Base(path)
	l.suggestLog.LogIngestStarted(ctx, fileName)

	pages, err := ExtractPages(path)
	if err != nil {
		l.failFile(ctx, fileName, err)
		return nil, fmt.Errorf("failed to extract %s: %w", fileName, err)
	}

	result := NewParser().Parse(pages)
	if result.Records == 0 {
		l.failFile(ctx, fileName, ErrNoRecords)
		return nil, fmt.Errorf("%s: %w", fileName, ErrNoRecords)
	}
	l.suggestLog.LogIngestFileParsed(ctx, fileName, len(result.Colleges), result.Records)

	summary := &Summary{File: fileName, Skipped: result.Skipped}
	for _, record := range result.Colleges {
		if err := l.loadCollege(record, year, summary); err != nil {
			l.failFile(ctx, fileName, err)
			return nil, err
		}
	}

	rows, err := l.dataService.RebuildRankings(ctx)
	if err != nil {
		l.failFile(ctx, fileName, err)
		return nil, err
	}
	summary.RankingRows = rows
	summary.Duration = time.Since(start)

	if performedBy != uuid.Nil {
		_ = l.auditService.LogDataIngested(performedBy, fileName, summary.Cutoffs)
	}

	l.metrics.IncrementCounter("ingest_file", map[string]string{"status": "success"})
	l.metrics.RecordGauge("ingest_records", float64(summary.Cutoffs), nil)
	l.metrics.RecordProcessingTime("ingest", summary.Duration)
	l.suggestLog.LogIngestCompleted(ctx, 1, summary.Cutoffs, summary.Duration.Milliseconds())

	return summary, nil
}

// loadCollege upserts one college and batch-inserts its parsed cutoffs
func (l *Loader) loadCollege(record *CollegeRecord, year int, summary *Summary) error {
	college, err := l.collegeRepo.FindOrCreate(&models.College{
		Code:   record.Code,
		Name:   record.Name,
		Region: RegionFromCollegeName(record.Name),
	})
	if err != nil {
		return fmt.Errorf("failed to store college %d: %w", record.Code, err)
	}
	summary.Colleges++

	cutoffs := make([]models.Cutoff, 0, len(record.Cutoffs))
	for _, row := range record.Cutoffs {
		rank := row.Rank
		cutoffs = append(cutoffs, models.Cutoff{
			CollegeID:   college.ID,
			CollegeCode: college.Code,
			Branch:      row.Branch,
			CourseCode:  row.CourseCode,
			Category:    row.Category,
			Rank:        &rank,
			Percentile:  row.Percentile,
			Gender:      row.Gender,
			Level:       row.Level,
			Year:        year,
			Stage:       row.Stage,
		})
	}

	for from := 0; from < len(cutoffs); from += cutoffBatchSize {
		to := from + cutoffBatchSize
		if to > len(cutoffs) {
			to = len(cutoffs)
		}
		if err := l.cutoffRepo.CreateBatch(cutoffs[from:to]); err != nil {
			return fmt.Errorf("failed to store cutoffs for college %d: %w", record.Code, err)
		}
	}
	summary.Cutoffs += len(cutoffs)

	return nil
}

func (l *Loader) failFile(ctx context.Context, fileName string, err error) {
	l.metrics.IncrementCounter("ingest_file", map[string]string{"status": "failed"})
	l.suggestLog.LogIngestFailed(ctx, fileName, err.Error())
}
