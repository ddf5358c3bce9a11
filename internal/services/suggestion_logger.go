package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SuggestionLogger provides structured logging for suggestion and ingestion
// operations. Student profile fields are never logged beyond the rank and
// seat type; caste is treated as sensitive.
type SuggestionLogger struct {
	logger *slog.Logger
}

// NewSuggestionLogger creates a new suggestion logger
func NewSuggestionLogger(logger *slog.Logger) SuggestionLoggerInterface {
	return &SuggestionLogger{
		logger: logger,
	}
}

func (sl *SuggestionLogger) LogSuggestionStarted(ctx context.Context, rank int, seatType, special string) {
	sl.logger.InfoContext(ctx, "suggestion query started",
		slog.String("event_type", "suggestion_started"),
		slog.Int("rank", rank),
		slog.String("seat_type", seatType),
		slog.String("special_reservation", special),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SuggestionLogger) LogSuggestionCompleted(ctx context.Context, resultsCount int, durationMs int64) {
	sl.logger.InfoContext(ctx, "suggestion query completed",
		slog.String("event_type", "suggestion_completed"),
		slog.Int("results_count", resultsCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SuggestionLogger) LogSuggestionFailed(ctx context.Context, errorMsg string, durationMs int64) {
	sl.logger.WarnContext(ctx, "suggestion query failed",
		slog.String("event_type", "suggestion_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SuggestionLogger) LogIngestStarted(ctx context.Context, fileName string) {
	sl.logger.InfoContext(ctx, "ingest started",
		slog.String("event_type", "ingest_started"),
		slog.String("file", fileName),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SuggestionLogger) LogIngestFileParsed(ctx context.Context, fileName string, colleges, cutoffs int) {
	sl.logger.InfoContext(ctx, "ingest file parsed",
		slog.String("event_type", "ingest_file_parsed"),
		slog.String("file", fileName),
		slog.Int("colleges", colleges),
		slog.Int("cutoffs", cutoffs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SuggestionLogger) LogIngestCompleted(ctx context.Context, files, records int, durationMs int64) {
	sl.logger.InfoContext(ctx, "ingest completed",
		slog.String("event_type", "ingest_completed"),
		slog.Int("files", files),
		slog.Int("records", records),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SuggestionLogger) LogIngestFailed(ctx context.Context, fileName string, errorMsg string) {
	sl.logger.ErrorContext(ctx, "ingest failed",
		slog.String("event_type", "ingest_failed"),
		slog.String("file", fileName),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SuggestionLogger) LogRankingsRebuilt(ctx context.Context, rows int, durationMs int64) {
	sl.logger.InfoContext(ctx, "rankings rebuilt",
		slog.String("event_type", "rankings_rebuilt"),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SuggestionLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	sl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (sl *SuggestionLogger) LogAuthorizationFailure(ctx context.Context, operation string, userID uuid.UUID, requiredPermission string) {
	sl.logger.WarnContext(ctx, "authorization failure",
		slog.String("event_type", "authorization_failure"),
		slog.String("operation", operation),
		slog.String("user_id", userID.String()),
		slog.String("required_permission", requiredPermission),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
