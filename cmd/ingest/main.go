package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cap-recommender/internal/config"
	"cap-recommender/internal/database"
	"cap-recommender/internal/ingest"
	"cap-recommender/internal/repositories"
	"cap-recommender/internal/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Loads CAP cutoff report PDFs into the database and rebuilds the
// college rankings. Files are given as arguments; with none, every
// *.pdf under the configured data directory is loaded.
func main() {
	year := flag.Int("year", 0, "admission year of the reports (default: INGEST_REPORT_YEAR)")
	dir := flag.String("dir", "", "directory scanned for *.pdf when no files are given (default: INGEST_DATA_DIR)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *year == 0 {
		*year = cfg.Ingest.ReportYear
	}
	if *dir == "" {
		*dir = cfg.Ingest.DataDir
	}

	files := flag.Args()
	if len(files) == 0 {
		matches, err := filepath.Glob(filepath.Join(*dir, "*.pdf"))
		if err != nil {
			log.Fatal("Failed to scan data directory: ", err)
		}
		files = matches
	}
	if len(files) == 0 {
		log.Fatalf("No PDF files found in %s and none given on the command line", *dir)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	collegeRepo := repositories.NewCollegeRepository(db)
	cutoffRepo := repositories.NewCutoffRepository(db)
	rankedRepo := repositories.NewRankedCollegeRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)

	metrics := services.NewPrometheusMetrics()
	suggestLog := services.NewSuggestionLogger(logger)
	auditService := services.NewAuditService(auditRepo)
	normalizer := services.NewBranchNormalizer()
	dataService := services.NewDataService(
		collegeRepo, cutoffRepo, rankedRepo,
		normalizer, auditService, suggestLog, metrics,
	)

	loader := ingest.NewLoader(collegeRepo, cutoffRepo, dataService, auditService, suggestLog, metrics)

	ctx := context.Background()
	failed := 0
	for _, file := range files {
		summary, err := loader.LoadFile(ctx, file, *year, uuid.Nil)
		if err != nil {
			logger.Error("Ingest failed", "file", file, "error", err)
			failed++
			continue
		}
		fmt.Printf("%s: %d colleges, %d cutoffs (%d skipped), %d ranking rows in %s\n",
			filepath.Base(summary.File), summary.Colleges, summary.Cutoffs,
			summary.Skipped, summary.RankingRows, summary.Duration.Round(time.Millisecond))
	}

	if failed > 0 {
		os.Exit(1)
	}
}
