package handlers

import (
	"net/http"
	"time"

	"cap-recommender/internal/errors"
	"cap-recommender/internal/repositories"
	"cap-recommender/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	collegeRepo     repositories.CollegeRepositoryInterface
	cutoffRepo      repositories.CutoffRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	dataService     services.DataServiceInterface
	passwordService services.PasswordServiceInterface
	generator       services.SampleDataGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	collegeRepo repositories.CollegeRepositoryInterface,
	cutoffRepo repositories.CutoffRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	dataService services.DataServiceInterface,
	passwordService services.PasswordServiceInterface,
) *DevHandler {
	return &DevHandler{
		collegeRepo:     collegeRepo,
		cutoffRepo:      cutoffRepo,
		userRepo:        userRepo,
		dataService:     dataService,
		passwordService: passwordService,
		generator:       services.NewSampleDataGenerator(),
	}
}

// SeedSampleData loads a synthetic cutoff dataset for local development
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - colleges: Number of colleges to seed (default: all, max: pool size)
//   - years: Comma-free count of admission years ending at the current year
//     (default: 2, max: 5)
//   - users: Number of demo users to create with the password "Demo#Pass123"
//     (default: 0)
//
// The ranking table is rebuilt after seeding so suggestion endpoints work
// immediately.
func (h *DevHandler) SeedSampleData(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	collegeCount := getIntParam(c, "colleges", 0)
	yearCount := getIntParam(c, "years", 2)
	if yearCount < 1 {
		yearCount = 1
	}
	if yearCount > 5 {
		yearCount = 5
	}

	currentYear := time.Now().Year()
	colleges := h.generator.GenerateColleges(collegeCount)

	totalCutoffs := 0
	for _, college := range colleges {
		created, err := h.collegeRepo.FindOrCreate(college)
		if err != nil {
			return SendSystemError(c, err)
		}

		for offset := 0; offset < yearCount; offset++ {
			cutoffs := h.generator.GenerateCutoffs(created, currentYear-offset)
			if err := h.cutoffRepo.CreateBatch(cutoffs); err != nil {
				return SendSystemError(c, err)
			}
			totalCutoffs += len(cutoffs)
		}
	}

	rows, err := h.dataService.RebuildRankings(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	usersSeeded, err := h.seedDemoUsers(getIntParam(c, "users", 0))
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"colleges_seeded": len(colleges),
			"cutoffs_seeded":  totalCutoffs,
			"ranking_rows":    rows,
			"years":           yearCount,
			"users_seeded":    usersSeeded,
		},
		Message: "Sample data seeded successfully",
	})
}

// seedDemoUsers creates fake users sharing a known password. Emails that
// already exist are skipped so reseeding is harmless.
func (h *DevHandler) seedDemoUsers(count int) (int, error) {
	if count <= 0 {
		return 0, nil
	}

	hash, err := h.passwordService.HashPasswordWithoutValidation("Demo#Pass123")
	if err != nil {
		return 0, err
	}

	created := 0
	for _, user := range h.generator.GenerateDemoUsers(count) {
		if existing, _ := h.userRepo.GetByEmail(user.Email); existing != nil {
			continue
		}

		user.PasswordHash = hash
		if err := h.userRepo.Create(user); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
