package handlers

import (
	"net/http"

	"cap-recommender/internal/dto"
	"cap-recommender/internal/errors"
	"cap-recommender/internal/models"
	"cap-recommender/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SuggestionHandler handles college suggestion endpoints
type SuggestionHandler struct {
	suggestionService services.SuggestionServiceInterface
	auditService      services.AuditServiceInterface
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(
	suggestionService services.SuggestionServiceInterface,
	auditService services.AuditServiceInterface,
) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
		auditService:      auditService,
	}
}

func profileFromRequest(req dto.SuggestCollegesRequest) models.StudentProfile {
	return models.StudentProfile{
		Rank:               req.Rank,
		Caste:              req.Caste,
		Gender:             req.Gender,
		SeatType:           req.SeatType,
		SpecialReservation: req.SpecialReservation,
	}
}

func (h *SuggestionHandler) sendProfileError(c echo.Context, err error) error {
	switch err {
	case services.ErrInvalidProfile:
		return SendError(c, errors.SuggestionInvalidProfile, errors.WithDetails(err.Error()))
	case services.ErrNoEligibleColleges:
		return SendError(c, errors.SuggestionNoResults)
	}
	return SendSystemError(c, err)
}

// auditSuggestionRun records a suggestion query against the requesting user,
// if any. Anonymous queries are logged without a user ID.
func (h *SuggestionHandler) auditSuggestionRun(c echo.Context, rank, matches int) {
	var userID *uuid.UUID
	if id, err := getUserIDFromContext(c); err == nil {
		userID = &id
	}
	_ = h.auditService.LogSuggestionRun(userID, rank, matches, getClientIP(c))
}

// SuggestColleges returns the colleges a student is eligible for
// @Summary Suggest colleges
// @Description Resolve the student's eligibility categories from caste, gender, seat type and reservation, then list every cutoff at or above the given rank, best college first.
// @Tags Suggestions
// @Produce json
// @Param rank query int true "Exam rank (positive)"
// @Param caste query string true "Caste code, e.g. OPEN, OBC, SC"
// @Param gender query string false "MALE or FEMALE"
// @Param seat_type query string true "Seat type: H (home), O (other), S (state) or AI (all india)"
// @Param special_reservation query string false "Special reservation: PWD, DEFENCE, ORPHAN or TFWS"
// @Param year query int false "Admission year filter"
// @Param limit query int false "Result limit (max 100)" default(20)
// @Success 200 {object} SuccessResponse{data=dto.SuggestionResponse} "Eligible colleges"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 or SUGGESTION_002 - Invalid profile"
// @Failure 404 {object} errors.ErrorResponse "SUGGESTION_001 - No eligible colleges"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /suggestions [get]
func (h *SuggestionHandler) SuggestColleges(c echo.Context) error {
	var req dto.SuggestCollegesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	suggestions, err := h.suggestionService.SuggestColleges(c.Request().Context(), profileFromRequest(req), req.Year, req.Limit)
	if err != nil {
		return h.sendProfileError(c, err)
	}

	h.auditSuggestionRun(c, req.Rank, len(suggestions))

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.SuggestionResponse{
			Suggestions: suggestions,
			Total:       len(suggestions),
		},
	})
}

// CollegeDetails narrows a suggestion query by college name and branch
// @Summary College details
// @Description List eligible seats filtered by college name (substring) and branch. Branch shorthand like CS or MECH expands to the full branch names.
// @Tags Suggestions
// @Produce json
// @Param rank query int true "Exam rank (positive)"
// @Param caste query string true "Caste code"
// @Param gender query string false "MALE or FEMALE"
// @Param seat_type query string true "Seat type code"
// @Param special_reservation query string false "Special reservation"
// @Param college_name query string false "College name filter (case-insensitive substring)"
// @Param branch query string false "Branch name or shorthand"
// @Param year query int false "Admission year filter"
// @Param limit query int false "Result limit (max 100)" default(50)
// @Success 200 {object} SuccessResponse{data=dto.SuggestionResponse} "Matching seats"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 or SUGGESTION_002 - Invalid profile"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /suggestions/details [get]
func (h *SuggestionHandler) CollegeDetails(c echo.Context) error {
	var req dto.CollegeDetailsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	suggestions, err := h.suggestionService.CollegeDetails(c.Request().Context(), profileFromRequest(req.SuggestCollegesRequest), req.CollegeName, req.Branch, req.Year, req.Limit)
	if err != nil {
		return h.sendProfileError(c, err)
	}

	h.auditSuggestionRun(c, req.Rank, len(suggestions))

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.SuggestionResponse{
			Suggestions: suggestions,
			Total:       len(suggestions),
		},
	})
}

// Statistics summarizes the match set for a profile
// @Summary Suggestion statistics
// @Description Aggregate the eligible seats for a profile: totals, distinct colleges and branches, rank range, levels and categories.
// @Tags Suggestions
// @Produce json
// @Param rank query int true "Exam rank (positive)"
// @Param caste query string true "Caste code"
// @Param gender query string false "MALE or FEMALE"
// @Param seat_type query string true "Seat type code"
// @Param special_reservation query string false "Special reservation"
// @Param year query int false "Admission year filter"
// @Success 200 {object} SuccessResponse{data=dto.StatisticsResponse} "Match statistics"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 or SUGGESTION_002 - Invalid profile"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /suggestions/statistics [get]
func (h *SuggestionHandler) Statistics(c echo.Context) error {
	var req dto.SuggestCollegesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	stats, err := h.suggestionService.Statistics(c.Request().Context(), profileFromRequest(req), req.Year)
	if err != nil {
		return h.sendProfileError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.StatisticsResponse{Statistics: stats},
	})
}

// AvailableBranches lists the canonical branch names found in the dataset
// @Summary Available branches
// @Description List the distinct canonical branch codes present in the loaded cutoff data
// @Tags Suggestions
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.BranchesResponse} "Canonical branches"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /branches [get]
func (h *SuggestionHandler) AvailableBranches(c echo.Context) error {
	branches, err := h.suggestionService.AvailableBranches(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.BranchesResponse{
			Branches: branches,
			Total:    len(branches),
		},
	})
}

// BranchMappings reports how raw branch spellings collapse into codes
// @Summary Branch mappings
// @Description Diagnostics: every raw branch spelling in the dataset and the canonical code it normalizes to
// @Tags Suggestions
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.BranchMappingsResponse} "Branch mapping report"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /branches/mappings [get]
func (h *SuggestionHandler) BranchMappings(c echo.Context) error {
	report, err := h.suggestionService.BranchMappings(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.BranchMappingsResponse{Report: report},
	})
}

// AvailableRegions lists the distinct college regions
// @Summary Available regions
// @Description List the distinct regions of the loaded colleges
// @Tags Suggestions
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.RegionsResponse} "Regions"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /regions [get]
func (h *SuggestionHandler) AvailableRegions(c echo.Context) error {
	regions, err := h.suggestionService.AvailableRegions(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.RegionsResponse{
			Regions: regions,
			Total:   len(regions),
		},
	})
}

// TopColleges lists the best colleges for one canonical branch
// @Summary Top colleges for a branch
// @Description List the ranking table rows of one canonical branch, best closing rank first. Accepts branch shorthand and full names.
// @Tags Suggestions
// @Produce json
// @Param branch_code query string true "Canonical branch code or branch name"
// @Param max_rank query int false "Only colleges with closing rank at or above this"
// @Param limit query int false "Result limit (max 100)"
// @Success 200 {object} SuccessResponse{data=dto.TopCollegesResponse} "Ranked colleges"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /branches/top-colleges [get]
func (h *SuggestionHandler) TopColleges(c echo.Context) error {
	var req dto.TopCollegesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	colleges, err := h.suggestionService.TopCollegesForBranch(c.Request().Context(), req.BranchCode, req.MaxRank, req.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TopCollegesResponse{
			BranchCode: req.BranchCode,
			Colleges:   colleges,
			Total:      len(colleges),
		},
	})
}
