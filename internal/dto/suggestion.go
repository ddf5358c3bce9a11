package dto

import (
	"cap-recommender/internal/models"

	"github.com/shopspring/decimal"
)

// Suggestion Request DTOs

// SuggestCollegesRequest carries the student profile for a suggestion query
type SuggestCollegesRequest struct {
	Rank               int    `query:"rank" validate:"required,min=1"`
	Caste              string `query:"caste" validate:"required,min=1,max=20"`
	Gender             string `query:"gender" validate:"omitempty,max=10"`
	SeatType           string `query:"seat_type" validate:"required,min=1,max=5"`
	SpecialReservation string `query:"special_reservation" validate:"omitempty,max=20"`
	Year               int    `query:"year" validate:"omitempty,min=2000,max=2100"`
	Limit              int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// CollegeDetailsRequest narrows a suggestion query by college and branch
type CollegeDetailsRequest struct {
	SuggestCollegesRequest
	CollegeName string `query:"college_name" validate:"omitempty,max=500"`
	Branch      string `query:"branch" validate:"omitempty,max=500"`
}

// TopCollegesRequest asks for the best colleges of one canonical branch
type TopCollegesRequest struct {
	BranchCode string `query:"branch_code" validate:"required,min=1,max=20"`
	MaxRank    int    `query:"max_rank" validate:"omitempty,min=1"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Suggestion Response DTOs

// CollegeSuggestion is one eligible cutoff record joined with its college
type CollegeSuggestion struct {
	CollegeCode      int             `json:"college_code"`
	CollegeName      string          `json:"college_name"`
	CollegeStatus    string          `json:"college_status,omitempty"`
	Region           string          `json:"region,omitempty"`
	Branch           string          `json:"branch"`
	NormalizedBranch string          `json:"normalized_branch"`
	Category         string          `json:"category"`
	Rank             int             `json:"rank"`
	Percentile       decimal.Decimal `json:"percentile"`
	Level            string          `json:"level"`
	Year             int             `json:"year,omitempty"`
}

// SuggestionResponse is the list of eligible seats for a profile
type SuggestionResponse struct {
	Suggestions []CollegeSuggestion `json:"suggestions"`
	Total       int                 `json:"total"`
}

// StatisticsResponse summarizes the match set for a profile
type StatisticsResponse struct {
	Statistics *models.SuggestionStatistics `json:"statistics"`
}

// BranchesResponse lists the distinct canonical branch names
type BranchesResponse struct {
	Branches []string `json:"branches"`
	Total    int      `json:"total"`
}

// BranchMappingsResponse lists original-to-canonical branch pairs
type BranchMappingsResponse struct {
	Report *models.BranchMappingReport `json:"report"`
}

// RegionsResponse lists the distinct college regions
type RegionsResponse struct {
	Regions []string `json:"regions"`
	Total   int      `json:"total"`
}

// TopCollegesResponse lists ranking rows for one canonical branch
type TopCollegesResponse struct {
	BranchCode string                 `json:"branch_code"`
	Colleges   []models.RankedCollege `json:"colleges"`
	Total      int                    `json:"total"`
}
