package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"cap-recommender/internal/dto"
	"cap-recommender/internal/models"
	"cap-recommender/internal/services"
	"cap-recommender/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestSuggestionHandler(t *testing.T) {
	suite.Run(t, new(SuggestionHandlerSuite))
}

type SuggestionHandlerSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	suggestionService *service_mocks.MockSuggestionServiceInterface
	auditService      *service_mocks.MockAuditServiceInterface
	handler           *SuggestionHandler
	e                 *echo.Echo
}

func (s *SuggestionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.suggestionService = service_mocks.NewMockSuggestionServiceInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewSuggestionHandler(s.suggestionService, s.auditService)
	s.e = echo.New()
	s.e.Validator = &CustomValidator{validator: validator.New()}
}

func (s *SuggestionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SuggestionHandlerSuite) newGetContext(path string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodGet, path+"?"+q.Encode(), nil)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func sampleSuggestions() []dto.CollegeSuggestion {
	return []dto.CollegeSuggestion{
		{
			CollegeCode:      6006,
			CollegeName:      "College of Engineering, Pune",
			Region:           "Pune",
			Branch:           "Computer Engineering",
			NormalizedBranch: "CSE",
			Category:         "GOPENS",
			Rank:             6200,
			Percentile:       decimal.NewFromFloat(99.12),
			Level:            "state level",
			Year:             2024,
		},
		{
			CollegeCode:      3012,
			CollegeName:      "Veermata Jijabai Technological Institute, Mumbai",
			Region:           "Mumbai",
			Branch:           "Computer Engineering",
			NormalizedBranch: "CSE",
			Category:         "GOPENS",
			Rank:             9800,
			Percentile:       decimal.NewFromFloat(98.40),
			Level:            "state level",
			Year:             2024,
		},
	}
}

func (s *SuggestionHandlerSuite) TestSuggestColleges_Success() {
	c, rec := s.newGetContext("/suggestions", map[string]string{
		"rank":      "12000",
		"caste":     "OBC",
		"gender":    "MALE",
		"seat_type": "H",
	})

	suggestions := sampleSuggestions()
	s.suggestionService.EXPECT().
		SuggestColleges(gomock.Any(), models.StudentProfile{
			Rank:     12000,
			Caste:    "OBC",
			Gender:   "MALE",
			SeatType: "H",
		}, 0, 0).
		Return(suggestions, nil).
		Times(1)
	s.auditService.EXPECT().
		LogSuggestionRun(gomock.Nil(), 12000, 2, gomock.Any()).
		Return(nil).
		Times(1)

	err := s.handler.SuggestColleges(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, _ := json.Marshal(response.Data)
	var payload dto.SuggestionResponse
	s.NoError(json.Unmarshal(data, &payload))
	s.Equal(2, payload.Total)
	s.Equal("College of Engineering, Pune", payload.Suggestions[0].CollegeName)
}

func (s *SuggestionHandlerSuite) TestSuggestColleges_AuthenticatedUserIsAudited() {
	userID := uuid.New()
	c, rec := s.newGetContext("/suggestions", map[string]string{
		"rank":      "500",
		"caste":     "OPEN",
		"seat_type": "AI",
	})
	c.Set("user_id", userID)

	s.suggestionService.EXPECT().
		SuggestColleges(gomock.Any(), gomock.Any(), 0, 0).
		Return(sampleSuggestions(), nil).
		Times(1)
	s.auditService.EXPECT().
		LogSuggestionRun(&userID, 500, 2, gomock.Any()).
		Return(nil).
		Times(1)

	err := s.handler.SuggestColleges(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SuggestionHandlerSuite) TestSuggestColleges_MissingRankFailsValidation() {
	c, _ := s.newGetContext("/suggestions", map[string]string{
		"caste":     "OPEN",
		"seat_type": "H",
	})

	err := s.handler.SuggestColleges(c)
	s.Error(err)
}

func (s *SuggestionHandlerSuite) TestSuggestColleges_ZeroRankFailsRequestValidation() {
	// Rank bounds live in the request DTO, not in the resolver: the service
	// must never be called for an out-of-bounds rank.
	c, _ := s.newGetContext("/suggestions", map[string]string{
		"rank":      "0",
		"caste":     "OPEN",
		"seat_type": "H",
	})

	err := s.handler.SuggestColleges(c)
	s.Error(err)
}

func (s *SuggestionHandlerSuite) TestSuggestColleges_NoEligibleColleges() {
	c, rec := s.newGetContext("/suggestions", map[string]string{
		"rank":      strconv.Itoa(250000),
		"caste":     "OPEN",
		"seat_type": "H",
	})

	s.suggestionService.EXPECT().
		SuggestColleges(gomock.Any(), gomock.Any(), 0, 0).
		Return(nil, services.ErrNoEligibleColleges).
		Times(1)

	err := s.handler.SuggestColleges(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SUGGESTION_001", response.Error.Code)
}

func (s *SuggestionHandlerSuite) TestCollegeDetails_Success() {
	c, rec := s.newGetContext("/suggestions/details", map[string]string{
		"rank":         "12000",
		"caste":        "OBC",
		"seat_type":    "H",
		"college_name": "pune",
		"branch":       "CS",
		"year":         "2024",
	})

	s.suggestionService.EXPECT().
		CollegeDetails(gomock.Any(), gomock.Any(), "pune", "CS", 2024, 0).
		Return(sampleSuggestions()[:1], nil).
		Times(1)
	s.auditService.EXPECT().
		LogSuggestionRun(gomock.Nil(), 12000, 1, gomock.Any()).
		Return(nil).
		Times(1)

	err := s.handler.CollegeDetails(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SuggestionHandlerSuite) TestCollegeDetails_InvalidProfile() {
	c, rec := s.newGetContext("/suggestions/details", map[string]string{
		"rank":      "12000",
		"caste":     "X",
		"seat_type": "H",
	})

	s.suggestionService.EXPECT().
		CollegeDetails(gomock.Any(), gomock.Any(), "", "", 0, 0).
		Return(nil, services.ErrInvalidProfile).
		Times(1)

	err := s.handler.CollegeDetails(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SUGGESTION_002", response.Error.Code)
}

func (s *SuggestionHandlerSuite) TestStatistics_Success() {
	c, rec := s.newGetContext("/suggestions/statistics", map[string]string{
		"rank":      "12000",
		"caste":     "OBC",
		"seat_type": "H",
	})

	stats := &models.SuggestionStatistics{
		TotalMatches:   42,
		UniqueColleges: 17,
		UniqueBranches: 6,
		MinRank:        6200,
		MaxRank:        88000,
	}
	s.suggestionService.EXPECT().
		Statistics(gomock.Any(), gomock.Any(), 0).
		Return(stats, nil).
		Times(1)

	err := s.handler.Statistics(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, _ := json.Marshal(response.Data)
	var payload dto.StatisticsResponse
	s.NoError(json.Unmarshal(data, &payload))
	s.Equal(42, payload.Statistics.TotalMatches)
}

func (s *SuggestionHandlerSuite) TestAvailableBranches() {
	req := httptest.NewRequest(http.MethodGet, "/branches", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.suggestionService.EXPECT().
		AvailableBranches(gomock.Any()).
		Return([]string{"CIVIL", "CSE", "IT", "MECH"}, nil).
		Times(1)

	err := s.handler.AvailableBranches(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, _ := json.Marshal(response.Data)
	var payload dto.BranchesResponse
	s.NoError(json.Unmarshal(data, &payload))
	s.Equal(4, payload.Total)
	s.Contains(payload.Branches, "CSE")
}

func (s *SuggestionHandlerSuite) TestBranchMappings() {
	req := httptest.NewRequest(http.MethodGet, "/branches/mappings", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	report := &models.BranchMappingReport{
		TotalOriginalBranches:   3,
		TotalNormalizedBranches: 1,
		Mappings: []models.BranchMapping{
			{Original: "Computer Engineering", Canonical: "CSE"},
			{Original: "Computer Science and Engineering", Canonical: "CSE"},
			{Original: "Computer Science & Engineering", Canonical: "CSE"},
		},
	}
	s.suggestionService.EXPECT().
		BranchMappings(gomock.Any()).
		Return(report, nil).
		Times(1)

	err := s.handler.BranchMappings(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, _ := json.Marshal(response.Data)
	var payload dto.BranchMappingsResponse
	s.NoError(json.Unmarshal(data, &payload))
	s.Equal(3, payload.Report.TotalOriginalBranches)
	s.Equal(1, payload.Report.TotalNormalizedBranches)
}

func (s *SuggestionHandlerSuite) TestAvailableRegions() {
	req := httptest.NewRequest(http.MethodGet, "/regions", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.suggestionService.EXPECT().
		AvailableRegions(gomock.Any()).
		Return([]string{"Mumbai", "Nagpur", "Pune"}, nil).
		Times(1)

	err := s.handler.AvailableRegions(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SuggestionHandlerSuite) TestTopColleges_Success() {
	c, rec := s.newGetContext("/branches/top-colleges", map[string]string{
		"branch_code": "CSE",
		"max_rank":    "20000",
		"limit":       "10",
	})

	ranked := []models.RankedCollege{
		{CollegeName: "College of Engineering, Pune", BranchCode: "CSE", CutoffRank: 6200, RankPosition: 1},
		{CollegeName: "Veermata Jijabai Technological Institute, Mumbai", BranchCode: "CSE", CutoffRank: 9800, RankPosition: 2},
	}
	s.suggestionService.EXPECT().
		TopCollegesForBranch(gomock.Any(), "CSE", 20000, 10).
		Return(ranked, nil).
		Times(1)

	err := s.handler.TopColleges(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, _ := json.Marshal(response.Data)
	var payload dto.TopCollegesResponse
	s.NoError(json.Unmarshal(data, &payload))
	s.Equal("CSE", payload.BranchCode)
	s.Equal(2, payload.Total)
}

func (s *SuggestionHandlerSuite) TestTopColleges_MissingBranchFailsValidation() {
	c, _ := s.newGetContext("/branches/top-colleges", map[string]string{
		"max_rank": "20000",
	})

	err := s.handler.TopColleges(c)
	s.Error(err)
}
