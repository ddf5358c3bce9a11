package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cap-recommender/internal/dto"
	"cap-recommender/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestDataHandler(t *testing.T) {
	suite.Run(t, new(DataHandlerSuite))
}

type DataHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	dataService *service_mocks.MockDataServiceInterface
	handler     *DataHandler
	e           *echo.Echo
	adminID     uuid.UUID
}

func (s *DataHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.dataService = service_mocks.NewMockDataServiceInterface(s.ctrl)
	s.handler = NewDataHandler(s.dataService)
	s.e = echo.New()
	s.e.Validator = &CustomValidator{validator: validator.New()}
	s.adminID = uuid.New()
}

func (s *DataHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DataHandlerSuite) newJSONContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.adminID)
	return c, rec
}

func (s *DataHandlerSuite) TestOverview() {
	req := httptest.NewRequest(http.MethodGet, "/admin/data/overview", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	overview := &dto.DataOverview{
		Colleges:       320,
		Cutoffs:        41250,
		RankedColleges: 1480,
		Years:          []int{2024, 2023},
		Categories:     28,
		Branches:       19,
		Regions:        []string{"Mumbai", "Nagpur", "Pune"},
	}
	s.dataService.EXPECT().Overview().Return(overview, nil).Times(1)

	err := s.handler.Overview(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, _ := json.Marshal(response.Data)
	var payload dto.DataOverview
	s.NoError(json.Unmarshal(data, &payload))
	s.Equal(int64(41250), payload.Cutoffs)
	s.Equal([]int{2024, 2023}, payload.Years)
}

func (s *DataHandlerSuite) TestOverview_ServiceError() {
	req := httptest.NewRequest(http.MethodGet, "/admin/data/overview", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.dataService.EXPECT().Overview().Return(nil, errors.New("connection refused")).Times(1)

	err := s.handler.Overview(c)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *DataHandlerSuite) TestClearYear() {
	c, rec := s.newJSONContext(http.MethodPost, "/admin/data/clear-year", dto.ClearYearRequest{Year: 2023})

	s.dataService.EXPECT().ClearYear(s.adminID, 2023).Return(int64(1250), nil).Times(1)

	err := s.handler.ClearYear(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, _ := json.Marshal(response.Data)
	var payload dto.ClearDataResponse
	s.NoError(json.Unmarshal(data, &payload))
	s.Equal(int64(1250), payload.Deleted)
}

func (s *DataHandlerSuite) TestClearYear_InvalidYearFailsValidation() {
	c, _ := s.newJSONContext(http.MethodPost, "/admin/data/clear-year", map[string]int{"year": 1850})

	err := s.handler.ClearYear(c)
	s.Error(err)
}

func (s *DataHandlerSuite) TestClearYear_MissingUserContext() {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(dto.ClearYearRequest{Year: 2023})
	req := httptest.NewRequest(http.MethodPost, "/admin/data/clear-year", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.ClearYear(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *DataHandlerSuite) TestClearAll() {
	c, rec := s.newJSONContext(http.MethodPost, "/admin/data/clear", nil)

	s.dataService.EXPECT().ClearAll(s.adminID).Return(nil).Times(1)

	err := s.handler.ClearAll(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DataHandlerSuite) TestRebuildRankings() {
	c, rec := s.newJSONContext(http.MethodPost, "/admin/data/rebuild-rankings", nil)

	s.dataService.EXPECT().RebuildRankings(gomock.Any()).Return(1480, nil).Times(1)

	err := s.handler.RebuildRankings(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data, _ := json.Marshal(response.Data)
	var payload dto.RebuildRankingsResponse
	s.NoError(json.Unmarshal(data, &payload))
	s.Equal(1480, payload.Rows)
}

func (s *DataHandlerSuite) TestRebuildRankings_ServiceError() {
	c, rec := s.newJSONContext(http.MethodPost, "/admin/data/rebuild-rankings", nil)

	s.dataService.EXPECT().RebuildRankings(gomock.Any()).Return(0, errors.New("no cutoff data loaded")).Times(1)

	err := s.handler.RebuildRankings(c)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
}
