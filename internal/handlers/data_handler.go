package handlers

import (
	"net/http"

	"cap-recommender/internal/dto"
	"cap-recommender/internal/errors"
	"cap-recommender/internal/services"

	"github.com/labstack/echo/v4"
)

// DataHandler handles administrative dataset operations
type DataHandler struct {
	dataService services.DataServiceInterface
}

// NewDataHandler creates a new data admin handler
func NewDataHandler(dataService services.DataServiceInterface) *DataHandler {
	return &DataHandler{
		dataService: dataService,
	}
}

// Overview returns counts and coverage of the loaded dataset
// @Summary Dataset overview
// @Description Counts of colleges, cutoffs and ranking rows, plus the loaded years, categories, branches and regions
// @Tags Data Administration
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.DataOverview} "Dataset overview"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid token"
// @Failure 403 {object} errors.ErrorResponse "PERMISSION_001 - Insufficient permissions"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/data/overview [get]
func (h *DataHandler) Overview(c echo.Context) error {
	overview, err := h.dataService.Overview()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: overview,
	})
}

// ClearYear drops one admission year of cutoff data
// @Summary Clear one year
// @Description Delete every cutoff record of the given admission year. The ranking table is not rebuilt automatically.
// @Tags Data Administration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ClearYearRequest true "Year to clear"
// @Success 200 {object} SuccessResponse{data=dto.ClearDataResponse} "Records deleted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid token"
// @Failure 403 {object} errors.ErrorResponse "PERMISSION_001 - Insufficient permissions"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/data/clear-year [post]
func (h *DataHandler) ClearYear(c echo.Context) error {
	var req dto.ClearYearRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	deleted, err := h.dataService.ClearYear(adminID, req.Year)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ClearDataResponse{
			Deleted: deleted,
			Message: "Year cleared successfully",
		},
	})
}

// ClearAll drops the entire cutoff dataset
// @Summary Clear all data
// @Description Delete all colleges, cutoffs and ranking rows. Users, roles and audit logs are untouched.
// @Tags Data Administration
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse "Dataset cleared"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid token"
// @Failure 403 {object} errors.ErrorResponse "PERMISSION_001 - Insufficient permissions"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/data/clear [post]
func (h *DataHandler) ClearAll(c echo.Context) error {
	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.dataService.ClearAll(adminID); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Dataset cleared successfully",
	})
}

// RebuildRankings recomputes the per-branch college ranking table
// @Summary Rebuild rankings
// @Description Recompute the best closing rank per college and canonical branch across all loaded cutoffs, replacing the previous ranking table.
// @Tags Data Administration
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.RebuildRankingsResponse} "Rankings rebuilt"
// @Failure 401 {object} errors.ErrorResponse "AUTH_004 - Missing or invalid token"
// @Failure 403 {object} errors.ErrorResponse "PERMISSION_001 - Insufficient permissions"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/data/rebuild-rankings [post]
func (h *DataHandler) RebuildRankings(c echo.Context) error {
	rows, err := h.dataService.RebuildRankings(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.RebuildRankingsResponse{
			Rows:    rows,
			Message: "Rankings rebuilt successfully",
		},
	})
}
