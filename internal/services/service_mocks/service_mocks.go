// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package service_mocks is a generated GoMock package.
package service_mocks

import (
	dto "cap-recommender/internal/dto"
	models "cap-recommender/internal/models"
	context "context"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockEligibilityResolverInterface is a mock of EligibilityResolverInterface interface.
type MockEligibilityResolverInterface struct {
	ctrl     *gomock.Controller
	recorder *MockEligibilityResolverInterfaceMockRecorder
}

// MockEligibilityResolverInterfaceMockRecorder is the mock recorder for MockEligibilityResolverInterface.
type MockEligibilityResolverInterfaceMockRecorder struct {
	mock *MockEligibilityResolverInterface
}

// NewMockEligibilityResolverInterface creates a new mock instance.
func NewMockEligibilityResolverInterface(ctrl *gomock.Controller) *MockEligibilityResolverInterface {
	mock := &MockEligibilityResolverInterface{ctrl: ctrl}
	mock.recorder = &MockEligibilityResolverInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEligibilityResolverInterface) EXPECT() *MockEligibilityResolverInterfaceMockRecorder {
	return m.recorder
}

// Resolve mocks base method.
func (m *MockEligibilityResolverInterface) Resolve(profile models.StudentProfile) (models.EligibilityFilter, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Resolve", profile)
	ret0, _ := ret[0].(models.EligibilityFilter)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Resolve indicates an expected call of Resolve.
func (mr *MockEligibilityResolverInterfaceMockRecorder) Resolve(profile interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Resolve", reflect.TypeOf((*MockEligibilityResolverInterface)(nil).Resolve), profile)
}

// MockBranchNormalizerInterface is a mock of BranchNormalizerInterface interface.
type MockBranchNormalizerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockBranchNormalizerInterfaceMockRecorder
}

// MockBranchNormalizerInterfaceMockRecorder is the mock recorder for MockBranchNormalizerInterface.
type MockBranchNormalizerInterfaceMockRecorder struct {
	mock *MockBranchNormalizerInterface
}

// NewMockBranchNormalizerInterface creates a new mock instance.
func NewMockBranchNormalizerInterface(ctrl *gomock.Controller) *MockBranchNormalizerInterface {
	mock := &MockBranchNormalizerInterface{ctrl: ctrl}
	mock.recorder = &MockBranchNormalizerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBranchNormalizerInterface) EXPECT() *MockBranchNormalizerInterfaceMockRecorder {
	return m.recorder
}

// CanonicalCodes mocks base method.
func (m *MockBranchNormalizerInterface) CanonicalCodes() []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CanonicalCodes")
	ret0, _ := ret[0].([]string)
	return ret0
}

// CanonicalCodes indicates an expected call of CanonicalCodes.
func (mr *MockBranchNormalizerInterfaceMockRecorder) CanonicalCodes() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CanonicalCodes", reflect.TypeOf((*MockBranchNormalizerInterface)(nil).CanonicalCodes))
}

// ExpandForSearch mocks base method.
func (m *MockBranchNormalizerInterface) ExpandForSearch(branch string) []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExpandForSearch", branch)
	ret0, _ := ret[0].([]string)
	return ret0
}

// ExpandForSearch indicates an expected call of ExpandForSearch.
func (mr *MockBranchNormalizerInterfaceMockRecorder) ExpandForSearch(branch interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExpandForSearch", reflect.TypeOf((*MockBranchNormalizerInterface)(nil).ExpandForSearch), branch)
}

// MapWithOriginals mocks base method.
func (m *MockBranchNormalizerInterface) MapWithOriginals(branches []string) []models.BranchMapping {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MapWithOriginals", branches)
	ret0, _ := ret[0].([]models.BranchMapping)
	return ret0
}

// MapWithOriginals indicates an expected call of MapWithOriginals.
func (mr *MockBranchNormalizerInterfaceMockRecorder) MapWithOriginals(branches interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MapWithOriginals", reflect.TypeOf((*MockBranchNormalizerInterface)(nil).MapWithOriginals), branches)
}

// Normalize mocks base method.
func (m *MockBranchNormalizerInterface) Normalize(branch string) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Normalize", branch)
	ret0, _ := ret[0].(string)
	return ret0
}

// Normalize indicates an expected call of Normalize.
func (mr *MockBranchNormalizerInterfaceMockRecorder) Normalize(branch interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Normalize", reflect.TypeOf((*MockBranchNormalizerInterface)(nil).Normalize), branch)
}

// NormalizeAll mocks base method.
func (m *MockBranchNormalizerInterface) NormalizeAll(branches []string) []string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NormalizeAll", branches)
	ret0, _ := ret[0].([]string)
	return ret0
}

// NormalizeAll indicates an expected call of NormalizeAll.
func (mr *MockBranchNormalizerInterfaceMockRecorder) NormalizeAll(branches interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NormalizeAll", reflect.TypeOf((*MockBranchNormalizerInterface)(nil).NormalizeAll), branches)
}

// MockSuggestionServiceInterface is a mock of SuggestionServiceInterface interface.
type MockSuggestionServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSuggestionServiceInterfaceMockRecorder
}

// MockSuggestionServiceInterfaceMockRecorder is the mock recorder for MockSuggestionServiceInterface.
type MockSuggestionServiceInterfaceMockRecorder struct {
	mock *MockSuggestionServiceInterface
}

// NewMockSuggestionServiceInterface creates a new mock instance.
func NewMockSuggestionServiceInterface(ctrl *gomock.Controller) *MockSuggestionServiceInterface {
	mock := &MockSuggestionServiceInterface{ctrl: ctrl}
	mock.recorder = &MockSuggestionServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSuggestionServiceInterface) EXPECT() *MockSuggestionServiceInterfaceMockRecorder {
	return m.recorder
}

// AvailableBranches mocks base method.
func (m *MockSuggestionServiceInterface) AvailableBranches(ctx context.Context) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AvailableBranches", ctx)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AvailableBranches indicates an expected call of AvailableBranches.
func (mr *MockSuggestionServiceInterfaceMockRecorder) AvailableBranches(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AvailableBranches", reflect.TypeOf((*MockSuggestionServiceInterface)(nil).AvailableBranches), ctx)
}

// AvailableRegions mocks base method.
func (m *MockSuggestionServiceInterface) AvailableRegions(ctx context.Context) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AvailableRegions", ctx)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AvailableRegions indicates an expected call of AvailableRegions.
func (mr *MockSuggestionServiceInterfaceMockRecorder) AvailableRegions(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AvailableRegions", reflect.TypeOf((*MockSuggestionServiceInterface)(nil).AvailableRegions), ctx)
}

// BranchMappings mocks base method.
func (m *MockSuggestionServiceInterface) BranchMappings(ctx context.Context) (*models.BranchMappingReport, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BranchMappings", ctx)
	ret0, _ := ret[0].(*models.BranchMappingReport)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BranchMappings indicates an expected call of BranchMappings.
func (mr *MockSuggestionServiceInterfaceMockRecorder) BranchMappings(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BranchMappings", reflect.TypeOf((*MockSuggestionServiceInterface)(nil).BranchMappings), ctx)
}

// CollegeDetails mocks base method.
func (m *MockSuggestionServiceInterface) CollegeDetails(ctx context.Context, profile models.StudentProfile, collegeName, branch string, year, limit int) ([]dto.CollegeSuggestion, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CollegeDetails", ctx, profile, collegeName, branch, year, limit)
	ret0, _ := ret[0].([]dto.CollegeSuggestion)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CollegeDetails indicates an expected call of CollegeDetails.
func (mr *MockSuggestionServiceInterfaceMockRecorder) CollegeDetails(ctx, profile, collegeName, branch, year, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CollegeDetails", reflect.TypeOf((*MockSuggestionServiceInterface)(nil).CollegeDetails), ctx, profile, collegeName, branch, year, limit)
}

// Statistics mocks base method.
func (m *MockSuggestionServiceInterface) Statistics(ctx context.Context, profile models.StudentProfile, year int) (*models.SuggestionStatistics, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Statistics", ctx, profile, year)
	ret0, _ := ret[0].(*models.SuggestionStatistics)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Statistics indicates an expected call of Statistics.
func (mr *MockSuggestionServiceInterfaceMockRecorder) Statistics(ctx, profile, year interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Statistics", reflect.TypeOf((*MockSuggestionServiceInterface)(nil).Statistics), ctx, profile, year)
}

// SuggestColleges mocks base method.
func (m *MockSuggestionServiceInterface) SuggestColleges(ctx context.Context, profile models.StudentProfile, year, limit int) ([]dto.CollegeSuggestion, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SuggestColleges", ctx, profile, year, limit)
	ret0, _ := ret[0].([]dto.CollegeSuggestion)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SuggestColleges indicates an expected call of SuggestColleges.
func (mr *MockSuggestionServiceInterfaceMockRecorder) SuggestColleges(ctx, profile, year, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SuggestColleges", reflect.TypeOf((*MockSuggestionServiceInterface)(nil).SuggestColleges), ctx, profile, year, limit)
}

// TopCollegesForBranch mocks base method.
func (m *MockSuggestionServiceInterface) TopCollegesForBranch(ctx context.Context, branchCode string, maxRank, limit int) ([]models.RankedCollege, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TopCollegesForBranch", ctx, branchCode, maxRank, limit)
	ret0, _ := ret[0].([]models.RankedCollege)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TopCollegesForBranch indicates an expected call of TopCollegesForBranch.
func (mr *MockSuggestionServiceInterfaceMockRecorder) TopCollegesForBranch(ctx, branchCode, maxRank, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TopCollegesForBranch", reflect.TypeOf((*MockSuggestionServiceInterface)(nil).TopCollegesForBranch), ctx, branchCode, maxRank, limit)
}

// MockDataServiceInterface is a mock of DataServiceInterface interface.
type MockDataServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockDataServiceInterfaceMockRecorder
}

// MockDataServiceInterfaceMockRecorder is the mock recorder for MockDataServiceInterface.
type MockDataServiceInterfaceMockRecorder struct {
	mock *MockDataServiceInterface
}

// NewMockDataServiceInterface creates a new mock instance.
func NewMockDataServiceInterface(ctrl *gomock.Controller) *MockDataServiceInterface {
	mock := &MockDataServiceInterface{ctrl: ctrl}
	mock.recorder = &MockDataServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDataServiceInterface) EXPECT() *MockDataServiceInterfaceMockRecorder {
	return m.recorder
}

// ClearAll mocks base method.
func (m *MockDataServiceInterface) ClearAll(performedBy uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearAll", performedBy)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClearAll indicates an expected call of ClearAll.
func (mr *MockDataServiceInterfaceMockRecorder) ClearAll(performedBy interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearAll", reflect.TypeOf((*MockDataServiceInterface)(nil).ClearAll), performedBy)
}

// ClearYear mocks base method.
func (m *MockDataServiceInterface) ClearYear(performedBy uuid.UUID, year int) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearYear", performedBy, year)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClearYear indicates an expected call of ClearYear.
func (mr *MockDataServiceInterfaceMockRecorder) ClearYear(performedBy, year interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearYear", reflect.TypeOf((*MockDataServiceInterface)(nil).ClearYear), performedBy, year)
}

// Overview mocks base method.
func (m *MockDataServiceInterface) Overview() (*dto.DataOverview, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Overview")
	ret0, _ := ret[0].(*dto.DataOverview)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Overview indicates an expected call of Overview.
func (mr *MockDataServiceInterfaceMockRecorder) Overview() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Overview", reflect.TypeOf((*MockDataServiceInterface)(nil).Overview))
}

// RebuildRankings mocks base method.
func (m *MockDataServiceInterface) RebuildRankings(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RebuildRankings", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RebuildRankings indicates an expected call of RebuildRankings.
func (mr *MockDataServiceInterfaceMockRecorder) RebuildRankings(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RebuildRankings", reflect.TypeOf((*MockDataServiceInterface)(nil).RebuildRankings), ctx)
}

// MockUserAdminServiceInterface is a mock of UserAdminServiceInterface interface.
type MockUserAdminServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockUserAdminServiceInterfaceMockRecorder
}

// MockUserAdminServiceInterfaceMockRecorder is the mock recorder for MockUserAdminServiceInterface.
type MockUserAdminServiceInterfaceMockRecorder struct {
	mock *MockUserAdminServiceInterface
}

// NewMockUserAdminServiceInterface creates a new mock instance.
func NewMockUserAdminServiceInterface(ctrl *gomock.Controller) *MockUserAdminServiceInterface {
	mock := &MockUserAdminServiceInterface{ctrl: ctrl}
	mock.recorder = &MockUserAdminServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserAdminServiceInterface) EXPECT() *MockUserAdminServiceInterfaceMockRecorder {
	return m.recorder
}

// AssignRole mocks base method.
func (m *MockUserAdminServiceInterface) AssignRole(userID uuid.UUID, roleName string, performedBy uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignRole", userID, roleName, performedBy)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignRole indicates an expected call of AssignRole.
func (mr *MockUserAdminServiceInterfaceMockRecorder) AssignRole(userID, roleName, performedBy interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignRole", reflect.TypeOf((*MockUserAdminServiceInterface)(nil).AssignRole), userID, roleName, performedBy)
}

// CreateUser mocks base method.
func (m *MockUserAdminServiceInterface) CreateUser(email, fullName, roleName string, performedBy uuid.UUID) (*models.User, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUser", email, fullName, roleName, performedBy)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// CreateUser indicates an expected call of CreateUser.
func (mr *MockUserAdminServiceInterfaceMockRecorder) CreateUser(email, fullName, roleName, performedBy interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUser", reflect.TypeOf((*MockUserAdminServiceInterface)(nil).CreateUser), email, fullName, roleName, performedBy)
}

// DeleteUser mocks base method.
func (m *MockUserAdminServiceInterface) DeleteUser(userID uuid.UUID, reason string, performedBy uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteUser", userID, reason, performedBy)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteUser indicates an expected call of DeleteUser.
func (mr *MockUserAdminServiceInterfaceMockRecorder) DeleteUser(userID, reason, performedBy interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteUser", reflect.TypeOf((*MockUserAdminServiceInterface)(nil).DeleteUser), userID, reason, performedBy)
}

// GetUserProfile mocks base method.
func (m *MockUserAdminServiceInterface) GetUserProfile(userID uuid.UUID) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserProfile", userID)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserProfile indicates an expected call of GetUserProfile.
func (mr *MockUserAdminServiceInterfaceMockRecorder) GetUserProfile(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserProfile", reflect.TypeOf((*MockUserAdminServiceInterface)(nil).GetUserProfile), userID)
}

// ListPermissions mocks base method.
func (m *MockUserAdminServiceInterface) ListPermissions() ([]*models.Permission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPermissions")
	ret0, _ := ret[0].([]*models.Permission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPermissions indicates an expected call of ListPermissions.
func (mr *MockUserAdminServiceInterfaceMockRecorder) ListPermissions() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPermissions", reflect.TypeOf((*MockUserAdminServiceInterface)(nil).ListPermissions))
}

// ListRoles mocks base method.
func (m *MockUserAdminServiceInterface) ListRoles() ([]*models.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRoles")
	ret0, _ := ret[0].([]*models.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRoles indicates an expected call of ListRoles.
func (mr *MockUserAdminServiceInterfaceMockRecorder) ListRoles() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRoles", reflect.TypeOf((*MockUserAdminServiceInterface)(nil).ListRoles))
}

// ListUsers mocks base method.
func (m *MockUserAdminServiceInterface) ListUsers(offset, limit int) ([]*models.User, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUsers", offset, limit)
	ret0, _ := ret[0].([]*models.User)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListUsers indicates an expected call of ListUsers.
func (mr *MockUserAdminServiceInterfaceMockRecorder) ListUsers(offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUsers", reflect.TypeOf((*MockUserAdminServiceInterface)(nil).ListUsers), offset, limit)
}

// RevokeRole mocks base method.
func (m *MockUserAdminServiceInterface) RevokeRole(userID uuid.UUID, roleName string, performedBy uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RevokeRole", userID, roleName, performedBy)
	ret0, _ := ret[0].(error)
	return ret0
}

// RevokeRole indicates an expected call of RevokeRole.
func (mr *MockUserAdminServiceInterfaceMockRecorder) RevokeRole(userID, roleName, performedBy interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RevokeRole", reflect.TypeOf((*MockUserAdminServiceInterface)(nil).RevokeRole), userID, roleName, performedBy)
}

// SearchUsers mocks base method.
func (m *MockUserAdminServiceInterface) SearchUsers(query, searchType string, offset, limit int) ([]*models.User, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchUsers", query, searchType, offset, limit)
	ret0, _ := ret[0].([]*models.User)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SearchUsers indicates an expected call of SearchUsers.
func (mr *MockUserAdminServiceInterfaceMockRecorder) SearchUsers(query, searchType, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchUsers", reflect.TypeOf((*MockUserAdminServiceInterface)(nil).SearchUsers), query, searchType, offset, limit)
}

// UpdateUserProfile mocks base method.
func (m *MockUserAdminServiceInterface) UpdateUserProfile(userID uuid.UUID, updates map[string]interface{}, performedBy uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateUserProfile", userID, updates, performedBy)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateUserProfile indicates an expected call of UpdateUserProfile.
func (mr *MockUserAdminServiceInterfaceMockRecorder) UpdateUserProfile(userID, updates, performedBy interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateUserProfile", reflect.TypeOf((*MockUserAdminServiceInterface)(nil).UpdateUserProfile), userID, updates, performedBy)
}

// MockAuditServiceInterface is a mock of AuditServiceInterface interface.
type MockAuditServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuditServiceInterfaceMockRecorder
}

// MockAuditServiceInterfaceMockRecorder is the mock recorder for MockAuditServiceInterface.
type MockAuditServiceInterfaceMockRecorder struct {
	mock *MockAuditServiceInterface
}

// NewMockAuditServiceInterface creates a new mock instance.
func NewMockAuditServiceInterface(ctrl *gomock.Controller) *MockAuditServiceInterface {
	mock := &MockAuditServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAuditServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuditServiceInterface) EXPECT() *MockAuditServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateAuditLog mocks base method.
func (m *MockAuditServiceInterface) CreateAuditLog(log *models.AuditLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAuditLog", log)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateAuditLog indicates an expected call of CreateAuditLog.
func (mr *MockAuditServiceInterfaceMockRecorder) CreateAuditLog(log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAuditLog", reflect.TypeOf((*MockAuditServiceInterface)(nil).CreateAuditLog), log)
}

// GetUserActivity mocks base method.
func (m *MockAuditServiceInterface) GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserActivity", userID, startDate, endDate, offset, limit)
	ret0, _ := ret[0].([]*models.AuditLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetUserActivity indicates an expected call of GetUserActivity.
func (mr *MockAuditServiceInterfaceMockRecorder) GetUserActivity(userID, startDate, endDate, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserActivity", reflect.TypeOf((*MockAuditServiceInterface)(nil).GetUserActivity), userID, startDate, endDate, offset, limit)
}

// LogDataCleared mocks base method.
func (m *MockAuditServiceInterface) LogDataCleared(performedBy uuid.UUID, scope string, records int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogDataCleared", performedBy, scope, records)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogDataCleared indicates an expected call of LogDataCleared.
func (mr *MockAuditServiceInterfaceMockRecorder) LogDataCleared(performedBy, scope, records interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogDataCleared", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogDataCleared), performedBy, scope, records)
}

// LogDataIngested mocks base method.
func (m *MockAuditServiceInterface) LogDataIngested(performedBy uuid.UUID, fileName string, records int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogDataIngested", performedBy, fileName, records)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogDataIngested indicates an expected call of LogDataIngested.
func (mr *MockAuditServiceInterfaceMockRecorder) LogDataIngested(performedBy, fileName, records interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogDataIngested", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogDataIngested), performedBy, fileName, records)
}

// LogLogin mocks base method.
func (m *MockAuditServiceInterface) LogLogin(userID uuid.UUID, ipAddress, userAgent string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogLogin", userID, ipAddress, userAgent)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogLogin indicates an expected call of LogLogin.
func (mr *MockAuditServiceInterfaceMockRecorder) LogLogin(userID, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogLogin", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogLogin), userID, ipAddress, userAgent)
}

// LogLogout mocks base method.
func (m *MockAuditServiceInterface) LogLogout(userID uuid.UUID, ipAddress, userAgent string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogLogout", userID, ipAddress, userAgent)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogLogout indicates an expected call of LogLogout.
func (mr *MockAuditServiceInterfaceMockRecorder) LogLogout(userID, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogLogout", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogLogout), userID, ipAddress, userAgent)
}

// LogPasswordReset mocks base method.
func (m *MockAuditServiceInterface) LogPasswordReset(userID, performedBy uuid.UUID, ipAddress, userAgent string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogPasswordReset", userID, performedBy, ipAddress, userAgent)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogPasswordReset indicates an expected call of LogPasswordReset.
func (mr *MockAuditServiceInterfaceMockRecorder) LogPasswordReset(userID, performedBy, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogPasswordReset", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogPasswordReset), userID, performedBy, ipAddress, userAgent)
}

// LogPasswordUpdate mocks base method.
func (m *MockAuditServiceInterface) LogPasswordUpdate(userID uuid.UUID, ipAddress, userAgent string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogPasswordUpdate", userID, ipAddress, userAgent)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogPasswordUpdate indicates an expected call of LogPasswordUpdate.
func (mr *MockAuditServiceInterfaceMockRecorder) LogPasswordUpdate(userID, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogPasswordUpdate", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogPasswordUpdate), userID, ipAddress, userAgent)
}

// LogProfileUpdate mocks base method.
func (m *MockAuditServiceInterface) LogProfileUpdate(userID, performedBy uuid.UUID, ipAddress, userAgent string, changes map[string]interface{}) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogProfileUpdate", userID, performedBy, ipAddress, userAgent, changes)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogProfileUpdate indicates an expected call of LogProfileUpdate.
func (mr *MockAuditServiceInterfaceMockRecorder) LogProfileUpdate(userID, performedBy, ipAddress, userAgent, changes interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogProfileUpdate", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogProfileUpdate), userID, performedBy, ipAddress, userAgent, changes)
}

// LogRoleAssigned mocks base method.
func (m *MockAuditServiceInterface) LogRoleAssigned(userID, performedBy uuid.UUID, roleName string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogRoleAssigned", userID, performedBy, roleName)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogRoleAssigned indicates an expected call of LogRoleAssigned.
func (mr *MockAuditServiceInterfaceMockRecorder) LogRoleAssigned(userID, performedBy, roleName interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogRoleAssigned", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogRoleAssigned), userID, performedBy, roleName)
}

// LogRoleRevoked mocks base method.
func (m *MockAuditServiceInterface) LogRoleRevoked(userID, performedBy uuid.UUID, roleName string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogRoleRevoked", userID, performedBy, roleName)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogRoleRevoked indicates an expected call of LogRoleRevoked.
func (mr *MockAuditServiceInterfaceMockRecorder) LogRoleRevoked(userID, performedBy, roleName interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogRoleRevoked", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogRoleRevoked), userID, performedBy, roleName)
}

// LogSuggestionRun mocks base method.
func (m *MockAuditServiceInterface) LogSuggestionRun(userID *uuid.UUID, rank, matches int, ipAddress string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogSuggestionRun", userID, rank, matches, ipAddress)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogSuggestionRun indicates an expected call of LogSuggestionRun.
func (mr *MockAuditServiceInterfaceMockRecorder) LogSuggestionRun(userID, rank, matches, ipAddress interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogSuggestionRun", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogSuggestionRun), userID, rank, matches, ipAddress)
}

// LogUserCreated mocks base method.
func (m *MockAuditServiceInterface) LogUserCreated(userID, performedBy uuid.UUID, ipAddress, userAgent string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogUserCreated", userID, performedBy, ipAddress, userAgent)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogUserCreated indicates an expected call of LogUserCreated.
func (mr *MockAuditServiceInterfaceMockRecorder) LogUserCreated(userID, performedBy, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogUserCreated", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogUserCreated), userID, performedBy, ipAddress, userAgent)
}

// LogUserDeleted mocks base method.
func (m *MockAuditServiceInterface) LogUserDeleted(userID, performedBy uuid.UUID, ipAddress, userAgent, reason string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogUserDeleted", userID, performedBy, ipAddress, userAgent, reason)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogUserDeleted indicates an expected call of LogUserDeleted.
func (mr *MockAuditServiceInterfaceMockRecorder) LogUserDeleted(userID, performedBy, ipAddress, userAgent, reason interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogUserDeleted", reflect.TypeOf((*MockAuditServiceInterface)(nil).LogUserDeleted), userID, performedBy, ipAddress, userAgent, reason)
}

// MockAuthServiceInterface is a mock of AuthServiceInterface interface.
type MockAuthServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthServiceInterfaceMockRecorder
}

// MockAuthServiceInterfaceMockRecorder is the mock recorder for MockAuthServiceInterface.
type MockAuthServiceInterfaceMockRecorder struct {
	mock *MockAuthServiceInterface
}

// NewMockAuthServiceInterface creates a new mock instance.
func NewMockAuthServiceInterface(ctrl *gomock.Controller) *MockAuthServiceInterface {
	mock := &MockAuthServiceInterface{ctrl: ctrl}
	mock.recorder = &MockAuthServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthServiceInterface) EXPECT() *MockAuthServiceInterfaceMockRecorder {
	return m.recorder
}

// Login mocks base method.
func (m *MockAuthServiceInterface) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", req, ipAddress, userAgent)
	ret0, _ := ret[0].(*dto.TokenResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Login indicates an expected call of Login.
func (mr *MockAuthServiceInterfaceMockRecorder) Login(req, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthServiceInterface)(nil).Login), req, ipAddress, userAgent)
}

// Logout mocks base method.
func (m *MockAuthServiceInterface) Logout(accessToken, ipAddress, userAgent string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Logout", accessToken, ipAddress, userAgent)
	ret0, _ := ret[0].(error)
	return ret0
}

// Logout indicates an expected call of Logout.
func (mr *MockAuthServiceInterfaceMockRecorder) Logout(accessToken, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Logout", reflect.TypeOf((*MockAuthServiceInterface)(nil).Logout), accessToken, ipAddress, userAgent)
}

// RefreshTokens mocks base method.
func (m *MockAuthServiceInterface) RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefreshTokens", refreshToken, ipAddress, userAgent)
	ret0, _ := ret[0].(*dto.TokenResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RefreshTokens indicates an expected call of RefreshTokens.
func (mr *MockAuthServiceInterfaceMockRecorder) RefreshTokens(refreshToken, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefreshTokens", reflect.TypeOf((*MockAuthServiceInterface)(nil).RefreshTokens), refreshToken, ipAddress, userAgent)
}

// Register mocks base method.
func (m *MockAuthServiceInterface) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", req, ipAddress, userAgent)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Register indicates an expected call of Register.
func (mr *MockAuthServiceInterfaceMockRecorder) Register(req, ipAddress, userAgent interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockAuthServiceInterface)(nil).Register), req, ipAddress, userAgent)
}

// MockTokenServiceInterface is a mock of TokenServiceInterface interface.
type MockTokenServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceInterfaceMockRecorder
}

// MockTokenServiceInterfaceMockRecorder is the mock recorder for MockTokenServiceInterface.
type MockTokenServiceInterfaceMockRecorder struct {
	mock *MockTokenServiceInterface
}

// NewMockTokenServiceInterface creates a new mock instance.
func NewMockTokenServiceInterface(ctrl *gomock.Controller) *MockTokenServiceInterface {
	mock := &MockTokenServiceInterface{ctrl: ctrl}
	mock.recorder = &MockTokenServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenServiceInterface) EXPECT() *MockTokenServiceInterfaceMockRecorder {
	return m.recorder
}

// ExtractTokenFromHeader mocks base method.
func (m *MockTokenServiceInterface) ExtractTokenFromHeader(authHeader string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExtractTokenFromHeader", authHeader)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExtractTokenFromHeader indicates an expected call of ExtractTokenFromHeader.
func (mr *MockTokenServiceInterfaceMockRecorder) ExtractTokenFromHeader(authHeader interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExtractTokenFromHeader", reflect.TypeOf((*MockTokenServiceInterface)(nil).ExtractTokenFromHeader), authHeader)
}

// GenerateAccessToken mocks base method.
func (m *MockTokenServiceInterface) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateAccessToken", user)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GenerateAccessToken indicates an expected call of GenerateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) GenerateAccessToken(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).GenerateAccessToken), user)
}

// GenerateRefreshToken mocks base method.
func (m *MockTokenServiceInterface) GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateRefreshToken", userID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(time.Time)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GenerateRefreshToken indicates an expected call of GenerateRefreshToken.
func (mr *MockTokenServiceInterfaceMockRecorder) GenerateRefreshToken(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateRefreshToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).GenerateRefreshToken), userID)
}

// GetJTI mocks base method.
func (m *MockTokenServiceInterface) GetJTI(tokenString string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetJTI", tokenString)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetJTI indicates an expected call of GetJTI.
func (mr *MockTokenServiceInterfaceMockRecorder) GetJTI(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetJTI", reflect.TypeOf((*MockTokenServiceInterface)(nil).GetJTI), tokenString)
}

// GetTokenExpiry mocks base method.
func (m *MockTokenServiceInterface) GetTokenExpiry(tokenString string) (time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTokenExpiry", tokenString)
	ret0, _ := ret[0].(time.Time)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTokenExpiry indicates an expected call of GetTokenExpiry.
func (mr *MockTokenServiceInterfaceMockRecorder) GetTokenExpiry(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTokenExpiry", reflect.TypeOf((*MockTokenServiceInterface)(nil).GetTokenExpiry), tokenString)
}

// ValidateAccessToken mocks base method.
func (m *MockTokenServiceInterface) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateAccessToken", tokenString)
	ret0, _ := ret[0].(*models.CustomClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateAccessToken indicates an expected call of ValidateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateAccessToken(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateAccessToken), tokenString)
}

// ValidateRefreshToken mocks base method.
func (m *MockTokenServiceInterface) ValidateRefreshToken(tokenString string) (*models.CustomClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateRefreshToken", tokenString)
	ret0, _ := ret[0].(*models.CustomClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateRefreshToken indicates an expected call of ValidateRefreshToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateRefreshToken(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateRefreshToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateRefreshToken), tokenString)
}

// MockPasswordServiceInterface is a mock of PasswordServiceInterface interface.
type MockPasswordServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockPasswordServiceInterfaceMockRecorder
}

// MockPasswordServiceInterfaceMockRecorder is the mock recorder for MockPasswordServiceInterface.
type MockPasswordServiceInterfaceMockRecorder struct {
	mock *MockPasswordServiceInterface
}

// NewMockPasswordServiceInterface creates a new mock instance.
func NewMockPasswordServiceInterface(ctrl *gomock.Controller) *MockPasswordServiceInterface {
	mock := &MockPasswordServiceInterface{ctrl: ctrl}
	mock.recorder = &MockPasswordServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPasswordServiceInterface) EXPECT() *MockPasswordServiceInterfaceMockRecorder {
	return m.recorder
}

// AdminResetPassword mocks base method.
func (m *MockPasswordServiceInterface) AdminResetPassword(userID, adminID uuid.UUID) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdminResetPassword", userID, adminID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdminResetPassword indicates an expected call of AdminResetPassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) AdminResetPassword(userID, adminID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdminResetPassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).AdminResetPassword), userID, adminID)
}

// ComparePassword mocks base method.
func (m *MockPasswordServiceInterface) ComparePassword(password, hash string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ComparePassword", password, hash)
	ret0, _ := ret[0].(bool)
	return ret0
}

// ComparePassword indicates an expected call of ComparePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) ComparePassword(password, hash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ComparePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).ComparePassword), password, hash)
}

// GenerateSecurePassword mocks base method.
func (m *MockPasswordServiceInterface) GenerateSecurePassword() (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateSecurePassword")
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GenerateSecurePassword indicates an expected call of GenerateSecurePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) GenerateSecurePassword() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateSecurePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).GenerateSecurePassword))
}

// GenerateSecurePasswordWithLength mocks base method.
func (m *MockPasswordServiceInterface) GenerateSecurePasswordWithLength(length int) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateSecurePasswordWithLength", length)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GenerateSecurePasswordWithLength indicates an expected call of GenerateSecurePasswordWithLength.
func (mr *MockPasswordServiceInterfaceMockRecorder) GenerateSecurePasswordWithLength(length interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateSecurePasswordWithLength", reflect.TypeOf((*MockPasswordServiceInterface)(nil).GenerateSecurePasswordWithLength), length)
}

// HashPassword mocks base method.
func (m *MockPasswordServiceInterface) HashPassword(password string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HashPassword", password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HashPassword indicates an expected call of HashPassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) HashPassword(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HashPassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).HashPassword), password)
}

// HashPasswordWithoutValidation mocks base method.
func (m *MockPasswordServiceInterface) HashPasswordWithoutValidation(password string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HashPasswordWithoutValidation", password)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HashPasswordWithoutValidation indicates an expected call of HashPasswordWithoutValidation.
func (mr *MockPasswordServiceInterfaceMockRecorder) HashPasswordWithoutValidation(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HashPasswordWithoutValidation", reflect.TypeOf((*MockPasswordServiceInterface)(nil).HashPasswordWithoutValidation), password)
}

// PasswordStrength mocks base method.
func (m *MockPasswordServiceInterface) PasswordStrength(password string) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PasswordStrength", password)
	ret0, _ := ret[0].(int)
	return ret0
}

// PasswordStrength indicates an expected call of PasswordStrength.
func (mr *MockPasswordServiceInterfaceMockRecorder) PasswordStrength(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PasswordStrength", reflect.TypeOf((*MockPasswordServiceInterface)(nil).PasswordStrength), password)
}

// UpdatePassword mocks base method.
func (m *MockPasswordServiceInterface) UpdatePassword(userID uuid.UUID, currentPassword, newPassword string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePassword", userID, currentPassword, newPassword)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdatePassword indicates an expected call of UpdatePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) UpdatePassword(userID, currentPassword, newPassword interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).UpdatePassword), userID, currentPassword, newPassword)
}

// ValidatePassword mocks base method.
func (m *MockPasswordServiceInterface) ValidatePassword(password string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidatePassword", password)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidatePassword indicates an expected call of ValidatePassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) ValidatePassword(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidatePassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).ValidatePassword), password)
}

// MockSampleDataGeneratorInterface is a mock of SampleDataGeneratorInterface interface.
type MockSampleDataGeneratorInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSampleDataGeneratorInterfaceMockRecorder
}

// MockSampleDataGeneratorInterfaceMockRecorder is the mock recorder for MockSampleDataGeneratorInterface.
type MockSampleDataGeneratorInterfaceMockRecorder struct {
	mock *MockSampleDataGeneratorInterface
}

// NewMockSampleDataGeneratorInterface creates a new mock instance.
func NewMockSampleDataGeneratorInterface(ctrl *gomock.Controller) *MockSampleDataGeneratorInterface {
	mock := &MockSampleDataGeneratorInterface{ctrl: ctrl}
	mock.recorder = &MockSampleDataGeneratorInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSampleDataGeneratorInterface) EXPECT() *MockSampleDataGeneratorInterfaceMockRecorder {
	return m.recorder
}

// GenerateColleges mocks base method.
func (m *MockSampleDataGeneratorInterface) GenerateColleges(count int) []*models.College {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateColleges", count)
	ret0, _ := ret[0].([]*models.College)
	return ret0
}

// GenerateColleges indicates an expected call of GenerateColleges.
func (mr *MockSampleDataGeneratorInterfaceMockRecorder) GenerateColleges(count interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateColleges", reflect.TypeOf((*MockSampleDataGeneratorInterface)(nil).GenerateColleges), count)
}

// GenerateCutoffs mocks base method.
func (m *MockSampleDataGeneratorInterface) GenerateCutoffs(college *models.College, year int) []models.Cutoff {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateCutoffs", college, year)
	ret0, _ := ret[0].([]models.Cutoff)
	return ret0
}

// GenerateCutoffs indicates an expected call of GenerateCutoffs.
func (mr *MockSampleDataGeneratorInterfaceMockRecorder) GenerateCutoffs(college, year interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateCutoffs", reflect.TypeOf((*MockSampleDataGeneratorInterface)(nil).GenerateCutoffs), college, year)
}

// GenerateDemoUsers mocks base method.
func (m *MockSampleDataGeneratorInterface) GenerateDemoUsers(count int) []*models.User {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateDemoUsers", count)
	ret0, _ := ret[0].([]*models.User)
	return ret0
}

// GenerateDemoUsers indicates an expected call of GenerateDemoUsers.
func (mr *MockSampleDataGeneratorInterfaceMockRecorder) GenerateDemoUsers(count interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateDemoUsers", reflect.TypeOf((*MockSampleDataGeneratorInterface)(nil).GenerateDemoUsers), count)
}

// MockMetricsRecorderInterface is a mock of MetricsRecorderInterface interface.
type MockMetricsRecorderInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsRecorderInterfaceMockRecorder
}

// MockMetricsRecorderInterfaceMockRecorder is the mock recorder for MockMetricsRecorderInterface.
type MockMetricsRecorderInterfaceMockRecorder struct {
	mock *MockMetricsRecorderInterface
}

// NewMockMetricsRecorderInterface creates a new mock instance.
func NewMockMetricsRecorderInterface(ctrl *gomock.Controller) *MockMetricsRecorderInterface {
	mock := &MockMetricsRecorderInterface{ctrl: ctrl}
	mock.recorder = &MockMetricsRecorderInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetricsRecorderInterface) EXPECT() *MockMetricsRecorderInterfaceMockRecorder {
	return m.recorder
}

// IncrementCounter mocks base method.
func (m *MockMetricsRecorderInterface) IncrementCounter(name string, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "IncrementCounter", name, tags)
}

// IncrementCounter indicates an expected call of IncrementCounter.
func (mr *MockMetricsRecorderInterfaceMockRecorder) IncrementCounter(name, tags interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCounter", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).IncrementCounter), name, tags)
}

// RecordGauge mocks base method.
func (m *MockMetricsRecorderInterface) RecordGauge(name string, value float64, tags map[string]string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordGauge", name, value, tags)
}

// RecordGauge indicates an expected call of RecordGauge.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordGauge(name, value, tags interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordGauge", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordGauge), name, value, tags)
}

// RecordProcessingTime mocks base method.
func (m *MockMetricsRecorderInterface) RecordProcessingTime(name string, duration time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordProcessingTime", name, duration)
}

// RecordProcessingTime indicates an expected call of RecordProcessingTime.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordProcessingTime(name, duration interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordProcessingTime", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordProcessingTime), name, duration)
}

// MockSuggestionLoggerInterface is a mock of SuggestionLoggerInterface interface.
type MockSuggestionLoggerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockSuggestionLoggerInterfaceMockRecorder
}

// MockSuggestionLoggerInterfaceMockRecorder is the mock recorder for MockSuggestionLoggerInterface.
type MockSuggestionLoggerInterfaceMockRecorder struct {
	mock *MockSuggestionLoggerInterface
}

// NewMockSuggestionLoggerInterface creates a new mock instance.
func NewMockSuggestionLoggerInterface(ctrl *gomock.Controller) *MockSuggestionLoggerInterface {
	mock := &MockSuggestionLoggerInterface{ctrl: ctrl}
	mock.recorder = &MockSuggestionLoggerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSuggestionLoggerInterface) EXPECT() *MockSuggestionLoggerInterfaceMockRecorder {
	return m.recorder
}

// LogAuthorizationFailure mocks base method.
func (m *MockSuggestionLoggerInterface) LogAuthorizationFailure(ctx context.Context, operation string, userID uuid.UUID, requiredPermission string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogAuthorizationFailure", ctx, operation, userID, requiredPermission)
}

// LogAuthorizationFailure indicates an expected call of LogAuthorizationFailure.
func (mr *MockSuggestionLoggerInterfaceMockRecorder) LogAuthorizationFailure(ctx, operation, userID, requiredPermission interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogAuthorizationFailure", reflect.TypeOf((*MockSuggestionLoggerInterface)(nil).LogAuthorizationFailure), ctx, operation, userID, requiredPermission)
}

// LogIngestCompleted mocks base method.
func (m *MockSuggestionLoggerInterface) LogIngestCompleted(ctx context.Context, files, records int, durationMs int64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogIngestCompleted", ctx, files, records, durationMs)
}

// LogIngestCompleted indicates an expected call of LogIngestCompleted.
func (mr *MockSuggestionLoggerInterfaceMockRecorder) LogIngestCompleted(ctx, files, records, durationMs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogIngestCompleted", reflect.TypeOf((*MockSuggestionLoggerInterface)(nil).LogIngestCompleted), ctx, files, records, durationMs)
}

// LogIngestFailed mocks base method.
func (m *MockSuggestionLoggerInterface) LogIngestFailed(ctx context.Context, fileName, errorMsg string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogIngestFailed", ctx, fileName, errorMsg)
}

// LogIngestFailed indicates an expected call of LogIngestFailed.
func (mr *MockSuggestionLoggerInterfaceMockRecorder) LogIngestFailed(ctx, fileName, errorMsg interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogIngestFailed", reflect.TypeOf((*MockSuggestionLoggerInterface)(nil).LogIngestFailed), ctx, fileName, errorMsg)
}

// LogIngestFileParsed mocks base method.
func (m *MockSuggestionLoggerInterface) LogIngestFileParsed(ctx context.Context, fileName string, colleges, cutoffs int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogIngestFileParsed", ctx, fileName, colleges, cutoffs)
}

// LogIngestFileParsed indicates an expected call of LogIngestFileParsed.
func (mr *MockSuggestionLoggerInterfaceMockRecorder) LogIngestFileParsed(ctx, fileName, colleges, cutoffs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogIngestFileParsed", reflect.TypeOf((*MockSuggestionLoggerInterface)(nil).LogIngestFileParsed), ctx, fileName, colleges, cutoffs)
}

// LogIngestStarted mocks base method.
func (m *MockSuggestionLoggerInterface) LogIngestStarted(ctx context.Context, fileName string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogIngestStarted", ctx, fileName)
}

// LogIngestStarted indicates an expected call of LogIngestStarted.
func (mr *MockSuggestionLoggerInterfaceMockRecorder) LogIngestStarted(ctx, fileName interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogIngestStarted", reflect.TypeOf((*MockSuggestionLoggerInterface)(nil).LogIngestStarted), ctx, fileName)
}

// LogRankingsRebuilt mocks base method.
func (m *MockSuggestionLoggerInterface) LogRankingsRebuilt(ctx context.Context, rows int, durationMs int64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogRankingsRebuilt", ctx, rows, durationMs)
}

// LogRankingsRebuilt indicates an expected call of LogRankingsRebuilt.
func (mr *MockSuggestionLoggerInterfaceMockRecorder) LogRankingsRebuilt(ctx, rows, durationMs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogRankingsRebuilt", reflect.TypeOf((*MockSuggestionLoggerInterface)(nil).LogRankingsRebuilt), ctx, rows, durationMs)
}

// LogSuggestionCompleted mocks base method.
func (m *MockSuggestionLoggerInterface) LogSuggestionCompleted(ctx context.Context, resultsCount int, durationMs int64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogSuggestionCompleted", ctx, resultsCount, durationMs)
}

// LogSuggestionCompleted indicates an expected call of LogSuggestionCompleted.
func (mr *MockSuggestionLoggerInterfaceMockRecorder) LogSuggestionCompleted(ctx, resultsCount, durationMs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogSuggestionCompleted", reflect.TypeOf((*MockSuggestionLoggerInterface)(nil).LogSuggestionCompleted), ctx, resultsCount, durationMs)
}

// LogSuggestionFailed mocks base method.
func (m *MockSuggestionLoggerInterface) LogSuggestionFailed(ctx context.Context, errorMsg string, durationMs int64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogSuggestionFailed", ctx, errorMsg, durationMs)
}

// LogSuggestionFailed indicates an expected call of LogSuggestionFailed.
func (mr *MockSuggestionLoggerInterfaceMockRecorder) LogSuggestionFailed(ctx, errorMsg, durationMs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogSuggestionFailed", reflect.TypeOf((*MockSuggestionLoggerInterface)(nil).LogSuggestionFailed), ctx, errorMsg, durationMs)
}

// LogSuggestionStarted mocks base method.
func (m *MockSuggestionLoggerInterface) LogSuggestionStarted(ctx context.Context, rank int, seatType, special string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogSuggestionStarted", ctx, rank, seatType, special)
}

// LogSuggestionStarted indicates an expected call of LogSuggestionStarted.
func (mr *MockSuggestionLoggerInterfaceMockRecorder) LogSuggestionStarted(ctx, rank, seatType, special interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogSuggestionStarted", reflect.TypeOf((*MockSuggestionLoggerInterface)(nil).LogSuggestionStarted), ctx, rank, seatType, special)
}

// LogValidationFailure mocks base method.
func (m *MockSuggestionLoggerInterface) LogValidationFailure(ctx context.Context, operation, errorMsg string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "LogValidationFailure", ctx, operation, errorMsg)
}

// LogValidationFailure indicates an expected call of LogValidationFailure.
func (mr *MockSuggestionLoggerInterfaceMockRecorder) LogValidationFailure(ctx, operation, errorMsg interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogValidationFailure", reflect.TypeOf((*MockSuggestionLoggerInterface)(nil).LogValidationFailure), ctx, operation, errorMsg)
}
