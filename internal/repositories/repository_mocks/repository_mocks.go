// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package repository_mocks is a generated GoMock package.
package repository_mocks

import (
	models "cap-recommender/internal/models"
	repositories "cap-recommender/internal/repositories"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockUserRepositoryInterface is a mock of UserRepositoryInterface interface.
type MockUserRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockUserRepositoryInterfaceMockRecorder
}

// MockUserRepositoryInterfaceMockRecorder is the mock recorder for MockUserRepositoryInterface.
type MockUserRepositoryInterfaceMockRecorder struct {
	mock *MockUserRepositoryInterface
}

// NewMockUserRepositoryInterface creates a new mock instance.
func NewMockUserRepositoryInterface(ctrl *gomock.Controller) *MockUserRepositoryInterface {
	mock := &MockUserRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockUserRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUserRepositoryInterface) EXPECT() *MockUserRepositoryInterfaceMockRecorder {
	return m.recorder
}

// AssignRole mocks base method.
func (m *MockUserRepositoryInterface) AssignRole(userID, roleID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignRole", userID, roleID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignRole indicates an expected call of AssignRole.
func (mr *MockUserRepositoryInterfaceMockRecorder) AssignRole(userID, roleID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignRole", reflect.TypeOf((*MockUserRepositoryInterface)(nil).AssignRole), userID, roleID)
}

// Create mocks base method.
func (m *MockUserRepositoryInterface) Create(user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockUserRepositoryInterfaceMockRecorder) Create(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockUserRepositoryInterface)(nil).Create), user)
}

// Delete mocks base method.
func (m *MockUserRepositoryInterface) Delete(userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockUserRepositoryInterfaceMockRecorder) Delete(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockUserRepositoryInterface)(nil).Delete), userID)
}

// GetByEmail mocks base method.
func (m *MockUserRepositoryInterface) GetByEmail(email string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByEmail", email)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByEmail indicates an expected call of GetByEmail.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByEmail(email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByEmail", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByEmail), email)
}

// GetByEmailExcluding mocks base method.
func (m *MockUserRepositoryInterface) GetByEmailExcluding(email string, excludeUserID uuid.UUID) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByEmailExcluding", email, excludeUserID)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByEmailExcluding indicates an expected call of GetByEmailExcluding.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByEmailExcluding(email, excludeUserID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByEmailExcluding", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByEmailExcluding), email, excludeUserID)
}

// GetByEmailWithRoles mocks base method.
func (m *MockUserRepositoryInterface) GetByEmailWithRoles(email string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByEmailWithRoles", email)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByEmailWithRoles indicates an expected call of GetByEmailWithRoles.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByEmailWithRoles(email interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByEmailWithRoles", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByEmailWithRoles), email)
}

// GetByID mocks base method.
func (m *MockUserRepositoryInterface) GetByID(id uuid.UUID) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByID), id)
}

// GetByIDWithRoles mocks base method.
func (m *MockUserRepositoryInterface) GetByIDWithRoles(id uuid.UUID) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIDWithRoles", id)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByIDWithRoles indicates an expected call of GetByIDWithRoles.
func (mr *MockUserRepositoryInterfaceMockRecorder) GetByIDWithRoles(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIDWithRoles", reflect.TypeOf((*MockUserRepositoryInterface)(nil).GetByIDWithRoles), id)
}

// ListUsers mocks base method.
func (m *MockUserRepositoryInterface) ListUsers(offset, limit int) ([]*models.User, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUsers", offset, limit)
	ret0, _ := ret[0].([]*models.User)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListUsers indicates an expected call of ListUsers.
func (mr *MockUserRepositoryInterfaceMockRecorder) ListUsers(offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUsers", reflect.TypeOf((*MockUserRepositoryInterface)(nil).ListUsers), offset, limit)
}

// RemoveRole mocks base method.
func (m *MockUserRepositoryInterface) RemoveRole(userID, roleID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveRole", userID, roleID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveRole indicates an expected call of RemoveRole.
func (mr *MockUserRepositoryInterfaceMockRecorder) RemoveRole(userID, roleID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveRole", reflect.TypeOf((*MockUserRepositoryInterface)(nil).RemoveRole), userID, roleID)
}

// ResetFailedLoginAttempts mocks base method.
func (m *MockUserRepositoryInterface) ResetFailedLoginAttempts(userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResetFailedLoginAttempts", userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// ResetFailedLoginAttempts indicates an expected call of ResetFailedLoginAttempts.
func (mr *MockUserRepositoryInterfaceMockRecorder) ResetFailedLoginAttempts(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResetFailedLoginAttempts", reflect.TypeOf((*MockUserRepositoryInterface)(nil).ResetFailedLoginAttempts), userID)
}

// SearchUsers mocks base method.
func (m *MockUserRepositoryInterface) SearchUsers(criteria repositories.UserSearchCriteria, offset, limit int) ([]*models.User, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchUsers", criteria, offset, limit)
	ret0, _ := ret[0].([]*models.User)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SearchUsers indicates an expected call of SearchUsers.
func (mr *MockUserRepositoryInterfaceMockRecorder) SearchUsers(criteria, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchUsers", reflect.TypeOf((*MockUserRepositoryInterface)(nil).SearchUsers), criteria, offset, limit)
}

// UnlockAccount mocks base method.
func (m *MockUserRepositoryInterface) UnlockAccount(userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UnlockAccount", userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// UnlockAccount indicates an expected call of UnlockAccount.
func (mr *MockUserRepositoryInterfaceMockRecorder) UnlockAccount(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UnlockAccount", reflect.TypeOf((*MockUserRepositoryInterface)(nil).UnlockAccount), userID)
}

// Update mocks base method.
func (m *MockUserRepositoryInterface) Update(user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", user)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockUserRepositoryInterfaceMockRecorder) Update(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockUserRepositoryInterface)(nil).Update), user)
}

// UpdateEmail mocks base method.
func (m *MockUserRepositoryInterface) UpdateEmail(userID uuid.UUID, newEmail string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateEmail", userID, newEmail)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateEmail indicates an expected call of UpdateEmail.
func (mr *MockUserRepositoryInterfaceMockRecorder) UpdateEmail(userID, newEmail interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateEmail", reflect.TypeOf((*MockUserRepositoryInterface)(nil).UpdateEmail), userID, newEmail)
}

// UpdateFailedLoginAttempts mocks base method.
func (m *MockUserRepositoryInterface) UpdateFailedLoginAttempts(user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateFailedLoginAttempts", user)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateFailedLoginAttempts indicates an expected call of UpdateFailedLoginAttempts.
func (mr *MockUserRepositoryInterfaceMockRecorder) UpdateFailedLoginAttempts(user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateFailedLoginAttempts", reflect.TypeOf((*MockUserRepositoryInterface)(nil).UpdateFailedLoginAttempts), user)
}

// UpdateFields mocks base method.
func (m *MockUserRepositoryInterface) UpdateFields(userID uuid.UUID, fields map[string]interface{}) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateFields", userID, fields)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateFields indicates an expected call of UpdateFields.
func (mr *MockUserRepositoryInterfaceMockRecorder) UpdateFields(userID, fields interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateFields", reflect.TypeOf((*MockUserRepositoryInterface)(nil).UpdateFields), userID, fields)
}

// UpdatePasswordHash mocks base method.
func (m *MockUserRepositoryInterface) UpdatePasswordHash(userID uuid.UUID, passwordHash string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePasswordHash", userID, passwordHash)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdatePasswordHash indicates an expected call of UpdatePasswordHash.
func (mr *MockUserRepositoryInterfaceMockRecorder) UpdatePasswordHash(userID, passwordHash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePasswordHash", reflect.TypeOf((*MockUserRepositoryInterface)(nil).UpdatePasswordHash), userID, passwordHash)
}

// MockRoleRepositoryInterface is a mock of RoleRepositoryInterface interface.
type MockRoleRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockRoleRepositoryInterfaceMockRecorder
}

// MockRoleRepositoryInterfaceMockRecorder is the mock recorder for MockRoleRepositoryInterface.
type MockRoleRepositoryInterfaceMockRecorder struct {
	mock *MockRoleRepositoryInterface
}

// NewMockRoleRepositoryInterface creates a new mock instance.
func NewMockRoleRepositoryInterface(ctrl *gomock.Controller) *MockRoleRepositoryInterface {
	mock := &MockRoleRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockRoleRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRoleRepositoryInterface) EXPECT() *MockRoleRepositoryInterfaceMockRecorder {
	return m.recorder
}

// AssignPermission mocks base method.
func (m *MockRoleRepositoryInterface) AssignPermission(roleID, permissionID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignPermission", roleID, permissionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignPermission indicates an expected call of AssignPermission.
func (mr *MockRoleRepositoryInterfaceMockRecorder) AssignPermission(roleID, permissionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignPermission", reflect.TypeOf((*MockRoleRepositoryInterface)(nil).AssignPermission), roleID, permissionID)
}

// CountUsersWithRole mocks base method.
func (m *MockRoleRepositoryInterface) CountUsersWithRole(roleID uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountUsersWithRole", roleID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountUsersWithRole indicates an expected call of CountUsersWithRole.
func (mr *MockRoleRepositoryInterfaceMockRecorder) CountUsersWithRole(roleID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountUsersWithRole", reflect.TypeOf((*MockRoleRepositoryInterface)(nil).CountUsersWithRole), roleID)
}

// Create mocks base method.
func (m *MockRoleRepositoryInterface) Create(role *models.Role) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", role)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockRoleRepositoryInterfaceMockRecorder) Create(role interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRoleRepositoryInterface)(nil).Create), role)
}

// Delete mocks base method.
func (m *MockRoleRepositoryInterface) Delete(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockRoleRepositoryInterfaceMockRecorder) Delete(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockRoleRepositoryInterface)(nil).Delete), id)
}

// GetByID mocks base method.
func (m *MockRoleRepositoryInterface) GetByID(id uuid.UUID) (*models.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRoleRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRoleRepositoryInterface)(nil).GetByID), id)
}

// GetByName mocks base method.
func (m *MockRoleRepositoryInterface) GetByName(name string) (*models.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByName", name)
	ret0, _ := ret[0].(*models.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByName indicates an expected call of GetByName.
func (mr *MockRoleRepositoryInterfaceMockRecorder) GetByName(name interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByName", reflect.TypeOf((*MockRoleRepositoryInterface)(nil).GetByName), name)
}

// GetPermissionsForRoles mocks base method.
func (m *MockRoleRepositoryInterface) GetPermissionsForRoles(roleNames []string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPermissionsForRoles", roleNames)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPermissionsForRoles indicates an expected call of GetPermissionsForRoles.
func (mr *MockRoleRepositoryInterfaceMockRecorder) GetPermissionsForRoles(roleNames interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPermissionsForRoles", reflect.TypeOf((*MockRoleRepositoryInterface)(nil).GetPermissionsForRoles), roleNames)
}

// List mocks base method.
func (m *MockRoleRepositoryInterface) List() ([]*models.Role, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List")
	ret0, _ := ret[0].([]*models.Role)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockRoleRepositoryInterfaceMockRecorder) List() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockRoleRepositoryInterface)(nil).List))
}

// RemovePermission mocks base method.
func (m *MockRoleRepositoryInterface) RemovePermission(roleID, permissionID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemovePermission", roleID, permissionID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemovePermission indicates an expected call of RemovePermission.
func (mr *MockRoleRepositoryInterfaceMockRecorder) RemovePermission(roleID, permissionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemovePermission", reflect.TypeOf((*MockRoleRepositoryInterface)(nil).RemovePermission), roleID, permissionID)
}

// Update mocks base method.
func (m *MockRoleRepositoryInterface) Update(role *models.Role) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", role)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRoleRepositoryInterfaceMockRecorder) Update(role interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRoleRepositoryInterface)(nil).Update), role)
}

// MockPermissionRepositoryInterface is a mock of PermissionRepositoryInterface interface.
type MockPermissionRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockPermissionRepositoryInterfaceMockRecorder
}

// MockPermissionRepositoryInterfaceMockRecorder is the mock recorder for MockPermissionRepositoryInterface.
type MockPermissionRepositoryInterfaceMockRecorder struct {
	mock *MockPermissionRepositoryInterface
}

// NewMockPermissionRepositoryInterface creates a new mock instance.
func NewMockPermissionRepositoryInterface(ctrl *gomock.Controller) *MockPermissionRepositoryInterface {
	mock := &MockPermissionRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockPermissionRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPermissionRepositoryInterface) EXPECT() *MockPermissionRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockPermissionRepositoryInterface) Create(permission *models.Permission) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", permission)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockPermissionRepositoryInterfaceMockRecorder) Create(permission interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockPermissionRepositoryInterface)(nil).Create), permission)
}

// Delete mocks base method.
func (m *MockPermissionRepositoryInterface) Delete(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockPermissionRepositoryInterfaceMockRecorder) Delete(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockPermissionRepositoryInterface)(nil).Delete), id)
}

// GetByID mocks base method.
func (m *MockPermissionRepositoryInterface) GetByID(id uuid.UUID) (*models.Permission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Permission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockPermissionRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockPermissionRepositoryInterface)(nil).GetByID), id)
}

// GetByName mocks base method.
func (m *MockPermissionRepositoryInterface) GetByName(name string) (*models.Permission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByName", name)
	ret0, _ := ret[0].(*models.Permission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByName indicates an expected call of GetByName.
func (mr *MockPermissionRepositoryInterfaceMockRecorder) GetByName(name interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByName", reflect.TypeOf((*MockPermissionRepositoryInterface)(nil).GetByName), name)
}

// List mocks base method.
func (m *MockPermissionRepositoryInterface) List() ([]*models.Permission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List")
	ret0, _ := ret[0].([]*models.Permission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockPermissionRepositoryInterfaceMockRecorder) List() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockPermissionRepositoryInterface)(nil).List))
}

// MockRefreshTokenRepositoryInterface is a mock of RefreshTokenRepositoryInterface interface.
type MockRefreshTokenRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockRefreshTokenRepositoryInterfaceMockRecorder
}

// MockRefreshTokenRepositoryInterfaceMockRecorder is the mock recorder for MockRefreshTokenRepositoryInterface.
type MockRefreshTokenRepositoryInterfaceMockRecorder struct {
	mock *MockRefreshTokenRepositoryInterface
}

// NewMockRefreshTokenRepositoryInterface creates a new mock instance.
func NewMockRefreshTokenRepositoryInterface(ctrl *gomock.Controller) *MockRefreshTokenRepositoryInterface {
	mock := &MockRefreshTokenRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockRefreshTokenRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRefreshTokenRepositoryInterface) EXPECT() *MockRefreshTokenRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockRefreshTokenRepositoryInterface) Create(token *models.RefreshToken) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", token)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) Create(token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).Create), token)
}

// DeleteExpired mocks base method.
func (m *MockRefreshTokenRepositoryInterface) DeleteExpired() (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteExpired")
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteExpired indicates an expected call of DeleteExpired.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) DeleteExpired() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteExpired", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).DeleteExpired))
}

// DeleteRevokedOlderThan mocks base method.
func (m *MockRefreshTokenRepositoryInterface) DeleteRevokedOlderThan(duration time.Duration) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteRevokedOlderThan", duration)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteRevokedOlderThan indicates an expected call of DeleteRevokedOlderThan.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) DeleteRevokedOlderThan(duration interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteRevokedOlderThan", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).DeleteRevokedOlderThan), duration)
}

// GetActiveByUserID mocks base method.
func (m *MockRefreshTokenRepositoryInterface) GetActiveByUserID(userID uuid.UUID) ([]*models.RefreshToken, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActiveByUserID", userID)
	ret0, _ := ret[0].([]*models.RefreshToken)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveByUserID indicates an expected call of GetActiveByUserID.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) GetActiveByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveByUserID", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).GetActiveByUserID), userID)
}

// GetByID mocks base method.
func (m *MockRefreshTokenRepositoryInterface) GetByID(id uuid.UUID) (*models.RefreshToken, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.RefreshToken)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).GetByID), id)
}

// GetByTokenHash mocks base method.
func (m *MockRefreshTokenRepositoryInterface) GetByTokenHash(tokenHash string) (*models.RefreshToken, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByTokenHash", tokenHash)
	ret0, _ := ret[0].(*models.RefreshToken)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByTokenHash indicates an expected call of GetByTokenHash.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) GetByTokenHash(tokenHash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByTokenHash", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).GetByTokenHash), tokenHash)
}

// Revoke mocks base method.
func (m *MockRefreshTokenRepositoryInterface) Revoke(tokenID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Revoke", tokenID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Revoke indicates an expected call of Revoke.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) Revoke(tokenID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Revoke", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).Revoke), tokenID)
}

// RevokeAllForUser mocks base method.
func (m *MockRefreshTokenRepositoryInterface) RevokeAllForUser(userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RevokeAllForUser", userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RevokeAllForUser indicates an expected call of RevokeAllForUser.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) RevokeAllForUser(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RevokeAllForUser", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).RevokeAllForUser), userID)
}

// Update mocks base method.
func (m *MockRefreshTokenRepositoryInterface) Update(token *models.RefreshToken) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", token)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) Update(token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).Update), token)
}

// MockBlacklistedTokenRepositoryInterface is a mock of BlacklistedTokenRepositoryInterface interface.
type MockBlacklistedTokenRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockBlacklistedTokenRepositoryInterfaceMockRecorder
}

// MockBlacklistedTokenRepositoryInterfaceMockRecorder is the mock recorder for MockBlacklistedTokenRepositoryInterface.
type MockBlacklistedTokenRepositoryInterfaceMockRecorder struct {
	mock *MockBlacklistedTokenRepositoryInterface
}

// NewMockBlacklistedTokenRepositoryInterface creates a new mock instance.
func NewMockBlacklistedTokenRepositoryInterface(ctrl *gomock.Controller) *MockBlacklistedTokenRepositoryInterface {
	mock := &MockBlacklistedTokenRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockBlacklistedTokenRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBlacklistedTokenRepositoryInterface) EXPECT() *MockBlacklistedTokenRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockBlacklistedTokenRepositoryInterface) Create(token *models.BlacklistedToken) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", token)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockBlacklistedTokenRepositoryInterfaceMockRecorder) Create(token interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockBlacklistedTokenRepositoryInterface)(nil).Create), token)
}

// DeleteExpired mocks base method.
func (m *MockBlacklistedTokenRepositoryInterface) DeleteExpired() (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteExpired")
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteExpired indicates an expected call of DeleteExpired.
func (mr *MockBlacklistedTokenRepositoryInterfaceMockRecorder) DeleteExpired() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteExpired", reflect.TypeOf((*MockBlacklistedTokenRepositoryInterface)(nil).DeleteExpired))
}

// GetByJTI mocks base method.
func (m *MockBlacklistedTokenRepositoryInterface) GetByJTI(jti string) (*models.BlacklistedToken, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByJTI", jti)
	ret0, _ := ret[0].(*models.BlacklistedToken)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByJTI indicates an expected call of GetByJTI.
func (mr *MockBlacklistedTokenRepositoryInterfaceMockRecorder) GetByJTI(jti interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByJTI", reflect.TypeOf((*MockBlacklistedTokenRepositoryInterface)(nil).GetByJTI), jti)
}

// MockAuditLogRepositoryInterface is a mock of AuditLogRepositoryInterface interface.
type MockAuditLogRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuditLogRepositoryInterfaceMockRecorder
}

// MockAuditLogRepositoryInterfaceMockRecorder is the mock recorder for MockAuditLogRepositoryInterface.
type MockAuditLogRepositoryInterfaceMockRecorder struct {
	mock *MockAuditLogRepositoryInterface
}

// NewMockAuditLogRepositoryInterface creates a new mock instance.
func NewMockAuditLogRepositoryInterface(ctrl *gomock.Controller) *MockAuditLogRepositoryInterface {
	mock := &MockAuditLogRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockAuditLogRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuditLogRepositoryInterface) EXPECT() *MockAuditLogRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockAuditLogRepositoryInterface) Create(log *models.AuditLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", log)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) Create(log interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).Create), log)
}

// DeleteOlderThan mocks base method.
func (m *MockAuditLogRepositoryInterface) DeleteOlderThan(duration time.Duration) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteOlderThan", duration)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteOlderThan indicates an expected call of DeleteOlderThan.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) DeleteOlderThan(duration interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteOlderThan", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).DeleteOlderThan), duration)
}

// GetByAction mocks base method.
func (m *MockAuditLogRepositoryInterface) GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByAction", action, offset, limit)
	ret0, _ := ret[0].([]*models.AuditLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetByAction indicates an expected call of GetByAction.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) GetByAction(action, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByAction", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).GetByAction), action, offset, limit)
}

// GetByID mocks base method.
func (m *MockAuditLogRepositoryInterface) GetByID(id uuid.UUID) (*models.AuditLog, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.AuditLog)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).GetByID), id)
}

// GetByIPAddress mocks base method.
func (m *MockAuditLogRepositoryInterface) GetByIPAddress(ipAddress string, offset, limit int) ([]*models.AuditLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByIPAddress", ipAddress, offset, limit)
	ret0, _ := ret[0].([]*models.AuditLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetByIPAddress indicates an expected call of GetByIPAddress.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) GetByIPAddress(ipAddress, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByIPAddress", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).GetByIPAddress), ipAddress, offset, limit)
}

// GetByResource mocks base method.
func (m *MockAuditLogRepositoryInterface) GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByResource", resource, resourceID, offset, limit)
	ret0, _ := ret[0].([]*models.AuditLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetByResource indicates an expected call of GetByResource.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) GetByResource(resource, resourceID, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByResource", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).GetByResource), resource, resourceID, offset, limit)
}

// GetByTimeRange mocks base method.
func (m *MockAuditLogRepositoryInterface) GetByTimeRange(startTime, endTime time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByTimeRange", startTime, endTime, offset, limit)
	ret0, _ := ret[0].([]*models.AuditLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetByTimeRange indicates an expected call of GetByTimeRange.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) GetByTimeRange(startTime, endTime, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByTimeRange", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).GetByTimeRange), startTime, endTime, offset, limit)
}

// GetByUserID mocks base method.
func (m *MockAuditLogRepositoryInterface) GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID, offset, limit)
	ret0, _ := ret[0].([]*models.AuditLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) GetByUserID(userID, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).GetByUserID), userID, offset, limit)
}

// GetFailedLoginAttempts mocks base method.
func (m *MockAuditLogRepositoryInterface) GetFailedLoginAttempts(email string, since time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetFailedLoginAttempts", email, since)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetFailedLoginAttempts indicates an expected call of GetFailedLoginAttempts.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) GetFailedLoginAttempts(email, since interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetFailedLoginAttempts", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).GetFailedLoginAttempts), email, since)
}

// GetUserActivity mocks base method.
func (m *MockAuditLogRepositoryInterface) GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserActivity", userID, startDate, endDate, offset, limit)
	ret0, _ := ret[0].([]*models.AuditLog)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetUserActivity indicates an expected call of GetUserActivity.
func (mr *MockAuditLogRepositoryInterfaceMockRecorder) GetUserActivity(userID, startDate, endDate, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserActivity", reflect.TypeOf((*MockAuditLogRepositoryInterface)(nil).GetUserActivity), userID, startDate, endDate, offset, limit)
}

// MockCollegeRepositoryInterface is a mock of CollegeRepositoryInterface interface.
type MockCollegeRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCollegeRepositoryInterfaceMockRecorder
}

// MockCollegeRepositoryInterfaceMockRecorder is the mock recorder for MockCollegeRepositoryInterface.
type MockCollegeRepositoryInterfaceMockRecorder struct {
	mock *MockCollegeRepositoryInterface
}

// NewMockCollegeRepositoryInterface creates a new mock instance.
func NewMockCollegeRepositoryInterface(ctrl *gomock.Controller) *MockCollegeRepositoryInterface {
	mock := &MockCollegeRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockCollegeRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCollegeRepositoryInterface) EXPECT() *MockCollegeRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Count mocks base method.
func (m *MockCollegeRepositoryInterface) Count() (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count")
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockCollegeRepositoryInterfaceMockRecorder) Count() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockCollegeRepositoryInterface)(nil).Count))
}

// Create mocks base method.
func (m *MockCollegeRepositoryInterface) Create(college *models.College) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", college)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockCollegeRepositoryInterfaceMockRecorder) Create(college interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCollegeRepositoryInterface)(nil).Create), college)
}

// DeleteAll mocks base method.
func (m *MockCollegeRepositoryInterface) DeleteAll() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteAll")
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteAll indicates an expected call of DeleteAll.
func (mr *MockCollegeRepositoryInterfaceMockRecorder) DeleteAll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteAll", reflect.TypeOf((*MockCollegeRepositoryInterface)(nil).DeleteAll))
}

// FindOrCreate mocks base method.
func (m *MockCollegeRepositoryInterface) FindOrCreate(college *models.College) (*models.College, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindOrCreate", college)
	ret0, _ := ret[0].(*models.College)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindOrCreate indicates an expected call of FindOrCreate.
func (mr *MockCollegeRepositoryInterfaceMockRecorder) FindOrCreate(college interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindOrCreate", reflect.TypeOf((*MockCollegeRepositoryInterface)(nil).FindOrCreate), college)
}

// GetByCode mocks base method.
func (m *MockCollegeRepositoryInterface) GetByCode(code int) (*models.College, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByCode", code)
	ret0, _ := ret[0].(*models.College)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByCode indicates an expected call of GetByCode.
func (mr *MockCollegeRepositoryInterfaceMockRecorder) GetByCode(code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByCode", reflect.TypeOf((*MockCollegeRepositoryInterface)(nil).GetByCode), code)
}

// GetByID mocks base method.
func (m *MockCollegeRepositoryInterface) GetByID(id uuid.UUID) (*models.College, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.College)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockCollegeRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockCollegeRepositoryInterface)(nil).GetByID), id)
}

// List mocks base method.
func (m *MockCollegeRepositoryInterface) List(offset, limit int) ([]*models.College, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", offset, limit)
	ret0, _ := ret[0].([]*models.College)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// List indicates an expected call of List.
func (mr *MockCollegeRepositoryInterfaceMockRecorder) List(offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockCollegeRepositoryInterface)(nil).List), offset, limit)
}

// ListRegions mocks base method.
func (m *MockCollegeRepositoryInterface) ListRegions() ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRegions")
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRegions indicates an expected call of ListRegions.
func (mr *MockCollegeRepositoryInterfaceMockRecorder) ListRegions() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRegions", reflect.TypeOf((*MockCollegeRepositoryInterface)(nil).ListRegions))
}

// SearchByName mocks base method.
func (m *MockCollegeRepositoryInterface) SearchByName(name string, offset, limit int) ([]*models.College, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchByName", name, offset, limit)
	ret0, _ := ret[0].([]*models.College)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SearchByName indicates an expected call of SearchByName.
func (mr *MockCollegeRepositoryInterfaceMockRecorder) SearchByName(name, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchByName", reflect.TypeOf((*MockCollegeRepositoryInterface)(nil).SearchByName), name, offset, limit)
}

// UpdateRegion mocks base method.
func (m *MockCollegeRepositoryInterface) UpdateRegion(code int, region string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateRegion", code, region)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateRegion indicates an expected call of UpdateRegion.
func (mr *MockCollegeRepositoryInterfaceMockRecorder) UpdateRegion(code, region interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateRegion", reflect.TypeOf((*MockCollegeRepositoryInterface)(nil).UpdateRegion), code, region)
}

// MockCutoffRepositoryInterface is a mock of CutoffRepositoryInterface interface.
type MockCutoffRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockCutoffRepositoryInterfaceMockRecorder
}

// MockCutoffRepositoryInterfaceMockRecorder is the mock recorder for MockCutoffRepositoryInterface.
type MockCutoffRepositoryInterfaceMockRecorder struct {
	mock *MockCutoffRepositoryInterface
}

// NewMockCutoffRepositoryInterface creates a new mock instance.
func NewMockCutoffRepositoryInterface(ctrl *gomock.Controller) *MockCutoffRepositoryInterface {
	mock := &MockCutoffRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockCutoffRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCutoffRepositoryInterface) EXPECT() *MockCutoffRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Count mocks base method.
func (m *MockCutoffRepositoryInterface) Count() (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count")
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) Count() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).Count))
}

// Create mocks base method.
func (m *MockCutoffRepositoryInterface) Create(cutoff *models.Cutoff) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", cutoff)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) Create(cutoff interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).Create), cutoff)
}

// CreateBatch mocks base method.
func (m *MockCutoffRepositoryInterface) CreateBatch(cutoffs []models.Cutoff) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBatch", cutoffs)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBatch indicates an expected call of CreateBatch.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) CreateBatch(cutoffs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBatch", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).CreateBatch), cutoffs)
}

// DeleteAll mocks base method.
func (m *MockCutoffRepositoryInterface) DeleteAll() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteAll")
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteAll indicates an expected call of DeleteAll.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) DeleteAll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteAll", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).DeleteAll))
}

// DeleteByYear mocks base method.
func (m *MockCutoffRepositoryInterface) DeleteByYear(year int) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteByYear", year)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteByYear indicates an expected call of DeleteByYear.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) DeleteByYear(year interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteByYear", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).DeleteByYear), year)
}

// DistinctBranches mocks base method.
func (m *MockCutoffRepositoryInterface) DistinctBranches() ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DistinctBranches")
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DistinctBranches indicates an expected call of DistinctBranches.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) DistinctBranches() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DistinctBranches", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).DistinctBranches))
}

// DistinctCategories mocks base method.
func (m *MockCutoffRepositoryInterface) DistinctCategories() ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DistinctCategories")
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DistinctCategories indicates an expected call of DistinctCategories.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) DistinctCategories() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DistinctCategories", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).DistinctCategories))
}

// DistinctYears mocks base method.
func (m *MockCutoffRepositoryInterface) DistinctYears() ([]int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DistinctYears")
	ret0, _ := ret[0].([]int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DistinctYears indicates an expected call of DistinctYears.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) DistinctYears() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DistinctYears", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).DistinctYears))
}

// FindEligible mocks base method.
func (m *MockCutoffRepositoryInterface) FindEligible(rank int, filter models.EligibilityFilter, year, limit int) ([]models.Cutoff, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindEligible", rank, filter, year, limit)
	ret0, _ := ret[0].([]models.Cutoff)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindEligible indicates an expected call of FindEligible.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) FindEligible(rank, filter, year, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindEligible", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).FindEligible), rank, filter, year, limit)
}

// FindEligibleForBranches mocks base method.
func (m *MockCutoffRepositoryInterface) FindEligibleForBranches(rank int, filter models.EligibilityFilter, branches []string, year, limit int) ([]models.Cutoff, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindEligibleForBranches", rank, filter, branches, year, limit)
	ret0, _ := ret[0].([]models.Cutoff)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindEligibleForBranches indicates an expected call of FindEligibleForBranches.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) FindEligibleForBranches(rank, filter, branches, year, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindEligibleForBranches", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).FindEligibleForBranches), rank, filter, branches, year, limit)
}

// GetByCollegeCode mocks base method.
func (m *MockCutoffRepositoryInterface) GetByCollegeCode(code, year int) ([]models.Cutoff, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByCollegeCode", code, year)
	ret0, _ := ret[0].([]models.Cutoff)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByCollegeCode indicates an expected call of GetByCollegeCode.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) GetByCollegeCode(code, year interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByCollegeCode", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).GetByCollegeCode), code, year)
}

// ListWithColleges mocks base method.
func (m *MockCutoffRepositoryInterface) ListWithColleges(year int) ([]models.Cutoff, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListWithColleges", year)
	ret0, _ := ret[0].([]models.Cutoff)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListWithColleges indicates an expected call of ListWithColleges.
func (mr *MockCutoffRepositoryInterfaceMockRecorder) ListWithColleges(year interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListWithColleges", reflect.TypeOf((*MockCutoffRepositoryInterface)(nil).ListWithColleges), year)
}

// MockRankedCollegeRepositoryInterface is a mock of RankedCollegeRepositoryInterface interface.
type MockRankedCollegeRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockRankedCollegeRepositoryInterfaceMockRecorder
}

// MockRankedCollegeRepositoryInterfaceMockRecorder is the mock recorder for MockRankedCollegeRepositoryInterface.
type MockRankedCollegeRepositoryInterfaceMockRecorder struct {
	mock *MockRankedCollegeRepositoryInterface
}

// NewMockRankedCollegeRepositoryInterface creates a new mock instance.
func NewMockRankedCollegeRepositoryInterface(ctrl *gomock.Controller) *MockRankedCollegeRepositoryInterface {
	mock := &MockRankedCollegeRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockRankedCollegeRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRankedCollegeRepositoryInterface) EXPECT() *MockRankedCollegeRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Count mocks base method.
func (m *MockRankedCollegeRepositoryInterface) Count() (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Count")
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Count indicates an expected call of Count.
func (mr *MockRankedCollegeRepositoryInterfaceMockRecorder) Count() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Count", reflect.TypeOf((*MockRankedCollegeRepositoryInterface)(nil).Count))
}

// GetByBranchCode mocks base method.
func (m *MockRankedCollegeRepositoryInterface) GetByBranchCode(branchCode string, maxRank, limit int) ([]models.RankedCollege, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByBranchCode", branchCode, maxRank, limit)
	ret0, _ := ret[0].([]models.RankedCollege)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByBranchCode indicates an expected call of GetByBranchCode.
func (mr *MockRankedCollegeRepositoryInterfaceMockRecorder) GetByBranchCode(branchCode, maxRank, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByBranchCode", reflect.TypeOf((*MockRankedCollegeRepositoryInterface)(nil).GetByBranchCode), branchCode, maxRank, limit)
}

// Rebuild mocks base method.
func (m *MockRankedCollegeRepositoryInterface) Rebuild(entries []models.RankedCollege) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rebuild", entries)
	ret0, _ := ret[0].(error)
	return ret0
}

// Rebuild indicates an expected call of Rebuild.
func (mr *MockRankedCollegeRepositoryInterfaceMockRecorder) Rebuild(entries interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rebuild", reflect.TypeOf((*MockRankedCollegeRepositoryInterface)(nil).Rebuild), entries)
}
