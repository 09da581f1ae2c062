// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package repository_mocks is a generated GoMock package.
package repository_mocks

import (
	models "fintrack/internal/models"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
)

// MockExpenseRepositoryInterface is a mock of ExpenseRepositoryInterface interface.
type MockExpenseRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseRepositoryInterfaceMockRecorder
}

// MockExpenseRepositoryInterfaceMockRecorder is the mock recorder for MockExpenseRepositoryInterface.
type MockExpenseRepositoryInterfaceMockRecorder struct {
	mock *MockExpenseRepositoryInterface
}

// NewMockExpenseRepositoryInterface creates a new mock instance.
func NewMockExpenseRepositoryInterface(ctrl *gomock.Controller) *MockExpenseRepositoryInterface {
	mock := &MockExpenseRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockExpenseRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseRepositoryInterface) EXPECT() *MockExpenseRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockExpenseRepositoryInterface) Create(expense *models.Expense) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", expense)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) Create(expense interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).Create), expense)
}

// CreateBatch mocks base method.
func (m *MockExpenseRepositoryInterface) CreateBatch(expenses []models.Expense) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBatch", expenses)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBatch indicates an expected call of CreateBatch.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) CreateBatch(expenses interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBatch", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).CreateBatch), expenses)
}

// Delete mocks base method.
func (m *MockExpenseRepositoryInterface) Delete(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) Delete(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).Delete), id)
}

// GetByDateRange mocks base method.
func (m *MockExpenseRepositoryInterface) GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByDateRange", userID, startDate, endDate)
	ret0, _ := ret[0].([]models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByDateRange indicates an expected call of GetByDateRange.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) GetByDateRange(userID, startDate, endDate interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByDateRange", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).GetByDateRange), userID, startDate, endDate)
}

// GetByID mocks base method.
func (m *MockExpenseRepositoryInterface) GetByID(id uuid.UUID) (*models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).GetByID), id)
}

// GetByUserID mocks base method.
func (m *MockExpenseRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).GetByUserID), userID)
}

// GetByUserIDPaginated mocks base method.
func (m *MockExpenseRepositoryInterface) GetByUserIDPaginated(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserIDPaginated", userID, offset, limit)
	ret0, _ := ret[0].([]models.Expense)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetByUserIDPaginated indicates an expected call of GetByUserIDPaginated.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) GetByUserIDPaginated(userID, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserIDPaginated", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).GetByUserIDPaginated), userID, offset, limit)
}

// GetRecurringByUserID mocks base method.
func (m *MockExpenseRepositoryInterface) GetRecurringByUserID(userID uuid.UUID) ([]models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecurringByUserID", userID)
	ret0, _ := ret[0].([]models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecurringByUserID indicates an expected call of GetRecurringByUserID.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) GetRecurringByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecurringByUserID", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).GetRecurringByUserID), userID)
}

// Update mocks base method.
func (m *MockExpenseRepositoryInterface) Update(expense *models.Expense) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", expense)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockExpenseRepositoryInterfaceMockRecorder) Update(expense interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockExpenseRepositoryInterface)(nil).Update), expense)
}

// MockBudgetRepositoryInterface is a mock of BudgetRepositoryInterface interface.
type MockBudgetRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockBudgetRepositoryInterfaceMockRecorder
}

// MockBudgetRepositoryInterfaceMockRecorder is the mock recorder for MockBudgetRepositoryInterface.
type MockBudgetRepositoryInterfaceMockRecorder struct {
	mock *MockBudgetRepositoryInterface
}

// NewMockBudgetRepositoryInterface creates a new mock instance.
func NewMockBudgetRepositoryInterface(ctrl *gomock.Controller) *MockBudgetRepositoryInterface {
	mock := &MockBudgetRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockBudgetRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBudgetRepositoryInterface) EXPECT() *MockBudgetRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Delete mocks base method.
func (m *MockBudgetRepositoryInterface) Delete(id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockBudgetRepositoryInterfaceMockRecorder) Delete(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockBudgetRepositoryInterface)(nil).Delete), id)
}

// GetByID mocks base method.
func (m *MockBudgetRepositoryInterface) GetByID(id string) (*models.Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockBudgetRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockBudgetRepositoryInterface)(nil).GetByID), id)
}

// GetByUserID mocks base method.
func (m *MockBudgetRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockBudgetRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockBudgetRepositoryInterface)(nil).GetByUserID), userID)
}

// GetByUserIDAndCategory mocks base method.
func (m *MockBudgetRepositoryInterface) GetByUserIDAndCategory(userID uuid.UUID, category string) (*models.Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserIDAndCategory", userID, category)
	ret0, _ := ret[0].(*models.Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserIDAndCategory indicates an expected call of GetByUserIDAndCategory.
func (mr *MockBudgetRepositoryInterfaceMockRecorder) GetByUserIDAndCategory(userID, category interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserIDAndCategory", reflect.TypeOf((*MockBudgetRepositoryInterface)(nil).GetByUserIDAndCategory), userID, category)
}

// Upsert mocks base method.
func (m *MockBudgetRepositoryInterface) Upsert(budget *models.Budget) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Upsert", budget)
	ret0, _ := ret[0].(error)
	return ret0
}

// Upsert indicates an expected call of Upsert.
func (mr *MockBudgetRepositoryInterfaceMockRecorder) Upsert(budget interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Upsert", reflect.TypeOf((*MockBudgetRepositoryInterface)(nil).Upsert), budget)
}

// MockInsightRepositoryInterface is a mock of InsightRepositoryInterface interface.
type MockInsightRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockInsightRepositoryInterfaceMockRecorder
}

// MockInsightRepositoryInterfaceMockRecorder is the mock recorder for MockInsightRepositoryInterface.
type MockInsightRepositoryInterfaceMockRecorder struct {
	mock *MockInsightRepositoryInterface
}

// NewMockInsightRepositoryInterface creates a new mock instance.
func NewMockInsightRepositoryInterface(ctrl *gomock.Controller) *MockInsightRepositoryInterface {
	mock := &MockInsightRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockInsightRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInsightRepositoryInterface) EXPECT() *MockInsightRepositoryInterfaceMockRecorder {
	return m.recorder
}

// CountByUserID mocks base method.
func (m *MockInsightRepositoryInterface) CountByUserID(userID uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountByUserID", userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountByUserID indicates an expected call of CountByUserID.
func (mr *MockInsightRepositoryInterfaceMockRecorder) CountByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountByUserID", reflect.TypeOf((*MockInsightRepositoryInterface)(nil).CountByUserID), userID)
}

// CreateBatch mocks base method.
func (m *MockInsightRepositoryInterface) CreateBatch(insights []models.Insight) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBatch", insights)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBatch indicates an expected call of CreateBatch.
func (mr *MockInsightRepositoryInterfaceMockRecorder) CreateBatch(insights interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBatch", reflect.TypeOf((*MockInsightRepositoryInterface)(nil).CreateBatch), insights)
}

// Delete mocks base method.
func (m *MockInsightRepositoryInterface) Delete(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockInsightRepositoryInterfaceMockRecorder) Delete(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockInsightRepositoryInterface)(nil).Delete), id)
}

// GetByUserID mocks base method.
func (m *MockInsightRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.Insight, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.Insight)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockInsightRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockInsightRepositoryInterface)(nil).GetByUserID), userID)
}

// GetUnreadByUserID mocks base method.
func (m *MockInsightRepositoryInterface) GetUnreadByUserID(userID uuid.UUID) ([]models.Insight, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnreadByUserID", userID)
	ret0, _ := ret[0].([]models.Insight)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUnreadByUserID indicates an expected call of GetUnreadByUserID.
func (mr *MockInsightRepositoryInterfaceMockRecorder) GetUnreadByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnreadByUserID", reflect.TypeOf((*MockInsightRepositoryInterface)(nil).GetUnreadByUserID), userID)
}

// MarkRead mocks base method.
func (m *MockInsightRepositoryInterface) MarkRead(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkRead", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkRead indicates an expected call of MarkRead.
func (mr *MockInsightRepositoryInterfaceMockRecorder) MarkRead(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkRead", reflect.TypeOf((*MockInsightRepositoryInterface)(nil).MarkRead), id)
}

// MockFriendRepositoryInterface is a mock of FriendRepositoryInterface interface.
type MockFriendRepositoryInterface struct {
	ctrl     *gomock.Controller
	recorder *MockFriendRepositoryInterfaceMockRecorder
}

// MockFriendRepositoryInterfaceMockRecorder is the mock recorder for MockFriendRepositoryInterface.
type MockFriendRepositoryInterfaceMockRecorder struct {
	mock *MockFriendRepositoryInterface
}

// NewMockFriendRepositoryInterface creates a new mock instance.
func NewMockFriendRepositoryInterface(ctrl *gomock.Controller) *MockFriendRepositoryInterface {
	mock := &MockFriendRepositoryInterface{ctrl: ctrl}
	mock.recorder = &MockFriendRepositoryInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFriendRepositoryInterface) EXPECT() *MockFriendRepositoryInterfaceMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockFriendRepositoryInterface) Create(friend *models.Friend) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", friend)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockFriendRepositoryInterfaceMockRecorder) Create(friend interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockFriendRepositoryInterface)(nil).Create), friend)
}

// Delete mocks base method.
func (m *MockFriendRepositoryInterface) Delete(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockFriendRepositoryInterfaceMockRecorder) Delete(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockFriendRepositoryInterface)(nil).Delete), id)
}

// GetByID mocks base method.
func (m *MockFriendRepositoryInterface) GetByID(id uuid.UUID) (*models.Friend, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", id)
	ret0, _ := ret[0].(*models.Friend)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockFriendRepositoryInterfaceMockRecorder) GetByID(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockFriendRepositoryInterface)(nil).GetByID), id)
}

// GetByUserID mocks base method.
func (m *MockFriendRepositoryInterface) GetByUserID(userID uuid.UUID) ([]models.Friend, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", userID)
	ret0, _ := ret[0].([]models.Friend)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockFriendRepositoryInterfaceMockRecorder) GetByUserID(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockFriendRepositoryInterface)(nil).GetByUserID), userID)
}

// Update mocks base method.
func (m *MockFriendRepositoryInterface) Update(friend *models.Friend) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", friend)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockFriendRepositoryInterfaceMockRecorder) Update(friend interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockFriendRepositoryInterface)(nil).Update), friend)
}

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
func (m *MockUserRepositoryInterface) Delete(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockUserRepositoryInterfaceMockRecorder) Delete(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockUserRepositoryInterface)(nil).Delete), id)
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

// UpdateLastLogin mocks base method.
func (m *MockUserRepositoryInterface) UpdateLastLogin(userID uuid.UUID, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateLastLogin", userID, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateLastLogin indicates an expected call of UpdateLastLogin.
func (mr *MockUserRepositoryInterfaceMockRecorder) UpdateLastLogin(userID, at interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateLastLogin", reflect.TypeOf((*MockUserRepositoryInterface)(nil).UpdateLastLogin), userID, at)
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
func (m *MockRefreshTokenRepositoryInterface) Revoke(id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Revoke", id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Revoke indicates an expected call of Revoke.
func (mr *MockRefreshTokenRepositoryInterfaceMockRecorder) Revoke(id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Revoke", reflect.TypeOf((*MockRefreshTokenRepositoryInterface)(nil).Revoke), id)
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
