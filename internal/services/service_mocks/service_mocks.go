// Code generated by MockGen. DO NOT EDIT.
// Source: ../interfaces.go

// Package service_mocks is a generated GoMock package.
package service_mocks

import (
	dto "fintrack/internal/dto"
	models "fintrack/internal/models"
	services "fintrack/internal/services"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	uuid "github.com/google/uuid"
	decimal "github.com/shopspring/decimal"
)

// MockInsightEvaluator is a mock of InsightEvaluator interface.
type MockInsightEvaluator struct {
	ctrl     *gomock.Controller
	recorder *MockInsightEvaluatorMockRecorder
}

// MockInsightEvaluatorMockRecorder is the mock recorder for MockInsightEvaluator.
type MockInsightEvaluatorMockRecorder struct {
	mock *MockInsightEvaluator
}

// NewMockInsightEvaluator creates a new mock instance.
func NewMockInsightEvaluator(ctrl *gomock.Controller) *MockInsightEvaluator {
	mock := &MockInsightEvaluator{ctrl: ctrl}
	mock.recorder = &MockInsightEvaluatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInsightEvaluator) EXPECT() *MockInsightEvaluatorMockRecorder {
	return m.recorder
}

// Evaluate mocks base method.
func (m *MockInsightEvaluator) Evaluate(snapshot *services.InsightSnapshot, now time.Time) []models.InsightDraft {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Evaluate", snapshot, now)
	ret0, _ := ret[0].([]models.InsightDraft)
	return ret0
}

// Evaluate indicates an expected call of Evaluate.
func (mr *MockInsightEvaluatorMockRecorder) Evaluate(snapshot, now interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Evaluate", reflect.TypeOf((*MockInsightEvaluator)(nil).Evaluate), snapshot, now)
}

// MockInsightEngineServiceInterface is a mock of InsightEngineServiceInterface interface.
type MockInsightEngineServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockInsightEngineServiceInterfaceMockRecorder
}

// MockInsightEngineServiceInterfaceMockRecorder is the mock recorder for MockInsightEngineServiceInterface.
type MockInsightEngineServiceInterfaceMockRecorder struct {
	mock *MockInsightEngineServiceInterface
}

// NewMockInsightEngineServiceInterface creates a new mock instance.
func NewMockInsightEngineServiceInterface(ctrl *gomock.Controller) *MockInsightEngineServiceInterface {
	mock := &MockInsightEngineServiceInterface{ctrl: ctrl}
	mock.recorder = &MockInsightEngineServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInsightEngineServiceInterface) EXPECT() *MockInsightEngineServiceInterfaceMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockInsightEngineServiceInterface) Run(snapshot *services.InsightSnapshot, userID uuid.UUID) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", snapshot, userID)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Run indicates an expected call of Run.
func (mr *MockInsightEngineServiceInterfaceMockRecorder) Run(snapshot, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockInsightEngineServiceInterface)(nil).Run), snapshot, userID)
}

// MockInsightServiceInterface is a mock of InsightServiceInterface interface.
type MockInsightServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockInsightServiceInterfaceMockRecorder
}

// MockInsightServiceInterfaceMockRecorder is the mock recorder for MockInsightServiceInterface.
type MockInsightServiceInterfaceMockRecorder struct {
	mock *MockInsightServiceInterface
}

// NewMockInsightServiceInterface creates a new mock instance.
func NewMockInsightServiceInterface(ctrl *gomock.Controller) *MockInsightServiceInterface {
	mock := &MockInsightServiceInterface{ctrl: ctrl}
	mock.recorder = &MockInsightServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInsightServiceInterface) EXPECT() *MockInsightServiceInterfaceMockRecorder {
	return m.recorder
}

// DeleteInsight mocks base method.
func (m *MockInsightServiceInterface) DeleteInsight(insightID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteInsight", insightID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteInsight indicates an expected call of DeleteInsight.
func (mr *MockInsightServiceInterfaceMockRecorder) DeleteInsight(insightID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteInsight", reflect.TypeOf((*MockInsightServiceInterface)(nil).DeleteInsight), insightID, userID)
}

// GetInsights mocks base method.
func (m *MockInsightServiceInterface) GetInsights(userID uuid.UUID) ([]models.Insight, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetInsights", userID)
	ret0, _ := ret[0].([]models.Insight)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetInsights indicates an expected call of GetInsights.
func (mr *MockInsightServiceInterfaceMockRecorder) GetInsights(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetInsights", reflect.TypeOf((*MockInsightServiceInterface)(nil).GetInsights), userID)
}

// GetUnreadInsights mocks base method.
func (m *MockInsightServiceInterface) GetUnreadInsights(userID uuid.UUID) ([]models.Insight, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnreadInsights", userID)
	ret0, _ := ret[0].([]models.Insight)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUnreadInsights indicates an expected call of GetUnreadInsights.
func (mr *MockInsightServiceInterfaceMockRecorder) GetUnreadInsights(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnreadInsights", reflect.TypeOf((*MockInsightServiceInterface)(nil).GetUnreadInsights), userID)
}

// MarkInsightRead mocks base method.
func (m *MockInsightServiceInterface) MarkInsightRead(insightID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkInsightRead", insightID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkInsightRead indicates an expected call of MarkInsightRead.
func (mr *MockInsightServiceInterfaceMockRecorder) MarkInsightRead(insightID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkInsightRead", reflect.TypeOf((*MockInsightServiceInterface)(nil).MarkInsightRead), insightID, userID)
}

// RefreshInsights mocks base method.
func (m *MockInsightServiceInterface) RefreshInsights(userID uuid.UUID) ([]models.Insight, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RefreshInsights", userID)
	ret0, _ := ret[0].([]models.Insight)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// RefreshInsights indicates an expected call of RefreshInsights.
func (mr *MockInsightServiceInterfaceMockRecorder) RefreshInsights(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RefreshInsights", reflect.TypeOf((*MockInsightServiceInterface)(nil).RefreshInsights), userID)
}

// MockExpenseServiceInterface is a mock of ExpenseServiceInterface interface.
type MockExpenseServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseServiceInterfaceMockRecorder
}

// MockExpenseServiceInterfaceMockRecorder is the mock recorder for MockExpenseServiceInterface.
type MockExpenseServiceInterfaceMockRecorder struct {
	mock *MockExpenseServiceInterface
}

// NewMockExpenseServiceInterface creates a new mock instance.
func NewMockExpenseServiceInterface(ctrl *gomock.Controller) *MockExpenseServiceInterface {
	mock := &MockExpenseServiceInterface{ctrl: ctrl}
	mock.recorder = &MockExpenseServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseServiceInterface) EXPECT() *MockExpenseServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateExpense mocks base method.
func (m *MockExpenseServiceInterface) CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateExpense", userID, req)
	ret0, _ := ret[0].(*models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateExpense indicates an expected call of CreateExpense.
func (mr *MockExpenseServiceInterfaceMockRecorder) CreateExpense(userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateExpense", reflect.TypeOf((*MockExpenseServiceInterface)(nil).CreateExpense), userID, req)
}

// DeleteExpense mocks base method.
func (m *MockExpenseServiceInterface) DeleteExpense(expenseID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteExpense", expenseID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteExpense indicates an expected call of DeleteExpense.
func (mr *MockExpenseServiceInterfaceMockRecorder) DeleteExpense(expenseID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteExpense", reflect.TypeOf((*MockExpenseServiceInterface)(nil).DeleteExpense), expenseID, userID)
}

// GetExpenseByID mocks base method.
func (m *MockExpenseServiceInterface) GetExpenseByID(expenseID, userID uuid.UUID) (*models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetExpenseByID", expenseID, userID)
	ret0, _ := ret[0].(*models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetExpenseByID indicates an expected call of GetExpenseByID.
func (mr *MockExpenseServiceInterfaceMockRecorder) GetExpenseByID(expenseID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExpenseByID", reflect.TypeOf((*MockExpenseServiceInterface)(nil).GetExpenseByID), expenseID, userID)
}

// GetMonthlyCategorySummary mocks base method.
func (m *MockExpenseServiceInterface) GetMonthlyCategorySummary(userID uuid.UUID, year int, month time.Month) ([]models.CategorySummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMonthlyCategorySummary", userID, year, month)
	ret0, _ := ret[0].([]models.CategorySummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMonthlyCategorySummary indicates an expected call of GetMonthlyCategorySummary.
func (mr *MockExpenseServiceInterfaceMockRecorder) GetMonthlyCategorySummary(userID, year, month interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMonthlyCategorySummary", reflect.TypeOf((*MockExpenseServiceInterface)(nil).GetMonthlyCategorySummary), userID, year, month)
}

// GetRecurringExpenses mocks base method.
func (m *MockExpenseServiceInterface) GetRecurringExpenses(userID uuid.UUID) ([]models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecurringExpenses", userID)
	ret0, _ := ret[0].([]models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecurringExpenses indicates an expected call of GetRecurringExpenses.
func (mr *MockExpenseServiceInterfaceMockRecorder) GetRecurringExpenses(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecurringExpenses", reflect.TypeOf((*MockExpenseServiceInterface)(nil).GetRecurringExpenses), userID)
}

// GetUserExpenses mocks base method.
func (m *MockExpenseServiceInterface) GetUserExpenses(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserExpenses", userID, offset, limit)
	ret0, _ := ret[0].([]models.Expense)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetUserExpenses indicates an expected call of GetUserExpenses.
func (mr *MockExpenseServiceInterfaceMockRecorder) GetUserExpenses(userID, offset, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserExpenses", reflect.TypeOf((*MockExpenseServiceInterface)(nil).GetUserExpenses), userID, offset, limit)
}

// UpdateExpense mocks base method.
func (m *MockExpenseServiceInterface) UpdateExpense(expenseID, userID uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateExpense", expenseID, userID, req)
	ret0, _ := ret[0].(*models.Expense)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateExpense indicates an expected call of UpdateExpense.
func (mr *MockExpenseServiceInterfaceMockRecorder) UpdateExpense(expenseID, userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateExpense", reflect.TypeOf((*MockExpenseServiceInterface)(nil).UpdateExpense), expenseID, userID, req)
}

// MockBudgetServiceInterface is a mock of BudgetServiceInterface interface.
type MockBudgetServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockBudgetServiceInterfaceMockRecorder
}

// MockBudgetServiceInterfaceMockRecorder is the mock recorder for MockBudgetServiceInterface.
type MockBudgetServiceInterfaceMockRecorder struct {
	mock *MockBudgetServiceInterface
}

// NewMockBudgetServiceInterface creates a new mock instance.
func NewMockBudgetServiceInterface(ctrl *gomock.Controller) *MockBudgetServiceInterface {
	mock := &MockBudgetServiceInterface{ctrl: ctrl}
	mock.recorder = &MockBudgetServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBudgetServiceInterface) EXPECT() *MockBudgetServiceInterfaceMockRecorder {
	return m.recorder
}

// DeleteBudget mocks base method.
func (m *MockBudgetServiceInterface) DeleteBudget(budgetID string, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteBudget", budgetID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteBudget indicates an expected call of DeleteBudget.
func (mr *MockBudgetServiceInterfaceMockRecorder) DeleteBudget(budgetID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteBudget", reflect.TypeOf((*MockBudgetServiceInterface)(nil).DeleteBudget), budgetID, userID)
}

// GetUserBudgets mocks base method.
func (m *MockBudgetServiceInterface) GetUserBudgets(userID uuid.UUID) ([]models.Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserBudgets", userID)
	ret0, _ := ret[0].([]models.Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserBudgets indicates an expected call of GetUserBudgets.
func (mr *MockBudgetServiceInterfaceMockRecorder) GetUserBudgets(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserBudgets", reflect.TypeOf((*MockBudgetServiceInterface)(nil).GetUserBudgets), userID)
}

// SetBudget mocks base method.
func (m *MockBudgetServiceInterface) SetBudget(userID uuid.UUID, category string, monthlyLimit decimal.Decimal) (*models.Budget, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBudget", userID, category, monthlyLimit)
	ret0, _ := ret[0].(*models.Budget)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetBudget indicates an expected call of SetBudget.
func (mr *MockBudgetServiceInterfaceMockRecorder) SetBudget(userID, category, monthlyLimit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBudget", reflect.TypeOf((*MockBudgetServiceInterface)(nil).SetBudget), userID, category, monthlyLimit)
}

// MockFriendServiceInterface is a mock of FriendServiceInterface interface.
type MockFriendServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockFriendServiceInterfaceMockRecorder
}

// MockFriendServiceInterfaceMockRecorder is the mock recorder for MockFriendServiceInterface.
type MockFriendServiceInterfaceMockRecorder struct {
	mock *MockFriendServiceInterface
}

// NewMockFriendServiceInterface creates a new mock instance.
func NewMockFriendServiceInterface(ctrl *gomock.Controller) *MockFriendServiceInterface {
	mock := &MockFriendServiceInterface{ctrl: ctrl}
	mock.recorder = &MockFriendServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFriendServiceInterface) EXPECT() *MockFriendServiceInterfaceMockRecorder {
	return m.recorder
}

// CreateFriend mocks base method.
func (m *MockFriendServiceInterface) CreateFriend(userID uuid.UUID, req *dto.CreateFriendRequest) (*models.Friend, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateFriend", userID, req)
	ret0, _ := ret[0].(*models.Friend)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateFriend indicates an expected call of CreateFriend.
func (mr *MockFriendServiceInterfaceMockRecorder) CreateFriend(userID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateFriend", reflect.TypeOf((*MockFriendServiceInterface)(nil).CreateFriend), userID, req)
}

// DeleteFriend mocks base method.
func (m *MockFriendServiceInterface) DeleteFriend(friendID, userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteFriend", friendID, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteFriend indicates an expected call of DeleteFriend.
func (mr *MockFriendServiceInterfaceMockRecorder) DeleteFriend(friendID, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteFriend", reflect.TypeOf((*MockFriendServiceInterface)(nil).DeleteFriend), friendID, userID)
}

// GetUserFriends mocks base method.
func (m *MockFriendServiceInterface) GetUserFriends(userID uuid.UUID) ([]models.Friend, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserFriends", userID)
	ret0, _ := ret[0].([]models.Friend)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserFriends indicates an expected call of GetUserFriends.
func (mr *MockFriendServiceInterfaceMockRecorder) GetUserFriends(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserFriends", reflect.TypeOf((*MockFriendServiceInterface)(nil).GetUserFriends), userID)
}

// UpdateFriendBalance mocks base method.
func (m *MockFriendServiceInterface) UpdateFriendBalance(friendID, userID uuid.UUID, delta decimal.Decimal) (*models.Friend, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateFriendBalance", friendID, userID, delta)
	ret0, _ := ret[0].(*models.Friend)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateFriendBalance indicates an expected call of UpdateFriendBalance.
func (mr *MockFriendServiceInterfaceMockRecorder) UpdateFriendBalance(friendID, userID, delta interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateFriendBalance", reflect.TypeOf((*MockFriendServiceInterface)(nil).UpdateFriendBalance), friendID, userID, delta)
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
func (m *MockAuthServiceInterface) Login(email, password string) (*dto.TokenPair, *models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Login", email, password)
	ret0, _ := ret[0].(*dto.TokenPair)
	ret1, _ := ret[1].(*models.User)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Login indicates an expected call of Login.
func (mr *MockAuthServiceInterfaceMockRecorder) Login(email, password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Login", reflect.TypeOf((*MockAuthServiceInterface)(nil).Login), email, password)
}

// Logout mocks base method.
func (m *MockAuthServiceInterface) Logout(refreshToken string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Logout", refreshToken)
	ret0, _ := ret[0].(error)
	return ret0
}

// Logout indicates an expected call of Logout.
func (mr *MockAuthServiceInterfaceMockRecorder) Logout(refreshToken interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Logout", reflect.TypeOf((*MockAuthServiceInterface)(nil).Logout), refreshToken)
}

// LogoutAll mocks base method.
func (m *MockAuthServiceInterface) LogoutAll(userID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LogoutAll", userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// LogoutAll indicates an expected call of LogoutAll.
func (mr *MockAuthServiceInterfaceMockRecorder) LogoutAll(userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LogoutAll", reflect.TypeOf((*MockAuthServiceInterface)(nil).LogoutAll), userID)
}

// Refresh mocks base method.
func (m *MockAuthServiceInterface) Refresh(refreshToken string) (*dto.TokenPair, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Refresh", refreshToken)
	ret0, _ := ret[0].(*dto.TokenPair)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Refresh indicates an expected call of Refresh.
func (mr *MockAuthServiceInterfaceMockRecorder) Refresh(refreshToken interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Refresh", reflect.TypeOf((*MockAuthServiceInterface)(nil).Refresh), refreshToken)
}

// Register mocks base method.
func (m *MockAuthServiceInterface) Register(req *dto.RegisterRequest) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", req)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Register indicates an expected call of Register.
func (mr *MockAuthServiceInterfaceMockRecorder) Register(req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockAuthServiceInterface)(nil).Register), req)
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

// ValidateAccessToken mocks base method.
func (m *MockTokenServiceInterface) ValidateAccessToken(tokenString string) (*services.AccessClaims, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateAccessToken", tokenString)
	ret0, _ := ret[0].(*services.AccessClaims)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ValidateAccessToken indicates an expected call of ValidateAccessToken.
func (mr *MockTokenServiceInterfaceMockRecorder) ValidateAccessToken(tokenString interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateAccessToken", reflect.TypeOf((*MockTokenServiceInterface)(nil).ValidateAccessToken), tokenString)
}

// ValidateRefreshToken mocks base method.
func (m *MockTokenServiceInterface) ValidateRefreshToken(tokenString string) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateRefreshToken", tokenString)
	ret0, _ := ret[0].(uuid.UUID)
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

// ValidatePasswordStrength mocks base method.
func (m *MockPasswordServiceInterface) ValidatePasswordStrength(password string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidatePasswordStrength", password)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidatePasswordStrength indicates an expected call of ValidatePasswordStrength.
func (mr *MockPasswordServiceInterfaceMockRecorder) ValidatePasswordStrength(password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidatePasswordStrength", reflect.TypeOf((*MockPasswordServiceInterface)(nil).ValidatePasswordStrength), password)
}

// VerifyPassword mocks base method.
func (m *MockPasswordServiceInterface) VerifyPassword(hash, password string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyPassword", hash, password)
	ret0, _ := ret[0].(error)
	return ret0
}

// VerifyPassword indicates an expected call of VerifyPassword.
func (mr *MockPasswordServiceInterfaceMockRecorder) VerifyPassword(hash, password interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyPassword", reflect.TypeOf((*MockPasswordServiceInterface)(nil).VerifyPassword), hash, password)
}

// MockExpenseGeneratorInterface is a mock of ExpenseGeneratorInterface interface.
type MockExpenseGeneratorInterface struct {
	ctrl     *gomock.Controller
	recorder *MockExpenseGeneratorInterfaceMockRecorder
}

// MockExpenseGeneratorInterfaceMockRecorder is the mock recorder for MockExpenseGeneratorInterface.
type MockExpenseGeneratorInterfaceMockRecorder struct {
	mock *MockExpenseGeneratorInterface
}

// NewMockExpenseGeneratorInterface creates a new mock instance.
func NewMockExpenseGeneratorInterface(ctrl *gomock.Controller) *MockExpenseGeneratorInterface {
	mock := &MockExpenseGeneratorInterface{ctrl: ctrl}
	mock.recorder = &MockExpenseGeneratorInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExpenseGeneratorInterface) EXPECT() *MockExpenseGeneratorInterfaceMockRecorder {
	return m.recorder
}

// GenerateExpenses mocks base method.
func (m *MockExpenseGeneratorInterface) GenerateExpenses(userID uuid.UUID, count int) []models.Expense {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateExpenses", userID, count)
	ret0, _ := ret[0].([]models.Expense)
	return ret0
}

// GenerateExpenses indicates an expected call of GenerateExpenses.
func (mr *MockExpenseGeneratorInterfaceMockRecorder) GenerateExpenses(userID, count interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateExpenses", reflect.TypeOf((*MockExpenseGeneratorInterface)(nil).GenerateExpenses), userID, count)
}

// GenerateRecurringSeries mocks base method.
func (m *MockExpenseGeneratorInterface) GenerateRecurringSeries(userID uuid.UUID, description, category string, months int) []models.Expense {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenerateRecurringSeries", userID, description, category, months)
	ret0, _ := ret[0].([]models.Expense)
	return ret0
}

// GenerateRecurringSeries indicates an expected call of GenerateRecurringSeries.
func (mr *MockExpenseGeneratorInterfaceMockRecorder) GenerateRecurringSeries(userID, description, category, months interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenerateRecurringSeries", reflect.TypeOf((*MockExpenseGeneratorInterface)(nil).GenerateRecurringSeries), userID, description, category, months)
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

// RecordEngineRun mocks base method.
func (m *MockMetricsRecorderInterface) RecordEngineRun(outcome string, duration time.Duration) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordEngineRun", outcome, duration)
}

// RecordEngineRun indicates an expected call of RecordEngineRun.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordEngineRun(outcome, duration interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordEngineRun", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordEngineRun), outcome, duration)
}

// RecordInsightsGenerated mocks base method.
func (m *MockMetricsRecorderInterface) RecordInsightsGenerated(kind string, count int) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RecordInsightsGenerated", kind, count)
}

// RecordInsightsGenerated indicates an expected call of RecordInsightsGenerated.
func (mr *MockMetricsRecorderInterfaceMockRecorder) RecordInsightsGenerated(kind, count interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordInsightsGenerated", reflect.TypeOf((*MockMetricsRecorderInterface)(nil).RecordInsightsGenerated), kind, count)
}
