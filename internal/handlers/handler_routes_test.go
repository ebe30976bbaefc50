package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dutytracker/timesheet_backend/internal/apperrors"
	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/dutytracker/timesheet_backend/internal/dto"
	"github.com/dutytracker/timesheet_backend/internal/handlers"
	"github.com/dutytracker/timesheet_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock IdentityService ---
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) RegisterEmployee(ctx context.Context, req dto.RegisterEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockIdentityService) RegisterDepartmentHead(ctx context.Context, req dto.RegisterDepartmentHeadRequest) (*domain.DepartmentHead, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepartmentHead), args.Error(1)
}
func (m *MockIdentityService) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockIdentityService) ResolveRoleProfile(ctx context.Context, userID string) (*domain.RoleProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoleProfile), args.Error(1)
}

var _ portssvc.IdentitySvcFacade = (*MockIdentityService)(nil)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListPostNames(ctx context.Context) ([]domain.PostName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostName), args.Error(1)
}
func (m *MockCatalogService) ListDutyNames(ctx context.Context) ([]domain.DutyName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DutyName), args.Error(1)
}
func (m *MockCatalogService) CreatePostName(ctx context.Context, caller *domain.RoleProfile, req dto.CreateCatalogNameRequest) (*domain.PostName, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostName), args.Error(1)
}
func (m *MockCatalogService) CreateDutyName(ctx context.Context, caller *domain.RoleProfile, req dto.CreateCatalogNameRequest) (*domain.DutyName, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DutyName), args.Error(1)
}
func (m *MockCatalogService) ListDepartmentEmployees(ctx context.Context, caller *domain.RoleProfile) ([]domain.Employee, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockCatalogService) ListDepartmentPosts(ctx context.Context, caller *domain.RoleProfile) ([]domain.AllocatedPost, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AllocatedPost), args.Error(1)
}
func (m *MockCatalogService) ListDepartmentDuties(ctx context.Context, caller *domain.RoleProfile) ([]domain.EmployeeDuty, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeDuty), args.Error(1)
}
func (m *MockCatalogService) ListOwnDuties(ctx context.Context, caller *domain.RoleProfile) ([]domain.EmployeeDuty, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeDuty), args.Error(1)
}
func (m *MockCatalogService) CreateAllocatedPost(ctx context.Context, caller *domain.RoleProfile, req dto.CreateAllocatedPostRequest) (*domain.AllocatedPost, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AllocatedPost), args.Error(1)
}
func (m *MockCatalogService) AllocatePost(ctx context.Context, caller *domain.RoleProfile, employeeID, allocatedPostID string) error {
	args := m.Called(ctx, caller, employeeID, allocatedPostID)
	return args.Error(0)
}
func (m *MockCatalogService) AssignDuty(ctx context.Context, caller *domain.RoleProfile, req dto.AssignDutyRequest) (*domain.EmployeeDuty, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeDuty), args.Error(1)
}
func (m *MockCatalogService) RemoveDuty(ctx context.Context, caller *domain.RoleProfile, employeeDutyID string) error {
	args := m.Called(ctx, caller, employeeDutyID)
	return args.Error(0)
}
func (m *MockCatalogService) ProvisionEmployee(ctx context.Context, caller *domain.RoleProfile, req dto.ProvisionEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Mock TimesheetService ---
type MockTimesheetService struct {
	mock.Mock
}

func (m *MockTimesheetService) SubmitTimesheet(ctx context.Context, caller *domain.RoleProfile, date time.Time, dutyHours map[string]decimal.Decimal) (*domain.Timesheet, error) {
	args := m.Called(ctx, caller, date, dutyHours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Timesheet), args.Error(1)
}
func (m *MockTimesheetService) ListOwnTimesheets(ctx context.Context, caller *domain.RoleProfile) ([]domain.Timesheet, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Timesheet), args.Error(1)
}
func (m *MockTimesheetService) ListEmployeeTimesheets(ctx context.Context, caller *domain.RoleProfile, employeeID string) ([]domain.Timesheet, error) {
	args := m.Called(ctx, caller, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Timesheet), args.Error(1)
}
func (m *MockTimesheetService) ListAllTimesheets(ctx context.Context, caller *domain.RoleProfile) ([]domain.Timesheet, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Timesheet), args.Error(1)
}
func (m *MockTimesheetService) Transition(ctx context.Context, caller *domain.RoleProfile, timesheetID string, target domain.TimesheetStatus, remark string) error {
	args := m.Called(ctx, caller, timesheetID, target, remark)
	return args.Error(0)
}
func (m *MockTimesheetService) DashboardCounts(ctx context.Context, caller *domain.RoleProfile) (int, int, error) {
	args := m.Called(ctx, caller)
	return args.Int(0), args.Int(1), args.Error(2)
}

var _ portssvc.TimesheetSvcFacade = (*MockTimesheetService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TimesheetReport(ctx context.Context, filter domain.TimesheetReportFilter, page int) (*domain.TimesheetReportPage, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimesheetReportPage), args.Error(1)
}
func (m *MockReportingService) ExportRows(ctx context.Context, filter domain.TimesheetReportFilter) ([]domain.ReportRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReportRow), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock DirectoryService ---
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) ListDepartments(ctx context.Context) []domain.DepartmentOption {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DepartmentOption)
}
func (m *MockDirectoryService) ListSubDepartments(ctx context.Context, department string) []domain.DepartmentOption {
	args := m.Called(ctx, department)
	return args.Get(0).([]domain.DepartmentOption)
}

var _ portssvc.DirectorySvcFacade = (*MockDirectoryService)(nil)

// --- Test Suite ---
type RoutesTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockIdentity  *MockIdentityService
	mockCatalog   *MockCatalogService
	mockTimesheet *MockTimesheetService
	mockReporting *MockReportingService
	mockDirectory *MockDirectoryService
	jwtSecret     string
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockIdentity = new(MockIdentityService)
	suite.mockCatalog = new(MockCatalogService)
	suite.mockTimesheet = new(MockTimesheetService)
	suite.mockReporting = new(MockReportingService)
	suite.mockDirectory = new(MockDirectoryService)

	cfg := &config.Config{
		JWTSecret:               suite.jwtSecret,
		JWTExpiryDuration:       time.Hour,
		JWTIssuer:               "timesheet-test",
		DefaultEmployeePassword: "test@123",
		LoginRateLimit:          "100-S",
	}
	services := &portssvc.ServiceContainer{
		Identity:  suite.mockIdentity,
		Catalog:   suite.mockCatalog,
		Timesheet: suite.mockTimesheet,
		Reporting: suite.mockReporting,
		Directory: suite.mockDirectory,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *RoutesTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "timesheet-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *RoutesTestSuite) do(method, url, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func employeeProfile(userID string, pending bool) *domain.RoleProfile {
	employee := &domain.Employee{
		EmployeeID: "EMP001",
		UserID:     userID,
		Username:   "jdoe",
		Department: "SOE",
	}
	if !pending {
		postID := uuid.NewString()
		employee.AllocatedPostID = &postID
	}
	return &domain.RoleProfile{
		Kind:     domain.RoleEmployee,
		User:     domain.User{UserID: userID, Username: "jdoe"},
		Employee: employee,
	}
}

func headProfile(userID string) *domain.RoleProfile {
	return &domain.RoleProfile{
		Kind: domain.RoleDepartmentHead,
		User: domain.User{UserID: userID, Username: "headsoe"},
		DepartmentHead: &domain.DepartmentHead{
			EmployeeID: "HEAD01",
			UserID:     userID,
			Department: "SOE",
		},
	}
}

// --- Test Cases ---

func (suite *RoutesTestSuite) TestHealthIsPublic() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RoutesTestSuite) TestProtectedRouteRequiresToken() {
	w := suite.do(http.MethodGet, "/api/v1/employee/dashboard", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RoutesTestSuite) TestLogin_Success() {
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "jdoe"}

	suite.mockIdentity.On("Authenticate", mock.Anything, "EMP001", "secret123").Return(user, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Login: "EMP001", Password: "secret123"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
}

func (suite *RoutesTestSuite) TestLogin_BadCredentials() {
	suite.mockIdentity.On("Authenticate", mock.Anything, "EMP001", "wrong").Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Login: "EMP001", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RoutesTestSuite) TestEmployeeDashboard_PendingSkipsDutyLoading() {
	userID := uuid.NewString()
	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(employeeProfile(userID, true), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/employee/dashboard", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EmployeeDashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Pending)
	suite.Empty(resp.Duties)
	suite.mockCatalog.AssertNotCalled(suite.T(), "ListOwnDuties", mock.Anything, mock.Anything)
}

func (suite *RoutesTestSuite) TestSubmitTimesheet_Created() {
	userID := uuid.NewString()
	profile := employeeProfile(userID, false)
	created := &domain.Timesheet{TimesheetID: uuid.NewString(), EmployeeID: "EMP001", Status: domain.StatusSubmitted}

	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(profile, nil).Once()
	suite.mockTimesheet.On("SubmitTimesheet", mock.Anything, profile,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		mock.Anything,
	).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/employee/timesheets", suite.generateTestToken(userID), dto.SubmitTimesheetRequest{
		Date:      "2025-03-10",
		DutyHours: map[string]decimal.Decimal{uuid.NewString(): decimal.RequireFromString("2.50")},
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockTimesheet.AssertExpectations(suite.T())
}

func (suite *RoutesTestSuite) TestSubmitTimesheet_BadDate() {
	userID := uuid.NewString()
	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(employeeProfile(userID, false), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/employee/timesheets", suite.generateTestToken(userID), dto.SubmitTimesheetRequest{
		Date: "10-03-2025",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTimesheet.AssertNotCalled(suite.T(), "SubmitTimesheet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoutesTestSuite) TestEmployeeCannotReachHeadRoutes() {
	userID := uuid.NewString()
	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(employeeProfile(userID, false), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/head/dashboard", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestHeadTransition_ForbiddenCrossDepartment() {
	userID := uuid.NewString()
	profile := headProfile(userID)
	timesheetID := uuid.NewString()

	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(profile, nil).Once()
	suite.mockTimesheet.On("Transition", mock.Anything, profile, timesheetID, domain.StatusApproved, "").
		Return(apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodPost, "/api/v1/head/timesheets/"+timesheetID+"/status", suite.generateTestToken(userID),
		dto.TransitionTimesheetRequest{Status: domain.StatusApproved})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestHeadDashboard() {
	userID := uuid.NewString()
	profile := headProfile(userID)

	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(profile, nil).Once()
	suite.mockTimesheet.On("DashboardCounts", mock.Anything, profile).Return(3, 7, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/head/dashboard", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.HeadDashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("SOE", resp.Department)
	suite.Equal(3, resp.PendingTimesheets)
	suite.Equal(7, resp.ApprovedTimesheets)
}

func (suite *RoutesTestSuite) TestProvisionEmployee_ReturnsInitialPassword() {
	userID := uuid.NewString()
	profile := headProfile(userID)
	postID := uuid.NewString()
	created := &domain.Employee{EmployeeID: "EMP002", Username: "asmith", Department: "SOE", AllocatedPostID: &postID}

	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(profile, nil).Once()
	suite.mockCatalog.On("ProvisionEmployee", mock.Anything, profile, mock.AnythingOfType("dto.ProvisionEmployeeRequest")).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/head/employees", suite.generateTestToken(userID), dto.ProvisionEmployeeRequest{
		EmployeeID:      "EMP002",
		Username:        "asmith",
		AllocatedPostID: postID,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ProvisionEmployeeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("test@123", resp.InitialPassword)
}

func (suite *RoutesTestSuite) TestReport_FilterParsing() {
	userID := uuid.NewString()
	profile := headProfile(userID)
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(profile, nil).Once()
	suite.mockReporting.On("TimesheetReport", mock.Anything, mock.MatchedBy(func(f domain.TimesheetReportFilter) bool {
		return f.Department == "SOE" && f.Status == domain.StatusApproved && f.DateFrom != nil && f.DateFrom.Equal(from)
	}), 2).Return(&domain.TimesheetReportPage{Page: 2, TotalPages: 2}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/timesheets?department=SOE&status=Approved&date_from=2025-03-01&page=2", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReporting.AssertExpectations(suite.T())
}

func (suite *RoutesTestSuite) TestReport_UnknownStatusRejected() {
	userID := uuid.NewString()
	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(headProfile(userID), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/timesheets?status=Bogus", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReporting.AssertNotCalled(suite.T(), "TimesheetReport", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoutesTestSuite) TestExport_SetsAttachmentHeaders() {
	userID := uuid.NewString()
	profile := headProfile(userID)

	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(profile, nil).Once()
	suite.mockReporting.On("ExportRows", mock.Anything, mock.Anything).Return([]domain.ReportRow{}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reports/timesheets/export", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "timesheets_report.xlsx")
	suite.NotEmpty(w.Body.Bytes())
}

func (suite *RoutesTestSuite) TestDirectoryIsPublic() {
	suite.mockDirectory.On("ListSubDepartments", mock.Anything, "SOE").Return([]domain.DepartmentOption{{Code: "CSE", Label: "Department of Computer Science"}}).Once()

	w := suite.do(http.MethodGet, "/api/v1/directory/sub-departments?department=SOE", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var opts []domain.DepartmentOption
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &opts))
	suite.Len(opts, 1)
}

func (suite *RoutesTestSuite) TestAdminRoutes_GatedToAdmin() {
	userID := uuid.NewString()
	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(headProfile(userID), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/timesheets", suite.generateTestToken(userID), nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RoutesTestSuite) TestAdminCreatesDutyName() {
	userID := uuid.NewString()
	adminProfile := &domain.RoleProfile{
		Kind: domain.RoleAdmin,
		User: domain.User{UserID: userID, Username: "admin", IsAdmin: true},
	}
	created := &domain.DutyName{DutyNameID: uuid.NewString(), Name: "Invigilation"}

	suite.mockIdentity.On("ResolveRoleProfile", mock.Anything, userID).Return(adminProfile, nil).Once()
	suite.mockCatalog.On("CreateDutyName", mock.Anything, adminProfile, dto.CreateCatalogNameRequest{Name: "Invigilation"}).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/duty-names", suite.generateTestToken(userID), dto.CreateCatalogNameRequest{Name: "Invigilation"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp domain.DutyName
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Invigilation", resp.Name)
	suite.mockCatalog.AssertExpectations(suite.T())
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
