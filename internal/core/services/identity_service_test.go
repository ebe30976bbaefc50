package services_test

import (
	"context"
	"testing"

	"github.com/dutytracker/timesheet_backend/internal/apperrors"
	"github.com/dutytracker/timesheet_backend/internal/core/domain"
	portssvc "github.com/dutytracker/timesheet_backend/internal/core/ports/services"
	"github.com/dutytracker/timesheet_backend/internal/core/services"
	"github.com/dutytracker/timesheet_backend/internal/dto"
	"github.com/dutytracker/timesheet_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProfileEmployeeID(ctx context.Context, employeeID string) (*domain.User, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockProfileRepository) FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockProfileRepository) ListEmployeesByDepartment(ctx context.Context, department string) ([]domain.Employee, error) {
	args := m.Called(ctx, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockProfileRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateEmployeePost(ctx context.Context, employeeID string, allocatedPostID string) error {
	args := m.Called(ctx, employeeID, allocatedPostID)
	return args.Error(0)
}

func (m *MockProfileRepository) CreateUserWithEmployee(ctx context.Context, user domain.User, employee domain.Employee) error {
	args := m.Called(ctx, user, employee)
	return args.Error(0)
}

func (m *MockProfileRepository) FindDepartmentHeadByUserID(ctx context.Context, userID string) (*domain.DepartmentHead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepartmentHead), args.Error(1)
}

func (m *MockProfileRepository) SaveDepartmentHead(ctx context.Context, head domain.DepartmentHead) error {
	args := m.Called(ctx, head)
	return args.Error(0)
}

// --- Test Suite ---
type IdentityServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockProfileRepo *MockProfileRepository
	service         portssvc.IdentitySvcFacade
}

func (suite *IdentityServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.service = services.NewIdentityService(suite.mockUserRepo, suite.mockProfileRepo)
}

// --- Test Cases ---

func (suite *IdentityServiceTestSuite) TestRegisterEmployee_Success() {
	ctx := context.Background()
	req := dto.RegisterEmployeeRequest{
		Username:      "jdoe",
		Password:      "secret123",
		EmployeeID:    "EMP001",
		Department:    "SOE",
		SubDepartment: "CSE",
	}

	suite.mockProfileRepo.On("CreateUserWithEmployee", ctx,
		mock.MatchedBy(func(u domain.User) bool {
			return u.Username == req.Username && u.EmployeeID != nil && *u.EmployeeID == req.EmployeeID && u.PasswordHash != req.Password
		}),
		mock.MatchedBy(func(e domain.Employee) bool {
			return e.EmployeeID == req.EmployeeID && e.Department == "SOE" && e.SubDepartment != nil && *e.SubDepartment == "CSE" && e.AllocatedPostID == nil
		}),
	).Return(nil).Once()

	employee, err := suite.service.RegisterEmployee(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(employee)
	suite.True(employee.IsPending())
	suite.Equal("EMP001", employee.EmployeeID)
	suite.mockProfileRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestRegisterEmployee_UnknownDepartment() {
	ctx := context.Background()
	req := dto.RegisterEmployeeRequest{
		Username:   "jdoe",
		Password:   "secret123",
		EmployeeID: "EMP001",
		Department: "NOPE",
	}

	employee, err := suite.service.RegisterEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProfileRepo.AssertNotCalled(suite.T(), "CreateUserWithEmployee", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *IdentityServiceTestSuite) TestRegisterEmployee_UnknownSubDepartment() {
	ctx := context.Background()
	req := dto.RegisterEmployeeRequest{
		Username:      "jdoe",
		Password:      "secret123",
		EmployeeID:    "EMP001",
		Department:    "SOE",
		SubDepartment: "Sessional-Head", // Belongs to ADM, not SOE
	}

	employee, err := suite.service.RegisterEmployee(ctx, req)

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *IdentityServiceTestSuite) TestRegisterDepartmentHead_Success() {
	ctx := context.Background()
	req := dto.RegisterDepartmentHeadRequest{
		Username:   "headsoe",
		Password:   "secret123",
		EmployeeID: "HEAD01",
		Department: "SOE",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == req.Username && !u.IsAdmin
	})).Return(nil).Once()
	suite.mockProfileRepo.On("SaveDepartmentHead", ctx, mock.MatchedBy(func(h domain.DepartmentHead) bool {
		return h.EmployeeID == req.EmployeeID && h.Department == "SOE"
	})).Return(nil).Once()

	head, err := suite.service.RegisterDepartmentHead(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(head)
	suite.Equal("SOE", head.Department)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockProfileRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestAuthenticate_ByUsername() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "admin", PasswordHash: hash, IsAdmin: true}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "admin", "secret123")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestAuthenticate_FallsBackToEmployeeID() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "jdoe", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "EMP001").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByProfileEmployeeID", ctx, "EMP001").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "EMP001", "secret123")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *IdentityServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "jdoe", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "jdoe").Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, "jdoe", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *IdentityServiceTestSuite) TestAuthenticate_UnknownLogin() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByProfileEmployeeID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, "ghost", "secret123")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *IdentityServiceTestSuite) TestResolveRoleProfile_AdminFlagWins() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "admin", IsAdmin: true}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()

	profile, err := suite.service.ResolveRoleProfile(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, profile.Kind)
	suite.Nil(profile.Employee)
	suite.Nil(profile.DepartmentHead)
	suite.mockProfileRepo.AssertNotCalled(suite.T(), "FindEmployeeByUserID", mock.Anything, mock.Anything)
}

func (suite *IdentityServiceTestSuite) TestResolveRoleProfile_Employee() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "jdoe"}
	employee := &domain.Employee{EmployeeID: "EMP001", UserID: user.UserID, Department: "SOE"}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockProfileRepo.On("FindEmployeeByUserID", ctx, user.UserID).Return(employee, nil).Once()

	profile, err := suite.service.ResolveRoleProfile(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleEmployee, profile.Kind)
	suite.Equal("SOE", profile.ScopeDepartment())
}

func (suite *IdentityServiceTestSuite) TestResolveRoleProfile_DepartmentHead() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "headsoe"}
	head := &domain.DepartmentHead{EmployeeID: "HEAD01", UserID: user.UserID, Department: "SOE"}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockProfileRepo.On("FindEmployeeByUserID", ctx, user.UserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProfileRepo.On("FindDepartmentHeadByUserID", ctx, user.UserID).Return(head, nil).Once()

	profile, err := suite.service.ResolveRoleProfile(ctx, user.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleDepartmentHead, profile.Kind)
	suite.Equal("SOE", profile.ScopeDepartment())
}

func (suite *IdentityServiceTestSuite) TestResolveRoleProfile_NoProfileIsUnauthorized() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "orphan"}

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockProfileRepo.On("FindEmployeeByUserID", ctx, user.UserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProfileRepo.On("FindDepartmentHeadByUserID", ctx, user.UserID).Return(nil, apperrors.ErrNotFound).Once()

	profile, err := suite.service.ResolveRoleProfile(ctx, user.UserID)

	suite.Require().Error(err)
	suite.Nil(profile)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestIdentityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}
