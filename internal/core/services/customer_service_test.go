package services_test

import (
	"context"
	"testing"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/apperrors"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
	portssvc "github.com/Shrey-Singhal/Internet-Banking-App/internal/core/ports/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/services"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/dto"
	"github.com/Shrey-Singhal/Internet-Banking-App/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID int) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	var customer *domain.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*domain.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) FindCredentialByLoginID(ctx context.Context, loginID string) (*domain.Credential, error) {
	args := m.Called(ctx, loginID)
	var credential *domain.Credential
	if args.Get(0) != nil {
		credential = args.Get(0).(*domain.Credential)
	}
	return credential, args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// --- Test Suite ---
type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockCustomerRepo)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (suite *CustomerServiceTestSuite) TestVerifyLogin_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)

	credential := &domain.Credential{LoginID: "12345678", CustomerID: 2100, PasswordHash: hash}
	customer := &domain.Customer{CustomerID: 2100, Name: "Matthew Bolan"}

	suite.mockCustomerRepo.On("FindCredentialByLoginID", ctx, "12345678").Return(credential, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, 2100).Return(customer, nil).Once()

	got, err := suite.service.VerifyLogin(ctx, "12345678", "correct horse")

	suite.Require().NoError(err)
	suite.Equal(2100, got.CustomerID)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestVerifyLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)

	credential := &domain.Credential{LoginID: "12345678", CustomerID: 2100, PasswordHash: hash}
	suite.mockCustomerRepo.On("FindCredentialByLoginID", ctx, "12345678").Return(credential, nil).Once()

	got, err := suite.service.VerifyLogin(ctx, "12345678", "battery staple")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByID", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestVerifyLogin_UnknownLoginReadsAsUnauthorized() {
	ctx := context.Background()
	suite.mockCustomerRepo.On("FindCredentialByLoginID", ctx, "99999999").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.VerifyLogin(ctx, "99999999", "whatever")

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

func (suite *CustomerServiceTestSuite) TestUpdateProfile_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	existing := &domain.Customer{
		CustomerID: 2100,
		Name:       "Matthew Bolan",
		City:       "Melbourne",
		Mobile:     "0412 345 678",
	}
	newCity := "Geelong"

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, 2100).Return(existing, nil).Once()
	suite.mockCustomerRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.City == newCity && c.Name == "Matthew Bolan" && c.Mobile == "0412 345 678" && c.LastUpdatedBy == "2100"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProfile(ctx, 2100, dto.UpdateProfileRequest{City: &newCity})

	suite.Require().NoError(err)
	suite.Equal(newCity, updated.City)
	suite.Equal("Matthew Bolan", updated.Name)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateProfile_NoFieldsIsNoop() {
	ctx := context.Background()
	existing := &domain.Customer{CustomerID: 2100, Name: "Matthew Bolan"}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, 2100).Return(existing, nil).Once()

	updated, err := suite.service.UpdateProfile(ctx, 2100, dto.UpdateProfileRequest{})

	suite.Require().NoError(err)
	suite.Equal("Matthew Bolan", updated.Name)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "UpdateCustomer", mock.Anything, mock.Anything)
}
