package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/ficmart-calculator/internal/application"
	"github.com/DanielPopoola/ficmart-calculator/internal/application/services"
	"github.com/DanielPopoola/ficmart-calculator/internal/finance"
	"github.com/DanielPopoola/ficmart-calculator/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FinancialServiceTestSuite struct {
	suite.Suite
	recorder *MockRecorder
	service  *services.FinancialService
}

func TestFinancialServiceSuite(t *testing.T) {
	suite.Run(t, new(FinancialServiceTestSuite))
}

func (suite *FinancialServiceTestSuite) SetupTest() {
	suite.recorder = new(MockRecorder)
	suite.service = services.NewFinancialService(
		finance.NewCalculator(validation.New()),
		suite.recorder,
		discardLogger(),
	)
}

func (suite *FinancialServiceTestSuite) TearDownTest() {
	suite.recorder.AssertExpectations(suite.T())
}

func (suite *FinancialServiceTestSuite) Test_VATInclusive_Success() {
	suite.recorder.On("ObserveCalculation", services.OperationVAT, "success").Once()

	result, err := suite.service.VATInclusive(context.Background(), services.VATCommand{Net: "110", Rate: "20"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 132.0, result.Total)
}

func (suite *FinancialServiceTestSuite) Test_VATInclusive_Invalid() {
	suite.recorder.On("ObserveCalculation", services.OperationVAT, "invalid").Once()

	_, err := suite.service.VATInclusive(context.Background(), services.VATCommand{Net: "100", Rate: "150"})

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), 400, application.ToHTTPStatus(err))
}

func (suite *FinancialServiceTestSuite) Test_ApplyDiscount_Success() {
	suite.recorder.On("ObserveCalculation", services.OperationDiscount, "success").Once()

	result, err := suite.service.ApplyDiscount(context.Background(), services.DiscountCommand{Gross: "150", Percentage: "15"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 127.5, result.Final)
	assert.Equal(suite.T(), 150.0, result.Gross)
	assert.Equal(suite.T(), 15.0, result.Percentage)
}

func (suite *FinancialServiceTestSuite) Test_ApplyDiscount_Invalid() {
	suite.recorder.On("ObserveCalculation", services.OperationDiscount, "invalid").Once()

	_, err := suite.service.ApplyDiscount(context.Background(), services.DiscountCommand{})

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), `Parameter "prix" is required, Parameter "pourcentage" is required`, err.Error())
}

func (suite *FinancialServiceTestSuite) Test_ExpiredContext() {
	suite.recorder.On("ObserveCalculation", services.OperationDiscount, "timeout").Once()

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	_, err := suite.service.ApplyDiscount(ctx, services.DiscountCommand{Gross: "1", Percentage: "1"})

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), application.ErrCodeTimeout, application.ToErrorCode(err))
}
