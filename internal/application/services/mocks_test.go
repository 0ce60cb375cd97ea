package services_test

import (
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObserveCalculation(operation, outcome string) {
	m.Called(operation, outcome)
}

type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) Convert(from, to, amount string) (domain.Conversion, error) {
	args := m.Called(from, to, amount)
	return args.Get(0).(domain.Conversion), args.Error(1)
}

func (m *MockConverter) SupportedCurrencies() []domain.Currency {
	args := m.Called()
	return args.Get(0).([]domain.Currency)
}
