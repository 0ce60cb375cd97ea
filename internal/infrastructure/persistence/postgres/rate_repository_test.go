package postgres_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/ficmart-calculator/internal/currency"
	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
	"github.com/DanielPopoola/ficmart-calculator/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/ficmart-calculator/internal/infrastructure/persistence/testhelpers"
	"github.com/DanielPopoola/ficmart-calculator/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RateRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDatabase
	repo   *postgres.RateRepository
}

func TestRateRepositorySuite(t *testing.T) {
	suite.Run(t, new(RateRepositoryTestSuite))
}

func (suite *RateRepositoryTestSuite) SetupSuite() {
	suite.testDB = testhelpers.SetupTestDatabase(suite.T())
	suite.repo = postgres.NewRateRepository(suite.testDB.DB.Pool)
}

func (suite *RateRepositoryTestSuite) TearDownSuite() {
	if suite.testDB != nil {
		suite.testDB.Cleanup(suite.T())
	}
}

func (suite *RateRepositoryTestSuite) Test_LoadTable_SeededRatesMatchDefaults() {
	t := suite.T()

	table, err := suite.repo.LoadTable(context.Background())
	require.NoError(t, err)

	defaults := currency.DefaultTable()
	require.Equal(t, defaults.Pairs(), table.Pairs())
	for _, pair := range defaults.Pairs() {
		want, _ := defaults.Rate(pair.From, pair.To)
		got, ok := table.Rate(pair.From, pair.To)
		assert.True(t, ok, pair.String())
		assert.Equal(t, want, got, pair.String())
	}
}

func (suite *RateRepositoryTestSuite) Test_LoadTable_FeedsConverter() {
	t := suite.T()

	table, err := suite.repo.LoadTable(context.Background())
	require.NoError(t, err)

	got, err := currency.NewConverter(table, validation.New()).Convert("EUR", "USD", "33.33")
	require.NoError(t, err)
	assert.Equal(t, 36.66, got.ConvertedAmount)
}

func (suite *RateRepositoryTestSuite) Test_LoadTable_NormalisesCodes() {
	t := suite.T()
	ctx := context.Background()

	_, err := suite.testDB.DB.Pool.Exec(ctx,
		`INSERT INTO exchange_rates (from_code, to_code, rate) VALUES ('chf', 'eur', 0.95)`)
	require.NoError(t, err)
	defer func() {
		_, _ = suite.testDB.DB.Pool.Exec(ctx, `DELETE FROM exchange_rates WHERE from_code = 'chf'`)
	}()

	table, err := suite.repo.LoadTable(ctx)
	require.NoError(t, err)

	rate, ok := table.Rate("CHF", domain.EUR)
	assert.True(t, ok)
	assert.Equal(t, 0.95, rate)
}

// Runs last: it empties the table.
func (suite *RateRepositoryTestSuite) Test_Z_LoadTable_Empty() {
	suite.testDB.CleanTables(suite.T())

	_, err := suite.repo.LoadTable(context.Background())
	assert.ErrorIs(suite.T(), err, postgres.ErrNoRates)
}
