package getspendinginsights

import (
	"billmind/internal/core/domain/logging"
	"billmind/internal/core/domain/spending"
	"billmind/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var Now = time.Date(2025, time.August, 29, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*spending.TestTransactionRepository, services.Service[Input, Result]) {
	t.Helper()
	repository := spending.NewTestTransactionRepository()
	return repository, New(logging.NewFakeLogger(), repository, func() time.Time { return Now })
}

func TestInsightsComputedForRequestedUserOnly(t *testing.T) {
	repository, service := setup(t)
	_, err := repository.Create(context.Background(), spending.CreateInput{
		UserID: "u1", Amount: 300, Category: "rent",
		Date: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = repository.Create(context.Background(), spending.CreateInput{
		UserID: "u2", Amount: 5000, Category: "rent",
		Date: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	result, err := service.Run(context.Background(), Input{UserID: "u1"})

	require.NoError(t, err)
	assert.Equal(t, 300.0, result.Insights.MonthlyTotals[0])
	assert.Equal(t, map[string]float64{"rent": 300}, result.Insights.CategoryTotals)
}

func TestEmptyInsightsForUnknownUser(t *testing.T) {
	_, service := setup(t)

	result, err := service.Run(context.Background(), Input{UserID: "nobody"})

	require.NoError(t, err)
	assert.Equal(t, [12]float64{}, result.Insights.MonthlyTotals)
	assert.Empty(t, result.Insights.CategoryTotals)
}
