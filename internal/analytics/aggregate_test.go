package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-insights/internal/models"
)

func TestDailySeriesBucketsAndSorts(t *testing.T) {
	rows := []models.OrderWithRestaurant{
		// Deliberately out of date order.
		row("r1", "Bella Napoli", "Italian", "Rome", "30", time.Date(2025, 6, 24, 10, 0, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "100", time.Date(2025, 6, 22, 9, 0, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "50", time.Date(2025, 6, 22, 9, 30, 0, 0, time.UTC)),
	}

	series := dailySeries(rows)

	require.Len(t, series, 2)
	assert.Equal(t, "2025-06-22", series[0].Date)
	assert.Equal(t, 2, series[0].Orders)
	assert.True(t, series[0].Revenue.Equal(decimal.RequireFromString("150")))
	assert.Equal(t, "2025-06-24", series[1].Date)
	assert.Equal(t, 1, series[1].Orders)
	assert.True(t, series[1].Revenue.Equal(decimal.RequireFromString("30")))

	// Total count and revenue over the series equal the working set's.
	totalOrders := 0
	totalRevenue := decimal.Zero
	for _, bucket := range series {
		totalOrders += bucket.Orders
		totalRevenue = totalRevenue.Add(bucket.Revenue)
	}
	assert.Equal(t, len(rows), totalOrders)
	assert.True(t, totalRevenue.Equal(decimal.RequireFromString("180")))
}

func TestDailySeriesEmpty(t *testing.T) {
	assert.Empty(t, dailySeries(nil))
}

func TestAverageOrderValue(t *testing.T) {
	rows := []models.OrderWithRestaurant{
		row("r1", "Bella Napoli", "Italian", "Rome", "100", time.Date(2025, 6, 22, 9, 0, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "50", time.Date(2025, 6, 22, 9, 30, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "30", time.Date(2025, 6, 22, 14, 0, 0, 0, time.UTC)),
	}

	avg := averageOrderValue(rows)
	assert.True(t, avg.Equal(decimal.RequireFromString("60")), "got %s", avg)
}

func TestAverageOrderValueRoundsHalfUp(t *testing.T) {
	rows := []models.OrderWithRestaurant{
		row("r1", "Bella Napoli", "Italian", "Rome", "0.05", time.Date(2025, 6, 22, 9, 0, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "0.10", time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC)),
	}

	// 0.15 / 2 = 0.075, which rounds half-up to 0.08.
	avg := averageOrderValue(rows)
	assert.True(t, avg.Equal(decimal.RequireFromString("0.08")), "got %s", avg)
}

func TestAverageOrderValueZeroWhenEmpty(t *testing.T) {
	avg := averageOrderValue(nil)
	assert.True(t, avg.Equal(decimal.Zero))
}

func TestPeakHoursPicksMaxPerDate(t *testing.T) {
	rows := []models.OrderWithRestaurant{
		row("r1", "Bella Napoli", "Italian", "Rome", "10", time.Date(2025, 6, 22, 9, 0, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "10", time.Date(2025, 6, 22, 9, 30, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "10", time.Date(2025, 6, 22, 14, 0, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "10", time.Date(2025, 6, 23, 20, 0, 0, 0, time.UTC)),
	}

	peaks := peakHours(rows)

	require.Len(t, peaks, 2)
	assert.Equal(t, HourBucket{Date: "2025-06-22", Hour: 9, Total: 2}, peaks["2025-06-22"])
	assert.Equal(t, HourBucket{Date: "2025-06-23", Hour: 20, Total: 1}, peaks["2025-06-23"])
}

func TestPeakHoursTieGoesToLowestHour(t *testing.T) {
	rows := []models.OrderWithRestaurant{
		row("r1", "Bella Napoli", "Italian", "Rome", "10", time.Date(2025, 6, 22, 21, 0, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "10", time.Date(2025, 6, 22, 21, 30, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "10", time.Date(2025, 6, 22, 7, 0, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "10", time.Date(2025, 6, 22, 7, 30, 0, 0, time.UTC)),
	}

	peaks := peakHours(rows)
	assert.Equal(t, HourBucket{Date: "2025-06-22", Hour: 7, Total: 2}, peaks["2025-06-22"])
}

func TestPeakHoursNoZeroFill(t *testing.T) {
	rows := []models.OrderWithRestaurant{
		row("r1", "Bella Napoli", "Italian", "Rome", "10", time.Date(2025, 6, 22, 9, 0, 0, 0, time.UTC)),
	}

	peaks := peakHours(rows)
	require.Len(t, peaks, 1)
	_, present := peaks["2025-06-23"]
	assert.False(t, present)
}

func TestTopRestaurantsRanksByRevenue(t *testing.T) {
	rows := []models.OrderWithRestaurant{
		row("r1", "Bella Napoli", "Italian", "Rome", "100", time.Date(2025, 6, 22, 9, 0, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "50", time.Date(2025, 6, 22, 9, 30, 0, 0, time.UTC)),
		row("r1", "Bella Napoli", "Italian", "Rome", "30", time.Date(2025, 6, 22, 14, 0, 0, 0, time.UTC)),
		row("r2", "Sushi Go", "Japanese", "Osaka", "200", time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC)),
	}

	ranking := topRestaurants(rows)

	require.Len(t, ranking, 2)
	assert.Equal(t, "r2", ranking[0].RestaurantID)
	assert.True(t, ranking[0].Revenue.Equal(decimal.RequireFromString("200")))
	assert.Equal(t, 1, ranking[0].Orders)
	assert.Equal(t, "r1", ranking[1].RestaurantID)
	assert.True(t, ranking[1].Revenue.Equal(decimal.RequireFromString("180")))
	assert.Equal(t, 3, ranking[1].Orders)
}

func TestTopRestaurantsLimitsToThree(t *testing.T) {
	at := time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC)
	rows := []models.OrderWithRestaurant{
		row("r1", "One", "Italian", "Rome", "10", at),
		row("r2", "Two", "Italian", "Rome", "20", at),
		row("r3", "Three", "Italian", "Rome", "30", at),
		row("r4", "Four", "Italian", "Rome", "40", at),
	}

	ranking := topRestaurants(rows)

	require.Len(t, ranking, 3)
	assert.Equal(t, "r4", ranking[0].RestaurantID)
	assert.Equal(t, "r3", ranking[1].RestaurantID)
	assert.Equal(t, "r2", ranking[2].RestaurantID)
}

func TestTopRestaurantsTieBreaksById(t *testing.T) {
	at := time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC)
	rows := []models.OrderWithRestaurant{
		row("r9", "Nine", "Italian", "Rome", "100", at),
		row("r2", "Two", "Italian", "Rome", "100", at),
		row("r5", "Five", "Italian", "Rome", "100", at),
	}

	ranking := topRestaurants(rows)

	require.Len(t, ranking, 3)
	assert.Equal(t, "r2", ranking[0].RestaurantID)
	assert.Equal(t, "r5", ranking[1].RestaurantID)
	assert.Equal(t, "r9", ranking[2].RestaurantID)
}

func TestTopRestaurantsEmpty(t *testing.T) {
	assert.Empty(t, topRestaurants(nil))
}
