package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"restaurant-insights/internal/models"
)

// DailyBucket holds order count and revenue for one calendar date.
type DailyBucket struct {
	Date    string          `json:"date"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// HourBucket holds the order count for one (date, hour) pair.
type HourBucket struct {
	Date  string `json:"date"`
	Hour  int    `json:"hour"`
	Total int    `json:"total"`
}

// RestaurantRevenueRow is one entry of the top-restaurants ranking.
type RestaurantRevenueRow struct {
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Revenue      decimal.Decimal `json:"revenue"`
	Orders       int             `json:"orders"`
}

const topRestaurantLimit = 3

// dailySeries buckets the filtered rows by calendar date and sums count and
// revenue per date. The series is ascending by date; dates with no matching
// orders are omitted, never zero-filled.
func dailySeries(rows []models.OrderWithRestaurant) []DailyBucket {
	byDate := make(map[string]*DailyBucket)
	for _, row := range rows {
		date := row.OrderedAt.In(referenceTZ).Format(dateLayout)
		bucket, ok := byDate[date]
		if !ok {
			bucket = &DailyBucket{Date: date}
			byDate[date] = bucket
		}
		bucket.Orders++
		bucket.Revenue = bucket.Revenue.Add(row.OrderAmount)
	}

	series := make([]DailyBucket, 0, len(byDate))
	for _, bucket := range byDate {
		series = append(series, *bucket)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

// averageOrderValue is total revenue divided by order count, rounded half-up
// to two decimal places. An empty set yields exactly zero.
func averageOrderValue(rows []models.OrderWithRestaurant) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.OrderAmount)
	}
	return total.Div(decimal.NewFromInt(int64(len(rows)))).Round(2)
}

// peakHours finds, for each date present in the filtered rows, the hour with
// the most orders. Ties resolve to the numerically lowest hour, so the
// result never depends on map iteration order.
func peakHours(rows []models.OrderWithRestaurant) map[string]HourBucket {
	counts := make(map[string]map[int]int)
	for _, row := range rows {
		ts := row.OrderedAt.In(referenceTZ)
		date := ts.Format(dateLayout)
		if counts[date] == nil {
			counts[date] = make(map[int]int)
		}
		counts[date][ts.Hour()]++
	}

	peaks := make(map[string]HourBucket, len(counts))
	for date, hours := range counts {
		best := HourBucket{Date: date, Hour: -1}
		for hour, total := range hours {
			if total > best.Total || (total == best.Total && hour < best.Hour) {
				best.Hour = hour
				best.Total = total
			}
		}
		peaks[date] = best
	}
	return peaks
}

// topRestaurants groups the filtered rows by restaurant, sums revenue and
// counts orders, and returns at most three rows ordered by revenue
// descending. Equal revenues are ordered by restaurant id ascending.
func topRestaurants(rows []models.OrderWithRestaurant) []RestaurantRevenueRow {
	byRestaurant := make(map[string]*RestaurantRevenueRow)
	for _, row := range rows {
		entry, ok := byRestaurant[row.RestaurantID]
		if !ok {
			entry = &RestaurantRevenueRow{
				RestaurantID: row.RestaurantID,
				Name:         row.RestaurantName,
			}
			byRestaurant[row.RestaurantID] = entry
		}
		entry.Orders++
		entry.Revenue = entry.Revenue.Add(row.OrderAmount)
	}

	ranking := make([]RestaurantRevenueRow, 0, len(byRestaurant))
	for _, entry := range byRestaurant {
		ranking = append(ranking, *entry)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if !ranking[i].Revenue.Equal(ranking[j].Revenue) {
			return ranking[i].Revenue.GreaterThan(ranking[j].Revenue)
		}
		return ranking[i].RestaurantID < ranking[j].RestaurantID
	})

	if len(ranking) > topRestaurantLimit {
		ranking = ranking[:topRestaurantLimit]
	}
	return ranking
}
