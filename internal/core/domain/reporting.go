package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Statistics summarises the sales of a month.
type Statistics struct {
	TotalSaleAmount   decimal.Decimal `json:"totalSaleAmount"`
	TotalSoldItems    int             `json:"totalSoldItems"`
	TotalNotSoldItems int             `json:"totalNotSoldItems"`
}

// PriceBucket is one inclusive price range of the histogram.
type PriceBucket struct {
	Lower float64
	Upper float64
	Label string
}

// priceBuckets is ordered; the first matching bucket wins and the last one
// catches every price not matched before it.
var priceBuckets = []PriceBucket{
	{Lower: 0, Upper: 100, Label: "0-100"},
	{Lower: 101, Upper: 200, Label: "101-200"},
	{Lower: 201, Upper: 300, Label: "201-300"},
	{Lower: 301, Upper: 400, Label: "301-400"},
	{Lower: 401, Upper: 500, Label: "401-500"},
	{Lower: 501, Upper: 600, Label: "501-600"},
	{Lower: 601, Upper: 700, Label: "601-700"},
	{Lower: 701, Upper: 800, Label: "701-800"},
	{Lower: 801, Upper: 900, Label: "801-900"},
	{Lower: 901, Upper: math.Inf(1), Label: "901-above"},
}

// PriceBuckets returns a copy of the histogram bucket table.
func PriceBuckets() []PriceBucket {
	out := make([]PriceBucket, len(priceBuckets))
	copy(out, priceBuckets)
	return out
}

// Contains reports whether price lies within the bucket bounds.
func (b PriceBucket) Contains(price float64) bool {
	return price >= b.Lower && price <= b.Upper
}

// BucketCount is the number of records that fell into a bucket.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PriceHistogram holds one count per bucket, in bucket order.
type PriceHistogram []BucketCount

// CategoryCount is the number of records in a category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ComputeStatistics sums prices and counts sold and unsold records.
func ComputeStatistics(records []Transaction) Statistics {
	stats := Statistics{TotalSaleAmount: decimal.Zero}
	for _, r := range records {
		stats.TotalSaleAmount = stats.TotalSaleAmount.Add(decimal.NewFromFloat(r.Price))
		if r.Sold {
			stats.TotalSoldItems++
		} else {
			stats.TotalNotSoldItems++
		}
	}
	return stats
}

// BucketIndex returns the index of the bucket price falls into.
func BucketIndex(price float64) int {
	last := len(priceBuckets) - 1
	for i, b := range priceBuckets[:last] {
		if b.Contains(price) {
			return i
		}
	}
	return last
}

// ComputePriceHistogram counts records per price bucket. Every bucket is
// present, zero counts included.
func ComputePriceHistogram(records []Transaction) PriceHistogram {
	hist := make(PriceHistogram, len(priceBuckets))
	for i, b := range priceBuckets {
		hist[i] = BucketCount{Label: b.Label}
	}
	for _, r := range records {
		hist[BucketIndex(r.Price)].Count++
	}
	return hist
}

// Total returns the sum of all bucket counts.
func (h PriceHistogram) Total() int {
	n := 0
	for _, b := range h {
		n += b.Count
	}
	return n
}

// CountCategories counts records per category in first-seen order.
func CountCategories(records []Transaction) []CategoryCount {
	counts := make([]CategoryCount, 0)
	index := make(map[string]int)
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(counts)
			index[r.Category] = i
			counts = append(counts, CategoryCount{Category: r.Category})
		}
		counts[i].Count++
	}
	return counts
}

// Dashboard bundles the listing page with every aggregation of the same month.
type Dashboard struct {
	Transactions TransactionPage
	Statistics   Statistics
	BarChart     PriceHistogram
	PieChart     []CategoryCount
}
