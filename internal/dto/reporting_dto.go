package dto

import (
	"bytes"
	"encoding/json"

	"github.com/SscSPs/txn_dashboard/internal/core/domain"
)

// StatisticsResponse represents the month summary response
type StatisticsResponse struct {
	TotalSaleAmount   float64 `json:"totalSaleAmount"`
	TotalSoldItems    int     `json:"totalSoldItems"`
	TotalNotSoldItems int     `json:"totalNotSoldItems"`
}

// BarChartResponse is the price histogram, serialised as an object keyed by
// bucket label with keys in bucket order.
type BarChartResponse domain.PriceHistogram

// MarshalJSON writes the buckets as a JSON object preserving bucket order.
func (b BarChartResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, bucket := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(bucket.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(bucket.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CategoryCountResponse is one slice of the category pie chart
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CombinedResponse bundles every dashboard view for one month
type CombinedResponse struct {
	Transactions ListTransactionsResponse `json:"transactions"`
	Statistics   StatisticsResponse       `json:"statistics"`
	BarChart     BarChartResponse         `json:"barChart"`
	PieChart     []CategoryCountResponse  `json:"pieChart"`
}

// ToStatisticsResponse converts domain statistics to a DTO response
func ToStatisticsResponse(s *domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalSaleAmount:   s.TotalSaleAmount.InexactFloat64(),
		TotalSoldItems:    s.TotalSoldItems,
		TotalNotSoldItems: s.TotalNotSoldItems,
	}
}

// ToBarChartResponse converts a domain histogram to a DTO response
func ToBarChartResponse(h domain.PriceHistogram) BarChartResponse {
	return BarChartResponse(h)
}

// ToPieChartResponse converts domain category counts to a DTO response
func ToPieChartResponse(counts []domain.CategoryCount) []CategoryCountResponse {
	res := make([]CategoryCountResponse, len(counts))
	for i, c := range counts {
		res[i] = CategoryCountResponse{Category: c.Category, Count: c.Count}
	}
	return res
}

// ToCombinedResponse converts a domain dashboard to a DTO response
func ToCombinedResponse(d *domain.Dashboard) CombinedResponse {
	return CombinedResponse{
		Transactions: ToListTransactionsResponse(&d.Transactions),
		Statistics:   ToStatisticsResponse(&d.Statistics),
		BarChart:     ToBarChartResponse(d.BarChart),
		PieChart:     ToPieChartResponse(d.PieChart),
	}
}
