package segmentation

import (
	"fmt"
	"math"
	"time"

	"go-segmentation/internal/model"
)

// The demo pipeline fabricates its result: four fixed segments summing
// to 290 customers and a constant silhouette score. Descriptions follow
// the spend/age tiering the real pipeline would derive.
var mockSegments = []model.Segment{
	{ID: 0, Size: 120, AvgAge: 36.4, AvgSpend: 1850.5, TopCategory: "Electronics", Description: "Premium Customers"},
	{ID: 1, Size: 80, AvgAge: 29.8, AvgSpend: 1120.25, TopCategory: "Fashion", Description: "Regular Shoppers"},
	{ID: 2, Size: 50, AvgAge: 45.2, AvgSpend: 640.8, TopCategory: "Home & Garden", Description: "Budget Conscious"},
	{ID: 3, Size: 40, AvgAge: 24.6, AvgSpend: 980.4, TopCategory: "Books", Description: "Emerging Customers"},
}

const mockSilhouetteScore = 0.72

// MockResult builds the fabricated segmentation result
func MockResult(now time.Time) model.SegmentationResult {
	clusters := make([]model.Segment, len(mockSegments))
	copy(clusters, mockSegments)

	total := 0
	for _, s := range clusters {
		total += s.Size
	}

	return model.SegmentationResult{
		NumClusters:     len(clusters),
		TotalCustomers:  total,
		Clusters:        clusters,
		SilhouetteScore: mockSilhouetteScore,
		GeneratedAt:     now,
	}
}

// Summarize derives the summary-card metrics from a result
func Summarize(res model.SegmentationResult) model.ResultSummary {
	avgSize := 0
	if res.NumClusters > 0 {
		avgSize = int(math.Round(float64(res.TotalCustomers) / float64(res.NumClusters)))
	}
	return model.ResultSummary{
		NumClusters:     res.NumClusters,
		TotalCustomers:  res.TotalCustomers,
		AvgClusterSize:  avgSize,
		SilhouetteScore: fmt.Sprintf("%.2f", res.SilhouetteScore),
	}
}
