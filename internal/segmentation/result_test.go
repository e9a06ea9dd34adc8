package segmentation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-segmentation/internal/segmentation"
)

func TestMockResultShape(t *testing.T) {
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	res := segmentation.MockResult(now)

	assert.Equal(t, 4, res.NumClusters)
	assert.Equal(t, 290, res.TotalCustomers)
	assert.Equal(t, now, res.GeneratedAt)

	descriptions := make([]string, 0, len(res.Clusters))
	for _, c := range res.Clusters {
		descriptions = append(descriptions, c.Description)
	}
	assert.Equal(t, []string{
		"Premium Customers", "Regular Shoppers", "Budget Conscious", "Emerging Customers",
	}, descriptions)
}

func TestSummarizeDerivedMetrics(t *testing.T) {
	res := segmentation.MockResult(time.Now())
	summary := segmentation.Summarize(res)

	// 290 / 4 = 72.5, displayed rounded to 73
	assert.Equal(t, 73, summary.AvgClusterSize)
	assert.Equal(t, "0.72", summary.SilhouetteScore)
	assert.Equal(t, 4, summary.NumClusters)
	assert.Equal(t, 290, summary.TotalCustomers)
}
