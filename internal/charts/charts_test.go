package charts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-segmentation/internal/charts"
	"go-segmentation/internal/segmentation"
)

func TestBuildClusterCountsTrackSegmentSizes(t *testing.T) {
	res := segmentation.MockResult(time.Now())
	data := charts.Build(res, time.Now().UTC())

	assert.Equal(t, []string{"Cluster 0", "Cluster 1", "Cluster 2", "Cluster 3"}, data.ClusterCounts.Labels)
	assert.Equal(t, []int{120, 80, 50, 40}, data.ClusterCounts.Data)
}

func TestBuildSampleDatasets(t *testing.T) {
	res := segmentation.MockResult(time.Now())
	data := charts.Build(res, time.Now().UTC())

	assert.NotEmpty(t, data.ScatterPlot)
	for _, p := range data.ScatterPlot {
		assert.GreaterOrEqual(t, p.Segment, 0)
		assert.Less(t, p.Segment, 4)
	}

	require.NotEmpty(t, data.LineChart)
	assert.Equal(t, "20-30", data.LineChart[0].X)
	for _, p := range data.LineChart {
		assert.Greater(t, p.Y, 0.0)
	}

	require.Len(t, data.RadarChart, 4)
	for i, profile := range data.RadarChart {
		assert.Equal(t, i, profile.Cluster)
	}
}

// Each call builds fresh datasets; mutating one result must not leak
// into the next (the "destroy before re-render" behavior)
func TestBuildReturnsIndependentCopies(t *testing.T) {
	res := segmentation.MockResult(time.Now())

	first := charts.Build(res, time.Now().UTC())
	first.ScatterPlot[0].Y = -1
	first.RadarChart[0].Age = -1

	second := charts.Build(res, time.Now().UTC())
	assert.NotEqual(t, -1.0, second.ScatterPlot[0].Y)
	assert.NotEqual(t, -1.0, second.RadarChart[0].Age)
}
