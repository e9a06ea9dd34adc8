package charts

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"go-segmentation/internal/model"
)

// The scatter, line and radar datasets are parameterized from sample
// arrays baked into this package rather than from the job output. The
// decoupling is deliberate: the demo charts never reflected uploaded or
// computed data, only the bar chart tracks the segment sizes.
var scatterSamples = []model.ScatterPoint{
	{X: 24, Y: 410, Segment: 3},
	{X: 26, Y: 980, Segment: 3},
	{X: 27, Y: 1250, Segment: 1},
	{X: 29, Y: 860, Segment: 1},
	{X: 31, Y: 1120, Segment: 1},
	{X: 33, Y: 1640, Segment: 0},
	{X: 35, Y: 2050, Segment: 0},
	{X: 36, Y: 1890, Segment: 0},
	{X: 38, Y: 1475, Segment: 0},
	{X: 41, Y: 720, Segment: 2},
	{X: 44, Y: 530, Segment: 2},
	{X: 46, Y: 615, Segment: 2},
	{X: 49, Y: 840, Segment: 2},
	{X: 52, Y: 1310, Segment: 1},
	{X: 55, Y: 960, Segment: 1},
	{X: 58, Y: 690, Segment: 2},
	{X: 63, Y: 1180, Segment: 0},
	{X: 67, Y: 540, Segment: 2},
	{X: 71, Y: 760, Segment: 2},
	{X: 74, Y: 430, Segment: 3},
}

var radarSamples = []model.RadarProfile{
	{Cluster: 0, Age: 36.4, Spend: 1850.5, Recency: 12.3, Frequency: 8.6},
	{Cluster: 1, Age: 29.8, Spend: 1120.3, Recency: 21.7, Frequency: 5.4},
	{Cluster: 2, Age: 45.2, Spend: 640.8, Recency: 48.1, Frequency: 2.2},
	{Cluster: 3, Age: 24.6, Spend: 980.4, Recency: 9.5, Frequency: 6.1},
}

var ageBands = [][2]float64{
	{20, 30}, {30, 40}, {40, 50}, {50, 60}, {60, 70}, {70, 80},
}

// Build assembles the four chart datasets. Prior chart state is simply
// replaced: every call produces a fresh ChartData value.
func Build(res model.SegmentationResult, now time.Time) model.ChartData {
	return model.ChartData{
		ClusterCounts: clusterCounts(res),
		ScatterPlot:   scatterPlot(),
		LineChart:     lineChart(),
		RadarChart:    radarChart(),
		GeneratedAt:   now,
	}
}

// clusterCounts builds the bar chart labels and values from the segment
// sizes, ordered by cluster id
func clusterCounts(res model.SegmentationResult) model.ClusterCounts {
	clusters := make([]model.Segment, len(res.Clusters))
	copy(clusters, res.Clusters)
	sort.Slice(clusters, func(i, j int) bool { return clusters[i].ID < clusters[j].ID })

	cc := model.ClusterCounts{
		Labels: make([]string, 0, len(clusters)),
		Data:   make([]int, 0, len(clusters)),
	}
	for _, c := range clusters {
		cc.Labels = append(cc.Labels, fmt.Sprintf("Cluster %d", c.ID))
		cc.Data = append(cc.Data, c.Size)
	}
	return cc
}

func scatterPlot() []model.ScatterPoint {
	points := make([]model.ScatterPoint, len(scatterSamples))
	copy(points, scatterSamples)
	return points
}

// lineChart averages sample spend per age band
func lineChart() []model.LinePoint {
	var line []model.LinePoint
	for _, band := range ageBands {
		var spends []float64
		for _, p := range scatterSamples {
			if p.X >= band[0] && p.X < band[1] {
				spends = append(spends, p.Y)
			}
		}
		if len(spends) == 0 {
			continue
		}
		mean, err := stats.Mean(spends)
		if err != nil {
			continue
		}
		line = append(line, model.LinePoint{
			X: fmt.Sprintf("%d-%d", int(band[0]), int(band[1])),
			Y: math.Round(mean*10) / 10,
		})
	}
	return line
}

func radarChart() []model.RadarProfile {
	profiles := make([]model.RadarProfile, len(radarSamples))
	copy(profiles, radarSamples)
	return profiles
}
