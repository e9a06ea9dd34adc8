package model

import "time"

// ClusterCounts feeds the bar chart
type ClusterCounts struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// ScatterPoint is one age/spend point on the scatter plot
type ScatterPoint struct {
	X       float64 `json:"x"` // age
	Y       float64 `json:"y"` // spend
	Segment int     `json:"segment"`
}

// LinePoint is one age-band trend point
type LinePoint struct {
	X string  `json:"x"` // e.g. "20-30"
	Y float64 `json:"y"` // average spend
}

// RadarProfile is one cluster's averaged feature profile
type RadarProfile struct {
	Cluster   int     `json:"cluster"`
	Age       float64 `json:"age"`
	Spend     float64 `json:"spend"`
	Recency   float64 `json:"recency"`
	Frequency float64 `json:"frequency"`
}

// ChartData bundles the four chart datasets, mirroring chart_data.json
type ChartData struct {
	ClusterCounts ClusterCounts  `json:"clusterCounts"`
	ScatterPlot   []ScatterPoint `json:"scatterPlot"`
	LineChart     []LinePoint    `json:"lineChart"`
	RadarChart    []RadarProfile `json:"radarChart"`
	GeneratedAt   time.Time      `json:"generatedAt"`
}
