package export_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-segmentation/internal/export"
	"go-segmentation/internal/model"
	"go-segmentation/internal/segmentation"
)

func TestCSVExactBytes(t *testing.T) {
	res := segmentation.MockResult(time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC))

	want := "Segment,Size,AvgAge,AvgSpend,TopCategory,Description\n" +
		`0,120,36.4,1850.5,"Electronics","Premium Customers"` + "\n" +
		`1,80,29.8,1120.25,"Fashion","Regular Shoppers"` + "\n" +
		`2,50,45.2,640.8,"Home & Garden","Budget Conscious"` + "\n" +
		`3,40,24.6,980.4,"Books","Emerging Customers"` + "\n"

	assert.Equal(t, []byte(want), export.CSV(res))
}

func TestJSONIsPrettyPrintedFullObject(t *testing.T) {
	res := segmentation.MockResult(time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC))

	data, err := export.JSON(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"numClusters\": 4")

	var decoded model.SegmentationResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, res.TotalCustomers, decoded.TotalCustomers)
	assert.Len(t, decoded.Clusters, 4)
}

func TestSerializeFormats(t *testing.T) {
	res := segmentation.MockResult(time.Now())

	csvExp, err := export.Serialize("csv", res)
	require.NoError(t, err)
	assert.Equal(t, "segmentation_results.csv", csvExp.Filename)
	assert.Equal(t, "text/csv", csvExp.ContentType)

	jsonExp, err := export.Serialize("JSON", res)
	require.NoError(t, err)
	assert.Equal(t, "segmentation_results.json", jsonExp.Filename)

	_, err = export.Serialize("pdf", res)
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)

	_, err = export.Serialize("xml", res)
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}
