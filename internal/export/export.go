package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-segmentation/internal/model"
)

// ErrUnsupportedFormat covers pdf (placeholder only) and unknown formats
var ErrUnsupportedFormat = errors.New("unsupported export format")

// csvHeader is a fixed contract with the dashboard download
const csvHeader = "Segment,Size,AvgAge,AvgSpend,TopCategory,Description"

// Export holds a serialized result ready for download
type Export struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Serialize renders the result in the requested format. Formats csv and
// json produce downloadable content with fixed filenames; pdf is not
// implemented and reports ErrUnsupportedFormat.
func Serialize(format string, res model.SegmentationResult) (Export, error) {
	switch strings.ToLower(format) {
	case "csv":
		return Export{
			Data:        CSV(res),
			Filename:    "segmentation_results.csv",
			ContentType: "text/csv",
		}, nil
	case "json":
		data, err := JSON(res)
		if err != nil {
			return Export{}, err
		}
		return Export{
			Data:        data,
			Filename:    "segmentation_results.json",
			ContentType: "application/json",
		}, nil
	case "pdf":
		return Export{}, fmt.Errorf("%w: PDF export is not implemented", ErrUnsupportedFormat)
	default:
		return Export{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// CSV renders the fixed header followed by one row per segment. The two
// string columns are always quoted; numeric columns never are. Built by
// hand because encoding/csv only quotes when a delimiter forces it.
func CSV(res model.SegmentationResult) []byte {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, s := range res.Clusters {
		b.WriteString(strconv.Itoa(s.ID))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(s.Size))
		b.WriteByte(',')
		b.WriteString(formatFloat(s.AvgAge))
		b.WriteByte(',')
		b.WriteString(formatFloat(s.AvgSpend))
		b.WriteByte(',')
		b.WriteString(quote(s.TopCategory))
		b.WriteByte(',')
		b.WriteString(quote(s.Description))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// JSON renders the pretty-printed full result object
func JSON(res model.SegmentationResult) ([]byte, error) {
	return json.MarshalIndent(res, "", "  ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
